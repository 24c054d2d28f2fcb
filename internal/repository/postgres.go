package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rentassist/internal/model"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const propertyColumns = `
	id, title, title_ms, location, address, price, bedrooms, bathrooms,
	sqft, furnished, contact, description, description_ms, image_url,
	is_available, created_at`

// PostgresRepository handles database operations
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(dsn string, maxConn, maxIdleConn int) (*PostgresRepository, error) {
	// Disable prepared statement caching to avoid "unnamed prepared statement does not exist" errors
	if !strings.Contains(dsn, "?") {
		dsn += "?prefer_simple_protocol=true"
	} else {
		dsn += "&prefer_simple_protocol=true"
	}

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{db: db}, nil
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// SearchProperties executes a search plan as one conjunctive query.
// Availability is enforced unconditionally; the plan contributes a
// predicate per populated filter. Results are ordered ascending by price
// and capped at the plan's limit.
func (r *PostgresRepository) SearchProperties(ctx context.Context, plan model.SearchPlan) ([]model.Property, error) {
	whereClauses := []string{"is_available = true"}
	args := []interface{}{}
	argIndex := 1

	if plan.Location != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("location ILIKE $%d", argIndex))
		args = append(args, "%"+plan.Location+"%")
		argIndex++
	}
	if plan.MinBedrooms > 0 {
		whereClauses = append(whereClauses, fmt.Sprintf("bedrooms >= $%d", argIndex))
		args = append(args, plan.MinBedrooms)
		argIndex++
	}
	if plan.MaxPrice > 0 {
		whereClauses = append(whereClauses, fmt.Sprintf("price <= $%d", argIndex))
		args = append(args, plan.MaxPrice)
		argIndex++
	}
	if plan.Furnished != model.FurnishingUnspecified {
		whereClauses = append(whereClauses, fmt.Sprintf("furnished = $%d", argIndex))
		args = append(args, string(plan.Furnished))
		argIndex++
	}

	limit := plan.Limit
	if limit <= 0 {
		limit = 5
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM properties
		WHERE %s
		ORDER BY price ASC
		LIMIT $%d
	`, propertyColumns, strings.Join(whereClauses, " AND "), argIndex)
	args = append(args, limit)

	var properties []model.Property
	if err := r.db.SelectContext(ctx, &properties, query, args...); err != nil {
		return nil, fmt.Errorf("failed to fetch properties: %w", err)
	}

	return properties, nil
}

// ListAvailable returns every available property, used by the knowledge
// table sync.
func (r *PostgresRepository) ListAvailable(ctx context.Context) ([]model.Property, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM properties
		WHERE is_available = true
		ORDER BY id ASC
	`, propertyColumns)

	var properties []model.Property
	if err := r.db.SelectContext(ctx, &properties, query); err != nil {
		return nil, fmt.Errorf("failed to list available properties: %w", err)
	}

	return properties, nil
}

// LogChat records one handled chat turn
func (r *PostgresRepository) LogChat(ctx context.Context, chatID, utterance string, lang model.Language, intent model.Intent, resultCount int, source model.ReplySource) error {
	query := `
		INSERT INTO chat_logs (chat_id, utterance, language, location, bedrooms, max_price, furnished, result_count, reply_source)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		chatID, utterance, string(lang),
		intent.Location, intent.Bedrooms, intent.MaxPrice, string(intent.Furnished),
		resultCount, string(source),
	)
	if err != nil {
		return fmt.Errorf("failed to log chat: %w", err)
	}
	return nil
}
