package service

import (
	"context"

	"rentassist/internal/model"
)

// PropertyStore is the query interface the planner executes against
type PropertyStore interface {
	SearchProperties(ctx context.Context, plan model.SearchPlan) ([]model.Property, error)
}

// QueryPlanner maps an extracted intent to a bounded fetch plan and
// executes it against the property store. Filters are pushed down to the
// store: one conjunctive query per intent, bedrooms treated as a minimum,
// price as a ceiling, furnishing as an exact match.
type QueryPlanner struct {
	store PropertyStore
	limit int
}

// NewQueryPlanner creates a new query planner
func NewQueryPlanner(store PropertyStore, limit int) *QueryPlanner {
	if limit <= 0 {
		limit = 5
	}
	return &QueryPlanner{
		store: store,
		limit: limit,
	}
}

// Plan derives the fetch plan for an intent. Unpopulated intent fields
// contribute no predicate, so an empty intent plans an unfiltered query
// over available properties.
func (p *QueryPlanner) Plan(intent model.Intent) model.SearchPlan {
	return model.SearchPlan{
		Location:    intent.Location,
		MinBedrooms: intent.Bedrooms,
		MaxPrice:    intent.MaxPrice,
		Furnished:   intent.Furnished,
		Limit:       p.limit,
	}
}

// Execute runs a plan against the property store
func (p *QueryPlanner) Execute(ctx context.Context, plan model.SearchPlan) ([]model.Property, error) {
	return p.store.SearchProperties(ctx, plan)
}
