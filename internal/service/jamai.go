package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"rentassist/internal/config"
)

// JamAIClient handles JamAI Base table-service interactions. It is
// constructed explicitly and injected where needed; nothing in this
// package holds a process-wide client.
type JamAIClient struct {
	config     *config.JamAIConfig
	httpClient *http.Client
}

// NewJamAIClient creates a new JamAI Base client
func NewJamAIClient(cfg *config.JamAIConfig) *JamAIClient {
	return &JamAIClient{
		config: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}
}

// IsEnabled returns whether the client is configured and ready
func (c *JamAIClient) IsEnabled() bool {
	return c.config.Enabled
}

// BaseURL returns the configured service URL
func (c *JamAIClient) BaseURL() string {
	return c.config.BaseURL
}

// AddRowRequest represents a row-add request against a generative table
type AddRowRequest struct {
	TableID    string           `json:"table_id"`
	Data       []map[string]any `json:"data"`
	Reindex    *bool            `json:"reindex"`
	Concurrent bool             `json:"concurrent"`
	Stream     bool             `json:"stream"`
}

// AddRowResponse represents the table-service response. Column values are
// left untyped: depending on the table configuration a column may hold a
// plain string, a {"text"/"value"} object, or a chat-completion shape.
type AddRowResponse struct {
	Rows []AddRowResult `json:"rows"`
}

// AddRowResult is one generated row
type AddRowResult struct {
	Columns map[string]any `json:"columns"`
}

// AddRow adds a row to a generative table and returns the generated
// columns. tableType is one of "action", "chat" or "knowledge".
func (c *JamAIClient) AddRow(ctx context.Context, tableType string, req AddRowRequest) (*AddRowResponse, error) {
	if !c.config.Enabled {
		return nil, fmt.Errorf("JamAI is not configured (missing JAMAI_API_KEY or JAMAI_PROJECT_ID)")
	}

	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/gen_tables/%s/rows", c.config.BaseURL, tableType)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.config.APIKey))
	httpReq.Header.Set("X-PROJECT-ID", c.config.ProjectID)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("JamAI request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result AddRowResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &result, nil
}

// answerFields is the ordered list of output column names tried when
// extracting a textual answer from a table response. The table schema is
// configured outside this service, so the output column name is not known
// in advance.
var answerFields = []string{"answer", "response", "output", "reply", "text", "content", "message", "AI"}

// ExtractAnswer pulls a textual answer out of a table response by trying
// each known output field name in order and coercing the first hit to
// text. It returns false when no field yields a non-empty string, which
// callers must treat as a fallback trigger, not an error.
func ExtractAnswer(resp *AddRowResponse) (string, bool) {
	if resp == nil || len(resp.Rows) == 0 {
		return "", false
	}
	columns := resp.Rows[0].Columns
	for _, field := range answerFields {
		value, ok := columns[field]
		if !ok {
			continue
		}
		if text, ok := CoerceText(value); ok {
			return text, true
		}
	}
	return "", false
}

// CoerceText converts a column value to plain text. The shapes tried, in
// order: a bare string, an object with a "text" or "value" string, and a
// chat-completion object (choices[0].message.content).
func CoerceText(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		if v != "" {
			return v, true
		}
	case map[string]any:
		for _, key := range []string{"text", "value"} {
			if s, ok := v[key].(string); ok && s != "" {
				return s, true
			}
		}
		if s, ok := coerceChoices(v); ok {
			return s, true
		}
	}
	return "", false
}

func coerceChoices(v map[string]any) (string, bool) {
	choices, ok := v["choices"].([]any)
	if !ok || len(choices) == 0 {
		return "", false
	}
	choice, ok := choices[0].(map[string]any)
	if !ok {
		return "", false
	}
	message, ok := choice["message"].(map[string]any)
	if !ok {
		return "", false
	}
	content, ok := message["content"].(string)
	if !ok || content == "" {
		return "", false
	}
	return content, true
}
