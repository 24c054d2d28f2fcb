package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"rentassist/internal/config"
)

func testJamAIConfig(baseURL string) *config.JamAIConfig {
	return &config.JamAIConfig{
		BaseURL:   baseURL,
		APIKey:    "test-key",
		ProjectID: "proj_test",
		Timeout:   2,
		Enabled:   true,
	}
}

func TestJamAIClient_AddRow(t *testing.T) {
	var gotPath, gotAuth, gotProject string
	var gotBody AddRowRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotProject = r.Header.Get("X-PROJECT-ID")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"rows":[{"columns":{"answer":"Here are two great units."}}]}`))
	}))
	defer server.Close()

	client := NewJamAIClient(testJamAIConfig(server.URL))
	resp, err := client.AddRow(context.Background(), "action", AddRowRequest{
		TableID: "property_assistant",
		Data:    []map[string]any{{"user_query": "2 bedroom in Klang"}},
	})
	if err != nil {
		t.Fatalf("AddRow failed: %v", err)
	}

	if gotPath != "/api/v1/gen_tables/action/rows" {
		t.Errorf("unexpected path %q", gotPath)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("unexpected auth header %q", gotAuth)
	}
	if gotProject != "proj_test" {
		t.Errorf("unexpected project header %q", gotProject)
	}
	if gotBody.TableID != "property_assistant" {
		t.Errorf("unexpected table id %q", gotBody.TableID)
	}

	answer, ok := ExtractAnswer(resp)
	if !ok || answer != "Here are two great units." {
		t.Errorf("ExtractAnswer = (%q, %t)", answer, ok)
	}
}

func TestJamAIClient_AddRow_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewJamAIClient(testJamAIConfig(server.URL))
	if _, err := client.AddRow(context.Background(), "action", AddRowRequest{TableID: "t"}); err == nil {
		t.Fatal("expected error on non-2xx status")
	}
}

func TestJamAIClient_AddRow_NotConfigured(t *testing.T) {
	client := NewJamAIClient(&config.JamAIConfig{})
	if _, err := client.AddRow(context.Background(), "action", AddRowRequest{TableID: "t"}); err == nil {
		t.Fatal("expected error when credentials are missing")
	}
}

func TestExtractAnswer(t *testing.T) {
	tests := []struct {
		name    string
		columns map[string]any
		want    string
		wantOK  bool
	}{
		{
			name:    "Direct string in first-priority field",
			columns: map[string]any{"answer": "hello"},
			want:    "hello",
			wantOK:  true,
		},
		{
			name:    "Field priority order",
			columns: map[string]any{"AI": "low priority", "response": "high priority"},
			want:    "high priority",
			wantOK:  true,
		},
		{
			name:    "Text object shape",
			columns: map[string]any{"output": map[string]any{"text": "from text"}},
			want:    "from text",
			wantOK:  true,
		},
		{
			name:    "Value object shape",
			columns: map[string]any{"reply": map[string]any{"value": "from value"}},
			want:    "from value",
			wantOK:  true,
		},
		{
			name: "Chat-completion shape",
			columns: map[string]any{"AI": map[string]any{
				"choices": []any{map[string]any{"message": map[string]any{"content": "from choices"}}},
			}},
			want:   "from choices",
			wantOK: true,
		},
		{
			name:    "Empty string does not count",
			columns: map[string]any{"answer": ""},
			wantOK:  false,
		},
		{
			name:    "No recognized field",
			columns: map[string]any{"score": 0.9},
			wantOK:  false,
		},
		{
			name:    "Empty columns",
			columns: map[string]any{},
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &AddRowResponse{Rows: []AddRowResult{{Columns: tt.columns}}}
			got, ok := ExtractAnswer(resp)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ExtractAnswer = (%q, %t), want (%q, %t)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestExtractAnswer_NoRows(t *testing.T) {
	if _, ok := ExtractAnswer(&AddRowResponse{}); ok {
		t.Error("expected no answer for empty response")
	}
	if _, ok := ExtractAnswer(nil); ok {
		t.Error("expected no answer for nil response")
	}
}
