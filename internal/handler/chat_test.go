package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rentassist/internal/config"
	"rentassist/internal/model"
	"rentassist/internal/service"

	"github.com/gin-gonic/gin"
)

type stubStore struct {
	properties []model.Property
	err        error
}

func (s *stubStore) SearchProperties(ctx context.Context, plan model.SearchPlan) ([]model.Property, error) {
	return s.properties, s.err
}

func newTestRouter(store *stubStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	planner := service.NewQueryPlanner(store, 5)
	renderer := service.NewResultRenderer(3)
	enricher := service.NewEnrichmentController(service.NewJamAIClient(&config.JamAIConfig{}), renderer, "property_assistant", 0, false)
	chatService := service.NewChatService(planner, enricher, nil)

	router := gin.New()
	router.POST("/api/chat", NewChatHandler(chatService).Chat)
	return router
}

func postChat(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestChat_Success(t *testing.T) {
	store := &stubStore{properties: []model.Property{
		{ID: 1, Title: "Bangsar Loft", Location: "Bangsar", Price: 1400, Bedrooms: 2, Bathrooms: 2, IsAvailable: true},
	}}
	router := newTestRouter(store)

	w := postChat(t, router, `{"messages":[{"role":"user","content":"2 bedroom in Bangsar"}]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var resp model.ChatResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !strings.Contains(resp.Message, "Bangsar Loft") {
		t.Errorf("reply missing property summary: %q", resp.Message)
	}
}

func TestChat_UsesLastUserTurn(t *testing.T) {
	store := &stubStore{}
	router := newTestRouter(store)

	w := postChat(t, router, `{"messages":[
		{"role":"user","content":"saya nak cari rumah"},
		{"role":"assistant","content":"Sure, where?"},
		{"role":"user","content":"di Klang"}
	]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp model.ChatResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	// "di Klang" carries no Malay marker beyond the gazetteer, so the
	// detector should classify it as English.
	if !strings.Contains(resp.Message, "Sorry") {
		t.Errorf("expected the English no-results template for the last user turn, got %q", resp.Message)
	}
}

func TestChat_EmptyMessages(t *testing.T) {
	router := newTestRouter(&stubStore{})

	w := postChat(t, router, `{"messages":[]}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestChat_NoUserTurn(t *testing.T) {
	router := newTestRouter(&stubStore{})

	w := postChat(t, router, `{"messages":[{"role":"assistant","content":"hi"}]}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestChat_MalformedBody(t *testing.T) {
	router := newTestRouter(&stubStore{})

	w := postChat(t, router, `{"messages":`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestChat_DataAccessFailure(t *testing.T) {
	router := newTestRouter(&stubStore{err: errors.New("store unreachable")})

	w := postChat(t, router, `{"messages":[{"role":"user","content":"2 bedroom in Klang"}]}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}

	var resp model.ChatResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Message != technicalErrorMessage {
		t.Errorf("expected the fixed bilingual error message, got %q", resp.Message)
	}
	if resp.Error == "" {
		t.Error("expected the error field to be populated")
	}
}
