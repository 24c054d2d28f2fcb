package service

import (
	"context"

	"rentassist/internal/model"

	"github.com/google/uuid"
)

// ChatLogger records handled chat turns
type ChatLogger interface {
	LogChat(ctx context.Context, chatID, utterance string, lang model.Language, intent model.Intent, resultCount int, source model.ReplySource) error
}

// ChatService runs the chat pipeline: language detection plus intent
// extraction, query planning and fetch, optional enrichment with a
// deterministic fallback, rendering.
type ChatService struct {
	planner  *QueryPlanner
	enricher Enricher
	logger   ChatLogger
}

// NewChatService creates a new chat service
func NewChatService(planner *QueryPlanner, enricher Enricher, logger ChatLogger) *ChatService {
	return &ChatService{
		planner:  planner,
		enricher: enricher,
		logger:   logger,
	}
}

// Handle processes one utterance and returns the reply. The only error it
// can return is a data-access failure; everything upstream of the fetch is
// total, and the enrichment path resolves its own failures by falling back
// to the template.
func (s *ChatService) Handle(ctx context.Context, utterance string) (model.RenderedReply, error) {
	lang := DetectLanguage(utterance)
	intent := ExtractIntent(utterance)

	plan := s.planner.Plan(intent)
	properties, err := s.planner.Execute(ctx, plan)
	if err != nil {
		return model.RenderedReply{}, err
	}

	reply, source := s.enricher.Enrich(ctx, utterance, properties, lang, intent)

	if s.logger != nil {
		chatID := uuid.NewString()
		resultCount := len(properties)
		go func() {
			_ = s.logger.LogChat(context.Background(), chatID, utterance, lang, intent, resultCount, source)
		}()
	}

	return reply, nil
}
