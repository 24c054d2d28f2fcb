package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"rentassist/internal/model"
)

const enrichCandidateLimit = 5

// Enricher is the interface for optional generative enrichment of a reply
type Enricher interface {
	Enrich(ctx context.Context, utterance string, candidates []model.Property, lang model.Language, intent model.Intent) (model.RenderedReply, model.ReplySource)
}

// EnrichmentController forwards the utterance plus candidate rows to the
// generative table service and falls back to the deterministic template on
// any failure. The template is authoritative by default; generated text
// reaches the user only when useAIReply is set and extraction succeeds.
type EnrichmentController struct {
	client     *JamAIClient
	renderer   *ResultRenderer
	tableID    string
	timeout    time.Duration
	useAIReply bool
}

// NewEnrichmentController creates a new enrichment controller
func NewEnrichmentController(client *JamAIClient, renderer *ResultRenderer, tableID string, timeout time.Duration, useAIReply bool) *EnrichmentController {
	return &EnrichmentController{
		client:     client,
		renderer:   renderer,
		tableID:    tableID,
		timeout:    timeout,
		useAIReply: useAIReply,
	}
}

// Enrich produces the final reply for a candidate set. The enrichment call
// runs under its own deadline so a slow or unavailable service can never
// block a request that the template path can serve.
func (e *EnrichmentController) Enrich(ctx context.Context, utterance string, candidates []model.Property, lang model.Language, intent model.Intent) (model.RenderedReply, model.ReplySource) {
	fallback := e.renderer.Render(candidates, lang, intent)

	if !e.useAIReply || e.client == nil || !e.client.IsEnabled() {
		return fallback, model.ReplySourceTemplate
	}

	callCtx := ctx
	if e.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	resp, err := e.client.AddRow(callCtx, "action", AddRowRequest{
		TableID: e.tableID,
		Data: []map[string]any{{
			"user_query": utterance,
			"context":    summarizeCandidates(candidates),
			"language":   string(lang),
		}},
	})
	if err != nil {
		log.Printf("enrichment call failed, using templated reply: %v", err)
		return fallback, model.ReplySourceTemplate
	}

	answer, ok := ExtractAnswer(resp)
	if !ok || strings.TrimSpace(answer) == "" {
		log.Printf("enrichment response had no usable output field, using templated reply")
		return fallback, model.ReplySourceTemplate
	}

	reply := model.RenderedReply{
		Message:   answer,
		SearchURL: fallback.SearchURL,
	}
	if reply.SearchURL != "" {
		reply.Message += "\n\n" + reply.SearchURL
	}
	return reply, model.ReplySourceAI
}

// summarizeCandidates serializes up to five candidate rows as the context
// column for the generative table.
func summarizeCandidates(candidates []model.Property) string {
	if len(candidates) > enrichCandidateLimit {
		candidates = candidates[:enrichCandidateLimit]
	}
	var b strings.Builder
	for i, p := range candidates {
		fmt.Fprintf(&b, "%d. %s | %s | RM%s/month | %d bedrooms, %d bathrooms",
			i+1, p.Title, p.Location, formatPrice(p.Price), p.Bedrooms, p.Bathrooms)
		if p.Furnished != nil && *p.Furnished != "" {
			fmt.Fprintf(&b, " | %s", *p.Furnished)
		}
		b.WriteString("\n")
	}
	return b.String()
}
