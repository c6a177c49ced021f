package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"farm-advisor/internal/knowledge"
	"farm-advisor/internal/models"
	"farm-advisor/internal/repository"
)

// AdvisorService answers farming questions against the loaded knowledge
// base and records each exchange. The knowledge base is immutable after
// construction, so concurrent calls are safe.
type AdvisorService struct {
	store        *knowledge.Store
	matcher      *knowledge.Matcher
	resolver     *knowledge.Resolver
	interactions *repository.InteractionRepository // nil disables logging
	logger       *zap.Logger
}

func NewAdvisorService(store *knowledge.Store, interactions *repository.InteractionRepository, logger *zap.Logger) *AdvisorService {
	return &AdvisorService{
		store:        store,
		matcher:      knowledge.NewMatcher(store.Base(), store.Index()),
		resolver:     knowledge.NewResolver(store.Base()),
		interactions: interactions,
		logger:       logger,
	}
}

// GetAnswer matches the question and resolves the answer text in the
// requested language. It never fails: malformed input, unknown languages
// and lookup misses all resolve to a canned response. A logging failure is
// reported but does not affect the answer.
func (s *AdvisorService) GetAnswer(ctx context.Context, question, language, inputMethod, sessionID string) string {
	start := time.Now()

	result := s.matcher.Match(question, language)
	answer := s.resolver.Resolve(result, language)

	s.logger.Debug("Question answered",
		zap.String("language", language),
		zap.Int("outcome", int(result.Outcome)),
		zap.Float64("score", result.Score),
	)

	if s.interactions != nil {
		it := &models.Interaction{
			Question:       question,
			Answer:         answer,
			Language:       language,
			InputMethod:    inputMethod,
			SessionID:      sessionID,
			ResponseTimeMS: time.Since(start).Milliseconds(),
			Timestamp:      time.Now().UTC(),
		}
		if _, err := s.interactions.Log(ctx, it); err != nil {
			s.logger.Warn("Failed to log interaction", zap.Error(err))
		}
	}

	return answer
}

// GetCategories lists the knowledge base categories in source order.
func (s *AdvisorService) GetCategories() []models.CategorySummary {
	return s.store.Categories()
}

// IsLoaded reports whether the knowledge base loaded with a categories
// table.
func (s *AdvisorService) IsLoaded() bool {
	return s.store.IsLoaded()
}

// History returns recent interactions, newest first. Without an interaction
// repository it returns an empty history.
func (s *AdvisorService) History(ctx context.Context, limit int) ([]*models.Interaction, error) {
	if s.interactions == nil {
		return []*models.Interaction{}, nil
	}
	return s.interactions.History(ctx, limit, "")
}
