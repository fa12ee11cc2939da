package service

import (
	"context"
	"errors"
	"time"

	"dermclinic/internal/cache"
	"dermclinic/internal/i18n"
	"dermclinic/internal/insight"
	"dermclinic/internal/model"
)

var (
	ErrModuleNotFound = errors.New("insight module not found")
	ErrEmptyAnswers   = errors.New("answers must not be empty")
)

// InsightService exposes the insight module catalogue, runs evaluations and
// manages a visitor's saved results.
type InsightService struct {
	savedCache cache.SavedInsightCache
}

// NewInsightService creates a new insight service
func NewInsightService(savedCache cache.SavedInsightCache) *InsightService {
	return &InsightService{savedCache: savedCache}
}

// Modules returns all insight modules in display order
func (s *InsightService) Modules() []*insight.Module {
	return insight.Modules
}

// Module returns one module by slug
func (s *InsightService) Module(slug string) (*insight.Module, error) {
	m := insight.Get(slug)
	if m == nil {
		return nil, ErrModuleNotFound
	}
	return m, nil
}

// Evaluate runs a module against the visitor's answers
func (s *InsightService) Evaluate(slug string, answers insight.Answers, locale i18n.Locale) (*insight.Result, error) {
	m := insight.Get(slug)
	if m == nil {
		return nil, ErrModuleNotFound
	}
	if len(answers) == 0 {
		return nil, ErrEmptyAnswers
	}
	result := m.Evaluate(answers, locale)
	return &result, nil
}

// Recommendations returns related articles for a module
func (s *InsightService) Recommendations(slug string) ([]insight.Recommendation, error) {
	if insight.Get(slug) == nil {
		return nil, ErrModuleNotFound
	}
	return insight.Recommendations(slug), nil
}

// SaveResult stores an evaluation header in the visitor's history. The tier
// and summary are recomputed server-side so stored entries can't disagree
// with what the engine would produce for the same answers.
func (s *InsightService) SaveResult(ctx context.Context, visitorID, slug string, answers insight.Answers, locale i18n.Locale) (*model.SavedInsight, error) {
	result, err := s.Evaluate(slug, answers, locale)
	if err != nil {
		return nil, err
	}

	at := time.Now().UnixMilli()
	entry := &model.SavedInsight{
		ID:      model.SavedInsightID(slug, at),
		Module:  slug,
		At:      at,
		Level:   result.Level,
		Summary: result.Summary,
	}
	if err := s.savedCache.Save(ctx, visitorID, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// SavedResults lists the visitor's saved history, newest first
func (s *InsightService) SavedResults(ctx context.Context, visitorID string) ([]*model.SavedInsight, error) {
	return s.savedCache.List(ctx, visitorID)
}

// RemoveSavedResult deletes one entry from the visitor's history
func (s *InsightService) RemoveSavedResult(ctx context.Context, visitorID, id string) error {
	return s.savedCache.Remove(ctx, visitorID, id)
}
