// Package search implements query construction and execution against the
// Attio records-query endpoint: tokenization, AND-of-OR filter assembly,
// the one-shot relaxed fallback, and optional relevance scoring.
package search

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/attiodex/internal/domain"
	"github.com/kailas-cloud/attiodex/internal/domain/record"
	"github.com/kailas-cloud/attiodex/internal/domain/search/query"
	"github.com/kailas-cloud/attiodex/internal/metrics"
)

// Config carries the feature toggles threaded in at construction time.
// Scoring gates both the relevance scorer and the relaxed fallback retry;
// with it off, the strict tree's results are returned as-is.
type Config struct {
	ScoringEnabled bool
	FastPath       bool
}

// Service executes searches with fallback and scoring.
type Service struct {
	repo Repository
	cfg  Config
}

// New creates a search service.
func New(repo Repository, cfg Config) *Service {
	return &Service{repo: repo, cfg: cfg}
}

// Search tokenizes the query, builds the strict AND-of-OR tree, and issues
// it. A zero-result strict query triggers exactly one relaxed OR-only retry
// (when enabled); a zero-result fallback returns the empty set, never an
// error. Provider and transport errors propagate unmodified.
func (s *Service) Search(ctx context.Context, q query.Query) ([]record.Record, error) {
	if s.repo == nil {
		// Fail loud rather than returning a silent empty result.
		return nil, domain.ErrNotInitialized
	}

	ext := Extract(q.Raw())

	if results, done, err := s.tryFastPath(ctx, q, ext); err != nil {
		return nil, err
	} else if done {
		return s.maybeScore(results, q.Raw()), nil
	}

	strict, err := BuildFilter(ext, q.Resource(), q.Raw())
	if err != nil {
		return nil, fmt.Errorf("build filter: %w", err)
	}

	results, err := s.repo.QueryRecords(ctx, q.Resource(), strict, q.Limit(), q.Offset())
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}

	if len(results) == 0 && s.cfg.ScoringEnabled && !ext.IsEmpty() {
		metrics.SearchFallbacksTotal.WithLabelValues(q.Resource().Slug()).Inc()
		relaxed, err := RelaxFilter(strict)
		if err != nil {
			return nil, fmt.Errorf("relax filter: %w", err)
		}
		results, err = s.repo.QueryRecords(ctx, q.Resource(), relaxed, q.Limit(), q.Offset())
		if err != nil {
			return nil, fmt.Errorf("fallback query: %w", err)
		}
	}

	return s.maybeScore(results, q.Raw()), nil
}

// tryFastPath issues a cheap single-leaf probe on the primary name field for
// single-word queries. Purely a latency optimization: a miss falls through
// to the full tree with identical semantics.
func (s *Service) tryFastPath(
	ctx context.Context, q query.Query, ext Extraction,
) ([]record.Record, bool, error) {
	if !s.cfg.FastPath {
		return nil, false, nil
	}
	if len(ext.Words) != 1 || len(ext.Emails) > 0 || len(ext.Phones) > 0 {
		return nil, false, nil
	}

	probe, err := legacyFilter(q.Resource(), ext.Words[0])
	if err != nil || probe.IsZero() {
		return nil, false, nil
	}
	results, err := s.repo.QueryRecords(ctx, q.Resource(), probe, q.Limit(), q.Offset())
	if err != nil {
		return nil, false, fmt.Errorf("fast-path probe: %w", err)
	}
	if len(results) == 0 {
		return nil, false, nil
	}
	return results, true, nil
}

func (s *Service) maybeScore(results []record.Record, rawQuery string) []record.Record {
	if !s.cfg.ScoringEnabled {
		return results
	}
	return ScoreResults(results, rawQuery)
}
