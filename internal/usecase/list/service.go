// Package list implements Attio list membership operations: reading entries,
// adding parent records, and removing entries.
package list

import (
	"context"
	"fmt"
	"strings"

	"github.com/kailas-cloud/attiodex/internal/domain"
	domrec "github.com/kailas-cloud/attiodex/internal/domain/record"
	"github.com/kailas-cloud/attiodex/internal/domain/search/query"
)

// Service orchestrates list operations.
type Service struct {
	repo Repository
}

// New creates the list service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Entries returns one page of a list's entries. Limit is clamped to the
// query bounds; zero means the default page size.
func (s *Service) Entries(ctx context.Context, list string, limit, offset int) ([]domrec.Record, error) {
	if s.repo == nil {
		return nil, domain.ErrNotInitialized
	}
	if strings.TrimSpace(list) == "" {
		return nil, fmt.Errorf("%w: list slug is required", domain.ErrInvalidInput)
	}
	if limit <= 0 {
		limit = query.DefaultLimit
	}
	if limit > query.MaxLimit {
		limit = query.MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListEntries(ctx, list, limit, offset)
}

// Add appends a record to a list and returns the created entry.
func (s *Service) Add(ctx context.Context, list, parentObject, recordID string) (domrec.Record, error) {
	if s.repo == nil {
		return domrec.Record{}, domain.ErrNotInitialized
	}
	if strings.TrimSpace(list) == "" {
		return domrec.Record{}, fmt.Errorf("%w: list slug is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(parentObject) == "" {
		return domrec.Record{}, fmt.Errorf("%w: parent object slug is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(recordID) == "" {
		return domrec.Record{}, fmt.Errorf("%w: record id is required", domain.ErrInvalidInput)
	}
	return s.repo.AddToList(ctx, list, parentObject, recordID)
}

// Remove deletes one entry from a list.
func (s *Service) Remove(ctx context.Context, list, entryID string) error {
	if s.repo == nil {
		return domain.ErrNotInitialized
	}
	if strings.TrimSpace(list) == "" {
		return fmt.Errorf("%w: list slug is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(entryID) == "" {
		return fmt.Errorf("%w: entry id is required", domain.ErrInvalidInput)
	}
	return s.repo.RemoveFromList(ctx, list, entryID)
}
