// Package record implements record CRUD on top of the provider repository.
// Every mutation passes payload normalization (alias rewriting, collision
// rejection) and category validation before anything goes over the wire.
package record

import (
	"context"
	"fmt"
	"strings"

	"github.com/kailas-cloud/attiodex/internal/domain"
	domrec "github.com/kailas-cloud/attiodex/internal/domain/record"
	"github.com/kailas-cloud/attiodex/internal/domain/resource"
	"github.com/kailas-cloud/attiodex/internal/usecase/validate"
)

// Service orchestrates record reads and writes.
type Service struct {
	repo       Repository
	categories *validate.CategoryValidator
}

// New creates the record service.
func New(repo Repository) *Service {
	return &Service{
		repo:       repo,
		categories: validate.NewCategoryValidator(resource.CompanyCategories),
	}
}

// Get fetches one record by ID.
func (s *Service) Get(ctx context.Context, rt resource.Type, id string) (domrec.Record, error) {
	if s.repo == nil {
		return domrec.Record{}, domain.ErrNotInitialized
	}
	if strings.TrimSpace(id) == "" {
		return domrec.Record{}, fmt.Errorf("%w: record id is required", domain.ErrInvalidInput)
	}
	return s.repo.GetRecord(ctx, rt, id)
}

// Create validates and normalizes the payload, then creates the record.
func (s *Service) Create(
	ctx context.Context, rt resource.Type, values map[string]any,
) (domrec.Record, error) {
	if s.repo == nil {
		return domrec.Record{}, domain.ErrNotInitialized
	}
	if len(values) == 0 {
		return domrec.Record{}, fmt.Errorf("%w: record values are required", domain.ErrInvalidInput)
	}

	normalized, err := s.prepare(rt, values)
	if err != nil {
		return domrec.Record{}, err
	}
	return s.repo.CreateRecord(ctx, rt, normalized)
}

// Update validates and normalizes the payload, then patches the record.
func (s *Service) Update(
	ctx context.Context, rt resource.Type, id string, values map[string]any,
) (domrec.Record, error) {
	if s.repo == nil {
		return domrec.Record{}, domain.ErrNotInitialized
	}
	if strings.TrimSpace(id) == "" {
		return domrec.Record{}, fmt.Errorf("%w: record id is required", domain.ErrInvalidInput)
	}
	if len(values) == 0 {
		return domrec.Record{}, fmt.Errorf("%w: record values are required", domain.ErrInvalidInput)
	}

	normalized, err := s.prepare(rt, values)
	if err != nil {
		return domrec.Record{}, err
	}
	return s.repo.UpdateRecord(ctx, rt, id, normalized)
}

// Delete removes a record permanently.
func (s *Service) Delete(ctx context.Context, rt resource.Type, id string) error {
	if s.repo == nil {
		return domain.ErrNotInitialized
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: record id is required", domain.ErrInvalidInput)
	}
	return s.repo.DeleteRecord(ctx, rt, id)
}

// ValidateCategories checks a category input against the canonical company
// category options without touching the API.
func (s *Service) ValidateCategories(input any) validate.CategoryResult {
	return s.categories.Validate(input)
}

// prepare runs the pre-flight pipeline: collision check, alias rewriting,
// name-part merging, and category validation for company payloads. Validated
// categories replace the input in canonical spelling.
func (s *Service) prepare(rt resource.Type, values map[string]any) (map[string]any, error) {
	normalized, err := validate.NormalizePayload(rt, values)
	if err != nil {
		return nil, err
	}

	if rt != resource.Companies {
		return normalized, nil
	}
	raw, ok := normalized["categories"]
	if !ok {
		return normalized, nil
	}

	result := s.categories.Validate(raw)
	if !result.IsValid {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(result.Errors, "; "))
	}
	normalized["categories"] = result.ValidatedCategories
	return normalized, nil
}
