package attiodex

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/attiodex/internal/domain/resource"
)

// RecordService is the CRUD surface for one resource type.
type RecordService struct {
	client   *Client
	resource string
}

func (s *RecordService) resourceType() (resource.Type, error) {
	return resource.Parse(s.resource)
}

// Get fetches one record by ID.
func (s *RecordService) Get(ctx context.Context, id string) (Record, error) {
	rt, err := s.resourceType()
	if err != nil {
		return Record{}, fmt.Errorf("attiodex: %w", err)
	}
	rec, err := s.client.recordSvc.Get(ctx, rt, id)
	if err != nil {
		return Record{}, fmt.Errorf("attiodex: %w", err)
	}
	return toPublicRecord(rec), nil
}

// Create creates a record. Attribute keys accept common aliases (website,
// email, first_name/last_name); company categories are validated locally
// before the API call.
func (s *RecordService) Create(ctx context.Context, values map[string]any) (Record, error) {
	rt, err := s.resourceType()
	if err != nil {
		return Record{}, fmt.Errorf("attiodex: %w", err)
	}
	rec, err := s.client.recordSvc.Create(ctx, rt, values)
	if err != nil {
		return Record{}, fmt.Errorf("attiodex: %w", err)
	}
	return toPublicRecord(rec), nil
}

// Update patches attribute values on an existing record. Same alias handling
// and validation as Create.
func (s *RecordService) Update(ctx context.Context, id string, values map[string]any) (Record, error) {
	rt, err := s.resourceType()
	if err != nil {
		return Record{}, fmt.Errorf("attiodex: %w", err)
	}
	rec, err := s.client.recordSvc.Update(ctx, rt, id, values)
	if err != nil {
		return Record{}, fmt.Errorf("attiodex: %w", err)
	}
	return toPublicRecord(rec), nil
}

// Delete removes a record permanently.
func (s *RecordService) Delete(ctx context.Context, id string) error {
	rt, err := s.resourceType()
	if err != nil {
		return fmt.Errorf("attiodex: %w", err)
	}
	if err := s.client.recordSvc.Delete(ctx, rt, id); err != nil {
		return fmt.Errorf("attiodex: %w", err)
	}
	return nil
}

// ListService is the membership surface for one Attio list.
type ListService struct {
	client *Client
	list   string
}

// Entries returns one page of the list's entries.
func (s *ListService) Entries(ctx context.Context, limit, offset int) ([]Record, error) {
	entries, err := s.client.listSvc.Entries(ctx, s.list, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("attiodex: %w", err)
	}
	return toPublicRecords(entries), nil
}

// Add appends a record to the list and returns the created entry.
func (s *ListService) Add(ctx context.Context, parentObject, recordID string) (Record, error) {
	entry, err := s.client.listSvc.Add(ctx, s.list, parentObject, recordID)
	if err != nil {
		return Record{}, fmt.Errorf("attiodex: %w", err)
	}
	return toPublicRecord(entry), nil
}

// Remove deletes one entry from the list.
func (s *ListService) Remove(ctx context.Context, entryID string) error {
	if err := s.client.listSvc.Remove(ctx, s.list, entryID); err != nil {
		return fmt.Errorf("attiodex: %w", err)
	}
	return nil
}
