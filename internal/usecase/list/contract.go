package list

import (
	"context"

	domrec "github.com/kailas-cloud/attiodex/internal/domain/record"
)

// Repository is the consumer interface for list operations (ISP).
type Repository interface {
	ListEntries(ctx context.Context, list string, limit, offset int) ([]domrec.Record, error)
	AddToList(ctx context.Context, list, parentObject, recordID string) (domrec.Record, error)
	RemoveFromList(ctx context.Context, list, entryID string) error
}
