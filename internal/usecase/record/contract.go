package record

import (
	"context"

	domrec "github.com/kailas-cloud/attiodex/internal/domain/record"
	"github.com/kailas-cloud/attiodex/internal/domain/resource"
)

// Repository is the consumer interface for record mutations (ISP).
type Repository interface {
	GetRecord(ctx context.Context, rt resource.Type, id string) (domrec.Record, error)
	CreateRecord(ctx context.Context, rt resource.Type, values map[string]any) (domrec.Record, error)
	UpdateRecord(ctx context.Context, rt resource.Type, id string, values map[string]any) (domrec.Record, error)
	DeleteRecord(ctx context.Context, rt resource.Type, id string) error
}
