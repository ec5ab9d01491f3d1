package ports

import (
	"context"

	"github.com/aretw0/logframe/pkg/domain"
)

// Recorder persists derived records. Persistence failures never fail an evaluation.
type Recorder interface {
	Record(ctx context.Context, rec domain.Record) error
}

// RecordReader lists previously recorded evaluations, oldest first.
type RecordReader interface {
	Records(ctx context.Context, organizationID string) ([]domain.Record, error)
}

// RecordStore is a Recorder that can also read back.
type RecordStore interface {
	Recorder
	RecordReader
}
