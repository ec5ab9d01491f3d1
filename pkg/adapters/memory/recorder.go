package memory

import (
	"context"
	"sync"

	"github.com/aretw0/logframe/pkg/domain"
)

// Recorder implements ports.RecordStore in memory.
// Safe for concurrent use.
type Recorder struct {
	records []domain.Record
	mu      sync.RWMutex
}

// NewRecorder creates an empty in-memory recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record appends rec.
func (r *Recorder) Record(ctx context.Context, rec domain.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, rec)
	return nil
}

// Records returns the records of organizationID in insertion order.
func (r *Recorder) Records(ctx context.Context, organizationID string) ([]domain.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Record
	for _, rec := range r.records {
		if rec.OrganizationID == organizationID {
			out = append(out, rec)
		}
	}
	return out, nil
}

// All returns every record in insertion order.
func (r *Recorder) All() []domain.Record {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Record, len(r.records))
	copy(out, r.records)
	return out
}
