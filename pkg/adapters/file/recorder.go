package file

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/aretw0/logframe/pkg/domain"
)

const (
	anonymousOrg  = "_anonymous"
	orgFilePrefix = "org-"
)

// Recorder implements ports.RecordStore on the local filesystem.
// Records of one organization are kept as a JSON array in org-<hex id>.json and
// rewritten atomically on every append.
type Recorder struct {
	BasePath string
	mu       sync.Mutex
}

// NewRecorder creates a Recorder rooted at basePath.
// If basePath is empty, it defaults to ".logframe/records".
func NewRecorder(basePath string) *Recorder {
	if basePath == "" {
		basePath = filepath.Join(".logframe", "records")
	}
	return &Recorder{BasePath: basePath}
}

// path maps an organization to its file. IDs are hex encoded so distinct
// IDs never share a file, even on case-insensitive filesystems.
func (r *Recorder) path(organizationID string) string {
	name := anonymousOrg
	if organizationID != "" {
		name = orgFilePrefix + hex.EncodeToString([]byte(organizationID))
	}
	return filepath.Join(r.BasePath, name+".json")
}

// Record appends rec to its organization's file.
func (r *Recorder) Record(ctx context.Context, rec domain.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, err := r.read(rec.OrganizationID)
	if err != nil {
		return err
	}
	return r.write(rec.OrganizationID, append(existing, rec))
}

// Records returns the records of organizationID, oldest first.
func (r *Recorder) Records(ctx context.Context, organizationID string) ([]domain.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.read(organizationID)
}

func (r *Recorder) read(organizationID string) ([]domain.Record, error) {
	data, err := os.ReadFile(r.path(organizationID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read records: %w", err)
	}

	var recs []domain.Record
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal records: %w", err)
	}
	return recs, nil
}

// write replaces the organization file via a temp file in the same directory.
func (r *Recorder) write(organizationID string, recs []domain.Record) error {
	if err := os.MkdirAll(r.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure records directory: %w", err)
	}

	data, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}

	tmpFile, err := os.CreateTemp(r.BasePath, "tmp-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	dest := r.path(organizationID)
	// Windows cannot rename over an existing file.
	if _, err := os.Stat(dest); err == nil {
		if err := os.Remove(dest); err != nil {
			return fmt.Errorf("failed to remove existing records file: %w", err)
		}
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}
