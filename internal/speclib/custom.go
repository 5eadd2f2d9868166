package speclib

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/flock"

	"modcon/internal/domain"
)

const lockRetryDelay = 50 * time.Millisecond

// CustomStore keeps user-added specs in a JSON file. Writes hold an exclusive
// file lock for the whole read-modify-write and replace the file atomically.
type CustomStore struct {
	path string
	mu   sync.Mutex
	lock *flock.Flock
}

// NewCustomStore returns a store backed by path. The file does not need to exist.
func NewCustomStore(path string) *CustomStore {
	return &CustomStore{path: path, lock: flock.New(path + ".lock")}
}

// Path returns the backing file path.
func (s *CustomStore) Path() string { return s.path }

// Load reads every custom spec from disk. A missing file is an empty list.
func (s *CustomStore) Load() ([]domain.Spec, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("speclib: read custom specs: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, nil
	}
	var specs []domain.Spec
	if err := json.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("speclib: decode custom specs: %w", err)
	}
	for i := range specs {
		specs[i].Source = domain.SpecSourceCustom
	}
	return specs, nil
}

// Append validates spec, assigns an ID when it has none and persists it.
// taken reports IDs owned by other stores so generated IDs never shadow them.
func (s *CustomStore) Append(ctx context.Context, spec domain.Spec, taken func(id string) bool) (domain.Spec, error) {
	if err := validateCustom(spec); err != nil {
		return domain.Spec{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return domain.Spec{}, fmt.Errorf("speclib: ensure custom spec dir: %w", err)
	}
	locked, err := s.lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return domain.Spec{}, fmt.Errorf("speclib: lock custom specs: %w", err)
	}
	if !locked {
		return domain.Spec{}, errors.New("speclib: custom specs lock not acquired")
	}
	defer func() { _ = s.lock.Unlock() }()

	existing, err := s.Load()
	if err != nil {
		return domain.Spec{}, err
	}
	ids := make(map[string]struct{}, len(existing))
	for _, e := range existing {
		ids[e.ID] = struct{}{}
	}
	inUse := func(id string) bool {
		if _, ok := ids[id]; ok {
			return true
		}
		return taken != nil && taken(id)
	}

	if spec.ID == "" {
		spec.ID = nextID(generatedID(spec.Platform, spec.Placement), inUse)
	} else if _, dup := ids[spec.ID]; dup {
		return domain.Spec{}, fmt.Errorf("%w: spec %s already exists", domain.ErrConflict, spec.ID)
	}
	if spec.MediaType == "" {
		spec.MediaType = defaultCatalogMediaType
	}
	spec.Source = ""
	for i := range existing {
		existing[i].Source = ""
	}
	if err := s.write(append(existing, spec)); err != nil {
		return domain.Spec{}, err
	}
	spec.Source = domain.SpecSourceCustom
	return spec, nil
}

func (s *CustomStore) write(specs []domain.Spec) error {
	data, err := json.MarshalIndent(specs, "", "  ")
	if err != nil {
		return fmt.Errorf("speclib: encode custom specs: %w", err)
	}
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("speclib: write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("speclib: rename temp file: %w", err)
	}
	return nil
}

func validateCustom(spec domain.Spec) error {
	switch {
	case strings.TrimSpace(spec.Platform) == "":
		return fmt.Errorf("%w: platform is required", domain.ErrInvalidSpec)
	case strings.TrimSpace(spec.Placement) == "":
		return fmt.Errorf("%w: placement is required", domain.ErrInvalidSpec)
	case spec.Width < 0 || spec.Height < 0:
		return fmt.Errorf("%w: width and height must not be negative", domain.ErrInvalidSpec)
	case spec.MaxDurationSeconds != nil && *spec.MaxDurationSeconds < 0:
		return fmt.Errorf("%w: max_duration_seconds must not be negative", domain.ErrInvalidSpec)
	case spec.FileSizeLimitKB != nil && *spec.FileSizeLimitKB < 0:
		return fmt.Errorf("%w: file_size_limit_kb must not be negative", domain.ErrInvalidSpec)
	}
	return nil
}

func generatedID(platform, placement string) string {
	return strings.ReplaceAll(strings.ToUpper(platform+"_"+placement), " ", "_")
}

func nextID(base string, inUse func(string) bool) string {
	id := base
	for suffix := 1; inUse(id); suffix++ {
		id = fmt.Sprintf("%s_%d", base, suffix)
	}
	return id
}
