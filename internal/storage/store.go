package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/seawater/internal/profile"
)

const (
	metadataFile = "metadata.json"
	profileFile  = "profile.csv"

	// csvDigits keeps enough precision for a stored run to round-trip
	// through plot and export without visible loss.
	csvDigits = 12
)

// ErrRunNotFound indicates a run ID with no directory under the store.
var ErrRunNotFound = errors.New("storage: run not found")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Timestamp  time.Time          `json:"timestamp"`
	Integrator string             `json:"integrator"`
	Steps      int                `json:"steps"`
	Strict     bool               `json:"strict"`
	Reference  float64            `json:"reference_pressure"`
	Levels     int                `json:"levels"`
	Metrics    map[string]float64 `json:"metrics"`
}

// Save writes p under a fresh time-ordered run ID and returns the ID. A run
// that cannot be written completely leaves no directory behind.
func (s *Store) Save(p *profile.Profile, integrator string, steps int, strict bool) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("run id: %w", err)
	}
	runID := id.String()
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Name:       p.Name,
		Timestamp:  time.Now().UTC(),
		Integrator: integrator,
		Steps:      steps,
		Strict:     strict,
		Reference:  p.Reference,
		Levels:     len(p.Rows),
		Metrics:    p.Summary(),
	}

	err = writeFile(filepath.Join(runDir, metadataFile), func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(meta)
	})
	if err == nil {
		err = writeFile(filepath.Join(runDir, profileFile), func(w io.Writer) error {
			return p.WriteCSV(w, csvDigits)
		})
	}
	if err != nil {
		if rmErr := os.RemoveAll(runDir); rmErr != nil {
			return "", errors.Join(err, rmErr)
		}
		return "", fmt.Errorf("run %s: %w", runID, err)
	}

	return runID, nil
}

// writeFile creates path, fills it with write and reports close errors too.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// List returns every readable run, oldest first. Directories without
// valid metadata are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		if runs[i].Timestamp.Equal(runs[j].Timestamp) {
			return runs[i].ID < runs[j].ID
		}
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.runDir(runID), metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}

	return &meta, nil
}

// LoadProfile reads back the table stored for runID.
func (s *Store) LoadProfile(runID string) (*profile.Profile, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.runDir(runID), profileFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	p, err := profile.ReadCSV(file)
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	p.Name = meta.Name
	p.Reference = meta.Reference
	return p, nil
}

// runDir keeps run IDs from escaping the base directory.
func (s *Store) runDir(runID string) string {
	return filepath.Join(s.baseDir, filepath.Base(filepath.Clean("/"+runID)))
}
