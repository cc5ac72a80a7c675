package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/seawater/internal/profile"
)

type ExportData struct {
	Run     RunMetadata `json:"run"`
	Columns []string    `json:"columns"`
	Rows    [][]float64 `json:"rows"`
}

// ExportJSON writes a stored run, metadata and table, to w.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	p, err := s.LoadProfile(runID)
	if err != nil {
		return err
	}
	return writeExport(w, *meta, p)
}

// ExportJSONFile is ExportJSON to a file at path.
func (s *Store) ExportJSONFile(path, runID string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return s.ExportJSON(file, runID)
}

func writeExport(w io.Writer, meta RunMetadata, p *profile.Profile) error {
	data := ExportData{
		Run:     meta,
		Columns: p.Columns,
		Rows:    p.Rows,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
