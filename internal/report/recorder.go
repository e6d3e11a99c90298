package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Kpubaq/404tsemey/internal/model"
)

// Recorder persists per-run debug artifacts for inspection. All sinks are
// flat files; a failed record is logged by the caller, never fatal.
type Recorder interface {
	RecordScores(cs *model.ClientScores) error
	RecordMissing(missing map[int][]string) error
	RecordEvaluation(summary *EvaluationSummary, rows []EvaluationRow) error
	Close() error
}

// FileRecorder writes debug artifacts as JSON and CSV files under a
// single directory, stamped with a run id.
type FileRecorder struct {
	dir   string
	runID string
}

// NewFileRecorder creates (if needed) the debug directory.
func NewFileRecorder(dir string) (*FileRecorder, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create debug dir: %w", err)
	}
	r := &FileRecorder{dir: dir, runID: uuid.New().String()}
	log.Info().Str("dir", dir).Str("run_id", r.runID).Msg("debug recorder opened")
	return r, nil
}

// RunID identifies this batch run across all artifacts.
func (r *FileRecorder) RunID() string { return r.runID }

func (r *FileRecorder) RecordScores(cs *model.ClientScores) error {
	name := fmt.Sprintf("client_%d_scores.json", cs.ClientCode)
	return r.writeJSON(name, cs)
}

func (r *FileRecorder) RecordMissing(missing map[int][]string) error {
	return r.writeJSON("missing_files.json", missing)
}

func (r *FileRecorder) RecordEvaluation(summary *EvaluationSummary, rows []EvaluationRow) error {
	summary.RunID = r.runID
	if err := r.writeJSON("evaluation_summary.json", summary); err != nil {
		return err
	}
	return writeEvaluationCSV(filepath.Join(r.dir, "evaluation_per_client.csv"), rows)
}

func (r *FileRecorder) Close() error { return nil }

// writeJSON marshals v indented with HTML escaping off so the Cyrillic
// payloads stay readable.
func (r *FileRecorder) writeJSON(name string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	path := filepath.Join(r.dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// NoopRecorder discards all artifacts; used when no debug dir is wanted.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordScores(_ *model.ClientScores) error { return nil }
func (n *NoopRecorder) RecordMissing(_ map[int][]string) error   { return nil }
func (n *NoopRecorder) RecordEvaluation(_ *EvaluationSummary, _ []EvaluationRow) error {
	return nil
}
func (n *NoopRecorder) Close() error { return nil }
