package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"procexport/models"

	"go.uber.org/zap"
)

const filePerm = 0o644

// Header is the fixed column order of every export
var Header = []string{"Name", "PID", "User", "Started", "Threads", "Status"}

// ExportError reports a failed export. No file is left at Path when it is returned.
type ExportError struct {
	Path string
	Op   string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("failed to %s '%s': %v", e.Op, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

type Exporter struct {
	logger *zap.SugaredLogger
}

func New(logger *zap.SugaredLogger) *Exporter {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Exporter{logger: logger}
}

// Export writes records to path as CSV. The data goes to a temporary file in
// the same directory which is renamed over path once fully written, so path
// either holds the complete export or is unchanged.
func (e *Exporter) Export(path string, records []models.ProcessRecord) error {
	if path == "" {
		return &ExportError{Path: path, Op: "resolve", Err: fmt.Errorf("empty destination path")}
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return &ExportError{Path: path, Op: "create", Err: err}
	}
	tmpName := tmp.Name()

	cleanup := func(op string, err error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return &ExportError{Path: path, Op: op, Err: err}
	}

	if err := Write(tmp, records); err != nil {
		return cleanup("write", err)
	}
	if err := tmp.Sync(); err != nil {
		return cleanup("sync", err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		return cleanup("chmod", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return &ExportError{Path: path, Op: "close", Err: err}
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return &ExportError{Path: path, Op: "rename", Err: err}
	}

	e.logger.Debugw("Export written", "path", path, "rows", len(records))
	return nil
}

// Write encodes the header and one row per record as UTF-8 CSV
func Write(w io.Writer, records []models.ProcessRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, r := range records {
		if err := cw.Write(Row(r)); err != nil {
			return fmt.Errorf("failed to write pid %d: %w", r.PID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Row renders a record in Header order
func Row(r models.ProcessRecord) []string {
	return []string{
		r.Name,
		strconv.FormatInt(int64(r.PID), 10),
		r.User,
		r.Started,
		strconv.FormatInt(int64(r.Threads), 10),
		r.Status,
	}
}
