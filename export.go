package launchplan

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// ExportConfig configures where and how results are written.
type ExportConfig struct {
	OutputDir string
	Filename  string
	AsCSV     bool
	Timestamp bool
}

// IsUseless returns whether this config doesn't actually do anything.
func (c ExportConfig) IsUseless() bool {
	return c.Filename == ""
}

// path returns the output file path for the provided extension.
func (c ExportConfig) path(ext string) string {
	name := c.Filename
	if c.Timestamp {
		t := time.Now()
		name = fmt.Sprintf("%s-%d-%02d-%02dT%02d.%02d.%02d", name, t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second())
	}
	dir := c.OutputDir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, name+"."+ext)
}

// Export writes the window report to the configured file, as CSV or JSON, and returns its path.
func (c ExportConfig) Export(report WindowReport) (string, error) {
	ext := "json"
	if c.AsCSV {
		ext = "csv"
	}
	fname := c.path(ext)
	f, err := os.Create(fname)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if c.AsCSV {
		err = WriteWindowsCSV(f, report)
	} else {
		err = WriteJSON(f, report)
	}
	if err != nil {
		return "", fmt.Errorf("writing %s: %w", fname, err)
	}
	return fname, f.Close()
}

// WriteWindowsCSV writes one line per candidate, with a header line.
func WriteWindowsCSV(w io.Writer, report WindowReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"source", "target", "date", "angular_separation_deg"}); err != nil {
		return err
	}
	for _, d := range report.Dates {
		if err := cw.Write([]string{report.Source, report.Target, d.Date, strconv.FormatFloat(d.Separation, 'f', 2, 64)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the indented JSON encoding of v.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
