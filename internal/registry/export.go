package registry

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cast"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

const (
	exportTimeLayout = "01_02_2006_15_04_05"
	exportSeparator  = ';'
	missingMarker    = "Nan"
)

// Export writes the whole registry to dir as a cp1251, ';'-separated CSV named
// after now. The registry is not cleared. Returns ErrEmpty when there is
// nothing to write.
func (r *Registry) Export(dir string, now time.Time) (string, error) {
	rows := r.Records()
	if len(rows) == 0 {
		return "", ErrEmpty
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: create %s: %w", ErrExportFailed, dir, err)
	}

	path := filepath.Join(dir, now.Format(exportTimeLayout)+".csv")
	header := r.Columns()
	err := writeFile(path, func(w io.Writer) error {
		enc := encoding.ReplaceUnsupported(charmap.Windows1251.NewEncoder())
		tw := transform.NewWriter(w, enc)

		cw := csv.NewWriter(tw)
		cw.Comma = exportSeparator
		if err := writeTable(cw, header, rows); err != nil {
			return err
		}
		return tw.Close()
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	return path, nil
}

// writeFile creates path and fills it with write. A failed write leaves no
// file behind.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	err = write(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return err
	}
	return nil
}

func writeTable(w *csv.Writer, header []string, rows [][]any) error {
	if err := w.Write(header); err != nil {
		return err
	}
	line := make([]string, len(header))
	for _, row := range rows {
		for i, v := range row {
			line[i] = formatCell(v)
		}
		if err := w.Write(line); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// formatCell renders floats with four decimals, integers plainly and missing
// values as Nan.
func formatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return missingMarker
	case float64:
		if math.IsNaN(x) {
			return missingMarker
		}
		return strconv.FormatFloat(x, 'f', 4, 64)
	case float32:
		return formatCell(float64(x))
	case int64:
		return strconv.FormatInt(x, 10)
	case int:
		return strconv.Itoa(x)
	case string:
		return x
	default:
		return cast.ToString(v)
	}
}
