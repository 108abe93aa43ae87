package registry

import (
	"fmt"
	"io"
	"math"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Patients"

// WriteSpreadsheet writes the registry as a single-sheet xlsx workbook with a
// frozen header row. Missing values are left as empty cells.
func (r *Registry) WriteSpreadsheet(w io.Writer) error {
	rows := r.Records()
	if len(rows) == 0 {
		return ErrEmpty
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("%w: rename sheet: %w", ErrExportFailed, err)
	}

	header := make([]any, 0, len(rows[0]))
	for _, name := range r.Columns() {
		header = append(header, name)
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("%w: header: %w", ErrExportFailed, err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExportFailed, err)
		}
		values := make([]any, len(row))
		for j, v := range row {
			if fv, ok := v.(float64); ok && math.IsNaN(fv) {
				continue
			}
			values[j] = v
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return fmt.Errorf("%w: row %d: %w", ErrExportFailed, i+1, err)
		}
	}

	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("%w: freeze header: %w", ErrExportFailed, err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("%w: %w", ErrExportFailed, err)
	}
	return nil
}
