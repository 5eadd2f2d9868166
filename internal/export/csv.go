package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"modcon/internal/domain"
)

// writeCSV renders a header and one record per row with CRLF line endings.
func writeCSV(columns []string, rows []domain.ExportRow, record func(domain.ExportRow) []string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.UseCRLF = true
	if err := w.Write(columns); err != nil {
		return nil, err
	}
	for i, row := range rows {
		rec := record(row)
		if len(rec) != len(columns) {
			return nil, fmt.Errorf("row %d: %d values for %d columns", i+1, len(rec), len(columns))
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
