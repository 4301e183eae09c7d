package tabio

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/kintree/kintree/annotate"
)

// Canonical annotation table header. Columns beyond these are carried as
// extra columns, preserved in order.
const (
	colLabel  = "kinase"
	colGroup  = "group"
	colFamily = "family"
)

// fixedColumns is the number of canonical leading columns.
const fixedColumns = 3

// ReadAnnotations parses an annotation table into an annotate.Source.
// The header must start with kinase,group,family; any further header cells
// name extra columns, and every data row must fill all columns.
func ReadAnnotations(r io.Reader) (*annotate.Source, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ReadAnnotations: %v: %w", err, ErrBadTable)
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("ReadAnnotations: empty table: %w", ErrBadTable)
	}

	header := rows[0]
	if len(header) < fixedColumns ||
		header[0] != colLabel || header[1] != colGroup || header[2] != colFamily {
		return nil, fmt.Errorf("ReadAnnotations: header %v, want %s,%s,%s,...: %w",
			header, colLabel, colGroup, colFamily, ErrBadTable)
	}

	src := annotate.NewSource(header[fixedColumns:]...)
	for i, row := range rows[1:] {
		if len(row) != len(header) {
			return nil, fmt.Errorf("ReadAnnotations: row %d has %d columns, want %d: %w",
				i+1, len(row), len(header), ErrBadTable)
		}
		rec := annotate.Record{
			Label:  row[0],
			Group:  row[1],
			Family: row[2],
			Extra:  append([]string(nil), row[fixedColumns:]...),
		}
		if err := src.Add(rec); err != nil {
			return nil, fmt.Errorf("ReadAnnotations: row %d: %w", i+1, err)
		}
	}
	return src, nil
}

// WriteAnnotations writes records as a CSV side table with the canonical
// header plus the given extra column names. Records are written in the
// order given (callers pass annotate.Map output, so the table follows the
// matrix label order).
func WriteAnnotations(w io.Writer, records []annotate.Record, extraColumns []string) error {
	cw := csv.NewWriter(w)

	header := append([]string{colLabel, colGroup, colFamily}, extraColumns...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("WriteAnnotations: header: %w", err)
	}
	for _, r := range records {
		row := append([]string{r.Label, r.Group, r.Family}, r.Extra...)
		if len(row) != len(header) {
			return fmt.Errorf("WriteAnnotations: record %q has %d extra cells, want %d: %w",
				r.Label, len(r.Extra), len(extraColumns), ErrBadTable)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("WriteAnnotations: record %q: %w", r.Label, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
