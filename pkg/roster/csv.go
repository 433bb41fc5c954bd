package roster

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/routeworks/rosterlink/pkg/errors"
)

// ReadCSV decodes a roster from CSV data. The first record is the header
// row; duplicate headers keep the first occurrence's position and later
// values win within a row.
func ReadCSV(r io.Reader) (*Roster, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.NewParseError("csv", "", "missing header row", err)
	}
	if err != nil {
		return nil, errors.WrapParse("csv", "", err)
	}

	seen := make(map[string]bool, len(header))
	columns := make([]string, 0, len(header))
	for _, h := range header {
		if !seen[h] {
			seen[h] = true
			columns = append(columns, h)
		}
	}

	t := New(columns...)
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.WrapParse("csv", "", err)
		}
		rec := make(Record, len(header))
		for i, v := range fields {
			if i >= len(header) {
				break
			}
			rec[header[i]] = v
		}
		t.rows = append(t.rows, rec)
	}
	return t, nil
}

// ReadCSVFile decodes a roster from a CSV file on disk.
func ReadCSVFile(path string) (*Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close()

	t, err := ReadCSV(f)
	if err != nil {
		if pe, ok := err.(*errors.ParseError); ok {
			pe.File = path
		}
		return nil, err
	}
	return t, nil
}

// WriteCSV encodes the roster as CSV, header row first, preserving column
// order. Empty cells are written as empty fields.
func (t *Roster) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.columns); err != nil {
		return errors.WrapIO("write", "", err)
	}
	row := make([]string, len(t.columns))
	for _, rec := range t.rows {
		for i, col := range t.columns {
			row[i] = rec[col]
		}
		if err := cw.Write(row); err != nil {
			return errors.WrapIO("write", "", err)
		}
	}
	cw.Flush()
	return errors.WrapIO("flush", "", cw.Error())
}

// WriteCSVFile writes the roster to a CSV file, creating or truncating it.
func (t *Roster) WriteCSVFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	defer f.Close()
	return t.WriteCSV(f)
}
