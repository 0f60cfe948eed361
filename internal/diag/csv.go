// Package diag records published simulation state. Diagnostics either
// print per step or buffer rows into a preallocated CSV table flushed
// once at finalize.
package diag

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
)

// ErrBufferFull reports an append beyond the preallocated row budget.
var ErrBufferFull = errors.New("diag: output buffer full")

// CSVOutput accumulates a fixed number of rows in memory and writes them
// to disk once at the end of the run. The row budget is fixed up front
// because the run length is; appends beyond it are refused, not grown.
type CSVOutput struct {
	path string
	rows [][]float64
	next int
}

// NewCSVOutput preallocates a rows × cols buffer destined for path.
func NewCSVOutput(path string, rows, cols int) *CSVOutput {
	buf := make([][]float64, rows)
	for i := range buf {
		buf[i] = make([]float64, cols)
	}
	return &CSVOutput{path: path, rows: buf}
}

// Append copies one row into the buffer.
func (o *CSVOutput) Append(row []float64) error {
	if o.next >= len(o.rows) {
		return fmt.Errorf("%w: %d rows", ErrBufferFull, len(o.rows))
	}
	copy(o.rows[o.next], row)
	o.next++
	return nil
}

// WriteFile writes the filled rows to the output path: no header, full
// float precision, one row per line.
func (o *CSVOutput) WriteFile() error {
	file, err := os.Create(o.path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	for _, row := range o.rows[:o.next] {
		record := make([]string, 0, len(row))
		for _, v := range row {
			record = append(record, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// ReadCSV loads a headerless numeric CSV as written by WriteFile. Ragged
// rows are accepted; non-numeric fields are not.
func ReadCSV(path string) ([][]float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	rows := make([][]float64, 0, len(records))
	for _, record := range records {
		row := make([]float64, 0, len(record))
		for _, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
