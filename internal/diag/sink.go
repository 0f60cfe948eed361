package diag

import (
	"fmt"

	"github.com/calanor/fieldrig/internal/sim"
)

// sink routes diagnostic rows to their configured destination. The
// output_type lookup is exhaustive over stdout and csv; anything else is
// a configuration error raised before the run starts.
type sink struct {
	csv  *CSVOutput
	emit func(row []float64) error
}

func newSink(output, filename string, rows, cols int) (*sink, error) {
	s := &sink{}
	switch output {
	case "stdout":
		s.emit = func(row []float64) error {
			_, err := fmt.Println(row)
			return err
		}
	case "csv":
		s.csv = NewCSVOutput(filename, rows, cols)
		s.emit = s.csv.Append
	default:
		return nil, fmt.Errorf("%w: output_type %q", sim.ErrBadParam, output)
	}
	return s, nil
}

func (s *sink) flush() error {
	if s.csv != nil {
		return s.csv.WriteFile()
	}
	return nil
}
