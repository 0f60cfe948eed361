package diag

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCSVOutputRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	out := NewCSVOutput(path, 2, 3)
	if err := out.Append([]float64{1, 2.5, -3e-19}); err != nil {
		t.Fatal(err)
	}
	if err := out.Append([]float64{4, 5, 6}); err != nil {
		t.Fatal(err)
	}
	if err := out.WriteFile(); err != nil {
		t.Fatal(err)
	}

	rows, err := ReadCSV(path)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]float64{{1, 2.5, -3e-19}, {4, 5, 6}}
	if len(rows) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(rows))
	}
	for i := range want {
		for j := range want[i] {
			if rows[i][j] != want[i][j] {
				t.Errorf("row %d col %d = %v, want %v", i, j, rows[i][j], want[i][j])
			}
		}
	}
}

func TestCSVOutputCopiesRows(t *testing.T) {
	// Diagnostics hand the same live buffer to every append, so the
	// buffer contents must be copied, not referenced.
	path := filepath.Join(t.TempDir(), "out.csv")
	out := NewCSVOutput(path, 2, 3)

	row := []float64{1, 1, 1}
	if err := out.Append(row); err != nil {
		t.Fatal(err)
	}
	row[1] = 99
	if err := out.Append(row); err != nil {
		t.Fatal(err)
	}
	if err := out.WriteFile(); err != nil {
		t.Fatal(err)
	}

	rows, err := ReadCSV(path)
	if err != nil {
		t.Fatal(err)
	}
	if rows[0][1] != 1 || rows[1][1] != 99 {
		t.Errorf("buffered rows track later mutations: %v", rows)
	}
}

func TestCSVOutputBufferFull(t *testing.T) {
	out := NewCSVOutput(filepath.Join(t.TempDir(), "out.csv"), 1, 2)

	if err := out.Append([]float64{1, 2}); err != nil {
		t.Fatal(err)
	}
	if err := out.Append([]float64{3, 4}); !errors.Is(err, ErrBufferFull) {
		t.Errorf("expected ErrBufferFull, got %v", err)
	}
}

func TestReadCSVNonNumeric(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	if err := os.WriteFile(path, []byte("1,abc,3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadCSV(path); err == nil {
		t.Error("expected parse error for non-numeric field")
	}
}
