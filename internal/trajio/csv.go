// Package trajio reads and writes 2-D trajectories as two-column CSV and
// generates synthetic trajectories for demos and tests.
package trajio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ReadCSV reads a trajectory from two-column x,y CSV data. A single leading
// header row is skipped when its first field does not parse as a number.
// Columns beyond the first two are ignored.
func ReadCSV(r io.Reader) (x, y []float64, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	row := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read csv: %w", err)
		}
		row++
		if len(rec) < 2 {
			return nil, nil, fmt.Errorf("row %d: want at least 2 columns, got %d", row, len(rec))
		}

		xv, errX := strconv.ParseFloat(rec[0], 64)
		yv, errY := strconv.ParseFloat(rec[1], 64)
		if errX != nil || errY != nil {
			if row == 1 && len(x) == 0 {
				// Header row.
				continue
			}
			return nil, nil, fmt.Errorf("row %d: parse %q: not a number pair", row, rec[:2])
		}
		x = append(x, xv)
		y = append(y, yv)
	}
	return x, y, nil
}

// ReadCSVFile reads a trajectory from the CSV file at path.
func ReadCSVFile(path string) (x, y []float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	x, y, err = ReadCSV(f)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return x, y, nil
}

// WriteCSV writes the trajectory to w as x,y CSV with a header row. Values
// round-trip exactly through ReadCSV.
func WriteCSV(w io.Writer, x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("mismatched trajectory: len(x)=%d len(y)=%d", len(x), len(y))
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i := range x {
		rec := []string{
			strconv.FormatFloat(x[i], 'g', -1, 64),
			strconv.FormatFloat(y[i], 'g', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write csv row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the trajectory to the CSV file at path, creating or
// truncating it.
func WriteCSVFile(path string, x, y []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteCSV(f, x, y); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
