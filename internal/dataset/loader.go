// Package dataset loads the forcing budget CSV into a domain.Dataset.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/couchcryptid/radiative-forcing-dashboard/internal/domain"
)

// Load reads the CSV at path and builds the immutable dataset. Any read or
// parse failure is returned to the caller; startup treats it as fatal, so
// there is no retry or partial-load path.
func Load(path string) (*domain.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("dataset %s: missing header row", path)
	}

	cols, err := headerIndex(rows[0])
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}

	records := make([]domain.Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		contribution, err := strconv.ParseFloat(row[cols.contribution], 64)
		if err != nil {
			return nil, fmt.Errorf("dataset %s row %d: parse Contribution %q: %w",
				path, i+2, row[cols.contribution], err)
		}
		records = append(records, domain.Record{
			Source:       row[cols.source],
			Measure:      domain.Measure(row[cols.measure]),
			Contribution: contribution,
		})
	}

	return domain.NewDataset(records), nil
}

type columns struct {
	source       int
	measure      int
	contribution int
}

// headerIndex resolves the required columns by name so column order in the
// CSV does not matter. Measure values themselves are not validated.
func headerIndex(header []string) (columns, error) {
	cols := columns{source: -1, measure: -1, contribution: -1}
	for i, name := range header {
		switch name {
		case "Source":
			cols.source = i
		case "Measure":
			cols.measure = i
		case "Contribution":
			cols.contribution = i
		}
	}

	for _, c := range []struct {
		name string
		idx  int
	}{
		{"Source", cols.source},
		{"Measure", cols.measure},
		{"Contribution", cols.contribution},
	} {
		if c.idx < 0 {
			return columns{}, fmt.Errorf("missing required column %q", c.name)
		}
	}
	return cols, nil
}
