package domain

import "time"

// Dataset is the immutable in-memory forcing table, built once at startup.
type Dataset struct {
	records  []Record
	loadedAt time.Time
}

// NewDataset copies records into an immutable Dataset and stamps the load time.
func NewDataset(records []Record) *Dataset {
	rs := make([]Record, len(records))
	copy(rs, records)
	return &Dataset{
		records:  rs,
		loadedAt: clock.Now(),
	}
}

// Records returns every row in source order. The slice is a copy.
func (d *Dataset) Records() []Record {
	rs := make([]Record, len(d.records))
	copy(rs, d.records)
	return rs
}

// Len reports the number of rows.
func (d *Dataset) Len() int { return len(d.records) }

// LoadedAt reports when the dataset was built.
func (d *Dataset) LoadedAt() time.Time { return d.loadedAt }

// Sources returns the unique Source labels in first-occurrence order.
// These are the checklist options on the dashboard page.
func (d *Dataset) Sources() []string {
	seen := make(map[string]struct{}, len(d.records))
	sources := make([]string, 0, len(d.records))
	for _, r := range d.records {
		if _, ok := seen[r.Source]; ok {
			continue
		}
		seen[r.Source] = struct{}{}
		sources = append(sources, r.Source)
	}
	return sources
}

// Filter returns the rows whose Source is in selected, preserving source
// order. An empty or nil selection yields an empty, non-nil slice.
func (d *Dataset) Filter(selected []string) []Record {
	want := make(map[string]struct{}, len(selected))
	for _, s := range selected {
		want[s] = struct{}{}
	}

	rows := make([]Record, 0, len(d.records))
	for _, r := range d.records {
		if _, ok := want[r.Source]; ok {
			rows = append(rows, r)
		}
	}
	return rows
}
