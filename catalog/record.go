package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/hoyle1974/timespan"
)

// Record is a named span kept in the catalog.
type Record struct {
	ID        uuid.UUID
	Name      string
	Span      timespan.DateSpan
	UpdatedAt time.Time
}

// Match is a record overlapping a queried span, together with the part they
// have in common.
type Match struct {
	Record Record
	Common timespan.DateSpan
}

// storedRecord is what is actually written to storage.  The span is kept in
// its text form so the encoding does not depend on the span's layout.
type storedRecord struct {
	ID        uuid.UUID
	Name      string
	Span      string
	UpdatedAt time.Time
}

func (r Record) stored() storedRecord {
	return storedRecord{
		ID:        r.ID,
		Name:      r.Name,
		Span:      timespan.FormatSpan(r.Span),
		UpdatedAt: r.UpdatedAt,
	}
}

func (s storedRecord) record() (Record, error) {
	span, err := timespan.ParseSpan(s.Span)
	if err != nil {
		return Record{}, err
	}
	return Record{ID: s.ID, Name: s.Name, Span: span, UpdatedAt: s.UpdatedAt}, nil
}
