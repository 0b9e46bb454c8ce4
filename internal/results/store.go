package results

import (
	"sync"

	"ftirdash/internal/table"
)

// Entry is one ingested file.
type Entry struct {
	Name  string
	Table table.Table
	Color string
}

// Upload is a raw file handed to IngestBatch.
type Upload struct {
	Name string
	Data []byte
	// Err is set when the upload could not even be read; the file is then
	// reported as failed without being parsed.
	Err error
}

// Status describes what happened to one upload in a batch.
type Status int

const (
	// StatusIngested means the file was parsed and stored.
	StatusIngested Status = iota
	// StatusDuplicate means a file with the same name was already stored.
	StatusDuplicate
	// StatusFailed means the file could not be parsed.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIngested:
		return "ingested"
	case StatusDuplicate:
		return "duplicate"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the per-file result of IngestBatch.
type Outcome struct {
	Name   string
	Status Status
	Color  string
	Rows   int
	Err    error
}

// Store holds the entries of one session. The zero value is not usable;
// call NewStore.
type Store struct {
	mu      sync.RWMutex
	entries []Entry
	index   map[string]int
	maxRows int
}

// NewStore creates an empty store. maxRows limits the rows accepted per
// file; zero or less means no limit.
func NewStore(maxRows int) *Store {
	return &Store{
		index:   make(map[string]int),
		maxRows: maxRows,
	}
}

// Ingest parses raw and stores it under name with the next palette color.
// It reports false without touching the store when name is already present.
// Parse failures come back as *ParseError and consume no color.
func (s *Store) Ingest(name string, raw []byte) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[name]; ok {
		return false, nil
	}

	t, err := table.Parse(name, raw, s.maxRows)
	if err != nil {
		return false, &ParseError{File: name, Err: err}
	}

	s.index[name] = len(s.entries)
	s.entries = append(s.entries, Entry{
		Name:  name,
		Table: t,
		Color: ColorFor(len(s.entries)),
	})
	return true, nil
}

// IngestBatch ingests every upload in order and returns one outcome per
// upload. A failing file does not prevent the others from being ingested.
func (s *Store) IngestBatch(uploads []Upload) []Outcome {
	outcomes := make([]Outcome, 0, len(uploads))
	for _, u := range uploads {
		out := Outcome{Name: u.Name}
		var (
			added bool
			err   error
		)
		if u.Err != nil {
			err = &ParseError{File: u.Name, Err: u.Err}
		} else {
			added, err = s.Ingest(u.Name, u.Data)
		}

		switch {
		case err != nil:
			out.Status = StatusFailed
			out.Err = err
		case added:
			out.Status = StatusIngested
		default:
			out.Status = StatusDuplicate
		}
		if e, ok := s.Lookup(u.Name); ok && err == nil {
			out.Color = e.Color
			out.Rows = e.Table.Len()
		}
		outcomes = append(outcomes, out)
	}
	return outcomes
}

// Snapshot returns the entries in ingestion order.
func (s *Store) Snapshot() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Lookup returns the entry stored under name.
func (s *Store) Lookup(name string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[name]
	if !ok {
		return Entry{}, false
	}
	return s.entries[i], true
}

// Len returns the number of stored files.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Reset drops every entry and restarts the color cycle.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	s.index = make(map[string]int)
}

// Tables returns the stored tables in ingestion order.
func (s *Store) Tables() []table.Table {
	snap := s.Snapshot()
	tables := make([]table.Table, len(snap))
	for i, e := range snap {
		tables[i] = e.Table
	}
	return tables
}

// Combined merges every stored table and normalizes the column labels.
func (s *Store) Combined() table.Table {
	return table.Combine(s.Tables()...)
}
