package results

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ftirdash/internal/table"
)

func ftirFile(points ...string) []byte {
	data := "exported by spectrometer\nWavenumber (cm-1),%T\n"
	for _, p := range points {
		data += p + "\n"
	}
	return []byte(data)
}

func TestStoreIngest(t *testing.T) {
	t.Parallel()

	t.Run("stores table and first palette color", func(t *testing.T) {
		t.Parallel()

		s := NewStore(0)
		added, err := s.Ingest("zno.csv", ftirFile("4000,98", "3500,90"))
		require.NoError(t, err)
		assert.True(t, added)

		e, ok := s.Lookup("zno.csv")
		require.True(t, ok)
		assert.Equal(t, "red", e.Color)
		assert.Equal(t, 2, e.Table.Len())
		assert.Equal(t, []string{"Wavenumber (cm-1)", "%T"}, e.Table.Columns)
	})

	t.Run("same name is ingested at most once", func(t *testing.T) {
		t.Parallel()

		s := NewStore(0)
		_, err := s.Ingest("zno.csv", ftirFile("4000,98"))
		require.NoError(t, err)
		before, _ := s.Lookup("zno.csv")

		added, err := s.Ingest("zno.csv", ftirFile("1,2", "3,4", "5,6"))
		require.NoError(t, err)
		assert.False(t, added)

		after, _ := s.Lookup("zno.csv")
		assert.Equal(t, before, after)
		assert.Equal(t, 1, s.Len())
	})

	t.Run("parse failure is a ParseError and uses no color", func(t *testing.T) {
		t.Parallel()

		s := NewStore(0)
		_, err := s.Ingest("broken.csv", []byte("meta\nA,B\n1,2,3\n"))
		var perr *ParseError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, "broken.csv", perr.File)
		assert.Equal(t, 0, s.Len())

		_, err = s.Ingest("ok.csv", ftirFile("1,2"))
		require.NoError(t, err)
		e, _ := s.Lookup("ok.csv")
		assert.Equal(t, "red", e.Color)
	})

	t.Run("row limit applies per file", func(t *testing.T) {
		t.Parallel()

		s := NewStore(1)
		_, err := s.Ingest("big.csv", ftirFile("1,2", "3,4"))
		assert.ErrorIs(t, err, table.ErrTooManyRows)
	})
}

func TestStoreColorCycle(t *testing.T) {
	t.Parallel()

	s := NewStore(0)
	for i := 0; i < 10; i++ {
		_, err := s.Ingest(fmt.Sprintf("file%d.csv", i), ftirFile("1,2"))
		require.NoError(t, err)
	}

	snap := s.Snapshot()
	require.Len(t, snap, 10)
	seen := make(map[string]bool)
	for i := 0; i < 8; i++ {
		assert.Equal(t, Palette[i], snap[i].Color)
		seen[snap[i].Color] = true
	}
	assert.Len(t, seen, 8)
	assert.Equal(t, snap[0].Color, snap[8].Color)
	assert.Equal(t, snap[1].Color, snap[9].Color)
}

func TestStoreSnapshotOrder(t *testing.T) {
	t.Parallel()

	s := NewStore(0)
	for _, name := range []string{"c.csv", "a.csv", "b.csv"} {
		_, err := s.Ingest(name, ftirFile("1,2"))
		require.NoError(t, err)
	}

	var names []string
	for _, e := range s.Snapshot() {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"c.csv", "a.csv", "b.csv"}, names)
}

func TestStoreReset(t *testing.T) {
	t.Parallel()

	s := NewStore(0)
	_, _ = s.Ingest("a.csv", ftirFile("1,2"))
	_, _ = s.Ingest("b.csv", ftirFile("1,2"))
	s.Reset()

	assert.Equal(t, 0, s.Len())
	assert.True(t, s.Combined().Empty())

	_, err := s.Ingest("b.csv", ftirFile("1,2"))
	require.NoError(t, err)
	e, _ := s.Lookup("b.csv")
	assert.Equal(t, "red", e.Color)
}

func TestStoreIngestBatch(t *testing.T) {
	t.Parallel()

	s := NewStore(0)
	_, _ = s.Ingest("old.csv", ftirFile("1,2"))

	outcomes := s.IngestBatch([]Upload{
		{Name: "a.csv", Data: ftirFile("4000,98", "3000,80")},
		{Name: "bad.csv", Data: []byte("meta\nA,B\n1\n2,3,4\n")},
		{Name: "old.csv", Data: ftirFile("9,9")},
		{Name: "unreadable.csv", Err: errors.New("connection reset")},
		{Name: "notes.txt", Data: []byte("hello")},
		{Name: "b.csv", Data: ftirFile("4000,97")},
	})

	require.Len(t, outcomes, 6)
	assert.Equal(t, StatusIngested, outcomes[0].Status)
	assert.Equal(t, "blue", outcomes[0].Color)
	assert.Equal(t, 2, outcomes[0].Rows)

	assert.Equal(t, StatusFailed, outcomes[1].Status)
	var perr *ParseError
	assert.True(t, errors.As(outcomes[1].Err, &perr))

	assert.Equal(t, StatusDuplicate, outcomes[2].Status)
	assert.Equal(t, "red", outcomes[2].Color)

	assert.Equal(t, StatusFailed, outcomes[3].Status)
	assert.ErrorContains(t, outcomes[3].Err, "connection reset")

	assert.Equal(t, StatusFailed, outcomes[4].Status)
	assert.ErrorIs(t, outcomes[4].Err, table.ErrUnsupportedFormat)

	assert.Equal(t, StatusIngested, outcomes[5].Status)
	assert.Equal(t, "green", outcomes[5].Color)

	assert.Equal(t, 3, s.Len())
}

func TestStoreCombined(t *testing.T) {
	t.Parallel()

	s := NewStore(0)
	_, _ = s.Ingest("a.csv", ftirFile("4000,98", "3500,90"))
	_, _ = s.Ingest("b.csv", []byte("meta\nWavenumber (cm-1),%T,Year\n4000,97,2020\n"))

	combined := s.Combined()
	assert.Equal(t, []string{"wavenumbercm1", "t", "year"}, combined.Columns)
	assert.Equal(t, 3, combined.Len())
	assert.Equal(t, []string{"4000", "98", ""}, combined.Rows[0])
	assert.Equal(t, []string{"4000", "97", "2020"}, combined.Rows[2])
}

func TestStoreConcurrentIngestSameName(t *testing.T) {
	t.Parallel()

	s := NewStore(0)
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		added int
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := s.Ingest("same.csv", ftirFile("1,2"))
			if err == nil && ok {
				mu.Lock()
				added++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, added)
	assert.Equal(t, 1, s.Len())
}

func TestStatusString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ingested", StatusIngested.String())
	assert.Equal(t, "duplicate", StatusDuplicate.String())
	assert.Equal(t, "failed", StatusFailed.String())
	assert.Equal(t, "unknown", Status(42).String())
}
