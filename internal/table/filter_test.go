package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleTable() Table {
	return Table{
		Columns: []string{"title", "year", "note"},
		Rows: [][]string{
			{"ZnO film", "2020", "annealed"},
			{"TiO2 powder", "2019", "as received"},
			{"Graphene oxide", "2021", "batch 2020-B"},
			{"Blank", "", ""},
		},
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()

	t.Run("empty keyword returns the full table", func(t *testing.T) {
		t.Parallel()

		in := sampleTable()
		out := Filter(in, "")
		assert.Equal(t, in, out)
	})

	t.Run("substring match in any cell", func(t *testing.T) {
		t.Parallel()

		out := Filter(sampleTable(), "2020")
		assert.Equal(t, [][]string{
			{"ZnO film", "2020", "annealed"},
			{"Graphene oxide", "2021", "batch 2020-B"},
		}, out.Rows)
		assert.Equal(t, []string{"title", "year", "note"}, out.Columns)
	})

	t.Run("case insensitive", func(t *testing.T) {
		t.Parallel()

		out := Filter(sampleTable(), "ZNO")
		assert.Len(t, out.Rows, 1)
		assert.Equal(t, "ZnO film", out.Rows[0][0])

		out = Filter(sampleTable(), "tio2")
		assert.Len(t, out.Rows, 1)
	})

	t.Run("no match yields no rows", func(t *testing.T) {
		t.Parallel()

		out := Filter(sampleTable(), "silicon")
		assert.Empty(t, out.Rows)
		assert.Equal(t, []string{"title", "year", "note"}, out.Columns)
	})
}
