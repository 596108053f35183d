package chunk_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/plotfence/chunk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSplit covers the basic shapes a row can take.
func TestSplit(t *testing.T) {
	cases := []struct {
		name string
		row  string
		want []chunk.Run
	}{
		{"Empty", "", nil},
		{"SingleCell", "A", []chunk.Run{{Symbol: 'A', Start: 0, End: 1}}},
		{"Uniform", "AAAA", []chunk.Run{{Symbol: 'A', Start: 0, End: 4}}},
		{"Alternating", "ABA", []chunk.Run{
			{Symbol: 'A', Start: 0, End: 1},
			{Symbol: 'B', Start: 1, End: 2},
			{Symbol: 'A', Start: 2, End: 3},
		}},
		{"Mixed", "RRRRIICCFF", []chunk.Run{
			{Symbol: 'R', Start: 0, End: 4},
			{Symbol: 'I', Start: 4, End: 6},
			{Symbol: 'C', Start: 6, End: 8},
			{Symbol: 'F', Start: 8, End: 10},
		}},
		{"Unicode", "ééx", []chunk.Run{
			{Symbol: 'é', Start: 0, End: 2},
			{Symbol: 'x', Start: 2, End: 3},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, chunk.Split([]rune(tc.row)))
		})
	}
}

// TestSplit_CoversRow checks on random rows that runs are maximal, sorted,
// disjoint and cover every column.
func TestSplit_CoversRow(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		row := make([]rune, 1+rng.Intn(30))
		for x := range row {
			row[x] = rune('A' + rng.Intn(3))
		}
		runs := chunk.Split(row)
		require.NotEmpty(t, runs)
		assert.Equal(t, 0, runs[0].Start)
		assert.Equal(t, len(row), runs[len(runs)-1].End)
		for k, r := range runs {
			assert.Positive(t, r.Len())
			for x := r.Start; x < r.End; x++ {
				assert.Equal(t, r.Symbol, row[x])
			}
			if k > 0 {
				assert.Equal(t, runs[k-1].End, r.Start, "runs must be contiguous")
				assert.NotEqual(t, runs[k-1].Symbol, r.Symbol, "runs must be maximal")
			}
		}
	}
}

// TestRun_Overlap checks overlap widths, including disjoint ranges.
func TestRun_Overlap(t *testing.T) {
	a := chunk.Run{Symbol: 'A', Start: 2, End: 6}
	assert.Equal(t, 4, a.Overlap(a))
	assert.Equal(t, 2, a.Overlap(chunk.Run{Start: 4, End: 9}))
	assert.Equal(t, 1, a.Overlap(chunk.Run{Start: 0, End: 3}))
	assert.Equal(t, 0, a.Overlap(chunk.Run{Start: 6, End: 8}))
	assert.Negative(t, a.Overlap(chunk.Run{Start: 8, End: 9}))
}

// TestSplitAll_Order checks that parallel chunking keeps row order.
func TestSplitAll_Order(t *testing.T) {
	rows := [][]rune{[]rune("AAB"), []rune("CCC"), []rune("DEE"), []rune("FGH")}
	out, err := chunk.SplitAll(context.Background(), rows, 3)
	require.NoError(t, err)
	require.Len(t, out, len(rows))
	for y, row := range rows {
		assert.Equal(t, chunk.Split(row), out[y], "row %d", y)
	}
}

// TestSplitAll_Errors covers bad worker counts and cancellation.
func TestSplitAll_Errors(t *testing.T) {
	rows := [][]rune{[]rune("AB")}

	_, err := chunk.SplitAll(context.Background(), rows, 0)
	assert.ErrorIs(t, err, chunk.ErrBadWorkers)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = chunk.SplitAll(ctx, rows, 2)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestCache verifies memoised results match Split and repeated rows hit the cache.
func TestCache(t *testing.T) {
	_, err := chunk.NewCache(0)
	assert.ErrorIs(t, err, chunk.ErrBadCacheSize)

	c, err := chunk.NewCache(2)
	require.NoError(t, err)

	rows := [][]rune{[]rune("AAB"), []rune("AAB"), []rune("XYZ"), []rune("AAB")}
	out, err := c.SplitAll(context.Background(), rows, 2)
	require.NoError(t, err)
	for y, row := range rows {
		assert.Equal(t, chunk.Split(row), out[y])
	}
	assert.Equal(t, 2, c.Len(), "two distinct rows")

	c.Split([]rune("QQ"))
	assert.Equal(t, 2, c.Len(), "size-bounded")
}
