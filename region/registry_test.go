package region_test

import (
	"testing"

	"github.com/katalvlaran/plotfence/region"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// RegistrySuite exercises create/resolve/merge/finalize on a fresh Registry.
type RegistrySuite struct {
	suite.Suite
	reg *region.Registry
}

func (s *RegistrySuite) SetupTest() {
	s.reg = region.NewRegistry()
}

// TestCreateAndGet checks that a created region is reachable and mutable.
func (s *RegistrySuite) TestCreateAndGet() {
	id := region.ID{Row: 0, Col: 3}
	require.NoError(s.T(), s.reg.Create(id, 'A', 2, 6))

	got, err := s.reg.Get(id)
	require.NoError(s.T(), err)
	require.Equal(s.T(), region.Region{Symbol: 'A', Area: 2, Perimeter: 6}, *got)

	got.Area++
	again, _ := s.reg.Get(id)
	require.Equal(s.T(), 3, again.Area, "Get must hand out the live accumulator")
}

// TestCreateRejects covers duplicate IDs, retired IDs and impossible totals.
func (s *RegistrySuite) TestCreateRejects() {
	a, b := region.ID{Row: 0, Col: 0}, region.ID{Row: 0, Col: 2}
	require.NoError(s.T(), s.reg.Create(a, 'A', 1, 4))
	require.ErrorIs(s.T(), s.reg.Create(a, 'A', 1, 4), region.ErrDuplicateID)

	require.NoError(s.T(), s.reg.Create(b, 'A', 1, 4))
	merged, err := s.reg.Merge(a, b, 1)
	require.NoError(s.T(), err)
	require.True(s.T(), merged)
	require.ErrorIs(s.T(), s.reg.Create(b, 'A', 1, 4), region.ErrDuplicateID, "retired ids are never reused")

	require.ErrorIs(s.T(), s.reg.Create(region.ID{Row: 5}, 'A', 0, 4), region.ErrBadRegion)
	require.ErrorIs(s.T(), s.reg.Create(region.ID{Row: 6}, 'A', 1, -2), region.ErrBadRegion)
}

// TestResolveUnknown ensures IDs that never existed are reported.
func (s *RegistrySuite) TestResolveUnknown() {
	_, err := s.reg.Resolve(region.ID{Row: 9, Col: 9})
	require.ErrorIs(s.T(), err, region.ErrUnknownID)
	_, err = s.reg.Get(region.ID{Row: 9, Col: 9})
	require.ErrorIs(s.T(), err, region.ErrUnknownID)
}

// TestMergeArithmetic checks area/perimeter folding and the redirect.
func (s *RegistrySuite) TestMergeArithmetic() {
	a, b := region.ID{Row: 0, Col: 0}, region.ID{Row: 0, Col: 2}
	require.NoError(s.T(), s.reg.Create(a, 'A', 6, 14))
	require.NoError(s.T(), s.reg.Create(b, 'A', 1, 4))

	merged, err := s.reg.Merge(a, b, 1)
	require.NoError(s.T(), err)
	require.True(s.T(), merged)

	got, err := s.reg.Get(b)
	require.NoError(s.T(), err)
	require.Equal(s.T(), region.Region{Symbol: 'A', Area: 7, Perimeter: 16}, *got)
	require.Equal(s.T(), 1, s.reg.Len())
	require.Equal(s.T(), 1, s.reg.Retired())

	live, err := s.reg.Resolve(b)
	require.NoError(s.T(), err)
	require.Equal(s.T(), a, live)
}

// TestMergeSameRegion ensures a same-region touch is a no-op.
func (s *RegistrySuite) TestMergeSameRegion() {
	a, b := region.ID{Row: 0, Col: 0}, region.ID{Row: 0, Col: 2}
	require.NoError(s.T(), s.reg.Create(a, 'A', 1, 4))
	require.NoError(s.T(), s.reg.Create(b, 'A', 1, 4))
	_, err := s.reg.Merge(a, b, 1)
	require.NoError(s.T(), err)

	merged, err := s.reg.Merge(b, a, 3)
	require.NoError(s.T(), err)
	require.False(s.T(), merged)
	got, _ := s.reg.Get(a)
	require.Equal(s.T(), 2, got.Area)
	require.Equal(s.T(), 6, got.Perimeter)
}

// TestMergeSymbolMismatch ensures regions of different symbols never merge.
func (s *RegistrySuite) TestMergeSymbolMismatch() {
	a, b := region.ID{Row: 0, Col: 0}, region.ID{Row: 0, Col: 1}
	require.NoError(s.T(), s.reg.Create(a, 'A', 1, 4))
	require.NoError(s.T(), s.reg.Create(b, 'B', 1, 4))
	_, err := s.reg.Merge(a, b, 1)
	require.ErrorIs(s.T(), err, region.ErrSymbolMismatch)
	require.Equal(s.T(), 2, s.reg.Len())
}

// TestMultiHopResolve builds a chain a→b→c and checks resolution plus compression.
func (s *RegistrySuite) TestMultiHopResolve() {
	a, b, c := region.ID{Row: 0, Col: 0}, region.ID{Row: 0, Col: 2}, region.ID{Row: 0, Col: 4}
	for _, id := range []region.ID{a, b, c} {
		require.NoError(s.T(), s.reg.Create(id, 'Z', 1, 4))
	}
	_, err := s.reg.Merge(b, a, 0)
	require.NoError(s.T(), err)
	_, err = s.reg.Merge(c, b, 0)
	require.NoError(s.T(), err)

	live, err := s.reg.Resolve(a)
	require.NoError(s.T(), err)
	require.Equal(s.T(), c, live)

	got, _ := s.reg.Get(a)
	require.Equal(s.T(), region.Region{Symbol: 'Z', Area: 3, Perimeter: 12}, *got)
	require.Equal(s.T(), 2, s.reg.Retired())
}

// TestFinalizeOrder checks Finalize returns live regions ordered by ID.
func (s *RegistrySuite) TestFinalizeOrder() {
	require.NoError(s.T(), s.reg.Create(region.ID{Row: 1, Col: 0}, 'C', 3, 8))
	require.NoError(s.T(), s.reg.Create(region.ID{Row: 0, Col: 4}, 'B', 2, 6))
	require.NoError(s.T(), s.reg.Create(region.ID{Row: 0, Col: 0}, 'A', 1, 4))

	got := s.reg.Finalize()
	require.Equal(s.T(), []region.Region{
		{Symbol: 'A', Area: 1, Perimeter: 4},
		{Symbol: 'B', Area: 2, Perimeter: 6},
		{Symbol: 'C', Area: 3, Perimeter: 8},
	}, got)
	require.Equal(s.T(), 24, got[2].Cost())
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistrySuite))
}
