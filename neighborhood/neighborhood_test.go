package neighborhood_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/voxlab/neighborhood"
)

// TestOffsets_Counts checks table sizes, uniqueness and the unit-cube bound.
func TestOffsets_Counts(t *testing.T) {
	for _, topo := range []neighborhood.Topology{neighborhood.FaceAdjacency, neighborhood.FullAdjacency} {
		offs := topo.Offsets()
		require.Len(t, offs, topo.Degree(), topo.String())

		seen := make(map[neighborhood.Offset]bool, len(offs))
		for _, o := range offs {
			assert.False(t, seen[o], "duplicate offset %v", o)
			seen[o] = true
			assert.NotEqual(t, neighborhood.Offset{}, o, "origin must be excluded")
			for _, d := range []int{o.DX, o.DY, o.DZ} {
				assert.True(t, d >= -1 && d <= 1, "offset %v leaves the unit cube", o)
			}
			// every offset's mirror is present
			assert.Contains(t, offs, neighborhood.Offset{DX: -o.DX, DY: -o.DY, DZ: -o.DZ})
		}
	}
}

// TestFaceOffsets_AreAxisAligned ensures face offsets change exactly one axis.
func TestFaceOffsets_AreAxisAligned(t *testing.T) {
	for _, o := range neighborhood.FaceOffsets() {
		abs := 0
		for _, d := range []int{o.DX, o.DY, o.DZ} {
			if d != 0 {
				abs++
			}
		}
		assert.Equal(t, 1, abs, "offset %v", o)
	}
	assert.Equal(t, neighborhood.FaceOffsets(), neighborhood.FaceAdjacency.Offsets())
}

// TestOffsets_ReturnsCopy guards the shared table from caller mutation.
func TestOffsets_ReturnsCopy(t *testing.T) {
	offs := neighborhood.FullAdjacency.Offsets()
	offs[0] = neighborhood.Offset{DX: 9, DY: 9, DZ: 9}
	assert.NotEqual(t, offs[0], neighborhood.FullAdjacency.Offsets()[0])
}

// TestParse covers accepted selectors and the unsupported-topology error.
func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want neighborhood.Topology
		ok   bool
	}{
		{"6", neighborhood.FaceAdjacency, true},
		{"26", neighborhood.FullAdjacency, true},
		{"Face", neighborhood.FaceAdjacency, true},
		{" full ", neighborhood.FullAdjacency, true},
		{"18", 0, false},
		{"4", 0, false},
		{"cube", 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := neighborhood.ParseString(tc.in)
			if !tc.ok {
				assert.ErrorIs(t, err, neighborhood.ErrUnsupportedTopology)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := neighborhood.Parse(8)
	assert.ErrorIs(t, err, neighborhood.ErrUnsupportedTopology)
	assert.Nil(t, neighborhood.Topology(8).Offsets())
	assert.Equal(t, "Topology(8)", neighborhood.Topology(8).String())
	assert.Equal(t, "26-connectivity", neighborhood.FullAdjacency.String())
}
