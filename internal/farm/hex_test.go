package farm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexCoordS(t *testing.T) {
	assert.Equal(t, 0, HexCoord{Q: 0, R: 0}.S())
	assert.Equal(t, -3, HexCoord{Q: 1, R: 2}.S())
	assert.Equal(t, 5, HexCoord{Q: -2, R: -3}.S())
}

func TestNeighborsFixedOrder(t *testing.T) {
	got := HexCoord{Q: 0, R: 0}.Neighbors()
	want := [6]HexCoord{
		{Q: 1, R: 0},  // E
		{Q: 1, R: -1}, // NE
		{Q: 0, R: -1}, // NW
		{Q: -1, R: 0}, // W
		{Q: -1, R: 1}, // SW
		{Q: 0, R: 1},  // SE
	}
	assert.Equal(t, want, got, "neighbor order must never change")

	got = HexCoord{Q: 2, R: -1}.Neighbors()
	for i, dir := range HexNeighborDirections {
		assert.Equal(t, HexCoord{Q: 2 + dir.Q, R: -1 + dir.R}, got[i])
	}
}

func TestDistance(t *testing.T) {
	cases := []struct {
		a, b HexCoord
		want int
	}{
		{HexCoord{0, 0}, HexCoord{0, 0}, 0},
		{HexCoord{0, 0}, HexCoord{1, 0}, 1},
		{HexCoord{0, 0}, HexCoord{0, -1}, 1},
		{HexCoord{0, 0}, HexCoord{-1, 1}, 1},
		{HexCoord{0, 0}, HexCoord{2, -1}, 2},
		{HexCoord{0, 0}, HexCoord{2, 2}, 4},
		{HexCoord{0, 0}, HexCoord{-3, 0}, 3},
		{HexCoord{-2, 1}, HexCoord{3, -2}, 5},
		{HexCoord{1, -2}, HexCoord{-1, 1}, 3},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Distance(tc.a, tc.b), "distance %s -> %s", tc.a, tc.b)
	}
}

func TestDistanceIsAMetric(t *testing.T) {
	// Enumerate the radius-2 grid and check the metric axioms pairwise.
	var cells []HexCoord
	for q := -2; q <= 2; q++ {
		for r := -2; r <= 2; r++ {
			c := HexCoord{Q: q, R: r}
			if c.InRadius(2) {
				cells = append(cells, c)
			}
		}
	}
	require.Len(t, cells, 19)

	for _, a := range cells {
		for _, b := range cells {
			d := Distance(a, b)
			assert.GreaterOrEqual(t, d, 0)
			assert.Equal(t, d, Distance(b, a), "symmetry %s %s", a, b)
			if a == b {
				assert.Zero(t, d)
			} else {
				assert.Positive(t, d, "distinct cells %s %s", a, b)
			}
			for _, c := range cells {
				assert.LessOrEqual(t, d, Distance(a, c)+Distance(c, b),
					"triangle inequality via %s", c)
			}
		}
	}
}

func TestDistanceToNeighborsIsOne(t *testing.T) {
	center := HexCoord{Q: -1, R: 2}
	for _, n := range center.Neighbors() {
		assert.Equal(t, 1, Distance(center, n))
	}
}

func TestInRadius(t *testing.T) {
	assert.True(t, HexCoord{Q: 0, R: 0}.InRadius(0))
	assert.False(t, HexCoord{Q: 1, R: 0}.InRadius(0))

	assert.True(t, HexCoord{Q: 4, R: 0}.InRadius(4))
	assert.True(t, HexCoord{Q: 4, R: -4}.InRadius(4))
	assert.True(t, HexCoord{Q: 0, R: 4}.InRadius(4))
	// s = -q-r = -5 puts this one outside even though q and r pass alone.
	assert.False(t, HexCoord{Q: 4, R: 1}.InRadius(4))
	assert.False(t, HexCoord{Q: 5, R: 0}.InRadius(4))
	assert.False(t, HexCoord{Q: -3, R: -2}.InRadius(4))
}

func TestHexCoordString(t *testing.T) {
	assert.Equal(t, "(0,0)", HexCoord{}.String())
	assert.Equal(t, "(3,-1)", HexCoord{Q: 3, R: -1}.String())
}
