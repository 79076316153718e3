package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinkPoolsDisjoint(t *testing.T) {
	seen := make(map[Coord]Pool)
	for name, coords := range Link.Pools() {
		for _, c := range coords {
			if prev, ok := seen[c]; ok {
				t.Errorf("cell %v in both %q and %q", c, prev, name)
			}
			seen[c] = name
		}
	}
}

func TestLinkPoolsInBounds(t *testing.T) {
	for name, coords := range Link.Pools() {
		for _, c := range coords {
			assert.True(t, c.Row >= 0 && c.Row < Rows && c.Col >= 0 && c.Col < Cols,
				"cell %v of %q out of bounds", c, name)
		}
	}
}

func TestLinkPoolSizes(t *testing.T) {
	assert.Len(t, Link.Head, 28)
	assert.Len(t, Link.Body, 123)
	assert.Len(t, Link.Bunny, 16)
}

func TestLinkPoolsNoDuplicates(t *testing.T) {
	for name, coords := range Link.Pools() {
		seen := make(map[Coord]bool)
		for _, c := range coords {
			assert.False(t, seen[c], "cell %v repeated in %q", c, name)
			seen[c] = true
		}
	}
}
