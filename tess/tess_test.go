package tess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func squareSeeds() []complex128 {
	return []complex128{
		complex(-0.5, -0.5),
		complex(0.5, -0.5),
		complex(0.5, 0.5),
		complex(-0.5, 0.5),
		complex(0, 0),
	}
}

func TestTessellationInsertAndIterate(t *testing.T) {
	tess := NewTessellation(16)

	added, err := tess.Insert(squareSeeds())
	assert.NoError(t, err)
	assert.Len(t, added, 5)
	assert.Equal(t, 5, tess.NumPoints())

	tris := tess.Triangles()
	assert.NotEmpty(t, tris, "expected at least one triangle")

	edges := tess.Edges()
	assert.Equal(t, len(tris)*3, len(edges))
}

func TestTessellationInsertPreservesIndices(t *testing.T) {
	tess := NewTessellation(16)

	first, err := tess.Insert(squareSeeds()[:3])
	assert.NoError(t, err)
	assert.Equal(t, 0, first[0].Index)
	assert.Equal(t, 2, first[2].Index)

	second, err := tess.Insert([]complex128{complex(0, 0)})
	assert.NoError(t, err)
	assert.Equal(t, 3, second[0].Index)

	// re-triangulating must not move earlier points to new indices.
	assert.Equal(t, first[0].Z, tess.Point(0).Z)
}

func TestTessellationAdjacent(t *testing.T) {
	tess := NewTessellation(16)
	_, err := tess.Insert(squareSeeds())
	assert.NoError(t, err)

	adj := tess.Adjacent(4) // the center point
	assert.NotEmpty(t, adj, "center point should be incident to triangles")
	for _, tr := range adj {
		assert.True(t, tr.HasVertex(4))
	}
}
