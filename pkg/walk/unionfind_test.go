package walk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/graphwalk/pkg/graph"
	"github.com/matzehuels/graphwalk/pkg/walk"
)

func TestUnionFindSingletons(t *testing.T) {
	u := walk.NewUnionFind()
	for id := graph.NodeID(0); id < 4; id++ {
		u.MakeSet(id)
	}

	for id := graph.NodeID(0); id < 4; id++ {
		root, err := u.Find(id)
		require.NoError(t, err)
		assert.Equal(t, id, root, "fresh element is its own representative")
	}
}

func TestUnionFindMerge(t *testing.T) {
	u := walk.NewUnionFind()
	for id := graph.NodeID(0); id < 4; id++ {
		u.MakeSet(id)
	}

	merged, err := u.Union(0, 1)
	require.NoError(t, err)
	assert.True(t, merged)

	merged, err = u.Union(1, 0)
	require.NoError(t, err)
	assert.False(t, merged, "repeat union signals the cycle")

	merged, err = u.Union(2, 3)
	require.NoError(t, err)
	assert.True(t, merged)

	r0, err := u.Find(0)
	require.NoError(t, err)
	r1, err := u.Find(1)
	require.NoError(t, err)
	assert.Equal(t, r0, r1)

	r2, err := u.Find(2)
	require.NoError(t, err)
	assert.NotEqual(t, r0, r2, "separate components keep separate roots")

	merged, err = u.Union(1, 3)
	require.NoError(t, err)
	assert.True(t, merged)
	r3, err := u.Find(3)
	require.NoError(t, err)
	r0, err = u.Find(0)
	require.NoError(t, err)
	assert.Equal(t, r0, r3)
}

func TestUnionFindUnknownElement(t *testing.T) {
	u := walk.NewUnionFind()
	u.MakeSet(1)

	_, err := u.Find(2)
	assert.ErrorIs(t, err, walk.ErrUnknownElement)

	_, err = u.Union(1, 2)
	assert.ErrorIs(t, err, walk.ErrUnknownElement)
	_, err = u.Union(2, 1)
	assert.ErrorIs(t, err, walk.ErrUnknownElement)
}

func TestUnionFindMakeSetIdempotent(t *testing.T) {
	u := walk.NewUnionFind()
	u.MakeSet(0)
	u.MakeSet(1)

	merged, err := u.Union(0, 1)
	require.NoError(t, err)
	require.True(t, merged)

	// Re-registering a merged element must not split its component.
	u.MakeSet(0)
	merged, err = u.Union(0, 1)
	require.NoError(t, err)
	assert.False(t, merged)
}

func TestUnionFindLongChain(t *testing.T) {
	// Build a long chain and confirm every element resolves to one
	// root. Path compression keeps this fast, though the test only
	// checks the observable contract.
	const n = 1000
	u := walk.NewUnionFind()
	for id := graph.NodeID(0); id < n; id++ {
		u.MakeSet(id)
	}
	for id := graph.NodeID(1); id < n; id++ {
		merged, err := u.Union(id-1, id)
		require.NoError(t, err)
		require.True(t, merged)
	}

	root, err := u.Find(0)
	require.NoError(t, err)
	for id := graph.NodeID(1); id < n; id++ {
		r, err := u.Find(id)
		require.NoError(t, err)
		assert.Equal(t, root, r)
	}
}
