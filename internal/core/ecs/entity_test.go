package ecs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEntityPoolZeroReserved(t *testing.T) {
	p := NewEntityPool()
	id := p.Create()
	require.False(t, id.IsZero())
	require.Equal(t, uint32(1), id.Index())
	require.False(t, p.Alive(EntityID(0)))
}

func TestEntityPoolGenerationInvalidation(t *testing.T) {
	p := NewEntityPool()
	id := p.Create()
	require.True(t, p.Alive(id))

	p.Destroy(id)
	require.False(t, p.Alive(id))

	// The freed index is reused with a bumped generation; the stale ID
	// stays dead.
	reborn := p.Create()
	require.Equal(t, id.Index(), reborn.Index())
	require.NotEqual(t, id.Generation(), reborn.Generation())
	require.True(t, p.Alive(reborn))
	require.False(t, p.Alive(id))

	// Double destroy of a stale reference is a no-op.
	p.Destroy(id)
	require.True(t, p.Alive(reborn))
}

func TestEntityPoolLiveCount(t *testing.T) {
	p := NewEntityPool()
	a := p.Create()
	b := p.Create()
	require.Equal(t, 2, p.Live())
	p.Destroy(a)
	require.Equal(t, 1, p.Live())
	p.Destroy(b)
	require.Equal(t, 0, p.Live())
}

func TestWorldDestroyQueueClearsComponents(t *testing.T) {
	w := NewWorld()
	store := NewPtrComponentStore[struct{ HP int }]()
	w.Registry().Register(store)

	e := w.CreateEntity()
	store.Set(e, &struct{ HP int }{HP: 10})

	w.MarkForDestruction(e)
	require.True(t, w.Alive(e), "destruction is deferred to the flush")

	w.FlushDestroyQueue()
	require.False(t, w.Alive(e))
	require.False(t, store.Has(e))
}
