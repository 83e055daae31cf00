package world

import (
	"testing"

	"github.com/l1jgo/netpool/internal/core/ecs"
	"github.com/l1jgo/netpool/internal/data"
	"github.com/stretchr/testify/require"
)

func testState() (*State, *ecs.World) {
	w := ecs.NewWorld()
	return NewState(w), w
}

func skeleton() *data.EntityTemplate {
	return &data.EntityTemplate{TemplateID: 45001, Name: "Skeleton", GfxID: 2632, Networked: true}
}

func TestInstantiateAllocatesDistinctNetIDs(t *testing.T) {
	s, _ := testState()
	tpl := skeleton()

	a := s.Instantiate(tpl)
	b := s.Instantiate(tpl)

	require.NotEqual(t, a.NetID, b.NetID)
	require.Equal(t, 2, s.Count())
	require.Same(t, a, s.Get(a.NetID))
	require.True(t, a.Active)

	r, ok := s.Renders.Get(a.Entity)
	require.True(t, ok)
	require.Equal(t, tpl.GfxID, r.GfxID)
	require.Equal(t, "Skeleton", r.Name)
}

func TestSetTransformMirrorsComponent(t *testing.T) {
	s, _ := testState()
	obj := s.Instantiate(skeleton())

	s.SetTransform(obj, 33080, 33392, 4)

	require.Equal(t, int32(33080), obj.X)
	tr, ok := s.Transforms.Get(obj.Entity)
	require.True(t, ok)
	require.Equal(t, int32(33080), tr.X)
	require.Equal(t, int32(33392), tr.Y)
	require.Equal(t, int16(4), tr.Heading)
}

func TestOwnershipLifecycle(t *testing.T) {
	s, _ := testState()
	obj := s.Instantiate(skeleton())
	require.False(t, s.Owned(obj), "fresh instance is unowned")

	s.AssignOwnership(obj, 42)
	require.True(t, s.Owned(obj))
	n, _ := s.NetIDs.Get(obj.Entity)
	require.Equal(t, uint64(42), n.Owner)

	s.RevokeOwnership(obj)
	require.False(t, s.Owned(obj))
	require.Equal(t, uint64(0), n.Owner)
}

func TestDestroyAll(t *testing.T) {
	s, w := testState()
	a := s.Instantiate(skeleton())
	b := s.Instantiate(skeleton())

	require.Equal(t, 2, s.DestroyAll())
	require.Equal(t, 0, s.Count())

	w.FlushDestroyQueue()
	require.False(t, w.Alive(a.Entity))
	require.False(t, w.Alive(b.Entity))
	_, ok := s.Transforms.Get(a.Entity)
	require.False(t, ok, "components are removed on destroy")
}
