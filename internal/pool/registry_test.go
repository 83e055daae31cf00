package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryRegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	skel := testTemplate(1, "Skeleton")
	r.Register(skel, "skeleton", 2)

	got, err := r.LookupByName("skeleton")
	require.NoError(t, err)
	require.Same(t, skel, got)
	require.Equal(t, "skeleton", r.IDOf(skel))
	require.Equal(t, 2, r.Prewarm(skel))
	require.Equal(t, []string{"skeleton"}, r.PoolIDs())
}

func TestRegistryDuplicateTemplatePanics(t *testing.T) {
	r := NewRegistry()
	skel := testTemplate(1, "Skeleton")
	r.Register(skel, "skeleton", 0)

	err := panicErr(t, func() { r.Register(skel, "other", 0) })
	require.ErrorIs(t, err, ErrDuplicateTemplate)
}

func TestRegistryDuplicateIDPanics(t *testing.T) {
	r := NewRegistry()
	r.Register(testTemplate(1, "Skeleton"), "undead", 0)

	err := panicErr(t, func() { r.Register(testTemplate(2, "Zombie"), "undead", 0) })
	require.ErrorIs(t, err, ErrDuplicateID)
}

func TestRegistryLookupUnknownID(t *testing.T) {
	r := NewRegistry()
	_, err := r.LookupByName("ghost")
	require.ErrorIs(t, err, ErrUnknownID)
}

func TestRegistryTryTakeEmpty(t *testing.T) {
	r := NewRegistry()
	skel := testTemplate(1, "Skeleton")
	r.Register(skel, "skeleton", 0)
	require.Nil(t, r.TryTake(skel))
}

func TestRegistryQueueFIFO(t *testing.T) {
	r := NewRegistry()
	state := newTestState()
	skel := testTemplate(1, "Skeleton")
	r.Register(skel, "skeleton", 0)

	a := state.Instantiate(skel)
	b := state.Instantiate(skel)
	r.Give(skel, a)
	r.Give(skel, b)

	require.Equal(t, 2, r.IdleCount(skel))
	require.Same(t, a, r.TryTake(skel))
	require.Same(t, b, r.TryTake(skel))
	require.Nil(t, r.TryTake(skel))
}

func TestRegistryUnregisteredTemplatePanics(t *testing.T) {
	r := NewRegistry()
	state := newTestState()
	skel := testTemplate(1, "Skeleton")

	require.ErrorIs(t, panicErr(t, func() { r.TryTake(skel) }), ErrUnregisteredTemplate)
	require.ErrorIs(t, panicErr(t, func() { r.Give(skel, state.Instantiate(skel)) }), ErrUnregisteredTemplate)
}

func TestRegistryClearKeepsRegistrations(t *testing.T) {
	r := NewRegistry()
	state := newTestState()
	skel := testTemplate(1, "Skeleton")
	r.Register(skel, "skeleton", 0)
	r.Give(skel, state.Instantiate(skel))

	r.Clear()

	require.Equal(t, 0, r.IdleCount(skel))
	// Registrations survive: a second Register must still collide, and
	// lookups still resolve.
	require.ErrorIs(t, panicErr(t, func() { r.Register(skel, "skeleton2", 0) }), ErrDuplicateTemplate)
	got, err := r.LookupByName("skeleton")
	require.NoError(t, err)
	require.Same(t, skel, got)
}

func TestRegistryTemplatesInRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	skel := testTemplate(1, "Skeleton")
	zomb := testTemplate(2, "Zombie")
	r.Register(skel, "skeleton", 0)
	r.Register(zomb, "zombie", 0)

	tpls := r.Templates()
	require.Len(t, tpls, 2)
	require.Same(t, skel, tpls[0])
	require.Same(t, zomb, tpls[1])
}
