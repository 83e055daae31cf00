package system

import (
	"testing"
	"time"

	"github.com/l1jgo/netpool/internal/core/ecs"
	"github.com/l1jgo/netpool/internal/core/event"
	"github.com/l1jgo/netpool/internal/data"
	"github.com/l1jgo/netpool/internal/dispatch"
	"github.com/l1jgo/netpool/internal/pool"
	"github.com/l1jgo/netpool/internal/world"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const tick = 200 * time.Millisecond

func setupRespawn(t *testing.T) (*RespawnSystem, *dispatch.Registry, *world.State, *event.Bus, *data.EntityTemplate) {
	t.Helper()
	state := world.NewState(ecs.NewWorld())
	bus := event.NewBus()
	reg := dispatch.NewRegistry(bus, zap.NewNop())

	table := data.NewTemplateTable([]data.EntityTemplate{
		{TemplateID: 45001, Name: "Skeleton", Networked: true, RespawnDelay: 2},
		{TemplateID: 70010, Name: "Town Crier", Networked: true, RespawnDelay: 0},
	})

	p := pool.NewLifecyclePool(state, reg, pool.StaticAuthority(true), []pool.Config{
		{Template: table.Get(45001), PoolID: "skeleton", Prewarm: 1},
		{Template: table.Get(70010), PoolID: "town_crier"},
	}, zap.NewNop())
	require.True(t, p.Initialize())

	return NewRespawnSystem(bus, reg, table, zap.NewNop()), reg, state, bus, table.Get(45001)
}

func deliver(bus *event.Bus) {
	bus.SwapBuffers()
	bus.DispatchAll()
}

func TestRespawnAfterDelay(t *testing.T) {
	sys, reg, state, bus, tpl := setupRespawn(t)

	obj := reg.Spawn(tpl.TemplateID, 0, 150, 250, 4)
	require.True(t, reg.Despawn(obj))
	deliver(bus)
	require.Equal(t, 1, sys.PendingCount())

	sys.Update(tick)
	require.Equal(t, 1, sys.PendingCount(), "one tick left on the timer")
	require.False(t, obj.Active)

	sys.Update(tick)
	require.Equal(t, 0, sys.PendingCount())
	require.True(t, obj.Active, "the parked instance was reused for the respawn")
	require.Equal(t, int32(150), obj.X)
	require.Equal(t, int32(250), obj.Y)
	require.Equal(t, 1, state.Count(), "respawn must not grow the pool")
}

func TestNoRespawnWithoutDelay(t *testing.T) {
	sys, reg, _, bus, _ := setupRespawn(t)

	obj := reg.Spawn(70010, 0, 10, 20, 0)
	require.True(t, reg.Despawn(obj))
	deliver(bus)

	require.Equal(t, 0, sys.PendingCount())
	sys.Update(tick)
	require.False(t, obj.Active)
}
