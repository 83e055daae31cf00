package event

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBusDoubleBuffering(t *testing.T) {
	b := NewBus()
	var got []uint32
	Subscribe(b, func(ev Spawned) { got = append(got, ev.NetID) })

	Emit(b, Spawned{NetID: 1})
	b.DispatchAll()
	require.Empty(t, got, "events emitted this tick are not visible until the swap")

	b.SwapBuffers()
	b.DispatchAll()
	require.Equal(t, []uint32{1}, got)

	// The drained buffer does not redeliver.
	b.SwapBuffers()
	b.DispatchAll()
	require.Equal(t, []uint32{1}, got)
}

func TestBusPreservesEmitOrder(t *testing.T) {
	b := NewBus()
	var got []uint32
	Subscribe(b, func(ev Despawned) { got = append(got, ev.NetID) })

	Emit(b, Despawned{NetID: 3})
	Emit(b, Despawned{NetID: 1})
	Emit(b, Despawned{NetID: 2})
	b.SwapBuffers()
	b.DispatchAll()

	require.Equal(t, []uint32{3, 1, 2}, got)
}

func TestBusTypedDelivery(t *testing.T) {
	b := NewBus()
	spawns, ready := 0, 0
	Subscribe(b, func(Spawned) { spawns++ })
	Subscribe(b, func(NetworkReady) { ready++ })

	Emit(b, Spawned{NetID: 1})
	Emit(b, NetworkReady{ServerID: 1})
	b.SwapBuffers()
	b.DispatchAll()

	require.Equal(t, 1, spawns)
	require.Equal(t, 1, ready)
}
