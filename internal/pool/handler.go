package pool

import (
	"github.com/l1jgo/netpool/internal/data"
	"github.com/l1jgo/netpool/internal/world"
)

// Dispatcher is the slice of the external spawn-dispatch registry the pool
// needs: installing and removing per-template handlers. Once a handler is
// installed, the dispatch system must route every spawn/despawn for that
// template through it instead of the host runtime's raw primitives.
type Dispatcher interface {
	AddHandler(tpl *data.EntityTemplate, h *SpawnHandler)
	RemoveHandler(tpl *data.EntityTemplate)
}

// SpawnHandler adapts one registered template to the dispatch-system
// contract. A pure forwarding shim: no state beyond the template it closes
// over.
type SpawnHandler struct {
	pool *LifecyclePool
	tpl  *data.EntityTemplate
}

// Instantiate materializes an instance at the given position and assigns
// network ownership to the requesting session.
func (h *SpawnHandler) Instantiate(owner uint64, x, y int32, heading int16) *world.ObjectInfo {
	obj := h.pool.Acquire(h.tpl, x, y, heading)
	h.pool.state.AssignOwnership(obj, owner)
	return obj
}

// Destroy retires an instance into the idle queue instead of destroying it.
func (h *SpawnHandler) Destroy(obj *world.ObjectInfo) {
	h.pool.Release(obj, h.tpl)
}

// Template returns the template this handler serves.
func (h *SpawnHandler) Template() *data.EntityTemplate {
	return h.tpl
}
