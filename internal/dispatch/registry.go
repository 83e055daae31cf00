package dispatch

import (
	"github.com/l1jgo/netpool/internal/core/event"
	"github.com/l1jgo/netpool/internal/data"
	"github.com/l1jgo/netpool/internal/pool"
	"github.com/l1jgo/netpool/internal/world"
	"go.uber.org/zap"
)

// Registry is the spawn-dispatch system: it decides, per spawn request,
// which handler materializes the entity. Once a template has a handler
// installed, this is the sole spawn path for it — the registry never falls
// back to raw host-runtime creation. Emits Spawned/Despawned on the bus for
// downstream consumers (journal, respawn).
type Registry struct {
	handlers map[int32]*pool.SpawnHandler
	bus      *event.Bus
	log      *zap.Logger
}

func NewRegistry(bus *event.Bus, log *zap.Logger) *Registry {
	return &Registry{
		handlers: make(map[int32]*pool.SpawnHandler, 16),
		bus:      bus,
		log:      log,
	}
}

// AddHandler installs the spawn handler for a template.
func (r *Registry) AddHandler(tpl *data.EntityTemplate, h *pool.SpawnHandler) {
	if _, exists := r.handlers[tpl.TemplateID]; exists {
		r.log.Warn("spawn handler replaced", zap.Int32("template_id", tpl.TemplateID))
	}
	r.handlers[tpl.TemplateID] = h
}

// RemoveHandler uninstalls the spawn handler for a template.
func (r *Registry) RemoveHandler(tpl *data.EntityTemplate) {
	delete(r.handlers, tpl.TemplateID)
}

// HandlerCount returns the number of installed handlers.
func (r *Registry) HandlerCount() int {
	return len(r.handlers)
}

// Spawn materializes an entity of the template through its installed
// handler. A request for an unhandled template is refused with nil — spawn
// requests must never reach the host runtime directly.
func (r *Registry) Spawn(templateID int32, owner uint64, x, y int32, heading int16) *world.ObjectInfo {
	h, ok := r.handlers[templateID]
	if !ok {
		r.log.Warn("spawn request for unhandled template", zap.Int32("template_id", templateID))
		return nil
	}
	obj := h.Instantiate(owner, x, y, heading)
	event.Emit(r.bus, event.Spawned{
		TemplateID: templateID,
		NetID:      obj.NetID,
		Owner:      owner,
		X:          x,
		Y:          y,
		Heading:    heading,
	})
	return obj
}

// Despawn retires a live entity through its installed handler. Returns false
// when no handler serves the instance's template.
func (r *Registry) Despawn(obj *world.ObjectInfo) bool {
	h, ok := r.handlers[obj.TemplateID]
	if !ok {
		r.log.Warn("despawn request for unhandled template",
			zap.Int32("template_id", obj.TemplateID),
			zap.Uint32("net_id", obj.NetID),
		)
		return false
	}
	ev := event.Despawned{TemplateID: obj.TemplateID, NetID: obj.NetID, X: obj.X, Y: obj.Y, Heading: obj.Heading}
	h.Destroy(obj)
	event.Emit(r.bus, ev)
	return true
}
