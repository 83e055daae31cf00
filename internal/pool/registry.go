package pool

import (
	"fmt"

	"github.com/l1jgo/netpool/internal/data"
	"github.com/l1jgo/netpool/internal/world"
)

// Registry owns the mapping from entity-kind identity to its reuse queue:
// the known-template set, the poolID→template index, the ordered pool-id
// list, and one FIFO idle queue per template. Pure data structure — it never
// creates or destroys instances. Accessed only from the game loop goroutine.
type Registry struct {
	known   map[int32]*data.EntityTemplate // template_id → template
	byName  map[string]*data.EntityTemplate
	ids     map[int32]string // template_id → pool id
	prewarm map[int32]int
	order   []string                       // pool ids in registration order
	idle    map[int32][]*world.ObjectInfo  // template_id → FIFO idle queue
}

func NewRegistry() *Registry {
	return &Registry{
		known:   make(map[int32]*data.EntityTemplate, 16),
		byName:  make(map[string]*data.EntityTemplate, 16),
		ids:     make(map[int32]string, 16),
		prewarm: make(map[int32]int, 16),
		order:   make([]string, 0, 16),
		idle:    make(map[int32][]*world.ObjectInfo, 16),
	}
}

// Register installs a template under the given pool id and creates its empty
// idle queue. Panics with ErrDuplicateTemplate / ErrDuplicateID on re-use of
// either key.
func (r *Registry) Register(tpl *data.EntityTemplate, poolID string, prewarm int) {
	if _, exists := r.known[tpl.TemplateID]; exists {
		panic(fmt.Errorf("%w: template_id=%d", ErrDuplicateTemplate, tpl.TemplateID))
	}
	if _, exists := r.byName[poolID]; exists {
		panic(fmt.Errorf("%w: pool_id=%q", ErrDuplicateID, poolID))
	}
	r.known[tpl.TemplateID] = tpl
	r.byName[poolID] = tpl
	r.ids[tpl.TemplateID] = poolID
	r.prewarm[tpl.TemplateID] = prewarm
	r.order = append(r.order, poolID)
	r.idle[tpl.TemplateID] = make([]*world.ObjectInfo, 0, prewarm)
}

// LookupByName resolves a pool id to its template.
func (r *Registry) LookupByName(poolID string) (*data.EntityTemplate, error) {
	tpl, ok := r.byName[poolID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownID, poolID)
	}
	return tpl, nil
}

// TryTake pops the oldest idle instance for the template, or returns nil
// when the queue is empty and the caller must create a new one. Panics with
// ErrUnregisteredTemplate for a template that was never registered.
func (r *Registry) TryTake(tpl *data.EntityTemplate) *world.ObjectInfo {
	q, ok := r.idle[tpl.TemplateID]
	if !ok {
		panic(fmt.Errorf("%w: template_id=%d", ErrUnregisteredTemplate, tpl.TemplateID))
	}
	if len(q) == 0 {
		return nil
	}
	obj := q[0]
	r.idle[tpl.TemplateID] = q[1:]
	return obj
}

// Give parks an idle instance at the tail of the template's queue.
func (r *Registry) Give(tpl *data.EntityTemplate, obj *world.ObjectInfo) {
	q, ok := r.idle[tpl.TemplateID]
	if !ok {
		panic(fmt.Errorf("%w: template_id=%d", ErrUnregisteredTemplate, tpl.TemplateID))
	}
	r.idle[tpl.TemplateID] = append(q, obj)
}

// Clear empties every idle queue. Instances inside are abandoned to the host
// runtime's own destruction semantics. The known-template set and id
// mappings stay intact — registrations are not reversible.
func (r *Registry) Clear() {
	for id := range r.idle {
		r.idle[id] = r.idle[id][:0]
	}
}

// IDOf returns the pool id a template was registered under ("" if unknown).
func (r *Registry) IDOf(tpl *data.EntityTemplate) string {
	return r.ids[tpl.TemplateID]
}

// Prewarm returns the configured prewarm count for a registered template.
func (r *Registry) Prewarm(tpl *data.EntityTemplate) int {
	return r.prewarm[tpl.TemplateID]
}

// IdleCount returns the number of parked instances for a template.
func (r *Registry) IdleCount(tpl *data.EntityTemplate) int {
	return len(r.idle[tpl.TemplateID])
}

// Templates returns the registered templates in registration order.
func (r *Registry) Templates() []*data.EntityTemplate {
	out := make([]*data.EntityTemplate, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byName[id])
	}
	return out
}

// PoolIDs returns the registered pool ids in registration order.
func (r *Registry) PoolIDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
