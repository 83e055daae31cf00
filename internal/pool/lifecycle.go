package pool

import (
	"fmt"

	"github.com/l1jgo/netpool/internal/data"
	"github.com/l1jgo/netpool/internal/world"
	"go.uber.org/zap"
)

// Config is one validated pool configuration, produced by ValidateEntries
// before initialization. PoolID is unique and non-empty; Prewarm is
// non-negative.
type Config struct {
	Template *data.EntityTemplate
	PoolID   string
	Prewarm  int
}

// LifecyclePool orchestrates instance reuse for networked entities: acquire
// returns a parked instance when one is idle and creates on demand
// otherwise; release resets and parks instead of destroying. Initialization
// is a one-shot latch — callbacks registered before it queue up and drain in
// FIFO order the moment the pool reports ready.
//
// Single-threaded: every method must run on the game loop goroutine.
type LifecyclePool struct {
	state    *world.State
	dispatch Dispatcher
	auth     Authority
	registry *Registry
	factory  *Factory
	hooks    Hooks
	configs  []Config
	ready    bool
	deferred []func()
	log      *zap.Logger
}

func NewLifecyclePool(state *world.State, dispatch Dispatcher, auth Authority, configs []Config, log *zap.Logger) *LifecyclePool {
	return &LifecyclePool{
		state:    state,
		dispatch: dispatch,
		auth:     auth,
		registry: NewRegistry(),
		factory:  NewFactory(state, log),
		configs:  configs,
		log:      log,
	}
}

// SetHooks installs an optional lifecycle observer. Call before Initialize
// so prewarmed instances are not observed half-configured.
func (p *LifecyclePool) SetHooks(h Hooks) {
	p.hooks = h
}

// Ready reports whether initialization has completed.
func (p *LifecyclePool) Ready() bool {
	return p.ready
}

// Registry exposes the pool's registry for read-side queries (stats, tests).
func (p *LifecyclePool) Registry() *Registry {
	return p.registry
}

// Configure registers one template with the pool: capability check, registry
// entry, prewarm, and handler installation with the dispatch system.
// Callable before or after Initialize. Panics with ErrMissingCapability /
// ErrDuplicateTemplate / ErrDuplicateID on a bad configuration.
func (p *LifecyclePool) Configure(cfg Config) {
	if !cfg.Template.Networked {
		panic(fmt.Errorf("%w: template_id=%d (%s)", ErrMissingCapability, cfg.Template.TemplateID, cfg.Template.Name))
	}
	p.registry.Register(cfg.Template, cfg.PoolID, cfg.Prewarm)

	for i := 0; i < cfg.Prewarm; i++ {
		p.park(p.factory.Create(cfg.Template), cfg.Template)
	}

	p.dispatch.AddHandler(cfg.Template, &SpawnHandler{pool: p, tpl: cfg.Template})
	p.log.Info("pool configured",
		zap.String("pool_id", cfg.PoolID),
		zap.Int32("template_id", cfg.Template.TemplateID),
		zap.Int("prewarm", cfg.Prewarm),
	)
}

// Initialize brings the pool up: registers every pre-declared configuration,
// flips the ready latch, then drains the deferred callbacks exactly once in
// registration order. Idempotent — a second call is a no-op returning true.
// Non-authoritative callers are rejected with false and nothing happens.
//
// A panicking callback aborts the remaining drain; callbacks already
// consumed are not re-run.
func (p *LifecyclePool) Initialize() bool {
	if !p.auth.Authoritative() {
		return false
	}
	if p.ready {
		return true
	}

	for _, cfg := range p.configs {
		p.Configure(cfg)
	}
	p.ready = true
	p.log.Info("spawn pool ready", zap.Int("pools", len(p.registry.PoolIDs())))

	pending := p.deferred
	p.deferred = nil
	for _, fn := range pending {
		fn()
	}
	return true
}

// Acquire returns an active instance of the template at the given position,
// reusing the oldest idle one when available and creating a new one on pool
// miss. Never fails on exhaustion — the live instance count grows instead.
// Panics with ErrUnregisteredTemplate if the template was never configured.
func (p *LifecyclePool) Acquire(tpl *data.EntityTemplate, x, y int32, heading int16) *world.ObjectInfo {
	obj := p.registry.TryTake(tpl)
	reused := obj != nil
	if obj == nil {
		obj = p.factory.Create(tpl)
	}
	p.state.SetActive(obj, true)
	p.state.SetTransform(obj, x, y, heading)
	if p.hooks != nil {
		p.hooks.OnAcquire(p.registry.IDOf(tpl), obj, reused)
	}
	return obj
}

// AcquireByName resolves the pool id and acquires from that template's pool.
// Returns ErrUnknownID (and instantiates nothing) for an unknown id.
func (p *LifecyclePool) AcquireByName(poolID string, x, y int32, heading int16) (*world.ObjectInfo, error) {
	tpl, err := p.registry.LookupByName(poolID)
	if err != nil {
		return nil, err
	}
	return p.Acquire(tpl, x, y, heading), nil
}

// Release retires an instance: revokes network ownership if held,
// deactivates, and parks it at the tail of its template's idle queue. The
// handle remembers the template it was acquired against; a mismatched
// caller-supplied template is a loud failure, not a silent corruption.
func (p *LifecyclePool) Release(obj *world.ObjectInfo, tpl *data.EntityTemplate) {
	if obj.TemplateID != tpl.TemplateID {
		panic(fmt.Errorf("pool: release template mismatch: handle=%d caller=%d", obj.TemplateID, tpl.TemplateID))
	}
	p.park(obj, tpl)
	if p.hooks != nil {
		p.hooks.OnRelease(p.registry.IDOf(tpl), obj)
	}
}

// park is the hook-free idle transition, shared by Release and prewarm.
func (p *LifecyclePool) park(obj *world.ObjectInfo, tpl *data.EntityTemplate) {
	if p.state.Owned(obj) {
		p.state.RevokeOwnership(obj)
	}
	p.state.SetActive(obj, false)
	p.registry.Give(tpl, obj)
}

// Teardown uninstalls every spawn handler from the dispatch system and
// empties the idle queues. It does not reset the ready latch or the
// registration sets: re-initializing after teardown is not supported in this
// process lifetime.
func (p *LifecyclePool) Teardown() {
	for _, tpl := range p.registry.Templates() {
		p.dispatch.RemoveHandler(tpl)
	}
	p.registry.Clear()
	p.log.Info("spawn pool torn down")
}

// RunWhenReady queues fn to run when the pool becomes ready. Returns false
// without queuing when the pool is already ready or the caller is not
// authoritative.
func (p *LifecyclePool) RunWhenReady(fn func()) bool {
	if !p.auth.Authoritative() {
		return false
	}
	if p.ready {
		return false
	}
	p.deferred = append(p.deferred, fn)
	return true
}

// Run executes fn immediately when the pool is ready and queues it
// otherwise. Returns false only for non-authoritative callers.
func (p *LifecyclePool) Run(fn func()) bool {
	if !p.auth.Authoritative() {
		return false
	}
	if p.ready {
		fn()
		return true
	}
	p.deferred = append(p.deferred, fn)
	return true
}
