package pool

// Process-wide pool lookup. The host runtime assumes one orchestrator per
// process; collaborators that cannot be handed the instance (script
// bindings, boot-time registrations) address "whatever the current pool is"
// through this package. Game loop goroutine only — no locks, matching the
// subsystem's single-threaded model.

var (
	current *LifecyclePool
	pending []func()
)

// Install sets the process-wide pool and hands it every call deferred before
// it existed. Installing nil clears the singleton (tests).
func Install(p *LifecyclePool) {
	current = p
	if p == nil {
		return
	}
	queued := pending
	pending = nil
	for _, fn := range queued {
		p.Run(fn)
	}
}

// Current returns the installed process-wide pool, or nil.
func Current() *LifecyclePool {
	return current
}

// Defer runs fn once the process-wide pool is ready — queuing even when no
// pool is installed yet. Returns false when an installed pool rejects the
// caller (non-authoritative process).
func Defer(fn func()) bool {
	if current == nil {
		pending = append(pending, fn)
		return true
	}
	return current.Run(fn)
}
