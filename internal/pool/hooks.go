package pool

import "github.com/l1jgo/netpool/internal/world"

// Hooks observes instance lifecycle transitions. Optional; scripted spawn
// hooks implement it. Hooks run synchronously on the game loop after the
// transition has fully completed.
type Hooks interface {
	OnAcquire(poolID string, obj *world.ObjectInfo, reused bool)
	OnRelease(poolID string, obj *world.ObjectInfo)
}

// Authority reports whether this process holds the network-authoritative
// server role. Consulted before every initialization-adjacent entry point;
// non-authoritative callers are rejected with a plain false, never queued.
type Authority interface {
	Authoritative() bool
}

// StaticAuthority is a fixed-role Authority resolved once from config at boot.
type StaticAuthority bool

func (a StaticAuthority) Authoritative() bool { return bool(a) }
