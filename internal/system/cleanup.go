package system

import (
	"time"

	"github.com/l1jgo/netpool/internal/core/ecs"
	coresys "github.com/l1jgo/netpool/internal/core/system"
)

// CleanupSystem destroys entities queued for destruction during the tick.
// Phase 3 (Cleanup) — always last.
type CleanupSystem struct {
	world *ecs.World
}

func NewCleanupSystem(w *ecs.World) *CleanupSystem {
	return &CleanupSystem{world: w}
}

func (s *CleanupSystem) Phase() coresys.Phase { return coresys.PhaseCleanup }

func (s *CleanupSystem) Update(_ time.Duration) {
	s.world.FlushDestroyQueue()
}
