package system

import (
	"time"

	"github.com/l1jgo/netpool/internal/core/event"
	coresys "github.com/l1jgo/netpool/internal/core/system"
	"github.com/l1jgo/netpool/internal/data"
	"github.com/l1jgo/netpool/internal/dispatch"
	"go.uber.org/zap"
)

// pendingRespawn is one despawned entity waiting to re-enter the world at
// its last position.
type pendingRespawn struct {
	templateID int32
	x, y       int32
	heading    int16
	ticks      int
}

// RespawnSystem re-issues spawn requests for templates with a respawn delay.
// Flow: entity despawned → timer counts down → Spawn through the dispatch
// registry at the recorded position. Phase 1 (Update).
type RespawnSystem struct {
	dispatch  *dispatch.Registry
	templates *data.TemplateTable
	pending   []pendingRespawn
	log       *zap.Logger
}

func NewRespawnSystem(bus *event.Bus, d *dispatch.Registry, templates *data.TemplateTable, log *zap.Logger) *RespawnSystem {
	s := &RespawnSystem{
		dispatch:  d,
		templates: templates,
		pending:   make([]pendingRespawn, 0, 32),
		log:       log,
	}
	event.Subscribe(bus, s.onDespawned)
	return s
}

func (s *RespawnSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *RespawnSystem) onDespawned(ev event.Despawned) {
	tpl := s.templates.Get(ev.TemplateID)
	if tpl == nil || tpl.RespawnDelay <= 0 {
		return
	}
	s.pending = append(s.pending, pendingRespawn{
		templateID: ev.TemplateID,
		x:          ev.X,
		y:          ev.Y,
		heading:    ev.Heading,
		ticks:      tpl.RespawnDelay,
	})
}

func (s *RespawnSystem) Update(_ time.Duration) {
	kept := s.pending[:0]
	for _, p := range s.pending {
		p.ticks--
		if p.ticks > 0 {
			kept = append(kept, p)
			continue
		}
		// Server-owned respawn at the recorded position.
		if obj := s.dispatch.Spawn(p.templateID, 0, p.x, p.y, p.heading); obj != nil {
			s.log.Debug("respawned entity",
				zap.Int32("template_id", p.templateID),
				zap.Uint32("net_id", obj.NetID),
			)
		}
	}
	s.pending = kept
}

// PendingCount returns the number of entities waiting to respawn.
func (s *RespawnSystem) PendingCount() int {
	return len(s.pending)
}
