package system

import (
	"time"

	"github.com/l1jgo/netpool/internal/core/event"
	coresys "github.com/l1jgo/netpool/internal/core/system"
)

// EventDispatchSystem rotates the event bus buffers and delivers last
// tick's events to subscribers. Phase 0 (Events) — runs before anything
// that reacts to events this tick.
type EventDispatchSystem struct {
	bus *event.Bus
}

func NewEventDispatchSystem(bus *event.Bus) *EventDispatchSystem {
	return &EventDispatchSystem{bus: bus}
}

func (s *EventDispatchSystem) Phase() coresys.Phase { return coresys.PhaseEvents }

func (s *EventDispatchSystem) Update(_ time.Duration) {
	s.bus.SwapBuffers()
	s.bus.DispatchAll()
}
