package system

import (
	"context"
	"time"

	"github.com/l1jgo/netpool/internal/core/event"
	coresys "github.com/l1jgo/netpool/internal/core/system"
	"github.com/l1jgo/netpool/internal/persist"
	"go.uber.org/zap"
)

// JournalSystem buffers spawn/despawn events and flushes them to the spawn
// journal in one transaction every flushInterval ticks. A failed flush keeps
// the batch for the next attempt. Phase 2 (Persist).
type JournalSystem struct {
	repo          *persist.JournalRepo
	buf           []persist.JournalEntry
	flushInterval int
	counter       int
	log           *zap.Logger
}

func NewJournalSystem(bus *event.Bus, repo *persist.JournalRepo, flushInterval int, log *zap.Logger) *JournalSystem {
	if flushInterval <= 0 {
		flushInterval = 1
	}
	s := &JournalSystem{
		repo:          repo,
		buf:           make([]persist.JournalEntry, 0, 64),
		flushInterval: flushInterval,
		log:           log,
	}
	event.Subscribe(bus, s.onSpawned)
	event.Subscribe(bus, s.onDespawned)
	return s
}

func (s *JournalSystem) Phase() coresys.Phase { return coresys.PhasePersist }

func (s *JournalSystem) onSpawned(ev event.Spawned) {
	s.buf = append(s.buf, persist.JournalEntry{
		Event:      "spawn",
		TemplateID: ev.TemplateID,
		NetID:      ev.NetID,
		OwnerID:    ev.Owner,
		X:          ev.X,
		Y:          ev.Y,
	})
}

func (s *JournalSystem) onDespawned(ev event.Despawned) {
	s.buf = append(s.buf, persist.JournalEntry{
		Event:      "despawn",
		TemplateID: ev.TemplateID,
		NetID:      ev.NetID,
		X:          ev.X,
		Y:          ev.Y,
	})
}

func (s *JournalSystem) Update(_ time.Duration) {
	s.counter++
	if s.counter < s.flushInterval {
		return
	}
	s.counter = 0
	s.Flush()
}

// Flush writes the buffered batch now. Also called once at shutdown.
func (s *JournalSystem) Flush() {
	if len(s.buf) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.repo.Write(ctx, s.buf); err != nil {
		s.log.Error("journal flush failed", zap.Int("entries", len(s.buf)), zap.Error(err))
		return // keep the batch, retry next interval
	}
	s.buf = s.buf[:0]
}
