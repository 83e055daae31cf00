package world

import (
	"github.com/l1jgo/netpool/internal/component"
	"github.com/l1jgo/netpool/internal/core/ecs"
	"github.com/l1jgo/netpool/internal/data"
)

// ObjectInfo is the in-memory record for one live networked object. It is
// the handle the pool layer passes around: the entity plus its network
// identity. Accessed only from the game loop goroutine — no locks needed.
type ObjectInfo struct {
	Entity     ecs.EntityID
	NetID      uint32
	TemplateID int32
	Active     bool
	X          int32
	Y          int32
	Heading    int16
}

// State implements the host-runtime side of the spawn contract over the ECS
// world: instantiation, active toggling, transform mutation, and network
// ownership. It owns the live-object table keyed by network object ID.
type State struct {
	ecs        *ecs.World
	Transforms *ecs.PtrComponentStore[component.Transform]
	Renders    *ecs.PtrComponentStore[component.Render]
	NetIDs     *ecs.PtrComponentStore[component.NetIdentity]

	objects   map[uint32]*ObjectInfo
	nextNetID uint32
}

func NewState(w *ecs.World) *State {
	s := &State{
		ecs:        w,
		Transforms: ecs.NewPtrComponentStore[component.Transform](),
		Renders:    ecs.NewPtrComponentStore[component.Render](),
		NetIDs:     ecs.NewPtrComponentStore[component.NetIdentity](),
		objects:    make(map[uint32]*ObjectInfo, 256),
		nextNetID:  1,
	}
	w.Registry().Register(s.Transforms)
	w.Registry().Register(s.Renders)
	w.Registry().Register(s.NetIDs)
	return s
}

// Instantiate creates a fresh entity from the template, attaches its
// components, and allocates a network object ID. The new instance starts
// active, unowned, and at the origin; the caller positions it.
func (s *State) Instantiate(tpl *data.EntityTemplate) *ObjectInfo {
	e := s.ecs.CreateEntity()
	netID := s.nextNetID
	s.nextNetID++

	s.Transforms.Set(e, &component.Transform{})
	s.Renders.Set(e, &component.Render{GfxID: tpl.GfxID, Name: tpl.Name})
	s.NetIDs.Set(e, &component.NetIdentity{NetID: netID})

	obj := &ObjectInfo{
		Entity:     e,
		NetID:      netID,
		TemplateID: tpl.TemplateID,
		Active:     true,
	}
	s.objects[netID] = obj
	return obj
}

// SetActive toggles the instance between the live simulation and the parked
// state. Inactive instances keep their entity and components.
func (s *State) SetActive(obj *ObjectInfo, active bool) {
	obj.Active = active
}

// SetTransform moves the instance and mirrors the position into its
// transform component.
func (s *State) SetTransform(obj *ObjectInfo, x, y int32, heading int16) {
	obj.X = x
	obj.Y = y
	obj.Heading = heading
	if t, ok := s.Transforms.Get(obj.Entity); ok {
		t.X = x
		t.Y = y
		t.Heading = heading
	}
}

// AssignOwnership marks the instance as spawned on the network under the
// given owner session (0 = server-owned).
func (s *State) AssignOwnership(obj *ObjectInfo, owner uint64) {
	if n, ok := s.NetIDs.Get(obj.Entity); ok {
		n.Owner = owner
		n.Spawned = true
	}
}

// Owned reports whether the instance is currently spawned on the network.
func (s *State) Owned(obj *ObjectInfo) bool {
	n, ok := s.NetIDs.Get(obj.Entity)
	return ok && n.Spawned
}

// RevokeOwnership takes the instance off the network and clears its owner.
func (s *State) RevokeOwnership(obj *ObjectInfo) {
	if n, ok := s.NetIDs.Get(obj.Entity); ok {
		n.Owner = 0
		n.Spawned = false
	}
}

// Get returns the live object with the given network ID, or nil.
func (s *State) Get(netID uint32) *ObjectInfo {
	return s.objects[netID]
}

// Count returns the number of live objects, active or parked.
func (s *State) Count() int {
	return len(s.objects)
}

// Destroy queues the instance's entity for end-of-tick destruction and drops
// it from the live-object table. Pooled instances are never destroyed during
// normal play; this is the shutdown path.
func (s *State) Destroy(obj *ObjectInfo) {
	delete(s.objects, obj.NetID)
	s.ecs.MarkForDestruction(obj.Entity)
}

// DestroyAll destroys every remaining live object. Called at shutdown after
// the pool has torn down.
func (s *State) DestroyAll() int {
	n := len(s.objects)
	for _, obj := range s.objects {
		s.ecs.MarkForDestruction(obj.Entity)
	}
	s.objects = make(map[uint32]*ObjectInfo)
	return n
}
