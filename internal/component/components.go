package component

// Transform is the world position and facing of an entity.
type Transform struct {
	X       int32
	Y       int32
	Heading int16
}

// Render holds the client-visible appearance of an entity.
type Render struct {
	GfxID int32
	Name  string
}

// NetIdentity is the network-identity component attached to every networked
// entity. NetID is the wire object ID. Owner is the session that currently
// owns the spawned object (0 = unowned); Spawned is true while the object is
// live on the network.
type NetIdentity struct {
	NetID   uint32
	Owner   uint64
	Spawned bool
}
