package event

// NetworkReady announces that network presence is established and the
// authoritative process may bring the spawn pool up. Emitted once at boot.
type NetworkReady struct {
	ServerID int
}

// Spawned is emitted by the dispatch registry after a handler materialized
// an instance.
type Spawned struct {
	TemplateID int32
	NetID      uint32
	Owner      uint64
	X, Y       int32
	Heading    int16
}

// Despawned is emitted by the dispatch registry after a handler retired an
// instance back into its pool.
type Despawned struct {
	TemplateID int32
	NetID      uint32
	X, Y       int32
	Heading    int16
}
