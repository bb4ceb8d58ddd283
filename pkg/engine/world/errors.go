package world

import "errors"

// Generation failure conditions. Callers distinguish them with errors.Is.
var (
	// ErrInvalidConfiguration is returned when the requested room count is
	// non-positive or exceeds the grid capacity. Raised before any state
	// is mutated; not retryable without changing the input.
	ErrInvalidConfiguration = errors.New("invalid dungeon configuration")

	// ErrDisconnectedDungeon is returned when the post-generation
	// reachability check fails: the sampled cells formed isolated
	// clusters. Fatal for that attempt; the dungeon performs no retry
	// itself, a caller wanting resilience re-invokes generation.
	ErrDisconnectedDungeon = errors.New("generated dungeon is disconnected")

	// ErrStartRoomMissing signals the should-never-happen case of a
	// generated dungeon without a start room.
	ErrStartRoomMissing = errors.New("dungeon has no start room")
)
