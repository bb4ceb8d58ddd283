// Package world provides the grid-dungeon primitives: coordinates,
// directions, rooms and the dungeon topology with its generation algorithm.
package world

// Coord is a grid position. Comparable, so it keys the dungeon's room map
// and connection entries directly.
type Coord struct {
	X int
	Y int
}

// Room is a single dungeon cell. Rooms are owned exclusively by the Dungeon;
// connections refer to neighbours by coordinate, never by pointer, so there
// is a single owner for every room.
type Room struct {
	// ID is a unique non-negative identifier, assigned sequentially in
	// sampling order and stable for the dungeon's lifetime.
	ID int

	// Pos is the room's grid position, unique across the dungeon.
	Pos Coord

	// IsStart marks the single room where exploration begins.
	IsStart bool

	// Content is the room's payload. The game layer owns the concrete
	// types (treasure, monster, boss); nil means the room is empty.
	// Cleared once the content's interaction has been resolved.
	Content any

	// Connections maps a direction to the coordinate of the neighbouring
	// room, resolved through the dungeon's lookup.
	Connections map[Direction]Coord

	// Visited is set once the explorer has explored this room. It never
	// reverts to false.
	Visited bool
}

// NewRoom creates a room at the given position with no content and no
// connections.
func NewRoom(id int, pos Coord) *Room {
	return &Room{
		ID:          id,
		Pos:         pos,
		Connections: make(map[Direction]Coord),
	}
}

// HasContent returns true if the room still holds an unresolved payload.
func (r *Room) HasContent() bool {
	return r.Content != nil
}

// ClearContent empties the room. Each payload yields at most one
// interaction, so resolution always ends here.
func (r *Room) ClearContent() {
	r.Content = nil
}
