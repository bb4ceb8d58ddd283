package world

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"dungeondelve/pkg/engine/rng"
)

// Dungeon represents the game map with encapsulated room storage. The grid
// dimensions are fixed at construction; the room topology is rebuilt by each
// call to GenerateStructure.
type Dungeon struct {
	width  int
	height int

	rooms     map[Coord]*Room
	startRoom *Room
}

// NewDungeon creates an empty dungeon with the given dimensions.
func NewDungeon(width, height int) *Dungeon {
	if width <= 0 || height <= 0 {
		panic("dungeon dimensions must be positive")
	}

	return &Dungeon{
		width:  width,
		height: height,
		rooms:  make(map[Coord]*Room),
	}
}

// Width returns the grid width.
func (d *Dungeon) Width() int {
	return d.width
}

// Height returns the grid height.
func (d *Dungeon) Height() int {
	return d.height
}

// RoomCount returns the number of rooms in the current topology.
func (d *Dungeon) RoomCount() int {
	return len(d.rooms)
}

// StartRoom returns the designated start room, or nil before a successful
// generation.
func (d *Dungeon) StartRoom() *Room {
	return d.startRoom
}

// RoomAt returns the room at the given coordinate, or nil if that grid cell
// holds no room.
func (d *Dungeon) RoomAt(pos Coord) *Room {
	return d.rooms[pos]
}

// Neighbor resolves the room connected to r in the given direction, or nil
// if r has no connection that way.
func (d *Dungeon) Neighbor(r *Room, dir Direction) *Room {
	if r == nil {
		return nil
	}
	pos, ok := r.Connections[dir]
	if !ok {
		return nil
	}
	return d.rooms[pos]
}

// ForEachRoom iterates over all rooms in grid order (row by row), calling fn
// for each. Grid order keeps output such as the rendered map stable.
func (d *Dungeon) ForEachRoom(fn func(pos Coord, room *Room)) {
	for y := 0; y < d.height; y++ {
		for x := 0; x < d.width; x++ {
			pos := Coord{X: x, Y: y}
			if room, ok := d.rooms[pos]; ok {
				fn(pos, room)
			}
		}
	}
}

// AddRoom places a room at pos with the next sequential ID, returning the
// existing room instead if the cell is already occupied. Useful for building
// fixed topologies by hand; generated topologies come from GenerateStructure.
func (d *Dungeon) AddRoom(pos Coord) *Room {
	if room, ok := d.rooms[pos]; ok {
		return room
	}
	room := NewRoom(len(d.rooms), pos)
	d.rooms[pos] = room
	return room
}

// SetStart designates the room at pos as the start room, clearing any
// previous designation. Returns false if no room exists there.
func (d *Dungeon) SetStart(pos Coord) bool {
	room, ok := d.rooms[pos]
	if !ok {
		return false
	}
	if d.startRoom != nil {
		d.startRoom.IsStart = false
	}
	room.IsStart = true
	d.startRoom = room
	return true
}

// isBorder reports whether pos lies on the grid border.
func (d *Dungeon) isBorder(pos Coord) bool {
	return pos.X == 0 || pos.X == d.width-1 || pos.Y == 0 || pos.Y == d.height-1
}

// GenerateStructure builds a fresh topology with roomCount rooms, replacing
// any prior one. Which grid cells become rooms is a uniform sample without
// replacement, so the layout varies per source; connections exist only
// between sampled cells that are grid-adjacent.
//
// Fails with ErrInvalidConfiguration (before any mutation) when roomCount is
// outside [1, width*height], and with ErrDisconnectedDungeon when the sample
// produced isolated clusters: not every room was reachable from the start
// room. A disconnected result is fatal for this attempt; the caller decides
// whether to re-invoke with fresh randomness.
func (d *Dungeon) GenerateStructure(roomCount int, src rng.Source) error {
	capacity := d.width * d.height
	if roomCount < 1 {
		return fmt.Errorf("%w: room count %d is below 1", ErrInvalidConfiguration, roomCount)
	}
	if roomCount > capacity {
		return fmt.Errorf("%w: room count %d exceeds grid capacity %d",
			ErrInvalidConfiguration, roomCount, capacity)
	}

	d.rooms = make(map[Coord]*Room, roomCount)
	d.startRoom = nil

	// Sample roomCount distinct cells from the full grid. Cell index i
	// maps to (i % width, i / width).
	sampled := make([]Coord, 0, roomCount)
	for _, idx := range rng.Sample(src, capacity, roomCount) {
		sampled = append(sampled, Coord{X: idx % d.width, Y: idx / d.width})
	}

	// Prefer a border cell for the start room; fall back to the first
	// sampled cell when the sample touched no border.
	var borderCells []Coord
	for _, pos := range sampled {
		if d.isBorder(pos) {
			borderCells = append(borderCells, pos)
		}
	}
	startPos := sampled[0]
	if len(borderCells) > 0 {
		startPos = rng.Choice(src, borderCells)
	}

	for i, pos := range sampled {
		room := NewRoom(i, pos)
		if pos == startPos {
			room.IsStart = true
			d.startRoom = room
		}
		d.rooms[pos] = room
	}

	d.ConnectAdjacentRooms()

	if d.startRoom == nil {
		return ErrStartRoomMissing
	}

	if reachable := d.ReachableFromStart(); reachable != roomCount {
		return fmt.Errorf("%w: %d of %d rooms reachable from start",
			ErrDisconnectedDungeon, reachable, roomCount)
	}

	return nil
}

// ConnectAdjacentRooms inserts a directional connection for every pair of
// rooms on grid-adjacent cells. Iterating every room over every direction
// inserts both halves of each pair, so connections end up symmetric.
func (d *Dungeon) ConnectAdjacentRooms() {
	for pos, room := range d.rooms {
		for _, dir := range AllDirections() {
			dx, dy := dir.Delta()
			adj := Coord{X: pos.X + dx, Y: pos.Y + dy}
			if _, ok := d.rooms[adj]; ok {
				room.Connections[dir] = adj
			}
		}
	}
}

// ReachableFromStart counts the rooms reachable from the start room via
// breadth-first traversal over connections. Returns 0 when no start room is
// set.
func (d *Dungeon) ReachableFromStart() int {
	if d.startRoom == nil {
		return 0
	}

	visited := mapset.New[Coord]()
	queue := []Coord{d.startRoom.Pos}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited.Has(current) {
			continue
		}

		room, ok := d.rooms[current]
		if !ok {
			continue
		}
		visited.Put(current)

		for _, next := range room.Connections {
			if !visited.Has(next) {
				queue = append(queue, next)
			}
		}
	}

	return visited.Size()
}
