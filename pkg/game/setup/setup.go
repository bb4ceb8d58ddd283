// Package setup distributes content across a generated dungeon: one boss on
// a corner room when possible, then monsters, then treasure. Steps run in a
// fixed order and each step's candidate pool is what the previous step left
// empty, so a seeded source reproduces the same distribution.
package setup

import (
	"dungeondelve/pkg/engine/rng"
	"dungeondelve/pkg/engine/world"
	"dungeondelve/pkg/game/content"
)

// Density divisors for content placement.
const (
	monsterDivisor  = 4
	treasureDivisor = 5
)

// PlaceContent assigns content to the non-start rooms of d. Must run after
// a successful generation; it is a no-op when the dungeon has no non-start
// rooms. The start room never receives content.
func PlaceContent(d *world.Dungeon, src rng.Source) error {
	if d.StartRoom() == nil {
		return world.ErrStartRoomMissing
	}

	if len(emptyNonStartRooms(d)) == 0 {
		return nil
	}

	placeBoss(d, src)
	placeMonsters(d, src)
	placeTreasure(d, src)

	return nil
}

// emptyNonStartRooms collects the rooms still eligible for content, in grid
// order so candidate pools are deterministic under a seeded source.
func emptyNonStartRooms(d *world.Dungeon) []*world.Room {
	var rooms []*world.Room
	d.ForEachRoom(func(pos world.Coord, room *world.Room) {
		if !room.IsStart && !room.HasContent() {
			rooms = append(rooms, room)
		}
	})
	return rooms
}

// placeBoss puts one boss on a random corner room. A dungeon whose sample
// missed all four corners simply gets no boss; that is an accepted outcome,
// not an error.
func placeBoss(d *world.Dungeon, src rng.Source) {
	w, h := d.Width(), d.Height()
	corners := []world.Coord{
		{X: 0, Y: 0},
		{X: 0, Y: h - 1},
		{X: w - 1, Y: 0},
		{X: w - 1, Y: h - 1},
	}

	var candidates []*world.Room
	for _, pos := range corners {
		if room := d.RoomAt(pos); room != nil && !room.IsStart {
			candidates = append(candidates, room)
		}
	}
	if len(candidates) == 0 {
		return
	}

	room := rng.Choice(src, candidates)
	room.Content = content.RollBoss(src)
}

// placeMonsters fills max(1, remaining/4) still-empty rooms with freshly
// rolled monsters, picking without replacement.
func placeMonsters(d *world.Dungeon, src rng.Source) {
	candidates := emptyNonStartRooms(d)
	count := max(1, len(candidates)/monsterDivisor)

	for i := 0; i < count && len(candidates) > 0; i++ {
		idx := src.Intn(len(candidates))
		candidates[idx].Content = content.RollMonster(src)
		candidates = append(candidates[:idx], candidates[idx+1:]...)
	}
}

// placeTreasure fills max(1, remaining/5) still-empty rooms with treasure,
// picking without replacement from whatever the boss and monster steps left.
func placeTreasure(d *world.Dungeon, src rng.Source) {
	candidates := emptyNonStartRooms(d)
	count := max(1, len(candidates)/treasureDivisor)

	for i := 0; i < count && len(candidates) > 0; i++ {
		idx := src.Intn(len(candidates))
		candidates[idx].Content = content.RollTreasure(src)
		candidates = append(candidates[:idx], candidates[idx+1:]...)
	}
}
