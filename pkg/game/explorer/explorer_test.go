package explorer

import (
	"errors"
	"strings"
	"testing"

	"dungeondelve/pkg/engine/rng"
	"dungeondelve/pkg/engine/world"
	"dungeondelve/pkg/game/content"
)

// scriptedSource replays a fixed sequence of float draws; Intn is never
// needed by encounter resolution.
type scriptedSource struct {
	floats []float64
	pos    int
}

func (s *scriptedSource) Intn(n int) int { return 0 }

func (s *scriptedSource) Float64() float64 {
	if s.pos >= len(s.floats) {
		return 0.99
	}
	v := s.floats[s.pos]
	s.pos++
	return v
}

// makeTwoRoomDungeon builds rooms at (0,0) and (1,0), start on the left.
func makeTwoRoomDungeon(t *testing.T) *world.Dungeon {
	t.Helper()
	d := world.NewDungeon(2, 1)
	d.AddRoom(world.Coord{X: 0, Y: 0})
	d.AddRoom(world.Coord{X: 1, Y: 0})
	d.ConnectAdjacentRooms()
	if !d.SetStart(world.Coord{X: 0, Y: 0}) {
		t.Fatal("SetStart failed")
	}
	return d
}

func newTestExplorer(t *testing.T, d *world.Dungeon, src rng.Source) *Explorer {
	t.Helper()
	e, err := New(d, src)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func TestNew_NoStartRoom(t *testing.T) {
	d := world.NewDungeon(2, 2)
	if _, err := New(d, rng.NewSeeded(1)); !errors.Is(err, world.ErrStartRoomMissing) {
		t.Errorf("New without start room: err = %v, want ErrStartRoomMissing", err)
	}
}

func TestMove_InvalidDirectionLeavesPosition(t *testing.T) {
	d := makeTwoRoomDungeon(t)
	e := newTestExplorer(t, d, rng.NewSeeded(1))

	if e.Move(world.West) {
		t.Error("Move(west) = true, want false (no connection)")
	}
	if e.Position != (world.Coord{X: 0, Y: 0}) {
		t.Errorf("position after failed move = %v, want (0,0)", e.Position)
	}

	if !e.Move(world.East) {
		t.Error("Move(east) = false, want true")
	}
	if e.Position != (world.Coord{X: 1, Y: 0}) {
		t.Errorf("position after Move(east) = %v, want (1,0)", e.Position)
	}
}

func TestMove_NoRoomAtPosition(t *testing.T) {
	d := makeTwoRoomDungeon(t)
	e := newTestExplorer(t, d, rng.NewSeeded(1))
	e.Position = world.Coord{X: 5, Y: 5}

	if e.Move(world.East) {
		t.Error("Move from a positionless explorer = true, want false")
	}
}

func TestMove_DoesNotTouchOtherState(t *testing.T) {
	d := makeTwoRoomDungeon(t)
	e := newTestExplorer(t, d, rng.NewSeeded(1))
	d.RoomAt(e.Position).Visited = false

	e.Move(world.East)

	if e.Health != DefaultHealth || len(e.Inventory) != 0 {
		t.Errorf("movement changed health/inventory: %d, %d items", e.Health, len(e.Inventory))
	}
	if d.RoomAt(world.Coord{X: 0, Y: 0}).Visited {
		t.Error("movement marked the departed room visited")
	}
}

func TestAdjacentDirections(t *testing.T) {
	d := makeTwoRoomDungeon(t)
	e := newTestExplorer(t, d, rng.NewSeeded(1))

	dirs := e.AdjacentDirections()
	if len(dirs) != 1 || dirs[0] != world.East {
		t.Errorf("AdjacentDirections() = %v, want [east]", dirs)
	}

	e.Position = world.Coord{X: 7, Y: 7}
	if got := e.AdjacentDirections(); len(got) != 0 {
		t.Errorf("AdjacentDirections() off the map = %v, want empty", got)
	}
}

func TestExploreCurrentRoom_NoRoomHere(t *testing.T) {
	d := makeTwoRoomDungeon(t)
	e := newTestExplorer(t, d, rng.NewSeeded(1))
	e.Position = world.Coord{X: 9, Y: 9}

	result := e.ExploreCurrentRoom()
	if !strings.Contains(result, "no room") {
		t.Errorf("ExploreCurrentRoom off the map = %q, want a 'no room' message", result)
	}
}

func TestExploreCurrentRoom_EmptyRoomMarksVisited(t *testing.T) {
	d := makeTwoRoomDungeon(t)
	e := newTestExplorer(t, d, rng.NewSeeded(1))

	result := e.ExploreCurrentRoom()
	if !strings.Contains(result, "empty") {
		t.Errorf("empty room result = %q, want an 'empty' message", result)
	}
	if !d.RoomAt(e.Position).Visited {
		t.Error("room not marked visited after exploration")
	}

	// Idempotent on re-visit.
	e.ExploreCurrentRoom()
	if !d.RoomAt(e.Position).Visited {
		t.Error("visited flag reverted")
	}
}

func TestExploreCurrentRoom_TreasureCollected(t *testing.T) {
	d := makeTwoRoomDungeon(t)
	e := newTestExplorer(t, d, rng.NewSeeded(1))

	reward := content.Item{Name: "Crystal Orb", Value: 120, Description: "It hums faintly when held"}
	room := d.RoomAt(e.Position)
	room.Content = &content.Treasure{Reward: reward}

	result := e.ExploreCurrentRoom()
	if !strings.Contains(result, "Crystal Orb") {
		t.Errorf("treasure result = %q, want the item named", result)
	}
	if len(e.Inventory) != 1 || e.Inventory[0] != reward {
		t.Errorf("Inventory = %v, want [%v]", e.Inventory, reward)
	}
	if e.Health != DefaultHealth {
		t.Errorf("treasure cost health: %d, want %d", e.Health, DefaultHealth)
	}
	if room.HasContent() {
		t.Error("treasure content not cleared after collection")
	}
}

func TestExploreCurrentRoom_AtMostOneInteraction(t *testing.T) {
	d := makeTwoRoomDungeon(t)
	e := newTestExplorer(t, d, rng.NewSeeded(1))

	d.RoomAt(e.Position).Content = &content.Treasure{
		Reward: content.Item{Name: "Gold Pouch", Value: 25},
	}

	e.ExploreCurrentRoom()
	second := e.ExploreCurrentRoom()

	if !strings.Contains(second, "empty") {
		t.Errorf("second exploration = %q, want an 'empty' message", second)
	}
	if len(e.Inventory) != 1 {
		t.Errorf("Inventory has %d items after double exploration, want 1", len(e.Inventory))
	}
}

func TestExploreCurrentRoom_MonsterOneRoundKill(t *testing.T) {
	d := makeTwoRoomDungeon(t)
	src := &scriptedSource{floats: []float64{0.1}}
	e := newTestExplorer(t, d, src)

	room := d.RoomAt(e.Position)
	room.Content = &content.Monster{Name: "Goblin", Health: 1, Attack: 1}

	result := e.ExploreCurrentRoom()

	if e.Health != DefaultHealth {
		t.Errorf("Health = %d after forced one-round kill, want %d", e.Health, DefaultHealth)
	}
	if !strings.Contains(result, "defeated") {
		t.Errorf("result = %q, want a victory line", result)
	}
	if room.HasContent() {
		t.Error("monster content not cleared after the fight")
	}
	if !room.Visited {
		t.Error("room not marked visited")
	}
}

func TestExploreCurrentRoom_MonsterDefeatClearsContentAndFloorsHealth(t *testing.T) {
	d := makeTwoRoomDungeon(t)
	src := &scriptedSource{} // every draw misses
	e := newTestExplorer(t, d, src)

	room := d.RoomAt(e.Position)
	room.Content = &content.Monster{Name: "Cave Spider", Health: 3, Attack: 2}

	e.ExploreCurrentRoom()

	if e.Health != 0 {
		t.Errorf("Health = %d after guaranteed loss, want 0", e.Health)
	}
	if e.IsAlive() {
		t.Error("IsAlive() = true with zero health")
	}
	if room.HasContent() {
		t.Error("content must be cleared regardless of outcome")
	}
}

func TestExploreCurrentRoom_BossVictoryGrantsReward(t *testing.T) {
	d := makeTwoRoomDungeon(t)
	// Five hits to fell the boss, then a bonus draw above 0.3: one copy.
	src := &scriptedSource{floats: []float64{0.1, 0.1, 0.1, 0.1, 0.1, 0.9}}
	e := newTestExplorer(t, d, src)

	reward := content.Item{Name: "Labyrinth Key", Value: 180}
	d.RoomAt(e.Position).Content = &content.Boss{
		Monster:       content.Monster{Name: "Minotaur", Health: 5, Attack: 2},
		SpecialReward: reward,
	}

	e.ExploreCurrentRoom()

	if len(e.Inventory) != 1 || e.Inventory[0] != reward {
		t.Errorf("Inventory = %v, want exactly [%v]", e.Inventory, reward)
	}
}

func TestExploreCurrentRoom_BossDuplicateRewardBonus(t *testing.T) {
	d := makeTwoRoomDungeon(t)
	// Five hits, then a bonus draw below 0.3: the same item value twice.
	src := &scriptedSource{floats: []float64{0.1, 0.1, 0.1, 0.1, 0.1, 0.2}}
	e := newTestExplorer(t, d, src)

	reward := content.Item{Name: "Phylactery Shard", Value: 250}
	d.RoomAt(e.Position).Content = &content.Boss{
		Monster:       content.Monster{Name: "Lich", Health: 5, Attack: 2},
		SpecialReward: reward,
	}

	result := e.ExploreCurrentRoom()

	if len(e.Inventory) != 2 {
		t.Fatalf("Inventory has %d items, want 2 (duplicate bonus)", len(e.Inventory))
	}
	if e.Inventory[0] != reward || e.Inventory[1] != reward {
		t.Errorf("Inventory = %v, want the same reward twice", e.Inventory)
	}
	if !strings.Contains(result, "another") {
		t.Errorf("result = %q, want the bonus reported in the transcript", result)
	}
}

func TestExploreCurrentRoom_BossLossGrantsNothing(t *testing.T) {
	d := makeTwoRoomDungeon(t)
	src := &scriptedSource{} // every draw misses
	e := newTestExplorer(t, d, src)

	room := d.RoomAt(e.Position)
	room.Content = &content.Boss{
		Monster:       content.Monster{Name: "Dragon Wyrmling", Health: 5, Attack: 2},
		SpecialReward: content.Item{Name: "Dragonscale Shield", Value: 200},
	}

	e.ExploreCurrentRoom()

	if len(e.Inventory) != 0 {
		t.Errorf("Inventory = %v after a loss, want empty", e.Inventory)
	}
	if e.Health != 0 {
		t.Errorf("Health = %d, want 0", e.Health)
	}
	if room.HasContent() {
		t.Error("boss content must be cleared even after a loss")
	}
}

func TestInventoryValue(t *testing.T) {
	d := makeTwoRoomDungeon(t)
	e := newTestExplorer(t, d, rng.NewSeeded(1))
	e.Inventory = []content.Item{{Name: "a", Value: 25}, {Name: "b", Value: 40}}

	if got := e.InventoryValue(); got != 65 {
		t.Errorf("InventoryValue() = %d, want 65", got)
	}
}
