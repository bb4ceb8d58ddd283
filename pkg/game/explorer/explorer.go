// Package explorer implements the single agent that walks a generated
// dungeon, moving along room connections and resolving whatever it finds.
package explorer

import (
	"fmt"
	"sort"
	"strings"

	"dungeondelve/pkg/engine/rng"
	"dungeondelve/pkg/engine/world"
	"dungeondelve/pkg/game/combat"
	"dungeondelve/pkg/game/content"
)

// DefaultHealth is the explorer's starting health.
const DefaultHealth = 5

// bossBonusChance is the probability that a defeated boss yields a second
// copy of its special reward.
const bossBonusChance = 0.3

// Explorer is a stateful agent on the dungeon grid. It consumes the
// dungeon's adjacency data to move and mutates only its own state plus the
// visited/content fields of rooms it resolves.
type Explorer struct {
	dungeon *world.Dungeon
	src     rng.Source

	Position  world.Coord
	Health    int
	Inventory []content.Item
}

// New creates an explorer seeded at the dungeon's start room with default
// health and an empty inventory.
func New(d *world.Dungeon, src rng.Source) (*Explorer, error) {
	start := d.StartRoom()
	if start == nil {
		return nil, world.ErrStartRoomMissing
	}

	return &Explorer{
		dungeon:  d,
		src:      src,
		Position: start.Pos,
		Health:   DefaultHealth,
	}, nil
}

// IsAlive reports whether the explorer can still act. Health is floored at
// zero, so this is false exactly when health is zero.
func (e *Explorer) IsAlive() bool {
	return e.Health > 0
}

// InventoryValue totals the value of everything collected so far.
func (e *Explorer) InventoryValue() int {
	total := 0
	for _, item := range e.Inventory {
		total += item.Value
	}
	return total
}

// Move attempts to step in the given direction. It returns false, mutating
// nothing, when there is no room at the current position or the current
// room has no connection that way. Movement itself never touches health,
// inventory or visited flags.
func (e *Explorer) Move(dir world.Direction) bool {
	room := e.dungeon.RoomAt(e.Position)
	if room == nil {
		return false
	}

	dest, ok := room.Connections[dir]
	if !ok {
		return false
	}

	e.Position = dest
	return true
}

// AdjacentDirections lists the directions available from the current room,
// sorted in enum order for stable output. Empty when the explorer is not
// standing on a room.
func (e *Explorer) AdjacentDirections() []world.Direction {
	room := e.dungeon.RoomAt(e.Position)
	if room == nil {
		return nil
	}

	dirs := make([]world.Direction, 0, len(room.Connections))
	for dir := range room.Connections {
		dirs = append(dirs, dir)
	}
	sort.Slice(dirs, func(i, j int) bool { return dirs[i] < dirs[j] })
	return dirs
}

// ExploreCurrentRoom resolves the current room: it marks the room visited,
// dispatches on the room's content, and returns a human-readable transcript
// of what happened. Content is cleared after any resolution, so a room
// yields at most one interaction.
func (e *Explorer) ExploreCurrentRoom() string {
	room := e.dungeon.RoomAt(e.Position)
	if room == nil {
		return "There is no room here."
	}

	room.Visited = true

	if !room.HasContent() {
		return "The room is empty. Nothing but dust and old stone."
	}

	var result string
	switch c := room.Content.(type) {
	case *content.Treasure:
		result = e.collectTreasure(c)
	case *content.Boss:
		result = e.fightBoss(c)
	case *content.Monster:
		result = e.fightMonster(c)
	default:
		result = fmt.Sprintf("Something unrecognisable occupies the room (%T).", room.Content)
	}

	room.ClearContent()
	return result
}

// collectTreasure appends the reward to the inventory. Treasure always
// succeeds and costs no health.
func (e *Explorer) collectTreasure(t *content.Treasure) string {
	e.Inventory = append(e.Inventory, t.Reward)
	return fmt.Sprintf("You found a %s! %s (worth %d)",
		t.Reward.Name, t.Reward.Description, t.Reward.Value)
}

// fightMonster resolves round-based combat against a regular monster.
// Survival is its own reward; winning grants nothing else.
func (e *Explorer) fightMonster(m *content.Monster) string {
	lines := []string{fmt.Sprintf("A %s blocks your way! (health %d, attack %d)",
		m.Name, m.Health, m.Attack)}

	res := combat.Resolve(e.src, e.Health, m.Name, m.Health, m.Attack, combat.MonsterHitChance)
	e.Health = res.ExplorerHP

	lines = append(lines, res.Transcript...)
	return strings.Join(lines, "\n")
}

// fightBoss resolves combat against a boss. Bosses are harder to hit; on
// victory the special reward is collected, and occasionally a second copy
// of the same item turns up with it.
func (e *Explorer) fightBoss(b *content.Boss) string {
	lines := []string{fmt.Sprintf("The boss %s looms before you! (health %d, attack %d)",
		b.Name, b.Health, b.Attack)}

	res := combat.Resolve(e.src, e.Health, b.Name, b.Health, b.Attack, combat.BossHitChance)
	e.Health = res.ExplorerHP
	lines = append(lines, res.Transcript...)

	if res.Won {
		e.Inventory = append(e.Inventory, b.SpecialReward)
		lines = append(lines, fmt.Sprintf("You claim the %s! %s (worth %d)",
			b.SpecialReward.Name, b.SpecialReward.Description, b.SpecialReward.Value))

		if e.src.Float64() < bossBonusChance {
			e.Inventory = append(e.Inventory, b.SpecialReward)
			lines = append(lines, fmt.Sprintf("Hidden beneath the hoard: another %s!",
				b.SpecialReward.Name))
		}
	}

	return strings.Join(lines, "\n")
}
