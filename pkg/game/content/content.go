// Package content defines the payloads a room can hold (treasure, monster,
// boss) and the fixed pools they are rolled from. A room with nil content is
// empty; the variants form a tagged union dispatched by type switch rather
// than an inheritance chain.
package content

import "fmt"

// Item is a collectible value object. Items are immutable and shareable:
// the same Item value may be handed out by more than one interaction.
type Item struct {
	Name        string
	Value       int
	Description string
}

// Treasure is a room payload holding a single reward item.
type Treasure struct {
	Reward Item
}

// Monster is a hostile room payload.
type Monster struct {
	Name   string
	Health int
	Attack int
}

// Boss carries all Monster fields plus a special reward granted on defeat.
type Boss struct {
	Monster
	SpecialReward Item
}

// Describe returns a short human-readable label for a payload, used by the
// dungeon census. Unknown payloads report their dynamic type.
func Describe(payload any) string {
	switch c := payload.(type) {
	case nil:
		return "empty"
	case *Treasure:
		return fmt.Sprintf("treasure (%s)", c.Reward.Name)
	case *Boss:
		return fmt.Sprintf("boss %s", c.Name)
	case *Monster:
		return fmt.Sprintf("monster %s", c.Name)
	default:
		return fmt.Sprintf("%T", payload)
	}
}
