package content

import "dungeondelve/pkg/engine/rng"

// Baseline boss stats. Bosses share a fixed statline; only the archetype
// name and its reward vary.
const (
	BossHealth = 5
	BossAttack = 2
)

// Monster roll bounds.
const (
	monsterMinHealth = 2
	monsterMaxHealth = 4
	monsterMinAttack = 1
	monsterMaxAttack = 2
)

// monsterNames is the fixed pool of regular monster names.
var monsterNames = []string{
	"Goblin",
	"Skeleton",
	"Giant Rat",
	"Cave Spider",
	"Slime",
	"Kobold",
}

// treasurePool is the fixed pool of items a treasure room can hold.
var treasurePool = []Item{
	{Name: "Gold Pouch", Value: 25, Description: "A worn leather pouch heavy with coins"},
	{Name: "Silver Ring", Value: 40, Description: "A plain band, cold to the touch"},
	{Name: "Ancient Scroll", Value: 60, Description: "Brittle parchment covered in faded runes"},
	{Name: "Jeweled Dagger", Value: 85, Description: "More ornament than weapon"},
	{Name: "Crystal Orb", Value: 120, Description: "It hums faintly when held"},
}

// bossArchetype pairs a boss name with its special reward.
type bossArchetype struct {
	name   string
	reward Item
}

// bossPool is the fixed pool of boss archetypes.
var bossPool = []bossArchetype{
	{
		name:   "Dragon Wyrmling",
		reward: Item{Name: "Dragonscale Shield", Value: 200, Description: "Still warm, somehow"},
	},
	{
		name:   "Lich",
		reward: Item{Name: "Phylactery Shard", Value: 250, Description: "A fragment of stolen centuries"},
	},
	{
		name:   "Minotaur",
		reward: Item{Name: "Labyrinth Key", Value: 180, Description: "Opens doors that no longer exist"},
	},
}

// RollMonster creates a fresh monster: a name from the fixed pool, health
// uniform in [2,4] and attack uniform in [1,2].
func RollMonster(src rng.Source) *Monster {
	return &Monster{
		Name:   rng.Choice(src, monsterNames),
		Health: rng.Between(src, monsterMinHealth, monsterMaxHealth),
		Attack: rng.Between(src, monsterMinAttack, monsterMaxAttack),
	}
}

// RollBoss creates a boss from a random archetype with the fixed baseline
// statline.
func RollBoss(src rng.Source) *Boss {
	archetype := rng.Choice(src, bossPool)
	return &Boss{
		Monster: Monster{
			Name:   archetype.name,
			Health: BossHealth,
			Attack: BossAttack,
		},
		SpecialReward: archetype.reward,
	}
}

// RollTreasure creates a treasure payload with one item from the fixed pool.
func RollTreasure(src rng.Source) *Treasure {
	return &Treasure{Reward: rng.Choice(src, treasurePool)}
}
