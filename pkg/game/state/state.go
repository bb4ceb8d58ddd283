// Package state holds the mutable run state shared between the exploration
// driver and the renderer.
package state

import (
	"github.com/zyedidia/generic/mapset"

	"dungeondelve/pkg/engine/world"
	"dungeondelve/pkg/game/explorer"
)

// Run represents one exploration run over a generated dungeon.
type Run struct {
	Dungeon  *world.Dungeon
	Explorer *explorer.Explorer

	// VisitedPositions tracks where the driver has already explored, so
	// the movement policy can prefer fresh rooms.
	VisitedPositions mapset.Set[world.Coord]

	Messages []string

	Moves int
}

// NewRun creates run state for the given dungeon and explorer.
func NewRun(d *world.Dungeon, e *explorer.Explorer) *Run {
	return &Run{
		Dungeon:          d,
		Explorer:         e,
		VisitedPositions: mapset.New[world.Coord](),
		Messages:         make([]string, 0),
	}
}

// AddMessage appends a message to the run's message log.
func (r *Run) AddMessage(msg string) {
	const maxMessages = 8
	r.Messages = append(r.Messages, msg)

	// Keep only the last maxMessages
	if len(r.Messages) > maxMessages {
		r.Messages = r.Messages[len(r.Messages)-maxMessages:]
	}
}

// ClearMessages clears the message log.
func (r *Run) ClearMessages() {
	r.Messages = make([]string, 0)
}

// VisitedCount returns how many distinct rooms the driver has explored.
func (r *Run) VisitedCount() int {
	return r.VisitedPositions.Size()
}
