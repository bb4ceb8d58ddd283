package state

import (
	"fmt"
	"testing"

	"dungeondelve/pkg/engine/rng"
	"dungeondelve/pkg/engine/world"
	"dungeondelve/pkg/game/explorer"
)

func makeRun(t *testing.T) *Run {
	t.Helper()
	d := world.NewDungeon(2, 2)
	if err := d.GenerateStructure(4, rng.NewSeeded(1)); err != nil {
		t.Fatalf("GenerateStructure: %v", err)
	}
	e, err := explorer.New(d, rng.NewSeeded(1))
	if err != nil {
		t.Fatalf("explorer.New: %v", err)
	}
	return NewRun(d, e)
}

func TestAddMessageCapsBacklog(t *testing.T) {
	run := makeRun(t)
	for i := 0; i < 20; i++ {
		run.AddMessage(fmt.Sprintf("message %d", i))
	}

	if len(run.Messages) != 8 {
		t.Fatalf("len(Messages) = %d, want 8", len(run.Messages))
	}
	if run.Messages[0] != "message 12" || run.Messages[7] != "message 19" {
		t.Errorf("Messages window = [%s ... %s], want [message 12 ... message 19]",
			run.Messages[0], run.Messages[7])
	}
}

func TestClearMessages(t *testing.T) {
	run := makeRun(t)
	run.AddMessage("hello")
	run.ClearMessages()
	if len(run.Messages) != 0 {
		t.Errorf("len(Messages) after clear = %d, want 0", len(run.Messages))
	}
}

func TestVisitedCount(t *testing.T) {
	run := makeRun(t)
	if run.VisitedCount() != 0 {
		t.Errorf("fresh run VisitedCount() = %d, want 0", run.VisitedCount())
	}
	run.VisitedPositions.Put(world.Coord{X: 0, Y: 0})
	run.VisitedPositions.Put(world.Coord{X: 0, Y: 0})
	run.VisitedPositions.Put(world.Coord{X: 1, Y: 0})
	if run.VisitedCount() != 2 {
		t.Errorf("VisitedCount() = %d, want 2", run.VisitedCount())
	}
}
