package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/leonelquinteros/gotext"

	"dungeondelve/pkg/engine/input"
	"dungeondelve/pkg/engine/rng"
	"dungeondelve/pkg/engine/world"
	"dungeondelve/pkg/game/explorer"
	"dungeondelve/pkg/game/renderer"
	"dungeondelve/pkg/game/setup"
	"dungeondelve/pkg/game/state"
)

// maxGenerationAttempts bounds the driver-level retries when the random
// sample produces a disconnected dungeon. The generator itself never
// retries; each attempt here draws fresh randomness.
const maxGenerationAttempts = 20

func initGotext() {
	gotext.Configure("locales", "en_US", "default")
}

// buildDungeon generates a connected dungeon, retrying on disconnected
// samples and aborting on configuration errors.
func buildDungeon(width, height, rooms int, src rng.Source) (*world.Dungeon, error) {
	d := world.NewDungeon(width, height)

	for attempt := 1; attempt <= maxGenerationAttempts; attempt++ {
		err := d.GenerateStructure(rooms, src)
		if err == nil {
			return d, nil
		}
		if errors.Is(err, world.ErrInvalidConfiguration) {
			return nil, err
		}
		if !errors.Is(err, world.ErrDisconnectedDungeon) {
			return nil, err
		}
	}

	return nil, fmt.Errorf("no connected dungeon after %d attempts", maxGenerationAttempts)
}

// logResult splits a multi-line interaction transcript into the message log.
func logResult(run *state.Run, result string) {
	for _, line := range strings.Split(result, "\n") {
		if line != "" {
			run.AddMessage(line)
		}
	}
}

// chooseDirection prefers a direction leading to a room the run has not
// explored yet, falling back to a uniformly random available direction.
func chooseDirection(run *state.Run, src rng.Source) (world.Direction, bool) {
	dirs := run.Explorer.AdjacentDirections()
	if len(dirs) == 0 {
		return 0, false
	}

	room := run.Dungeon.RoomAt(run.Explorer.Position)
	for _, dir := range dirs {
		if dest, ok := room.Connections[dir]; ok && !run.VisitedPositions.Has(dest) {
			return dir, true
		}
	}

	return rng.Choice(src, dirs), true
}

// explorationStep explores the current room (once per position) and moves.
// Returns false when the run is over.
func explorationStep(run *state.Run, src rng.Source) bool {
	e := run.Explorer
	pos := e.Position

	if !run.VisitedPositions.Has(pos) {
		run.AddMessage(renderer.FormatString("GT{You arrive at a new room at} (%d, %d)", pos.X, pos.Y))
		logResult(run, e.ExploreCurrentRoom())
		run.VisitedPositions.Put(pos)
	} else {
		run.AddMessage(renderer.FormatString("GT{You have been here before.} (%d, %d)", pos.X, pos.Y))
	}

	if !e.IsAlive() {
		run.AddMessage(renderer.FormatString("GT{The explorer has perished in the dungeon...}"))
		return false
	}

	dir, ok := chooseDirection(run, src)
	if !ok {
		run.AddMessage(renderer.FormatString("GT{No directions available. Exploration over.}"))
		return false
	}

	if !e.Move(dir) {
		run.AddMessage(renderer.FormatString("GT{Could not move} %s", dir))
		return false
	}
	run.AddMessage(renderer.FormatString("GT{Moved} ACTION{%s}", dir))

	return true
}

// runExploration drives the automatic exploration loop.
func runExploration(run *state.Run, src rng.Source, maxMoves int, interactive bool) {
	for run.Moves < maxMoves {
		run.Moves++

		alive := explorationStep(run, src)

		renderer.PrintDungeonMap(run)
		renderer.PrintStatusBar(run)
		renderer.PrintMessagesPane(run)

		if !alive {
			return
		}

		if interactive && run.Moves%3 == 0 {
			renderer.PrintString("ACTION{Press Enter to continue...}")
			input.WaitForEnter()
		}
	}
}

func printFinalStats(run *state.Run) {
	renderer.PrintTitle(gotext.Get("FINAL RESULTS"))

	e := run.Explorer
	renderer.PrintString("GT{Rooms visited}: %d/%d\n", run.VisitedCount(), run.Dungeon.RoomCount())
	if e.IsAlive() {
		renderer.PrintString("GT{Final state}: ITEM{alive}\n")
	} else {
		renderer.PrintString("GT{Final state}: %s\n", renderer.ColorDanger.Sprint(gotext.Get("dead")))
	}
	renderer.PrintStatusBar(run)

	unvisited := run.Dungeon.RoomCount() - run.VisitedCount()
	fmt.Println()
	if unvisited > 0 {
		renderer.PrintString("GT{The dungeon still holds} %d GT{unexplored rooms.}\n", unvisited)
	} else {
		renderer.PrintString("ITEM{You explored the whole dungeon!}\n")
	}

	switch {
	case e.IsAlive() && len(e.Inventory) > 0:
		renderer.PrintString("GT{You survived and returned with treasure. A successful delve!}\n")
	case e.IsAlive():
		renderer.PrintString("GT{You made it back alive, but empty-handed. Try again!}\n")
	default:
		renderer.PrintString("GT{The explorer's treasures are lost forever...}\n")
	}
}

func main() {
	width := flag.Int("width", 5, "dungeon grid width")
	height := flag.Int("height", 5, "dungeon grid height")
	rooms := flag.Int("rooms", 10, "number of rooms to generate")
	seed := flag.Int64("seed", 0, "random seed (0 = time-based)")
	moves := flag.Int("moves", 15, "maximum exploration moves")
	interactive := flag.Bool("interactive", false, "pause for Enter every few moves")
	flag.Parse()

	initGotext()
	renderer.InitColors()

	src := rng.NewTimeSeeded()
	if *seed != 0 {
		src = rng.NewSeeded(*seed)
	}

	renderer.PrintTitle(gotext.Get("DUNGEON GENERATOR - FULL DEMO"))
	renderer.PrintString("GT{Grid}: %dx%d, GT{rooms}: %d, GT{max moves}: %d\n", *width, *height, *rooms, *moves)

	renderer.PrintTitle(gotext.Get("1: MAP GENERATION"))

	d, err := buildDungeon(*width, *height, *rooms, src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dungeon generation failed: %v\n", err)
		os.Exit(1)
	}
	renderer.PrintString("ITEM{Structure generated successfully!}\n")

	if err := setup.PlaceContent(d, src); err != nil {
		fmt.Fprintf(os.Stderr, "content placement failed: %v\n", err)
		os.Exit(1)
	}
	renderer.PrintString("ITEM{Content distributed!}\n\n")

	renderer.PrintDungeonInfo(d)
	renderer.PrintLegend()

	renderer.PrintTitle(gotext.Get("2: THE EXPLORER"))

	e, err := explorer.New(d, src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "explorer creation failed: %v\n", err)
		os.Exit(1)
	}

	run := state.NewRun(d, e)
	renderer.PrintDungeonMap(run)
	renderer.PrintStatusBar(run)

	if *interactive {
		renderer.PrintString("\nACTION{Press Enter to start exploring...}")
		input.WaitForEnter()
	}

	renderer.PrintTitle(gotext.Get("3: EXPLORATION"))
	runExploration(run, src, *moves, *interactive)

	printFinalStats(run)
}
