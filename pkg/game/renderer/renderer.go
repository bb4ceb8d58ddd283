// Package renderer prints the dungeon, the explorer's status and the run's
// message log to the terminal. Presentation only; it never mutates game
// state.
package renderer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"dungeondelve/pkg/engine/terminal"
	"dungeondelve/pkg/engine/world"
	"dungeondelve/pkg/game/content"
	"dungeondelve/pkg/game/state"
)

// Map glyphs
const (
	IconExplorer  = "@"
	IconStart     = "S"
	IconTreasure  = "$"
	IconMonster   = "M"
	IconBoss      = "B"
	IconVisited   = "○"
	IconUnvisited = "●"
	IconVoid      = "·"
)

var (
	ColorTitle    color.Style
	ColorRoom     color.Style
	ColorExplorer color.Style
	ColorItem     color.Style
	ColorDanger   color.Style
	ColorBoss     color.Style
	ColorSubtle   color.Style
	ColorAction   color.Style

	regexpStringFunctions *regexp.Regexp
)

// dynamicGet is used for runtime translation key lookups. A function
// variable avoids go vet's non-constant format string check, since markup
// operands are looked up dynamically.
var dynamicGet = gotext.Get

// InitColors initializes the color styles.
func InitColors() {
	ColorTitle = color.Style{color.FgCyan, color.OpBold}
	ColorRoom = color.Style{color.FgGray}
	ColorExplorer = color.Style{color.FgGreen, color.OpBold}
	ColorItem = color.Style{color.FgGreen, color.OpBold}
	ColorDanger = color.Style{color.FgRed, color.OpBold}
	ColorBoss = color.Style{color.FgMagenta, color.OpBold}
	ColorSubtle = color.Style{color.FgGray, color.OpBold}
	ColorAction = color.Style{color.FgMagenta}

	regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:!.'-]+)}`)
}

// FormatString formats a string with special markup: GT{key} translates,
// ITEM{}, ROOM{}, BOSS{} and ACTION{} apply styles.
func FormatString(msg string, a ...any) string {
	ret := fmt.Sprintf(msg, a...)

	matches := regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		val := ""

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "ITEM":
			val = ColorItem.Sprintf(operand)
		case "ROOM":
			val = ColorRoom.Sprintf(operand)
		case "BOSS":
			val = ColorBoss.Sprintf(operand)
		case "ACTION":
			val = ColorAction.Sprintf(operand)
		default:
			val = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// PrintString prints a formatted string.
func PrintString(msg string, a ...any) {
	fmt.Print(FormatString(msg, a...))
}

// PrintTitle prints a banner like the demo's section headers.
func PrintTitle(title string) {
	bar := strings.Repeat("=", 50)
	fmt.Println()
	fmt.Println(ColorTitle.Sprint(bar))
	fmt.Println(ColorTitle.Sprintf("  %s", title))
	fmt.Println(ColorTitle.Sprint(bar))
	fmt.Println()
}

// RenderRoom returns the glyph for one room. Content glyphs are only shown
// for the explorer's own room and rooms already explored.
func RenderRoom(run *state.Run, room *world.Room) string {
	if room == nil {
		return ColorSubtle.Sprint(IconVoid)
	}

	if run.Explorer != nil && run.Explorer.Position == room.Pos {
		return ColorExplorer.Sprint(IconExplorer)
	}

	if room.IsStart {
		return ColorAction.Sprint(IconStart)
	}

	if room.Visited {
		switch room.Content.(type) {
		case *content.Treasure:
			return ColorItem.Sprint(IconTreasure)
		case *content.Boss:
			return ColorBoss.Sprint(IconBoss)
		case *content.Monster:
			return ColorDanger.Sprint(IconMonster)
		default:
			return ColorRoom.Sprint(IconVisited)
		}
	}

	return ColorSubtle.Sprint(IconUnvisited)
}

// PrintDungeonMap renders the whole grid, centred on the terminal width.
func PrintDungeonMap(run *state.Run) {
	d := run.Dungeon

	rowWidth := d.Width()*2 - 1
	indentWidth := (terminal.Width() - rowWidth) / 2
	if indentWidth < 0 {
		indentWidth = 0
	}
	indent := strings.Repeat(" ", indentWidth)

	fmt.Println()
	for y := 0; y < d.Height(); y++ {
		fmt.Print(indent)
		for x := 0; x < d.Width(); x++ {
			if x > 0 {
				fmt.Print(" ")
			}
			fmt.Print(RenderRoom(run, d.RoomAt(world.Coord{X: x, Y: y})))
		}
		fmt.Println()
	}
	fmt.Println()
}

// PrintLegend prints the map legend.
func PrintLegend() {
	entries := []struct {
		icon  string
		style color.Style
		text  string
	}{
		{IconExplorer, ColorExplorer, "explorer"},
		{IconStart, ColorAction, "start room"},
		{IconTreasure, ColorItem, "treasure"},
		{IconMonster, ColorDanger, "monster"},
		{IconBoss, ColorBoss, "boss"},
		{IconVisited, ColorRoom, "explored room"},
		{IconUnvisited, ColorSubtle, "unexplored room"},
		{IconVoid, ColorSubtle, "no room"},
	}

	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, e.style.Sprint(e.icon)+" "+e.text)
	}

	fmt.Println(ColorSubtle.Sprint("Legend: ") + strings.Join(parts, ColorSubtle.Sprint("  |  ")))
}

// PrintDungeonInfo prints dungeon dimensions, room count and the content
// census.
func PrintDungeonInfo(d *world.Dungeon) {
	treasures, monsters, bosses := 0, 0, 0
	d.ForEachRoom(func(pos world.Coord, room *world.Room) {
		switch room.Content.(type) {
		case *content.Treasure:
			treasures++
		case *content.Boss:
			bosses++
		case *content.Monster:
			monsters++
		}
	})
	empty := d.RoomCount() - treasures - monsters - bosses

	PrintString("GT{Dimensions}: %dx%d\n", d.Width(), d.Height())
	PrintString("GT{Rooms}: %d\n", d.RoomCount())
	if start := d.StartRoom(); start != nil {
		PrintString("GT{Start room}: (%d, %d)\n", start.Pos.X, start.Pos.Y)
	}
	PrintString("GT{Treasures}: %d\n", treasures)
	PrintString("GT{Monsters}: %d\n", monsters)
	PrintString("GT{Bosses}: %d\n", bosses)
	PrintString("GT{Empty rooms}: %d\n", empty)
}

// PrintStatusBar renders the explorer's health and inventory.
func PrintStatusBar(run *state.Run) {
	e := run.Explorer

	fmt.Println()
	health := ColorItem.Sprintf("%d", e.Health)
	if e.Health <= 2 {
		health = ColorDanger.Sprintf("%d", e.Health)
	}
	fmt.Printf("%s %s   %s (%d, %d)\n",
		ColorSubtle.Sprint("Health:"), health,
		ColorSubtle.Sprint("Position:"), e.Position.X, e.Position.Y)

	fmt.Print(ColorSubtle.Sprint("Inventory: "))
	if len(e.Inventory) == 0 {
		fmt.Println(ColorSubtle.Sprint("(empty)"))
		return
	}

	items := make([]string, 0, len(e.Inventory))
	for _, item := range e.Inventory {
		items = append(items, ColorItem.Sprint(item.Name))
	}
	fmt.Printf("%s %s\n",
		strings.Join(items, ColorSubtle.Sprint(", ")),
		ColorSubtle.Sprintf("(total value %d)", e.InventoryValue()))
}

// PrintMessagesPane renders the run's message log under a horizontal rule.
func PrintMessagesPane(run *state.Run) {
	width := terminal.Width()

	label := " Messages "
	sideLen := (width - len(label)) / 2
	if sideLen < 1 {
		sideLen = 1
	}

	leftDashes := strings.Repeat("─", sideLen)
	rightDashes := strings.Repeat("─", width-sideLen-len(label))

	fmt.Println()
	fmt.Println(ColorSubtle.Sprint(leftDashes + label + rightDashes))

	if len(run.Messages) == 0 {
		fmt.Println(ColorSubtle.Sprint("  (no messages)"))
	} else {
		for _, msg := range run.Messages {
			fmt.Printf("  %s\n", msg)
		}
	}

	fmt.Println(ColorSubtle.Sprint(strings.Repeat("─", width)))
}
