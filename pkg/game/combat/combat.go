// Package combat implements round-based encounter resolution as an explicit
// state machine: a small combat state plus a pure per-round transition that
// consumes one random draw. Keeping the transition pure lets tests script
// exact fight outcomes.
package combat

import (
	"fmt"

	"dungeondelve/pkg/engine/rng"
)

// Hit chances for the explorer's attack per foe class. Bosses are harder to
// damage.
const (
	MonsterHitChance = 0.6
	BossHitChance    = 0.4
)

// State holds both sides' health between rounds.
type State struct {
	ExplorerHP int
	FoeHP      int
}

// Done reports whether the fight is over: one side has reached zero.
func (s State) Done() bool {
	return s.FoeHP <= 0 || s.ExplorerHP <= 0
}

// ExplorerWon reports whether the foe fell first. Only meaningful once Done.
func (s State) ExplorerWon() bool {
	return s.FoeHP <= 0
}

// Round applies one combat round to st given a single uniform draw in
// [0,1). A draw below hitChance wounds the foe for 1; anything else wounds
// the explorer for foeAttack, floored at 0. One side always takes damage,
// so the fight makes progress every round.
func Round(st State, draw, hitChance float64, foeAttack int) (State, bool) {
	if draw < hitChance {
		st.FoeHP--
		return st, true
	}

	st.ExplorerHP -= foeAttack
	if st.ExplorerHP < 0 {
		st.ExplorerHP = 0
	}
	return st, false
}

// Result is the outcome of a fully resolved encounter.
type Result struct {
	ExplorerHP int
	Won        bool
	Transcript []string
}

// Resolve runs a complete fight between the explorer and a foe, drawing one
// random number per round, and returns the final state with a turn-by-turn
// transcript.
func Resolve(src rng.Source, explorerHP int, foeName string, foeHP, foeAttack int, hitChance float64) Result {
	st := State{ExplorerHP: explorerHP, FoeHP: foeHP}
	var transcript []string

	for !st.Done() {
		next, hit := Round(st, src.Float64(), hitChance, foeAttack)
		if hit {
			transcript = append(transcript,
				fmt.Sprintf("You strike the %s! It has %d health left.", foeName, next.FoeHP))
		} else {
			transcript = append(transcript,
				fmt.Sprintf("The %s hits you for %d! You have %d health left.", foeName, foeAttack, next.ExplorerHP))
		}
		st = next
	}

	if st.ExplorerWon() {
		transcript = append(transcript, fmt.Sprintf("The %s is defeated!", foeName))
	} else {
		transcript = append(transcript, fmt.Sprintf("The %s has bested you...", foeName))
	}

	return Result{ExplorerHP: st.ExplorerHP, Won: st.ExplorerWon(), Transcript: transcript}
}
