// movegen.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file contains code to generate all valid tile moves
// on a SCRABBLE(tm) board, given a player's rack.
// It is a part of the Go 'skrafl' package.

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

package skrafl

import (
	"sync"

	"golang.org/x/exp/slices"
)

// Generator produces every legal Solution for a rack against a board,
// per spec.md §4.4. lex and ts are read-only for the generator's entire
// lifetime, so a single Generator may serve concurrent queries safely
// as long as each query owns its own Board and Rack (spec.md §5).
type Generator struct {
	lex *Lexicon
	ts  *TileSet
}

// NewGenerator returns a Generator over lex, scoring with ts's tile
// values.
func NewGenerator(lex *Lexicon, ts *TileSet) *Generator {
	return &Generator{lex: lex, ts: ts}
}

// SolutionsFor returns every legal Solution for rack against board,
// always sorted ascending by Value, secondary key MainWord.Text, then
// direction and origin so that equal-scoring placements of the same
// word keep one fixed order (spec.md §4.4 step 6 / §8 determinism
// property).
//
// On an empty board, only the center anchor (7,7), across, is
// considered (spec.md §4.4: "the move must cover the center square");
// this is the one-anchor special case of the same left-extension
// algorithm used for every other line, not a separate code path, which
// is why first-move candidates can land at origins other than (7,7)
// itself (spec.md §8 scenarios 1 and 3).
func (g *Generator) SolutionsFor(board *Board, rack *Rack) ([]*Solution, error) {
	if board.IsEmpty() {
		sols, err := g.solutionsForLine(board, rack, Line{Dir: Across, Index: CenterRow}, []int{CenterCol})
		if err != nil {
			return nil, err
		}
		sortSolutions(sols)
		return sols, nil
	}

	type lineResult struct {
		sols []*Solution
		err  error
	}
	results := make(chan lineResult, BoardSize*2)
	var wg sync.WaitGroup
	for _, dir := range []Direction{Across, Down} {
		for idx := 0; idx < BoardSize; idx++ {
			wg.Add(1)
			go func(line Line) {
				defer wg.Done()
				sols, err := g.solutionsForLine(board, rack, line, nil)
				results <- lineResult{sols, err}
			}(Line{Dir: dir, Index: idx})
		}
	}
	wg.Wait()
	close(results)

	var all []*Solution
	for r := range results {
		if r.err != nil {
			return nil, r.err
		}
		all = append(all, r.sols...)
	}
	sortSolutions(all)
	return all, nil
}

// BestSolution returns the highest-scoring Solution, breaking ties on
// the larger main word text (spec.md §4.4 step 6: "last element after
// sort"). It returns ErrNoMove if rack has no legal placement.
func (g *Generator) BestSolution(board *Board, rack *Rack) (*Solution, error) {
	sols, err := g.SolutionsFor(board, rack)
	if err != nil {
		return nil, err
	}
	if len(sols) == 0 {
		return nil, ErrNoMove
	}
	return sols[len(sols)-1], nil
}

func sortSolutions(sols []*Solution) {
	slices.SortFunc(sols, func(a, b *Solution) int {
		if a.Value != b.Value {
			return a.Value - b.Value
		}
		if a.MainWord.Text != b.MainWord.Text {
			if a.MainWord.Text < b.MainWord.Text {
				return -1
			}
			return 1
		}
		if a.MainWord.Direction != b.MainWord.Direction {
			return int(a.MainWord.Direction) - int(b.MainWord.Direction)
		}
		if a.MainWord.Origin.Row != b.MainWord.Origin.Row {
			return a.MainWord.Origin.Row - b.MainWord.Origin.Row
		}
		return a.MainWord.Origin.Col - b.MainWord.Origin.Col
	})
}

// solutionsForLine runs the mask build, anchor detection (unless
// anchorsOverride is given) and left-extension search for one line,
// per spec.md §4.4 steps 1-5.
func (g *Generator) solutionsForLine(board *Board, rack *Rack, line Line, anchorsOverride []int) ([]*Solution, error) {
	mask, err := BuildMask(board, line, g.lex)
	if err != nil {
		return nil, err
	}

	anchors := anchorsOverride
	if anchors == nil {
		before, _ := board.NeighborsOfLine(line)
		for i := 0; i < BoardSize; i++ {
			if mask[i].Kind != MaskLetterKind && before[i] {
				anchors = append(anchors, i)
			}
		}
	}

	rackLetters := rack.Letters()
	var sols []*Solution
	seen := make(map[string]bool)
	for _, a := range anchors {
		for _, ell := range leftFamily(mask, a) {
			found, err := g.candidatesAt(board, rack, rackLetters, line, mask, ell, a)
			if err != nil {
				return nil, err
			}
			for _, s := range found {
				key := s.MainWord.Text + "|" + s.MainWord.Origin.String()
				if seen[key] {
					continue
				}
				seen[key] = true
				sols = append(sols, s)
			}
		}
	}
	return sols, nil
}

// leftFamily returns every valid left-extension start ell for anchor a,
// per spec.md §4.4 step 2: bounded on the left by the board edge, a
// Letter or Dead cell, or the 7-tile rack cap.
//
// When the anchor's immediate left neighbor already holds a letter, ell
// is not a family at all: the walk-back must continue through the whole
// contiguous run of Letter cells so the search resumes from the run's
// start, the same way genMovesFromAnchor rewinds an existing Fragment
// before resuming the DAWG (vthorsteinsson-GoSkrafl/movegen.go:587-619).
// That is what lets a longer word absorb an existing one on the board
// (DESK -> DESKS) instead of only ever starting fresh at the anchor.
func leftFamily(mask []MaskCell, a int) []int {
	if a > 0 && mask[a-1].Kind == MaskLetterKind {
		ell := a - 1
		for ell > 0 && mask[ell-1].Kind == MaskLetterKind {
			ell--
		}
		return []int{ell}
	}

	ellMin := 0
	for j := a - 1; j >= 0; j-- {
		if mask[j].Kind == MaskLetterKind || mask[j].Kind == MaskDeadKind {
			ellMin = j + 1
			break
		}
	}
	if rackBound := a - RackSize + 1; rackBound > ellMin {
		ellMin = rackBound
	}
	family := make([]int, 0, a-ellMin+1)
	for ell := ellMin; ell <= a; ell++ {
		family = append(family, ell)
	}
	return family
}

// candidatesAt runs MaskedRackSearch over the window starting at ell,
// builds one Solution per returned word, and validates/derives cross
// words for each (spec.md §4.4 steps 3-5).
func (g *Generator) candidatesAt(board *Board, rack *Rack, rackLetters []Letter, line Line, mask []MaskCell, ell, a int) ([]*Solution, error) {
	minLength := a - ell + 1
	for ell+minLength < BoardSize && mask[ell+minLength].Kind == MaskLetterKind {
		minLength++
	}

	words, err := g.lex.MaskedRackSearch(mask[ell:], rackLetters, minLength)
	if err != nil {
		return nil, err
	}

	var sols []*Solution
	for w := range words {
		end := ell + len(w)
		if end < BoardSize && mask[end].Kind == MaskLetterKind {
			// w stops right before an existing letter it doesn't absorb:
			// that letter belongs to a separate, longer word on this line.
			continue
		}

		origin := line.At(ell)
		main := PlacedWord{Text: w, Direction: line.Dir, Origin: origin}

		blanks, ok := assignBlanks(w, mask, ell, rack)
		if !ok {
			continue
		}

		sol, ok := g.buildSolution(board, main, mask, ell, blanks)
		if !ok {
			continue
		}
		sols = append(sols, sol)
	}
	return sols, nil
}

// assignBlanks walks wordText against mask starting at offset start and
// decides, for each position not already a board letter, whether it is
// satisfied by a matching rack letter or must fall back to a blank
// (spec.md §4.4 step 4: greedy, prefer the exact letter).
func assignBlanks(wordText string, mask []MaskCell, start int, rack *Rack) (map[int]bool, bool) {
	avail := rack.clone()
	blanks := make(map[int]bool)
	for i := 0; i < len(wordText); i++ {
		if mask[start+i].Kind == MaskLetterKind {
			continue
		}
		l := Letter(wordText[i])
		switch {
		case avail.Has(l):
			avail.Remove(l)
		case avail.Has(Blank):
			avail.Remove(Blank)
			blanks[i] = true
		default:
			return nil, false
		}
	}
	return blanks, true
}

// buildSolution derives main's cross words from mask, rejects on-board
// duplicates, and scores the result.
func (g *Generator) buildSolution(board *Board, main PlacedWord, mask []MaskCell, start int, blanks map[int]bool) (*Solution, bool) {
	if board.HasPlacedWord(main) {
		return nil, false
	}

	perp := main.Direction.Perpendicular()
	var cross []PlacedWord
	var crossNewIndex []int
	var crossIsBlank []bool

	for i := 0; i < len(main.Text); i++ {
		cell := mask[start+i]
		if cell.Kind != MaskCrossConstraintKind {
			continue
		}
		completion, ok := cell.Cross[Letter(main.Text[i])]
		if !ok {
			return nil, false
		}
		intersection := main.Origin.addAlong(main.Direction, i)
		p := perpendicularOrigin(intersection, perp, completion.Index)
		cw := PlacedWord{Text: completion.Word, Direction: perp, Origin: p}
		if board.HasPlacedWord(cw) {
			return nil, false
		}
		cross = append(cross, cw)
		crossNewIndex = append(crossNewIndex, completion.Index)
		crossIsBlank = append(crossIsBlank, blanks[i])
	}

	value, _ := scoreMainWord(board, g.ts, main, blanks)
	for i, cw := range cross {
		value += scoreCrossWord(board, g.ts, cw, crossNewIndex[i], crossIsBlank[i])
	}

	return &Solution{
		ID:             newSolutionID(),
		MainWord:       main,
		CrossWords:     cross,
		BlankPositions: blanks,
		Value:          value,
		state:          Scored,
	}, true
}

// addAlong returns the position i steps along dir from p.
func (p Position) addAlong(dir Direction, i int) Position {
	if dir == Across {
		return Position{Row: p.Row, Col: p.Col + i}
	}
	return Position{Row: p.Row + i, Col: p.Col}
}

// perpendicularOrigin returns the origin of a cross word in direction
// perp whose gapIndex'th letter sits at intersection.
func perpendicularOrigin(intersection Position, perp Direction, gapIndex int) Position {
	if perp == Across {
		return Position{Row: intersection.Row, Col: intersection.Col - gapIndex}
	}
	return Position{Row: intersection.Row - gapIndex, Col: intersection.Col}
}
