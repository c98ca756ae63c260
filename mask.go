// mask.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// This file implements the mask builder: given a line and the board, it
// classifies each of the 15 cells and computes cross-word constraints.

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

// MaskKind discriminates the four states a mask cell can be in.
type MaskKind int

const (
	// MaskLetterKind marks a cell already filled with a letter.
	MaskLetterKind MaskKind = iota
	// MaskOpenKind marks an empty cell with no perpendicular neighbor:
	// any letter is playable there.
	MaskOpenKind
	// MaskCrossConstraintKind marks an empty cell with a perpendicular
	// neighbor: only letters in Cross form a valid cross word.
	MaskCrossConstraintKind
	// MaskDeadKind marks an empty cell with a perpendicular neighbor but
	// no letter produces a valid cross word; unusable.
	MaskDeadKind
)

// MaskCell is one of Letter(c) / Open / CrossConstraint(map) / Dead, per
// spec.md §3. Exactly one of the fields is meaningful, selected by Kind.
type MaskCell struct {
	Kind   MaskKind
	Letter Letter
	Cross  map[Letter]Completion
}

// convenience constructors

func letterCell(l Letter) MaskCell {
	return MaskCell{Kind: MaskLetterKind, Letter: l}
}

func openCell() MaskCell {
	return MaskCell{Kind: MaskOpenKind}
}

func crossConstraintCell(cross map[Letter]Completion) MaskCell {
	return MaskCell{Kind: MaskCrossConstraintKind, Cross: cross}
}

func deadCell() MaskCell {
	return MaskCell{Kind: MaskDeadKind}
}

// BuildMask produces the 15-element mask for line against board, per
// spec.md §4.3. Grounded on the teacher's Axis.Init cross-check
// construction (vthorsteinsson-GoSkrafl/movegen.go), generalised from a
// 26-letter bitmap to the (letter -> cross word text, gap index) map the
// spec's CrossConstraint carries, and on original_source/scrabble.py's
// perpendicular span walk.
func BuildMask(board *Board, line Line, lex *Lexicon) ([]MaskCell, error) {
	mask := make([]MaskCell, BoardSize)
	perp := line.Dir.Perpendicular()

	for i := 0; i < BoardSize; i++ {
		pos := line.At(i)
		if sq := board.cellAt(pos); sq.Occupied {
			mask[i] = letterCell(sq.Letter)
			continue
		}

		before, after := perpendicularSpan(board, pos, perp)
		if before == "" && after == "" {
			mask[i] = openCell()
			continue
		}

		pattern := before + string(rune(Blank)) + after
		gapIndex := len([]rune(before))
		completions, err := lex.CompleteOneBlank(pattern)
		if err != nil {
			return nil, err
		}
		if len(completions) == 0 {
			mask[i] = deadCell()
			continue
		}
		cross := make(map[Letter]Completion, len(completions))
		for l, c := range completions {
			cross[l] = Completion{Index: gapIndex, Word: c.Word}
		}
		mask[i] = crossConstraintCell(cross)
	}
	return mask, nil
}

// perpendicularSpan walks outward from pos along perp in both directions,
// collecting the contiguous runs of filled cells immediately before and
// after pos. Either run may be empty if pos has no neighbor on that side.
func perpendicularSpan(board *Board, pos Position, perp Direction) (before, after string) {
	var beforeRunes, afterRunes []rune

	step := func(p Position, delta int) Position {
		if perp == Across {
			return Position{Row: p.Row, Col: p.Col + delta}
		}
		return Position{Row: p.Row + delta, Col: p.Col}
	}

	for p := step(pos, -1); p.InBounds(); p = step(p, -1) {
		sq := board.cellAt(p)
		if !sq.Occupied {
			break
		}
		beforeRunes = append([]rune{rune(sq.Letter)}, beforeRunes...)
	}
	for p := step(pos, 1); p.InBounds(); p = step(p, 1) {
		sq := board.cellAt(p)
		if !sq.Occupied {
			break
		}
		afterRunes = append(afterRunes, rune(sq.Letter))
	}
	return string(beforeRunes), string(afterRunes)
}
