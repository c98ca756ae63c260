// scoring.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// This file implements move scoring, per spec.md §4.5, cross-checked
// against original_source/scrabble.py's compute_word_value and
// compute_cross_word_value.

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

// scoreMainWord computes the main word's value against board's state
// *before* the move is applied, plus the count of newly-placed tiles
// used for the bingo bonus. Multipliers only apply to cells that were
// empty before this move; multipliers are never applied twice, which is
// why this must run before Board.Place commits the move.
func scoreMainWord(board *Board, ts *TileSet, main PlacedWord, blanks map[int]bool) (value int, newTiles int) {
	positions := main.Positions()
	wordMult := 1
	letterSum := 0
	for i, p := range positions {
		sq := board.cellAt(p)
		if sq.Occupied {
			letterSum += sq.EffectiveValue
			continue
		}
		newTiles++
		wordMult *= WordMultiplierAt(p)
		tileValue := 0
		if !blanks[i] {
			tileValue = ts.Value(Letter(main.Text[i]))
		}
		letterSum += tileValue * LetterMultiplierAt(p)
	}
	value = letterSum * wordMult
	if newTiles >= RackSize {
		value += BingoBonus
	}
	return value, newTiles
}

// scoreCrossWord computes a single derived cross word's value. newIndex
// is the offset within cross.Text of the one newly-placed letter (every
// cross word has exactly one, by construction); isBlank reports whether
// that letter came from a blank tile.
func scoreCrossWord(board *Board, ts *TileSet, cross PlacedWord, newIndex int, isBlank bool) int {
	positions := cross.Positions()
	letterSum := 0
	if !isBlank {
		letterSum = ts.Value(Letter(cross.Text[newIndex])) * LetterMultiplierAt(positions[newIndex])
	}
	for i, p := range positions {
		if i == newIndex {
			continue
		}
		letterSum += board.cellAt(p).EffectiveValue
	}
	return letterSum * WordMultiplierAt(positions[newIndex])
}
