// solution.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// This file implements Solution, the result of a move query, and the
// per-query move lifecycle state machine described in spec.md §4.6.

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

import "github.com/google/uuid"

// Solution is one candidate move: a main word, its derived cross words,
// the rack positions that were satisfied by a blank, and the resulting
// score. ID lets a caller running several concurrent solutions_for
// queries correlate a Solution back to the query that produced it
// without relying on slice order.
type Solution struct {
	ID             uuid.UUID
	MainWord       PlacedWord
	CrossWords     []PlacedWord
	BlankPositions map[int]bool
	Value          int

	state MoveState
}

// State returns the solution's current lifecycle state.
func (s *Solution) State() MoveState {
	return s.state
}

// newSolutionID returns a fresh identifier for a Solution returned by
// the generator.
func newSolutionID() uuid.UUID {
	return uuid.New()
}

// Commit applies the solution to board, moving it to Committed on
// success or Rejected on failure. validate, when true, requires the
// main word and every cross word to be lexicon members before writing
// anything to the board (spec.md §4.6/§9's optional post-validation).
func (s *Solution) Commit(board *Board, ts *TileSet, lex *Lexicon, validate bool) error {
	if s.state != Idle && s.state != Scored {
		return ErrInvalidInput
	}
	if board.IsEmpty() {
		if !coversCenter(s.MainWord) {
			s.state = Rejected
			return ErrFirstMoveMustCoverCenter
		}
	}
	if board.HasPlacedWord(s.MainWord) {
		s.state = Rejected
		return ErrDuplicatePlacement
	}
	for _, cw := range s.CrossWords {
		if board.HasPlacedWord(cw) {
			s.state = Rejected
			return ErrDuplicatePlacement
		}
	}
	if validate {
		if ok, _ := lex.Contains(s.MainWord.Text); !ok {
			s.state = Rejected
			return ErrWordNotInLexicon
		}
		for _, cw := range s.CrossWords {
			if ok, _ := lex.Contains(cw.Text); !ok {
				s.state = Rejected
				return ErrCrossWordNotInLexicon
			}
		}
	}
	if err := board.placeWithValues(s.MainWord, s.BlankPositions, ts); err != nil {
		s.state = Rejected
		return err
	}
	moves := board.moves
	for _, cw := range s.CrossWords {
		// Cross words never introduce new letters of their own: every
		// position but the intersection is already on the board, and
		// the intersection letter was just written by the main word's
		// Place call above, so committing the cross word only needs to
		// register it in the word index. It is part of the same move,
		// so the move count is left as the main word's placement set it.
		if err := board.placeWithValues(cw, nil, ts); err != nil {
			board.moves = moves
			s.state = Rejected
			return err
		}
	}
	board.moves = moves
	s.state = Committed
	return nil
}

func coversCenter(w PlacedWord) bool {
	center := Position{Row: CenterRow, Col: CenterCol}
	for _, p := range w.Positions() {
		if p == center {
			return true
		}
	}
	return false
}
