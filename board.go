// board.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// This file implements the Board: the 15x15 cell grid, the set of
// placed words, and the position index used by the mask builder and
// move generator

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

import "fmt"

// Square is one cell of the board: either empty, or occupied by a letter
// with its effective value (0 iff the cell was filled by a blank).
type Square struct {
	Occupied       bool
	Letter         Letter
	EffectiveValue int
}

// PlacedWord is a word committed to the board: its text, orientation and
// the position of its first letter.
type PlacedWord struct {
	Text      string
	Direction Direction
	Origin    Position
}

// Positions returns every board position w covers.
func (w PlacedWord) Positions() []Position {
	positions := make([]Position, len(w.Text))
	line := Line{Dir: w.Direction, Index: lineIndex(w.Origin, w.Direction)}
	start := w.Direction.offset(w.Origin)
	for i := range w.Text {
		positions[i] = line.At(start + i)
	}
	return positions
}

// lineIndex returns the fixed row (for Across) or column (for Down) that
// a word starting at origin, in direction dir, lies on.
func lineIndex(origin Position, dir Direction) int {
	if dir == Across {
		return origin.Row
	}
	return origin.Col
}

// offset returns the moving coordinate of origin along dir.
func (d Direction) offset(origin Position) int {
	if d == Across {
		return origin.Col
	}
	return origin.Row
}

// Board is the 15x15 grid plus the placed-word bookkeeping spec.md §3/§4.2
// require: a set of placed words and a Position -> words index (at most
// two entries per position, one across and one down).
type Board struct {
	cells [BoardSize][BoardSize]Square
	words map[wordKey]PlacedWord
	// index maps a position to the placed words covering it, keyed by
	// direction so a position never holds more than one entry per axis.
	index map[Position]map[Direction]wordKey
	moves int
}

type wordKey struct {
	Text      string
	Direction Direction
	Origin    Position
}

func keyOf(w PlacedWord) wordKey {
	return wordKey{Text: w.Text, Direction: w.Direction, Origin: w.Origin}
}

// NewBoard returns an empty 15x15 board.
func NewBoard() *Board {
	return &Board{
		words: make(map[wordKey]PlacedWord),
		index: make(map[Position]map[Direction]wordKey),
	}
}

// IsEmpty reports whether no word has been placed yet.
func (b *Board) IsEmpty() bool {
	return len(b.words) == 0
}

// MoveCount returns the number of moves made so far: each successful
// Place call or Solution.Commit counts once. A Board rebuilt by Restore
// starts the count at the number of words in its snapshot.
func (b *Board) MoveCount() int {
	return b.moves
}

func (b *Board) cellAt(p Position) Square {
	return b.cells[p.Row][p.Col]
}

// CellAt returns the square at p.
func (b *Board) CellAt(p Position) (Square, error) {
	if !p.InBounds() {
		return Square{}, ErrInvalidInput
	}
	return b.cellAt(p), nil
}

// ValueAt returns the effective tile value at p, or 0 for an empty cell.
func (b *Board) ValueAt(p Position) (int, error) {
	sq, err := b.CellAt(p)
	if err != nil {
		return 0, err
	}
	return sq.EffectiveValue, nil
}

// IsEmptyAt reports whether p holds no letter.
func (b *Board) IsEmptyAt(p Position) (bool, error) {
	sq, err := b.CellAt(p)
	if err != nil {
		return false, err
	}
	return !sq.Occupied, nil
}

// HasPlacedWord reports whether the exact (text, direction, origin)
// triple is already on the board (spec.md §4.4 step 5 / §9 Open
// Question 2: a duplicate cross word must be rejected the same way).
func (b *Board) HasPlacedWord(w PlacedWord) bool {
	_, ok := b.words[keyOf(w)]
	return ok
}

// placeWithValues writes w's letters onto the board using ts to look up
// newly-placed letters' face values. blankPositions names the indices
// within w.Text that were filled by a blank tile (effective value 0).
// Preconditions: every position lies on the board, and every target
// cell is either empty or already holds the same letter. Place replaces
// any existing placed word that is a strict prefix subset of w (spec.md
// §9: "placing LES when LE already existed overrides LE's indexing
// entry").
func (b *Board) placeWithValues(w PlacedWord, blankPositions map[int]bool, ts *TileSet) error {
	if len(w.Text) < 2 || len(w.Text) > 15 {
		return ErrInvalidInput
	}
	positions := w.Positions()
	for _, p := range positions {
		if !p.InBounds() {
			return ErrInvalidInput
		}
	}
	for i, p := range positions {
		sq := b.cellAt(p)
		want := Letter(w.Text[i])
		if sq.Occupied && sq.Letter != want {
			return ErrCellConflict
		}
	}
	if b.HasPlacedWord(w) {
		return ErrDuplicatePlacement
	}

	for i, p := range positions {
		sq := b.cellAt(p)
		if sq.Occupied {
			continue
		}
		letter := Letter(w.Text[i])
		value := ts.Value(letter)
		if blankPositions[i] {
			value = 0
		}
		b.cells[p.Row][p.Col] = Square{Occupied: true, Letter: letter, EffectiveValue: value}
	}

	b.retractPrefixSubset(w)
	b.words[keyOf(w)] = w
	b.addToIndex(w)
	b.moves++
	return nil
}

// Place is placeWithValues against the English tile set, for callers
// that do not need to choose a language (most tests and the CLI default).
func (b *Board) Place(w PlacedWord, blankPositions map[int]bool) error {
	return b.placeWithValues(w, blankPositions, EnglishTileSet)
}

// retractPrefixSubset removes any existing placed word on the same line
// and direction whose span is a strict subset of w's, absorbed by w
// (e.g. LE at the same origin/direction as the new LES).
func (b *Board) retractPrefixSubset(w PlacedWord) {
	newPositions := w.Positions()
	newSet := make(map[Position]bool, len(newPositions))
	for _, p := range newPositions {
		newSet[p] = true
	}
	for k, existing := range b.words {
		if existing.Direction != w.Direction || k == keyOf(w) {
			continue
		}
		if len(existing.Text) >= len(w.Text) {
			continue
		}
		covered := true
		for _, p := range existing.Positions() {
			if !newSet[p] {
				covered = false
				break
			}
		}
		if covered {
			b.removeFromIndex(existing)
			delete(b.words, k)
		}
	}
}

func (b *Board) addToIndex(w PlacedWord) {
	for _, p := range w.Positions() {
		if b.index[p] == nil {
			b.index[p] = make(map[Direction]wordKey)
		}
		b.index[p][w.Direction] = keyOf(w)
	}
}

func (b *Board) removeFromIndex(w PlacedWord) {
	for _, p := range w.Positions() {
		if dirs, ok := b.index[p]; ok {
			delete(dirs, w.Direction)
			if len(dirs) == 0 {
				delete(b.index, p)
			}
		}
	}
}

// WordsAt returns the placed words (at most one per direction) covering
// position p.
func (b *Board) WordsAt(p Position) []PlacedWord {
	dirs, ok := b.index[p]
	if !ok {
		return nil
	}
	out := make([]PlacedWord, 0, len(dirs))
	for _, k := range dirs {
		out = append(out, b.words[k])
	}
	return out
}

// NeighborsOfLine reports, for each position along line, whether the
// in-line neighbor immediately before and after it is occupied. Used by
// the move generator to find anchors and the edges of contiguous
// occupied runs.
func (b *Board) NeighborsOfLine(line Line) (before [BoardSize]bool, after [BoardSize]bool) {
	for i := 0; i < BoardSize; i++ {
		if i > 0 {
			prev := line.At(i - 1)
			before[i] = b.cellAt(prev).Occupied
		}
		if i < BoardSize-1 {
			next := line.At(i + 1)
			after[i] = b.cellAt(next).Occupied
		}
	}
	return
}

func (b *Board) String() string {
	out := ""
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			sq := b.cells[r][c]
			if sq.Occupied {
				out += string(rune(sq.Letter))
			} else {
				out += "."
			}
		}
		out += "\n"
	}
	return out
}

// Snapshot captures the full board state for serialization round-trips
// (spec.md §8: "serialising and deserialising a Board preserves cell_at,
// value_at, and the placed-word set for every position").
type Snapshot struct {
	Cells [BoardSize][BoardSize]Square
	Words []PlacedWord
}

// Save returns a Snapshot of the current board state.
func (b *Board) Save() Snapshot {
	words := make([]PlacedWord, 0, len(b.words))
	for _, w := range b.words {
		words = append(words, w)
	}
	return Snapshot{Cells: b.cells, Words: words}
}

// Restore rebuilds a Board from a Snapshot produced by Save.
func Restore(s Snapshot) *Board {
	b := NewBoard()
	b.cells = s.Cells
	for _, w := range s.Words {
		b.words[keyOf(w)] = w
		b.addToIndex(w)
	}
	b.moves = len(s.Words)
	return b
}

func (sq Square) String() string {
	if !sq.Occupied {
		return "_"
	}
	return fmt.Sprintf("%c(%d)", rune(sq.Letter), sq.EffectiveValue)
}
