// scoring_test.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

package skrafl

import "testing"

// TestScoreMainWordFirstMove exercises the formula in spec.md §4.5
// against the standard board's center double-word square: DESK placed
// across at (7,4) covers the center at (7,7), picking up its x2 word
// multiplier and no letter multiplier (columns 4-7 carry no DL square
// on row 7). D(2) E(1) S(1) K(5) = 9, doubled = 18.
func TestScoreMainWordFirstMove(t *testing.T) {
	board := NewBoard()
	main := PlacedWord{Text: "DESK", Direction: Across, Origin: Position{Row: 7, Col: 4}}
	value, newTiles := scoreMainWord(board, EnglishTileSet, main, nil)
	if newTiles != 4 {
		t.Errorf("newTiles = %d, want 4", newTiles)
	}
	if value != 18 {
		t.Errorf("value = %d, want 18", value)
	}
}

// TestScoreMainWordBingoBonus checks that placing all RackSize tiles in
// one move adds exactly BingoBonus on top of the plain letter/word
// multiplier value.
func TestScoreMainWordBingoBonus(t *testing.T) {
	board := NewBoard()
	main := PlacedWord{Text: "DESKTOP", Direction: Across, Origin: Position{Row: 7, Col: 7}}
	value, newTiles := scoreMainWord(board, EnglishTileSet, main, nil)
	if newTiles != RackSize {
		t.Fatalf("newTiles = %d, want %d", newTiles, RackSize)
	}
	const withoutBonus = 30 // 15 letter-points * word mult 2 (center DW)
	if value != withoutBonus+BingoBonus {
		t.Errorf("value = %d, want %d", value, withoutBonus+BingoBonus)
	}
}

// TestScoreMainWordSkipsAlreadyOccupiedCells confirms that a cell
// occupied before this move contributes its plain effective value, with
// no multiplier applied a second time (spec.md §4.5: "multipliers only
// ever apply to cells that are empty before the move being scored").
func TestScoreMainWordSkipsAlreadyOccupiedCells(t *testing.T) {
	board := NewBoard()
	first := PlacedWord{Text: "DESK", Direction: Across, Origin: Position{Row: 7, Col: 4}}
	if err := board.Place(first, nil); err != nil {
		t.Fatalf("Place: %v", err)
	}
	// SEA down through the existing S at (7,6): only E and A are new.
	second := PlacedWord{Text: "SEA", Direction: Down, Origin: Position{Row: 7, Col: 6}}
	value, newTiles := scoreMainWord(board, EnglishTileSet, second, nil)
	if newTiles != 2 {
		t.Errorf("newTiles = %d, want 2", newTiles)
	}
	// S contributes its plain value (1, no multiplier); E is new at
	// (8,6), a x2 letter square (2); A is new at (9,6), a plain square
	// (1). Word multiplier across the two new cells is 1.
	if value != 1+2+1 {
		t.Errorf("value = %d, want 4", value)
	}
}

// TestScoreCrossWord places SEA across the center row, then scores a
// derived two-letter cross word "AS" through the pre-existing A, with S
// as the single new letter at index 1.
func TestScoreCrossWord(t *testing.T) {
	board := NewBoard()
	if err := board.Place(PlacedWord{Text: "SEA", Direction: Across, Origin: Position{Row: 7, Col: 7}}, nil); err != nil {
		t.Fatalf("Place: %v", err)
	}
	cross := PlacedWord{Text: "AS", Direction: Down, Origin: Position{Row: 7, Col: 9}}
	value := scoreCrossWord(board, EnglishTileSet, cross, 1, false)
	if value != 2 {
		t.Errorf("value = %d, want 2", value)
	}
}

func TestScoreCrossWordBlankContributesZero(t *testing.T) {
	board := NewBoard()
	if err := board.Place(PlacedWord{Text: "SEA", Direction: Across, Origin: Position{Row: 7, Col: 7}}, nil); err != nil {
		t.Fatalf("Place: %v", err)
	}
	cross := PlacedWord{Text: "AS", Direction: Down, Origin: Position{Row: 7, Col: 9}}
	value := scoreCrossWord(board, EnglishTileSet, cross, 1, true)
	if value != 1 {
		t.Errorf("value = %d, want 1 (blank S contributes 0, A still contributes its 1)", value)
	}
}
