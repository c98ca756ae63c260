// movegen_test.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

package skrafl

import "testing"

func rackMultiset(r *Rack) map[Letter]int {
	m := make(map[Letter]int)
	for _, l := range r.Letters() {
		m[l]++
	}
	return m
}

// TestBestSolutionIsRackSubset checks property (b) of spec.md §8: every
// letter a solution places, other than blanks, must come from the rack,
// and no more copies than the rack holds.
func TestBestSolutionIsRackSubset(t *testing.T) {
	lex := testLexicon(t)
	gen := NewGenerator(lex, EnglishTileSet)
	rack, err := NewRack("DESKTOP")
	if err != nil {
		t.Fatalf("NewRack: %v", err)
	}
	board := NewBoard()
	sols, err := gen.SolutionsFor(board, rack)
	if err != nil {
		t.Fatalf("SolutionsFor: %v", err)
	}
	if len(sols) == 0 {
		t.Fatal("expected at least one solution for DESKTOP on an empty board")
	}
	avail := rackMultiset(rack)
	for _, s := range sols {
		used := make(map[Letter]int)
		for i, c := range s.MainWord.Text {
			if s.BlankPositions[i] {
				used[Blank]++
				continue
			}
			used[Letter(c)]++
		}
		for l, n := range used {
			if l == Blank {
				continue
			}
			if n > avail[l] {
				t.Errorf("solution %q uses %d of %c, rack has %d", s.MainWord.Text, n, rune(l), avail[l])
			}
		}
	}
}

// TestSolutionsForNoCellConflict checks property (a): no candidate
// solution may place a letter onto a cell that already holds a
// different letter.
func TestSolutionsForNoCellConflict(t *testing.T) {
	lex := testLexicon(t)
	gen := NewGenerator(lex, EnglishTileSet)
	board := NewBoard()
	if err := board.Place(PlacedWord{Text: "DESK", Direction: Across, Origin: Position{Row: 7, Col: 4}}, nil); err != nil {
		t.Fatalf("Place: %v", err)
	}
	rack, err := NewRack("SAXEIS")
	if err != nil {
		t.Fatalf("NewRack: %v", err)
	}
	sols, err := gen.SolutionsFor(board, rack)
	if err != nil {
		t.Fatalf("SolutionsFor: %v", err)
	}
	for _, s := range sols {
		for i, p := range s.MainWord.Positions() {
			sq := board.cellAt(p)
			if sq.Occupied && sq.Letter != Letter(s.MainWord.Text[i]) {
				t.Errorf("solution %q at %v conflicts with existing letter %c", s.MainWord.Text, p, rune(sq.Letter))
			}
		}
	}
}

// TestSolutionsForDeterministic checks spec.md §8's determinism
// property: identical board/rack/lexicon produce an identical ordered
// solution list across repeated calls.
func TestSolutionsForDeterministic(t *testing.T) {
	lex := testLexicon(t)
	gen := NewGenerator(lex, EnglishTileSet)
	rack, _ := NewRack("DESKTOP")
	board := NewBoard()

	first, err := gen.SolutionsFor(board, rack)
	if err != nil {
		t.Fatalf("SolutionsFor: %v", err)
	}
	second, err := gen.SolutionsFor(board, rack)
	if err != nil {
		t.Fatalf("SolutionsFor: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("len(first)=%d, len(second)=%d", len(first), len(second))
	}
	for i := range first {
		if first[i].MainWord != second[i].MainWord || first[i].Value != second[i].Value {
			t.Errorf("solution %d differs between runs: %+v vs %+v", i, first[i].MainWord, second[i].MainWord)
		}
	}
}

func TestBestSolutionNoMove(t *testing.T) {
	lex := NewLexicon()
	gen := NewGenerator(lex, EnglishTileSet)
	rack, _ := NewRack("ZZZ")
	board := NewBoard()
	if _, err := gen.BestSolution(board, rack); err != ErrNoMove {
		t.Errorf("BestSolution error = %v, want ErrNoMove", err)
	}
}

// TestBestSolutionCoversCenter checks that every first-move candidate
// covers the center square, per spec.md §4.4.
func TestBestSolutionCoversCenter(t *testing.T) {
	lex := testLexicon(t)
	gen := NewGenerator(lex, EnglishTileSet)
	rack, _ := NewRack("DESKTOP")
	board := NewBoard()
	sols, err := gen.SolutionsFor(board, rack)
	if err != nil {
		t.Fatalf("SolutionsFor: %v", err)
	}
	for _, s := range sols {
		if !coversCenter(s.MainWord) {
			t.Errorf("solution %+v does not cover center", s.MainWord)
		}
	}
}

// TestSolutionsForAreScored checks that a Solution comes out of the
// generator already past Idle: buildSolution has derived its cross
// words and computed Value by the time the caller sees it, so its
// lifecycle state must read Scored, not Idle, until Commit moves it on
// to Committed or Rejected.
func TestSolutionsForAreScored(t *testing.T) {
	lex := testLexicon(t)
	gen := NewGenerator(lex, EnglishTileSet)
	rack, _ := NewRack("DESKTOP")
	board := NewBoard()
	sols, err := gen.SolutionsFor(board, rack)
	if err != nil {
		t.Fatalf("SolutionsFor: %v", err)
	}
	if len(sols) == 0 {
		t.Fatal("expected at least one solution for DESKTOP on an empty board")
	}
	for _, s := range sols {
		if s.State() != Scored {
			t.Errorf("solution %q State() = %v, want Scored", s.MainWord.Text, s.State())
		}
	}
}

// TestSolutionsForExtendsExistingWord checks the suffix-extension case
// of spec.md §4.4 step 2: with DESK already on the board, a rack
// holding the S to make DESKS must produce that longer word, absorbing
// (retracting) the existing DESK placement rather than only ever
// considering fresh starts at the anchor.
func TestSolutionsForExtendsExistingWord(t *testing.T) {
	lex := testLexicon(t)
	gen := NewGenerator(lex, EnglishTileSet)
	board := NewBoard()
	if err := board.Place(PlacedWord{Text: "DESK", Direction: Across, Origin: Position{Row: 7, Col: 4}}, nil); err != nil {
		t.Fatalf("Place: %v", err)
	}
	rack, err := NewRack("S")
	if err != nil {
		t.Fatalf("NewRack: %v", err)
	}
	sols, err := gen.SolutionsFor(board, rack)
	if err != nil {
		t.Fatalf("SolutionsFor: %v", err)
	}
	var desks *Solution
	for _, s := range sols {
		if s.MainWord.Text == "DESKS" && s.MainWord.Origin == (Position{Row: 7, Col: 4}) {
			desks = s
		}
	}
	if desks == nil {
		t.Fatalf("expected DESKS at (7,4) among solutions, got %+v", sols)
	}

	// Committing DESKS must retract the DESK placement it absorbs.
	if err := desks.Commit(board, EnglishTileSet, lex, true); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if board.HasPlacedWord(PlacedWord{Text: "DESK", Direction: Across, Origin: Position{Row: 7, Col: 4}}) {
		t.Errorf("DESK should have been retracted once DESKS absorbed it")
	}
	if !board.HasPlacedWord(desks.MainWord) {
		t.Errorf("board missing committed DESKS placement")
	}
}
