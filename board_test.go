// board_test.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

package skrafl

import "testing"

func TestBoardPlaceAndCellAt(t *testing.T) {
	b := NewBoard()
	w := PlacedWord{Text: "DESK", Direction: Across, Origin: Position{Row: CenterRow, Col: 4}}
	if err := b.Place(w, nil); err != nil {
		t.Fatalf("Place: %v", err)
	}
	sq, err := b.CellAt(Position{Row: CenterRow, Col: 4})
	if err != nil || !sq.Occupied || sq.Letter != 'D' {
		t.Fatalf("CellAt origin = %+v, err=%v", sq, err)
	}
	if !b.HasPlacedWord(w) {
		t.Errorf("HasPlacedWord should be true after Place")
	}
	if b.MoveCount() != 1 {
		t.Errorf("MoveCount = %d, want 1", b.MoveCount())
	}
}

func TestBoardPlaceConflict(t *testing.T) {
	b := NewBoard()
	w1 := PlacedWord{Text: "DESK", Direction: Across, Origin: Position{Row: 7, Col: 4}}
	if err := b.Place(w1, nil); err != nil {
		t.Fatalf("Place: %v", err)
	}
	w2 := PlacedWord{Text: "AXE", Direction: Across, Origin: Position{Row: 7, Col: 4}}
	if err := b.Place(w2, nil); err != ErrCellConflict {
		t.Errorf("Place(AXE over DESK) error = %v, want ErrCellConflict", err)
	}
}

func TestBoardDuplicatePlacement(t *testing.T) {
	b := NewBoard()
	w := PlacedWord{Text: "DESK", Direction: Across, Origin: Position{Row: 7, Col: 4}}
	if err := b.Place(w, nil); err != nil {
		t.Fatalf("Place: %v", err)
	}
	if err := b.Place(w, nil); err != ErrDuplicatePlacement {
		t.Errorf("re-Place same word error = %v, want ErrDuplicatePlacement", err)
	}
}

func TestBoardSaveRestoreRoundTrip(t *testing.T) {
	b := NewBoard()
	w := PlacedWord{Text: "DESK", Direction: Across, Origin: Position{Row: 7, Col: 4}}
	if err := b.Place(w, nil); err != nil {
		t.Fatalf("Place: %v", err)
	}
	snap := b.Save()
	restored := Restore(snap)
	for _, p := range w.Positions() {
		got, _ := restored.CellAt(p)
		want, _ := b.CellAt(p)
		if got != want {
			t.Errorf("CellAt(%v) after restore = %+v, want %+v", p, got, want)
		}
	}
	if !restored.HasPlacedWord(w) {
		t.Errorf("restored board missing placed word %+v", w)
	}
}

func TestBoardBlankHasZeroValue(t *testing.T) {
	b := NewBoard()
	w := PlacedWord{Text: "DESK", Direction: Across, Origin: Position{Row: 7, Col: 4}}
	if err := b.Place(w, map[int]bool{3: true}); err != nil {
		t.Fatalf("Place: %v", err)
	}
	v, _ := b.ValueAt(Position{Row: 7, Col: 7})
	if v != 0 {
		t.Errorf("blank tile value = %d, want 0", v)
	}
}

func TestBoardOutOfBounds(t *testing.T) {
	b := NewBoard()
	if _, err := b.CellAt(Position{Row: -1, Col: 0}); err != ErrInvalidInput {
		t.Errorf("CellAt out of bounds error = %v, want ErrInvalidInput", err)
	}
}
