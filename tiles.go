// tiles.go
//
// Copyright (C) 2024 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file contains the TileSet and standard board multiplier layouts

package skrafl

// TileSet holds the per-language tile economy: how many of each letter
// (and how many blanks) the bag starts with, and each letter's point
// value. Mirrors the teacher's per-language tile-set tables in bag.go,
// extended with the French table from the original Python implementation
// (the teacher ships none).
type TileSet struct {
	Name   string
	Values map[Letter]int
	Counts map[Letter]int
	// Blanks is the number of wildcard tiles in a full bag.
	Blanks int
}

// Value returns the point value of l, or 0 for Blank.
func (ts *TileSet) Value(l Letter) int {
	if l == Blank {
		return 0
	}
	return ts.Values[l]
}

// TotalTiles returns the total tile count of a full bag, blanks included.
func (ts *TileSet) TotalTiles() int {
	total := ts.Blanks
	for _, n := range ts.Counts {
		total += n
	}
	return total
}

// EnglishTileSet is the standard 100-tile (incl. 2 blanks) English bag,
// transcribed from original_source/scrabble.py's character_value_closure
// and character_set_closure for lang='EN'.
var EnglishTileSet = &TileSet{
	Name: "EN",
	Values: map[Letter]int{
		'E': 1, 'A': 1, 'I': 1, 'O': 1, 'N': 1, 'R': 1, 'T': 1, 'L': 1, 'S': 1, 'U': 1,
		'D': 2, 'G': 2,
		'B': 3, 'C': 3, 'M': 3, 'P': 3,
		'F': 4, 'H': 4, 'V': 4, 'W': 4, 'Y': 4,
		'K': 5,
		'J': 8, 'X': 8,
		'Q': 10, 'Z': 10,
	},
	Counts: map[Letter]int{
		'E': 12, 'A': 9, 'I': 9, 'O': 8, 'N': 6, 'R': 6, 'T': 6, 'L': 4, 'S': 4, 'U': 4,
		'D': 4, 'G': 3,
		'B': 2, 'C': 2, 'M': 2, 'P': 2, 'F': 2, 'H': 2, 'V': 2, 'W': 2, 'Y': 2,
		'K': 1, 'J': 1, 'Q': 1, 'X': 1, 'Z': 1,
	},
	Blanks: 2,
}

// FrenchTileSet is the standard 102-tile (incl. 2 blanks) French bag,
// transcribed from original_source/scrabble.py's character_value_closure
// and character_set_closure for lang='FR'.
var FrenchTileSet = &TileSet{
	Name: "FR",
	Values: map[Letter]int{
		'E': 1, 'A': 1, 'I': 1, 'N': 1, 'O': 1, 'R': 1, 'S': 1, 'T': 1, 'U': 1, 'L': 1,
		'D': 2, 'M': 2, 'G': 2,
		'B': 3, 'C': 3, 'P': 3,
		'F': 4, 'H': 4, 'V': 4,
		'J': 8, 'Q': 8,
		'K': 10, 'W': 10, 'X': 10, 'Y': 10, 'Z': 10,
	},
	Counts: map[Letter]int{
		'E': 15, 'A': 9, 'I': 8, 'N': 6, 'O': 6, 'R': 6, 'S': 6, 'T': 6, 'U': 6, 'L': 5,
		'D': 3, 'M': 3, 'G': 2,
		'B': 2, 'C': 2, 'P': 2, 'F': 2, 'H': 2, 'V': 2,
		'J': 1, 'Q': 1, 'K': 1, 'W': 1, 'X': 1, 'Y': 1, 'Z': 1,
	},
	Blanks: 2,
}

// WordMultipliers is the standard 15x15 word-multiplier layout, one digit
// per cell ('1', '2' or '3'). Verbatim from the teacher's
// WORD_MULTIPLIERS_STANDARD in board.go.
var WordMultipliers = [BoardSize]string{
	"311111131111113",
	"121111111111121",
	"112111111111211",
	"111211111112111",
	"111121111121111",
	"111111111111111",
	"111111111111111",
	"311111121111113",
	"111111111111111",
	"111111111111111",
	"111121111121111",
	"111211111112111",
	"112111111111211",
	"121111111111121",
	"311111131111113",
}

// LetterMultipliers is the standard 15x15 letter-multiplier layout.
// Verbatim from the teacher's LETTER_MULTIPLIERS_STANDARD in board.go.
var LetterMultipliers = [BoardSize]string{
	"111211111112111",
	"111113111311111",
	"111111212111111",
	"211111121111112",
	"111111111111111",
	"131113111311131",
	"112111212111211",
	"111211111112111",
	"112111212111211",
	"131113111311131",
	"111111111111111",
	"211111121111112",
	"111111212111111",
	"111113111311111",
	"111211111112111",
}

// WordMultiplierAt returns the word multiplier at p on the standard board.
func WordMultiplierAt(p Position) int {
	return int(WordMultipliers[p.Row][p.Col] - '0')
}

// LetterMultiplierAt returns the letter multiplier at p on the standard
// board.
func LetterMultiplierAt(p Position) int {
	return int(LetterMultipliers[p.Row][p.Col] - '0')
}
