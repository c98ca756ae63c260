// errors.go
// Copyright (C) 2024 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file declares the sentinel errors surfaced by the core.

package skrafl

import "errors"

// Error kinds surfaced by the core, one sentinel per spec error kind.
// Callers use errors.Is to distinguish them.
var (
	// ErrInvalidInput is returned for a malformed pattern, a non-uppercase
	// letter, or a length outside the lexicon's accepted range. It is a
	// caller bug and always fails fast.
	ErrInvalidInput = errors.New("skrafl: invalid input")

	// ErrCellConflict is returned by Board.Place when a target cell
	// already holds a different letter than the one being placed.
	ErrCellConflict = errors.New("skrafl: cell conflict")

	// ErrWordNotInLexicon is returned by Solution.Commit (when validation
	// is requested) if the main word is not a member of the lexicon.
	ErrWordNotInLexicon = errors.New("skrafl: word not in lexicon")

	// ErrCrossWordNotInLexicon is returned by Solution.Commit (when
	// validation is requested) if a derived cross word is not a member
	// of the lexicon.
	ErrCrossWordNotInLexicon = errors.New("skrafl: cross word not in lexicon")

	// ErrFirstMoveMustCoverCenter is returned when the first move on an
	// empty board does not cover the center square (7,7).
	ErrFirstMoveMustCoverCenter = errors.New("skrafl: first move must cover center")

	// ErrExchangeNotAllowed is returned when a tile exchange is requested
	// with fewer than RackSize tiles on the rack or fewer than RackSize
	// tiles remaining in the bag.
	ErrExchangeNotAllowed = errors.New("skrafl: exchange not allowed")

	// ErrNoMove signals that the generator found zero legal placements.
	// It is not a failure per se: the turn driver decides between a pass
	// and a tile exchange.
	ErrNoMove = errors.New("skrafl: no legal move")

	// ErrDuplicatePlacement is returned when a candidate word's
	// (text, direction, origin) triple already appears on the board,
	// whether as the main word or as a derived cross word.
	ErrDuplicatePlacement = errors.New("skrafl: word already placed")
)
