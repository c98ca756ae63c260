// bag.go
//
// Copyright (C) 2024 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file contains the Bag logic

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

// Bag tracks only the count of tiles remaining, per spec.md §3: "Only
// the move-generator core requires the count remaining, not the
// identities." It is mutated exclusively by the turn driver, never by
// the core (spec.md §5).
type Bag struct {
	remaining int
}

// NewBag returns a full bag for ts.
func NewBag(ts *TileSet) *Bag {
	return &Bag{remaining: ts.TotalTiles()}
}

// Remaining returns the number of tiles left in the bag.
func (b *Bag) Remaining() int {
	return b.remaining
}

// Draw removes n tiles from the bag's count, e.g. after dealing a rack
// or an exchange. It never goes negative.
func (b *Bag) Draw(n int) {
	b.remaining -= n
	if b.remaining < 0 {
		b.remaining = 0
	}
}

// Return adds n tiles back to the bag's count, e.g. the tiles given up
// in an exchange.
func (b *Bag) Return(n int) {
	b.remaining += n
}

// ExchangeAllowed reports whether a tile exchange is currently legal:
// the rack must hold RackSize tiles and the bag must have at least
// RackSize tiles remaining (spec.md §4.6 / §7 ErrExchangeNotAllowed).
func (b *Bag) ExchangeAllowed(rackSize int) bool {
	return rackSize >= RackSize && b.remaining >= RackSize
}

// ValidateExchange is ExchangeAllowed expressed as an error, for callers
// that want to propagate ErrExchangeNotAllowed directly (ported from the
// original's RequestedRackTilesChangeNotAllowed /
// ChangeRackLettersNotAllowed checks).
func ValidateExchange(rackSize, bagRemaining int) error {
	if rackSize < RackSize || bagRemaining < RackSize {
		return ErrExchangeNotAllowed
	}
	return nil
}
