// lexicon.go
//
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf

// This file implements the Lexicon: a trie-based dictionary built from a
// loaded word list, answering membership, single-wildcard completion,
// and masked rack-constrained word enumeration.

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

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/simplelru"
)

// crossCacheSize bounds the LRU cache of CompleteOneBlank results. Mask
// building re-derives the same handful of cross-word patterns across many
// candidate anchors within a single query, so caching pays for itself the
// same way it does for the teacher's crossCache in dawg.go.
const crossCacheSize = 4096

// lexNode is a trie node. Edges are indexed by letter (A-Z, 26 slots)
// rather than a map, per the arena/fixed-slot layout suggested for a
// systems rewrite of this component.
type lexNode struct {
	isWord bool
	edges  [26]*lexNode
}

func (n *lexNode) edge(l Letter) *lexNode {
	if l < 'A' || l > 'Z' {
		return nil
	}
	return n.edges[l-'A']
}

func (n *lexNode) ensureEdge(l Letter) *lexNode {
	idx := l - 'A'
	if n.edges[idx] == nil {
		n.edges[idx] = &lexNode{}
	}
	return n.edges[idx]
}

// Lexicon is a read-only-after-construction prefix tree over uppercase
// letters. It is safe for concurrent use by any number of readers once
// Load has returned.
type Lexicon struct {
	root       *lexNode
	crossCache *lru.LRU
	// cacheMu guards crossCache: simplelru is not safe for concurrent
	// use, and even a Get updates its recency list.
	cacheMu sync.Mutex
}

// Completion is one result of CompleteOneBlank: the letter c completes
// the pattern into Word, with the wildcard sitting at offset Index.
type Completion struct {
	Index int
	Word  string
}

// NewLexicon returns an empty, ready-to-Load lexicon.
func NewLexicon() *Lexicon {
	cache, err := lru.NewLRU(crossCacheSize, nil)
	if err != nil {
		// Only fails for a non-positive size, which crossCacheSize never is.
		panic(err)
	}
	return &Lexicon{root: &lexNode{}, crossCache: cache}
}

// Load reads a word list from r, either a JSON array of strings or a
// UTF-8 file of uppercase words one per line, and inserts every word of
// length 2..15 into the trie. Words of length 1 or >15 are discarded.
// Duplicate words are logged and ignored, matching Trie._add_word's
// "already existing in tree" warning in the original implementation.
func (lex *Lexicon) Load(r io.Reader) error {
	br := bufio.NewReader(r)
	first, err := br.Peek(1)
	if err != nil && err != io.EOF {
		return fmt.Errorf("skrafl: reading word list: %w", err)
	}
	var words []string
	if len(first) > 0 && first[0] == '[' {
		if err := json.NewDecoder(br).Decode(&words); err != nil {
			return fmt.Errorf("skrafl: decoding JSON word list: %w", err)
		}
	} else {
		scanner := bufio.NewScanner(br)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			words = append(words, line)
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("skrafl: scanning word list: %w", err)
		}
	}
	loaded := 0
	for _, w := range words {
		word := strings.ToUpper(strings.TrimSpace(w))
		if !isValidWordText(word) {
			log.Printf("skrafl: lexicon: skipping malformed entry %q", w)
			continue
		}
		if lex.insert(word) {
			loaded++
		}
	}
	log.Printf("skrafl: lexicon: %d words loaded", loaded)
	return nil
}

// isValidWordText reports whether s is 2..15 uppercase A-Z letters.
func isValidWordText(s string) bool {
	if len(s) < 2 || len(s) > 15 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// insert adds word to the trie, returning false (and logging) if it was
// already present.
func (lex *Lexicon) insert(word string) bool {
	n := lex.root
	for _, r := range word {
		n = n.ensureEdge(Letter(r))
	}
	if n.isWord {
		log.Printf("skrafl: lexicon: word %s already existing in tree", word)
		return false
	}
	n.isWord = true
	return true
}

// Contains reports exact membership of text, which must be 2..15
// uppercase letters.
func (lex *Lexicon) Contains(text string) (bool, error) {
	if !isValidWordText(text) {
		return false, ErrInvalidInput
	}
	n := lex.root
	for _, r := range text {
		n = n.edge(Letter(r))
		if n == nil {
			return false, nil
		}
	}
	return n.isWord, nil
}

// CompleteOneBlank returns every letter that, substituted at the single
// Blank (' ') in pattern, yields a word in the lexicon. pattern must be
// 1..15 uppercase letters containing exactly one Blank. An empty result
// map means no completion exists.
func (lex *Lexicon) CompleteOneBlank(pattern string) (map[Letter]Completion, error) {
	if err := validatePattern(pattern); err != nil {
		return nil, err
	}
	lex.cacheMu.Lock()
	cached, ok := lex.crossCache.Get(pattern)
	lex.cacheMu.Unlock()
	if ok {
		return cached.(map[Letter]Completion), nil
	}
	blankAt := strings.IndexRune(pattern, Blank)
	runes := []rune(pattern)
	result := make(map[Letter]Completion)
	for c := Letter('A'); c <= 'Z'; c++ {
		runes[blankAt] = rune(c)
		candidate := string(runes)
		ok, _ := lex.Contains(candidate)
		if ok {
			result[c] = Completion{Index: blankAt, Word: candidate}
		}
	}
	lex.cacheMu.Lock()
	lex.crossCache.Add(pattern, result)
	lex.cacheMu.Unlock()
	return result, nil
}

func validatePattern(pattern string) error {
	if len(pattern) < 1 || len(pattern) > 15 {
		return ErrInvalidInput
	}
	blanks := 0
	for _, r := range pattern {
		if r == Blank {
			blanks++
			continue
		}
		if r < 'A' || r > 'Z' {
			return ErrInvalidInput
		}
	}
	if blanks != 1 {
		return ErrInvalidInput
	}
	return nil
}

// rackCounts is a fixed 27-slot multiset: 26 letter counts plus one slot
// (index 26) for remaining Blank tiles. Using a fixed array instead of a
// map/list makes rack-subset checks and copies O(1) and avoids the
// allocation churn the wavefront would otherwise incur at every depth.
type rackCounts [27]int

const blankSlot = 26

func newRackCounts(rack []Letter) rackCounts {
	var rc rackCounts
	for _, l := range rack {
		if l == Blank {
			rc[blankSlot]++
		} else {
			rc[l-'A']++
		}
	}
	return rc
}

func (rc rackCounts) has(l Letter) bool {
	return rc[l-'A'] > 0
}

func (rc rackCounts) hasBlank() bool {
	return rc[blankSlot] > 0
}

func (rc rackCounts) minusLetter(l Letter) rackCounts {
	rc[l-'A']--
	return rc
}

func (rc rackCounts) minusBlank() rackCounts {
	rc[blankSlot]--
	return rc
}

// MaskedRackSearch is the hot path: it returns every word compatible with
// mask and drawable from rack, of length in [minLength, len(mask)]. It
// implements the breadth-first wavefront described in spec.md §4.1,
// ported directly from original_source/dictionary.py's
// possible_words_for_mask_with_rack (over 40% of total compute time
// there, and expected to dominate here too).
func (lex *Lexicon) MaskedRackSearch(mask []MaskCell, rack []Letter, minLength int) (map[string]struct{}, error) {
	if minLength < 1 {
		minLength = 1
	}
	if len(mask) > 15 {
		return nil, ErrInvalidInput
	}

	// Each wavefront entry carries the rack tiles still available and
	// the word text matched so far, so a terminal node's word is known
	// the instant it is reached (no separate reconstruction pass).
	type entry struct {
		rack rackCounts
		word string
	}

	wavefront := map[*lexNode]entry{lex.root: {newRackCounts(rack), ""}}
	words := make(map[string]struct{})

	for d, cell := range mask {
		if cell.Kind == MaskDeadKind {
			// Wavefront truncates here; no further positions are usable.
			break
		}
		next := make(map[*lexNode]entry)
		for node, e := range wavefront {
			reachedByLetter := make(map[Letter]struct{})
			tryEdge := func(l Letter, nextRack rackCounts) {
				child := node.edge(l)
				if child == nil {
					return
				}
				next[child] = entry{nextRack, e.word + l.String()}
			}
			switch cell.Kind {
			case MaskLetterKind:
				if child := node.edge(cell.Letter); child != nil {
					next[child] = entry{e.rack, e.word + cell.Letter.String()}
				}
			case MaskOpenKind:
				for l := Letter('A'); l <= 'Z'; l++ {
					if e.rack.has(l) {
						tryEdge(l, e.rack.minusLetter(l))
						reachedByLetter[l] = struct{}{}
					}
				}
				if e.rack.hasBlank() {
					for l := Letter('A'); l <= 'Z'; l++ {
						if _, done := reachedByLetter[l]; !done {
							tryEdge(l, e.rack.minusBlank())
						}
					}
				}
			case MaskCrossConstraintKind:
				for l := range cell.Cross {
					if e.rack.has(l) {
						tryEdge(l, e.rack.minusLetter(l))
						reachedByLetter[l] = struct{}{}
					}
				}
				if e.rack.hasBlank() {
					for l := range cell.Cross {
						if _, done := reachedByLetter[l]; !done {
							tryEdge(l, e.rack.minusBlank())
						}
					}
				}
			}
		}
		wavefront = next

		if d+1 >= minLength {
			for node, e := range wavefront {
				if node.isWord {
					words[e.word] = struct{}{}
				}
			}
		}
	}

	return words, nil
}
