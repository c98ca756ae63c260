// main.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// Command skrafl loads a word list, finds the best move for a given rack
// on an empty board, commits it, and prints the move and the board. It
// does not load prior moves.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	skrafl "github.com/skraflcore/skrafl"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("skrafl: .env: %v", err)
	}

	wordlist := flag.String("wordlist", envOr("SKRAFL_WORDLIST", ""), "Path to a word list (JSON array or newline-delimited)")
	language := flag.String("lang", envOr("SKRAFL_LANGUAGE", "EN"), "Tile set to score with: EN or FR")
	rackStr := flag.String("rack", envOr("SKRAFL_RACK", ""), "Rack letters, blanks as '?'")
	validate := flag.Bool("validate", true, "Require every placed word to be in the lexicon")
	flag.Parse()

	if *wordlist == "" || *rackStr == "" {
		fmt.Fprintln(os.Stderr, "usage: skrafl -wordlist <path> -rack <letters> [-lang EN|FR]")
		os.Exit(1)
	}

	ts := skrafl.EnglishTileSet
	if *language == "FR" {
		ts = skrafl.FrenchTileSet
	}

	f, err := os.Open(*wordlist)
	if err != nil {
		log.Fatalf("skrafl: opening word list: %v", err)
	}
	defer f.Close()

	lex := skrafl.NewLexicon()
	if err := lex.Load(f); err != nil {
		log.Fatalf("skrafl: loading word list: %v", err)
	}

	rack, err := skrafl.NewRack(normalizeRack(*rackStr))
	if err != nil {
		log.Fatalf("skrafl: invalid rack %q: %v", *rackStr, err)
	}

	board := skrafl.NewBoard()
	gen := skrafl.NewGenerator(lex, ts)

	best, err := gen.BestSolution(board, rack)
	if err != nil {
		log.Fatalf("skrafl: %v", err)
	}

	if err := best.Commit(board, ts, lex, *validate); err != nil {
		log.Fatalf("skrafl: committing best solution: %v", err)
	}

	fmt.Printf("%s %s at %s, value %d\n", best.MainWord.Text, best.MainWord.Direction, best.MainWord.Origin, best.Value)
	fmt.Print(board)
}

// normalizeRack turns the CLI's '?' wildcard spelling into the engine's
// space-as-blank convention.
func normalizeRack(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '?' {
			out = append(out, skrafl.Blank)
			continue
		}
		out = append(out, r)
	}
	return string(out)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
