package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mjwise/gstile"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		return
	}

	command := os.Args[1]

	switch command {
	case "tile":
		handleTile()
	case "compare":
		handleCompare()
	case "demo":
		handleDemo()
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("gstile - Running Karp-Rabin Greedy String Tiling")
	fmt.Println("==================================================")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  gstile tile <pattern> <text>")
	fmt.Println("    Tile a pattern string against a text string and print the tiles")
	fmt.Println()
	fmt.Println("  gstile compare <record-a.json> <record-b.json>")
	fmt.Println("    Compare two input record documents and print their similarity")
	fmt.Println()
	fmt.Println("  gstile demo")
	fmt.Println("    Run a demonstration showing tiling at a few similarity levels")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  gstile tile \"the cat sat\" \"the cat sat on the mat\"")
	fmt.Println("  gstile compare a.json b.json")
	fmt.Println("  gstile demo")
}

func handleTile() {
	if len(os.Args) != 4 {
		fmt.Println("Error: tile requires exactly 2 arguments")
		fmt.Println("Usage: gstile tile <pattern> <text>")
		os.Exit(1)
	}

	pattern := gstile.TokensFromString(os.Args[2])
	text := gstile.TokensFromString(os.Args[3])

	matches, err := gstile.Match(pattern, text, nil, nil, 1)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Tiling Result")
	fmt.Println("=============")
	fmt.Printf("Pattern: %q (%d tokens)\n", os.Args[2], len(pattern))
	fmt.Printf("Text:    %q (%d tokens)\n", os.Args[3], len(text))
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No tiles found.")
		return
	}

	tiled := 0
	for i, m := range matches {
		tiled += m.Length
		fmt.Printf("%2d. pattern[%d:%d] == text[%d:%d]  %q\n",
			i+1, m.A, m.A+m.Length, m.B, m.B+m.Length, string(pattern[m.A:m.A+m.Length]))
	}
	fmt.Println()
	fmt.Printf("Tiled %d of %d pattern tokens across %d tiles.\n", tiled, len(pattern), len(matches))
}

func handleCompare() {
	if len(os.Args) != 4 {
		fmt.Println("Error: compare requires exactly 2 file arguments")
		fmt.Println("Usage: gstile compare <record-a.json> <record-b.json>")
		os.Exit(1)
	}

	a, err := loadRecord(os.Args[2])
	if err != nil {
		fmt.Printf("Error loading %s: %v\n", os.Args[2], err)
		os.Exit(1)
	}
	b, err := loadRecord(os.Args[3])
	if err != nil {
		fmt.Printf("Error loading %s: %v\n", os.Args[3], err)
		os.Exit(1)
	}

	cmp := gstile.NewComparator(gstile.DefaultConfig())
	result, ok, err := cmp.Compare(a, b)
	if err != nil {
		fmt.Printf("Error comparing records: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Comparison Result")
	fmt.Println("=================")
	fmt.Printf("Record A: %s\n", a.ID)
	fmt.Printf("Record B: %s\n", b.ID)
	fmt.Println()

	if !ok {
		fmt.Println("Result suppressed by comparator policy (below minimum length or similarity).")
		return
	}

	fmt.Printf("Similarity: %.2f%% ", result.Similarity*100)
	printSimilarityBar(result.Similarity)
	fmt.Println()
	fmt.Printf("Tiles:      %d\n", len(result.MatchIndexes))
	if result.ChecksumShortcut {
		fmt.Println("(checksum shortcut: records share a checksum, full tiling skipped)")
	}
}

func loadRecord(path string) (*gstile.InputRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return gstile.DecodeInputRecord(data)
}

func handleDemo() {
	fmt.Println("gstile Algorithm Demonstration")
	fmt.Println("==============================")
	fmt.Println()

	examples := []struct {
		a, b        string
		description string
	}{
		{"the cat sat on the mat", "the cat sat on the mat", "Exact Match"},
		{"the cat sat on the mat", "the cat sat on the rug", "Tail Substitution"},
		{"the quick brown fox", "the lazy brown dog", "Partial Overlap"},
		{"apples and oranges", "bicycles and rockets", "Mostly Different"},
	}

	cmp := gstile.NewComparator(gstile.DefaultConfig())

	for _, ex := range examples {
		fmt.Printf("Test Case: %s\n", ex.description)
		fmt.Printf("  A: %q\n", ex.a)
		fmt.Printf("  B: %q\n", ex.b)

		aTokens := gstile.TokensFromString(ex.a)
		bTokens := gstile.TokensFromString(ex.b)
		a := &gstile.InputRecord{ID: "A", Tokens: aTokens, LongestAuthoredTile: len(aTokens)}
		b := &gstile.InputRecord{ID: "B", Tokens: bTokens, LongestAuthoredTile: len(bTokens)}

		result, ok, err := cmp.Compare(a, b)
		if err != nil {
			fmt.Printf("  Error: %v\n", err)
			fmt.Println()
			continue
		}
		if !ok {
			fmt.Println("  (no result: below comparator thresholds)")
			fmt.Println()
			continue
		}

		fmt.Printf("  Similarity: %.2f%% ", result.Similarity*100)
		printSimilarityBar(result.Similarity)
		fmt.Println()
		fmt.Printf("  Tiles: %d\n", len(result.MatchIndexes))
		fmt.Println()
	}
}

func printSimilarityBar(similarity float64) {
	const barLength = 30
	filled := int(similarity * float64(barLength))
	if filled > barLength {
		filled = barLength
	}
	fmt.Printf("[%s%s]", strings.Repeat("#", filled), strings.Repeat(".", barLength-filled))
}
