// Package gstile implements Running Karp-Rabin Greedy String Tiling
// (Wise, 1996) for token sequences of any kind.
//
// # Overview
//
// Greedy String Tiling finds a maximal set of non-overlapping,
// contiguous runs of equal tokens ("tiles") shared between a pattern
// sequence and a text sequence. Unlike edit distance, a moved block of
// tokens still counts as a single tile rather than a chain of
// substitutions, which makes it well suited to detecting copied or
// lightly-edited text, code, or any other tokenizable content.
//
// The "Running Karp-Rabin" variant finds candidate tiles using rolling
// hashes of fixed-length windows rather than comparing every pattern
// position against every text position, so the expensive part of the
// search is proportional to the number of distinct window hashes
// rather than the product of the two sequence lengths.
//
// # Core pieces
//
//   - Hasher computes a rolling hash over a sliding window of tokens
//     (hasher.go).
//   - GST runs the scan/match/select/loop passes that produce a TileSet
//     from a pattern and a text sequence (gst.go).
//   - TileSet holds the non-overlapping tiles a GST run selects, with a
//     deterministic sorted JSON serialization (tileset.go).
//   - Comparator wraps GST with the policy a caller actually wants:
//     minimum tile length, a checksum-equality shortcut, a similarity
//     threshold, and configurable rounding (comparator.go).
//   - PairDriver enumerates and runs comparisons across a batch of
//     InputRecords, sequentially or across a worker pool depending on
//     batch size (pairdriver.go).
//
// # Quick start
//
//	matches, err := gstile.MatchStrings("the cat sat", "", "the cat sat on the mat", "", 1)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, m := range matches {
//		fmt.Printf("pattern[%d:%d] == text[%d:%d]\n", m.A, m.A+m.Length, m.B, m.B+m.Length)
//	}
//
// # Comparing a batch of records
//
//	cmp := gstile.NewComparator(gstile.DefaultConfig())
//	driver := gstile.NewPairDriver(cmp, logger)
//	for result := range driver.AllCombinations(ctx, records) {
//		fmt.Printf("%s vs %s: %.2f\n", result.IDA, result.IDB, result.Similarity)
//	}
//
// See SPEC_FULL.md and DESIGN.md in the module root for the full
// component contract and the rationale behind each implementation
// choice.
package gstile
