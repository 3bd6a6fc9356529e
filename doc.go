// SPDX-License-Identifier: MIT

// Package sqlsplice rearranges a SQL migration file by line-range
// segments.  It splits a file into four contiguous segments at three
// boundary offsets and rewrites the file with the two interior segments
// swapped — the leading and trailing segments stay where they are.
//
// The tool is deliberately blind to SQL: lines move byte-for-byte, each
// keeping the exact line terminator it was read with.  The typical use
// is repairing a generated migration whose statements ended up in the
// wrong order, where the correct boundaries are known from inspecting
// the file (e.g. grep -n output).
//
// # Quick start
//
//	import "github.com/sqlsplice/sqlsplice"
//
//	func main() {
//	    b := sqlsplice.Boundaries{Part2Start: 45, MiddleStart: 182, RestStart: 884}
//	    res, err := sqlsplice.ReorderFile("migrations/20260120_export.sql", b, "")
//	    ...
//	}
//
// # Segments
//
// Offsets are zero-based and ranges half-open:
//
//	part1  = lines[0 : A)
//	part2  = lines[A : B)
//	middle = lines[B : C)
//	rest   = lines[C : len)
//
// Output order is part1, middle, part2, rest.  The offsets must satisfy
// 0 ≤ A ≤ B ≤ C ≤ len; anything else fails with ErrInvalidBoundaries
// before the file is touched.
//
// # Programmatic API
//
//	Reorder(lines, b)          → []string, error   (pure swap)
//	Restore(lines, b)          → []string, error   (inverse of Reorder)
//	ReorderFile(path, b, nl)   → *Result, error    (rewrite in place)
//	RestoreFile(path, b, nl)   → *Result, error
//	SplitLines(content)        → []string          (terminator-preserving)
//
// Reorder is a pure permutation: the output holds exactly the input's
// lines, no more and no fewer.  Re-running Reorder on its own output is
// NOT a no-op and does not restore the original; use Restore for that.
//
// # CLI
//
// A command-line interface lives under cmd/sqlsplice:
//
//	go install github.com/sqlsplice/sqlsplice/cmd/sqlsplice@latest
//
// See that package's doc for flags and usage.
//
// # Caveats
//
// The file is read whole, reordered in memory, and overwritten in
// place.  There is no temporary-file-then-rename safeguard, no backup,
// and no protection against concurrent writers.
package sqlsplice
