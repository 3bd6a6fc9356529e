// SPDX-License-Identifier: MIT

// Package main provides sqlsplice, a command-line interface for the
// sqlsplice segment-reordering library.
//
// # Install
//
//	go install github.com/sqlsplice/sqlsplice/cmd/sqlsplice@latest
//
// # Synopsis
//
//	sqlsplice [file] [options]
//	sqlsplice inspect [file] [options]
//
// The root command swaps the middle and part2 segments of the file in
// place; inspect prints the segment layout without writing anything.
// Boundary flags take 1-based line numbers, the way grep -n reports
// them.  See cmd/root.go for the full flag set.
package main

import "github.com/sqlsplice/sqlsplice/cmd/sqlsplice/cmd"

func main() {
	cmd.Execute()
}
