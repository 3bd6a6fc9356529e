package sqlsplice

import (
	"fmt"
	"os"
)

// Result reports what a file rewrite did.
type Result struct {
	// Path is the file that was rewritten.
	Path string

	// Lines is the total number of lines moved (equal before and after).
	Lines int

	// Segments is the segment layout of the INPUT file, in file order.
	Segments []Segment

	// BeforeMd5 and AfterMd5 are checksums of the whole file content
	// before and after the rewrite.
	BeforeMd5 string
	AfterMd5  string
}

// ReorderFile reads path, swaps the middle and part2 segments and
// overwrites path with the result. Boundaries are validated against the
// file's line count before anything is written; on a validation or read
// error the file is left untouched.
//
// newline selects checksum normalization (see Checksum); pass "" for raw.
func ReorderFile(path string, b Boundaries, newline string) (*Result, error) {
	return rewriteFile(path, b, newline, Reorder)
}

// RestoreFile applies the inverse permutation, undoing a previous
// ReorderFile run given the boundaries of the original layout.
func RestoreFile(path string, b Boundaries, newline string) (*Result, error) {
	return rewriteFile(path, b, newline, Restore)
}

func rewriteFile(path string, b Boundaries, newline string, permute func([]string, Boundaries) ([]string, error)) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	lines := SplitLines(string(data))

	segs, err := b.Segments(len(lines))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	out, err := permute(lines, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	before, err := Checksum(string(data), newline)
	if err != nil {
		return nil, err
	}
	content := JoinLines(out)
	after, err := Checksum(content, newline)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return &Result{
		Path:      path,
		Lines:     len(lines),
		Segments:  segs,
		BeforeMd5: before,
		AfterMd5:  after,
	}, nil
}
