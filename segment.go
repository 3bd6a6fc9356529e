package sqlsplice

import (
	"errors"
	"fmt"
)

// ErrInvalidBoundaries is returned when the three boundary offsets do not
// satisfy 0 <= Part2Start <= MiddleStart <= RestStart <= line count.
var ErrInvalidBoundaries = errors.New("invalid segment boundaries")

// Boundaries holds the three zero-based offsets that partition a line
// sequence into four contiguous segments.
type Boundaries struct {
	// Part2Start is the index of the first line of the part2 segment.
	Part2Start int

	// MiddleStart is the index of the first line of the middle segment.
	MiddleStart int

	// RestStart is the index of the first line of the trailing segment.
	RestStart int
}

// Validate checks the ordering invariant against the number of lines the
// boundaries will be applied to. An offset equal to its neighbour yields
// an empty segment, which is valid.
func (b Boundaries) Validate(lineCount int) error {
	if b.Part2Start < 0 || b.Part2Start > b.MiddleStart ||
		b.MiddleStart > b.RestStart || b.RestStart > lineCount {
		return fmt.Errorf("%w: need 0 <= %d <= %d <= %d <= %d (line count)",
			ErrInvalidBoundaries, b.Part2Start, b.MiddleStart, b.RestStart, lineCount)
	}
	return nil
}

// Segment is a named, half-open [Start, End) line range.
type Segment struct {
	// Name identifies the segment: "part1", "part2", "middle" or "rest".
	Name string

	// Start is the zero-based index of the first line in the segment.
	Start int

	// End is the index one past the last line in the segment.
	End int
}

// Len returns the number of lines the segment spans.
func (s Segment) Len() int {
	return s.End - s.Start
}

// Slice returns the segment's view of lines. The result aliases the
// input; callers must not mutate it.
func (s Segment) Slice(lines []string) []string {
	return lines[s.Start:s.End]
}

// Segments derives the four segments, in file order, for a sequence of
// lineCount lines. It fails if the boundaries violate the ordering
// invariant.
func (b Boundaries) Segments(lineCount int) ([]Segment, error) {
	if err := b.Validate(lineCount); err != nil {
		return nil, err
	}
	return []Segment{
		{Name: "part1", Start: 0, End: b.Part2Start},
		{Name: "part2", Start: b.Part2Start, End: b.MiddleStart},
		{Name: "middle", Start: b.MiddleStart, End: b.RestStart},
		{Name: "rest", Start: b.RestStart, End: lineCount},
	}, nil
}
