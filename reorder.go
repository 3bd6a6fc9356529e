package sqlsplice

// Reorder returns a new line sequence with the middle and part2 segments
// swapped: part1, middle, part2, rest. The input slice is not mutated.
// The output is a permutation of the input — same length, same lines.
func Reorder(lines []string, b Boundaries) ([]string, error) {
	if err := b.Validate(len(lines)); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(lines))
	out = append(out, lines[:b.Part2Start]...)
	out = append(out, lines[b.MiddleStart:b.RestStart]...)
	out = append(out, lines[b.Part2Start:b.MiddleStart]...)
	out = append(out, lines[b.RestStart:]...)
	return out, nil
}

// Restore undoes Reorder. It takes the boundaries of the ORIGINAL
// layout, not of the reordered lines: after the swap the middle segment
// occupies [Part2Start, Part2Start+len(middle)) and part2 sits right
// after it, so the inverse is another swap at shifted offsets.
//
// Restore(Reorder(lines, b), b) == lines for any valid b. Note that
// Reorder is not self-inverse: applying it twice with the same
// boundaries does not reproduce the input unless part2 and middle have
// equal length.
func Restore(lines []string, b Boundaries) ([]string, error) {
	if err := b.Validate(len(lines)); err != nil {
		return nil, err
	}
	middleLen := b.RestStart - b.MiddleStart
	swapped := Boundaries{
		Part2Start:  b.Part2Start,
		MiddleStart: b.Part2Start + middleLen,
		RestStart:   b.RestStart,
	}
	return Reorder(lines, swapped)
}
