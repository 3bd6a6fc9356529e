package sqlsplice

import "strings"

// SplitLines splits content into lines, each line keeping the exact
// terminator it was read with (LF, CRLF or lone CR). The final line may
// carry no terminator at all. JoinLines(SplitLines(s)) == s for every s.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	var lines []string
	start := 0
	for i := 0; i < len(content); i++ {
		switch content[i] {
		case '\n':
			lines = append(lines, content[start:i+1])
			start = i + 1
		case '\r':
			end := i + 1
			if end < len(content) && content[end] == '\n' {
				end++
			}
			lines = append(lines, content[start:end])
			start = end
			i = end - 1
		}
	}
	if start < len(content) {
		lines = append(lines, content[start:])
	}
	return lines
}

// JoinLines concatenates lines back into file content. Terminators are
// already part of each line, so nothing is inserted or stripped.
func JoinLines(lines []string) string {
	return strings.Join(lines, "")
}
