package sqlsplice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLines(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    []string
	}{
		{"empty", "", nil},
		{"single line no terminator", "a", []string{"a"}},
		{"single line LF", "a\n", []string{"a\n"}},
		{"two lines missing final newline", "a\nb", []string{"a\n", "b"}},
		{"CRLF", "a\r\nb\r\n", []string{"a\r\n", "b\r\n"}},
		{"lone CR", "a\rb", []string{"a\r", "b"}},
		{"mixed endings", "a\nb\r\nc\rd", []string{"a\n", "b\r\n", "c\r", "d"}},
		{"blank lines", "\n\r\n", []string{"\n", "\r\n"}},
		{"trailing blank CRLF", "a\r\n\r\n", []string{"a\r\n", "\r\n"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SplitLines(tc.content)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestJoinLines_RoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"a",
		"a\n",
		"a\nb\nc\n",
		"a\r\nb\r\nc",
		"a\rb\rc\r",
		"one\ntwo\r\nthree\rfour",
		"\n\n\n",
	}
	for _, content := range inputs {
		assert.Equal(t, content, JoinLines(SplitLines(content)), "round trip of %q", content)
	}
}
