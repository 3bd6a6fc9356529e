package sqlsplice

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"os"
	"regexp"
)

var newlineRe = regexp.MustCompile(`\r\n|\r|\n`)

// convertLineEnding converts all newline variations in content to the target style.
func convertLineEnding(content, lineEnding string) (string, error) {
	var target string
	switch lineEnding {
	case "LF":
		target = "\n"
	case "CR":
		target = "\r"
	case "CRLF":
		target = "\r\n"
	default:
		return "", fmt.Errorf("newline must be one of: LF, CR, CRLF")
	}
	return newlineRe.ReplaceAllString(content, target), nil
}

// Checksum computes the MD5 checksum of content, first normalizing line
// endings to lineEnding ("LF", "CR" or "CRLF") when it is non-empty.
// Normalization only affects the digest; reordering itself never touches
// terminators.
func Checksum(content, lineEnding string) (string, error) {
	if lineEnding != "" {
		var err error
		content, err = convertLineEnding(content, lineEnding)
		if err != nil {
			return "", err
		}
	}
	sum := md5.Sum([]byte(content))
	return hex.EncodeToString(sum[:]), nil
}

// FileChecksum reads a file and returns its MD5 checksum.
func FileChecksum(filename, lineEnding string) (string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}
	return Checksum(string(data), lineEnding)
}
