package sqlsplice

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds the parameters of a reorder run. Line numbers are
// one-based, matching what grep -n and editors report; Boundaries()
// converts them to zero-based offsets for the library.
type Config struct {
	// Path is the migration file to rewrite in place.
	Path string `json:"path,omitempty"`

	// Part2Line is the 1-based line number where part2 begins.
	Part2Line int `json:"part2Line,omitempty"`

	// MiddleLine is the 1-based line number where the middle segment begins.
	MiddleLine int `json:"middleLine,omitempty"`

	// RestLine is the 1-based line number where the trailing segment begins.
	RestLine int `json:"restLine,omitempty"`

	// Newline is the line-ending style used when computing checksums
	// ("LF", "CR" or "CRLF"). Empty means checksum the raw bytes.
	Newline string `json:"newline,omitempty"`
}

// Boundaries converts the configured 1-based line numbers to zero-based
// offsets. All three must be set; ordering is validated later against
// the actual file length.
func (c Config) Boundaries() (Boundaries, error) {
	if c.Part2Line < 1 || c.MiddleLine < 1 || c.RestLine < 1 {
		return Boundaries{}, fmt.Errorf(
			"all three boundary line numbers are required and must be >= 1 (got part2=%d middle=%d rest=%d)",
			c.Part2Line, c.MiddleLine, c.RestLine)
	}
	return Boundaries{
		Part2Start:  c.Part2Line - 1,
		MiddleStart: c.MiddleLine - 1,
		RestStart:   c.RestLine - 1,
	}, nil
}

// LoadConfig reads a JSON configuration file and decodes it into cfg.
// Keys present in the file override values already in cfg.
func LoadConfig(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(cfg)
}
