package game

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/decker502/carquiz/pkg/embedded"
)

// DefaultStringsPath is the embedded UI text table.
const DefaultStringsPath = "assets/config/strings.txt"

// Strings is the table of UI texts.
//
// File format, one value line per key; blank lines are ignored:
//
//	[SELECT_PROMPT]
//	Select the game difficulty level:
type Strings struct {
	strings map[string]string
}

// ParseStrings reads a string table.
func ParseStrings(r io.Reader) (*Strings, error) {
	s := &Strings{strings: make(map[string]string)}

	scanner := bufio.NewScanner(r)
	var currentKey string
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			currentKey = strings.TrimSpace(line[1 : len(line)-1])
			continue
		}
		if currentKey != "" {
			s.strings[currentKey] = line
			currentKey = ""
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read strings: %w", err)
	}
	return s, nil
}

// LoadStrings reads a string table from the embedded assets.
func LoadStrings(path string) (*Strings, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open strings file %s: %w", path, err)
	}
	s, err := ParseStrings(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Get returns the text for key, or fallback when the table is nil or the key
// is missing.
func (s *Strings) Get(key, fallback string) string {
	if s == nil {
		return fallback
	}
	if text, ok := s.strings[key]; ok {
		return text
	}
	return fallback
}

// Len returns the number of keys.
func (s *Strings) Len() int {
	if s == nil {
		return 0
	}
	return len(s.strings)
}
