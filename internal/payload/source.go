package payload

import (
	"fmt"
	"os"
	"strings"
)

// Source is where exercises JSON comes from: the argument value itself, or
// a file named with the @ prefix. The distinction is resolved once here so
// the validator stays source-agnostic.
type Source struct {
	literal string
	path    string
}

// ResolveSource interprets an argument value. "@workout.json" reads the
// file; anything else is literal JSON.
func ResolveSource(arg string) Source {
	if strings.HasPrefix(arg, "@") {
		return Source{path: arg[1:]}
	}
	return Source{literal: arg}
}

// IsFile reports whether the source refers to a file path.
func (s Source) IsFile() bool {
	return s.path != ""
}

// Read returns the raw JSON bytes for the source.
func (s Source) Read() ([]byte, error) {
	if !s.IsFile() {
		return []byte(s.literal), nil
	}
	b, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnreadable, err)
	}
	return b, nil
}
