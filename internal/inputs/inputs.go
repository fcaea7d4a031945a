// Package inputs validates and loads the result documents named on the
// command line.
package inputs

import (
	"errors"
	"fmt"
	"os"
)

// Resolve validates that each supplied path names an existing regular
// file. Paths are returned in the order given; errors carry the
// user-supplied path.
func Resolve(paths ...string) ([]string, error) {
	resolved := make([]string, 0, len(paths))
	for _, input := range paths {
		info, err := os.Stat(input)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("input %q not found", input)
			}
			return nil, fmt.Errorf("stat %q: %w", input, err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("input %q is a directory", input)
		}
		resolved = append(resolved, input)
	}
	return resolved, nil
}

// Read loads a whole input document into memory.
func Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input %q: %w", path, err)
	}
	return data, nil
}
