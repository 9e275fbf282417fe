package syncer

import (
	"fmt"
	"os"
	"strings"
)

// ListLocal returns the names of regular files in dir carrying the suffix.
// A missing directory yields an empty list rather than an error.
func ListLocal(dir, suffix string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read local directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.HasSuffix(entry.Name(), suffix) {
			continue
		}
		names = append(names, entry.Name())
	}

	return names, nil
}
