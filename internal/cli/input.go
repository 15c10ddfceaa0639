package cli

import (
	"fmt"
	"io"
	"os"
)

// openInput opens path for reading; "-" reads from stdin.
func openInput(stdin io.Reader, path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open maze: %w", err)
	}
	return f, nil
}
