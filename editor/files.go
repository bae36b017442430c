package editor

import (
	"fmt"
	"os"

	"github.com/iw2rmb/vex/buffer"
)

// loadFile reads path into a new buffer. Errors from os.Open are returned
// unwrapped so callers can test them with errors.Is.
func loadFile(path string) (*buffer.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	b, err := buffer.FromReader(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return b, nil
}

// saveFile writes b to path, creating or truncating it, and returns the
// number of bytes written.
func saveFile(b *buffer.Buffer, path string) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}

	n, err := b.WriteTo(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, fmt.Errorf("write %s: %w", path, err)
	}
	return n, nil
}
