package buffer

import (
	"bufio"
	"io"
)

// FromReader reads r to EOF and builds a buffer from its content.
// Invalid UTF-8 sequences decode to U+FFFD.
func FromReader(r io.Reader) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return New(string(data)), nil
}

// WriteTo writes the buffer content to w, implementing io.WriterTo.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var total int64
	for _, line := range b.lines {
		n, err := bw.WriteString(string(line))
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, bw.Flush()
}
