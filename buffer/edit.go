package buffer

// Insert inserts s at the rune offset off (clamped into the document).
func (b *Buffer) Insert(off int, s string) {
	if s == "" {
		return
	}
	b.splice(off, 0, []rune(s))
}

// InsertRune inserts a single rune at off.
func (b *Buffer) InsertRune(off int, r rune) {
	b.splice(off, 0, []rune{r})
}

// Remove deletes the runes in [start, end). The range is clamped into the
// document; an empty range is a no-op.
func (b *Buffer) Remove(start, end int) {
	start = clamp(start, 0, b.length)
	end = clamp(end, start, b.length)
	b.splice(start, end-start, nil)
}

// splice replaces n runes at off with ins and re-splits only the lines the
// edit can affect: the touched rows, the row after them (its terminator
// bounds the region), and the row before when it ends in '\r', since a
// following '\n' would merge into "\r\n".
func (b *Buffer) splice(off, n int, ins []rune) {
	off = clamp(off, 0, b.length)
	end := clamp(off+n, off, b.length)
	if end == off && len(ins) == 0 {
		return
	}

	first := b.CharToLine(off)
	if first > 0 && endsWithCR(b.lines[first-1]) {
		first--
	}
	last := b.CharToLine(end)
	if last < len(b.lines)-1 {
		last++
	}

	base := b.starts[first]
	var region []rune
	for row := first; row <= last; row++ {
		region = append(region, b.lines[row]...)
	}
	lo, hi := off-base, end-base

	next := make([]rune, 0, len(region)-(hi-lo)+len(ins))
	next = append(next, region[:lo]...)
	next = append(next, ins...)
	next = append(next, region[hi:]...)

	repl := splitLines(next)
	if last < len(b.lines)-1 {
		// The region ends on a terminator; its empty tail is the start of
		// the untouched row that follows.
		repl = repl[:len(repl)-1]
	}

	lines := make([][]rune, 0, len(b.lines)-(last-first+1)+len(repl))
	lines = append(lines, b.lines[:first]...)
	lines = append(lines, repl...)
	lines = append(lines, b.lines[last+1:]...)

	b.lines = lines
	b.length += len(ins) - (end - off)
	b.reindex(first)
	b.version++
}

func endsWithCR(line []rune) bool {
	return len(line) > 0 && line[len(line)-1] == '\r'
}
