package frontier

// Three is an ordered buffer of at most three finished siblings. Order of
// insertion is the left-to-right order of the corresponding subtrees. The
// zero value is an empty buffer.
type Three struct {
	elems [3]Frozen
	count int
}

// NewThree returns an empty sibling buffer.
func NewThree() Three {
	return Three{}
}

// Len returns the number of buffered siblings, 0 to 3.
func (t Three) Len() int {
	return t.count
}

// Elems returns the buffered siblings in insertion order.
func (t Three) Elems() []Frozen {
	return t.elems[:t.count]
}

// Push appends f to the buffer. While under capacity ok is set and next is
// the extended buffer. When the buffer already holds three siblings ok is
// false and full holds all four children in order, f last; the buffer
// itself is returned unchanged.
func (t Three) Push(f Frozen) (next Three, full [4]Frozen, ok bool) {
	if t.count < len(t.elems) {
		t.elems[t.count] = f
		t.count++
		return t, full, true
	}
	return t, [4]Frozen{t.elems[0], t.elems[1], t.elems[2], f}, false
}
