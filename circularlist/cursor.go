package circularlist

// Cursor walks a List in ring order without ever stopping: advancing past the
// last node wraps around to the entry point.
//
// Any mutation of the list invalidates the cursor's position; the next call
// restarts it at the current entry point.
type Cursor struct {
	list     *List
	position int
	gen      uint64
}

// Cursor returns a cursor positioned at the entry point.
func (l *List) Cursor() *Cursor {
	c := &Cursor{list: l}
	c.Reset()
	return c
}

// Reset moves the cursor back to the entry point.
func (c *Cursor) Reset() {
	c.gen = c.list.gen
	c.position = sentinel
	if !c.list.destroyed && !c.list.empty() {
		c.position = c.list.entry()
	}
}

func (c *Cursor) sync() {
	if c.gen != c.list.gen {
		c.Reset()
	}
}

// Current returns the value under the cursor. ok is false when the list is
// empty.
func (c *Cursor) Current() (int, bool) {
	c.sync()
	if c.position == sentinel {
		return 0, false
	}
	return c.list.nodes[c.position].value, true
}

func (c *Cursor) PeekNext() (int, bool) {
	c.sync()
	if c.position == sentinel {
		return 0, false
	}
	next := c.list.nodes[c.position].next
	return c.list.nodes[next].value, true
}

func (c *Cursor) Advance() {
	c.sync()
	if c.position != sentinel {
		c.position = c.list.nodes[c.position].next
	}
}
