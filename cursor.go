package prompter

// Cursor tracks the current unit and steps across advanceable units only.
// The zero value is an empty cursor on which every operation is a no-op.
type Cursor struct {
	units []Unit
	index int
}

// NewCursor returns a cursor over units placed on the first word.
func NewCursor(units []Unit) *Cursor {
	c := &Cursor{units: units}
	c.Reset()
	return c
}

// Index returns the current unit index.
func (c *Cursor) Index() int {
	return c.index
}

// Len returns the number of units under the cursor.
func (c *Cursor) Len() int {
	return len(c.units)
}

// Current returns the unit under the cursor.
func (c *Cursor) Current() (Unit, bool) {
	if c.index < 0 || c.index >= len(c.units) {
		return Unit{}, false
	}
	return c.units[c.index], true
}

// AtEnd reports whether the cursor is on the last unit. An empty cursor is
// always at its end.
func (c *Cursor) AtEnd() bool {
	return c.index >= len(c.units)-1
}

// WordIndex returns the 0-based position among the advanceable units of the
// last word at or before the cursor, or -1 when no word has been reached.
// On trailing whitespace after the last word it is the last word's position.
func (c *Cursor) WordIndex() int {
	if c.index < 0 || c.index >= len(c.units) {
		return -1
	}
	n := 0
	for _, u := range c.units[:c.index+1] {
		if u.Advanceable() {
			n++
		}
	}
	return n - 1
}

// Forward moves to the next word, never past the last unit. It returns false
// without moving when the cursor is already on the last unit.
func (c *Cursor) Forward() bool {
	if c.AtEnd() {
		return false
	}
	c.index++
	for c.index < len(c.units)-1 && !c.units[c.index].Advanceable() {
		c.index++
	}
	return true
}

// Backward moves to the previous word, stopping at index 0. It returns false
// when the cursor is already at index 0.
func (c *Cursor) Backward() bool {
	if c.index <= 0 {
		return false
	}
	c.index--
	for c.index > 0 && !c.units[c.index].Advanceable() {
		c.index--
	}
	return true
}

// Reset places the cursor on the first word, or index 0 when there is none.
func (c *Cursor) Reset() {
	c.index = FirstWord(c.units)
}
