package app

import "unicode/utf8"

// CommandLine is the single-line input at the bottom of the screen, with
// a history browsed by Up and Down.
type CommandLine struct {
	buf     []rune
	cursor  int
	history []string
	index   int
	stash   string
}

// NewCommandLine creates an empty command line.
func NewCommandLine() *CommandLine {
	return &CommandLine{}
}

// Text returns the current input.
func (c *CommandLine) Text() string {
	return string(c.buf)
}

// Cursor returns the rune index of the input cursor.
func (c *CommandLine) Cursor() int {
	return c.cursor
}

// Set replaces the input and puts the cursor at its end.
func (c *CommandLine) Set(s string) {
	c.buf = []rune(s)
	c.cursor = len(c.buf)
}

// Clear empties the input.
func (c *CommandLine) Clear() {
	c.buf = c.buf[:0]
	c.cursor = 0
}

// Insert inserts r at the cursor. With overwrite on, r replaces the rune
// under the cursor instead.
func (c *CommandLine) Insert(r rune, overwrite bool) {
	if !utf8.ValidRune(r) {
		return
	}
	if overwrite && c.cursor < len(c.buf) {
		c.buf[c.cursor] = r
	} else {
		c.buf = append(c.buf, 0)
		copy(c.buf[c.cursor+1:], c.buf[c.cursor:])
		c.buf[c.cursor] = r
	}
	c.cursor++
}

// Backspace deletes the rune before the cursor.
func (c *CommandLine) Backspace() {
	if c.cursor == 0 {
		return
	}
	c.buf = append(c.buf[:c.cursor-1], c.buf[c.cursor:]...)
	c.cursor--
}

// Delete deletes the rune under the cursor.
func (c *CommandLine) Delete() {
	if c.cursor >= len(c.buf) {
		return
	}
	c.buf = append(c.buf[:c.cursor], c.buf[c.cursor+1:]...)
}

// Left moves the cursor one rune left.
func (c *CommandLine) Left() {
	if c.cursor > 0 {
		c.cursor--
	}
}

// Right moves the cursor one rune right.
func (c *CommandLine) Right() {
	if c.cursor < len(c.buf) {
		c.cursor++
	}
}

// Commit records s in the history and resets browsing. Blank commands
// are not recorded.
func (c *CommandLine) Commit(s string) {
	if s != "" {
		c.history = append(c.history, s)
	}
	c.index = len(c.history)
	c.stash = ""
}

// History returns the recorded commands, oldest first.
func (c *CommandLine) History() []string {
	return c.history
}

// Up shows the previous history entry. The input being typed is kept and
// comes back when browsing past the newest entry.
func (c *CommandLine) Up() {
	if len(c.history) == 0 {
		return
	}
	if c.index == len(c.history) {
		c.stash = c.Text()
	}
	if c.index > 0 {
		c.index--
		c.Set(c.history[c.index])
	}
}

// Down shows the next history entry.
func (c *CommandLine) Down() {
	if len(c.history) == 0 || c.index >= len(c.history) {
		return
	}
	c.index++
	if c.index == len(c.history) {
		c.Set(c.stash)
		return
	}
	c.Set(c.history[c.index])
}
