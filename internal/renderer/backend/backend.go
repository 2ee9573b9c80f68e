// Package backend provides the terminal abstraction the editor draws to.
//
// Terminal implements Backend on tcell. NullBackend keeps cells in memory
// and takes events from a queue, for tests.
package backend

import (
	"strings"
	"sync"
)

// CursorStyle defines how the cursor appears.
type CursorStyle int

const (
	CursorBlock CursorStyle = iota
	CursorBar
)

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventInterrupt
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event fields
	Key  Key
	Rune rune
	Mod  ModMask

	// Resize event fields
	Width, Height int
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the editor binds.
const (
	KeyNone Key = iota
	KeyRune     // Regular character (use Rune field)
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyF1
	KeyF2
	KeyF7
	KeyF8
	KeyCtrlB
	KeyCtrlC
	KeyCtrlF
	KeyCtrlL
	KeyCtrlN
	KeyCtrlQ
	KeyCtrlS
	KeyCtrlY
	KeyCtrlZ
)

// ModMask represents modifier key state.
type ModMask int

const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
)

// Has returns true if the mask contains the given modifier.
func (m ModMask) Has(mod ModMask) bool {
	return m&mod != 0
}

// KeyEvent returns a key event for a special key.
func KeyEvent(k Key) Event {
	return Event{Type: EventKey, Key: k}
}

// RuneEvent returns a key event for a typed character.
func RuneEvent(r rune) Event {
	return Event{Type: EventKey, Key: KeyRune, Rune: r}
}

// Backend defines the interface for terminal/display backends.
type Backend interface {
	// Init initializes the backend for use.
	// Must be called before any other methods.
	Init() error

	// Shutdown releases backend resources and restores terminal state.
	Shutdown()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetCell sets a single cell at the given position.
	// Positions outside the terminal are silently ignored.
	SetCell(x, y int, cell Cell)

	// GetCell returns the cell at the given position.
	// Returns an empty cell for positions outside the terminal.
	GetCell(x, y int) Cell

	// Clear clears the entire screen with the default style.
	Clear()

	// Show flushes pending changes to the display.
	Show()

	// ShowCursor positions and displays the cursor.
	ShowCursor(x, y int)

	// HideCursor hides the cursor.
	HideCursor()

	// SetCursorStyle changes the cursor appearance.
	SetCursorStyle(style CursorStyle)

	// PollEvent waits for and returns the next terminal event.
	// It returns an EventNone event once the backend is shut down.
	PollEvent() Event

	// PostEvent posts a synthetic event to the event queue.
	PostEvent(event Event)

	// Beep produces an audible or visual bell.
	Beep()
}

// DrawString draws s starting at (x, y) in style, clipped to maxWidth
// cells, and returns the number of cells used.
func DrawString(b Backend, x, y int, s string, style Style, maxWidth int) int {
	used := 0
	for _, r := range s {
		w := RuneWidth(r)
		if w == 0 {
			continue
		}
		if used+w > maxWidth {
			break
		}
		b.SetCell(x+used, y, Cell{Rune: r, Width: w, Style: style})
		used += w
	}
	return used
}

// FillRow paints cells [x, x+width) of row y with blanks in style.
func FillRow(b Backend, x, y, width int, style Style) {
	for i := 0; i < width; i++ {
		b.SetCell(x+i, y, Cell{Rune: ' ', Width: 1, Style: style})
	}
}

// NullBackend is an in-memory backend for testing.
type NullBackend struct {
	mu            sync.Mutex
	width, height int
	cells         [][]Cell
	cursorX       int
	cursorY       int
	cursorVisible bool
	cursorStyle   CursorStyle
	beeps         int
	shown         int
	events        chan Event
	closed        chan struct{}
	closeOnce     sync.Once
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{
		width:  width,
		height: height,
		events: make(chan Event, 100),
		closed: make(chan struct{}),
	}
}

func (b *NullBackend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.allocate()
	return nil
}

func (b *NullBackend) allocate() {
	b.cells = make([][]Cell, b.height)
	for i := range b.cells {
		b.cells[i] = make([]Cell, b.width)
		for j := range b.cells[i] {
			b.cells[i][j] = EmptyCell()
		}
	}
}

func (b *NullBackend) Shutdown() {
	b.closeOnce.Do(func() { close(b.closed) })
}

func (b *NullBackend) Size() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width, b.height
}

func (b *NullBackend) SetCell(x, y int, cell Cell) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		b.cells[y][x] = cell
	}
}

func (b *NullBackend) GetCell(x, y int) Cell {
	b.mu.Lock()
	defer b.mu.Unlock()
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		return b.cells[y][x]
	}
	return EmptyCell()
}

func (b *NullBackend) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	empty := EmptyCell()
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = empty
		}
	}
}

func (b *NullBackend) Show() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.shown++
}

func (b *NullBackend) ShowCursor(x, y int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursorX = x
	b.cursorY = y
	b.cursorVisible = true
}

func (b *NullBackend) HideCursor() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursorVisible = false
}

func (b *NullBackend) SetCursorStyle(style CursorStyle) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursorStyle = style
}

func (b *NullBackend) PollEvent() Event {
	select {
	case ev := <-b.events:
		return ev
	case <-b.closed:
		return Event{Type: EventNone}
	}
}

func (b *NullBackend) PostEvent(event Event) {
	select {
	case b.events <- event:
	default:
		// Event dropped if queue is full (non-blocking for testing)
	}
}

func (b *NullBackend) Beep() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.beeps++
}

// CursorPosition returns the current cursor position for testing.
func (b *NullBackend) CursorPosition() (x, y int, visible bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cursorX, b.cursorY, b.cursorVisible
}

// CursorStyleValue returns the current cursor style for testing.
func (b *NullBackend) CursorStyleValue() CursorStyle {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cursorStyle
}

// Beeps returns how often Beep was called.
func (b *NullBackend) Beeps() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.beeps
}

// ShowCount returns how often Show was called.
func (b *NullBackend) ShowCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.shown
}

// Row returns the glyphs of row y with trailing blanks removed. Wide
// glyphs appear once.
func (b *NullBackend) Row(y int) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < b.width; x++ {
		c := b.cells[y][x]
		sb.WriteString(c.String())
		if c.Width > 1 {
			x += c.Width - 1
		}
	}
	return strings.TrimRight(sb.String(), " ")
}

// Resize simulates a terminal resize for testing. The resize event is
// queued like a real one.
func (b *NullBackend) Resize(width, height int) {
	b.mu.Lock()
	b.width = width
	b.height = height
	b.allocate()
	b.mu.Unlock()
	b.PostEvent(Event{Type: EventResize, Width: width, Height: height})
}
