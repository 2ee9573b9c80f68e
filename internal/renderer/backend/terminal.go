package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Terminal implements Backend using tcell for terminal output.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex
}

// NewTerminal creates a new terminal backend.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// newTerminalWithScreen wraps an existing screen, such as a simulation
// screen.
func newTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.SetStyle(tcell.StyleDefault)
	return nil
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

func (t *Terminal) SetCell(x, y int, cell Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.SetContent(x, y, cell.Rune, cell.Combining, convertStyle(cell.Style))
}

func (t *Terminal) GetCell(x, y int) Cell {
	t.mu.Lock()
	defer t.mu.Unlock()

	mainc, combc, style, width := t.screen.GetContent(x, y) //nolint:staticcheck // GetContent is the correct API
	return Cell{
		Rune:      mainc,
		Combining: combc,
		Width:     width,
		Style:     convertTcellStyle(style),
	}
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

func (t *Terminal) ShowCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.ShowCursor(x, y)
}

func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.HideCursor()
}

func (t *Terminal) SetCursorStyle(style CursorStyle) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch style {
	case CursorBar:
		t.screen.SetCursorStyle(tcell.CursorStyleSteadyBar)
	default:
		t.screen.SetCursorStyle(tcell.CursorStyleSteadyBlock)
	}
}

func (t *Terminal) PollEvent() Event {
	ev := t.screen.PollEvent()
	if ev == nil {
		return Event{Type: EventNone}
	}
	return convertEvent(ev)
}

func (t *Terminal) PostEvent(event Event) {
	switch event.Type {
	case EventKey:
		_ = t.screen.PostEvent(tcell.NewEventKey(convertToTcellKey(event.Key), event.Rune, convertToTcellMod(event.Mod))) // best-effort; event queue may be full
	case EventInterrupt:
		_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}
}

func (t *Terminal) Beep() {
	t.mu.Lock()
	defer t.mu.Unlock()

	_ = t.screen.Beep() // best-effort; terminal may not support beep
}

// convertStyle converts our Style to tcell.Style.
func convertStyle(s Style) tcell.Style {
	style := tcell.StyleDefault

	if s.Foreground != ColorDefault {
		style = style.Foreground(tcell.PaletteColor(int(s.Foreground)))
	}
	if s.Background != ColorDefault {
		style = style.Background(tcell.PaletteColor(int(s.Background)))
	}

	if s.Attributes.Has(AttrBold) {
		style = style.Bold(true)
	}
	if s.Attributes.Has(AttrDim) {
		style = style.Dim(true)
	}
	if s.Attributes.Has(AttrUnderline) {
		style = style.Underline(true)
	}
	if s.Attributes.Has(AttrReverse) {
		style = style.Reverse(true)
	}

	return style
}

// convertTcellStyle converts tcell.Style back to our Style.
func convertTcellStyle(ts tcell.Style) Style {
	fg, bg, attrs := ts.Decompose()

	s := Style{
		Foreground: convertTcellColor(fg),
		Background: convertTcellColor(bg),
	}

	if attrs&tcell.AttrBold != 0 {
		s.Attributes |= AttrBold
	}
	if attrs&tcell.AttrDim != 0 {
		s.Attributes |= AttrDim
	}
	if attrs&tcell.AttrUnderline != 0 {
		s.Attributes |= AttrUnderline
	}
	if attrs&tcell.AttrReverse != 0 {
		s.Attributes |= AttrReverse
	}

	return s
}

// convertTcellColor converts a tcell palette color to our Color. RGB
// colors are not produced by this package and map to the default.
func convertTcellColor(tc tcell.Color) Color {
	if tc >= tcell.ColorValid && tc < tcell.ColorValid+256 {
		return Color(tc - tcell.ColorValid)
	}
	return ColorDefault
}

// convertEvent converts tcell events to our Event type.
func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return Event{
			Type: EventKey,
			Key:  convertKey(e.Key()),
			Rune: e.Rune(),
			Mod:  convertMod(e.Modifiers()),
		}

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{
			Type:   EventResize,
			Width:  w,
			Height: h,
		}

	case *tcell.EventInterrupt:
		return Event{Type: EventInterrupt}

	default:
		return Event{Type: EventNone}
	}
}

// tcellKeys maps tcell keys to ours. Ctrl-H, Ctrl-I, Ctrl-M and Ctrl-[
// share codes with Backspace, Tab, Enter and Escape and arrive as those.
var tcellKeys = map[tcell.Key]Key{
	tcell.KeyRune:       KeyRune,
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyInsert:     KeyInsert,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyPgUp:       KeyPageUp,
	tcell.KeyPgDn:       KeyPageDown,
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyF1:         KeyF1,
	tcell.KeyF2:         KeyF2,
	tcell.KeyF7:         KeyF7,
	tcell.KeyF8:         KeyF8,
	tcell.KeyCtrlB:      KeyCtrlB,
	tcell.KeyCtrlC:      KeyCtrlC,
	tcell.KeyCtrlF:      KeyCtrlF,
	tcell.KeyCtrlL:      KeyCtrlL,
	tcell.KeyCtrlN:      KeyCtrlN,
	tcell.KeyCtrlQ:      KeyCtrlQ,
	tcell.KeyCtrlS:      KeyCtrlS,
	tcell.KeyCtrlY:      KeyCtrlY,
	tcell.KeyCtrlZ:      KeyCtrlZ,
}

// ourKeys is the inverse of tcellKeys, used for posting events.
var ourKeys = func() map[Key]tcell.Key {
	m := make(map[Key]tcell.Key, len(tcellKeys))
	for tk, k := range tcellKeys {
		if k == KeyBackspace {
			continue
		}
		m[k] = tk
	}
	m[KeyBackspace] = tcell.KeyBackspace2
	return m
}()

// convertKey converts tcell key to our Key type.
func convertKey(k tcell.Key) Key {
	if key, ok := tcellKeys[k]; ok {
		return key
	}
	return KeyNone
}

// convertToTcellKey converts our Key to tcell.Key.
func convertToTcellKey(k Key) tcell.Key {
	if tk, ok := ourKeys[k]; ok {
		return tk
	}
	return tcell.KeyRune
}

// convertMod converts tcell modifier mask to our ModMask.
func convertMod(m tcell.ModMask) ModMask {
	var result ModMask
	if m&tcell.ModShift != 0 {
		result |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= ModAlt
	}
	return result
}

// convertToTcellMod converts our ModMask to tcell.ModMask.
func convertToTcellMod(m ModMask) tcell.ModMask {
	var result tcell.ModMask
	if m&ModShift != 0 {
		result |= tcell.ModShift
	}
	if m&ModCtrl != 0 {
		result |= tcell.ModCtrl
	}
	if m&ModAlt != 0 {
		result |= tcell.ModAlt
	}
	return result
}
