package app

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dshills/vedit/internal/engine"
	"github.com/dshills/vedit/internal/engine/text"
	"github.com/dshills/vedit/internal/renderer/backend"
)

// Screen styles.
var (
	styleText       = backend.DefaultStyle()
	styleGutter     = backend.DefaultStyle().WithForeground(backend.ColorGray)
	styleStatus     = backend.DefaultStyle().With(backend.AttrReverse)
	styleBanner     = backend.DefaultStyle().WithForeground(backend.ColorBlack).WithBackground(backend.ColorCyan)
	styleSelection  = backend.DefaultStyle().With(backend.AttrReverse)
	styleMatch      = backend.DefaultStyle().WithForeground(backend.ColorBlack).WithBackground(backend.ColorYellow)
	styleCurrent    = styleMatch.With(backend.AttrBold).With(backend.AttrUnderline)
	styleAccepted   = backend.DefaultStyle().WithForeground(backend.ColorBlack).WithBackground(backend.ColorGreen)
	styleRejected   = backend.DefaultStyle().WithForeground(backend.ColorWhite).WithBackground(backend.ColorRed)
	styleCommand    = backend.DefaultStyle().With(backend.AttrBold)
	styleMessage    = backend.DefaultStyle().WithForeground(backend.ColorYellow)
	spinnerFrames   = []string{"|", "/", "-", "\\"}
	commandPrefix   = ": "
	emptyLineMarker = "~"
)

// ============================================================================
// Layout
// ============================================================================

// bannerRows returns the rows above the text area.
func (app *Application) bannerRows() int {
	if app.editor != nil && app.editor.DiffActive() {
		return 1
	}
	return 0
}

// gutterWidth returns the width of the line-number column.
func (app *Application) gutterWidth() int {
	if !app.lineNumbers {
		return 0
	}
	lines := 1
	if app.editor != nil {
		lines = app.editor.LineCount()
	}
	return len(strconv.Itoa(lines)) + 1
}

// textArea returns the size of the text area. The bottom two rows hold
// the status and command lines.
func (app *Application) textArea() (width, height int) {
	width = max(app.width-app.gutterWidth(), 1)
	height = max(app.height-2-app.bannerRows(), 1)
	return width, height
}

// ============================================================================
// Drawing
// ============================================================================

// render draws the whole screen and shows it.
func (app *Application) render() {
	app.editor.SetViewport(app.textArea())

	app.backend.Clear()
	if app.bannerRows() > 0 {
		app.drawBanner()
	}
	app.drawText()
	app.drawStatus()
	app.drawCommandLine()
	app.placeCursor()
	app.backend.Show()
}

// drawBanner draws the diff review summary.
func (app *Application) drawBanner() {
	stats, ok := app.editor.DiffStats()
	if !ok {
		return
	}
	accepted := strconv.Itoa(stats.Accepted)
	if stats.AcceptedAll {
		accepted = "all"
	}
	s := fmt.Sprintf(" Review: hunk %d/%d  +%d -%d  accepted %s  [a]ccept [r]eject [n]ext [p]rev [A]ll [R]eject all [y] apply [q] cancel",
		stats.Current+1, stats.Hunks, stats.Added, stats.Removed, accepted)
	backend.FillRow(app.backend, 0, 0, app.width, styleBanner)
	backend.DrawString(app.backend, 0, 0, s, styleBanner, app.width)
}

// highlighter decides the style of each text cell for one frame.
type highlighter struct {
	sel      engine.Selection
	matches  map[int][]engine.Match
	current  engine.Match
	hasCur   bool
	hunkTop  int
	hunkRows int
	accepted bool
}

func (app *Application) newHighlighter() *highlighter {
	h := &highlighter{
		sel:     app.editor.Selection(),
		matches: make(map[int][]engine.Match),
	}
	for _, m := range app.editor.Matches() {
		h.matches[m.Row] = append(h.matches[m.Row], m)
	}
	h.current, h.hasCur = app.editor.CurrentMatch()
	if hunk, top, rows, ok := app.editor.CurrentHunk(); ok {
		h.hunkTop, h.hunkRows, h.accepted = top, rows, hunk.Accepted
	}
	return h
}

// style returns the style of the cell at row, col. Selection wins over
// matches, which win over the hunk background.
func (h *highlighter) style(row, col int) backend.Style {
	if h.sel != nil && h.sel.Contains(row, col) {
		return styleSelection
	}
	if h.hasCur && h.current.Row == row && col >= h.current.Start && col < h.current.End {
		return styleCurrent
	}
	for _, m := range h.matches[row] {
		if col >= m.Start && col < m.End {
			return styleMatch
		}
	}
	if h.hunkRows > 0 && row >= h.hunkTop && row < h.hunkTop+h.hunkRows {
		if h.accepted {
			return styleAccepted
		}
		return styleRejected
	}
	return styleText
}

// drawText draws the visible lines with the gutter.
func (app *Application) drawText() {
	gutter := app.gutterWidth()
	width, height := app.textArea()
	top := app.bannerRows()
	scrollX, scrollY := app.editor.Scroll()
	metrics := app.editor.Metrics()
	hl := app.newHighlighter()

	for i := range height {
		row := scrollY + i
		y := top + i
		if row >= app.editor.LineCount() {
			backend.DrawString(app.backend, 0, y, emptyLineMarker, styleGutter, app.width)
			continue
		}
		if gutter > 0 {
			num := fmt.Sprintf("%*d ", gutter-1, row+1)
			backend.DrawString(app.backend, 0, y, num, styleGutter, gutter)
		}
		app.drawLine(metrics, hl, row, gutter, y, scrollX, width)
	}
}

// drawLine draws one buffer row starting at display column scrollX.
func (app *Application) drawLine(metrics text.Metrics, hl *highlighter, row, x0, y, scrollX, width int) {
	end := 0
	metrics.Each(app.editor.Line(row), func(g text.Glyph) bool {
		end = g.Col + g.Width
		if end <= scrollX || g.Width == 0 {
			return true
		}
		if g.Col >= scrollX+width {
			return false
		}

		// Tabs, glyphs cut by the left edge and wide glyphs cut by the
		// right edge are drawn as spaces.
		clipped := g.Col < scrollX || g.Col+g.Width > scrollX+width
		if g.Text == "\t" || clipped {
			for col := max(g.Col, scrollX); col < min(end, scrollX+width); col++ {
				app.backend.SetCell(x0+col-scrollX, y, backend.NewStyledCell(' ', hl.style(row, col)))
			}
			return true
		}

		runes := []rune(g.Text)
		cell := backend.Cell{
			Rune:  runes[0],
			Width: g.Width,
			Style: hl.style(row, g.Col),
		}
		if len(runes) > 1 {
			cell.Combining = runes[1:]
		}
		app.backend.SetCell(x0+g.Col-scrollX, y, cell)
		return true
	})

	// Highlights in virtual space past the end of the line.
	for col := max(end, scrollX); col < scrollX+width; col++ {
		if st := hl.style(row, col); st != styleText {
			app.backend.SetCell(x0+col-scrollX, y, backend.NewStyledCell(' ', st))
		}
	}
}

// drawStatus draws the status line.
func (app *Application) drawStatus() {
	y := app.height - 2
	backend.FillRow(app.backend, 0, y, app.width, styleStatus)

	left := " " + app.doc.Name
	if app.editor.Modified() {
		left += " [+]"
	}
	if app.editor.ReadOnly() {
		left += " [RO]"
	}

	mode := "OVR"
	if !app.editor.Overwrite() {
		mode = "INS"
	}
	cur := app.editor.Cursor()
	index, total := app.editor.UndoPosition()
	parts := []string{
		left,
		mode,
		fmt.Sprintf("Ln %d, Col %d", cur.Row+1, cur.Col+1),
		fmt.Sprintf("Undo %d/%d", index, total),
	}
	if syntax, ok := app.cfg.SyntaxFor(app.doc.Path); ok {
		parts = append(parts, syntax)
	}
	if n := app.editor.MatchCount(); n > 0 {
		parts = append(parts, fmt.Sprintf("%d matches", n))
	}
	if s := app.rewriteStatus(); s != "" {
		parts = append(parts, s)
	}
	backend.DrawString(app.backend, 0, y, strings.Join(parts, " | "), styleStatus, app.width)
}

// rewriteStatus describes a running rewrite with a spinner and the
// elapsed time.
func (app *Application) rewriteStatus() string {
	if app.worker == nil || !app.worker.Busy() {
		return ""
	}
	elapsed := app.worker.Elapsed()
	frame := spinnerFrames[int(elapsed/(250*time.Millisecond))%len(spinnerFrames)]
	return fmt.Sprintf("%s rewriting %ds", frame, int(elapsed.Seconds()))
}

// drawCommandLine draws the command input or the current message.
func (app *Application) drawCommandLine() {
	y := app.height - 1
	if app.focus == focusCommand {
		backend.DrawString(app.backend, 0, y, commandPrefix+app.cmd.Text(), styleCommand, app.width)
		return
	}
	if app.message != "" {
		backend.DrawString(app.backend, 0, y, app.message, styleMessage, app.width)
	}
}

// placeCursor shows the cursor in the focused area.
func (app *Application) placeCursor() {
	if app.editor.Overwrite() {
		app.backend.SetCursorStyle(backend.CursorBlock)
	} else {
		app.backend.SetCursorStyle(backend.CursorBar)
	}

	if app.focus == focusCommand {
		prefix := []rune(app.cmd.Text())[:app.cmd.Cursor()]
		x := runesWidth([]rune(commandPrefix)) + runesWidth(prefix)
		app.backend.ShowCursor(min(x, app.width-1), app.height-1)
		return
	}
	if app.prompt != promptNone {
		app.backend.ShowCursor(min(runesWidth([]rune(app.message))+1, app.width-1), app.height-1)
		return
	}

	cur := app.editor.Cursor()
	scrollX, scrollY := app.editor.Scroll()
	x := app.gutterWidth() + cur.Col - scrollX
	y := app.bannerRows() + cur.Row - scrollY
	app.backend.ShowCursor(x, y)
}

func runesWidth(rs []rune) int {
	w := 0
	for _, r := range rs {
		w += backend.RuneWidth(r)
	}
	return w
}
