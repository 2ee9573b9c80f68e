package backend

import "github.com/mattn/go-runewidth"

// Attribute represents text attributes (bold, reverse, etc.).
type Attribute uint8

// Text attribute flags.
const (
	AttrNone      Attribute = 0
	AttrBold      Attribute = 1 << iota
	AttrDim                 // Faint/dim text
	AttrUnderline           // Underlined text
	AttrReverse             // Reverse video (swap fg/bg)
)

// Has returns true if the attribute set contains the given attribute.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// Color is a terminal palette index. ColorDefault leaves the terminal's
// own color in place.
type Color int16

// Palette colors.
const (
	ColorDefault Color = -1
	ColorBlack   Color = 0
	ColorRed     Color = 1
	ColorGreen   Color = 2
	ColorYellow  Color = 3
	ColorBlue    Color = 4
	ColorMagenta Color = 5
	ColorCyan    Color = 6
	ColorWhite   Color = 7
	ColorGray    Color = 8
)

// Style is the visual style of a cell.
type Style struct {
	Foreground Color
	Background Color
	Attributes Attribute
}

// DefaultStyle returns the terminal's default colors without attributes.
func DefaultStyle() Style {
	return Style{Foreground: ColorDefault, Background: ColorDefault}
}

// WithForeground returns s with fg as foreground.
func (s Style) WithForeground(fg Color) Style {
	s.Foreground = fg
	return s
}

// WithBackground returns s with bg as background.
func (s Style) WithBackground(bg Color) Style {
	s.Background = bg
	return s
}

// With returns s with attr added.
func (s Style) With(attr Attribute) Style {
	s.Attributes |= attr
	return s
}

// Cell represents a single terminal cell.
type Cell struct {
	// Rune is the base character to display.
	Rune rune

	// Combining holds runes that combine with Rune into one glyph.
	Combining []rune

	// Width is the display width of this cell.
	Width int

	// Style is the visual style for this cell.
	Style Style
}

// EmptyCell returns a blank cell with default style.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Width: 1, Style: DefaultStyle()}
}

// NewStyledCell creates a cell with the given rune and style.
func NewStyledCell(r rune, style Style) Cell {
	return Cell{Rune: r, Width: RuneWidth(r), Style: style}
}

// String returns the cell's glyph.
func (c Cell) String() string {
	if c.Rune == 0 {
		return ""
	}
	return string(c.Rune) + string(c.Combining)
}

// Equals returns true if two cells are identical.
func (c Cell) Equals(other Cell) bool {
	return c.String() == other.String() &&
		c.Width == other.Width &&
		c.Style == other.Style
}

// RuneWidth returns the display width of a rune. Control characters have
// no width.
func RuneWidth(r rune) int {
	if r < 32 || r == 0x7F {
		return 0
	}
	return runewidth.RuneWidth(r)
}
