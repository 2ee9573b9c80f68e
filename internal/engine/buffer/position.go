package buffer

import "fmt"

// Point represents a row and display-column position.
// Both Row and Col are 0-indexed. Col is measured in terminal cells.
type Point struct {
	Row int
	Col int
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d:%d)", p.Row, p.Col)
}
