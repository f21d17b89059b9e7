package terminal

import "strconv"

// ANSI/VT100 sequences used to draw frames.
const (
	CursorHome     = "\x1b[H"
	EraseLineRight = "\x1b[K"
	ClearScreen    = "\x1b[2J"
	ReverseVideo   = "\x1b[7m"
	ResetAttrs     = "\x1b[0m"
)

// CursorPosition moves the cursor to a 1-based row and column.
func CursorPosition(row, col int) string {
	return "\x1b[" + strconv.Itoa(row) + ";" + strconv.Itoa(col) + "H"
}
