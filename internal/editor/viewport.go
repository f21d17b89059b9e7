package editor

import "github.com/JackWReid/skim/internal/terminal"

// State is the viewer's cursor, viewport and content.
type State struct {
	CursorX int // Column within the viewport, not checked against the line
	CursorY int // Line index, may sit one past the last line
	Columns int // Terminal width
	Rows    int // Visible content rows (terminal height minus the status bar)
	OffsetY int // First visible content line

	Content  []string
	Filename string // Display name; empty means no file
	Message  string // Load error shown in the status bar
}

// SetSize updates the viewport for new terminal dimensions. height includes
// the status bar row.
func (s *State) SetSize(cols, height int) {
	s.Columns = max(cols, 1)
	s.Rows = max(height-1, 1)
	if s.CursorX > s.Columns-1 {
		s.CursorX = s.Columns - 1
	}
}

// Scroll adjusts OffsetY so the cursor line is visible, moving as little as
// possible.
func (s *State) Scroll() {
	if s.CursorY >= s.OffsetY+s.Rows {
		s.OffsetY = s.CursorY - s.Rows + 1
	} else if s.CursorY < s.OffsetY {
		s.OffsetY = s.CursorY
	}
}

// MoveCursor applies a navigation key. Keys that don't move the cursor are
// ignored.
func (s *State) MoveCursor(k terminal.Key) {
	switch k.Type {
	case terminal.KeyUp:
		if s.CursorY > 0 {
			s.CursorY--
		}
	case terminal.KeyDown:
		if s.CursorY < len(s.Content) {
			s.CursorY++
		}
	case terminal.KeyLeft:
		if s.CursorX > 0 {
			s.CursorX--
		}
	case terminal.KeyRight:
		if s.CursorX < s.Columns-1 {
			s.CursorX++
		}
	case terminal.KeyHome:
		s.CursorX = 0
	case terminal.KeyEnd:
		s.CursorX = s.Columns - 1
	}
}
