package editor

import (
	"strings"

	"github.com/JackWReid/skim/internal/terminal"
)

// Renderer builds a frame buffer to be written to the terminal in one go.
type Renderer struct {
	buf strings.Builder
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderFrame draws the full screen: text lines + status bar + cursor placement.
// The screen is not cleared; every row is overwritten and erased to the right
// instead, which avoids flicker.
func (r *Renderer) RenderFrame(s *State) string {
	r.buf.Reset()

	r.buf.WriteString(terminal.CursorHome)

	for i := 0; i < s.Rows; i++ {
		idx := s.OffsetY + i
		if idx < len(s.Content) {
			r.buf.WriteString(s.Content[idx])
		} else {
			r.buf.WriteString("~")
		}
		r.buf.WriteString(terminal.EraseLineRight)
		r.buf.WriteString("\r\n")
	}

	r.renderStatusBar(s.Columns, statusLeft(s), statusRight(s))

	r.buf.WriteString(terminal.CursorPosition(s.CursorY-s.OffsetY+1, s.CursorX+1))

	return r.buf.String()
}

// renderStatusBar fills exactly width columns in reverse video. The left
// side gives way first when both don't fit.
func (r *Renderer) renderStatusBar(width int, left, right string) {
	r.buf.WriteString(terminal.ReverseVideo)

	if len(right) > width {
		right = right[:width]
	}
	if maxLeft := width - len(right); len(left) > maxLeft {
		left = left[:maxLeft]
	}
	gap := width - len(left) - len(right)

	r.buf.WriteString(left)
	r.buf.WriteString(strings.Repeat(" ", gap))
	r.buf.WriteString(right)

	// Reset attributes.
	r.buf.WriteString(terminal.ResetAttrs)
}
