package editor

import "fmt"

// Name is the product name shown in the status bar.
const Name = "skim"

// Version is set at build time with -ldflags "-X .../internal/editor.Version=...".
var Version = "0.1.0"

const newFileLabel = "New File"

// statusLeft returns the left-aligned portion of the status bar.
func statusLeft(s *State) string {
	name := s.Filename
	if name == "" {
		name = newFileLabel
	}
	if s.Message != "" {
		return fmt.Sprintf(" %s v%s - %s (%s)", Name, Version, name, s.Message)
	}
	return fmt.Sprintf(" %s v%s - %s", Name, Version, name)
}

// statusRight returns the right-aligned portion of the status bar.
func statusRight(s *State) string {
	return fmt.Sprintf("Line: %d ", s.CursorY)
}
