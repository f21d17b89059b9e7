package editor

import (
	"os"

	"github.com/JackWReid/skim/internal/terminal"
)

// Console is the terminal surface the App draws on and reads keys from.
// *terminal.Terminal implements it.
type Console interface {
	ReadKey() (terminal.Key, error)
	WriteFrame(frame string) error
	Width() int
	Height() int
	Resize() bool
	SigwinchChan() <-chan os.Signal
}

// App is the top-level viewer state.
type App struct {
	state    State
	renderer *Renderer
	quit     bool
}

// NewApp loads path, if given. A file that can't be read leaves the content
// empty and puts the error in the status bar.
func NewApp(path string) *App {
	app := &App{renderer: NewRenderer()}
	if path == "" {
		return app
	}
	lines, err := LoadLines(path)
	if err != nil {
		app.state.Message = err.Error()
		return app
	}
	app.state.Content = lines
	app.state.Filename = DisplayName(path)
	return app
}

// State returns the viewer state.
func (a *App) State() *State {
	return &a.state
}

// Run draws and handles keys until q is pressed or reading input fails. The
// caller owns the console and restores it afterwards.
func (a *App) Run(c Console) error {
	a.state.SetSize(c.Width(), c.Height())

	for !a.quit {
		// Check for resize signal (non-blocking).
		select {
		case <-c.SigwinchChan():
			if c.Resize() {
				a.state.SetSize(c.Width(), c.Height())
			}
		default:
		}

		a.state.Scroll()
		if err := c.WriteFrame(a.renderer.RenderFrame(&a.state)); err != nil {
			return err
		}

		key, err := c.ReadKey()
		if err != nil {
			return err
		}
		a.handleKey(key)
	}

	return c.WriteFrame(terminal.ClearScreen + terminal.CursorHome)
}

func (a *App) handleKey(key terminal.Key) {
	switch key.Type {
	case terminal.KeyChar:
		if key.Char == 'q' {
			a.quit = true
		}
	case terminal.KeyUp, terminal.KeyDown, terminal.KeyLeft, terminal.KeyRight,
		terminal.KeyHome, terminal.KeyEnd:
		a.state.MoveCursor(key)
	}
	// Delete, PgUp and PgDn are decoded but not bound.
}
