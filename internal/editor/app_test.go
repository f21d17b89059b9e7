package editor

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/JackWReid/skim/internal/terminal"
)

// fakeConsole plays back a fixed list of keys and records every frame.
type fakeConsole struct {
	keys     []terminal.Key
	frames   []string
	width    int
	height   int
	resizeTo [2]int
	sigwinch chan os.Signal

	// signalAfter raises SIGWINCH once this many keys have been read.
	signalAfter int
	read        int
}

func newFakeConsole(width, height int, keys ...terminal.Key) *fakeConsole {
	return &fakeConsole{keys: keys, width: width, height: height, sigwinch: make(chan os.Signal, 1)}
}

func (c *fakeConsole) ReadKey() (terminal.Key, error) {
	if len(c.keys) == 0 {
		return terminal.Key{}, io.EOF
	}
	k := c.keys[0]
	c.keys = c.keys[1:]
	c.read++
	if c.read == c.signalAfter {
		c.sigwinch <- syscall.SIGWINCH
	}
	return k, nil
}

func (c *fakeConsole) WriteFrame(frame string) error {
	c.frames = append(c.frames, frame)
	return nil
}

func (c *fakeConsole) Width() int  { return c.width }
func (c *fakeConsole) Height() int { return c.height }

func (c *fakeConsole) Resize() bool {
	if c.resizeTo[0] == 0 {
		return false
	}
	c.width, c.height = c.resizeTo[0], c.resizeTo[1]
	return true
}

func (c *fakeConsole) SigwinchChan() <-chan os.Signal { return c.sigwinch }

func quitKey() terminal.Key { return terminal.CharKey('q') }

func TestNewAppLoadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("one\ntwo\nthree\n"), 0644); err != nil {
		t.Fatal(err)
	}

	app := NewApp(path)

	s := app.State()
	if len(s.Content) != 3 {
		t.Errorf("expected 3 lines, got %d", len(s.Content))
	}
	if s.Filename != "notes.txt" {
		t.Errorf("expected display name notes.txt, got %q", s.Filename)
	}
	if s.Message != "" {
		t.Errorf("expected no message, got %q", s.Message)
	}
}

func TestNewAppNoFile(t *testing.T) {
	s := NewApp("").State()
	if len(s.Content) != 0 || s.Filename != "" || s.Message != "" {
		t.Errorf("expected empty state, got %+v", s)
	}
}

func TestNewAppMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")
	s := NewApp(path).State()
	if len(s.Content) != 0 {
		t.Errorf("expected no content, got %d lines", len(s.Content))
	}
	if s.Filename != "" {
		t.Errorf("expected no filename, got %q", s.Filename)
	}
	if !strings.Contains(s.Message, "missing.txt") {
		t.Errorf("expected the open error in the message, got %q", s.Message)
	}
}

func TestRunQuit(t *testing.T) {
	app := NewApp("")
	c := newFakeConsole(40, 10, quitKey())

	if err := app.Run(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.frames) != 2 {
		t.Fatalf("expected one frame and the clear, got %d writes", len(c.frames))
	}
	if c.frames[1] != "\x1b[2J\x1b[H" {
		t.Errorf("expected screen clear on quit, got %q", c.frames[1])
	}
	if len(c.keys) != 0 {
		t.Error("all keys should have been consumed")
	}
}

func TestRunStopsAtQuit(t *testing.T) {
	app := NewApp("")
	app.state.Content = []string{"a", "b", "c"}
	c := newFakeConsole(40, 10, terminal.Key{Type: terminal.KeyDown}, quitKey(), terminal.Key{Type: terminal.KeyDown})

	if err := app.Run(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if app.state.CursorY != 1 {
		t.Errorf("keys after q should not be handled, cursor y %d", app.state.CursorY)
	}
	if len(c.keys) != 1 {
		t.Errorf("expected one unread key, got %d", len(c.keys))
	}
}

func TestRunArrowDownClamped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "three.txt")
	if err := os.WriteFile(path, []byte("1\n2\n3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	app := NewApp(path)
	down := terminal.Key{Type: terminal.KeyDown}
	c := newFakeConsole(40, 10, down, down, down, down, down, quitKey())

	if err := app.Run(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if app.state.CursorY != 3 {
		t.Errorf("expected cursor y 3, got %d", app.state.CursorY)
	}
	last := c.frames[len(c.frames)-2]
	if !strings.Contains(last, "Line: 3 ") {
		t.Error("status bar should show line 3")
	}
}

func TestRunIgnoresUnboundKeys(t *testing.T) {
	app := NewApp("")
	app.state.Content = []string{"a", "b", "c"}
	c := newFakeConsole(40, 10,
		terminal.Key{Type: terminal.KeyPgDn},
		terminal.Key{Type: terminal.KeyDelete},
		terminal.CharKey('j'),
		terminal.CharKey('Q'),
		quitKey(),
	)

	if err := app.Run(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if app.state.CursorX != 0 || app.state.CursorY != 0 {
		t.Errorf("cursor moved to (%d,%d)", app.state.CursorX, app.state.CursorY)
	}
	// One frame per key, plus the clear.
	if len(c.frames) != 6 {
		t.Errorf("expected 6 writes, got %d", len(c.frames))
	}
}

func TestRunScrollsBeforeRender(t *testing.T) {
	app := NewApp("")
	for i := 0; i < 10; i++ {
		app.state.Content = append(app.state.Content, strings.Repeat("#", i+1))
	}
	var keys []terminal.Key
	for i := 0; i < 6; i++ {
		keys = append(keys, terminal.Key{Type: terminal.KeyDown})
	}
	keys = append(keys, quitKey())
	c := newFakeConsole(40, 4, keys...) // 3 rows

	if err := app.Run(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if app.state.OffsetY != 4 {
		t.Errorf("expected offset 4, got %d", app.state.OffsetY)
	}
	last := c.frames[len(c.frames)-2]
	if !strings.HasPrefix(last, "\x1b[H#####\x1b[K") {
		t.Errorf("frame should start at line 4: %q", last)
	}
	if !strings.HasSuffix(last, "\x1b[3;1H") {
		t.Errorf("cursor should be on the last content row: %q", last)
	}
}

func TestRunReadError(t *testing.T) {
	app := NewApp("")
	c := newFakeConsole(40, 10)

	err := app.Run(c)
	if err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
	if len(c.frames) != 1 {
		t.Errorf("expected only the first frame, got %d writes", len(c.frames))
	}
}

type failingConsole struct{ fakeConsole }

func (c *failingConsole) WriteFrame(string) error { return syscall.EIO }

func TestRunWriteError(t *testing.T) {
	c := &failingConsole{*newFakeConsole(40, 10, quitKey())}
	if err := NewApp("").Run(c); !errors.Is(err, syscall.EIO) {
		t.Errorf("expected EIO, got %v", err)
	}
}

func TestRunResize(t *testing.T) {
	app := NewApp("")
	c := newFakeConsole(80, 24, terminal.Key{Type: terminal.KeyEnd}, terminal.CharKey('x'), quitKey())
	c.resizeTo = [2]int{20, 6}
	c.signalAfter = 1

	if err := app.Run(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := app.State()
	if s.Columns != 20 || s.Rows != 5 {
		t.Errorf("expected 20x5 after resize, got %dx%d", s.Columns, s.Rows)
	}
	if s.CursorX != 19 {
		t.Errorf("expected cursor x clamped to 19, got %d", s.CursorX)
	}
	if bar := statusBar(t, c.frames[len(c.frames)-2]); len(bar) != 20 {
		t.Errorf("status bar should follow the new width, got %d", len(bar))
	}
}
