package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Terminal manages raw mode, buffered frame output, key input and terminal
// dimensions.
type Terminal struct {
	mode     *Mode
	keys     *Decoder
	out      *bufio.Writer
	outFd    int
	width    int
	height   int
	sigwinch chan os.Signal
}

// NewTerminal puts in into raw mode and measures out. If measuring fails the
// original mode is restored before the error is returned.
func NewTerminal(in, out *os.File) (*Terminal, error) {
	inFd := int(in.Fd())
	if !term.IsTerminal(inFd) {
		return nil, fmt.Errorf("stdin: %w", unix.ENOTTY)
	}

	mode, err := EnterRaw(inFd)
	if err != nil {
		return nil, err
	}

	t := &Terminal{
		mode:  mode,
		keys:  NewDecoder(fdReader(inFd)),
		out:   bufio.NewWriter(out),
		outFd: int(out.Fd()),
	}

	t.width, t.height, err = Size(t.outFd)
	if err != nil {
		mode.Restore()
		return nil, err
	}

	// Listen for resize signals.
	t.sigwinch = make(chan os.Signal, 1)
	signal.Notify(t.sigwinch, syscall.SIGWINCH)

	return t, nil
}

// Size returns the column and row count of the terminal on fd.
func Size(fd int) (cols, rows int, err error) {
	cols, rows, err = term.GetSize(fd)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get terminal size: %w", err)
	}
	return cols, rows, nil
}

// Resize re-queries terminal dimensions. Returns true if the size changed.
func (t *Terminal) Resize() bool {
	w, h, err := Size(t.outFd)
	if err != nil {
		return false
	}
	changed := w != t.width || h != t.height
	t.width = w
	t.height = h
	return changed
}

// Width returns the current terminal width.
func (t *Terminal) Width() int { return t.width }

// Height returns the current terminal height, status bar row included.
func (t *Terminal) Height() int { return t.height }

// SigwinchChan returns the channel that receives SIGWINCH signals.
func (t *Terminal) SigwinchChan() <-chan os.Signal {
	return t.sigwinch
}

// ReadKey blocks until a complete key has been read.
func (t *Terminal) ReadKey() (Key, error) {
	return t.keys.ReadKey()
}

// WriteFrame writes s in one go and flushes it.
func (t *Terminal) WriteFrame(s string) error {
	if _, err := t.out.WriteString(s); err != nil {
		return err
	}
	return t.out.Flush()
}

// Restore returns the terminal to its original state. Safe to call more than
// once.
func (t *Terminal) Restore() error {
	signal.Stop(t.sigwinch)
	return t.mode.Restore()
}

// fdReader reads straight from a file descriptor so that the VTIME timeout
// comes back as a zero-length read rather than io.EOF.
type fdReader int

func (fd fdReader) Read(p []byte) (int, error) {
	n, err := unix.Read(int(fd), p)
	if errors.Is(err, unix.EINTR) || errors.Is(err, unix.EAGAIN) {
		return 0, nil
	}
	if n < 0 {
		n = 0
	}
	return n, err
}

// ExitCode maps a terminal setup error to a process exit status: the errno it
// wraps, or 1.
func ExitCode(err error) int {
	var errno syscall.Errno
	if errors.As(err, &errno) && errno != 0 {
		return int(errno)
	}
	return 1
}
