package terminal

import (
	"fmt"
	"sync"

	"golang.org/x/sys/unix"
)

// Mode is the guard returned by EnterRaw. It holds the terminal settings that
// were in effect before raw mode and puts them back on Restore.
type Mode struct {
	saved unix.Termios
	set   func(*unix.Termios) error
	once  sync.Once
	err   error
}

// EnterRaw switches fd into raw mode with a 100ms read timeout.
func EnterRaw(fd int) (*Mode, error) {
	termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return nil, fmt.Errorf("failed to get termios: %w", err)
	}

	m := &Mode{
		saved: *termios,
		set: func(t *unix.Termios) error {
			return unix.IoctlSetTermios(fd, ioctlSetTermios, t)
		},
	}

	raw := makeRaw(*termios)
	if err := m.set(&raw); err != nil {
		return nil, fmt.Errorf("failed to set raw mode: %w", err)
	}
	return m, nil
}

// makeRaw returns t with line buffering, echo, signals and flow control
// switched off. Reads return after at most one decisecond even with no input.
func makeRaw(t unix.Termios) unix.Termios {
	// Local flags: disable echo, canonical mode, signals, extended input
	t.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	// Input flags: disable flow control and CR to NL
	t.Iflag &^= unix.IXON | unix.ICRNL
	// Output flags: disable post processing
	t.Oflag &^= unix.OPOST
	// Control chars: return immediately with what's there, or after 100ms
	t.Cc[unix.VMIN] = 0
	t.Cc[unix.VTIME] = 1
	return t
}

// Restore puts back the settings captured by EnterRaw. Only the first call
// touches the terminal; later calls return the first call's result.
func (m *Mode) Restore() error {
	m.once.Do(func() {
		if err := m.set(&m.saved); err != nil {
			m.err = fmt.Errorf("failed to restore termios: %w", err)
		}
	})
	return m.err
}
