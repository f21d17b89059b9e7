package terminal

import "golang.org/x/sys/unix"

const (
	ioctlGetTermios = unix.TCGETS
	// TCSETSF flushes pending input before applying, like tcsetattr(TCSAFLUSH).
	ioctlSetTermios = unix.TCSETSF
)
