package terminal

import (
	"fmt"
	"io"
)

// KeyType identifies a decoded key.
type KeyType int

// Key types.
const (
	KeyChar   KeyType = iota // Literal byte, carried in Key.Char
	KeyUp                    // Arrow up
	KeyDown                  // Arrow down
	KeyLeft                  // Arrow left
	KeyRight                 // Arrow right
	KeyHome                  // Home
	KeyEnd                   // End
	KeyDelete                // Delete/Forward-delete
	KeyPgUp                  // Page Up
	KeyPgDn                  // Page Down
)

var keyNames = map[KeyType]string{
	KeyUp:     "Up",
	KeyDown:   "Down",
	KeyLeft:   "Left",
	KeyRight:  "Right",
	KeyHome:   "Home",
	KeyEnd:    "End",
	KeyDelete: "Delete",
	KeyPgUp:   "PgUp",
	KeyPgDn:   "PgDn",
}

// Key is a single decoded keypress. Char is only meaningful for KeyChar.
type Key struct {
	Type KeyType
	Char byte
}

// CharKey returns the literal key for b.
func CharKey(b byte) Key {
	return Key{Type: KeyChar, Char: b}
}

func (k Key) String() string {
	if k.Type == KeyChar {
		return fmt.Sprintf("Char(%q)", k.Char)
	}
	if name, ok := keyNames[k.Type]; ok {
		return name
	}
	return fmt.Sprintf("KeyType(%d)", int(k.Type))
}

const esc = 0x1b

// Decoder turns a raw input byte stream into keys. It reads exactly the bytes
// a key needs and never buffers ahead.
type Decoder struct {
	r   io.Reader
	buf [1]byte
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// readByte blocks until one byte arrives. A zero-length read with no error is
// the terminal's read timeout firing and is simply retried.
func (d *Decoder) readByte() (byte, error) {
	for {
		n, err := d.r.Read(d.buf[:])
		if n == 1 {
			return d.buf[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}

// ReadKey reads and decodes one key. Unrecognised escape sequences decode to
// the last byte read, as a literal.
func (d *Decoder) ReadKey() (Key, error) {
	b, err := d.readByte()
	if err != nil {
		return Key{}, err
	}
	if b != esc {
		return CharKey(b), nil
	}

	intro, err := d.readByte()
	if err != nil {
		return Key{}, err
	}
	switch intro {
	case '[':
		return d.readCSI()
	case 'O':
		return d.readSS3()
	}
	return CharKey(intro), nil
}

// readSS3 decodes the byte after ESC O.
func (d *Decoder) readSS3() (Key, error) {
	b, err := d.readByte()
	if err != nil {
		return Key{}, err
	}
	switch b {
	case 'H':
		return Key{Type: KeyHome}, nil
	case 'F':
		return Key{Type: KeyEnd}, nil
	}
	return CharKey(b), nil
}

// readCSI decodes what follows ESC [.
func (d *Decoder) readCSI() (Key, error) {
	b, err := d.readByte()
	if err != nil {
		return Key{}, err
	}
	switch b {
	case 'A':
		return Key{Type: KeyUp}, nil
	case 'B':
		return Key{Type: KeyDown}, nil
	case 'C':
		return Key{Type: KeyRight}, nil
	case 'D':
		return Key{Type: KeyLeft}, nil
	case 'H':
		return Key{Type: KeyHome}, nil
	case 'F':
		return Key{Type: KeyEnd}, nil
	}
	if b < '0' || b > '9' {
		return CharKey(b), nil
	}

	// ESC [ <n> ~
	tail, err := d.readByte()
	if err != nil {
		return Key{}, err
	}
	if tail != '~' {
		return CharKey(tail), nil
	}
	switch b {
	case '1', '7':
		return Key{Type: KeyHome}, nil
	case '3':
		return Key{Type: KeyDelete}, nil
	case '4', '8':
		return Key{Type: KeyEnd}, nil
	case '5':
		return Key{Type: KeyPgUp}, nil
	case '6':
		return Key{Type: KeyPgDn}, nil
	}
	return CharKey(b), nil
}
