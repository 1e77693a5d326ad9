package terminal

import "fmt"

// KeyType identifies the kind of a decoded key.
type KeyType int

const (
	KeyChar     KeyType = iota // Printable byte
	KeyCtrl                    // Control byte (0x00-0x1f, DEL)
	KeyUp                      // Arrow up
	KeyDown                    // Arrow down
	KeyLeft                    // Arrow left
	KeyRight                   // Arrow right
	KeyPageUp                  // Page Up
	KeyPageDown                // Page Down
	KeyHome                    // Home
	KeyEnd                     // End
	KeyDelete                  // Delete/Forward-delete
	KeyEscape                  // Escape, or an escape sequence that did not resolve
	KeyResize                  // Window size changed while waiting for input
)

var keyNames = map[KeyType]string{
	KeyUp:       "Up",
	KeyDown:     "Down",
	KeyLeft:     "Left",
	KeyRight:    "Right",
	KeyPageUp:   "PageUp",
	KeyPageDown: "PageDown",
	KeyHome:     "Home",
	KeyEnd:      "End",
	KeyDelete:   "Delete",
	KeyEscape:   "Escape",
	KeyResize:   "Resize",
}

// Key is one decoded input event. Byte is set for KeyChar and KeyCtrl.
type Key struct {
	Type KeyType
	Byte byte
}

func (k Key) String() string {
	switch k.Type {
	case KeyChar:
		return fmt.Sprintf("%q", k.Byte)
	case KeyCtrl:
		return fmt.Sprintf("Ctrl(0x%02x)", k.Byte)
	}
	if name, ok := keyNames[k.Type]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", int(k.Type))
}

// CtrlKey returns the byte a terminal sends for Ctrl plus the given letter.
func CtrlKey(c byte) byte {
	return c & 0x1f
}

const escByte = 0x1b

// byteSource yields input one byte at a time. ok is false when no byte
// arrived within the read timeout.
type byteSource interface {
	readByte() (b byte, ok bool, err error)
}

type decodeState int

const (
	stateStart    decodeState = iota
	stateEsc                  // ESC
	stateCSI                  // ESC [
	stateSS3                  // ESC O
	stateCSIDigit             // ESC [ <digit>
)

var (
	escapeKey = Key{Type: KeyEscape}

	// ESC [ <letter>
	csiKeys = map[byte]KeyType{
		'A': KeyUp,
		'B': KeyDown,
		'C': KeyRight,
		'D': KeyLeft,
		'H': KeyHome,
		'F': KeyEnd,
	}

	// ESC [ <digit> ~
	tildeKeys = map[byte]KeyType{
		'1': KeyHome,
		'3': KeyDelete,
		'4': KeyEnd,
		'5': KeyPageUp,
		'6': KeyPageDown,
		'7': KeyHome,
		'8': KeyEnd,
	}

	// ESC O <letter>
	ss3Keys = map[byte]KeyType{
		'H': KeyHome,
		'F': KeyEnd,
	}
)

// decode resolves the key that starts with first, pulling the rest of an
// escape sequence from src. A timeout, read error or unknown byte at any
// point after ESC resolves to KeyEscape.
func decode(first byte, src byteSource) Key {
	state := stateStart
	b := first
	var digit byte
	for {
		switch state {
		case stateStart:
			if b != escByte {
				return byteKey(b)
			}
			state = stateEsc
		case stateEsc:
			switch b {
			case '[':
				state = stateCSI
			case 'O':
				state = stateSS3
			default:
				return escapeKey
			}
		case stateCSI:
			if b >= '0' && b <= '9' {
				digit = b
				state = stateCSIDigit
				break
			}
			if t, ok := csiKeys[b]; ok {
				return Key{Type: t}
			}
			return escapeKey
		case stateSS3:
			if t, ok := ss3Keys[b]; ok {
				return Key{Type: t}
			}
			return escapeKey
		case stateCSIDigit:
			if t, ok := tildeKeys[digit]; ok && b == '~' {
				return Key{Type: t}
			}
			return escapeKey
		}

		next, ok, err := src.readByte()
		if err != nil || !ok {
			return escapeKey
		}
		b = next
	}
}

func byteKey(b byte) Key {
	if b < 0x20 || b == 0x7f {
		return Key{Type: KeyCtrl, Byte: b}
	}
	return Key{Type: KeyChar, Byte: b}
}

// sliceSource replays a fixed byte sequence; reads past the end time out.
type sliceSource struct {
	buf []byte
}

func (s *sliceSource) readByte() (byte, bool, error) {
	if len(s.buf) == 0 {
		return 0, false, nil
	}
	b := s.buf[0]
	s.buf = s.buf[1:]
	return b, true, nil
}

// ParseKey decodes the first key in seq as if the bytes had arrived from
// the terminal with nothing following them. An empty seq is KeyEscape.
func ParseKey(seq []byte) Key {
	keys := ParseKeys(seq)
	if len(keys) == 0 {
		return escapeKey
	}
	return keys[0]
}

// ParseKeys decodes every key in seq.
func ParseKeys(seq []byte) []Key {
	src := &sliceSource{buf: seq}
	var keys []Key
	for {
		b, ok, _ := src.readByte()
		if !ok {
			return keys
		}
		keys = append(keys, decode(b, src))
	}
}
