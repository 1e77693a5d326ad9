package terminal

import (
	"errors"
	"fmt"

	"golang.org/x/term"
)

// maxReportPolls bounds how many empty reads cursorPosition tolerates
// before the terminal's reply has started arriving.
const maxReportPolls = 10

var errNoReport = errors.New("no cursor position report")

// WindowSize returns the terminal size in rows and columns. It asks the
// device first; if that fails or reports no columns, it parks the cursor
// at the bottom-right corner and asks the terminal where it ended up.
func (t *Terminal) WindowSize() (rows, cols int, err error) {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err == nil && w > 0 {
		return h, w, nil
	}

	if _, err := t.out.WriteString("\x1b[999C\x1b[999B"); err != nil {
		return 0, 0, &FatalError{Op: "getWindowSize", Err: err}
	}
	rows, cols, err = t.cursorPosition()
	if err != nil {
		return 0, 0, &FatalError{Op: "getWindowSize", Err: err}
	}
	return rows, cols, nil
}

// cursorPosition requests a cursor position report (ESC [ 6 n) and reads
// the ESC [ rows ; cols R reply from input.
func (t *Terminal) cursorPosition() (int, int, error) {
	if _, err := t.out.WriteString("\x1b[6n"); err != nil {
		return 0, 0, err
	}

	var buf [32]byte
	n := 0
	polls := 0
	for n < len(buf)-1 {
		b, ok, err := t.readByte()
		if err != nil {
			return 0, 0, err
		}
		if !ok {
			polls++
			if n > 0 || polls >= maxReportPolls {
				break
			}
			continue
		}
		buf[n] = b
		n++
		if b == 'R' {
			break
		}
	}
	return parseCursorReport(buf[:n])
}

// parseCursorReport parses a reply of the form ESC [ rows ; cols R.
func parseCursorReport(reply []byte) (rows, cols int, err error) {
	if len(reply) < 2 || reply[0] != escByte || reply[1] != '[' {
		return 0, 0, fmt.Errorf("%w: %q", errNoReport, reply)
	}
	if _, err := fmt.Sscanf(string(reply[2:]), "%d;%d", &rows, &cols); err != nil {
		return 0, 0, fmt.Errorf("%w: %q: %v", errNoReport, reply, err)
	}
	if rows <= 0 || cols <= 0 {
		return 0, 0, fmt.Errorf("%w: %q", errNoReport, reply)
	}
	return rows, cols, nil
}
