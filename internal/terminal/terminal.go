package terminal

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Terminal manages raw mode, key input and window size on a terminal
// device.
type Terminal struct {
	in       *os.File
	out      *os.File
	inFd     int
	orig     *unix.Termios
	restored bool
	sigwinch chan os.Signal
	sigterm  chan os.Signal
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewTerminal switches in to raw mode: no echo, no line buffering, no
// signal keys, no CR/NL translation on input or post-processing on output,
// and reads that return empty after 100ms. The caller must Restore.
func NewTerminal(in, out *os.File) (*Terminal, error) {
	t := &Terminal{
		in:   in,
		out:  out,
		inFd: int(in.Fd()),
	}

	orig, err := unix.IoctlGetTermios(t.inFd, ioctlReadTermios)
	if err != nil {
		t.clearScreen()
		return nil, &FatalError{Op: "tcgetattr", Err: err}
	}
	t.orig = orig

	raw := *orig
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1
	if err := unix.IoctlSetTermios(t.inFd, ioctlWriteTermios, &raw); err != nil {
		t.clearScreen()
		return nil, &FatalError{Op: "tcsetattr", Err: err}
	}

	// Signals are polled between read timeouts, never handled concurrently.
	t.sigwinch = make(chan os.Signal, 1)
	signal.Notify(t.sigwinch, unix.SIGWINCH)
	t.sigterm = make(chan os.Signal, 1)
	signal.Notify(t.sigterm, unix.SIGTERM, unix.SIGHUP)

	return t, nil
}

// Restore clears the screen and puts the terminal back in the mode it was
// in before NewTerminal. Calls after the first are no-ops.
func (t *Terminal) Restore() error {
	if t.restored {
		return nil
	}
	t.restored = true
	signal.Stop(t.sigwinch)
	signal.Stop(t.sigterm)
	t.clearScreen()
	if err := unix.IoctlSetTermios(t.inFd, ioctlWriteTermios, t.orig); err != nil {
		return &FatalError{Op: "tcsetattr", Err: err}
	}
	return nil
}

func (t *Terminal) clearScreen() {
	t.out.WriteString("\x1b[2J\x1b[H")
}

// Write sends p to the terminal in a single write.
func (t *Terminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// ReadKey blocks until a key arrives and decodes it. While waiting it
// reports a pending window resize as KeyResize, and a pending SIGTERM or
// SIGHUP as ErrInterrupted.
func (t *Terminal) ReadKey() (Key, error) {
	for {
		b, ok, err := t.readByte()
		if err != nil {
			return Key{}, err
		}
		if ok {
			return decode(b, t), nil
		}

		select {
		case <-t.sigwinch:
			return Key{Type: KeyResize}, nil
		case sig := <-t.sigterm:
			return Key{}, fmt.Errorf("%w: %v", ErrInterrupted, sig)
		default:
		}
	}
}

// readByte reads one byte from the terminal. An empty read (VTIME expired),
// EAGAIN or EINTR report ok=false rather than an error.
func (t *Terminal) readByte() (byte, bool, error) {
	var b [1]byte
	n, err := unix.Read(t.inFd, b[:])
	if err != nil {
		if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EINTR) {
			return 0, false, nil
		}
		return 0, false, &FatalError{Op: "read", Err: err}
	}
	if n == 0 {
		return 0, false, nil
	}
	return b[0], true, nil
}
