package editor

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/JackWReid/epitor/internal/terminal"
)

const backspace = 127

// console is the terminal as the App sees it.
type console interface {
	io.Writer
	ReadKey() (terminal.Key, error)
	WindowSize() (rows, cols int, err error)
}

// App is the editor session: the document, the cursor and everything
// needed to draw them.
type App struct {
	buf       *Buffer
	cursor    Cursor
	viewport  *Viewport
	renderer  *Renderer
	statusBar *StatusBar
	log       *log.Logger
	quit      bool
}

func NewApp(filename string, opts Options) *App {
	opts = opts.withDefaults()
	return &App{
		buf:       NewBuffer(filename, opts.TabStop),
		viewport:  NewViewport(80, 24),
		renderer:  NewRenderer(),
		statusBar: NewStatusBar(opts.MessageTimeout),
		log:       opts.Logger,
	}
}

// Run loads the file, takes over the terminal and edits until the user
// quits. The terminal is restored on every way out, including panics.
func (a *App) Run() (err error) {
	if err := a.buf.LoadFile(); err != nil {
		return err
	}
	a.log.Printf("loaded %q: %d lines", a.buf.Filename, a.buf.LineCount())

	t, err := terminal.NewTerminal(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer func() {
		if rerr := t.Restore(); rerr != nil && err == nil {
			err = rerr
		}
		if err != nil {
			a.log.Printf("exit: %v", err)
		}
	}()

	return a.loop(t)
}

// loop runs the read-dispatch-redraw cycle on c until quit or an error.
func (a *App) loop(c console) error {
	if err := a.resize(c); err != nil {
		return err
	}
	a.statusBar.SetMessage("HELP: Ctrl-Q = quit")

	for {
		if err := a.render(c); err != nil {
			return err
		}

		key, err := c.ReadKey()
		if err != nil {
			return err
		}
		if key.Type == terminal.KeyResize {
			if err := a.resize(c); err != nil {
				return err
			}
			continue
		}

		a.handleKey(key)
		if a.quit {
			return nil
		}
	}
}

func (a *App) resize(c console) error {
	rows, cols, err := c.WindowSize()
	if err != nil {
		return err
	}
	a.viewport.Resize(cols, rows)
	a.log.Printf("window %dx%d", cols, rows)
	return nil
}

func (a *App) handleKey(key terminal.Key) {
	switch key.Type {
	case terminal.KeyChar:
		if key.Byte < 0x80 {
			a.insertChar(key.Byte)
		}
	case terminal.KeyCtrl:
		switch key.Byte {
		case terminal.CtrlKey('q'):
			a.quit = true
		case backspace, terminal.CtrlKey('h'):
			a.deleteChar()
		case '\t':
			a.insertChar('\t')
		}
	case terminal.KeyDelete:
		a.moveCursor(terminal.KeyRight)
		a.deleteChar()
	case terminal.KeyHome:
		a.home()
	case terminal.KeyEnd:
		a.end()
	case terminal.KeyPageUp, terminal.KeyPageDown:
		a.page(key.Type)
	case terminal.KeyUp, terminal.KeyDown, terminal.KeyLeft, terminal.KeyRight:
		a.moveCursor(key.Type)
	}
}

// insertChar inserts a byte at the cursor and advances the cursor.
func (a *App) insertChar(c byte) {
	a.buf.InsertChar(a.cursor.Y, a.cursor.X, c)
	a.cursor.X++
}

// deleteChar deletes the byte before the cursor (backspace). At the start
// of a line it does nothing.
func (a *App) deleteChar() {
	if a.buf.DeleteChar(a.cursor.Y, a.cursor.X) {
		a.cursor.X--
	}
}

// render scrolls the viewport to the cursor and writes one frame.
func (a *App) render(w io.Writer) error {
	a.scroll()

	left := a.statusBar.FormatLeft(a.buf.Filename, a.buf.LineCount())
	right := a.statusBar.FormatRight(a.cursor.Y, a.buf.LineCount())
	frame := a.renderer.RenderFrame(a.buf, a.viewport, a.cursor, left, right, a.statusBar.Message())

	if _, err := w.Write(frame); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}
