package editor

import "github.com/JackWReid/epitor/internal/terminal"

// Cursor is the edit position. X is a byte offset into row Y; RX is the
// render column X maps to, refreshed by scroll before every redraw.
type Cursor struct {
	X, Y int
	RX   int
}

// scroll recomputes the cursor's render column and brings it into view.
func (a *App) scroll() {
	a.cursor.RX = a.buf.RowToRenderCol(a.cursor.Y, a.cursor.X)
	a.viewport.Scroll(a.cursor.Y, a.cursor.RX)
}

// moveCursor moves the cursor one step. Left and Right wrap across line
// ends; Up and Down may reach the virtual row past the end. The column is
// then clamped to the length of the line the cursor landed on.
func (a *App) moveCursor(dir terminal.KeyType) {
	c := &a.cursor
	onRow := c.Y < a.buf.LineCount()
	switch dir {
	case terminal.KeyLeft:
		if c.X > 0 {
			c.X--
		} else if c.Y > 0 {
			c.Y--
			c.X = a.buf.LineLen(c.Y)
		}
	case terminal.KeyRight:
		if onRow && c.X < a.buf.LineLen(c.Y) {
			c.X++
		} else if onRow && c.X == a.buf.LineLen(c.Y) {
			c.Y++
			c.X = 0
		}
	case terminal.KeyUp:
		if c.Y > 0 {
			c.Y--
		}
	case terminal.KeyDown:
		if c.Y < a.buf.LineCount() {
			c.Y++
		}
	}

	if n := a.buf.LineLen(c.Y); c.X > n {
		c.X = n
	}
}

// page jumps a screenful. The cursor first goes to the top or bottom edge
// of the window, then steps Rows times so the single-step clamping applies
// at the ends of the document.
func (a *App) page(dir terminal.KeyType) {
	step := terminal.KeyUp
	if dir == terminal.KeyPageUp {
		a.cursor.Y = a.viewport.RowOffset
	} else {
		step = terminal.KeyDown
		a.cursor.Y = min(a.viewport.RowOffset+a.viewport.Rows-1, a.buf.LineCount())
	}
	for i, n := 0, a.viewport.Rows; i < n; i++ {
		a.moveCursor(step)
	}
}

func (a *App) home() {
	a.cursor.X = 0
}

func (a *App) end() {
	if a.cursor.Y < a.buf.LineCount() {
		a.cursor.X = a.buf.LineLen(a.cursor.Y)
	}
}
