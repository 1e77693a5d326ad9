package editor

import (
	"bytes"
	"fmt"
	"strconv"
)

// Renderer builds a frame buffer that the caller writes to the terminal in
// one go, so the screen never shows a half-drawn frame.
type Renderer struct {
	buf bytes.Buffer
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderFrame draws the full screen: text rows, status bar, message bar
// and cursor placement. The viewport must already be scrolled to the
// cursor. The returned slice is valid until the next call.
func (r *Renderer) RenderFrame(b *Buffer, vp *Viewport, c Cursor, statusLeft, statusRight, message string) []byte {
	r.buf.Reset()

	// Hide cursor during drawing.
	r.buf.WriteString("\x1b[?25l")
	r.buf.WriteString("\x1b[H")

	r.drawRows(b, vp)
	r.drawStatusBar(vp, statusLeft, statusRight)
	r.drawMessageBar(vp, message)

	row, col := vp.ScreenPos(c.Y, c.RX)
	r.writeCursorPos(row+1, col+1)

	r.buf.WriteString("\x1b[?25h")
	return r.buf.Bytes()
}

func (r *Renderer) drawRows(b *Buffer, vp *Viewport) {
	for y := 0; y < vp.Rows; y++ {
		fileRow := y + vp.RowOffset
		switch {
		case fileRow < b.LineCount():
			render := b.Rows[fileRow].Render
			start := min(vp.ColOffset, len(render))
			end := min(start+vp.Cols, len(render))
			r.buf.Write(render[start:end])
		case b.LineCount() == 0 && y == vp.Rows/3:
			r.drawWelcome(vp)
		default:
			r.buf.WriteByte('~')
		}
		r.buf.WriteString("\x1b[K")
		r.buf.WriteString("\r\n")
	}
}

// drawWelcome centres the banner on an empty document. The row keeps its
// leading tilde when there is room for one.
func (r *Renderer) drawWelcome(vp *Viewport) {
	welcome := fmt.Sprintf("Epitor -- version %s", Version)
	if len(welcome) > vp.Cols {
		welcome = welcome[:vp.Cols]
	}
	padding := (vp.Cols - len(welcome)) / 2
	if padding > 0 {
		r.buf.WriteByte('~')
		padding--
	}
	for ; padding > 0; padding-- {
		r.buf.WriteByte(' ')
	}
	r.buf.WriteString(welcome)
}

func (r *Renderer) drawStatusBar(vp *Viewport, left, right string) {
	// Reverse video for status bar.
	r.buf.WriteString("\x1b[7m")

	if len(left) > vp.Cols {
		left = left[:vp.Cols]
	}
	r.buf.WriteString(left)
	// Pad to the full width, finishing with right when it fits exactly.
	for n := len(left); n < vp.Cols; n++ {
		if vp.Cols-n == len(right) {
			r.buf.WriteString(right)
			break
		}
		r.buf.WriteByte(' ')
	}

	r.buf.WriteString("\x1b[m")
	r.buf.WriteString("\r\n")
}

func (r *Renderer) drawMessageBar(vp *Viewport, message string) {
	r.buf.WriteString("\x1b[K")
	if len(message) > vp.Cols {
		message = message[:vp.Cols]
	}
	r.buf.WriteString(message)
}

// writeCursorPos appends ESC [ row ; col H with 1-based coordinates.
func (r *Renderer) writeCursorPos(row, col int) {
	var num [20]byte
	r.buf.WriteString("\x1b[")
	r.buf.Write(strconv.AppendInt(num[:0], int64(row), 10))
	r.buf.WriteByte(';')
	r.buf.Write(strconv.AppendInt(num[:0], int64(col), 10))
	r.buf.WriteByte('H')
}
