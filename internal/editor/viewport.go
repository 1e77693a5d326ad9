package editor

// reservedRows are the screen rows below the text: status bar and message
// bar.
const reservedRows = 2

// Viewport is the window of the document currently on screen. The text
// area is Rows by Cols; RowOffset and ColOffset are the first document row
// and render column shown.
type Viewport struct {
	Width     int // Terminal width
	Height    int // Terminal height
	Rows      int // Text rows (Height minus status and message bars)
	Cols      int // Text columns
	RowOffset int
	ColOffset int
}

func NewViewport(termWidth, termHeight int) *Viewport {
	v := &Viewport{}
	v.Resize(termWidth, termHeight)
	return v
}

// Resize updates the viewport for new terminal dimensions. Offsets are
// kept; the next Scroll brings the cursor back into view.
func (v *Viewport) Resize(termWidth, termHeight int) {
	v.Width = termWidth
	v.Height = termHeight
	v.Rows = max(termHeight-reservedRows, 1)
	v.Cols = max(termWidth, 1)
}

// Scroll moves the offsets the least distance that puts document row cy
// and render column rx inside the window. It never moves the cursor, and
// calling it again with the same position changes nothing.
func (v *Viewport) Scroll(cy, rx int) {
	if cy < v.RowOffset {
		v.RowOffset = cy
	}
	if cy >= v.RowOffset+v.Rows {
		v.RowOffset = cy - v.Rows + 1
	}
	if rx < v.ColOffset {
		v.ColOffset = rx
	}
	if rx >= v.ColOffset+v.Cols {
		v.ColOffset = rx - v.Cols + 1
	}
}

// ScreenPos returns the 0-based screen cell for document row cy and render
// column rx.
func (v *Viewport) ScreenPos(cy, rx int) (row, col int) {
	return cy - v.RowOffset, rx - v.ColOffset
}
