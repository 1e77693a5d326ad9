package editor

import (
	"bufio"
	"bytes"
	"io"
	"os"
)

// Buffer holds the document as an ordered slice of rows. A cursor row
// equal to LineCount is the virtual row past the end, where typing starts
// a new line.
type Buffer struct {
	Rows     []Row
	Filename string
	tabStop  int
}

func NewBuffer(filename string, tabStop int) *Buffer {
	if tabStop <= 0 {
		tabStop = DefaultTabStop
	}
	return &Buffer{
		Filename: filename,
		tabStop:  tabStop,
	}
}

// LoadFile reads the buffer's file. A file that does not exist yet leaves
// the buffer empty so it can be created.
func (b *Buffer) LoadFile() error {
	if b.Filename == "" {
		return nil
	}
	f, err := os.Open(b.Filename)
	if err != nil {
		if os.IsNotExist(err) {
			b.Load(nil)
			return nil
		}
		return err
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return err
	}
	b.Load(lines)
	return nil
}

// ReadLines splits r into lines with trailing CR and LF bytes stripped.
// A final line without a newline is kept; empty input has no lines.
func ReadLines(r io.Reader) ([][]byte, error) {
	br := bufio.NewReader(r)
	var lines [][]byte
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			lines = append(lines, bytes.TrimRight(line, "\r\n"))
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// Load replaces the document with one row per line.
func (b *Buffer) Load(lines [][]byte) {
	b.Rows = make([]Row, 0, len(lines))
	for _, line := range lines {
		b.AppendRow(line)
	}
}

// AppendRow adds a row after the last one.
func (b *Buffer) AppendRow(s []byte) {
	b.Rows = append(b.Rows, newRow(s, b.tabStop))
}

// InsertChar inserts c into the given line before column col, clamping col
// to the line. Inserting on the virtual row past the end appends a row
// first.
func (b *Buffer) InsertChar(line, col int, c byte) {
	if line < 0 || line > len(b.Rows) {
		return
	}
	if line == len(b.Rows) {
		b.AppendRow(nil)
	}
	b.Rows[line].insertChar(col, c, b.tabStop)
}

// DeleteChar deletes the byte before col, as backspace does. It reports
// whether a byte was removed: at column 0 or on the virtual row nothing
// happens, and lines are never joined.
func (b *Buffer) DeleteChar(line, col int) bool {
	if line < 0 || line >= len(b.Rows) {
		return false
	}
	row := &b.Rows[line]
	if col <= 0 {
		return false
	}
	if col > len(row.Chars) {
		col = len(row.Chars)
	}
	row.deleteChar(col-1, b.tabStop)
	return true
}

// RowToRenderCol maps a byte column on line to its screen column after tab
// expansion. The virtual row maps everything to 0.
func (b *Buffer) RowToRenderCol(line, col int) int {
	if line < 0 || line >= len(b.Rows) {
		return 0
	}
	return b.Rows[line].renderCol(col, b.tabStop)
}

// LineLen returns the byte length of a line; 0 for the virtual row.
func (b *Buffer) LineLen(line int) int {
	if line < 0 || line >= len(b.Rows) {
		return 0
	}
	return len(b.Rows[line].Chars)
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	return len(b.Rows)
}
