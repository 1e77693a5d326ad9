package editor

import (
	"fmt"
	"path/filepath"
	"time"
)

// maxStatusName caps how much of the file name the status bar shows.
const maxStatusName = 20

// StatusBar generates status bar text and holds the transient message shown
// beneath it.
type StatusBar struct {
	message     string
	messageTime time.Time
	timeout     time.Duration
	now         func() time.Time
}

func NewStatusBar(timeout time.Duration) *StatusBar {
	return &StatusBar{
		timeout: timeout,
		now:     time.Now,
	}
}

// SetMessage sets the message and restarts its display window.
func (s *StatusBar) SetMessage(format string, args ...any) {
	s.message = fmt.Sprintf(format, args...)
	s.messageTime = s.now()
}

// ClearMessage removes the message.
func (s *StatusBar) ClearMessage() {
	s.message = ""
}

// Message returns the message while it is still within its display window,
// and "" afterwards.
func (s *StatusBar) Message() string {
	if s.message == "" || s.now().Sub(s.messageTime) >= s.timeout {
		return ""
	}
	return s.message
}

// FormatLeft returns the left-aligned portion of the status bar.
func (s *StatusBar) FormatLeft(filename string, lines int) string {
	name := truncatePath(filename)
	if len(name) > maxStatusName {
		name = name[:maxStatusName]
	}
	return fmt.Sprintf("%s - %d lines", name, lines)
}

// FormatRight returns the right-aligned portion of the status bar: the
// 1-based cursor line over the line count.
func (s *StatusBar) FormatRight(cursorLine, lines int) string {
	return fmt.Sprintf("%d/%d", cursorLine+1, lines)
}

// truncatePath shortens a file path to parent/basename.
func truncatePath(filename string) string {
	if filename == "" {
		return "[No Name]"
	}
	dir := filepath.Base(filepath.Dir(filename))
	base := filepath.Base(filename)
	if dir == "." || dir == "/" {
		return base
	}
	return dir + "/" + base
}
