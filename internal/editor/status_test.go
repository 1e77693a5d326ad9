package editor

import (
	"testing"
	"time"
)

// fakeClock returns a StatusBar whose clock the test advances by hand.
func fakeClock(timeout time.Duration) (*StatusBar, *time.Time) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewStatusBar(timeout)
	s.now = func() time.Time { return now }
	return s, &now
}

func TestStatusMessageExpires(t *testing.T) {
	s, now := fakeClock(5 * time.Second)
	s.SetMessage("HELP: %s", "Ctrl-Q = quit")

	if got := s.Message(); got != "HELP: Ctrl-Q = quit" {
		t.Errorf("fresh message: %q", got)
	}
	*now = now.Add(4 * time.Second)
	if got := s.Message(); got == "" {
		t.Error("message should still show after 4s")
	}
	*now = now.Add(time.Second)
	if got := s.Message(); got != "" {
		t.Errorf("message should have expired, got %q", got)
	}
}

func TestStatusSetMessageRestartsWindow(t *testing.T) {
	s, now := fakeClock(5 * time.Second)
	s.SetMessage("first")
	*now = now.Add(10 * time.Second)
	s.SetMessage("second")
	if got := s.Message(); got != "second" {
		t.Errorf("got %q, want second", got)
	}
}

func TestStatusClearMessage(t *testing.T) {
	s, _ := fakeClock(5 * time.Second)
	s.SetMessage("gone soon")
	s.ClearMessage()
	if got := s.Message(); got != "" {
		t.Errorf("got %q after clear", got)
	}
}

func TestStatusFormatLeft(t *testing.T) {
	s := NewStatusBar(DefaultMessageTimeout)
	tests := []struct {
		filename string
		lines    int
		want     string
	}{
		{"", 0, "[No Name] - 0 lines"},
		{"notes.txt", 3, "notes.txt - 3 lines"},
		{"/home/user/project/main.go", 120, "project/main.go - 120 lines"},
		{"/a/very-long-directory-name/file.txt", 1, "very-long-directory- - 1 lines"},
	}
	for _, tc := range tests {
		if got := s.FormatLeft(tc.filename, tc.lines); got != tc.want {
			t.Errorf("FormatLeft(%q, %d) = %q, want %q", tc.filename, tc.lines, got, tc.want)
		}
	}
}

func TestStatusFormatRight(t *testing.T) {
	s := NewStatusBar(DefaultMessageTimeout)
	if got := s.FormatRight(0, 10); got != "1/10" {
		t.Errorf("got %q, want 1/10", got)
	}
	if got := s.FormatRight(10, 10); got != "11/10" {
		t.Errorf("virtual row: got %q, want 11/10", got)
	}
}

func TestTruncatePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"", "[No Name]"},
		{"file.txt", "file.txt"},
		{"/file.txt", "file.txt"},
		{"dir/file.txt", "dir/file.txt"},
		{"/a/b/c/file.txt", "c/file.txt"},
	}
	for _, tc := range tests {
		if got := truncatePath(tc.path); got != tc.want {
			t.Errorf("truncatePath(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}
