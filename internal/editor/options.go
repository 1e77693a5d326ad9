package editor

import (
	"io"
	"log"
	"time"
)

// Version is shown in the welcome banner and by `epitor -V`.
const Version = "0.0.1"

const (
	DefaultTabStop        = 8
	DefaultMessageTimeout = 5 * time.Second
)

// Options are the editor's tunables. There is no configuration file; the
// command sets these up before starting the App.
type Options struct {
	TabStop        int           // Columns per tab stop when rendering
	MessageTimeout time.Duration // How long a status message stays on screen
	Logger         *log.Logger   // Diagnostic log; never the terminal
}

// DefaultOptions returns the standard settings with logging discarded.
func DefaultOptions() Options {
	return Options{
		TabStop:        DefaultTabStop,
		MessageTimeout: DefaultMessageTimeout,
		Logger:         log.New(io.Discard, "", 0),
	}
}

// withDefaults fills zero fields from DefaultOptions.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.TabStop <= 0 {
		o.TabStop = d.TabStop
	}
	if o.MessageTimeout <= 0 {
		o.MessageTimeout = d.MessageTimeout
	}
	if o.Logger == nil {
		o.Logger = d.Logger
	}
	return o
}
