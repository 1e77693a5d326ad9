package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/JackWReid/epitor/internal/editor"
	"github.com/JackWReid/epitor/internal/terminal"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "epitor: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) > 0 && (args[0] == "-V" || args[0] == "--version") {
		fmt.Printf("epitor %s\n", editor.Version)
		return nil
	}
	if len(args) > 1 {
		return errors.New("usage: epitor [file]")
	}
	if !terminal.IsTerminal(os.Stdin) || !terminal.IsTerminal(os.Stdout) {
		return errors.New("stdin and stdout must be a terminal")
	}

	opts := editor.DefaultOptions()
	if path := os.Getenv("EPITOR_LOG"); path != "" {
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		opts.Logger = log.New(f, "epitor: ", log.LstdFlags|log.Lshortfile)
	}

	var filename string
	if len(args) == 1 {
		filename = args[0]
	}
	return editor.NewApp(filename, opts).Run()
}
