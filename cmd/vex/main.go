package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/vex"
	"github.com/iw2rmb/vex/editor"
)

func main() {
	debugPath := flag.String("debug", "", "append a debug log to `file`")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: vex [flags] [file]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Println(vex.BuildString())
		return
	}
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*debugPath, flag.Arg(0)); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// run owns the terminal for the lifetime of the program: tea.Program puts
// it in raw mode and restores it on every return path, panics included.
func run(debugPath, path string) error {
	logger := log.New(io.Discard, "", 0)
	if debugPath != "" {
		f, err := tea.LogToFile(debugPath, "vex")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
		logger = log.Default()
	}

	ed, err := editor.New(editor.Config{
		Style:  editor.DefaultStyle(),
		Logger: logger,
	})
	if err != nil {
		return err
	}
	if path != "" {
		// Failures are shown in the status line; the editor still starts.
		_ = ed.Open(path)
	}

	p := tea.NewProgram(editor.NewModel(ed), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
