package editor

import (
	"errors"
	"fmt"
	"strings"
)

// CommandKind identifies a parsed ex command.
type CommandKind uint8

const (
	// CommandNone is an empty command line; it does nothing.
	CommandNone CommandKind = iota
	CommandQuit
	CommandWrite
)

// Command is a parsed ex command line.
type Command struct {
	Kind     CommandKind
	Filename string
}

// ErrExpectedFilename is returned for a write command with no filename.
var ErrExpectedFilename = errors.New("Expected filename")

// UnknownCommandError is returned when the command name is not recognized.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("Unknown command: `%s`", e.Name)
}

// ParseCommand tokenizes line on whitespace; the first token names the
// command. Tokens past the ones a command uses are ignored.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{Kind: CommandNone}, nil
	}

	switch name := fields[0]; name {
	case "q":
		return Command{Kind: CommandQuit}, nil
	case "w":
		if len(fields) < 2 {
			return Command{}, ErrExpectedFilename
		}
		return Command{Kind: CommandWrite, Filename: fields[1]}, nil
	default:
		return Command{}, &UnknownCommandError{Name: name}
	}
}
