package listscript

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/iotaledger/memlist/packages/memory"
)

// commentPrefix starts a comment that runs until the end of the line.
const commentPrefix = "#"

// Parse reads a script from the reader and returns its Commands in order. Blank lines and comments are skipped.
func Parse(reader io.Reader) (commands []*Command, err error) {
	scanner := bufio.NewScanner(reader)
	for line := 1; scanner.Scan(); line++ {
		text := scanner.Text()
		if commentStart := strings.Index(text, commentPrefix); commentStart >= 0 {
			text = text[:commentStart]
		}

		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		command, parseErr := parseCommand(line, fields)
		if parseErr != nil {
			return nil, parseErr
		}
		commands = append(commands, command)
	}
	if err = scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read script")
	}

	return commands, nil
}

// ParseString is a convenience wrapper around Parse for scripts that are already in memory.
func ParseString(script string) ([]*Command, error) {
	return Parse(strings.NewReader(script))
}

func parseCommand(line int, fields []string) (command *Command, err error) {
	verb := Verb(fields[0])
	commandLayout, exists := layouts[verb]
	if !exists {
		return nil, errors.Wrapf(ErrInvalidCommand, "line %d: unknown verb %q", line, verb)
	}

	arguments := fields[1:]
	if len(arguments) != commandLayout.arguments() {
		return nil, errors.Wrapf(ErrInvalidCommand, "line %d: %s expects %d arguments but got %d", line, verb, commandLayout.arguments(), len(arguments))
	}

	command = &Command{
		Line: line,
		Verb: verb,
	}

	if commandLayout.index {
		if command.Index, err = strconv.Atoi(arguments[0]); err != nil {
			return nil, errors.Wrapf(ErrInvalidCommand, "line %d: failed to parse index %q", line, arguments[0])
		}
		arguments = arguments[1:]
	}

	if commandLayout.block {
		if command.Block, err = memory.ParseBlock(arguments[0], arguments[1]); err != nil {
			return nil, errors.Wrapf(errors.Mark(err, ErrInvalidCommand), "line %d", line)
		}
	}

	return command, nil
}
