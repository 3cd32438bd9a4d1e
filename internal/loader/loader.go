// Package loader handles program file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// StdinName is the display name of programs that are read from standard input.
const StdinName = "stdin"

// ErrEmptyInput is returned if the input does not contain any bytes.
var ErrEmptyInput = errors.New("input is empty")

// Loader handles loading program files from disk or standard input.
type Loader struct {
	stdin io.Reader
}

// New creates a new program loader.
func New() *Loader {
	return &Loader{
		stdin: os.Stdin,
	}
}

// Load reads the complete program from the given file. An empty input name
// or "-" reads from standard input. It returns the display name of the
// source and the program bytes.
func (l *Loader) Load(input string) (string, []byte, error) {
	if input == "" || input == "-" {
		data, err := l.LoadFromReader(l.stdin)
		if err != nil {
			return "", nil, fmt.Errorf("reading %s: %w", StdinName, err)
		}
		return StdinName, data, nil
	}

	file, err := os.Open(input)
	if err != nil {
		return "", nil, fmt.Errorf("opening file %s: %w", input, err)
	}
	defer func() { _ = file.Close() }()

	data, err := l.LoadFromReader(file)
	if err != nil {
		return "", nil, fmt.Errorf("reading file %s: %w", input, err)
	}
	return input, data, nil
}

// LoadFromReader reads all program bytes from the given reader.
func (l *Loader) LoadFromReader(reader io.Reader) ([]byte, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading data: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	return data, nil
}
