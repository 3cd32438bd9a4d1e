// Package listing parses source listings that are shown side by side with
// the disassembly.
//
// A listing contains one entry per line in the form "<hex address>: <text>".
// Blank lines and lines starting with '#' are ignored. Multiple entries for
// the same address are kept in file order.
package listing

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
)

const commentPrefix = "#"

// maxLineLength is the longest accepted listing line in bytes.
const maxLineLength = 1024 * 1024

// Listing contains source lines indexed by program address.
type Listing struct {
	lines     map[int][]string
	addresses []int // sorted
}

// Parse reads a listing from the given reader.
func Parse(r io.Reader) (*Listing, error) {
	l := &Listing{
		lines: make(map[int][]string),
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineLength)
	for lineNumber := 1; scanner.Scan(); lineNumber++ {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, commentPrefix) {
			continue
		}

		address, text, err := parseLine(trimmed)
		if err != nil {
			return nil, fmt.Errorf("parsing line %d: %w", lineNumber, err)
		}
		l.add(address, text)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading listing: %w", err)
	}

	slices.Sort(l.addresses)
	return l, nil
}

// Load reads a listing from the given file.
func Load(fileName string) (*Listing, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", fileName, err)
	}
	defer func() { _ = file.Close() }()

	l, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parsing listing %s: %w", fileName, err)
	}
	return l, nil
}

// Lines returns the source lines for the given address.
func (l *Listing) Lines(address int) []string {
	if l == nil {
		return nil
	}
	return l.lines[address]
}

// Addresses returns all addresses that have source lines, in ascending order.
func (l *Listing) Addresses() []int {
	if l == nil {
		return nil
	}
	return l.addresses
}

// Len returns the number of addresses that have source lines.
func (l *Listing) Len() int {
	if l == nil {
		return 0
	}
	return len(l.addresses)
}

func (l *Listing) add(address int, text string) {
	if _, ok := l.lines[address]; !ok {
		l.addresses = append(l.addresses, address)
	}
	l.lines[address] = append(l.lines[address], text)
}

func parseLine(line string) (int, string, error) {
	addr, text, ok := strings.Cut(line, ":")
	if !ok {
		return 0, "", fmt.Errorf("missing address separator in '%s'", line)
	}

	addr = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(addr)), "0x")
	address, err := strconv.ParseUint(addr, 16, 31)
	if err != nil {
		return 0, "", fmt.Errorf("invalid address '%s': %w", addr, err)
	}

	return int(address), strings.TrimSpace(text), nil
}
