// Package options contains the program options.
package options

import (
	"fmt"
	"strings"
)

// Color modes of the terminal output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Parameters contains file path options.
type Parameters struct {
	Input  string // file to disassemble, stdin if empty or "-"
	Output string // output file, stdout if empty
	Source string // source listing to show side by side
	Config string // JSON config file
	Batch  string // glob pattern of files to process
}

// Flags contains behavior options.
type Flags struct {
	Color  string
	Debug  bool
	Quiet  bool
	Stats  bool
	Verify bool
}

// Program options of the disassembler.
type Program struct {
	Parameters
	Flags
}

// Disassembler defines options to control the disassembler.
type Disassembler struct {
	Color          bool // highlight the output using terminal colors
	Stats          bool // print binary statistics after the header
	WarnUnresolved bool // flag code addresses that do not point to an instruction start
}

// File contains the options that can be set in a JSON config file.
type File struct {
	Color          string `json:"color,omitempty" jsonschema:"title=Color,description=Terminal color mode,enum=auto,enum=always,enum=never"`
	Debug          bool   `json:"debug,omitempty" jsonschema:"title=Debug,description=Enable debug logging"`
	Quiet          bool   `json:"quiet,omitempty" jsonschema:"title=Quiet,description=Only log errors"`
	Stats          bool   `json:"stats,omitempty" jsonschema:"title=Stats,description=Print statistics about the binary"`
	Verify         bool   `json:"verify,omitempty" jsonschema:"title=Verify,description=Verify that the decoded instructions cover the input"`
	WarnUnresolved bool   `json:"warnUnresolved,omitempty" jsonschema:"title=Warn unresolved,description=Flag code addresses that do not point to an instruction start"`
}

// NormalizeColor validates and normalizes a color mode value.
func NormalizeColor(mode string) (string, error) {
	mode = strings.ToLower(strings.TrimSpace(mode))
	switch mode {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	default:
		return "", fmt.Errorf("unsupported color mode '%s', valid options: %s, %s, %s",
			mode, ColorAuto, ColorAlways, ColorNever)
	}
}
