// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/stew3d/internal/highlight"
	"github.com/retroenv/stew3d/internal/loader"
	"github.com/retroenv/stew3d/internal/options"
	"github.com/retroenv/stew3d/internal/pipeline"
)

// ErrOutputIsInput is returned when writing the output would overwrite the input file.
var ErrOutputIsInput = errors.New("output file is the input file")

// ProcessFile handles the complete file processing workflow
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program, disasmOptions options.Disassembler) error {
	if !isStdin(opts.Input) && opts.Output != "" && SamePath(opts.Input, opts.Output) {
		return fmt.Errorf("%w: %s", ErrOutputIsInput, opts.Output)
	}

	output, err := createWriter(opts)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}
	defer func() {
		if output != os.Stdout {
			_ = output.Close()
		}
	}()

	disasmOptions.Color = highlight.Enabled(opts.Color, output)

	if _, err := pipeline.New(logger).Execute(ctx, opts, disasmOptions, output); err != nil {
		return fmt.Errorf("processing %s: %w", displayName(opts.Input), err)
	}
	return nil
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		return matches, nil
	}
	return []string{opts.Input}, nil
}

// GenerateOutputFilename generates output filename for a given input file
func GenerateOutputFilename(inputFile string) string {
	ext := filepath.Ext(inputFile)
	return inputFile[:len(inputFile)-len(ext)] + ".asm"
}

// SamePath returns whether both paths refer to the same file. Paths are
// compared in absolute form, existing files are also compared by identity
// to detect links.
func SamePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA == nil && errB == nil && absA == absB {
		return true
	}

	infoA, err := os.Stat(a)
	if err != nil {
		return false
	}
	infoB, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(infoA, infoB)
}

func createWriter(opts options.Program) (*os.File, error) {
	if opts.Output == "" {
		return os.Stdout, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}

func isStdin(input string) bool {
	return input == "" || input == "-"
}

func displayName(input string) string {
	if isStdin(input) {
		return loader.StdinName
	}
	return input
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	versionString := version
	if commit != "" {
		if len(commit) > 7 {
			commit = commit[:7]
		}
		versionString += fmt.Sprintf(" (%s)", commit)
	}

	logger.Info("stew3d", log.String("version", versionString))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}
