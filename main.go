// Package main implements the main entry point for the 3000 disassembler
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/stew3d/internal/cli"
	"github.com/retroenv/stew3d/internal/config"
	"github.com/retroenv/stew3d/internal/fileprocessor"
	"github.com/retroenv/stew3d/internal/options"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	if err := cli.Execute(ctx, buildinfo.Version(version, commit, date), run); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options.Program, disasmOptions options.Disassembler) error {
	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	fileprocessor.PrintBanner(logger, opts, version, commit, date)

	files, err := fileprocessor.GetFilesToProcess(&opts)
	if err != nil {
		return fmt.Errorf("getting files to process: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no files match batch pattern '%s'", opts.Batch)
	}

	var failed int
	for _, file := range files {
		opts.Input = file
		if opts.Batch != "" {
			opts.Output = fileprocessor.GenerateOutputFilename(file)
			if fileprocessor.SamePath(file, opts.Output) {
				logger.Warn("Skipping file, output would overwrite the input", log.String("file", file))
				continue
			}
		}

		if err := fileprocessor.ProcessFile(ctx, logger, opts, disasmOptions); err != nil {
			// Handle context cancellation (Ctrl+C) gracefully
			if errors.Is(err, context.Canceled) {
				logger.Info("Operation cancelled")
				return nil
			}
			logger.Error("Disassembling failed", log.Err(err))
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("disassembling failed for %d of %d files", failed, len(files))
	}
	return nil
}
