// Package pipeline orchestrates the disassembly workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/stew3d/internal/disasm"
	"github.com/retroenv/stew3d/internal/highlight"
	"github.com/retroenv/stew3d/internal/listing"
	"github.com/retroenv/stew3d/internal/loader"
	"github.com/retroenv/stew3d/internal/options"
	"github.com/retroenv/stew3d/internal/program"
	"github.com/retroenv/stew3d/internal/verification"
	"github.com/retroenv/stew3d/internal/writer"
)

// Pipeline orchestrates the complete disassembly workflow.
type Pipeline struct {
	logger *log.Logger
	loader *loader.Loader
}

// New creates a new disassembly pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger: logger,
		loader: loader.New(),
	}
}

// Execute runs the complete disassembly pipeline.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, disasmOpts options.Disassembler,
	w io.Writer) (*program.Program, error) {

	name, data, err := p.loader.Load(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("loading program: %w", err)
	}

	return p.ExecuteWithData(ctx, name, data, opts, disasmOpts, w)
}

// ExecuteWithData runs the disassembly pipeline with a pre-loaded program.
// This is useful for testing and programmatic usage where the program is already in memory.
func (p *Pipeline) ExecuteWithData(ctx context.Context, name string, data []byte, opts options.Program,
	disasmOpts options.Disassembler, w io.Writer) (*program.Program, error) {

	// Load the side by side listing first to fail before any output is written
	var source *listing.Listing
	if opts.Source != "" {
		var err error
		source, err = listing.Load(opts.Source)
		if err != nil {
			return nil, fmt.Errorf("loading source listing: %w", err)
		}
		p.logger.Debug("Loaded source listing",
			log.String("file", opts.Source),
			log.Int("addresses", source.Len()))
	}

	p.printInfo(opts, name, len(data))

	dis := disasm.New(p.logger, disasmOpts)
	app, labels, err := dis.Process(ctx, name, data)
	if err != nil {
		return nil, fmt.Errorf("disassembling: %w", err)
	}

	if opts.Verify {
		if err := verification.VerifyCoverage(p.logger, data, app.Instructions); err != nil {
			return nil, fmt.Errorf("verification failed: %w", err)
		}
		p.logger.Info("Verification successful")
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("rendering: %w", err)
	}

	writerOpts := writer.Options{
		Listing:        source,
		Stats:          disasmOpts.Stats,
		WarnUnresolved: disasmOpts.WarnUnresolved,
	}
	if disasmOpts.Color {
		writerOpts.Colorizer = highlight.New()
	}

	if err := writer.New(app, labels, w, writerOpts).Write(); err != nil {
		return nil, fmt.Errorf("writing disassembly: %w", err)
	}
	return app, nil
}

// printInfo prints information about the program being processed.
func (p *Pipeline) printInfo(opts options.Program, name string, size int) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Processing 3000 program",
		log.String("file", name),
		log.Int("size", size),
	)
}
