// Package cli handles command line interface logic
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/retroenv/stew3d/internal/config"
	"github.com/retroenv/stew3d/internal/options"
	"github.com/spf13/cobra"
)

// flag names that can also be set in the config file.
const (
	flagColor          = "color"
	flagDebug          = "debug"
	flagQuiet          = "quiet"
	flagStats          = "stats"
	flagVerify         = "verify"
	flagWarnUnresolved = "warn-unresolved"
)

// RunFunc processes the input files with the parsed options.
type RunFunc func(ctx context.Context, opts options.Program, disasmOptions options.Disassembler) error

// Execute parses the command line and calls run with the resulting options.
func Execute(ctx context.Context, version string, run RunFunc) error {
	cmd := NewRootCommand(run)
	if err := fang.Execute(ctx, cmd,
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		return fmt.Errorf("executing command: %w", err)
	}
	return nil
}

// NewRootCommand creates the command tree of the disassembler.
func NewRootCommand(run RunFunc) *cobra.Command {
	var (
		opts           options.Program
		warnUnresolved bool
	)

	cmd := &cobra.Command{
		Use:   "stew3d [file]",
		Short: "Disassembler for 3000 machine code",
		Long: `stew3d disassembles binaries of the 3000, an 8-bit accumulator machine.
Code addresses that point to an instruction are replaced by labels.
The file is read from standard input if no file or - is given.`,
		Example: `
# Disassemble a file to the console
stew3d hello.bin

# Show statistics and the assembler source side by side
stew3d --stats --source hello.lst hello.bin

# Disassemble all matching files to .asm files
stew3d --batch "roms/*.bin"
  `,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := parseArgs(args, &opts); err != nil {
				return err
			}
			if err := applyConfigFile(cmd, &opts, &warnUnresolved); err != nil {
				return err
			}

			color, err := options.NormalizeColor(opts.Color)
			if err != nil {
				return err
			}
			opts.Color = color

			disasmOptions := options.Disassembler{
				Stats:          opts.Stats,
				WarnUnresolved: warnUnresolved,
			}
			return run(cmd.Context(), opts, disasmOptions)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.Output, "output", "o", "", "name of the output .asm file, printed on console if no name given")
	flags.StringVarP(&opts.Source, "source", "s", "", "source listing file to show side by side with the disassembly")
	flags.StringVarP(&opts.Config, "config", "c", "", "JSON config file with default option values")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of files matching the given pattern and write .asm files next to them, for example *.bin")
	flags.StringVar(&opts.Color, flagColor, options.ColorAuto, "colorize the output (auto/always/never)")
	flags.BoolVar(&opts.Debug, flagDebug, false, "enable debugging options for extended logging")
	flags.BoolVarP(&opts.Quiet, flagQuiet, "q", false, "perform operations quietly")
	flags.BoolVar(&opts.Stats, flagStats, false, "print statistics about the binary before the disassembly")
	flags.BoolVar(&opts.Verify, flagVerify, false, "verify that the decoded instructions recreate the input")
	flags.BoolVar(&warnUnresolved, flagWarnUnresolved, false, "comment code addresses that do not point to an instruction start")

	cmd.AddCommand(newSchemaCommand())
	return cmd
}

func newSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:    "schema",
		Short:  "Generate JSON schema for the config file",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			schema, err := config.Schema()
			if err != nil {
				return fmt.Errorf("generating schema: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(schema))
			return err
		},
	}
}

// parseArgs sets the input file from the positional arguments.
func parseArgs(args []string, opts *options.Program) error {
	if opts.Batch != "" {
		if len(args) > 0 {
			return errors.New("a file to disassemble can not be combined with batch mode")
		}
		if opts.Output != "" {
			return errors.New("an output file can not be combined with batch mode")
		}
		return nil
	}

	if len(args) > 0 {
		opts.Input = args[0]
	}
	return nil
}

// applyConfigFile sets all options from the config file that were not
// explicitly passed as flag.
func applyConfigFile(cmd *cobra.Command, opts *options.Program, warnUnresolved *bool) error {
	if opts.Config == "" {
		return nil
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	flags := cmd.Flags()
	if !flags.Changed(flagColor) && cfg.Color != "" {
		opts.Color = cfg.Color
	}

	bools := []struct {
		name  string
		value bool
		dest  *bool
	}{
		{flagDebug, cfg.Debug, &opts.Debug},
		{flagQuiet, cfg.Quiet, &opts.Quiet},
		{flagStats, cfg.Stats, &opts.Stats},
		{flagVerify, cfg.Verify, &opts.Verify},
		{flagWarnUnresolved, cfg.WarnUnresolved, warnUnresolved},
	}
	for _, b := range bools {
		if !flags.Changed(b.name) {
			*b.dest = b.value
		}
	}
	return nil
}
