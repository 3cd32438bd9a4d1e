package fileprocessor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/stew3d/internal/options"
)

var testCode = []byte{0x7f, 0x0a, 0xbc, 0x05, 0xc7, 0x0c, 0x04, 0xbd}

func TestProcessFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "hello.bin")
	assert.NoError(t, os.WriteFile(input, testCode, 0o600))

	opts := options.Program{}
	opts.Input = input
	opts.Output = GenerateOutputFilename(input)
	opts.Color = options.ColorNever

	err := ProcessFile(context.Background(), log.NewTestLogger(t), opts, options.Disassembler{})
	assert.NoError(t, err)

	output, err := os.ReadFile(opts.Output)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(output), "Disassembly of file `"+input+"` (8 bytes)\n"))
	assert.Contains(t, string(output), "07:    bd       |   ret\n")
	assert.False(t, strings.Contains(string(output), "\x1b["))
}

func TestProcessFile_Errors(t *testing.T) {
	opts := options.Program{}
	opts.Input = filepath.Join(t.TempDir(), "missing.bin")
	opts.Output = filepath.Join(t.TempDir(), "missing.asm")

	err := ProcessFile(context.Background(), log.NewTestLogger(t), opts, options.Disassembler{})
	assert.ErrorContains(t, err, "processing "+opts.Input)

	opts.Output = filepath.Join(t.TempDir(), "missing", "dir", "out.asm")
	err = ProcessFile(context.Background(), log.NewTestLogger(t), opts, options.Disassembler{})
	assert.ErrorContains(t, err, "creating output file")
}

func TestProcessFile_OutputIsInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "prog.bin")
	assert.NoError(t, os.WriteFile(input, testCode, 0o600))

	outputs := []string{
		input,
		dir + "/./prog.bin",
	}
	if wd, err := os.Getwd(); err == nil {
		if rel, err := filepath.Rel(wd, input); err == nil {
			outputs = append(outputs, rel)
		}
	}

	for _, output := range outputs {
		opts := options.Program{}
		opts.Input = input
		opts.Output = output
		opts.Color = options.ColorNever

		err := ProcessFile(context.Background(), log.NewTestLogger(t), opts, options.Disassembler{})
		assert.True(t, errors.Is(err, ErrOutputIsInput))

		data, err := os.ReadFile(input)
		assert.NoError(t, err)
		assert.Equal(t, testCode, data)
	}
}

func TestSamePath(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "prog.asm")
	assert.NoError(t, os.WriteFile(input, testCode, 0o600))

	assert.True(t, SamePath(input, GenerateOutputFilename(input)))
	assert.True(t, SamePath(input, filepath.Join(dir, "sub", "..", "prog.asm")))
	assert.False(t, SamePath(input, filepath.Join(dir, "prog.bin")))
	assert.False(t, SamePath(filepath.Join(dir, "a.bin"), filepath.Join(dir, "b.bin")))

	link := filepath.Join(dir, "link.asm")
	if err := os.Symlink(input, link); err == nil {
		assert.True(t, SamePath(input, link))
	}
}

func TestGetFilesToProcess(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.bin", "b.bin", "c.txt"} {
		assert.NoError(t, os.WriteFile(filepath.Join(dir, name), testCode, 0o600))
	}

	opts := &options.Program{}
	opts.Batch = filepath.Join(dir, "*.bin")
	files, err := GetFilesToProcess(opts)
	assert.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.bin"), filepath.Join(dir, "b.bin")}, files)

	opts = &options.Program{}
	opts.Input = "single.bin"
	files, err = GetFilesToProcess(opts)
	assert.NoError(t, err)
	assert.Equal(t, []string{"single.bin"}, files)

	opts = &options.Program{}
	opts.Batch = "[invalid"
	_, err = GetFilesToProcess(opts)
	assert.Error(t, err)
}

func TestGenerateOutputFilename(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"hello.bin", "hello.asm"},
		{"dir/prog.3000", "dir/prog.asm"},
		{"noext", "noext.asm"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, GenerateOutputFilename(tt.input))
		})
	}
}

func TestPrintBanner(t *testing.T) {
	logger := log.NewTestLogger(t)

	opts := options.Program{}
	PrintBanner(logger, opts, "1.0.0", "0123456789abcdef", "2026-10-17")

	opts.Quiet = true
	PrintBanner(logger, opts, "1.0.0", "", "")
}
