package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/stew3d/internal/options"
)

var testCode = []byte{0x7f, 0x0a, 0xbc, 0x05, 0xc7, 0x0c, 0x04, 0xbd}

func TestRun_Batch(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.bin", "b.bin"} {
		assert.NoError(t, os.WriteFile(filepath.Join(dir, name), testCode, 0o600))
	}

	opts := options.Program{}
	opts.Batch = filepath.Join(dir, "*.bin")
	opts.Color = options.ColorNever
	opts.Quiet = true

	assert.NoError(t, run(context.Background(), opts, options.Disassembler{}))

	for _, name := range []string{"a.asm", "b.asm"} {
		output, err := os.ReadFile(filepath.Join(dir, name))
		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(output), "Disassembly of file `"))
		assert.Contains(t, string(output), "05:             | l0:\n")
	}
}

func TestRun_BatchKeepsInputs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.asm", "b.asm"} {
		assert.NoError(t, os.WriteFile(filepath.Join(dir, name), testCode, 0o600))
	}

	opts := options.Program{}
	opts.Batch = filepath.Join(dir, "*.asm")
	opts.Color = options.ColorNever
	opts.Quiet = true

	assert.NoError(t, run(context.Background(), opts, options.Disassembler{}))

	for _, name := range []string{"a.asm", "b.asm"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		assert.NoError(t, err)
		assert.Equal(t, testCode, data)
	}
}

func TestRun_OutputIsInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "prog.bin")
	assert.NoError(t, os.WriteFile(input, testCode, 0o600))

	opts := options.Program{}
	opts.Input = input
	opts.Output = input
	opts.Quiet = true

	assert.ErrorContains(t, run(context.Background(), opts, options.Disassembler{}), "1 of 1 files")

	data, err := os.ReadFile(input)
	assert.NoError(t, err)
	assert.Equal(t, testCode, data)
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.bin")
	assert.NoError(t, os.WriteFile(empty, nil, 0o600))

	t.Run("no matching files", func(t *testing.T) {
		opts := options.Program{}
		opts.Batch = filepath.Join(dir, "*.none")
		opts.Quiet = true
		assert.ErrorContains(t, run(context.Background(), opts, options.Disassembler{}), "no files match")
	})

	t.Run("empty input", func(t *testing.T) {
		opts := options.Program{}
		opts.Input = empty
		opts.Output = filepath.Join(dir, "empty.asm")
		opts.Quiet = true
		assert.ErrorContains(t, run(context.Background(), opts, options.Disassembler{}), "1 of 1 files")
	})
}
