// Package disasm implements the disassembler for the 3000.
package disasm

import (
	"context"
	"fmt"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/stew3d/internal/options"
	"github.com/retroenv/stew3d/internal/program"
	"github.com/retroenv/stew3d/internal/symbols"
)

// Disasm implements a disassembler.
type Disasm struct {
	logger  *log.Logger
	options options.Disassembler
}

// New creates a new disassembler.
func New(logger *log.Logger, options options.Disassembler) *Disasm {
	return &Disasm{
		logger:  logger,
		options: options,
	}
}

// Process decodes the passed buffer into a program and resolves the labels
// of all code address operands. The buffer is not modified.
func (dis *Disasm) Process(ctx context.Context, name string, data []byte) (*program.Program, *symbols.Table, error) {
	app := program.New(name, data)
	app.Instructions = dis.Decode(data)

	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("decoding: %w", err)
	}

	labels := symbols.Resolve(app.Instructions)
	dis.logger.Debug("Resolved labels",
		log.Int("instructions", len(app.Instructions)),
		log.Int("labels", labels.Len()),
		log.Int("unresolved", len(labels.Unresolved())))

	if dis.options.WarnUnresolved {
		for _, ref := range labels.Unresolved() {
			dis.logger.Warn("Code address does not point to an instruction start",
				log.Hex("address", ref.From),
				log.Hex("target", ref.Target))
		}
	}

	return app, labels, nil
}

// Decode splits the buffer into instructions, starting at offset 0.
// Every byte is part of exactly one returned unit, bytes that can not be
// decoded are returned as single raw bytes.
func (dis *Disasm) Decode(data []byte) []program.Instruction {
	var instructions []program.Instruction

	for address := 0; address < len(data); {
		ins := decodeInstruction(data, address)

		switch {
		case ins.IsType(program.UnknownOpcode):
			dis.logger.Debug("Unknown opcode",
				log.Hex("address", address),
				log.Hex("opcode", data[address]))

		case ins.IsType(program.TruncatedInstruction):
			dis.logger.Debug("Truncated instruction",
				log.Hex("address", address),
				log.String("instruction", ins.Opcode.String()),
				log.Int("size", ins.Opcode.Size()),
				log.Int("remaining", len(data)-address))
		}

		instructions = append(instructions, ins)
		address += ins.Size()
	}

	return instructions
}
