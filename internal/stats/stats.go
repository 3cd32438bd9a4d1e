// Package stats collects statistics about a disassembled binary.
package stats

import (
	"fmt"
	"strings"

	"github.com/retroenv/stew3d/internal/program"
	"github.com/retroenv/stew3d/internal/symbols"
)

// Stats contains the byte and instruction counts of a binary.
type Stats struct {
	TotalBytes        int
	TotalInstructions int // decoded instructions, raw bytes are not included
	OpcodeBytes       int
	OperandBytes      int
	Unrecognized      int // raw bytes that could not be decoded
	SingleByte        int
	TwoByte           int
	ThreeByte         int
	Labels            int
}

// New calculates the statistics for the given decoded units.
func New(instructions []program.Instruction, labels *symbols.Table) Stats {
	s := Stats{
		Labels: labels.Len(),
	}

	for _, ins := range instructions {
		s.TotalBytes += ins.Size()
		if ins.IsRaw() {
			s.Unrecognized++
			continue
		}

		s.TotalInstructions++
		s.OpcodeBytes++
		s.OperandBytes += ins.Size() - 1

		switch ins.Size() {
		case 1:
			s.SingleByte++
		case 2:
			s.TwoByte++
		case 3:
			s.ThreeByte++
		}
	}

	return s
}

// String returns the statistics as human readable text block.
func (s Stats) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Program size: %d bytes\n", s.TotalBytes)
	fmt.Fprintf(&b, "Instructions: %d\n", s.TotalInstructions)
	fmt.Fprintf(&b, "Opcodes:      %d (%s)\n", s.OpcodeBytes, percent(s.OpcodeBytes, s.TotalBytes))
	fmt.Fprintf(&b, "Operands:     %d (%s)\n", s.OperandBytes, percent(s.OperandBytes, s.TotalBytes))
	fmt.Fprintf(&b, "Unrecognized: %d (%s)\n", s.Unrecognized, percent(s.Unrecognized, s.TotalBytes))
	fmt.Fprintf(&b, "Labels:       %d\n", s.Labels)
	b.WriteString("Instruction breakdown:\n")
	fmt.Fprintf(&b, "  1-byte: %d (%s)\n", s.SingleByte, percent(s.SingleByte, s.TotalInstructions))
	fmt.Fprintf(&b, "  2-byte: %d (%s)\n", s.TwoByte, percent(s.TwoByte, s.TotalInstructions))
	fmt.Fprintf(&b, "  3-byte: %d (%s)\n", s.ThreeByte, percent(s.ThreeByte, s.TotalInstructions))

	return b.String()
}

func percent(value, total int) string {
	if total == 0 {
		return "0.00%"
	}
	return fmt.Sprintf("%.2f%%", float64(value)*100/float64(total))
}
