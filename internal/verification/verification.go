// Package verification verifies that the decoded instructions recreate the input.
package verification

import (
	"errors"
	"fmt"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/stew3d/internal/program"
)

// maxLoggedMismatches limits the number of logged mismatches per check.
const maxLoggedMismatches = 10

// ErrCoverageMismatch is returned if the decoded units do not cover the input
// exactly once or their bytes differ from the input.
var ErrCoverageMismatch = errors.New("decoded instructions do not match input")

// VerifyCoverage verifies that the units partition the input buffer in order
// and that the concatenation of their bytes recreates the input.
func VerifyCoverage(logger *log.Logger, data []byte, instructions []program.Instruction) error {
	var (
		output []byte
		gaps   int
	)

	next := 0
	for _, ins := range instructions {
		if ins.Address != next {
			gaps++
			if gaps <= maxLoggedMismatches {
				logger.Error("Unit not adjacent to previous unit",
					log.Hex("expected", next),
					log.Hex("address", ins.Address))
			}
		}
		if ins.Size() == 0 {
			return fmt.Errorf("%w: empty unit at address 0x%02x", ErrCoverageMismatch, ins.Address)
		}

		next = ins.End()
		output = append(output, ins.Bytes...)
	}

	if gaps > 0 {
		return fmt.Errorf("%w: %d units not adjacent", ErrCoverageMismatch, gaps)
	}

	if err := checkBufferEqual(logger, data, output); err != nil {
		return fmt.Errorf("%w: %w", ErrCoverageMismatch, err)
	}
	return nil
}

func checkBufferEqual(logger *log.Logger, input, output []byte) error {
	if len(input) != len(output) {
		return fmt.Errorf("mismatched lengths, %d != %d", len(input), len(output))
	}

	var diffs uint64
	for i := range input {
		if input[i] == output[i] {
			continue
		}

		diffs++
		if diffs <= maxLoggedMismatches {
			logger.Error("Offset mismatch",
				log.Hex("offset", i),
				log.Hex("expected", input[i]),
				log.Hex("got", output[i]))
		}
	}
	if diffs == 0 {
		return nil
	}
	return fmt.Errorf("%d offset mismatches", diffs)
}
