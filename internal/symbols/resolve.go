package symbols

import (
	"fmt"
	"slices"

	"github.com/retroenv/retrogolib/set"
	"github.com/retroenv/stew3d/internal/program"
)

const labelNaming = "l%d"

// Resolve assigns a label to every code address operand value that points
// to the start of a decoded instruction. Labels are numbered in address
// order, independent of the order of the references.
func Resolve(instructions []program.Instruction) *Table {
	starts := set.New[int]()
	for _, ins := range instructions {
		if !ins.IsRaw() {
			starts.Add(ins.Address)
		}
	}

	t := &Table{
		names: make(map[int]string),
	}

	referenced := set.New[int]()
	var targets []int

	for _, ins := range instructions {
		if ins.IsRaw() || !ins.Opcode.IsControlFlow() {
			continue
		}

		for _, target := range ins.CodeAddresses() {
			if !starts.Contains(target) {
				t.unresolved = append(t.unresolved, Reference{
					From:   ins.Address,
					Target: target,
				})
				continue
			}
			if referenced.Contains(target) {
				continue
			}
			referenced.Add(target)
			targets = append(targets, target)
		}
	}

	slices.Sort(targets)

	t.labels = make([]Label, 0, len(targets))
	for i, address := range targets {
		name := fmt.Sprintf(labelNaming, i)
		t.names[address] = name
		t.labels = append(t.labels, Label{
			Address: address,
			Name:    name,
		})
	}

	return t
}
