// Package symbols provides label resolution for code address operands.
package symbols

// Label is a synthesized name for an instruction start that is referenced
// by at least one code address operand.
type Label struct {
	Address int
	Name    string
}

// Reference is a code address operand that does not point to the start of
// an instruction.
type Reference struct {
	From   int // address of the referencing instruction
	Target int // raw operand value
}

// Table maps instruction start addresses to label names.
type Table struct {
	names      map[int]string
	labels     []Label // sorted by address
	unresolved []Reference
}

// Name returns the label name for the given address.
func (t *Table) Name(address int) (string, bool) {
	if t == nil {
		return "", false
	}
	name, ok := t.names[address]
	return name, ok
}

// Has returns whether a label exists at the given address.
func (t *Table) Has(address int) bool {
	_, ok := t.Name(address)
	return ok
}

// Len returns the number of labels in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.labels)
}

// Labels returns all labels sorted by address.
func (t *Table) Labels() []Label {
	if t == nil {
		return nil
	}
	return t.labels
}

// Unresolved returns all code address operands that could not be resolved
// to a label, in instruction order.
func (t *Table) Unresolved() []Reference {
	if t == nil {
		return nil
	}
	return t.unresolved
}
