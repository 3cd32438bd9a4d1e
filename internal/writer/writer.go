// Package writer renders a disassembled program as text listing.
package writer

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/stew3d/internal/arch/stew3d"
	"github.com/retroenv/stew3d/internal/listing"
	"github.com/retroenv/stew3d/internal/program"
	"github.com/retroenv/stew3d/internal/stats"
	"github.com/retroenv/stew3d/internal/symbols"
)

// column widths of an output line.
const (
	addressWidth = 6
	bytesWidth   = 8
	codeWidth    = 24
)

const (
	instructionIndent = "  "
	columnSeparator   = " | "
	sourcePrefix      = "; "
)

// comments for units that need an explanation.
const (
	commentUnrecognized = "unrecognized"
	commentTruncated    = "truncated %s"
	commentUnresolved   = "target not on instruction boundary"
)

// Colorizer styles the different parts of an output line. Implementations
// must only add escape sequences and not change the visible text.
type Colorizer interface {
	Address(s string) string
	Bytes(s string) string
	Label(s string) string
	Instruction(s string) string
	Comment(s string) string
	Source(s string) string
}

// Options of the writer.
type Options struct {
	Colorizer      Colorizer        // optional, output is plain text if nil
	Listing        *listing.Listing // optional source lines shown side by side
	Stats          bool             // print binary statistics after the header
	WarnUnresolved bool             // add a comment to unresolved code addresses
}

// Writer writes the disassembly text of a program.
type Writer struct {
	app     *program.Program
	size    int
	labels  *symbols.Table
	colors  Colorizer
	options Options
	writer  io.Writer
}

// New creates a new writer.
func New(app *program.Program, labels *symbols.Table, writer io.Writer, options Options) *Writer {
	return newWriter(app, app.Size(), labels, writer, options)
}

func newWriter(app *program.Program, size int, labels *symbols.Table, writer io.Writer, options Options) *Writer {
	colors := options.Colorizer
	if colors == nil {
		colors = plain{}
	}

	return &Writer{
		app:     app,
		size:    size,
		labels:  labels,
		colors:  colors,
		options: options,
		writer:  writer,
	}
}

// Render returns the plain text disassembly of the given units.
func Render(name string, size int, instructions []program.Instruction, labels *symbols.Table) string {
	app := &program.Program{
		Name:         name,
		Instructions: instructions,
	}

	buf := &strings.Builder{}
	w := newWriter(app, size, labels, buf, Options{})
	_ = w.Write() // writing to a strings.Builder can not fail
	return buf.String()
}

// Write writes the header followed by one line per label and unit.
func (w Writer) Write() error {
	if err := w.WriteHeader(); err != nil {
		return err
	}

	if w.options.Stats {
		s := stats.New(w.app.Instructions, w.labels)
		if _, err := fmt.Fprintf(w.writer, "%s\n", s); err != nil {
			return fmt.Errorf("writing stats: %w", err)
		}
	}

	source, remaining := w.sourceLines()

	for i, ins := range w.app.Instructions {
		if err := w.writeLabel(ins.Address); err != nil {
			return err
		}
		if err := w.writeInstruction(ins, source[i]); err != nil {
			return err
		}
	}

	return w.writeRemainingSource(remaining)
}

// WriteHeader writes the header line that names the source and its size.
func (w Writer) WriteHeader() error {
	if _, err := fmt.Fprintf(w.writer, "Disassembly of file `%s` (%d bytes)\n\n", w.app.Name, w.size); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	return nil
}

func (w Writer) writeLabel(address int) error {
	name, ok := w.labels.Name(address)
	if !ok {
		return nil
	}

	label := name + ":"
	line := w.line(formatAddress(address), "", text{w.colors.Label(label), label}, "")
	if _, err := fmt.Fprintln(w.writer, line); err != nil {
		return fmt.Errorf("writing label: %w", err)
	}
	return nil
}

// sourceLines assigns the listing lines to the index of the unit that covers
// their address, in address order. Addresses that no unit covers are
// returned separately.
func (w Writer) sourceLines() (map[int][]string, []int) {
	assigned := make(map[int][]string)
	var remaining []int

	for _, address := range w.options.Listing.Addresses() {
		index := w.app.InstructionAt(address)
		if index < 0 {
			remaining = append(remaining, address)
			continue
		}
		assigned[index] = append(assigned[index], w.options.Listing.Lines(address)...)
	}

	return assigned, remaining
}

func (w Writer) writeInstruction(ins program.Instruction, source []string) error {
	code, comment := w.instructionCode(ins)

	column := text{w.colors.Instruction(code), code}
	if comment != "" {
		column.styled += " " + w.colors.Comment("; "+comment)
		column.visible += " ; " + comment
	}

	var first string
	if len(source) > 0 {
		first = source[0]
	}

	line := w.line(formatAddress(ins.Address), formatBytes(ins.Bytes), column, first)
	if _, err := fmt.Fprintln(w.writer, line); err != nil {
		return fmt.Errorf("writing instruction: %w", err)
	}

	return w.writeSourceLines("", source[min(1, len(source)):])
}

// writeRemainingSource writes source lines whose address is not covered by
// any unit, like addresses past the end of the program.
func (w Writer) writeRemainingSource(addresses []int) error {
	for _, address := range addresses {
		if err := w.writeSourceLines(formatAddress(address), w.options.Listing.Lines(address)); err != nil {
			return err
		}
	}
	return nil
}

// writeSourceLines writes source lines as continuation lines that have no
// disassembly content.
func (w Writer) writeSourceLines(address string, lines []string) error {
	for _, source := range lines {
		line := w.line(address, "", text{}, source)
		if _, err := fmt.Fprintln(w.writer, line); err != nil {
			return fmt.Errorf("writing source line: %w", err)
		}
	}
	return nil
}

// instructionCode returns the assembly text of a unit and an optional comment.
func (w Writer) instructionCode(ins program.Instruction) (string, string) {
	if ins.IsRaw() {
		code := fmt.Sprintf("%s.byte 0x%02x", instructionIndent, ins.Bytes[0])
		if ins.IsType(program.TruncatedInstruction) && ins.Opcode != nil {
			return code, fmt.Sprintf(commentTruncated, ins.Opcode.Name)
		}
		return code, commentUnrecognized
	}

	var comment string
	operands := make([]string, len(ins.Operands))
	for i, op := range ins.Operands {
		if op.Kind != stew3d.CodeAddress {
			operands[i] = stew3d.FormatValue(op.Value)
			continue
		}

		name, ok := w.labels.Name(int(op.Value))
		if ok {
			operands[i] = name
			continue
		}

		operands[i] = fmt.Sprintf("0x%02x", op.Value)
		if w.options.WarnUnresolved {
			comment = commentUnresolved
		}
	}

	return instructionIndent + ins.Opcode.Format(operands...), comment
}

// text is a column content with and without terminal styling, the visible
// text is used to calculate the padding.
type text struct {
	styled  string
	visible string
}

// line joins the columns of an output line. Source text is appended after
// the code column padded to a fixed width.
func (w Writer) line(address, data string, code text, source string) string {
	var b strings.Builder

	b.WriteString(pad(w.colors.Address(address), address, addressWidth))
	b.WriteByte(' ')
	b.WriteString(pad(w.colors.Bytes(data), data, bytesWidth))
	b.WriteString(columnSeparator)
	b.WriteString(code.styled)

	if source != "" {
		if len(code.visible) >= codeWidth {
			b.WriteByte(' ')
		}
		b.WriteString(pad("", code.visible, codeWidth))
		b.WriteString(w.colors.Source(sourcePrefix + source))
	}

	return strings.TrimRight(b.String(), " ")
}

// pad appends spaces to the styled text until the visible text fills the
// given width.
func pad(styled, visible string, width int) string {
	if n := width - len(visible); n > 0 {
		return styled + strings.Repeat(" ", n)
	}
	return styled
}

func formatAddress(address int) string {
	return fmt.Sprintf("%02x:", address)
}

func formatBytes(data []byte) string {
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = fmt.Sprintf("%02x", b)
	}
	return strings.Join(parts, " ")
}

// plain is the colorizer for uncolored output.
type plain struct{}

func (plain) Address(s string) string     { return s }
func (plain) Bytes(s string) string       { return s }
func (plain) Label(s string) string       { return s }
func (plain) Instruction(s string) string { return s }
func (plain) Comment(s string) string     { return s }
func (plain) Source(s string) string      { return s }
