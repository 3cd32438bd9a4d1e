// Package highlight implements terminal colors for the disassembly output.
package highlight

import (
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/term"
	"github.com/retroenv/stew3d/internal/options"
)

// StyleName is the name of the registered chroma style for instructions.
const StyleName = "stew3d"

var instructionStyle = styles.Register(chroma.MustNewStyle(StyleName, chroma.StyleEntries{
	chroma.Text:          "#FFFFFF",
	chroma.Comment:       "#6C6C6C",
	chroma.Keyword:       "#FFFFFF", // mnemonics
	chroma.KeywordPseudo: "#AF87FF", // .byte
	chroma.Name:          "#7C9C9D", // registers and labels
	chroma.NameBuiltin:   "#7C9C9D",
	chroma.NameVariable:  "#7C9C9D",
	chroma.NameFunction:  "#FFFFFF",
	chroma.NameLabel:     "#FFD700",
	chroma.LiteralNumber: "#FF5F87",
	chroma.Operator:      "#FFFFFF",
	chroma.Punctuation:   "#FFFFFF",
}))

// lexer names in order of preference.
var lexerCandidates = []string{"nasm", "gas"}

// formatter names in order of preference.
var formatterCandidates = []string{"terminal256", "terminal16m"}

// Highlighter colors the parts of an output line. It implements the
// Colorizer interface of the writer.
type Highlighter struct {
	address lipgloss.Style
	bytes   lipgloss.Style
	label   lipgloss.Style
	comment lipgloss.Style
	source  lipgloss.Style

	lexer     chroma.Lexer
	style     *chroma.Style
	formatter chroma.Formatter
}

// New creates a new highlighter.
func New() *Highlighter {
	h := &Highlighter{
		address: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		bytes:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		label:   lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
		comment: lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		source:  lipgloss.NewStyle().Foreground(lipgloss.Color("81")),

		style:     instructionStyle,
		formatter: formatters.Fallback,
	}

	for _, name := range lexerCandidates {
		if lexer := lexers.Get(name); lexer != nil {
			h.lexer = lexer
			break
		}
	}
	for _, name := range formatterCandidates {
		if formatter := formatters.Get(name); formatter != nil {
			h.formatter = formatter
			break
		}
	}

	return h
}

// Enabled returns whether the color mode enables colors for the given
// output file. The auto mode enables colors for terminals unless the
// NO_COLOR environment variable is set.
func Enabled(mode string, output *os.File) bool {
	switch mode {
	case options.ColorAlways:
		return true
	case options.ColorNever:
		return false
	default:
		if os.Getenv("NO_COLOR") != "" || output == nil {
			return false
		}
		return term.IsTerminal(output.Fd())
	}
}

// Address colors the address column.
func (h *Highlighter) Address(s string) string {
	return render(h.address, s)
}

// Bytes colors the raw bytes column.
func (h *Highlighter) Bytes(s string) string {
	return render(h.bytes, s)
}

// Label colors a label declaration.
func (h *Highlighter) Label(s string) string {
	return render(h.label, s)
}

// Comment colors a generated comment.
func (h *Highlighter) Comment(s string) string {
	return render(h.comment, s)
}

// Source colors a side by side source listing line.
func (h *Highlighter) Source(s string) string {
	return render(h.source, s)
}

// Instruction colors the assembly text of an instruction. The text is
// returned unchanged if it can not be tokenised.
func (h *Highlighter) Instruction(s string) string {
	if s == "" || h.lexer == nil {
		return s
	}

	iterator, err := h.lexer.Tokenise(nil, s)
	if err != nil {
		return s
	}

	var buf strings.Builder
	if err := h.formatter.Format(&buf, h.style, iterator); err != nil {
		return s
	}

	// lexers can append a newline to the last token
	return strings.ReplaceAll(buf.String(), "\n", "")
}

func render(style lipgloss.Style, s string) string {
	if s == "" {
		return s
	}
	return style.Render(s)
}
