package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"jsonlscope/internal/adapters/tui/styles"
	"jsonlscope/internal/application"
	"jsonlscope/internal/domain"
)

const ruleWidth = 40

// Options controls how reports are rendered
type Options struct {
	ListLabel string // display label of list segments in the tree
	NoColor   bool   // render without ANSI styling
}

// Renderer writes the text reports for a completed analysis
type Renderer struct {
	out       io.Writer
	listLabel string

	heading func(string) string
	rule    func(string) string
	warn    func(string) string
	fail    func(string) string
	success func(string) string
}

// NewRenderer creates a Renderer writing to out
func NewRenderer(out io.Writer, opts Options) *Renderer {
	r := &Renderer{
		out:       out,
		listLabel: opts.ListLabel,
		heading:   plain,
		rule:      plain,
		warn:      plain,
		fail:      plain,
		success:   plain,
	}
	if r.listLabel == "" {
		r.listLabel = domain.DefaultListLabel
	}
	if !opts.NoColor {
		r.heading = styled(styles.Heading)
		r.rule = styled(styles.Rule)
		r.warn = styled(styles.WarningMsg)
		r.fail = styled(styles.ErrorMsg)
		r.success = styled(styles.Success)
	}
	return r
}

func plain(s string) string { return s }

func styled(style lipgloss.Style) func(string) string {
	return func(s string) string { return style.Render(s) }
}

// Full writes the invalid line warnings followed by the structure,
// statistics and empty field sections
func (r *Renderer) Full(rep *domain.Report) error {
	var b strings.Builder
	r.writeWarnings(&b, rep)
	r.writeStructure(&b, rep)
	r.writeStatistics(&b, rep)
	r.writeEmptyFields(&b, rep)
	return r.flush(&b)
}

// Structure writes only the structure tree section
func (r *Renderer) Structure(rep *domain.Report) error {
	var b strings.Builder
	r.writeStructure(&b, rep)
	return r.flush(&b)
}

// Statistics writes only the file statistics section
func (r *Renderer) Statistics(rep *domain.Report) error {
	var b strings.Builder
	r.writeStatistics(&b, rep)
	return r.flush(&b)
}

// EmptyFields writes only the empty/null field section
func (r *Renderer) EmptyFields(rep *domain.Report) error {
	var b strings.Builder
	r.writeEmptyFields(&b, rep)
	return r.flush(&b)
}

// Diagnostic writes the single line shown when an analysis aborts
func (r *Renderer) Diagnostic(path string, err error) error {
	_, werr := fmt.Fprintln(r.out, r.fail(DiagnosticMessage(path, err)))
	return werr
}

// DiagnosticMessage describes why the analysis of path produced no report
func DiagnosticMessage(path string, err error) string {
	var valErr *application.ValidationError

	switch {
	case application.IsMissingFile(err):
		return fmt.Sprintf("❌ Error: file '%s' was not found.", path)
	case errors.As(err, &valErr):
		return fmt.Sprintf("❌ Error: %s.", valErr.Message)
	case errors.Is(err, application.ErrCancelled):
		return "❌ Analysis cancelled."
	default:
		return fmt.Sprintf("❌ An unexpected error occurred: %v", err)
	}
}

func (r *Renderer) flush(b *strings.Builder) error {
	_, err := io.WriteString(r.out, b.String())
	return err
}

func (r *Renderer) open(b *strings.Builder, title string) {
	b.WriteString("\n")
	b.WriteString(r.rule(strings.Repeat("=", ruleWidth)))
	b.WriteString("\n")
	b.WriteString(r.heading(title))
	b.WriteString("\n")
}

func (r *Renderer) close(b *strings.Builder) {
	b.WriteString(r.rule(strings.Repeat("=", ruleWidth)))
	b.WriteString("\n")
}

func (r *Renderer) writeWarnings(b *strings.Builder, rep *domain.Report) {
	for _, line := range rep.InvalidLines {
		b.WriteString(r.warn(fmt.Sprintf("⚠️ Warning: line %d is not valid JSON and was skipped.", line)))
		b.WriteString("\n")
	}
}

func (r *Renderer) writeStructure(b *strings.Builder, rep *domain.Report) {
	r.open(b, "🌳 Field structure (in order of appearance):")
	if rep.Structure.Len() > 0 {
		// tree lines stay unstyled so output is byte-stable
		b.WriteString(rep.Tree(r.listLabel).String())
	} else {
		b.WriteString("🤷 No field structure was found in the file.\n")
	}
	r.close(b)
}

func (r *Renderer) writeStatistics(b *strings.Builder, rep *domain.Report) {
	r.open(b, "📊 File statistics:")
	fmt.Fprintf(b, "- File size: %s\n", domain.FormatSize(rep.File.Size))
	if rep.Compression != "" {
		fmt.Fprintf(b, "- Compression: %s\n", rep.Compression)
	}
	fmt.Fprintf(b, "- Total lines read: %d\n", rep.Lines.Total)
	fmt.Fprintf(b, "- Lines with valid JSON (records): %d\n", rep.Lines.Valid)
	fmt.Fprintf(b, "- Blank lines: %d\n", rep.Lines.Blank)
	fmt.Fprintf(b, "- Lines with invalid JSON: %d\n", rep.Lines.Invalid)
	r.close(b)
}

func (r *Renderer) writeEmptyFields(b *strings.Builder, rep *domain.Report) {
	r.open(b, "🔎 Empty/null field analysis (all levels):")
	if len(rep.EmptyCounts) > 0 {
		b.WriteString(`(Number of times a field appeared with null, "", [] or {})` + "\n")
		for _, name := range rep.EmptyCounts.Names() {
			fmt.Fprintf(b, "- Field '%s': %d time(s) without a value\n", name, rep.EmptyCounts[name])
		}
	} else {
		b.WriteString(r.success("✅ No field with an empty or null value was found."))
		b.WriteString("\n")
	}
	r.close(b)
}
