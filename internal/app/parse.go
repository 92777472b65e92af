package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/gqlmemo/internal/core/domain"
	"go.trai.ch/gqlmemo/internal/core/ports"
	"go.trai.ch/gqlmemo/internal/ui/style"
	"go.trai.ch/zerr"
)

// Input is one named query handed to a use case.
type Input struct {
	// Name identifies the query in output and errors, usually a file path.
	Name  string
	Query domain.QueryText
}

// ParseOptions configures Parse.
type ParseOptions struct {
	// Dir is the directory the configuration is loaded from.
	Dir string
	// Output receives the parsed documents. Defaults to stdout.
	Output io.Writer
	// Summary prints the selection tree instead of the canonical document.
	Summary bool
}

// Parse parses every input through one session cache and writes each
// document to the output. The first parse error aborts the run.
func (a *App) Parse(ctx context.Context, inputs []Input, opts ParseOptions) error {
	if len(inputs) == 0 {
		return domain.ErrNoInputs
	}

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	session, err := a.Open(opts.Dir)
	if err != nil {
		return err
	}

	ctx, span := a.tracer.Start(ctx, "gqlmemo.parse", ports.WithAttribute("inputs", len(inputs)))
	defer span.End()

	printer := newSummaryPrinter(out)
	for _, in := range inputs {
		if err := ctx.Err(); err != nil {
			return err
		}

		doc, err := session.GetOrParse(ctx, in.Query)
		if err != nil {
			span.RecordError(err)
			return zerr.With(zerr.Wrap(err, "failed to parse query"), "input", in.Name)
		}

		if opts.Summary {
			err = printer.print(in.Name, doc)
		} else {
			err = writeDocument(out, in.Name, doc)
		}
		if err != nil {
			return zerr.Wrap(err, "failed to write output")
		}
	}

	stats := session.Stats()
	a.logger.Info("parsed queries",
		"inputs", len(inputs),
		"hits", stats.Hits,
		"misses", stats.Misses,
		"entries", stats.Entries,
	)
	return nil
}

func writeDocument(w io.Writer, name string, doc domain.Document) error {
	formatted := doc.Format()
	if formatted != "" && !strings.HasSuffix(formatted, "\n") {
		formatted += "\n"
	}
	_, err := fmt.Fprintf(w, "# %s\n%s", name, formatted)
	return err
}

// summaryPrinter writes the operation and selection tree of a document.
// Colors are only used when the output is a color terminal.
type summaryPrinter struct {
	w       io.Writer
	heading lipgloss.Style
	muted   lipgloss.Style
}

func newSummaryPrinter(w io.Writer) *summaryPrinter {
	r := lipgloss.NewRenderer(w)
	return &summaryPrinter{
		w:       w,
		heading: r.NewStyle().Foreground(style.Iris).Bold(true),
		muted:   r.NewStyle().Foreground(style.Slate),
	}
}

func (p *summaryPrinter) print(name string, doc domain.Document) error {
	var sb strings.Builder
	sb.WriteString(p.heading.Render(name))
	sb.WriteByte('\n')

	for _, op := range doc.Operations() {
		sb.WriteString("  ")
		sb.WriteString(describeOperation(op))
		sb.WriteByte('\n')
		p.writeSelections(&sb, op.Selections(), 2)
	}
	for _, frag := range doc.Fragments() {
		sb.WriteString("  fragment ")
		sb.WriteString(frag.Name())
		sb.WriteString(p.muted.Render(" on " + frag.TypeCondition()))
		sb.WriteByte('\n')
		p.writeSelections(&sb, frag.Selections(), 2)
	}

	_, err := io.WriteString(p.w, sb.String())
	return err
}

func (p *summaryPrinter) writeSelections(sb *strings.Builder, sels []domain.Selection, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, sel := range sels {
		sb.WriteString(indent)
		switch sel.Kind() {
		case domain.SelectionFragmentSpread:
			sb.WriteString("..." + sel.Name())
		case domain.SelectionInlineFragment:
			sb.WriteString(p.muted.Render("... on " + sel.TypeCondition()))
		default:
			if sel.Alias() != sel.Name() {
				sb.WriteString(sel.Alias() + ": ")
			}
			sb.WriteString(sel.Name())
		}
		sb.WriteByte('\n')
		p.writeSelections(sb, sel.Selections(), depth+1)
	}
}

func describeOperation(op domain.Operation) string {
	name := op.Name()
	if name == "" {
		name = "(anonymous)"
	}
	desc := string(op.Kind()) + " " + name
	if vars := op.VariableNames(); len(vars) > 0 {
		desc += "($" + strings.Join(vars, ", $") + ")"
	}
	return desc
}
