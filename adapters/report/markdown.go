package report

import (
	"fmt"
	"strings"

	"gorandtest/domain/randomness"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Markdown renders the report as a GitHub-style Markdown document
func Markdown(r *randomness.Report) string {
	var b strings.Builder

	b.WriteString("# Randomness Test Report\n\n")
	for _, f := range profileFields(r) {
		fmt.Fprintf(&b, "- **%s:** %s\n", f.Label, escape(f.Value))
	}
	b.WriteString("\n")
	writeMarkdownTable(&b, "##", summaryTable(r))
	fmt.Fprintf(&b, "%d of %d tests rejected, %d failed.\n", r.Rejected(), len(r.Entries), r.Failed())

	for _, d := range details(r) {
		fmt.Fprintf(&b, "\n## %s\n\n", d.Title)
		for _, f := range d.Fields {
			fmt.Fprintf(&b, "- **%s:** %s\n", f.Label, escape(f.Value))
		}
		b.WriteString("\n")
		for _, t := range d.Tables {
			writeMarkdownTable(&b, "###", t)
		}
	}
	return b.String()
}

func writeMarkdownTable(b *strings.Builder, heading string, t table) {
	fmt.Fprintf(b, "%s %s\n\n", heading, t.Title)
	b.WriteString("| " + strings.Join(t.Headers, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat(" --- |", len(t.Headers)) + "\n")
	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = escape(c)
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}
	b.WriteString("\n")
}

var markdownEscaper = strings.NewReplacer("|", `\|`, "*", `\*`, "_", `\_`, "[", `\[`)

func escape(s string) string {
	return markdownEscaper.Replace(s)
}

// HTML renders the Markdown report as a complete HTML page
func HTML(r *randomness.Report) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	renderer := html.NewRenderer(html.RendererOptions{
		Flags: html.CommonFlags | html.CompletePage,
		Title: "Randomness Test Report " + r.RunID.String(),
	})
	return markdown.ToHTML([]byte(Markdown(r)), p, renderer)
}
