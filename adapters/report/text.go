package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gorandtest/domain/randomness"
)

// WriteText writes the report as aligned plain text
func WriteText(w io.Writer, r *randomness.Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "RANDOMNESS TEST REPORT")
	for _, f := range profileFields(r) {
		fmt.Fprintf(tw, "%s:\t%s\n", f.Label, f.Value)
	}
	fmt.Fprintln(tw)
	writeTextTable(tw, summaryTable(r))

	for _, d := range details(r) {
		fmt.Fprintf(tw, "\n== %s ==\n", d.Title)
		for _, f := range d.Fields {
			fmt.Fprintf(tw, "%s:\t%s\n", f.Label, f.Value)
		}
		for _, t := range d.Tables {
			fmt.Fprintln(tw)
			writeTextTable(tw, t)
		}
	}

	fmt.Fprintf(tw, "\n%d of %d tests rejected, %d failed\n", r.Rejected(), len(r.Entries), r.Failed())
	return tw.Flush()
}

func writeTextTable(tw *tabwriter.Writer, t table) {
	fmt.Fprintln(tw, t.Title)
	fmt.Fprintln(tw, strings.Join(t.Headers, "\t")+"\t")
	for _, row := range t.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t")+"\t")
	}
}
