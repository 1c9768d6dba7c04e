// SPDX-License-Identifier: MIT

package experiment

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

func pct(v float64) string { return strconv.FormatFloat(100*v, 'f', 1, 64) + "%" }

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetBorders(tablewriter.Border{Left: false, Right: false, Top: true, Bottom: true})

	return table
}

// WriteResults renders one row per self-training fit.
func WriteResults(w io.Writer, results []Result) {
	table := newTable(w, []string{"Run", "Threshold", "Labeled", "Termination", "Iterations", "Promoted", "Accuracy", "Macro F1"})
	for _, r := range results {
		table.Append([]string{
			r.ID.String()[:8],
			strconv.FormatFloat(r.Threshold, 'f', -1, 64),
			strconv.Itoa(r.Labeled),
			r.Termination.String(),
			strconv.Itoa(r.Iterations),
			strconv.Itoa(r.Promoted),
			pct(r.Accuracy),
			pct(r.MacroF1),
		})
	}
	table.Render()
}

// WriteComparisons renders supervised and self-training scores side by side.
func WriteComparisons(w io.Writer, cmps []Comparison) {
	table := newTable(w, []string{"Labeled", "Supervised acc", "Self-training acc", "Supervised F1", "Self-training F1", "Promoted"})
	for _, c := range cmps {
		table.Append([]string{
			strconv.Itoa(c.Labeled),
			pct(c.Supervised.Accuracy),
			pct(c.SelfTrain.Accuracy),
			pct(c.Supervised.MacroF1),
			pct(c.SelfTrain.MacroF1),
			strconv.Itoa(c.SelfTrain.Promoted),
		})
	}
	table.Render()
}
