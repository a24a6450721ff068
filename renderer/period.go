package renderer

import (
	"bytes"
	"fmt"
	"strings"

	md "github.com/nao1215/markdown"

	bagholder "github.com/Trogdorts/BagHolder"
)

// PeriodMarkdown renders one aggregation bucket: its realized total, the
// number of matches, and the symbols that closed inside it.
func PeriodMarkdown(period bagholder.Period, cell bagholder.PeriodCell) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	switch period {
	case bagholder.Daily:
		doc.H1(fmt.Sprintf("Realized P&L for %s", cell.From))
	default:
		doc.H1(fmt.Sprintf("Realized P&L from %s to %s", cell.From, cell.To))
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header: []string{
			md.Bold("Realized"),
			md.Bold(cell.Realized.SignedString()),
		},
		Rows: [][]string{
			{"Matches", fmt.Sprintf("%d", cell.Matches)},
		},
	}
	if len(cell.Symbols) > 0 {
		table.Rows = append(table.Rows, []string{"Symbols", strings.Join(cell.Symbols, ", ")})
	}
	doc.Table(table)

	return doc.String()
}
