package renderer

import (
	"bytes"
	"fmt"
	"strings"

	md "github.com/nao1215/markdown"

	bagholder "github.com/Trogdorts/BagHolder"
)

// PositionsMarkdown renders the open positions and their unrealized standing
// against the reference prices.
func PositionsMarkdown(r *bagholder.UnrealizedReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Open Positions as of %s", r.AsOf))
	if len(r.Entries) == 0 {
		doc.PlainText("No open positions.")
		return doc.String()
	}
	appendUnrealized(doc, r)
	return doc.String()
}

func appendUnrealized(doc *md.Markdown, r *bagholder.UnrealizedReport) {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{
			"Symbol",
			"Side",
			"Quantity",
			"Unit Cost",
			"Price",
			"Unrealized",
		},
	}
	for _, entry := range r.Entries {
		p := entry.Position
		price, unrealized := entry.Price.String(), entry.Unrealized.SignedString()
		if entry.PriceMissing {
			price, unrealized = "n/a", "n/a"
		}
		table.Rows = append(table.Rows, []string{
			p.Symbol,
			p.Side.String(),
			p.Quantity.String(),
			p.UnitCost.String(),
			price,
			unrealized,
		})
	}
	doc.Table(table)

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header: []string{
			md.Bold("Total Unrealized"),
			md.Bold(r.Total.SignedString()),
		},
	})

	if len(r.Missing) > 0 {
		doc.PlainText(fmt.Sprintf("No reference price for: %s. These positions are excluded from the total.",
			strings.Join(r.Missing, ", ")))
	}
}
