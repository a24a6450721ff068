// Package renderer turns engine reports into markdown documents for the CLI.
package renderer

import (
	"bytes"
	"fmt"
	"time"

	md "github.com/nao1215/markdown"

	bagholder "github.com/Trogdorts/BagHolder"
)

// CalendarMarkdown renders the month grid: one row per week, one column per
// weekday, each in-month day showing its realized total. Out-of-month
// padding days render empty.
func CalendarMarkdown(r *bagholder.MonthReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s %d", r.Month, r.Year))

	header := make([]string, 0, 8)
	alignment := make([]md.TableAlignment, 0, 8)
	for i := 0; i < 7; i++ {
		day := time.Weekday((int(r.WeekStart) + i) % 7)
		header = append(header, day.String()[:3])
		alignment = append(alignment, md.AlignRight)
	}
	header = append(header, md.Bold("Week"))
	alignment = append(alignment, md.AlignRight)

	table := md.TableSet{Header: header, Alignment: alignment}
	for _, week := range r.Weeks {
		row := make([]string, 0, 8)
		for _, day := range week.Days {
			row = append(row, dayCellString(day))
		}
		row = append(row, week.Total.SignedString())
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)

	doc.H2("Month")
	monthly := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Realized"), md.Bold(r.MonthTotal.Realized.SignedString())},
		Rows: [][]string{
			{"Matches", fmt.Sprintf("%d", r.MonthTotal.Matches)},
			{"Symbols", fmt.Sprintf("%d", len(r.MonthTotal.Symbols))},
		},
	}
	doc.Table(monthly)

	if r.Unrealized != nil && len(r.Unrealized.Entries) > 0 {
		doc.H2(fmt.Sprintf("Open Positions as of %s", r.Unrealized.AsOf))
		appendUnrealized(doc, r.Unrealized)
	}

	return doc.String()
}

func dayCellString(day bagholder.MonthDay) string {
	if !day.InMonth {
		return ""
	}
	if day.Cell.Matches == 0 {
		return fmt.Sprintf("%d", day.Date.Day())
	}
	return fmt.Sprintf("%d: %s", day.Date.Day(), day.Cell.Realized.SignedString())
}
