package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"pkt.systems/prompter"
)

func renderUnitsTable(units []prompter.Unit) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Kind", "Text", "Source"})
	for _, u := range units {
		tw.AppendRow(table.Row{
			u.Index,
			u.Kind.String(),
			strconv.Quote(u.Text),
			strconv.Quote(u.Literal()),
		})
	}
	tw.AppendFooter(table.Row{"", "words", prompter.CountWords(units), ""})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft},
		{Number: 4, Align: text.AlignLeft},
	})
	return tw.Render()
}
