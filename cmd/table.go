package cmd

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// renderTable renders rows under a rounded border. Columns listed in
// rightAligned are right-aligned, numbered from 1 like go-pretty does.
func renderTable(header table.Row, rows []table.Row, rightAligned ...int) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(header)
	t.AppendRows(rows)

	var configs []table.ColumnConfig
	for _, number := range rightAligned {
		configs = append(configs, table.ColumnConfig{
			Number:      number,
			Align:       text.AlignRight,
			AlignHeader: text.AlignLeft,
		})
	}
	t.SetColumnConfigs(configs)

	return t.Render()
}
