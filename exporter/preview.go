package exporter

import (
	"io"

	"procexport/models"

	"github.com/olekukonko/tablewriter"
)

// Preview renders records as a console table in Header order
func Preview(w io.Writer, records []models.ProcessRecord) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(Header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetColumnSeparator(" ")
	table.SetCenterSeparator("-")
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, r := range records {
		table.Append(Row(r))
	}
	table.Render()
}
