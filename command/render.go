// command/render.go
package command

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// renderTable prints rows in the shared table style. Borders stay off so the
// output pipes cleanly into cut/awk.
func renderTable(out io.Writer, header []string, rows [][]string) {
	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk(rows)
	table.Render()
}

func fmtInt64Ptr(v *int64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatInt(*v, 10)
}

func fmtFloatPtr(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.4f", *v)
}

func fmtMoney(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func fmtBool(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
