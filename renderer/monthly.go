package renderer

import (
	"fmt"

	"github.com/resalehub/resalehub"
)

func percent(v float64) string { return fmt.Sprintf("%.1f%%", v) }

// MonthlyMarkdown renders the month-by-month sales breakdown.
func MonthlyMarkdown(r *resalehub.MonthlyReport) string {
	b := newBuilder()
	b.Printf("# Monthly Sales\n\n")
	if len(r.Rows) == 0 {
		b.Printf("No dated sales.\n")
		return b.String()
	}

	rows := make([][]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		rows = append(rows, []string{
			row.Month.String(),
			itoa(row.Sales),
			row.Revenue.String(),
			row.Fees.String(),
			row.Profit.SignedString(),
		})
	}
	b.Table([]string{"Month", "Sales", "Revenue", "Fees", "Profit"}, rows)
	return b.String()
}
