package renderer

import (
	"github.com/resalehub/resalehub"
)

// PlatformsMarkdown renders the per-platform sales breakdown.
func PlatformsMarkdown(r *resalehub.PlatformReport) string {
	b := newBuilder()
	b.Printf("# Sales by Platform\n\n")
	if len(r.Rows) == 0 {
		b.Printf("No sales.\n")
		return b.String()
	}

	rows := make([][]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		rows = append(rows, []string{
			orDash(row.Platform),
			itoa(row.Sales),
			row.Revenue.String(),
			row.Profit.SignedString(),
		})
	}
	b.Table([]string{"Platform", "Sales", "Revenue", "Profit"}, rows)
	return b.String()
}
