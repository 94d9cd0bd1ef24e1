package renderer

import (
	"strconv"

	"github.com/resalehub/resalehub"
)

func itoa(n int) string { return strconv.Itoa(n) }

// CustomersMarkdown renders the customer listing as a markdown table.
func CustomersMarkdown(title string, customers []resalehub.Customer) string {
	b := newBuilder()
	b.Printf("# %s\n\n", title)
	if len(customers) == 0 {
		b.Printf("No customers.\n")
		return b.String()
	}

	rows := make([][]string, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, []string{
			c.ID,
			c.Name,
			orDash(c.Platform),
			itoa(c.TotalPurchases),
			orDash(c.LastPurchase.String()),
			orDash(c.Email),
		})
	}
	b.Table([]string{"ID", "Name", "Platform", "Purchases", "Last", "Email"}, rows)
	return b.String()
}
