package renderer

import (
	"github.com/resalehub/resalehub"
)

// SalesMarkdown renders the sales listing as a markdown table, with a total
// row summing revenue, fees and profit.
func SalesMarkdown(sales []resalehub.Sale, currency string) string {
	b := newBuilder()
	b.Printf("# Sales\n\n")
	if len(sales) == 0 {
		b.Printf("No sales.\n")
		return b.String()
	}

	var revenue, fees, profit resalehub.Money
	rows := make([][]string, 0, len(sales)+1)
	for _, sl := range sales {
		price := resalehub.M(sl.SalePrice, currency)
		fee := resalehub.M(sl.Fees, currency)
		gain := resalehub.M(sl.Profit, currency)
		revenue = revenue.Add(price)
		fees = fees.Add(fee)
		profit = profit.Add(gain)
		rows = append(rows, []string{
			sl.ID,
			sl.ItemName,
			sl.Customer,
			orDash(sl.Platform),
			sl.Date.String(),
			string(sl.Status),
			price.String(),
			fee.String(),
			gain.SignedString(),
		})
	}
	rows = append(rows, []string{
		"", "**Total**", "", "", "", "",
		revenue.String(), fees.String(), profit.SignedString(),
	})
	b.Table([]string{"ID", "Item", "Customer", "Platform", "Date", "Status", "Price", "Fees", "Profit"}, rows)
	return b.String()
}
