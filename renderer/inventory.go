package renderer

import (
	"github.com/resalehub/resalehub"
)

// InventoryMarkdown renders the inventory listing as a markdown table.
// Amounts are displayed in the given currency.
func InventoryMarkdown(items []resalehub.InventoryItem, currency string) string {
	b := newBuilder()
	b.Printf("# Inventory\n\n")
	if len(items) == 0 {
		b.Printf("No items.\n")
		return b.String()
	}

	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			it.ID,
			it.Name,
			orDash(it.Brand),
			orDash(it.Size),
			string(it.Status),
			resalehub.M(it.PurchasePrice, currency).String(),
			resalehub.M(it.CurrentPrice, currency).String(),
			orDash(it.Location),
			it.PurchaseDate.String(),
		})
	}
	b.Table([]string{"ID", "Name", "Brand", "Size", "Status", "Bought", "Listed", "Location", "Date"}, rows)
	return b.String()
}
