package renderer

import (
	"github.com/resalehub/resalehub"
)

// OrdersMarkdown renders the purchase order listing as a markdown table.
func OrdersMarkdown(orders []resalehub.Order, currency string) string {
	b := newBuilder()
	b.Printf("# Orders\n\n")
	if len(orders) == 0 {
		b.Printf("No orders.\n")
		return b.String()
	}

	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []string{
			o.ID,
			o.Name,
			o.Date.String(),
			string(o.Status),
			orDash(o.Supplier),
			itoa(o.ItemCount),
			resalehub.M(o.TotalCost, currency).String(),
		})
	}
	b.Table([]string{"ID", "Name", "Date", "Status", "Supplier", "Items", "Total"}, rows)
	return b.String()
}

// OrderItemsMarkdown renders one order followed by the items it created.
func OrderItemsMarkdown(o resalehub.Order, items []resalehub.InventoryItem, currency string) string {
	b := newBuilder()
	b.Printf("# Order %s\n\n", o.Name)
	b.Printf("%s, %s, %d items for %s.\n\n",
		o.Date, o.Status, o.ItemCount, resalehub.M(o.TotalCost, currency))
	if o.Supplier != "" {
		b.Printf("Supplier: %s\n\n", o.Supplier)
	}

	if len(items) == 0 {
		b.Printf("No items attached.\n")
		return b.String()
	}
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			it.ID,
			it.Name,
			string(it.Status),
			resalehub.M(it.PurchasePrice, currency).String(),
			resalehub.M(it.CurrentPrice, currency).String(),
		})
	}
	b.Table([]string{"ID", "Name", "Status", "Bought", "Listed"}, rows)
	return b.String()
}
