package renderer

import (
	"sort"

	"github.com/resalehub/resalehub"
)

// SummaryMarkdown renders the business overview.
func SummaryMarkdown(s *resalehub.Summary) string {
	b := newBuilder()
	b.Printf("# Business Summary on %s\n\n", s.Date)

	b.Printf("## Stock\n\n")
	rows := [][]string{{"all", itoa(s.ItemCount)}}
	statuses := make([]resalehub.ItemStatus, 0, len(s.ItemsByStatus))
	for status := range s.ItemsByStatus {
		statuses = append(statuses, status)
	}
	sort.Slice(statuses, func(i, j int) bool { return statuses[i] < statuses[j] })
	for _, status := range statuses {
		rows = append(rows, []string{string(status), itoa(s.ItemsByStatus[status])})
	}
	b.Table([]string{"Status", "Items"}, rows)
	b.Printf("\nUnsold stock cost %s and is listed for %s.\n\n", s.InventoryCost, s.InventoryValue)

	b.Printf("## Activity\n\n")
	b.Table([]string{"Metric", "Value"}, [][]string{
		{"Orders", itoa(s.OrderCount)},
		{"Order spend", s.OrderSpend.String()},
		{"Sales", itoa(s.SaleCount)},
		{"Revenue", s.Revenue.String()},
		{"Fees", s.Fees.String()},
		{"Profit", s.Profit.SignedString()},
		{"Average margin", percent(s.AverageMargin)},
		{"Customers", itoa(s.CustomerCount)},
	})
	return b.String()
}
