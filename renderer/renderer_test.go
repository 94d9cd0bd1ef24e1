package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/resalehub/resalehub"
	"github.com/resalehub/resalehub/date"
	"github.com/shopspring/decimal"
)

func d(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func TestSalesMarkdown(t *testing.T) {
	sales := []resalehub.Sale{{
		ID:        "s1",
		ItemName:  "Air Max 90",
		Customer:  "Alice",
		Platform:  "vinted",
		SalePrice: d(100),
		Fees:      d(10),
		Profit:    d(50),
		Date:      date.New(2025, time.June, 1),
		Status:    resalehub.SaleCompleted,
	}}

	want := strings.Join([]string{
		"# Sales",
		"",
		"| ID | Item | Customer | Platform | Date | Status | Price | Fees | Profit |",
		"|:---|:---|:---|:---|:---|:---|:---|:---|:---|",
		"| s1 | Air Max 90 | Alice | vinted | 2025-06-01 | completed | €100.00 | €10.00 | +€50.00 |",
		"|  | **Total** |  |  |  |  | €100.00 | €10.00 | +€50.00 |",
		"",
	}, "\n")

	if got := SalesMarkdown(sales, resalehub.EUR); got != want {
		t.Errorf("mismatch:\n--- want\n%s\n--- got\n%s", want, got)
	}
}

func TestSalesMarkdown_Empty(t *testing.T) {
	got := SalesMarkdown(nil, resalehub.EUR)
	if !strings.Contains(got, "No sales.") {
		t.Errorf("got %q", got)
	}
}

func TestMonthlyMarkdown(t *testing.T) {
	report := &resalehub.MonthlyReport{
		Currency: resalehub.EUR,
		Rows: []resalehub.MonthlyRow{
			{
				Month:   date.CalMonth{Y: 2025, M: time.May},
				Sales:   1,
				Revenue: resalehub.M(100, resalehub.EUR),
				Fees:    resalehub.M(10, resalehub.EUR),
				Profit:  resalehub.M(50, resalehub.EUR),
			},
			{
				Month:   date.CalMonth{Y: 2025, M: time.June},
				Revenue: resalehub.M(0, resalehub.EUR),
				Fees:    resalehub.M(0, resalehub.EUR),
				Profit:  resalehub.M(0, resalehub.EUR),
			},
		},
	}

	want := strings.Join([]string{
		"# Monthly Sales",
		"",
		"| Month | Sales | Revenue | Fees | Profit |",
		"|:---|:---|:---|:---|:---|",
		"| 2025-05 | 1 | €100.00 | €10.00 | +€50.00 |",
		"| 2025-06 | 0 | €0.00 | €0.00 | - |",
		"",
	}, "\n")

	if got := MonthlyMarkdown(report); got != want {
		t.Errorf("mismatch:\n--- want\n%s\n--- got\n%s", want, got)
	}
}

func TestSummaryMarkdown(t *testing.T) {
	sum := &resalehub.Summary{
		Date:           date.New(2025, time.August, 1),
		Currency:       resalehub.EUR,
		ItemCount:      3,
		ItemsByStatus:  map[resalehub.ItemStatus]int{resalehub.ItemActive: 1, resalehub.ItemSold: 2},
		InventoryCost:  resalehub.M(30, resalehub.EUR),
		InventoryValue: resalehub.M(60, resalehub.EUR),
		OrderCount:     1,
		OrderSpend:     resalehub.M(125, resalehub.EUR),
		SaleCount:      2,
		Revenue:        resalehub.M(220, resalehub.EUR),
		Fees:           resalehub.M(30, resalehub.EUR),
		Profit:         resalehub.M(95, resalehub.EUR),
		AverageMargin:  43.2,
		CustomerCount:  2,
	}

	got := SummaryMarkdown(sum)
	for _, want := range []string{
		"# Business Summary on 2025-08-01",
		"| all | 3 |",
		"| active | 1 |",
		"| sold | 2 |",
		"Unsold stock cost €30.00 and is listed for €60.00.",
		"| Revenue | €220.00 |",
		"| Profit | +€95.00 |",
		"| Average margin | 43.2% |",
		"| Customers | 2 |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
	// Statuses render in a stable order.
	if strings.Index(got, "| active |") > strings.Index(got, "| sold |") {
		t.Error("statuses not sorted")
	}
}

func TestInventoryMarkdown(t *testing.T) {
	items := []resalehub.InventoryItem{{
		ID:            "i1",
		Name:          "Dunk Low",
		Brand:         "Nike",
		Status:        resalehub.ItemActive,
		PurchasePrice: d(55),
		CurrentPrice:  d(110),
		PurchaseDate:  date.New(2025, time.March, 1),
	}}

	got := InventoryMarkdown(items, resalehub.USD)
	if !strings.Contains(got, "| i1 | Dunk Low | Nike | - | active | $55.00 | $110.00 | - | 2025-03-01 |") {
		t.Errorf("unexpected row in:\n%s", got)
	}
}

func TestCustomersMarkdown(t *testing.T) {
	got := CustomersMarkdown("Top Customers", []resalehub.Customer{{
		ID:             "c1",
		Name:           "Alice",
		Platform:       "vinted",
		TotalPurchases: 4,
		LastPurchase:   date.New(2025, time.July, 4),
	}})
	if !strings.Contains(got, "# Top Customers") {
		t.Errorf("missing title in:\n%s", got)
	}
	if !strings.Contains(got, "| c1 | Alice | vinted | 4 | 2025-07-04 | - |") {
		t.Errorf("unexpected row in:\n%s", got)
	}
}

func TestPlatformsMarkdown(t *testing.T) {
	report := &resalehub.PlatformReport{
		Currency: resalehub.EUR,
		Rows: []resalehub.PlatformRow{
			{Platform: "ebay", Sales: 1, Revenue: resalehub.M(120, resalehub.EUR), Profit: resalehub.M(45, resalehub.EUR)},
			{Platform: "", Sales: 1, Revenue: resalehub.M(50, resalehub.EUR), Profit: resalehub.M(-5, resalehub.EUR)},
		},
	}

	got := PlatformsMarkdown(report)
	if !strings.Contains(got, "| ebay | 1 | €120.00 | +€45.00 |") {
		t.Errorf("unexpected ebay row in:\n%s", got)
	}
	if !strings.Contains(got, "| - | 1 | €50.00 | -€5.00 |") {
		t.Errorf("unexpected blank-platform row in:\n%s", got)
	}
}

func TestOrderItemsMarkdown(t *testing.T) {
	o := resalehub.Order{
		ID:        "o1",
		Name:      "spring batch",
		Date:      date.New(2025, time.April, 1),
		Status:    resalehub.OrderCompleted,
		Supplier:  "wholesaler",
		TotalCost: d(95),
		ItemCount: 2,
	}
	items := []resalehub.InventoryItem{
		{ID: "i1", Name: "Air Max 90", Status: resalehub.ItemSold, PurchasePrice: d(40), CurrentPrice: d(80)},
		{ID: "i2", Name: "Dunk Low", Status: resalehub.ItemActive, PurchasePrice: d(55), CurrentPrice: d(110)},
	}

	got := OrderItemsMarkdown(o, items, resalehub.EUR)
	for _, want := range []string{
		"# Order spring batch",
		"2025-04-01, completed, 2 items for €95.00.",
		"Supplier: wholesaler",
		"| i2 | Dunk Low | active | €55.00 | €110.00 |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}
