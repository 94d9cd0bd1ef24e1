package resalehub

import (
	"sort"
	"strings"

	"github.com/resalehub/resalehub/date"
	"github.com/shopspring/decimal"
)

// Summary provides an at-a-glance overview of the business: stock levels,
// money tied up in inventory, and realized performance. Everything is
// derived from the store on each call; nothing is cached.
type Summary struct {
	Date     date.Date
	Currency string

	ItemCount     int
	ItemsByStatus map[ItemStatus]int
	// InventoryCost and InventoryValue cover unsold items only: what the
	// remaining stock cost, and what it is listed for.
	InventoryCost  Money
	InventoryValue Money

	OrderCount int
	OrderSpend Money

	SaleCount     int
	Revenue       Money
	Fees          Money
	Profit        Money
	AverageMargin float64 // percent of revenue kept as profit

	CustomerCount int
}

// NewSummary computes the summary of the store in the given display
// currency.
func NewSummary(s *Store, currency string) *Summary {
	sum := &Summary{
		Date:          date.Today(),
		Currency:      currency,
		ItemsByStatus: make(map[ItemStatus]int),
	}

	cost, value := decimal.Zero, decimal.Zero
	for _, it := range s.Inventory() {
		sum.ItemCount++
		sum.ItemsByStatus[it.Status]++
		if it.Status != ItemSold {
			cost = cost.Add(it.PurchasePrice)
			value = value.Add(it.CurrentPrice)
		}
	}
	sum.InventoryCost = M(cost, currency)
	sum.InventoryValue = M(value, currency)

	spend := decimal.Zero
	for _, o := range s.Orders() {
		sum.OrderCount++
		spend = spend.Add(o.TotalCost)
	}
	sum.OrderSpend = M(spend, currency)

	revenue, fees, profit := decimal.Zero, decimal.Zero, decimal.Zero
	for _, sl := range s.Sales() {
		sum.SaleCount++
		revenue = revenue.Add(sl.SalePrice)
		fees = fees.Add(sl.Fees)
		profit = profit.Add(sl.Profit)
	}
	sum.Revenue = M(revenue, currency)
	sum.Fees = M(fees, currency)
	sum.Profit = M(profit, currency)
	if !revenue.IsZero() {
		sum.AverageMargin = profit.Div(revenue).Mul(decimal.NewFromInt(100)).InexactFloat64()
	}

	sum.CustomerCount = len(s.Customers())
	return sum
}

// MonthlyRow aggregates the sales of one calendar month.
type MonthlyRow struct {
	Month   date.CalMonth
	Sales   int
	Revenue Money
	Fees    Money
	Profit  Money
}

// MonthlyReport breaks sales down per calendar month, including empty
// months, so the series plots without gaps.
type MonthlyReport struct {
	Currency string
	Rows     []MonthlyRow
}

// NewMonthlyReport aggregates sales per month over the given range. A zero
// from/to bound expands to the first/last sale date.
func NewMonthlyReport(s *Store, from, to date.Date, currency string) *MonthlyReport {
	sales := s.Sales()

	if from.IsZero() || to.IsZero() {
		for _, sl := range sales {
			if sl.Date.IsZero() {
				continue
			}
			if from.IsZero() || sl.Date.Before(from) {
				from = sl.Date
			}
			if to.IsZero() || sl.Date.After(to) {
				to = sl.Date
			}
		}
	}

	report := &MonthlyReport{Currency: currency}
	if from.IsZero() {
		return report // no dated sales at all
	}

	type bucket struct {
		revenue, fees, profit decimal.Decimal
		count                 int
	}
	buckets := make(map[date.CalMonth]*bucket)
	for _, sl := range sales {
		if sl.Date.IsZero() || sl.Date.Before(from) || sl.Date.After(to) {
			continue
		}
		m := date.MonthOf(sl.Date)
		b := buckets[m]
		if b == nil {
			b = &bucket{}
			buckets[m] = b
		}
		b.count++
		b.revenue = b.revenue.Add(sl.SalePrice)
		b.fees = b.fees.Add(sl.Fees)
		b.profit = b.profit.Add(sl.Profit)
	}

	last := date.MonthOf(to)
	for m := date.MonthOf(from); !last.Before(m); m = m.Next() {
		row := MonthlyRow{
			Month:   m,
			Revenue: M(decimal.Zero, currency),
			Fees:    M(decimal.Zero, currency),
			Profit:  M(decimal.Zero, currency),
		}
		if b := buckets[m]; b != nil {
			row.Sales = b.count
			row.Revenue = M(b.revenue, currency)
			row.Fees = M(b.fees, currency)
			row.Profit = M(b.profit, currency)
		}
		report.Rows = append(report.Rows, row)
	}
	return report
}

// PlatformRow aggregates the sales recorded on one platform.
type PlatformRow struct {
	Platform string
	Sales    int
	Revenue  Money
	Profit   Money
}

// PlatformReport breaks sales down per platform, sorted by revenue.
type PlatformReport struct {
	Currency string
	Rows     []PlatformRow
}

// NewPlatformReport aggregates all sales per platform.
func NewPlatformReport(s *Store, currency string) *PlatformReport {
	type bucket struct {
		revenue, profit decimal.Decimal
		count           int
	}
	buckets := make(map[string]*bucket)
	for _, sl := range s.Sales() {
		b := buckets[sl.Platform]
		if b == nil {
			b = &bucket{}
			buckets[sl.Platform] = b
		}
		b.count++
		b.revenue = b.revenue.Add(sl.SalePrice)
		b.profit = b.profit.Add(sl.Profit)
	}

	report := &PlatformReport{Currency: currency}
	for platform, b := range buckets {
		report.Rows = append(report.Rows, PlatformRow{
			Platform: platform,
			Sales:    b.count,
			Revenue:  M(b.revenue, currency),
			Profit:   M(b.profit, currency),
		})
	}
	sort.Slice(report.Rows, func(i, j int) bool {
		a, b := report.Rows[i], report.Rows[j]
		if !a.Revenue.Equal(b.Revenue) {
			return b.Revenue.LessThan(a.Revenue)
		}
		return strings.Compare(a.Platform, b.Platform) < 0
	})
	return report
}

// TopCustomers returns up to n customers ordered by purchase count, ties
// broken by most recent purchase.
func TopCustomers(s *Store, n int) []Customer {
	customers := s.Customers()
	sort.SliceStable(customers, func(i, j int) bool {
		a, b := customers[i], customers[j]
		if a.TotalPurchases != b.TotalPurchases {
			return a.TotalPurchases > b.TotalPurchases
		}
		return b.LastPurchase.Before(a.LastPurchase)
	})
	if n > 0 && len(customers) > n {
		customers = customers[:n]
	}
	return customers
}
