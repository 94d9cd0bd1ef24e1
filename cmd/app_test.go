package cmd

import (
	"context"
	"flag"
	"strings"
	"testing"

	"github.com/google/subcommands"
	"github.com/resalehub/resalehub"
	"github.com/resalehub/resalehub/date"
	"github.com/shopspring/decimal"
)

func d(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

// tempStorage points the app at a throwaway storage directory.
func tempStorage(t *testing.T) {
	t.Helper()
	old := *storageDir
	*storageDir = t.TempDir()
	t.Cleanup(func() { *storageDir = old })
}

func runCmd(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return c.Execute(context.Background(), f)
}

func TestAddItemThenSell(t *testing.T) {
	tempStorage(t)

	if got := runCmd(t, &addItemCmd{}, "-name", "Air Max 90", "-brand", "Nike", "-price", "40", "-listed", "80"); got != subcommands.ExitSuccess {
		t.Fatalf("add-item = %v", got)
	}

	s, err := loadStore()
	if err != nil {
		t.Fatal(err)
	}
	items := s.Inventory()
	if len(items) != 1 {
		t.Fatalf("inventory = %d items, want 1", len(items))
	}
	id := items[0].ID

	if got := runCmd(t, &sellCmd{}, "-customer", "Alice", "-platform", "vinted", "-price", "100", "-fees", "10", "-d", "2025-06-01", id); got != subcommands.ExitSuccess {
		t.Fatalf("sell = %v", got)
	}

	s, err = loadStore()
	if err != nil {
		t.Fatal(err)
	}
	item, _ := s.InventoryItem(id)
	if item.Status != resalehub.ItemSold {
		t.Errorf("item status = %q, want sold", item.Status)
	}
	sales := s.Sales()
	if len(sales) != 1 || !sales[0].Profit.Equal(d(50)) {
		t.Errorf("sales = %+v", sales)
	}
	if c, ok := s.CustomerByName("alice"); !ok || c.TotalPurchases != 1 {
		t.Errorf("customer = %+v found=%v", c, ok)
	}

	// The item cannot be sold twice.
	if got := runCmd(t, &sellCmd{}, "-customer", "Bob", "-price", "90", id); got != subcommands.ExitFailure {
		t.Errorf("second sell = %v, want failure", got)
	}
}

func TestSell_UnknownItem(t *testing.T) {
	tempStorage(t)
	if got := runCmd(t, &sellCmd{}, "-customer", "Alice", "-price", "10", "missing"); got != subcommands.ExitFailure {
		t.Errorf("sell = %v, want failure", got)
	}
}

func TestEditItem_OnlyGivenFields(t *testing.T) {
	tempStorage(t)
	runCmd(t, &addItemCmd{}, "-name", "Dunk Low", "-price", "55", "-location", "shelf A")

	s, _ := loadStore()
	id := s.Inventory()[0].ID

	if got := runCmd(t, &editItemCmd{}, "-listed", "120", "-status", "pending", id); got != subcommands.ExitSuccess {
		t.Fatalf("edit-item = %v", got)
	}

	s, _ = loadStore()
	item, _ := s.InventoryItem(id)
	if !item.CurrentPrice.Equal(d(120)) || item.Status != resalehub.ItemPending {
		t.Errorf("edited item = %+v", item)
	}
	if item.Name != "Dunk Low" || item.Location != "shelf A" || !item.PurchasePrice.Equal(d(55)) {
		t.Errorf("untouched fields changed: %+v", item)
	}
}

func TestEditItem_RejectsBadStatus(t *testing.T) {
	tempStorage(t)
	runCmd(t, &addItemCmd{}, "-name", "x", "-price", "1")
	s, _ := loadStore()
	id := s.Inventory()[0].ID

	if got := runCmd(t, &editItemCmd{}, "-status", "vanished", id); got != subcommands.ExitUsageError {
		t.Errorf("edit-item = %v, want usage error", got)
	}
}

func TestPromptItems(t *testing.T) {
	in := strings.NewReader("Air Max 90\nNike\n40\n80\nDunk Low\n\n55\n\n")
	var out strings.Builder

	on := date.MustParse("2025-04-01")
	items, err := promptItems(in, &out, 2, on)
	if err != nil {
		t.Fatalf("promptItems: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}
	first := items[0]
	if first.Name != "Air Max 90" || first.Brand != "Nike" || !first.PurchasePrice.Equal(d(40)) || !first.CurrentPrice.Equal(d(80)) {
		t.Errorf("first = %+v", first)
	}
	// A blank listing price falls back to the purchase price.
	second := items[1]
	if second.Brand != "" || !second.CurrentPrice.Equal(d(55)) {
		t.Errorf("second = %+v", second)
	}
	for _, it := range items {
		if it.Status != resalehub.ItemActive || it.PurchaseDate != on {
			t.Errorf("item defaults = %+v", it)
		}
	}
}

func TestPromptItems_RequiresName(t *testing.T) {
	in := strings.NewReader("\n")
	var out strings.Builder
	if _, err := promptItems(in, &out, 1, date.Today()); err == nil {
		t.Error("expected an error for a blank name")
	}
}

func TestAddOrderWithoutItems(t *testing.T) {
	tempStorage(t)
	if got := runCmd(t, &addOrderCmd{}, "-name", "empty batch", "-supplier", "thrift"); got != subcommands.ExitSuccess {
		t.Fatalf("add-order = %v", got)
	}
	s, _ := loadStore()
	orders := s.Orders()
	if len(orders) != 1 || orders[0].ItemCount != 0 || !orders[0].TotalCost.IsZero() {
		t.Errorf("orders = %+v", orders)
	}
}

func TestThemeAndCurrency(t *testing.T) {
	tempStorage(t)

	if got := runCmd(t, &themeCmd{}, "light"); got != subcommands.ExitSuccess {
		t.Fatalf("theme = %v", got)
	}
	if got := runCmd(t, &currencyCmd{}, "USD"); got != subcommands.ExitSuccess {
		t.Fatalf("currency = %v", got)
	}
	settings := loadSettings()
	if settings.Theme != resalehub.ThemeLight || settings.Currency != resalehub.USD {
		t.Errorf("settings = %+v", settings)
	}

	if got := runCmd(t, &currencyCmd{}, "DOGE"); got != subcommands.ExitUsageError {
		t.Errorf("bad currency = %v, want usage error", got)
	}
	// The rejected value must not stick.
	if got := loadSettings().Currency; got != resalehub.USD {
		t.Errorf("currency = %q after rejected set", got)
	}
}

func TestRmCommands(t *testing.T) {
	tempStorage(t)
	runCmd(t, &addItemCmd{}, "-name", "x", "-price", "1")
	s, _ := loadStore()
	id := s.Inventory()[0].ID

	if got := runCmd(t, &rmItemCmd{}, id); got != subcommands.ExitSuccess {
		t.Fatalf("rm-item = %v", got)
	}
	if got := runCmd(t, &rmItemCmd{}, id); got != subcommands.ExitFailure {
		t.Errorf("second rm-item = %v, want failure", got)
	}
	s, _ = loadStore()
	if len(s.Inventory()) != 0 {
		t.Error("item still present after rm-item")
	}
}
