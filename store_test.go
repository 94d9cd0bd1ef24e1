package resalehub

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/resalehub/resalehub/date"
	"github.com/shopspring/decimal"
)

func d(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func testItem(name string, status ItemStatus, purchase float64) InventoryItem {
	return InventoryItem{
		Name:          name,
		Brand:         "Nike",
		Size:          "42",
		Category:      "sneakers",
		PurchasePrice: d(purchase),
		CurrentPrice:  d(purchase * 2),
		Status:        status,
		Location:      "shelf A",
		PurchaseDate:  date.New(2025, time.March, 1),
	}
}

func TestStore_AddThenLookup(t *testing.T) {
	s := NewStore()

	in := testItem("Air Max 90", ItemActive, 40)
	stored := s.AddInventoryItem(in)
	if stored.ID == "" {
		t.Fatal("AddInventoryItem did not assign an id")
	}
	in.ID = stored.ID
	if !reflect.DeepEqual(stored, in) {
		t.Errorf("stored item differs from input: got %+v want %+v", stored, in)
	}

	got, ok := s.InventoryItem(stored.ID)
	if !ok {
		t.Fatalf("item %q not found after add", stored.ID)
	}
	if !reflect.DeepEqual(got, stored) {
		t.Errorf("lookup = %+v, want %+v", got, stored)
	}

	// Ids are unique across adds.
	other := s.AddInventoryItem(testItem("Dunk Low", ItemPending, 55))
	if other.ID == stored.ID {
		t.Errorf("two adds produced the same id %q", stored.ID)
	}
}

func TestStore_UpdateUnknownIDIsNoop(t *testing.T) {
	s := NewStore()
	s.AddInventoryItem(testItem("Air Max 90", ItemActive, 40))
	before := s.Inventory()

	if s.UpdateInventoryItem("nope", func(it *InventoryItem) { it.Name = "changed" }) {
		t.Error("UpdateInventoryItem reported applied for an unknown id")
	}
	if s.DeleteInventoryItem("nope") {
		t.Error("DeleteInventoryItem reported applied for an unknown id")
	}
	if !reflect.DeepEqual(s.Inventory(), before) {
		t.Error("sequence changed after no-op update/delete")
	}
}

func TestStore_UpdateMergesFields(t *testing.T) {
	s := NewStore()
	it := s.AddInventoryItem(testItem("Air Max 90", ItemActive, 40))

	applied := s.UpdateInventoryItem(it.ID, func(m *InventoryItem) {
		m.CurrentPrice = d(95)
		m.Status = ItemShipping
		m.ID = "tampered" // must be ignored
	})
	if !applied {
		t.Fatal("update not applied")
	}
	got, _ := s.InventoryItem(it.ID)
	if !got.CurrentPrice.Equal(d(95)) || got.Status != ItemShipping {
		t.Errorf("update not merged: %+v", got)
	}
	if got.Name != "Air Max 90" {
		t.Errorf("untouched field changed: %q", got.Name)
	}
}

func TestStore_CopyOnWrite(t *testing.T) {
	s := NewStore()
	it := s.AddInventoryItem(testItem("Air Max 90", ItemActive, 40))

	snapshot := s.Inventory()
	s.UpdateInventoryItem(it.ID, func(m *InventoryItem) { m.Name = "renamed" })

	if snapshot[0].Name != "Air Max 90" {
		t.Error("a previously read snapshot was mutated in place")
	}
}

func TestStore_AddOrderWithItems(t *testing.T) {
	s := NewStore()
	o, items := s.AddOrderWithItems(
		Order{Name: "May batch", Date: date.New(2025, time.May, 2), Status: OrderCompleted},
		[]InventoryItem{
			testItem("Air Max 90", ItemActive, 40),
			testItem("Dunk Low", ItemActive, 55),
		},
	)

	if o.ItemCount != 2 {
		t.Errorf("ItemCount = %d, want 2", o.ItemCount)
	}
	if !o.TotalCost.Equal(d(95)) {
		t.Errorf("TotalCost = %s, want 95", o.TotalCost)
	}
	for _, it := range items {
		if it.OrderID != o.ID {
			t.Errorf("item %q not linked to order %q", it.ID, o.ID)
		}
	}

	got := s.ItemsByOrder(o.ID)
	if !reflect.DeepEqual(got, items) {
		t.Errorf("ItemsByOrder = %+v, want %+v", got, items)
	}
}

func TestStore_ItemsByOrder(t *testing.T) {
	s := NewStore()
	o, _ := s.AddOrderWithItems(Order{Name: "batch"}, []InventoryItem{
		testItem("first", ItemActive, 10),
		testItem("second", ItemActive, 20),
	})
	s.AddInventoryItem(testItem("loose", ItemActive, 30))

	got := s.ItemsByOrder(o.ID)
	if len(got) != 2 || got[0].Name != "first" || got[1].Name != "second" {
		t.Errorf("ItemsByOrder returned wrong items or order: %+v", got)
	}
	if got := s.ItemsByOrder("unknown-order"); len(got) != 0 {
		t.Errorf("unknown order yielded %d items", len(got))
	}
}

func TestStore_DeleteOrderDoesNotCascade(t *testing.T) {
	s := NewStore()
	o, items := s.AddOrderWithItems(Order{Name: "batch"}, []InventoryItem{
		testItem("kept", ItemActive, 10),
	})

	if !s.DeleteOrder(o.ID) {
		t.Fatal("order not deleted")
	}
	got, ok := s.InventoryItem(items[0].ID)
	if !ok {
		t.Fatal("item deleted alongside its order")
	}
	if got.OrderID != o.ID {
		t.Errorf("item unlinked from deleted order: OrderID = %q", got.OrderID)
	}
}

func TestStore_MarkItemSold(t *testing.T) {
	s := NewStore()
	it := s.AddInventoryItem(testItem("Air Max 90", ItemActive, 40))

	sale, err := s.MarkItemSold(it.ID, SaleDetails{
		Customer:  "Alice",
		Platform:  "vinted",
		SalePrice: d(100),
		Fees:      d(10),
		Date:      date.New(2025, time.June, 1),
		Status:    SaleCompleted,
	})
	if err != nil {
		t.Fatalf("MarkItemSold: %v", err)
	}

	if !sale.Profit.Equal(d(50)) {
		t.Errorf("profit = %s, want 50", sale.Profit)
	}
	if sale.ItemName != "Air Max 90" || !sale.PurchasePrice.Equal(d(40)) {
		t.Errorf("sale did not copy item fields: %+v", sale)
	}

	got, _ := s.InventoryItem(it.ID)
	if got.Status != ItemSold {
		t.Errorf("item status = %q, want sold", got.Status)
	}

	customers := s.Customers()
	if len(customers) != 1 {
		t.Fatalf("customer count = %d, want 1", len(customers))
	}
	c := customers[0]
	if c.Name != "Alice" || c.TotalPurchases != 1 || c.Platform != "vinted" {
		t.Errorf("created customer = %+v", c)
	}
	if c.LastPurchase != sale.Date {
		t.Errorf("LastPurchase = %v, want %v", c.LastPurchase, sale.Date)
	}
}

func TestStore_MarkItemSold_MatchesCustomerCaseInsensitively(t *testing.T) {
	s := NewStore()
	existing := s.AddCustomer(Customer{Name: "ALICE", Platform: "ebay", TotalPurchases: 3})
	it := s.AddInventoryItem(testItem("Dunk Low", ItemPending, 55))

	sale, err := s.MarkItemSold(it.ID, SaleDetails{
		Customer:  "alice",
		Platform:  "vinted",
		SalePrice: d(80),
		Date:      date.New(2025, time.July, 4),
		Status:    SaleShipped,
	})
	if err != nil {
		t.Fatalf("MarkItemSold: %v", err)
	}

	customers := s.Customers()
	if len(customers) != 1 {
		t.Fatalf("customer count = %d, want 1 (no duplicate created)", len(customers))
	}
	c := customers[0]
	if c.ID != existing.ID || c.TotalPurchases != 4 {
		t.Errorf("existing customer not incremented exactly once: %+v", c)
	}
	if c.LastPurchase != sale.Date {
		t.Errorf("LastPurchase = %v, want %v", c.LastPurchase, sale.Date)
	}
	// Differently-spelled names never merge.
	it2 := s.AddInventoryItem(testItem("Blazer", ItemActive, 30))
	if _, err := s.MarkItemSold(it2.ID, SaleDetails{Customer: "Alicia", SalePrice: d(50)}); err != nil {
		t.Fatalf("MarkItemSold: %v", err)
	}
	if got := len(s.Customers()); got != 2 {
		t.Errorf("customer count = %d, want 2", got)
	}
}

func TestStore_MarkItemSold_RejectsResale(t *testing.T) {
	s := NewStore()
	it := s.AddInventoryItem(testItem("Air Max 90", ItemActive, 40))

	if _, err := s.MarkItemSold(it.ID, SaleDetails{Customer: "Alice", SalePrice: d(100)}); err != nil {
		t.Fatalf("first sale: %v", err)
	}
	_, err := s.MarkItemSold(it.ID, SaleDetails{Customer: "Alice", SalePrice: d(100)})
	if !errors.Is(err, ErrItemNotSellable) {
		t.Fatalf("second sale: got %v, want ErrItemNotSellable", err)
	}

	// The rejected sale must leave no trace.
	if got := len(s.Sales()); got != 1 {
		t.Errorf("sale count = %d, want 1", got)
	}
	c, _ := s.CustomerByName("alice")
	if c.TotalPurchases != 1 {
		t.Errorf("TotalPurchases = %d, want 1", c.TotalPurchases)
	}
}

func TestStore_MarkItemSold_Errors(t *testing.T) {
	s := NewStore()
	inactive := s.AddInventoryItem(testItem("boxed", ItemInactive, 10))

	testCases := []struct {
		name   string
		itemID string
		want   error
	}{
		{name: "unknown id", itemID: "missing", want: ErrItemNotFound},
		{name: "inactive item", itemID: inactive.ID, want: ErrItemNotSellable},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.MarkItemSold(tc.itemID, SaleDetails{Customer: "Bob", SalePrice: d(5)})
			if !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
			if len(s.Sales()) != 0 || len(s.Customers()) != 0 {
				t.Error("failed sale left state behind")
			}
		})
	}
}

func TestStore_AddSaleDoesNoBookkeeping(t *testing.T) {
	s := NewStore()
	it := s.AddInventoryItem(testItem("Air Max 90", ItemActive, 40))

	s.AddSale(Sale{ItemID: it.ID, ItemName: it.Name, Customer: "Carol", SalePrice: d(70)})

	got, _ := s.InventoryItem(it.ID)
	if got.Status != ItemActive {
		t.Errorf("AddSale changed item status to %q", got.Status)
	}
	if len(s.Customers()) != 0 {
		t.Error("AddSale touched customer aggregates")
	}
}

func TestStore_CustomerByName(t *testing.T) {
	s := NewStore()
	first := s.AddCustomer(Customer{Name: "Grace", Platform: "ebay"})
	s.AddCustomer(Customer{Name: "grace", Platform: "vinted"}) // duplicate, allowed

	got, ok := s.CustomerByName("GRACE")
	if !ok || got.ID != first.ID {
		t.Errorf("CustomerByName returned %+v, want first match %q", got, first.ID)
	}
	if _, ok := s.CustomerByName("nobody"); ok {
		t.Error("CustomerByName found a customer that does not exist")
	}
}
