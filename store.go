package resalehub

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"slices"
	"strings"
	"sync"

	"github.com/resalehub/resalehub/date"
	"github.com/shopspring/decimal"
)

// ErrItemNotFound is returned by MarkItemSold when the item id is unknown.
var ErrItemNotFound = errors.New("inventory item not found")

// ErrItemNotSellable is returned by MarkItemSold when the item is not in a
// sellable status (already sold, inactive or shipping).
var ErrItemNotSellable = errors.New("inventory item is not sellable")

// storeState holds the four entity sequences. Each sequence is
// insertion-ordered and is always replaced wholesale on mutation, never
// modified in place.
type storeState struct {
	inventory []InventoryItem
	orders    []Order
	sales     []Sale
	customers []Customer
}

func (s storeState) clone() storeState {
	return storeState{
		inventory: slices.Clone(s.inventory),
		orders:    slices.Clone(s.orders),
		sales:     slices.Clone(s.sales),
		customers: slices.Clone(s.customers),
	}
}

// Store is the single source of truth for inventory items, orders, sales and
// customers. It is an explicit context object: construct one at startup and
// pass it to consumers.
//
// Every mutation builds new sequences and swaps them in under the lock, so a
// failing operation leaves the committed state untouched and readers never
// observe an intermediate state.
type Store struct {
	mu    sync.RWMutex
	state storeState
}

// NewStore creates an empty store.
func NewStore() *Store { return &Store{} }

// newID returns a fresh opaque identifier. Ids are random and never reused.
func newID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b[:])
}

// Inventory returns a copy of the inventory sequence in insertion order.
func (s *Store) Inventory() []InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.state.inventory)
}

// Orders returns a copy of the order sequence in insertion order.
func (s *Store) Orders() []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.state.orders)
}

// Sales returns a copy of the sale sequence in insertion order.
func (s *Store) Sales() []Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.state.sales)
}

// Customers returns a copy of the customer sequence in insertion order.
func (s *Store) Customers() []Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.state.customers)
}

// InventoryItem retrieves an item by id.
func (s *Store) InventoryItem(id string) (InventoryItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.state.inventory {
		if it.ID == id {
			return it, true
		}
	}
	return InventoryItem{}, false
}

// Order retrieves an order by id.
func (s *Store) Order(id string) (Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.state.orders {
		if o.ID == id {
			return o, true
		}
	}
	return Order{}, false
}

// Sale retrieves a sale by id.
func (s *Store) Sale(id string) (Sale, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sl := range s.state.sales {
		if sl.ID == id {
			return sl, true
		}
	}
	return Sale{}, false
}

// Customer retrieves a customer by id.
func (s *Store) Customer(id string) (Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.state.customers {
		if c.ID == id {
			return c, true
		}
	}
	return Customer{}, false
}

// AddInventoryItem assigns a fresh id to the item, appends it to the
// inventory sequence and returns the stored copy.
func (s *Store) AddInventoryItem(it InventoryItem) InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	it.ID = newID()
	s.state.inventory = append(slices.Clone(s.state.inventory), it)
	return it
}

// UpdateInventoryItem applies mutate to the matching item. It reports false
// and leaves the sequence unchanged when the id is unknown. The id itself
// cannot be changed.
func (s *Store) UpdateInventoryItem(id string, mutate func(*InventoryItem)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, it := range s.state.inventory {
		if it.ID == id {
			mutate(&it)
			it.ID = id
			next := slices.Clone(s.state.inventory)
			next[i] = it
			s.state.inventory = next
			return true
		}
	}
	return false
}

// DeleteInventoryItem removes the matching item. Orders and sales that
// reference it keep their reference: there is no cascade. Unknown ids are
// tolerated and reported as false.
func (s *Store) DeleteInventoryItem(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := slices.DeleteFunc(slices.Clone(s.state.inventory), func(it InventoryItem) bool { return it.ID == id })
	if len(next) == len(s.state.inventory) {
		return false
	}
	s.state.inventory = next
	return true
}

// AddOrder assigns a fresh id to the order, appends it and returns the
// stored copy.
func (s *Store) AddOrder(o Order) Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	o.ID = newID()
	s.state.orders = append(slices.Clone(s.state.orders), o)
	return o
}

// AddOrderWithItems creates an order and its items in one atomic step. Every
// item receives a fresh id and the new order's id; the order's TotalCost is
// the sum of the items' purchase prices and its ItemCount the number of
// items, both fixed at creation time.
func (s *Store) AddOrderWithItems(o Order, items []InventoryItem) (Order, []InventoryItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o.ID = newID()
	o.ItemCount = len(items)
	total := decimal.Zero
	stored := make([]InventoryItem, 0, len(items))
	for _, it := range items {
		it.ID = newID()
		it.OrderID = o.ID
		total = total.Add(it.PurchasePrice)
		stored = append(stored, it)
	}
	o.TotalCost = total

	s.state.orders = append(slices.Clone(s.state.orders), o)
	s.state.inventory = append(slices.Clone(s.state.inventory), stored...)
	return o, stored
}

// UpdateOrder applies mutate to the matching order; false when absent.
func (s *Store) UpdateOrder(id string, mutate func(*Order)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, o := range s.state.orders {
		if o.ID == id {
			mutate(&o)
			o.ID = id
			next := slices.Clone(s.state.orders)
			next[i] = o
			s.state.orders = next
			return true
		}
	}
	return false
}

// DeleteOrder removes the matching order. Items referencing it are neither
// removed nor unlinked: their OrderID becomes an orphaned reference.
func (s *Store) DeleteOrder(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := slices.DeleteFunc(slices.Clone(s.state.orders), func(o Order) bool { return o.ID == id })
	if len(next) == len(s.state.orders) {
		return false
	}
	s.state.orders = next
	return true
}

// AddSale appends a sale record as-is (fresh id, no bookkeeping). It does
// not touch the sold item's status or any customer aggregate; only
// MarkItemSold does that.
func (s *Store) AddSale(sl Sale) Sale {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl.ID = newID()
	s.state.sales = append(slices.Clone(s.state.sales), sl)
	return sl
}

// UpdateSale applies mutate to the matching sale; false when absent.
func (s *Store) UpdateSale(id string, mutate func(*Sale)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sl := range s.state.sales {
		if sl.ID == id {
			mutate(&sl)
			sl.ID = id
			next := slices.Clone(s.state.sales)
			next[i] = sl
			s.state.sales = next
			return true
		}
	}
	return false
}

// DeleteSale removes the matching sale. It does not revert the sold item's
// status nor adjust customer aggregates.
func (s *Store) DeleteSale(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := slices.DeleteFunc(slices.Clone(s.state.sales), func(sl Sale) bool { return sl.ID == id })
	if len(next) == len(s.state.sales) {
		return false
	}
	s.state.sales = next
	return true
}

// AddCustomer appends a customer with a fresh id. Names are not checked for
// uniqueness; uniqueness is only assumed by the matching in MarkItemSold.
func (s *Store) AddCustomer(c Customer) Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = newID()
	s.state.customers = append(slices.Clone(s.state.customers), c)
	return c
}

// UpdateCustomer applies mutate to the matching customer; false when absent.
func (s *Store) UpdateCustomer(id string, mutate func(*Customer)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.state.customers {
		if c.ID == id {
			mutate(&c)
			c.ID = id
			next := slices.Clone(s.state.customers)
			next[i] = c
			s.state.customers = next
			return true
		}
	}
	return false
}

// DeleteCustomer removes the matching customer; false when absent.
func (s *Store) DeleteCustomer(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := slices.DeleteFunc(slices.Clone(s.state.customers), func(c Customer) bool { return c.ID == id })
	if len(next) == len(s.state.customers) {
		return false
	}
	s.state.customers = next
	return true
}

// ItemsByOrder returns the inventory items whose OrderID equals orderID, in
// insertion order. The result is recomputed on each call; an unknown order
// id yields an empty sequence.
func (s *Store) ItemsByOrder(orderID string) []InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var items []InventoryItem
	for _, it := range s.state.inventory {
		if it.OrderID == orderID {
			items = append(items, it)
		}
	}
	return items
}

// CustomerByName returns the first customer whose name matches
// case-insensitively.
func (s *Store) CustomerByName(name string) (Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return findCustomer(s.state.customers, name)
}

func findCustomer(customers []Customer, name string) (Customer, bool) {
	for _, c := range customers {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return Customer{}, false
}

// SaleDetails carries the caller-provided fields of a sale recorded through
// MarkItemSold. ItemName, PurchasePrice, Profit and Image are derived from
// the item and must not be supplied.
type SaleDetails struct {
	Customer       string
	Platform       string
	SalePrice      decimal.Decimal
	Fees           decimal.Decimal
	Date           date.Date
	Status         SaleStatus
	TrackingNumber string
	CustomerEmail  string
	CustomerPhone  string
}

// MarkItemSold records the sale of the item with the given id.
//
// In one atomic step it appends a Sale carrying the item's name, purchase
// price and image, with profit = salePrice - purchasePrice - fees fixed at
// this moment; flips the item's status to sold; and either increments the
// matching customer's TotalPurchases (matched by case-insensitive name) or
// creates that customer with TotalPurchases 1.
//
// Items whose status is not active or pending are rejected with
// ErrItemNotSellable: re-selling a sold item would double-count profit and
// customer aggregates. Editing a sold item back to active through
// UpdateInventoryItem remains possible as a deliberate manual override that
// bypasses all sale bookkeeping.
func (s *Store) MarkItemSold(itemID string, d SaleDetails) (Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.clone()

	idx := slices.IndexFunc(next.inventory, func(it InventoryItem) bool { return it.ID == itemID })
	if idx < 0 {
		return Sale{}, ErrItemNotFound
	}
	item := next.inventory[idx]
	if !item.Status.Sellable() {
		return Sale{}, ErrItemNotSellable
	}

	sale := Sale{
		ID:             newID(),
		ItemID:         item.ID,
		ItemName:       item.Name,
		Customer:       d.Customer,
		Platform:       d.Platform,
		SalePrice:      d.SalePrice,
		PurchasePrice:  item.PurchasePrice,
		Fees:           d.Fees,
		Profit:         d.SalePrice.Sub(item.PurchasePrice).Sub(d.Fees),
		Date:           d.Date,
		Status:         d.Status,
		Image:          item.Image,
		TrackingNumber: d.TrackingNumber,
		CustomerEmail:  d.CustomerEmail,
		CustomerPhone:  d.CustomerPhone,
	}

	item.Status = ItemSold
	next.inventory[idx] = item
	next.sales = append(next.sales, sale)

	if existing, ok := findCustomer(next.customers, d.Customer); ok {
		for i, c := range next.customers {
			if c.ID == existing.ID {
				c.TotalPurchases++
				c.LastPurchase = d.Date
				next.customers[i] = c
				break
			}
		}
	} else {
		next.customers = append(next.customers, Customer{
			ID:             newID(),
			Name:           d.Customer,
			Platform:       d.Platform,
			TotalPurchases: 1,
			LastPurchase:   d.Date,
		})
	}

	// Commit: swap the whole state in one assignment.
	s.state = next
	return sale, nil
}
