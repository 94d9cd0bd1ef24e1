package resalehub

import (
	"fmt"

	"github.com/resalehub/resalehub/date"
	"github.com/shopspring/decimal"
)

// ItemStatus is the lifecycle state of an inventory item.
type ItemStatus string

const (
	ItemActive   ItemStatus = "active"
	ItemPending  ItemStatus = "pending"
	ItemSold     ItemStatus = "sold"
	ItemInactive ItemStatus = "inactive"
	ItemShipping ItemStatus = "shipping"
)

// Sellable reports whether an item in this status can go through a sale.
// "inactive" and "shipping" are manual states, and "sold" is terminal.
func (s ItemStatus) Sellable() bool { return s == ItemActive || s == ItemPending }

// ParseItemStatus parses a string into an ItemStatus.
func ParseItemStatus(s string) (ItemStatus, error) {
	switch ItemStatus(s) {
	case ItemActive, ItemPending, ItemSold, ItemInactive, ItemShipping:
		return ItemStatus(s), nil
	default:
		return "", fmt.Errorf("unknown item status: %q", s)
	}
}

// OrderStatus is the state of a purchase order.
type OrderStatus string

const (
	OrderCompleted  OrderStatus = "completed"
	OrderProcessing OrderStatus = "processing"
	OrderPending    OrderStatus = "pending"
)

// ParseOrderStatus parses a string into an OrderStatus.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case OrderCompleted, OrderProcessing, OrderPending:
		return OrderStatus(s), nil
	default:
		return "", fmt.Errorf("unknown order status: %q", s)
	}
}

// SaleStatus is the fulfilment state of a sale.
type SaleStatus string

const (
	SaleCompleted  SaleStatus = "completed"
	SaleDelivered  SaleStatus = "delivered"
	SaleShipped    SaleStatus = "shipped"
	SaleProcessing SaleStatus = "processing"
)

// ParseSaleStatus parses a string into a SaleStatus.
func ParseSaleStatus(s string) (SaleStatus, error) {
	switch SaleStatus(s) {
	case SaleCompleted, SaleDelivered, SaleShipped, SaleProcessing:
		return SaleStatus(s), nil
	default:
		return "", fmt.Errorf("unknown sale status: %q", s)
	}
}

// InventoryItem is a single resale unit tracked from purchase to sale.
//
// OrderID is a weak reference to the Order the item was bought in: it is a
// stored identifier with no ownership semantics, deleting the order leaves
// it dangling on purpose.
type InventoryItem struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Brand          string          `json:"brand"`
	Size           string          `json:"size"`
	Category       string          `json:"category"`
	PurchasePrice  decimal.Decimal `json:"purchasePrice"`
	CurrentPrice   decimal.Decimal `json:"currentPrice"`
	Status         ItemStatus      `json:"status"`
	Location       string          `json:"location"`
	Image          string          `json:"image,omitempty"`
	PurchaseDate   date.Date       `json:"purchaseDate"`
	OrderID        string          `json:"orderId,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	TrackingNumber string          `json:"trackingNumber,omitempty"`
}

// Order is a batch purchase event that may seed one or more inventory items.
// TotalCost and ItemCount are fixed at creation from the items created
// alongside the order.
type Order struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Date           date.Date       `json:"date"`
	TotalCost      decimal.Decimal `json:"totalCost"`
	ItemCount      int             `json:"itemCount"`
	Status         OrderStatus     `json:"status"`
	Supplier       string          `json:"supplier,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	TrackingNumber string          `json:"trackingNumber,omitempty"`
}

// Sale is a completed disposal of one inventory item to a named customer.
//
// ItemName, PurchasePrice and Image are denormalized copies taken from the
// item at sale time. Profit is computed once at creation
// (salePrice - purchasePrice - fees) and never re-derived.
type Sale struct {
	ID             string          `json:"id"`
	ItemID         string          `json:"itemId"`
	ItemName       string          `json:"itemName"`
	Customer       string          `json:"customer"`
	Platform       string          `json:"platform"`
	SalePrice      decimal.Decimal `json:"salePrice"`
	PurchasePrice  decimal.Decimal `json:"purchasePrice"`
	Fees           decimal.Decimal `json:"fees"`
	Profit         decimal.Decimal `json:"profit"`
	Date           date.Date       `json:"date"`
	Status         SaleStatus      `json:"status"`
	Image          string          `json:"image,omitempty"`
	TrackingNumber string          `json:"trackingNumber,omitempty"`
	CustomerEmail  string          `json:"customerEmail,omitempty"`
	CustomerPhone  string          `json:"customerPhone,omitempty"`
}

// Customer is a buyer identity aggregated from sale records.
// Name is the de-facto natural key: sales are matched to customers by
// case-insensitive name equality.
type Customer struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	Platform       string    `json:"platform"`
	TotalPurchases int       `json:"totalPurchases"`
	LastPurchase   date.Date `json:"lastPurchase"`
	Notes          string    `json:"notes,omitempty"`
	Image          string    `json:"image,omitempty"`
}
