package resalehub

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// SchemaVersion tags the persisted store document. A document carrying any
// other version is discarded on load and the store starts empty; there is no
// migration path.
const SchemaVersion = 1

// storeDocument is the persisted layout of the full store state: the four
// entity sequences under a single versioned document.
type storeDocument struct {
	Version   int             `json:"version"`
	Inventory []InventoryItem `json:"inventory"`
	Orders    []Order         `json:"orders"`
	Sales     []Sale          `json:"sales"`
	Customers []Customer      `json:"customers"`
}

// EncodeStore writes the full store state as a single versioned JSON
// document.
func EncodeStore(w io.Writer, s *Store) error {
	s.mu.RLock()
	doc := storeDocument{
		Version:   SchemaVersion,
		Inventory: s.state.inventory,
		Orders:    s.state.orders,
		Sales:     s.state.sales,
		Customers: s.state.customers,
	}
	s.mu.RUnlock()

	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("could not encode store document: %w", err)
	}
	return nil
}

// DecodeStore reads a store document and returns the store it describes.
// A document with a different schema version is discarded: the returned
// store is empty and no error is reported.
func DecodeStore(r io.Reader) (*Store, error) {
	var doc storeDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("could not decode store document: %w", err)
	}
	if doc.Version != SchemaVersion {
		return NewStore(), nil
	}
	return &Store{state: storeState{
		inventory: doc.Inventory,
		orders:    doc.Orders,
		sales:     doc.Sales,
		customers: doc.Customers,
	}}, nil
}
