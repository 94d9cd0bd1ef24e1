package resalehub

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"github.com/resalehub/resalehub/date"
	"github.com/shopspring/decimal"
)

// SaleImportMapping describes where to find sale fields inside a platform
// export document. Records selects the list of sale records; the other
// fields are JSONPath expressions evaluated against each record.
//
// Platforms all export different layouts, so the mapping is caller-supplied;
// the default matches the flat layout `[{"item":..., "buyer":..., ...}]`.
type SaleImportMapping struct {
	Records       string
	ItemName      string
	Customer      string
	SalePrice     string
	PurchasePrice string // optional, missing means 0
	Fees          string // optional, missing means 0
	Date          string
}

// DefaultSaleImportMapping maps a flat list of records with self-describing
// field names.
func DefaultSaleImportMapping() SaleImportMapping {
	return SaleImportMapping{
		Records:   "$[*]",
		ItemName:  "$.item",
		Customer:  "$.buyer",
		SalePrice: "$.price",
		Fees:      "$.fees",
		Date:      "$.date",
	}
}

// ImportSales extracts sale records from a platform export document. The
// returned sales carry no id and no item reference: they describe sales made
// outside the tracked inventory and are meant for Store.AddSale. Profit is
// computed from the extracted amounts, like everywhere else.
func ImportSales(r io.Reader, m SaleImportMapping, platform string) ([]Sale, error) {
	var doc any
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("could not parse export document: %w", err)
	}

	jrecords, err := jsonpath.Get(m.Records, doc)
	if err != nil {
		return nil, fmt.Errorf("could not select records with %q: %w", m.Records, err)
	}
	records, ok := jrecords.([]any)
	if !ok {
		// a single record selection is accepted too
		records = []any{jrecords}
	}

	var sales []Sale
	for i, record := range records {
		itemName, err := pathString(m.ItemName, record)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		customer, err := pathString(m.Customer, record)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		salePrice, err := pathDecimal(m.SalePrice, record, false)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		purchasePrice, err := pathDecimal(m.PurchasePrice, record, true)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		fees, err := pathDecimal(m.Fees, record, true)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		dateStr, err := pathString(m.Date, record)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		on, err := date.Parse(dateStr)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}

		sales = append(sales, Sale{
			ItemName:      itemName,
			Customer:      customer,
			Platform:      platform,
			SalePrice:     salePrice,
			PurchasePrice: purchasePrice,
			Fees:          fees,
			Profit:        salePrice.Sub(purchasePrice).Sub(fees),
			Date:          on,
			Status:        SaleCompleted,
		})
	}
	return sales, nil
}

// pathString evaluates a JSONPath expression expecting a string value.
func pathString(path string, record any) (string, error) {
	jval, err := jsonpath.Get(path, record)
	if err != nil {
		return "", fmt.Errorf("path %q: %w", path, err)
	}
	// jsonpath is never clear about whether it returns a list of one answer
	// or a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	s, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("path %q: not a string: %v", path, jval)
	}
	return s, nil
}

// pathDecimal evaluates a JSONPath expression expecting a numeric value,
// accepting numbers and numeric strings. An empty path yields zero when
// optional.
func pathDecimal(path string, record any, optional bool) (decimal.Decimal, error) {
	if path == "" && optional {
		return decimal.Zero, nil
	}
	jval, err := jsonpath.Get(path, record)
	if err != nil {
		if optional {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("path %q: %w", path, err)
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	switch v := jval.(type) {
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return decimal.Zero, fmt.Errorf("path %q: %w", path, err)
		}
		return d, nil
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero, fmt.Errorf("path %q: %w", path, err)
		}
		return d, nil
	case float64:
		return decimal.NewFromFloat(v), nil
	default:
		return decimal.Zero, fmt.Errorf("path %q: not a number: %v", path, jval)
	}
}
