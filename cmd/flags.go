package cmd

import (
	"flag"
	"fmt"

	"github.com/resalehub/resalehub/date"
	"github.com/shopspring/decimal"
)

// setFlags returns the set of flag names the user actually passed, so edit
// commands only touch the fields that were given.
func setFlags(f *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	f.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	return set
}

// parseAmount parses a monetary flag value.
func parseAmount(name, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid -%s value %q: %w", name, value, err)
	}
	return d, nil
}

// parseDate parses a date flag value, empty meaning today.
func parseDate(name, value string) (date.Date, error) {
	if value == "" {
		return date.Today(), nil
	}
	d, err := date.Parse(value)
	if err != nil {
		return date.Date{}, fmt.Errorf("invalid -%s value %q: %w", name, value, err)
	}
	return d, nil
}
