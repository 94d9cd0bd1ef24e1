package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/resalehub/resalehub"
)

type importSalesCmd struct {
	file     string
	platform string

	records       string
	item          string
	customer      string
	price         string
	purchasePrice string
	fees          string
	date          string
}

func (*importSalesCmd) Name() string     { return "import-sales" }
func (*importSalesCmd) Synopsis() string { return "import sale records from a platform export" }
func (*importSalesCmd) Usage() string {
	return `rhub import-sales -file <export.json> -platform <platform> [mapping flags]

  Imports sale records from a platform export file. Imported sales do not
  reference inventory items and do not touch item statuses or customers.
  Fields are located with JSONPath expressions; the defaults read a flat
  list of records (see 'rhub topic importing').

Usage Examples:
$ rhub import-sales -file vinted.json -platform vinted
$ rhub import-sales -file export.json -platform ebay -records '$.orders[*]' -item '$.title'

`
}

func (c *importSalesCmd) SetFlags(f *flag.FlagSet) {
	m := resalehub.DefaultSaleImportMapping()
	f.StringVar(&c.file, "file", "", "Export file to read")
	f.StringVar(&c.platform, "platform", "", "Platform the export comes from")
	f.StringVar(&c.records, "records", m.Records, "JSONPath selecting the record list")
	f.StringVar(&c.item, "item", m.ItemName, "JSONPath to the item name")
	f.StringVar(&c.customer, "customer", m.Customer, "JSONPath to the buyer name")
	f.StringVar(&c.price, "price", m.SalePrice, "JSONPath to the sale price")
	f.StringVar(&c.purchasePrice, "purchase-price", m.PurchasePrice, "JSONPath to the purchase price (optional)")
	f.StringVar(&c.fees, "fees", m.Fees, "JSONPath to the fees (optional)")
	f.StringVar(&c.date, "date", m.Date, "JSONPath to the sale date")
}

func (c *importSalesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" || c.platform == "" {
		fmt.Fprintln(os.Stderr, "Error: -file and -platform are required")
		return subcommands.ExitUsageError
	}

	in, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not open export: %v\n", err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	sales, err := resalehub.ImportSales(in, resalehub.SaleImportMapping{
		Records:       c.records,
		ItemName:      c.item,
		Customer:      c.customer,
		SalePrice:     c.price,
		PurchasePrice: c.purchasePrice,
		Fees:          c.fees,
		Date:          c.date,
	}, c.platform)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not import: %v\n", err)
		return subcommands.ExitFailure
	}

	s, err := loadStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load data: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, sale := range sales {
		s.AddSale(sale)
	}
	if err := saveStore(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not save data: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %d sales from %s\n", len(sales), c.file)
	return subcommands.ExitSuccess
}
