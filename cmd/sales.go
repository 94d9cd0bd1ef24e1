package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/resalehub/resalehub"
	"github.com/resalehub/resalehub/renderer"
)

type sellCmd struct {
	customer string
	platform string
	price    string
	fees     string
	date     string
	status   string
	tracking string
	email    string
	phone    string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record the sale of an inventory item" }
func (*sellCmd) Usage() string {
	return `rhub sell -customer <name> -price <amount> [-fees <amount>] [-platform <platform>] [-d <date>] <item-id>

  Records the sale of an item: creates the sale, marks the item sold, and
  creates or updates the customer. The item must be active or pending.
  Profit is computed as price - purchase price - fees.

Usage Examples:
$ rhub sell 1a2b3c4d -customer Alice -platform vinted -price 100 -fees 10

`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.customer, "customer", "", "Buyer name")
	f.StringVar(&c.platform, "platform", "", "Sale platform")
	f.StringVar(&c.price, "price", "", "Sale price")
	f.StringVar(&c.fees, "fees", "0", "Platform fees")
	f.StringVar(&c.date, "d", "", "Sale date (defaults to today)")
	f.StringVar(&c.status, "status", "completed", "Status (completed, delivered, shipped, processing)")
	f.StringVar(&c.tracking, "tracking", "", "Tracking number")
	f.StringVar(&c.email, "email", "", "Buyer email")
	f.StringVar(&c.phone, "phone", "", "Buyer phone")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id := f.Arg(0)
	if id == "" {
		fmt.Fprintln(os.Stderr, "Error: item id is required")
		return subcommands.ExitUsageError
	}
	if c.customer == "" || c.price == "" {
		fmt.Fprintln(os.Stderr, "Error: -customer and -price are required")
		return subcommands.ExitUsageError
	}
	details, err := c.buildDetails()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	s, err := loadStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load data: %v\n", err)
		return subcommands.ExitFailure
	}
	sale, err := s.MarkItemSold(id, details)
	switch {
	case errors.Is(err, resalehub.ErrItemNotFound):
		fmt.Fprintf(os.Stderr, "Error: no item with id %q\n", id)
		return subcommands.ExitFailure
	case errors.Is(err, resalehub.ErrItemNotSellable):
		fmt.Fprintf(os.Stderr, "Error: item %q cannot be sold in its current status (see 'rhub topic sales')\n", id)
		return subcommands.ExitFailure
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := saveStore(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not save data: %v\n", err)
		return subcommands.ExitFailure
	}
	currency := loadSettings().Currency
	fmt.Printf("Sold %s to %s for %s, profit %s\n",
		sale.ItemName, sale.Customer,
		resalehub.M(sale.SalePrice, currency),
		resalehub.M(sale.Profit, currency).SignedString())
	return subcommands.ExitSuccess
}

func (c *sellCmd) buildDetails() (resalehub.SaleDetails, error) {
	var details resalehub.SaleDetails
	status, err := resalehub.ParseSaleStatus(c.status)
	if err != nil {
		return details, err
	}
	price, err := parseAmount("price", c.price)
	if err != nil {
		return details, err
	}
	fees, err := parseAmount("fees", c.fees)
	if err != nil {
		return details, err
	}
	on, err := parseDate("d", c.date)
	if err != nil {
		return details, err
	}
	return resalehub.SaleDetails{
		Customer:       c.customer,
		Platform:       c.platform,
		SalePrice:      price,
		Fees:           fees,
		Date:           on,
		Status:         status,
		TrackingNumber: c.tracking,
		CustomerEmail:  c.email,
		CustomerPhone:  c.phone,
	}, nil
}

type editSaleCmd struct {
	sellCmd
	item string
}

func (*editSaleCmd) Name() string     { return "edit-sale" }
func (*editSaleCmd) Synopsis() string { return "edit fields of a sale" }
func (*editSaleCmd) Usage() string {
	return `rhub edit-sale [-price <amount>] [-status <status>] ... <sale-id>

  Edits a sale. Only the fields given as flags are changed; nothing is
  recomputed, the stored profit stays as it is.

`
}

func (c *editSaleCmd) SetFlags(f *flag.FlagSet) {
	c.sellCmd.SetFlags(f)
	f.StringVar(&c.item, "item", "", "Sold item name")
}

func (c *editSaleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id := f.Arg(0)
	if id == "" {
		fmt.Fprintln(os.Stderr, "Error: sale id is required")
		return subcommands.ExitUsageError
	}
	set := setFlags(f)

	// Parse only the typed fields that were actually given.
	var details resalehub.SaleDetails
	var err error
	if set["status"] {
		if details.Status, err = resalehub.ParseSaleStatus(c.status); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if set["price"] {
		if details.SalePrice, err = parseAmount("price", c.price); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if set["fees"] {
		if details.Fees, err = parseAmount("fees", c.fees); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if set["d"] {
		if details.Date, err = parseDate("d", c.date); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	details.Customer = c.customer
	details.Platform = c.platform
	details.TrackingNumber = c.tracking
	details.CustomerEmail = c.email
	details.CustomerPhone = c.phone

	s, err := loadStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load data: %v\n", err)
		return subcommands.ExitFailure
	}
	applied := s.UpdateSale(id, func(sl *resalehub.Sale) {
		if set["item"] {
			sl.ItemName = c.item
		}
		if set["customer"] {
			sl.Customer = details.Customer
		}
		if set["platform"] {
			sl.Platform = details.Platform
		}
		if set["price"] {
			sl.SalePrice = details.SalePrice
		}
		if set["fees"] {
			sl.Fees = details.Fees
		}
		if set["d"] {
			sl.Date = details.Date
		}
		if set["status"] {
			sl.Status = details.Status
		}
		if set["tracking"] {
			sl.TrackingNumber = details.TrackingNumber
		}
		if set["email"] {
			sl.CustomerEmail = details.CustomerEmail
		}
		if set["phone"] {
			sl.CustomerPhone = details.CustomerPhone
		}
	})
	if !applied {
		fmt.Fprintf(os.Stderr, "Error: no sale with id %q\n", id)
		return subcommands.ExitFailure
	}
	if err := saveStore(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not save data: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated sale %s\n", id)
	return subcommands.ExitSuccess
}

type rmSaleCmd struct{}

func (*rmSaleCmd) Name() string     { return "rm-sale" }
func (*rmSaleCmd) Synopsis() string { return "remove a sale" }
func (*rmSaleCmd) Usage() string {
	return `rhub rm-sale <sale-id>

  Removes a sale record. The sold item keeps its status and the customer
  keeps its purchase count; use edit-item and edit-customer to adjust.

`
}

func (c *rmSaleCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmSaleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id := f.Arg(0)
	if id == "" {
		fmt.Fprintln(os.Stderr, "Error: sale id is required")
		return subcommands.ExitUsageError
	}
	s, err := loadStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load data: %v\n", err)
		return subcommands.ExitFailure
	}
	if !s.DeleteSale(id) {
		fmt.Fprintf(os.Stderr, "Error: no sale with id %q\n", id)
		return subcommands.ExitFailure
	}
	if err := saveStore(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not save data: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed sale %s\n", id)
	return subcommands.ExitSuccess
}

type salesCmd struct{}

func (*salesCmd) Name() string     { return "sales" }
func (*salesCmd) Synopsis() string { return "list the sales" }
func (*salesCmd) Usage() string {
	return `rhub sales

  Lists all sales with a total row.

`
}

func (c *salesCmd) SetFlags(f *flag.FlagSet) {}

func (c *salesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load data: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.SalesMarkdown(s.Sales(), loadSettings().Currency))
	return subcommands.ExitSuccess
}
