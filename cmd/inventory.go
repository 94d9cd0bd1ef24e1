package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/resalehub/resalehub"
	"github.com/resalehub/resalehub/date"
	"github.com/resalehub/resalehub/renderer"
	"github.com/shopspring/decimal"
)

type addItemCmd struct {
	name     string
	brand    string
	size     string
	category string
	price    string
	listed   string
	status   string
	location string
	date     string
	notes    string
}

func (*addItemCmd) Name() string     { return "add-item" }
func (*addItemCmd) Synopsis() string { return "add an item to the inventory" }
func (*addItemCmd) Usage() string {
	return `rhub add-item -name <name> -price <amount> [-listed <amount>] [-brand <brand>] ...

  Adds a single item to the inventory. Items bought in a batch are better
  added through add-order, which links them to the purchase order.

Usage Examples:
$ rhub add-item -name "Air Max 90" -brand Nike -size 42 -price 40 -listed 80

`
}

func (c *addItemCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Item name")
	f.StringVar(&c.brand, "brand", "", "Brand")
	f.StringVar(&c.size, "size", "", "Size")
	f.StringVar(&c.category, "category", "", "Category")
	f.StringVar(&c.price, "price", "0", "Purchase price")
	f.StringVar(&c.listed, "listed", "0", "Listing price")
	f.StringVar(&c.status, "status", "active", "Status (active, pending, sold, inactive, shipping)")
	f.StringVar(&c.location, "location", "", "Storage location")
	f.StringVar(&c.date, "d", "", "Purchase date (defaults to today)")
	f.StringVar(&c.notes, "notes", "", "Free-form notes")
}

func (c *addItemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required")
		return subcommands.ExitUsageError
	}
	item, err := c.buildItem()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	s, err := loadStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load data: %v\n", err)
		return subcommands.ExitFailure
	}
	item = s.AddInventoryItem(item)
	if err := saveStore(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not save data: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added item %s (%s)\n", item.Name, item.ID)
	return subcommands.ExitSuccess
}

func (c *addItemCmd) buildItem() (resalehub.InventoryItem, error) {
	var item resalehub.InventoryItem
	status, err := resalehub.ParseItemStatus(c.status)
	if err != nil {
		return item, err
	}
	price, err := parseAmount("price", c.price)
	if err != nil {
		return item, err
	}
	listed, err := parseAmount("listed", c.listed)
	if err != nil {
		return item, err
	}
	on, err := parseDate("d", c.date)
	if err != nil {
		return item, err
	}
	return resalehub.InventoryItem{
		Name:          c.name,
		Brand:         c.brand,
		Size:          c.size,
		Category:      c.category,
		PurchasePrice: price,
		CurrentPrice:  listed,
		Status:        status,
		Location:      c.location,
		PurchaseDate:  on,
		Notes:         c.notes,
	}, nil
}

type editItemCmd struct {
	addItemCmd
	tracking string
}

func (*editItemCmd) Name() string     { return "edit-item" }
func (*editItemCmd) Synopsis() string { return "edit fields of an inventory item" }
func (*editItemCmd) Usage() string {
	return `rhub edit-item [-name <name>] [-status <status>] ... <item-id>

  Edits an inventory item. Only the fields given as flags are changed.
  Forcing -status by hand is allowed, including back from sold; no sale
  records are touched.

Usage Examples:
$ rhub edit-item 1a2b3c4d -listed 95 -status pending

`
}

func (c *editItemCmd) SetFlags(f *flag.FlagSet) {
	c.addItemCmd.SetFlags(f)
	f.StringVar(&c.tracking, "tracking", "", "Tracking number")
}

func (c *editItemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id := f.Arg(0)
	if id == "" {
		fmt.Fprintln(os.Stderr, "Error: item id is required")
		return subcommands.ExitUsageError
	}
	set := setFlags(f)

	// Validate typed fields before touching the store.
	var status resalehub.ItemStatus
	var err error
	if set["status"] {
		if status, err = resalehub.ParseItemStatus(c.status); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	price, listed, on, err := c.parseAmounts(set)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	s, err := loadStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load data: %v\n", err)
		return subcommands.ExitFailure
	}
	applied := s.UpdateInventoryItem(id, func(it *resalehub.InventoryItem) {
		if set["name"] {
			it.Name = c.name
		}
		if set["brand"] {
			it.Brand = c.brand
		}
		if set["size"] {
			it.Size = c.size
		}
		if set["category"] {
			it.Category = c.category
		}
		if set["price"] {
			it.PurchasePrice = price
		}
		if set["listed"] {
			it.CurrentPrice = listed
		}
		if set["status"] {
			it.Status = status
		}
		if set["location"] {
			it.Location = c.location
		}
		if set["d"] {
			it.PurchaseDate = on
		}
		if set["notes"] {
			it.Notes = c.notes
		}
		if set["tracking"] {
			it.TrackingNumber = c.tracking
		}
	})
	if !applied {
		fmt.Fprintf(os.Stderr, "Error: no item with id %q\n", id)
		return subcommands.ExitFailure
	}
	if err := saveStore(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not save data: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated item %s\n", id)
	return subcommands.ExitSuccess
}

func (c *editItemCmd) parseAmounts(set map[string]bool) (price, listed decimal.Decimal, on date.Date, err error) {
	if set["price"] {
		if price, err = parseAmount("price", c.price); err != nil {
			return
		}
	}
	if set["listed"] {
		if listed, err = parseAmount("listed", c.listed); err != nil {
			return
		}
	}
	if set["d"] {
		on, err = parseDate("d", c.date)
	}
	return
}

type rmItemCmd struct{}

func (*rmItemCmd) Name() string     { return "rm-item" }
func (*rmItemCmd) Synopsis() string { return "remove an item from the inventory" }
func (*rmItemCmd) Usage() string {
	return `rhub rm-item <item-id>

  Removes an item outright. Sales referencing the item keep their own copy
  of its name and purchase price, so history stays readable.

`
}

func (c *rmItemCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmItemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id := f.Arg(0)
	if id == "" {
		fmt.Fprintln(os.Stderr, "Error: item id is required")
		return subcommands.ExitUsageError
	}
	s, err := loadStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load data: %v\n", err)
		return subcommands.ExitFailure
	}
	if !s.DeleteInventoryItem(id) {
		fmt.Fprintf(os.Stderr, "Error: no item with id %q\n", id)
		return subcommands.ExitFailure
	}
	if err := saveStore(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not save data: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed item %s\n", id)
	return subcommands.ExitSuccess
}

type inventoryCmd struct {
	status string
}

func (*inventoryCmd) Name() string     { return "inventory" }
func (*inventoryCmd) Synopsis() string { return "list the inventory" }
func (*inventoryCmd) Usage() string {
	return `rhub inventory [-status <status>]

  Lists inventory items, optionally filtered by status.

`
}

func (c *inventoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.status, "status", "", "Only show items with this status")
}

func (c *inventoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load data: %v\n", err)
		return subcommands.ExitFailure
	}
	items := s.Inventory()
	if c.status != "" {
		status, err := resalehub.ParseItemStatus(c.status)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		filtered := items[:0]
		for _, it := range items {
			if it.Status == status {
				filtered = append(filtered, it)
			}
		}
		items = filtered
	}
	printMarkdown(renderer.InventoryMarkdown(items, loadSettings().Currency))
	return subcommands.ExitSuccess
}
