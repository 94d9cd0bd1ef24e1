package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/resalehub/resalehub"
	"github.com/resalehub/resalehub/date"
	"github.com/resalehub/resalehub/renderer"
)

type addOrderCmd struct {
	name     string
	supplier string
	date     string
	status   string
	notes    string
	items    int
}

func (*addOrderCmd) Name() string     { return "add-order" }
func (*addOrderCmd) Synopsis() string { return "record a batch purchase and its items" }
func (*addOrderCmd) Usage() string {
	return `rhub add-order -name <name> [-items <n>] [-supplier <supplier>] [-d <date>]

  Records a purchase order. With -items n, prompts for n items and creates
  them in the inventory, linked to the order; the order total cost and item
  count are fixed from those items.

Usage Examples:
$ rhub add-order -name "spring batch" -supplier wholesaler -items 2

`
}

func (c *addOrderCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Order name")
	f.StringVar(&c.supplier, "supplier", "", "Supplier")
	f.StringVar(&c.date, "d", "", "Order date (defaults to today)")
	f.StringVar(&c.status, "status", "completed", "Status (completed, processing, pending)")
	f.StringVar(&c.notes, "notes", "", "Free-form notes")
	f.IntVar(&c.items, "items", 0, "Number of items to prompt for and create")
}

func (c *addOrderCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required")
		return subcommands.ExitUsageError
	}
	status, err := resalehub.ParseOrderStatus(c.status)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	on, err := parseDate("d", c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	items, err := promptItems(os.Stdin, os.Stdout, c.items, on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	s, err := loadStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load data: %v\n", err)
		return subcommands.ExitFailure
	}
	o, created := s.AddOrderWithItems(resalehub.Order{
		Name:     c.name,
		Date:     on,
		Status:   status,
		Supplier: c.supplier,
		Notes:    c.notes,
	}, items)
	if err := saveStore(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not save data: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added order %s (%s) with %d items\n", o.Name, o.ID, len(created))
	return subcommands.ExitSuccess
}

// promptItems asks for n items on the terminal. Each item takes a name, an
// optional brand, and two prices; everything else is edited later.
func promptItems(in io.Reader, out io.Writer, n int, on date.Date) ([]resalehub.InventoryItem, error) {
	if n <= 0 {
		return nil, nil
	}
	r := bufio.NewReader(in)
	items := make([]resalehub.InventoryItem, 0, n)
	for i := 1; i <= n; i++ {
		fmt.Fprintf(out, "Item %d/%d\n", i, n)
		name, err := prompt(r, out, "  name")
		if err != nil {
			return nil, err
		}
		if name == "" {
			return nil, fmt.Errorf("item %d: name is required", i)
		}
		brand, err := prompt(r, out, "  brand")
		if err != nil {
			return nil, err
		}
		priceStr, err := prompt(r, out, "  purchase price")
		if err != nil {
			return nil, err
		}
		price, err := parseAmount("purchase price", priceStr)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		listedStr, err := prompt(r, out, "  listing price")
		if err != nil {
			return nil, err
		}
		listed := price
		if listedStr != "" {
			if listed, err = parseAmount("listing price", listedStr); err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		items = append(items, resalehub.InventoryItem{
			Name:          name,
			Brand:         brand,
			PurchasePrice: price,
			CurrentPrice:  listed,
			Status:        resalehub.ItemActive,
			PurchaseDate:  on,
		})
	}
	return items, nil
}

func prompt(r *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprintf(out, "%s: ", label)
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

type editOrderCmd struct {
	addOrderCmd
	tracking string
}

func (*editOrderCmd) Name() string     { return "edit-order" }
func (*editOrderCmd) Synopsis() string { return "edit fields of an order" }
func (*editOrderCmd) Usage() string {
	return `rhub edit-order [-name <name>] [-status <status>] ... <order-id>

  Edits an order. Only the fields given as flags are changed. Total cost
  and item count are fixed at creation and cannot be edited.

`
}

func (c *editOrderCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Order name")
	f.StringVar(&c.supplier, "supplier", "", "Supplier")
	f.StringVar(&c.date, "d", "", "Order date")
	f.StringVar(&c.status, "status", "", "Status (completed, processing, pending)")
	f.StringVar(&c.notes, "notes", "", "Free-form notes")
	f.StringVar(&c.tracking, "tracking", "", "Tracking number")
}

func (c *editOrderCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id := f.Arg(0)
	if id == "" {
		fmt.Fprintln(os.Stderr, "Error: order id is required")
		return subcommands.ExitUsageError
	}
	set := setFlags(f)

	var status resalehub.OrderStatus
	var err error
	if set["status"] {
		if status, err = resalehub.ParseOrderStatus(c.status); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	on, err := parseDate("d", c.date)
	if set["d"] && err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	s, err := loadStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load data: %v\n", err)
		return subcommands.ExitFailure
	}
	applied := s.UpdateOrder(id, func(o *resalehub.Order) {
		if set["name"] {
			o.Name = c.name
		}
		if set["supplier"] {
			o.Supplier = c.supplier
		}
		if set["d"] {
			o.Date = on
		}
		if set["status"] {
			o.Status = status
		}
		if set["notes"] {
			o.Notes = c.notes
		}
		if set["tracking"] {
			o.TrackingNumber = c.tracking
		}
	})
	if !applied {
		fmt.Fprintf(os.Stderr, "Error: no order with id %q\n", id)
		return subcommands.ExitFailure
	}
	if err := saveStore(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not save data: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated order %s\n", id)
	return subcommands.ExitSuccess
}

type rmOrderCmd struct{}

func (*rmOrderCmd) Name() string     { return "rm-order" }
func (*rmOrderCmd) Synopsis() string { return "remove an order" }
func (*rmOrderCmd) Usage() string {
	return `rhub rm-order <order-id>

  Removes an order. Its items stay in the inventory, still carrying the
  order id they came from.

`
}

func (c *rmOrderCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmOrderCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id := f.Arg(0)
	if id == "" {
		fmt.Fprintln(os.Stderr, "Error: order id is required")
		return subcommands.ExitUsageError
	}
	s, err := loadStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load data: %v\n", err)
		return subcommands.ExitFailure
	}
	if !s.DeleteOrder(id) {
		fmt.Fprintf(os.Stderr, "Error: no order with id %q\n", id)
		return subcommands.ExitFailure
	}
	if err := saveStore(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not save data: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed order %s\n", id)
	return subcommands.ExitSuccess
}

type ordersCmd struct{}

func (*ordersCmd) Name() string     { return "orders" }
func (*ordersCmd) Synopsis() string { return "list the purchase orders" }
func (*ordersCmd) Usage() string {
	return `rhub orders

  Lists all purchase orders.

`
}

func (c *ordersCmd) SetFlags(f *flag.FlagSet) {}

func (c *ordersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load data: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.OrdersMarkdown(s.Orders(), loadSettings().Currency))
	return subcommands.ExitSuccess
}

type orderItemsCmd struct{}

func (*orderItemsCmd) Name() string     { return "order-items" }
func (*orderItemsCmd) Synopsis() string { return "show an order and the items it created" }
func (*orderItemsCmd) Usage() string {
	return `rhub order-items <order-id>

  Shows one order followed by the inventory items linked to it.

`
}

func (c *orderItemsCmd) SetFlags(f *flag.FlagSet) {}

func (c *orderItemsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id := f.Arg(0)
	if id == "" {
		fmt.Fprintln(os.Stderr, "Error: order id is required")
		return subcommands.ExitUsageError
	}
	s, err := loadStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load data: %v\n", err)
		return subcommands.ExitFailure
	}
	o, ok := s.Order(id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no order with id %q\n", id)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.OrderItemsMarkdown(o, s.ItemsByOrder(id), loadSettings().Currency))
	return subcommands.ExitSuccess
}
