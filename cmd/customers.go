package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/resalehub/resalehub"
	"github.com/resalehub/resalehub/renderer"
)

type addCustomerCmd struct {
	name     string
	email    string
	phone    string
	platform string
	notes    string
}

func (*addCustomerCmd) Name() string     { return "add-customer" }
func (*addCustomerCmd) Synopsis() string { return "add a customer by hand" }
func (*addCustomerCmd) Usage() string {
	return `rhub add-customer -name <name> [-platform <platform>] [-email <email>]

  Adds a customer by hand. Customers are normally created automatically by
  'rhub sell'; this is for contacts you want to track before a first sale.

`
}

func (c *addCustomerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Customer name")
	f.StringVar(&c.email, "email", "", "Email")
	f.StringVar(&c.phone, "phone", "", "Phone")
	f.StringVar(&c.platform, "platform", "", "Platform the customer buys on")
	f.StringVar(&c.notes, "notes", "", "Free-form notes")
}

func (c *addCustomerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required")
		return subcommands.ExitUsageError
	}
	s, err := loadStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load data: %v\n", err)
		return subcommands.ExitFailure
	}
	customer := s.AddCustomer(resalehub.Customer{
		Name:     c.name,
		Email:    c.email,
		Phone:    c.phone,
		Platform: c.platform,
		Notes:    c.notes,
	})
	if err := saveStore(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not save data: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added customer %s (%s)\n", customer.Name, customer.ID)
	return subcommands.ExitSuccess
}

type editCustomerCmd struct {
	addCustomerCmd
	purchases int
	last      string
}

func (*editCustomerCmd) Name() string     { return "edit-customer" }
func (*editCustomerCmd) Synopsis() string { return "edit fields of a customer" }
func (*editCustomerCmd) Usage() string {
	return `rhub edit-customer [-name <name>] [-purchases <n>] ... <customer-id>

  Edits a customer. Only the fields given as flags are changed. -purchases
  and -last adjust the aggregates that 'rhub sell' normally maintains.

`
}

func (c *editCustomerCmd) SetFlags(f *flag.FlagSet) {
	c.addCustomerCmd.SetFlags(f)
	f.IntVar(&c.purchases, "purchases", 0, "Total purchase count")
	f.StringVar(&c.last, "last", "", "Last purchase date")
}

func (c *editCustomerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id := f.Arg(0)
	if id == "" {
		fmt.Fprintln(os.Stderr, "Error: customer id is required")
		return subcommands.ExitUsageError
	}
	set := setFlags(f)

	last, err := parseDate("last", c.last)
	if set["last"] && err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	s, err := loadStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load data: %v\n", err)
		return subcommands.ExitFailure
	}
	applied := s.UpdateCustomer(id, func(cu *resalehub.Customer) {
		if set["name"] {
			cu.Name = c.name
		}
		if set["email"] {
			cu.Email = c.email
		}
		if set["phone"] {
			cu.Phone = c.phone
		}
		if set["platform"] {
			cu.Platform = c.platform
		}
		if set["notes"] {
			cu.Notes = c.notes
		}
		if set["purchases"] {
			cu.TotalPurchases = c.purchases
		}
		if set["last"] {
			cu.LastPurchase = last
		}
	})
	if !applied {
		fmt.Fprintf(os.Stderr, "Error: no customer with id %q\n", id)
		return subcommands.ExitFailure
	}
	if err := saveStore(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not save data: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated customer %s\n", id)
	return subcommands.ExitSuccess
}

type rmCustomerCmd struct{}

func (*rmCustomerCmd) Name() string     { return "rm-customer" }
func (*rmCustomerCmd) Synopsis() string { return "remove a customer" }
func (*rmCustomerCmd) Usage() string {
	return `rhub rm-customer <customer-id>

  Removes a customer. Sales keep the buyer name they were recorded with;
  a later sale under the same name creates the customer anew.

`
}

func (c *rmCustomerCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmCustomerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id := f.Arg(0)
	if id == "" {
		fmt.Fprintln(os.Stderr, "Error: customer id is required")
		return subcommands.ExitUsageError
	}
	s, err := loadStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load data: %v\n", err)
		return subcommands.ExitFailure
	}
	if !s.DeleteCustomer(id) {
		fmt.Fprintf(os.Stderr, "Error: no customer with id %q\n", id)
		return subcommands.ExitFailure
	}
	if err := saveStore(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not save data: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed customer %s\n", id)
	return subcommands.ExitSuccess
}

type customersCmd struct {
	top int
}

func (*customersCmd) Name() string     { return "customers" }
func (*customersCmd) Synopsis() string { return "list the customers" }
func (*customersCmd) Usage() string {
	return `rhub customers [-top <n>]

  Lists customers. With -top n, ranks the n best customers by purchase
  count, ties broken by most recent purchase.

`
}

func (c *customersCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.top, "top", 0, "Show only the n best customers")
}

func (c *customersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load data: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.top > 0 {
		printMarkdown(renderer.CustomersMarkdown("Top Customers", resalehub.TopCustomers(s, c.top)))
	} else {
		printMarkdown(renderer.CustomersMarkdown("Customers", s.Customers()))
	}
	return subcommands.ExitSuccess
}
