// Package cmd implements the CLI application to manage a resale business.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/resalehub/resalehub"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addItemCmd{}, "inventory")
	c.Register(&editItemCmd{}, "inventory")
	c.Register(&rmItemCmd{}, "inventory")
	c.Register(&inventoryCmd{}, "inventory")

	c.Register(&addOrderCmd{}, "orders")
	c.Register(&editOrderCmd{}, "orders")
	c.Register(&rmOrderCmd{}, "orders")
	c.Register(&ordersCmd{}, "orders")
	c.Register(&orderItemsCmd{}, "orders")

	c.Register(&sellCmd{}, "sales")
	c.Register(&editSaleCmd{}, "sales")
	c.Register(&rmSaleCmd{}, "sales")
	c.Register(&salesCmd{}, "sales")
	c.Register(&importSalesCmd{}, "sales")

	c.Register(&addCustomerCmd{}, "customers")
	c.Register(&editCustomerCmd{}, "customers")
	c.Register(&rmCustomerCmd{}, "customers")
	c.Register(&customersCmd{}, "customers")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&monthlyCmd{}, "reports")
	c.Register(&platformsCmd{}, "reports")

	c.Register(&themeCmd{}, "settings")
	c.Register(&currencyCmd{}, "settings")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storageDir = flag.String("storage-dir", "", "Path to the data folder (defaults to $RESALEHUB_DIR, then the current directory)")

// dataDir resolves the storage directory for this run.
func dataDir() string {
	if *storageDir != "" {
		return *storageDir
	}
	if dir := os.Getenv("RESALEHUB_DIR"); dir != "" {
		return dir
	}
	return "."
}

// loadStore loads the store from the app storage directory.
// A missing document yields an empty store.
func loadStore() (*resalehub.Store, error) {
	return resalehub.LoadStore(dataDir())
}

// saveStore writes the store back to the app storage directory.
func saveStore(s *resalehub.Store) error {
	return resalehub.SaveStore(dataDir(), s)
}

// loadSettings loads the display settings, falling back to defaults on any
// problem: reports must render even with a broken settings file.
func loadSettings() resalehub.Settings {
	settings, err := resalehub.LoadSettings(dataDir())
	if err != nil {
		log.Printf("warning, could not read settings, using defaults: %v", err)
		return resalehub.DefaultSettings()
	}
	return settings
}

// printMarkdown renders markdown for the terminal using the configured
// theme, and falls back to the raw markdown when rendering is not possible.
func printMarkdown(md string) {
	var style glamour.TermRendererOption
	switch loadSettings().Theme {
	case resalehub.ThemeLight:
		style = glamour.WithStandardStyle("light")
	case resalehub.ThemeDark:
		style = glamour.WithStandardStyle("dark")
	default:
		style = glamour.WithAutoStyle()
	}

	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(0))
	if err == nil {
		if out, rerr := r.Render(md); rerr == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(md)
}
