package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/resalehub/resalehub"
)

type themeCmd struct{}

func (*themeCmd) Name() string     { return "theme" }
func (*themeCmd) Synopsis() string { return "show or set the display theme" }
func (*themeCmd) Usage() string {
	return `rhub theme [light|dark|system]

  Without an argument, shows the current theme. With one, sets it. The
  theme selects the style reports are rendered with in the terminal.

`
}

func (c *themeCmd) SetFlags(f *flag.FlagSet) {}

func (c *themeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	settings := loadSettings()
	if f.NArg() == 0 {
		fmt.Println(settings.Theme)
		return subcommands.ExitSuccess
	}

	theme, err := resalehub.ParseTheme(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	settings.Theme = theme
	if err := resalehub.SaveSettings(dataDir(), settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not save settings: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Theme set to %s\n", theme)
	return subcommands.ExitSuccess
}

type currencyCmd struct{}

func (*currencyCmd) Name() string     { return "currency" }
func (*currencyCmd) Synopsis() string { return "show or set the display currency" }
func (*currencyCmd) Usage() string {
	return `rhub currency [EUR|USD|GBP|CHF]

  Without an argument, shows the current display currency. With one, sets
  it. Stored amounts are plain numbers and are not converted.

`
}

func (c *currencyCmd) SetFlags(f *flag.FlagSet) {}

func (c *currencyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	settings := loadSettings()
	if f.NArg() == 0 {
		fmt.Println(settings.Currency)
		return subcommands.ExitSuccess
	}

	currency, err := resalehub.ParseCurrency(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	settings.Currency = currency
	if err := resalehub.SaveSettings(dataDir(), settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not save settings: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Currency set to %s\n", currency)
	return subcommands.ExitSuccess
}
