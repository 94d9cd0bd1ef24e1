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
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display a business overview" }
func (*summaryCmd) Usage() string {
	return `rhub summary

  Displays the business at a glance: stock by status, money tied up in
  inventory, order spend, and realized revenue, fees, profit and margin.

`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load data: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.SummaryMarkdown(resalehub.NewSummary(s, loadSettings().Currency)))
	return subcommands.ExitSuccess
}

type monthlyCmd struct {
	from string
	to   string
}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display a month-by-month sales report" }
func (*monthlyCmd) Usage() string {
	return `rhub monthly [-from <date>] [-to <date>]

  Displays sales per calendar month, including empty months, so the series
  has no gaps. The range defaults to the span of all dated sales.

`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "First month to show (any date in it)")
	f.StringVar(&c.to, "to", "", "Last month to show (any date in it)")
}

func (c *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var from, to date.Date
	var err error
	if c.from != "" {
		if from, err = date.Parse(c.from); err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid -from: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if c.to != "" {
		if to, err = date.Parse(c.to); err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid -to: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	s, err := loadStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load data: %v\n", err)
		return subcommands.ExitFailure
	}
	report := resalehub.NewMonthlyReport(s, from, to, loadSettings().Currency)
	printMarkdown(renderer.MonthlyMarkdown(report))
	return subcommands.ExitSuccess
}

type platformsCmd struct{}

func (*platformsCmd) Name() string     { return "platforms" }
func (*platformsCmd) Synopsis() string { return "display a per-platform sales report" }
func (*platformsCmd) Usage() string {
	return `rhub platforms

  Displays sales per platform, best revenue first.

`
}

func (c *platformsCmd) SetFlags(f *flag.FlagSet) {}

func (c *platformsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load data: %v\n", err)
		return subcommands.ExitFailure
	}
	report := resalehub.NewPlatformReport(s, loadSettings().Currency)
	printMarkdown(renderer.PlatformsMarkdown(report))
	return subcommands.ExitSuccess
}
