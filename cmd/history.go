package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/lendbook"
	"github.com/etnz/lendbook/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct {
	rate       float64
	asOf       string
	ledgerFile string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "show the balance history with accrued interest" }
func (*historyCmd) Usage() string {
	return `lbk history [-rate <annual_rate>] [-d <date>] [-l <ledger>]

  Walks the ledger chronologically and shows, for each transaction, the
  days elapsed, the interest accrued over the gap and the running balance.
  A trailing row carries the interest accrued up to the reference date
  when the balance is still positive.
`
}

func (p *historyCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&p.rate, "rate", 0, "Annual interest rate, defaults to $LENDBOOK_RATE or 0.0825.")
	f.StringVar(&p.asOf, "d", "", "Reference date for the trailing interest row, defaults to today.")
	f.StringVar(&p.ledgerFile, "l", "", "Ledger file, defaults to $LENDBOOK_LEDGER or "+defaultLedgerFile+".")
}

func (p *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger(ledgerPath(p.ledgerFile))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	asOf := lendbook.Today()
	if p.asOf != "" {
		if asOf, err = lendbook.ParseDate(p.asOf); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing reference date: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	cfg := appConfig(p.rate)
	timeline := ledger.ComputeTimeline(cfg.AnnualRate, asOf)
	printMarkdown(renderer.Timeline(timeline, cfg))
	return subcommands.ExitSuccess
}
