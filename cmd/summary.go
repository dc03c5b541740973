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

type summaryCmd struct {
	rate       float64
	ledgerFile string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show aggregate figures for the ledger" }
func (*summaryCmd) Usage() string {
	return `lbk summary [-rate <annual_rate>] [-l <ledger>]

  Shows the current balance, totals, counts and the effective interest
  rate, recomputed from the full ledger.
`
}

func (p *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&p.rate, "rate", 0, "Annual interest rate, defaults to $LENDBOOK_RATE or 0.0825.")
	f.StringVar(&p.ledgerFile, "l", "", "Ledger file, defaults to $LENDBOOK_LEDGER or "+defaultLedgerFile+".")
}

func (p *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger(ledgerPath(p.ledgerFile))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	cfg := appConfig(p.rate)
	stats := lendbook.ComputeStatistics(ledger.ComputeTimeline(cfg.AnnualRate, lendbook.Today()))
	printMarkdown(renderer.Statistics(stats, cfg))
	return subcommands.ExitSuccess
}
