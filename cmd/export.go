package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/lendbook"
	"github.com/google/subcommands"
)

type exportCmd struct {
	rate       float64
	asOf       string
	output     string
	ledgerFile string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the timeline as CSV" }
func (*exportCmd) Usage() string {
	return `lbk export [-rate <annual_rate>] [-d <date>] [-o <file>] [-l <ledger>]

  Writes the computed timeline as CSV, one row per entry plus the trailing
  interest row, to the given file or to stdout.
`
}

func (p *exportCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&p.rate, "rate", 0, "Annual interest rate, defaults to $LENDBOOK_RATE or 0.0825.")
	f.StringVar(&p.asOf, "d", "", "Reference date for the trailing interest row, defaults to today.")
	f.StringVar(&p.output, "o", "", "Output file, defaults to stdout.")
	f.StringVar(&p.ledgerFile, "l", "", "Ledger file, defaults to $LENDBOOK_LEDGER or "+defaultLedgerFile+".")
}

func (p *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	var out io.Writer = os.Stdout
	if p.output != "" {
		file, err := os.Create(p.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		out = file
	}

	cfg := appConfig(p.rate)
	timeline := ledger.ComputeTimeline(cfg.AnnualRate, asOf)
	if err := lendbook.ExportTimeline(out, timeline, cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if p.output != "" {
		logger.Info().Str("file", p.output).Int("rows", len(timeline)).Msg("timeline exported")
	}
	return subcommands.ExitSuccess
}
