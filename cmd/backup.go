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

type backupCmd struct {
	rate       float64
	output     string
	ledgerFile string
}

func (*backupCmd) Name() string     { return "backup" }
func (*backupCmd) Synopsis() string { return "write the ledger as a single backup document" }
func (*backupCmd) Usage() string {
	return `lbk backup [-rate <annual_rate>] [-o <file>] [-l <ledger>]

  Writes the whole ledger as one indented JSON document, with the interest
  rate and summary metadata, to the given file or to stdout. The document
  can be loaded back with 'lbk restore'.
`
}

func (p *backupCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&p.rate, "rate", 0, "Annual interest rate recorded in the document, defaults to $LENDBOOK_RATE or 0.0825.")
	f.StringVar(&p.output, "o", "", "Output file, defaults to stdout.")
	f.StringVar(&p.ledgerFile, "l", "", "Ledger file, defaults to $LENDBOOK_LEDGER or "+defaultLedgerFile+".")
}

func (p *backupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger(ledgerPath(p.ledgerFile))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
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
	if err := lendbook.EncodeBackup(out, ledger, cfg.AnnualRate); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if p.output != "" {
		logger.Info().Str("file", p.output).Int("transactions", ledger.Len()).Msg("backup written")
	}
	return subcommands.ExitSuccess
}
