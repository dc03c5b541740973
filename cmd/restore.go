package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/lendbook"
	"github.com/google/subcommands"
)

type restoreCmd struct {
	ledgerFile string
}

func (*restoreCmd) Name() string     { return "restore" }
func (*restoreCmd) Synopsis() string { return "replace the ledger from a backup document" }
func (*restoreCmd) Usage() string {
	return `lbk restore [-l <ledger>] <backup file>

  Replaces the whole ledger with the transactions of a backup document
  written by 'lbk backup'. The existing ledger is left untouched when the
  document is malformed.
`
}

func (p *restoreCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.ledgerFile, "l", "", "Ledger file, defaults to $LENDBOOK_LEDGER or "+defaultLedgerFile+".")
}

func (p *restoreCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one backup file argument.")
		return subcommands.ExitUsageError
	}

	file, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening backup: %v\n", err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	b, err := lendbook.DecodeBackup(file)
	if err != nil {
		var fe *lendbook.FormatError
		if errors.As(err, &fe) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", fe)
			return subcommands.ExitFailure
		}
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	ledger := lendbook.NewLedger()
	ledger.Replace(b.Transactions)

	path := ledgerPath(p.ledgerFile)
	if err := saveLedger(path, ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	logger.Info().Str("ledger", path).Int("transactions", ledger.Len()).Msg("ledger restored")
	fmt.Printf("Restored %d transactions into %s\n", ledger.Len(), path)
	return subcommands.ExitSuccess
}
