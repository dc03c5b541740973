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

type rmCmd struct {
	ledgerFile string
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove a transaction by id" }
func (*rmCmd) Usage() string {
	return `lbk rm [-l <ledger>] <id>

  Removes the transaction with the given id from the ledger.
  The ledger is left unchanged if the id does not exist.
`
}

func (p *rmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.ledgerFile, "l", "", "Ledger file, defaults to $LENDBOOK_LEDGER or "+defaultLedgerFile+".")
}

func (p *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one transaction id.")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	path := ledgerPath(p.ledgerFile)
	ledger, err := loadLedger(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := ledger.Remove(id); err != nil {
		var nf *lendbook.NotFoundError
		if errors.As(err, &nf) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", nf)
			return subcommands.ExitFailure
		}
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := saveLedger(path, ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed transaction %s\n", id)
	return subcommands.ExitSuccess
}
