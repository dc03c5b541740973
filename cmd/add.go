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

// addTransaction validates one candidate transaction, reports every problem
// at once, and inserts it when accepted. Warnings (future date, near
// duplicate) are advisory: they stop the command unless -f is given.
func addTransaction(typ lendbook.TxType, f *flag.FlagSet, date, notes, ledgerFile string, force bool) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one amount argument.")
		return subcommands.ExitUsageError
	}
	amount := f.Arg(0)

	path := ledgerPath(ledgerFile)
	ledger, err := loadLedger(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if date == "" {
		date = lendbook.Today().String()
	}

	cfg := appConfig(0)
	validator := lendbook.NewValidator(cfg)
	res := validator.ValidateTransaction(lendbook.Request{
		Date:   date,
		Type:   string(typ),
		Amount: amount,
		Notes:  notes,
	}, ledger)

	if !res.Valid {
		reportIssues("Error", res.Errors)
		return subcommands.ExitFailure
	}
	if res.HasWarnings() {
		reportIssues("Warning", res.Warnings)
		if !force {
			fmt.Fprintln(os.Stderr, "Re-run with -f to record it anyway.")
			return subcommands.ExitFailure
		}
	}

	ledger.Insert(res.Transaction)
	if err := saveLedger(path, ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println(renderer.Transaction(res.Transaction, cfg))
	return subcommands.ExitSuccess
}

type lendCmd struct {
	date       string
	notes      string
	force      bool
	ledgerFile string
}

func (*lendCmd) Name() string     { return "lend" }
func (*lendCmd) Synopsis() string { return "record money lent out" }
func (*lendCmd) Usage() string {
	return `lbk lend [-d <date>] [-n <notes>] [-f] [-l <ledger>] <amount>

  Records a loan-out transaction: the amount is added to the outstanding
  balance. The date defaults to today.
`
}

func (p *lendCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Transaction date, defaults to today.")
	f.StringVar(&p.notes, "n", "", "Optional notes.")
	f.BoolVar(&p.force, "f", false, "Proceed past warnings (future date, duplicate).")
	f.StringVar(&p.ledgerFile, "l", "", "Ledger file, defaults to $LENDBOOK_LEDGER or "+defaultLedgerFile+".")
}

func (p *lendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return addTransaction(lendbook.LoanOut, f, p.date, p.notes, p.ledgerFile, p.force)
}

type payCmd struct {
	date       string
	notes      string
	force      bool
	ledgerFile string
}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "record a payment received" }
func (*payCmd) Usage() string {
	return `lbk pay [-d <date>] [-n <notes>] [-f] [-l <ledger>] <amount>

  Records a payment transaction: the amount is subtracted from the
  outstanding balance. Overpaying is allowed and leaves a credit.
`
}

func (p *payCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Transaction date, defaults to today.")
	f.StringVar(&p.notes, "n", "", "Optional notes.")
	f.BoolVar(&p.force, "f", false, "Proceed past warnings (future date, duplicate).")
	f.StringVar(&p.ledgerFile, "l", "", "Ledger file, defaults to $LENDBOOK_LEDGER or "+defaultLedgerFile+".")
}

func (p *payCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return addTransaction(lendbook.Payment, f, p.date, p.notes, p.ledgerFile, p.force)
}
