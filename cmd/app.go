// Package cmd implements the CLI application to manage a lendbook ledger.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/lendbook"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Commands lists the subcommands. A main package registers them on a
// commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&lendCmd{},
	&payCmd{},
	&rmCmd{},
	&historyCmd{},
	&summaryCmd{},
	&exportCmd{},
	&backupCmd{},
	&restoreCmd{},
}

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

const (
	envLedgerFile = "LENDBOOK_LEDGER"
	envRate       = "LENDBOOK_RATE"

	defaultLedgerFile = "lendbook.jsonl"
)

// ledgerPath resolves the ledger file: the -l flag wins, then the
// LENDBOOK_LEDGER environment variable, then the default file.
func ledgerPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(envLedgerFile); v != "" {
		return v
	}
	return defaultLedgerFile
}

// appConfig resolves the engine configuration: the -rate flag wins, then
// the LENDBOOK_RATE environment variable, then the default rate.
func appConfig(rateFlag float64) lendbook.Config {
	cfg := lendbook.DefaultConfig()
	if rateFlag > 0 {
		cfg.AnnualRate = rateFlag
		return cfg
	}
	if v := os.Getenv(envRate); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil || rate <= 0 {
			logger.Warn().Str("value", v).Msg("ignoring invalid " + envRate)
			return cfg
		}
		cfg.AnnualRate = rate
	}
	return cfg
}

// loadLedger reads the JSONL ledger file. A missing file yields an empty
// ledger, so every command works out of the box on a fresh directory.
func loadLedger(path string) (*lendbook.Ledger, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn().Str("ledger", path).Msg("ledger file does not exist, starting empty")
		return lendbook.NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger %q: %w", path, err)
	}
	defer f.Close()
	return lendbook.DecodeLedger(f)
}

// saveLedger writes the ledger back to its JSONL file.
func saveLedger(path string, ledger *lendbook.Ledger) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not write ledger %q: %w", path, err)
	}
	defer f.Close()
	return lendbook.EncodeLedger(f, ledger)
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when the terminal renderer is unavailable.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// reportIssues prints validation errors or warnings to stderr.
func reportIssues(kind string, issues map[lendbook.Field][]lendbook.Issue) {
	for _, list := range issues {
		for _, iss := range list {
			fmt.Fprintf(os.Stderr, "%s: %s\n", kind, iss.Message)
		}
	}
}
