package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/lendbook/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command tree for shell completion. It must be
// consulted before flag parsing, so it lives here rather than in cmd.
var completion = &complete.Command{
	Sub: map[string]*complete.Command{
		"lend": {Flags: map[string]complete.Predictor{
			"d": predict.Nothing,
			"n": predict.Nothing,
			"f": predict.Nothing,
			"l": predict.Files("*.jsonl"),
		}},
		"pay": {Flags: map[string]complete.Predictor{
			"d": predict.Nothing,
			"n": predict.Nothing,
			"f": predict.Nothing,
			"l": predict.Files("*.jsonl"),
		}},
		"rm": {Flags: map[string]complete.Predictor{
			"l": predict.Files("*.jsonl"),
		}},
		"history": {Flags: map[string]complete.Predictor{
			"rate": predict.Nothing,
			"d":    predict.Nothing,
			"l":    predict.Files("*.jsonl"),
		}},
		"summary": {Flags: map[string]complete.Predictor{
			"rate": predict.Nothing,
			"l":    predict.Files("*.jsonl"),
		}},
		"export": {Flags: map[string]complete.Predictor{
			"rate": predict.Nothing,
			"d":    predict.Nothing,
			"o":    predict.Files("*.csv"),
			"l":    predict.Files("*.jsonl"),
		}},
		"backup": {Flags: map[string]complete.Predictor{
			"rate": predict.Nothing,
			"o":    predict.Files("*.json"),
			"l":    predict.Files("*.jsonl"),
		}},
		"restore": {
			Args: predict.Files("*.json"),
			Flags: map[string]complete.Predictor{
				"l": predict.Files("*.jsonl"),
			},
		},
	},
}

func main() {
	// A .env file can carry LENDBOOK_LEDGER and LENDBOOK_RATE.
	godotenv.Load()

	completion.Complete(path.Base(os.Args[0]))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
