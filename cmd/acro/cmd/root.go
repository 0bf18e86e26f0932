package cmd

import (
	"fmt"
	"log/slog"

	"github.com/corey/acro/internal/app"
	"github.com/corey/acro/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// options are the parsed command-line flags of one invocation.
type options struct {
	start        string
	end          string
	maxWildcards int
	maxUnmatched int
	wordsFile    string
	color        string
	noColor      bool
	configPath   string
	verbose      bool
	flat         bool
}

func newRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:   "acro [flags] <phrase> ...",
		Short: "acro: find words that spell an acronym",
		Long: "Finds dictionary words that spell an acronym for the given phrases, in order.\n" +
			"Only the capital letters of a phrase count: \"Portable Network\" matches \"pn\".",
		Example: `  acro -s "Free Online" "Radio"
  acro -w 1 "Acronym" "Search Engine"
  acro -f words.txt -u 1 "Alpha" "Beta"`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, o, args)
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return exitError{code: exitUsage, err: err}
	})

	f := root.Flags()
	f.StringVarP(&o.start, "start", "s", "", "Acronym must begin with this phrase")
	f.StringVarP(&o.end, "end", "e", "", "Acronym must end with this phrase")
	f.IntVarP(&o.maxWildcards, "max-wildcards", "w", 0, "Maximum number of wildcard letters")
	f.IntVarP(&o.maxUnmatched, "max-unmatched-phrases", "u", 0, "Maximum number of unmatched phrases (start and end are always required)")
	f.StringVarP(&o.wordsFile, "words-file", "f", "", "Newline-separated words file, - for stdin (default: system words file)")
	f.StringVar(&o.color, "color", app.ColorAuto, "Color output: auto, always, never")
	f.BoolVar(&o.noColor, "no-color", false, "Suppress color output")
	f.BoolVar(&o.flat, "flat", false, "One aligned list instead of groups by length")

	pf := root.PersistentFlags()
	pf.StringVar(&o.configPath, "config", "", "Path to config file")
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "Log progress to stderr")

	root.AddCommand(newConfigCmd(o))
	return root
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func runSearch(cmd *cobra.Command, o *options, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) == 0 && cmd.Flags().NFlag() == 0 {
		fmt.Fprintln(out, "Bless you!")
		return nil
	}

	cfg, err := loadConfig(cmd.Flags(), o)
	if err != nil {
		return classify(err)
	}

	results, err := app.New(cfg, nil).Search(app.Request{
		Phrases: args,
		Start:   o.start,
		End:     o.end,
	})
	if err != nil {
		return classify(err)
	}

	useColor := resolveColor(cfg.Color, o.noColor)
	if o.flat {
		fmt.Fprint(out, formatFlat(results, useColor))
	} else {
		fmt.Fprint(out, formatResults(results, useColor))
	}
	return nil
}

// loadConfig resolves the configuration and lets explicitly set flags win.
func loadConfig(fs *pflag.FlagSet, o *options) (*app.Config, error) {
	if o.verbose {
		logger.SetLevel(slog.LevelDebug)
	}

	cfg, err := app.LoadConfig(o.configPath)
	if err != nil {
		return nil, err
	}
	applyFlags(fs, o, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyFlags(fs *pflag.FlagSet, o *options, cfg *app.Config) {
	if fs.Changed("words-file") {
		cfg.WordsFile = o.wordsFile
	}
	if fs.Changed("max-wildcards") {
		cfg.MaxWildcards = o.maxWildcards
	}
	if fs.Changed("max-unmatched-phrases") {
		cfg.MaxUnmatched = o.maxUnmatched
	}
	if fs.Changed("color") {
		cfg.Color = o.color
	}
}
