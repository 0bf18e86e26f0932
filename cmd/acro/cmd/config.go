package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/corey/acro/internal/adapters/wordlist"
	"github.com/corey/acro/internal/app"
	"github.com/spf13/cobra"
)

func newConfigCmd(o *options) *cobra.Command {
	var write bool
	c := &cobra.Command{
		Use:   "config",
		Short: "Show configuration",
		Long: "Shows the config file, words file and search limits after applying the config file\n" +
			"and environment. With --write, saves them to the config file.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfig(cmd, o, write)
		},
	}
	c.Flags().BoolVar(&write, "write", false, "Write the resolved configuration to the config file if it does not exist")
	return c
}

func runConfig(cmd *cobra.Command, o *options, write bool) error {
	out := cmd.OutOrStdout()
	cfg, err := loadConfig(cmd.Flags(), o)
	if err != nil {
		return classify(err)
	}

	paths := app.ResolvePaths()
	if o.configPath != "" {
		paths = &app.Paths{ConfigDir: filepath.Dir(o.configPath), ConfigFile: o.configPath}
	}

	if write {
		if _, err := os.Stat(paths.ConfigFile); err == nil {
			return classify(fmt.Errorf("config file already exists: %s", paths.ConfigFile))
		} else if !errors.Is(err, fs.ErrNotExist) {
			return classify(err)
		}
		if err := cfg.WriteFile(paths); err != nil {
			return classify(fmt.Errorf("write config: %w", err))
		}
		cfg.Source = paths.ConfigFile
	}

	p := newPalette(resolveColor(cfg.Color, false))
	source := cfg.Source
	if source == "" {
		source = paths.ConfigFile + " (not found)"
	}
	words, err := wordlist.Find(cfg.WordsFile)
	if err != nil {
		words = err.Error()
	}

	fmt.Fprintln(out, p.header.Sprint("acro config"))
	fmt.Fprint(out, formatConfigLine(p, "Config", source))
	fmt.Fprint(out, formatConfigLine(p, "Words", words))
	fmt.Fprint(out, formatConfigLine(p, "Wildcards", strconv.Itoa(cfg.MaxWildcards)))
	fmt.Fprint(out, formatConfigLine(p, "Unmatched", strconv.Itoa(cfg.MaxUnmatched)))
	fmt.Fprint(out, formatConfigLine(p, "Color", cfg.Color))
	return nil
}
