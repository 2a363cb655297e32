package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cssvalue/internal/driver"
	"cssvalue/internal/valfmt"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] [value|file|dir|-]...",
		Short: "Parse CSS values into node trees",
		Long: `Parse builds the node tree of every input value. Directories are walked
for files with the configured extensions; inputs are parsed in parallel.`,
		RunE: runParse,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|tree|json|msgpack)")
	cmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	cmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	cmd.Flags().Bool("cache", false, "reuse parsed trees from the disk cache")
	addInputFlags(cmd)
	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	s := sessionFrom(cmd)
	format, err := resolveFormat(cmd, s.cfg, "pretty", "tree", "json", "msgpack")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	var inputs []driver.Input
	err = s.timer.Track("load", func() (string, error) {
		var loadErr error
		inputs, _, loadErr = collectInputs(cmd, args, s.cfg)
		return fmt.Sprintf("%d inputs", len(inputs)), loadErr
	})
	if err != nil {
		return err
	}

	cache, err := openCache(cmd, s)
	if err != nil {
		return err
	}
	opts := driver.Options{Jobs: jobs, Cache: cache}

	var results []driver.Result
	err = s.timer.Track("parse", func() (string, error) {
		var parseErr error
		if shouldUseTUI(mode, len(inputs)) && format != "msgpack" && !s.quiet {
			results, parseErr = runParseWithUI(cmd.Context(), "parse", inputs, opts)
		} else {
			results, parseErr = driver.ParseAll(cmd.Context(), inputs, opts)
		}
		return parseNote(results), parseErr
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	return s.timer.Track("render", func() (string, error) {
		colored := useColor(s.cfg.Output.Color, os.Stdout)
		for i, res := range results {
			if err := writeHeader(out, s, (format == "pretty" || format == "tree") && len(results) > 1, i, res.Input); err != nil {
				return "", err
			}
			var err error
			switch format {
			case "tree":
				err = valfmt.FormatTreeASCII(out, res.Nodes)
			case "json":
				err = valfmt.FormatTreeJSON(out, res.Nodes)
			case "msgpack":
				err = valfmt.FormatTreeMsgpack(out, res.Nodes)
			default:
				err = valfmt.FormatTreePretty(out, res.Nodes, valfmt.PrettyOpts{
					Color: colored,
					Loc:   &valfmt.Locator{File: res.Input.File, Base: res.Input.Span.Start},
				})
			}
			if err != nil {
				return "", err
			}
		}
		return format, nil
	})
}

// openCache returns nil unless caching is on via --cache or [cache].enabled.
func openCache(cmd *cobra.Command, s *session) (*driver.DiskCache, error) {
	enabled := s.cfg.Cache.Enabled
	if cmd.Flags().Changed("cache") {
		v, err := cmd.Flags().GetBool("cache")
		if err != nil {
			return nil, fmt.Errorf("failed to get cache flag: %w", err)
		}
		enabled = v
	}
	if !enabled {
		return nil, nil
	}
	dir, err := s.cfg.CacheDir()
	if err != nil {
		return nil, err
	}
	return driver.OpenDiskCache(dir)
}

func parseNote(results []driver.Result) string {
	cached := 0
	for _, r := range results {
		if r.Cached {
			cached++
		}
	}
	if cached == 0 {
		return fmt.Sprintf("%d values", len(results))
	}
	return fmt.Sprintf("%d values, %d cached", len(results), cached)
}
