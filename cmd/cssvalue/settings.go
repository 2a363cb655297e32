package main

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"cssvalue/internal/config"
	"cssvalue/internal/driver"
	"cssvalue/internal/observ"
	"cssvalue/internal/prof"
)

// session is the per-invocation state built by prepare.
type session struct {
	cfg     config.Config
	timer   *observ.Timer
	timings bool
	quiet   bool
	prof    *prof.Session
	cleanup func()
}

type sessionKey struct{}

func sessionFrom(cmd *cobra.Command) *session {
	if ctx := cmd.Context(); ctx != nil {
		if s, ok := ctx.Value(sessionKey{}).(*session); ok {
			return s
		}
	}
	return &session{cfg: config.Default(), timer: observ.NewTimer(), cleanup: func() {}}
}

// prepare loads settings, applies flag overrides and installs the tracer.
func prepare(cmd *cobra.Command) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	pf := cmd.Root().PersistentFlags()
	timings, err := pf.GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	quiet, err := pf.GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	s := &session{cfg: cfg, timer: observ.NewTimer(), timings: timings, quiet: quiet}
	color.NoColor = !useColor(cfg.Output.Color, os.Stdout)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, sessionKey{}, s))

	s.cleanup = func() {}
	if s.prof, err = setupProfiling(cmd); err != nil {
		return err
	}
	cleanup, err := setupTracing(cmd, cfg.Trace)
	if err != nil {
		_ = s.prof.Stop()
		return err
	}
	s.cleanup = cleanup
	return nil
}

func finish(cmd *cobra.Command) {
	s := sessionFrom(cmd)
	if s.timings {
		fmt.Fprint(cmd.ErrOrStderr(), s.timer.Summary())
	}
	s.cleanup()
	if err := s.prof.Stop(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "profile: %v\n", err)
	}
}

// loadSettings reads --config (or the discovered file) and lets explicitly
// set flags win over it.
func loadSettings(cmd *cobra.Command) (config.Config, error) {
	pf := cmd.Root().PersistentFlags()
	path, err := pf.GetString("config")
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get config flag: %w", err)
	}

	var cfg config.Config
	if path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.Discover(".")
	}
	if err != nil {
		return config.Config{}, err
	}

	// trace is a list of paths and keeps its case; the rest are enums.
	overrides := []struct {
		flag string
		dst  *string
		fold bool
	}{
		{"color", &cfg.Output.Color, true},
		{"trace", &cfg.Trace.Output, false},
		{"trace-level", &cfg.Trace.Level, true},
		{"trace-format", &cfg.Trace.Format, true},
	}
	for _, o := range overrides {
		if !pf.Changed(o.flag) {
			continue
		}
		v, err := pf.GetString(o.flag)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to get %s flag: %w", o.flag, err)
		}
		v = strings.TrimSpace(v)
		if o.fold {
			v = strings.ToLower(v)
		}
		*o.dst = v
	}
	// --trace alone means "trace something"
	if pf.Changed("trace") && !pf.Changed("trace-level") && cfg.Trace.Level == "off" {
		cfg.Trace.Level = "phase"
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func useColor(mode string, f *os.File) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return os.Getenv("NO_COLOR") == "" && isTerminal(f)
	}
}

// resolveFormat picks the --format flag when set, else the configured format
// when this command supports it, else pretty.
func resolveFormat(cmd *cobra.Command, cfg config.Config, allowed ...string) (string, error) {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return "", fmt.Errorf("failed to get format flag: %w", err)
	}
	format = strings.ToLower(strings.TrimSpace(format))
	if !cmd.Flags().Changed("format") && slices.Contains(allowed, cfg.Output.Format) {
		format = cfg.Output.Format
	}
	if !slices.Contains(allowed, format) {
		return "", fmt.Errorf("unknown format %q (expected: %s)", format, strings.Join(allowed, "|"))
	}
	return format, nil
}

// addInputFlags registers the flags shared by commands reading values.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayP("value", "e", nil, "literal value, never treated as a path (repeatable)")
	cmd.Flags().Bool("lines", false, "treat each non-blank line of a file as its own value")
	cmd.Flags().Bool("whole", false, "treat each file as a single value")
}

// collectInputs loads -e values and positional arguments, in that order.
func collectInputs(cmd *cobra.Command, args []string, cfg config.Config) ([]driver.Input, *driver.Loader, error) {
	opts := driver.LoadOptions{
		Extensions: cfg.Input.Extensions,
		SplitLines: cfg.Input.SplitLines,
		Normalize:  cfg.Input.Normalize,
		Stdin:      cmd.InOrStdin(),
	}
	lines, _ := cmd.Flags().GetBool("lines")
	whole, _ := cmd.Flags().GetBool("whole")
	if lines && whole {
		return nil, nil, fmt.Errorf("--lines and --whole are mutually exclusive")
	}
	if lines {
		opts.SplitLines = true
	}
	if whole {
		opts.SplitLines = false
	}

	loader := driver.NewLoader(opts)
	values, err := cmd.Flags().GetStringArray("value")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get value flag: %w", err)
	}
	inputs := loader.Values(values...)
	fromArgs, err := loader.Args(args...)
	if err != nil {
		return nil, nil, err
	}
	inputs = append(inputs, fromArgs...)
	if len(inputs) == 0 {
		return nil, nil, fmt.Errorf("no input values (pass values, files, directories or -)")
	}
	return inputs, loader, nil
}
