package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cssvalue/internal/driver"
)

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the parse cache",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "dir",
		Short: "Print the cache directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := sessionFrom(cmd).cfg.CacheDir()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), dir)
			return err
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Drop every cached tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := sessionFrom(cmd)
			dir, err := s.cfg.CacheDir()
			if err != nil {
				return err
			}
			cache, err := driver.OpenDiskCache(dir)
			if err != nil {
				return err
			}
			if err := cache.DropAll(); err != nil {
				return fmt.Errorf("failed to clear cache: %w", err)
			}
			if !s.quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "cleared %s\n", dir)
			}
			return nil
		},
	})
	return cmd
}
