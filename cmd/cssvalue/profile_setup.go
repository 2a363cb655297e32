package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cssvalue/internal/prof"
)

// setupProfiling starts the profilers named by the persistent flags. A nil
// session means profiling is off.
func setupProfiling(cmd *cobra.Command) (*prof.Session, error) {
	pf := cmd.Root().PersistentFlags()
	var paths prof.Paths
	for _, f := range []struct {
		name string
		dst  *string
	}{
		{"cpu-profile", &paths.CPU},
		{"mem-profile", &paths.Mem},
		{"runtime-trace", &paths.Trace},
	} {
		v, err := pf.GetString(f.name)
		if err != nil {
			return nil, fmt.Errorf("failed to get %s flag: %w", f.name, err)
		}
		*f.dst = v
	}
	if paths.Empty() {
		return nil, nil
	}
	return prof.Start(paths)
}
