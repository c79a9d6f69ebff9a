package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/pretenst/fabric/internal/observability"
	"github.com/pretenst/fabric/pkg/fabric"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <input>",
	Short: "Print a summary of a fabric.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	log := observability.GetLogger()

	f, err := loadValidated(log, args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Fabric:    %s\n", f.Name)
	fmt.Fprintf(out, "Joints:    %d\n", f.JointCount())
	fmt.Fprintf(out, "Intervals: %d\n", f.IntervalCount())

	counts := f.RoleCounts()
	roles := make([]string, 0, len(counts))
	for role := range counts {
		roles = append(roles, string(role))
	}
	sort.Strings(roles)

	fmt.Fprintln(out, "Roles:")
	for _, role := range roles {
		fmt.Fprintf(out, "  %-12s %d\n", role, counts[fabric.Role(role)])
	}
	return nil
}
