package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "igen",
		Short: "igen - calendar arithmetic from the shell",
		Long: `igen exposes the igen-go calendar arithmetic helpers on the command line:
shifting timestamps by calendar units, unit-aware diffing, and start/end bucket
normalization, in local time or UTC with a configurable week start.`,
	}

	rootCmd.PersistentFlags().BoolVar(&useUtc, "utc", false, "use UTC calendar fields instead of local time")
	rootCmd.PersistentFlags().StringVar(&weekStart, "week-start", "sunday", "weekday that starts a week bucket")

	rootCmd.AddCommand(NowCmd())
	rootCmd.AddCommand(ShiftCmd())
	rootCmd.AddCommand(DiffCmd())
	rootCmd.AddCommand(StartOfCmd())
	rootCmd.AddCommand(EndOfCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
