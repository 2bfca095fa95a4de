package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/igen-org/igen-go/util/caltime"
)

var (
	useUtc    bool
	weekStart string
)

func options() (caltime.Options, error) {
	w, err := parseWeekday(weekStart)
	if err != nil {
		return caltime.Options{}, err
	}
	return caltime.Options{UTC: useUtc, WeekStart: w}, nil
}

func parseWeekday(s string) (time.Weekday, error) {
	if n, err := cast.ToIntE(s); err == nil {
		if n < 0 || n > 6 {
			return 0, fmt.Errorf("week-start out of range: %d", n)
		}
		return time.Weekday(n), nil
	}
	for w := time.Sunday; w <= time.Saturday; w++ {
		if strings.EqualFold(s, w.String()) {
			return w, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday '%s'", s)
}

func parseArg(arg string, opts caltime.Options) (caltime.Time, error) {
	t, err := caltime.Parse(arg, opts)
	if err != nil {
		return caltime.Time{}, fmt.Errorf("failed to parse '%s', %w", arg, err)
	}
	return t, nil
}

func printTime(t caltime.Time, opts caltime.Options) {
	layout := caltime.StdDateTimeMilliFormat
	color.Green("%s", caltime.Format(t, layout, opts))
	fmt.Printf("epoch millis: %d\n", t.UnixMilli())
}

func NowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "Print the current instant",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := options()
			if err != nil {
				return err
			}
			printTime(caltime.Now(), opts)
			return nil
		},
	}
}

func ShiftCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shift <time> <amount> <unit>",
		Short: "Shift a timestamp by a signed amount of a calendar unit",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := options()
			if err != nil {
				return err
			}
			t, err := parseArg(args[0], opts)
			if err != nil {
				return err
			}
			n, err := cast.ToFloat64E(args[1])
			if err != nil {
				return fmt.Errorf("invalid amount '%s', %w", args[1], err)
			}
			u, err := caltime.ParseUnit(args[2])
			if err != nil {
				return err
			}
			printTime(caltime.Shift(t, n, u, opts), opts)
			return nil
		},
	}
}

func DiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <start> <end> <unit>",
		Short: "Measure end minus start in the requested unit",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := options()
			if err != nil {
				return err
			}
			start, err := parseArg(args[0], opts)
			if err != nil {
				return err
			}
			end, err := parseArg(args[1], opts)
			if err != nil {
				return err
			}
			u, err := caltime.ParseUnit(args[2])
			if err != nil {
				return err
			}
			color.Green("%v %s(s)", caltime.Diff(start, end, u), u)
			return nil
		},
	}
}

func StartOfCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "startof <time> <unit>",
		Short: "Normalize a timestamp down to the start of its unit bucket",
		Args:  cobra.ExactArgs(2),
		RunE:  boundaryRun(caltime.StartOf),
	}
}

func EndOfCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "endof <time> <unit>",
		Short: "Normalize a timestamp up to the last millisecond of its unit bucket",
		Args:  cobra.ExactArgs(2),
		RunE:  boundaryRun(caltime.EndOf),
	}
}

func boundaryRun(f func(caltime.Time, caltime.Unit, ...caltime.Options) caltime.Time) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		opts, err := options()
		if err != nil {
			return err
		}
		t, err := parseArg(args[0], opts)
		if err != nil {
			return err
		}
		u, err := caltime.ParseUnit(args[1])
		if err != nil {
			return err
		}
		printTime(f(t, u, opts), opts)
		return nil
	}
}
