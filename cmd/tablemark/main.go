// tablemark measures two equivalent scripted-math workloads inside an
// embedded Lua interpreter, one using native-bound geometry usertypes and one
// using plain Lua tables, and reports throughput per case.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tablemark/tablemark"
)

func main() {
	cfg := tablemark.DefaultConfig()
	var format string
	var list bool

	cmd := &cobra.Command{
		Use:   "tablemark",
		Short: "Benchmark native-bound userdata against plain tables in embedded Lua",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := tablemark.NewRunner(cfg)

			if list {
				cases, err := runner.Cases()
				if err != nil {
					return err
				}
				for _, c := range cases {
					fmt.Println(c.Name())
				}
				return nil
			}

			results, err := runner.Run()
			if err != nil {
				return err
			}

			reporter := tablemark.NewReporter(os.Stdout)
			switch format {
			case "json":
				return reporter.ReportJSON(results)
			case "text":
				reporter.ReportText(results)
				return nil
			default:
				return fmt.Errorf("unknown format %q (want text or json)", format)
			}
		},
	}

	cmd.Flags().StringVar(&cfg.Filter, "filter", "", "regexp to select cases by name")
	cmd.Flags().StringVar(&format, "format", "text", "output format: text or json")
	cmd.Flags().DurationVar(&cfg.BenchTime, "benchtime", cfg.BenchTime, "minimum measured time per case")
	cmd.Flags().IntVar(&cfg.Warmup, "warmup", cfg.Warmup, "untimed invocations before measuring")
	cmd.Flags().IntVar(&cfg.MaxReps, "max-reps", cfg.MaxReps, "repetition ceiling per case")
	cmd.Flags().IntSliceVar(&cfg.Sizes, "sizes", cfg.Sizes, "iteration counts to measure")
	cmd.Flags().BoolVar(&list, "list", false, "list selected case names and exit")
	cmd.SilenceUsage = true

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
