package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tourlab/tourlab/bench"
)

func newBenchCmd(ctx context.Context) *cobra.Command {
	var (
		configPath string
		workers    int
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run the configured instance x algorithm x seed matrix",
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging()

			cfg, err := bench.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("workers") {
				cfg.Workers = workers
				if err = cfg.Validate(); err != nil {
					return err
				}
			}

			var store *bench.Store
			if cfg.Archive != "" {
				if store, err = bench.OpenStore(cfg.Archive); err != nil {
					return err
				}
				defer store.Close()
				log.WithField("archive", cfg.Archive).Debug("archiving runs")
			}

			runner := bench.NewRunner(cfg, store, log.StandardLogger())
			results, err := runner.Run(ctx)
			if err != nil {
				return err
			}
			printSummaries(bench.Summarize(results))

			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "bench.yaml", "batch config file")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "override the config's worker count")

	return cmd
}

func printSummaries(summaries []bench.Summary) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "INSTANCE\tALGO\tRUNS\tMEAN\tSTDDEV\tMIN\tMAX\tAVG TIME")
	var s bench.Summary
	for _, s = range summaries {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.2f\t%.2f\t%.2f\t%.2f\t%s\n",
			s.Instance, s.Algorithm, s.Runs, s.MeanLength, s.StdDev,
			s.MinLength, s.MaxLength, s.MeanElapsed.Round(time.Millisecond))
	}
	w.Flush()
}
