package main

import (
	"context"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var verbose bool

// Execute is the entry point to running the CLI.
func Execute(ctx context.Context, version string) {
	var rootCmd = &cobra.Command{
		Use:          "tourlab",
		Short:        "Solve Euclidean TSP instances with exact, approximate or genetic engines.",
		Version:      version,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.AddCommand(newSolveCmd(), newBenchCmd(ctx), newPlotCmd())
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging() {
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}

// addInstanceFlags registers the instance-lookup flags shared by the solve
// and plot commands.
func addInstanceFlags(flags *pflag.FlagSet, instName, dataDir *string) {
	flags.StringVarP(instName, "inst", "i", "", "instance name (looked up as <data>/<name>.tsp)")
	flags.StringVar(dataDir, "data", "data", "instance directory")
}

// writeChart renders any echarts chart into a file.
func writeChart(path string, chart interface{ Render(io.Writer) error }) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = chart.Render(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
