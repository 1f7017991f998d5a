package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tourlab/tourlab/tsplib"
	"github.com/tourlab/tourlab/viz"
)

func newPlotCmd() *cobra.Command {
	var (
		instName string
		solPath  string
		outPath  string
		dataDir  string
	)

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Chart an existing solution file against its instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging()

			instance, err := tsplib.ParseFile(tsplib.InstancePath(dataDir, instName))
			if err != nil {
				return err
			}

			f, err := os.Open(solPath)
			if err != nil {
				return err
			}
			length, tour, err := tsplib.ReadSolution(f)
			f.Close()
			if err != nil {
				return err
			}

			chart, err := viz.TourChart(instance.Name, instance.Cities, tour, length)
			if err != nil {
				return err
			}
			if err = writeChart(outPath, chart); err != nil {
				return err
			}
			fmt.Printf("Chart: %s\n", outPath)

			return nil
		},
	}

	addInstanceFlags(cmd.Flags(), &instName, &dataDir)
	cmd.Flags().StringVar(&solPath, "sol", "", "solution file to chart")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output HTML file")
	_ = cmd.MarkFlagRequired("inst")
	_ = cmd.MarkFlagRequired("sol")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
