package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tourlab/tourlab/tsp"
	"github.com/tourlab/tourlab/tsplib"
	"github.com/tourlab/tourlab/viz"
)

func newSolveCmd() *cobra.Command {
	var (
		instName        string
		algName         string
		seconds         float64
		seed            int64
		dataDir         string
		outDir          string
		plotPath        string
		convergencePath string
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve one instance with one engine and write the solution file",
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging()

			algo, err := tsp.ParseAlgorithm(algName)
			if err != nil {
				return err
			}

			opts := tsp.DefaultOptions()
			opts.Algo = algo
			opts.Cutoff = time.Duration(seconds * float64(time.Second))
			if cmd.Flags().Changed("seed") {
				opts.Seed = seed
				opts.HasSeed = true
			}

			// The hook feeds both the progress log and the convergence
			// chart; a tenth of the generations is plenty for the log.
			var bests []float64
			if algo == tsp.Genetic {
				opts.OnGeneration = func(gen int, best float64) {
					bests = append(bests, best)
					if gen%10 == 0 {
						log.WithFields(log.Fields{"generation": gen, "best": best}).Debug("evolving")
					}
				}
			}

			instance, err := tsplib.ParseFile(tsplib.InstancePath(dataDir, instName))
			if err != nil {
				return err
			}
			log.WithFields(log.Fields{
				"instance": instance.Name,
				"cities":   len(instance.Cities),
				"algo":     algo.String(),
				"cutoff":   opts.Cutoff.String(),
			}).Debug("solving")

			res, err := tsp.Solve(instance.Cities, opts)
			if err != nil {
				return err
			}

			fmt.Printf("Instance: %s (%d cities)\n", instance.Name, len(instance.Cities))
			fmt.Printf("Algorithm: %s\n", algo)
			fmt.Printf("Length: %.2f\n", res.Length)
			fmt.Printf("Tour: %s\n", tourPreview(res.Tour))
			log.WithFields(log.Fields{
				"elapsed":    res.Elapsed.String(),
				"iterations": res.Iterations,
			}).Debug("solver finished")

			if err = os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}
			solPath := filepath.Join(outDir, tsplib.SolutionFilename(instName, algo, opts.Cutoff, opts.Seed, opts.HasSeed))
			f, err := os.Create(solPath)
			if err != nil {
				return err
			}
			if err = tsplib.WriteSolution(f, res.Length, res.Tour); err != nil {
				f.Close()
				return err
			}
			if err = f.Close(); err != nil {
				return err
			}
			fmt.Printf("Solution: %s\n", solPath)

			if plotPath != "" {
				chart, chartErr := viz.TourChart(instance.Name, instance.Cities, res.Tour, res.Length)
				if chartErr != nil {
					return chartErr
				}
				if err = writeChart(plotPath, chart); err != nil {
					return err
				}
				fmt.Printf("Chart: %s\n", plotPath)
			}
			if convergencePath != "" && algo == tsp.Genetic {
				title := fmt.Sprintf("%s seed=%d", instance.Name, opts.Seed)
				if err = writeChart(convergencePath, viz.ConvergenceChart(title, bests)); err != nil {
					return err
				}
				fmt.Printf("Convergence: %s\n", convergencePath)
			}

			return nil
		},
	}

	addInstanceFlags(cmd.Flags(), &instName, &dataDir)
	cmd.Flags().StringVarP(&algName, "alg", "a", "", "algorithm: BF, Approx or LS")
	cmd.Flags().Float64VarP(&seconds, "time", "t", 60, "cutoff in seconds")
	cmd.Flags().Int64VarP(&seed, "seed", "s", 0, "random seed (required for LS)")
	cmd.Flags().StringVar(&outDir, "out", "solutions", "solution directory")
	cmd.Flags().StringVar(&plotPath, "plot", "", "write the tour chart HTML here")
	cmd.Flags().StringVar(&convergencePath, "convergence", "", "write the LS convergence chart HTML here")
	_ = cmd.MarkFlagRequired("inst")
	_ = cmd.MarkFlagRequired("alg")

	return cmd
}

// tourPreview keeps console output short on big instances.
func tourPreview(tour []int) string {
	const headLen = 10
	if len(tour) <= headLen+2 {
		return fmt.Sprint(tour)
	}

	head := fmt.Sprint(tour[:headLen])

	return strings.TrimSuffix(head, "]") + fmt.Sprintf(" ... +%d]", len(tour)-headLen)
}
