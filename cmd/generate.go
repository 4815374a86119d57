package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/batch-planner/planner"
	"github.com/inference-sim/batch-planner/planner/workload"
)

var (
	genSpec      workload.GeneratorSpec
	genMaxVolume float64
	genMaxItems  int
)

// buildGeneratedSpec materializes generated jobs into an explicit job spec.
func buildGeneratedSpec(g workload.GeneratorSpec, printer *planner.Constraints) (*workload.JobSpec, error) {
	if printer != nil {
		if err := printer.Validate(); err != nil {
			return nil, fmt.Errorf("printer: %w", err)
		}
	}
	jobs, err := workload.GenerateJobs(g)
	if err != nil {
		return nil, err
	}
	return &workload.JobSpec{Version: workload.CurrentVersion, Printer: printer, Jobs: jobs}, nil
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic job spec",
	Long:  "Draw jobs uniformly from the given ranges with a fixed seed. Output is written to stdout as YAML.",
	Run: func(cmd *cobra.Command, args []string) {
		var printer *planner.Constraints
		if cmd.Flags().Changed("max-volume") || cmd.Flags().Changed("max-items") {
			printer = &planner.Constraints{MaxVolume: genMaxVolume, MaxItems: genMaxItems}
		}
		spec, err := buildGeneratedSpec(genSpec, printer)
		if err != nil {
			logrus.Fatalf("Generate failed: %v", err)
		}
		data, err := workload.MarshalJobSpec(spec)
		if err != nil {
			logrus.Fatalf("YAML marshal failed: %v", err)
		}
		fmt.Print(string(data))
	},
}

func init() {
	generateCmd.Flags().Int64Var(&genSpec.Seed, "seed", 42, "Seed for job generation")
	generateCmd.Flags().IntVar(&genSpec.Count, "count", 20, "Number of jobs")
	generateCmd.Flags().Float64Var(&genSpec.VolumeMin, "volume-min", 10, "Minimum job volume")
	generateCmd.Flags().Float64Var(&genSpec.VolumeMax, "volume-max", 250, "Maximum job volume")
	generateCmd.Flags().IntVar(&genSpec.PriorityLevels, "priority-levels", 3, "Priorities are drawn from 1..N")
	generateCmd.Flags().Int64Var(&genSpec.PrintTimeMin, "print-time-min", 30, "Minimum print time")
	generateCmd.Flags().Int64Var(&genSpec.PrintTimeMax, "print-time-max", 240, "Maximum print time")
	generateCmd.Flags().StringVar(&genSpec.IDPrefix, "id-prefix", "job_", "Prefix for generated job ids")
	generateCmd.Flags().Float64Var(&genMaxVolume, "max-volume", 0, "Printer max volume to embed in the spec")
	generateCmd.Flags().IntVar(&genMaxItems, "max-items", 0, "Printer max items to embed in the spec")

	rootCmd.AddCommand(generateCmd)
}
