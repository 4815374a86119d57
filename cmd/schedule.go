package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/batch-planner/planner"
	"github.com/inference-sim/batch-planner/planner/workload"
	"github.com/inference-sim/batch-planner/server"
)

var (
	jobsPath     string  // Path to the job spec (YAML or JSON)
	maxVolume    float64 // Max total volume per batch
	maxItems     int     // Max jobs per batch
	printerName  string  // Printer profile to take constraints from
	printersPath string  // Path to printer profiles
	outputFormat string  // table or json
)

// constraintSources gathers every place constraints may come from.
// Precedence, lowest first: job file, printer profile, explicit flags.
type constraintSources struct {
	fromSpec    *planner.Constraints
	fromProfile *planner.Constraints
	maxVolume   *float64 // non-nil only when the flag was set
	maxItems    *int
}

func (s constraintSources) resolve() (planner.Constraints, error) {
	var c planner.Constraints
	volumeSet, itemsSet := false, false
	for _, base := range []*planner.Constraints{s.fromSpec, s.fromProfile} {
		if base != nil {
			c = *base
			volumeSet, itemsSet = true, true
		}
	}
	if s.maxVolume != nil {
		c.MaxVolume = *s.maxVolume
		volumeSet = true
	}
	if s.maxItems != nil {
		c.MaxItems = *s.maxItems
		itemsSet = true
	}
	if !volumeSet || !itemsSet {
		return planner.Constraints{}, fmt.Errorf("printer constraints incomplete: set --max-volume and --max-items, --printer, or a printer section in the job file")
	}
	return c, c.Validate()
}

// scheduleCmd plans a job file and prints the result
var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Plan print batches for a job file",
	Run: func(cmd *cobra.Command, args []string) {
		spec, err := workload.LoadJobSpec(jobsPath)
		if err != nil {
			logrus.Fatalf("Failed to load jobs %s: %v", jobsPath, err)
		}
		jobs, err := spec.Resolve()
		if err != nil {
			logrus.Fatalf("Invalid job spec %s: %v", jobsPath, err)
		}

		sources := constraintSources{fromSpec: spec.Printer}
		if cmd.Flags().Changed("printer") {
			profiles, err := LoadPrinterProfiles(printersPath)
			if err != nil {
				logrus.Fatalf("%v", err)
			}
			c, err := profiles.Lookup(printerName)
			if err != nil {
				logrus.Fatalf("%v", err)
			}
			sources.fromProfile = &c
		}
		if cmd.Flags().Changed("max-volume") {
			sources.maxVolume = &maxVolume
		}
		if cmd.Flags().Changed("max-items") {
			sources.maxItems = &maxItems
		}
		constraints, err := sources.resolve()
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		logrus.Infof("Planning %d jobs with max_volume=%g, max_items=%d", len(jobs), constraints.MaxVolume, constraints.MaxItems)
		plan, err := planner.Schedule(jobs, constraints)
		if err != nil {
			logrus.Fatalf("Scheduling failed: %v", err)
		}

		switch outputFormat {
		case "json":
			data, err := json.MarshalIndent(server.ScheduleResponse{Plan: plan, Summary: plan.Summary()}, "", "  ")
			if err != nil {
				logrus.Fatalf("JSON marshal failed: %v", err)
			}
			fmt.Println(string(data))
		default:
			fmt.Println(renderPlan(plan, constraints))
		}
	},
}

func init() {
	scheduleCmd.Flags().StringVar(&jobsPath, "jobs", "", "Path to job spec (YAML or JSON)")
	_ = scheduleCmd.MarkFlagRequired("jobs")
	scheduleCmd.Flags().Float64Var(&maxVolume, "max-volume", 0, "Maximum total volume per batch (overrides file and profile)")
	scheduleCmd.Flags().IntVar(&maxItems, "max-items", 0, "Maximum jobs per batch (overrides file and profile)")
	scheduleCmd.Flags().StringVar(&printerName, "printer", "", "Printer profile id from --printers")
	scheduleCmd.Flags().StringVar(&printersPath, "printers", "printers.yaml", "Path to printer profiles")
	scheduleCmd.Flags().StringVar(&outputFormat, "output", "table", "Output format (table, json)")

	rootCmd.AddCommand(scheduleCmd)
}
