package cmd

import (
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/batch-planner/minmax"
)

func parseNumbers(args []string) ([]float64, error) {
	values := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		values[i] = v
	}
	return values, nil
}

var minmaxCmd = &cobra.Command{
	Use:   "minmax NUMBER...",
	Short: "Find the minimum and maximum of a list of numbers",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		values, err := parseNumbers(args)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		lo, hi, _ := minmax.Find(values)
		fmt.Printf("Array: %v\n", values)
		fmt.Printf("Minimum element: %g\n", lo)
		fmt.Printf("Maximum element: %g\n", hi)
	},
}

func init() {
	rootCmd.AddCommand(minmaxCmd)
}
