package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/batch-planner/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a routine from an interactive menu",
	Run: func(cmd *cobra.Command, args []string) {
		if err := tui.Run(); err != nil {
			logrus.Fatalf("%v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(menuCmd)
}
