package cmd

import (
	"github.com/markusressel/servo2go/internal"
	"github.com/markusressel/servo2go/internal/configuration"
	"github.com/markusressel/servo2go/internal/ui"
	"github.com/spf13/cobra"
)

var (
	simulateIterations int
	simulateOutput     string
	simulateMetrics    bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the control loop against a simulated clock",
	Long: `Runs all configured iterations back to back, advancing a synthetic
clock by the configured interval between two measurements, and prints
the resulting process values.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		setupUi()
		loadAndValidateConfig()

		config := configuration.CurrentConfig
		if cmd.Flags().Changed("iterations") {
			config.Loop.Iterations = simulateIterations
		}
		if cmd.Flags().Changed("output") {
			config.Trace.Path = simulateOutput
		}

		loop, err := internal.RunSimulation(config)
		if loop != nil {
			printLoop(loop)
			if simulateMetrics {
				printMetrics(loop)
			}
		}
		if err != nil {
			ui.Fatal("%v", err)
		}
	},
}

func init() {
	simulateCmd.Flags().IntVarP(&simulateIterations, "iterations", "n", 0, "Number of iterations (overrides loop.iterations)")
	simulateCmd.Flags().StringVarP(&simulateOutput, "output", "o", "", "Trace file for the process values (overrides trace.path)")
	simulateCmd.Flags().BoolVarP(&simulateMetrics, "metrics", "m", false, "Print the loop metrics in the prometheus text format")

	rootCmd.AddCommand(simulateCmd)
}
