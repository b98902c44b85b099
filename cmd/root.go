package cmd

import (
	"fmt"
	"os"

	"github.com/markusressel/servo2go/cmd/config"
	"github.com/markusressel/servo2go/cmd/global"
	"github.com/markusressel/servo2go/internal"
	"github.com/markusressel/servo2go/internal/configuration"
	"github.com/markusressel/servo2go/internal/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "servo2go",
	Short: "A discrete-time feedback controller.",
	Long: `servo2go drives a pluggable control law (PID, direct or bang-bang)
with a stream of timestamped measurements of a simulated process.`,
	// this is the default command to run when no subcommand is specified
	Run: func(cmd *cobra.Command, args []string) {
		setupUi()
		printHeader()

		loadAndValidateConfig()

		loop, err := internal.RunDaemon(configuration.CurrentConfig)
		if loop != nil {
			printLoop(loop)
		}
		if err != nil {
			ui.Fatal("%v", err)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&global.CfgFile, "config", "c", "", "config file (default is $HOME/servo2go.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&global.NoColor, "no-color", "", false, "Disable all terminal output coloration")
	rootCmd.PersistentFlags().BoolVarP(&global.NoStyle, "no-style", "", false, "Disable all terminal output styling")
	rootCmd.PersistentFlags().BoolVarP(&global.Verbose, "verbose", "v", false, "More verbose output")

	rootCmd.AddCommand(config.Command)
}

func setupUi() {
	ui.SetDebugEnabled(global.Verbose)

	if global.NoColor {
		pterm.DisableColor()
	}
	if global.NoStyle {
		pterm.DisableStyling()
	}
}

// Print a large text with the LetterStyle from the standard theme.
func printHeader() {
	err := pterm.DefaultBigText.WithLetters(
		pterm.NewLettersFromStringWithStyle("servo", pterm.NewStyle(pterm.FgLightBlue)),
		pterm.NewLettersFromStringWithStyle("2", pterm.NewStyle(pterm.FgWhite)),
		pterm.NewLettersFromStringWithStyle("go", pterm.NewStyle(pterm.FgLightBlue)),
	).Render()
	if err != nil {
		fmt.Println("servo2go")
	}
}

// loadAndValidateConfig populates configuration.CurrentConfig and
// exits if it is invalid
func loadAndValidateConfig() {
	configPath := configuration.DetectAndReadConfigFile()
	if configPath != "" {
		ui.Info("Using configuration file at: %s", configPath)
	} else {
		ui.Info("No configuration file found, using defaults")
	}
	if err := configuration.LoadConfig(); err != nil {
		ui.Fatal("Unable to decode configuration: %v", err)
	}
	if err := configuration.Validate(); err != nil {
		ui.Fatal("Config Validation Error: %v", err)
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.OnInitialize(func() {
		configuration.InitConfig(global.CfgFile)
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
