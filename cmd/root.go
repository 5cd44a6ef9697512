package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"vikarfaktura/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vikarfaktura",
	Short: "Generate staffing invoices from weekly shift-schedule spreadsheets.",
	Long: `
**********************************************
*              VIKARFAKTURA                  *
**********************************************

This CLI reads a weekly shift schedule (Excel, CSV), normalizes the rows,
prices each shift from the configured tariff (staff group, day/night,
weekend, holidays, location surcharge), and writes the invoice as a
spreadsheet and a PDF.

Holidays are chosen per run: list the dates in the file with "dates",
then pass the holidays to "generate", or use the local web UI ("serve").
`,
	Example: `
  # Create configuration file
  vikarfaktura config create

  # List the distinct dates in a schedule (to pick holidays)
  vikarfaktura dates -i vagtplan.xlsx

  # Generate invoice 123 with one holiday
  vikarfaktura generate -i vagtplan.xlsx --invoice 123 --holiday 17.04.2025

  # Start the local web UI
  vikarfaktura serve
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.vikarfaktura.yaml, then ./.vikarfaktura.yaml)")
}

// initConfig reads in config file and ENV variables if set. The built-in
// defaults are complete, so a missing config file is not an error.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".vikarfaktura")
	}

	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}
