package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the active configuration file.",
	Long: `Delete the configuration file currently selected by vikarfaktura.

Deleting the file does not stop invoicing: subsequent runs fall back to the
built-in tariff defaults. The command fails when no configuration file is
active, since there is nothing to delete.`,
	Example: `
  # Back to the built-in tariff
  vikarfaktura config delete

  # Delete a config at a custom path
  vikarfaktura --configFile ./kunde.yaml config delete
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := viper.ConfigFileUsed()
		if configPath == "" {
			return fmt.Errorf("no configuration file is active; runs already use the built-in tariff defaults")
		}

		if err := os.Remove(configPath); err != nil {
			return fmt.Errorf("error deleting configuration file: %w", err)
		}

		fmt.Printf("Configuration file deleted: %s\n", configPath)
		fmt.Println("Subsequent runs use the built-in tariff defaults.")
		return nil
	},
}

func init() {
	configCmd.AddCommand(configDeleteCmd)
}
