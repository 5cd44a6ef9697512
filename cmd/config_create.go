package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a configuration file with the built-in tariff.",
	Long: `Write a configuration file pre-filled with the built-in tariff: the rate
table, category synonyms, location rules, vendor markers, and the invoice
parties. The same template backs "config edit".

If a configuration file is already in use, no new file is written.`,
	Example: `
  # Create default config at $HOME/.vikarfaktura.yaml
  vikarfaktura config create

  # Create at a custom path
  vikarfaktura --configFile ./kunde.yaml config create
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return saveDefaultConfig()
	},
}

func saveDefaultConfig() error {
	configPath, err := resolveConfigPath(cfgFile, viper.ConfigFileUsed())
	if err != nil {
		return err
	}

	created, err := ensureConfigTemplate(configPath)
	if err != nil {
		return err
	}

	if !created {
		fmt.Printf("Config file already exists at: %s (not overwritten)\n", configPath)
		return nil
	}

	fmt.Printf("New config file created at: %s\n", configPath)
	fmt.Println("Review the rate table and invoice parties before generating the first invoice.")
	return nil
}

func init() {
	configCmd.AddCommand(configCreateCmd)
}
