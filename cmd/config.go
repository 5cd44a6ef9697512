package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage vikarfaktura configuration file values.",
	Long: `Create, edit, display, and delete the vikarfaktura configuration file.

The configuration stores the invoicing policy:
- vendor_markers / tax_rate / surcharge.token+amount
- rates.<category>.{holiday,weekend,weekday}.{day,night}
- categories.synonyms / locations.rules+fallback
- invoice.agency / invoice.customer / invoice.payment`,
	Example: `
  # Create default config in $HOME/.vikarfaktura.yaml
  vikarfaktura config create

  # Show active config and source file
  vikarfaktura config show

  # Open active config in editor (creates example if missing)
  vikarfaktura config edit

  # Delete active config file
  vikarfaktura config delete
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
