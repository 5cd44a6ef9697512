package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"vikarfaktura/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the currently loaded configuration and the resolved config file path.

This command validates the configuration before printing values.`,
	Example: `
  # Show active configuration
  vikarfaktura config show
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			fmt.Println("Invalid config:", err)
			return
		}

		if configPath := viper.ConfigFileUsed(); configPath != "" {
			fmt.Println("Config file loaded from:", configPath)
		} else {
			fmt.Println("No config file found, using built-in defaults.")
		}

		fmt.Println("Configuration:")
		fmt.Printf("vendor_markers: %s\n", strings.Join(cfg.VendorMarkers, ", "))
		fmt.Printf("tax_rate: %.2f\n", cfg.TaxRate)
		fmt.Printf("surcharge.token: %s\n", cfg.Surcharge.Token)
		fmt.Printf("surcharge.amount: %d\n", cfg.Surcharge.Amount)

		categories := make([]string, 0, len(cfg.Rates))
		for category := range cfg.Rates {
			categories = append(categories, category)
		}
		sort.Strings(categories)
		for _, category := range categories {
			row := cfg.Rates[category]
			fmt.Printf("rates.%s.holiday: %d/%d\n", category, row.Holiday.Day, row.Holiday.Night)
			fmt.Printf("rates.%s.weekend: %d/%d\n", category, row.Weekend.Day, row.Weekend.Night)
			fmt.Printf("rates.%s.weekday: %d/%d\n", category, row.Weekday.Day, row.Weekday.Night)
		}

		fmt.Printf("categories.synonyms: %d\n", len(cfg.Categories.Synonyms))
		fmt.Printf("locations.fallback: %s\n", cfg.Locations.Fallback)
		for i, rule := range cfg.Locations.Rules {
			fmt.Printf("locations.rules[%d]: %s -> %s\n", i, rule.Match, rule.Bucket)
		}

		fmt.Printf("invoice.agency.name: %s\n", cfg.Invoice.Agency.Name)
		fmt.Printf("invoice.customer.name: %s\n", cfg.Invoice.Customer.Name)
		fmt.Printf("invoice.payment.bank: %s\n", cfg.Invoice.Payment.Bank)
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
