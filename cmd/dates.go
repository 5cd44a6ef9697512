package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"vikarfaktura/config"
	"vikarfaktura/importer"
	"vikarfaktura/shift"
)

var (
	datesInput  string
	datesFormat string
)

var datesCmd = &cobra.Command{
	Use:   "dates",
	Short: "List the distinct dates in a schedule file",
	Long: `Normalize a schedule file and list the distinct billable dates with
weekday and ISO week. Use the list to decide which dates to pass as
--holiday when generating the invoice.`,
	Example: `
  vikarfaktura dates -i vagtplan.xlsx
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		result, err := importer.ImportFile(datesInput, datesFormat, *cfg)
		if err != nil {
			return err
		}

		dates := shift.DistinctDates(result.Lines)
		for _, date := range dates {
			_, week := date.ISOWeek()
			fmt.Printf("%s  %-9s uge %d\n", date.Format("02.01.2006"), date.Weekday(), week)
		}
		fmt.Printf("Dates: %d, Billable rows: %d (of %d read)\n", len(dates), len(result.Lines), result.RowsRead)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(datesCmd)

	datesCmd.Flags().StringVarP(&datesInput, "input", "i", "", "Schedule file path (.xlsx, .xlsm, .xls, .csv)")
	datesCmd.Flags().StringVarP(&datesFormat, "format", "f", "", "Input format: csv|excel (optional, inferred from extension when omitted)")

	_ = datesCmd.MarkFlagRequired("input")
}
