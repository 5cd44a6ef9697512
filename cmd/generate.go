package cmd

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"vikarfaktura/config"
	"vikarfaktura/importer"
	"vikarfaktura/output"
	"vikarfaktura/pricing"
	"vikarfaktura/shift"
)

var (
	generateInput       string
	generateFormat      string
	generateInvoiceNo   int
	generateHolidays    []string
	generateOutputDir   string
	generateTableFormat string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the invoice spreadsheet and PDF from one schedule file",
	Long: `Read a schedule file, normalize and price every shift, and write the
invoice artifacts named after the invoice number and the earliest ISO week.

Holidays among the schedule dates are passed with repeatable --holiday flags
(format DD.MM.YYYY); use "vikarfaktura dates" to list the candidates first.
Rows mentioning the vendor markers and rows without positive hours are
filtered; unknown staff groups are priced at 0. The run summary reports all
filtered and zero-rated counts.`,
	Example: `
  # Invoice 123, no holidays in the week
  vikarfaktura generate -i vagtplan.xlsx --invoice 123

  # Easter week with two holidays
  vikarfaktura generate -i vagtplan.xlsx --invoice 124 --holiday 17.04.2025 --holiday 18.04.2025

  # Write artifacts into a folder, tabular artifact as CSV
  vikarfaktura generate -i vagtplan.csv --invoice 125 --output-dir ./fakturaer --table-format csv
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		if generateInvoiceNo <= 0 {
			return fmt.Errorf("--invoice must be a positive integer")
		}

		holidays, err := parseHolidayFlags(generateHolidays)
		if err != nil {
			return err
		}

		result, err := importer.ImportFile(generateInput, generateFormat, *cfg)
		if err != nil {
			return err
		}

		engine, err := pricing.NewEngine(*cfg)
		if err != nil {
			return err
		}
		priced, err := engine.PriceAll(result.Lines, shift.NewHolidaySet(holidays...))
		if err != nil {
			return err
		}

		tableWriter, err := output.WriterForFormat(generateTableFormat)
		if err != nil {
			return err
		}
		tableName, err := tableFileName(generateTableFormat, generateInvoiceNo, priced)
		if err != nil {
			return err
		}
		if err := tableWriter.Write(filepath.Join(generateOutputDir, tableName), priced); err != nil {
			return err
		}

		pdfName := output.PDFFileName(generateInvoiceNo, priced)
		pdfWriter := &output.PDFWriter{
			Invoice:       cfg.Invoice,
			TaxRate:       cfg.TaxRate,
			InvoiceNumber: generateInvoiceNo,
			IssuedAt:      time.Now(),
		}
		if err := pdfWriter.Write(filepath.Join(generateOutputDir, pdfName), priced); err != nil {
			return err
		}

		summary := output.BuildSummary(priced, cfg.TaxRate)
		fmt.Printf("Invoice %d generated. Rows read: %d, Billed: %d, Vendor rows filtered: %d, Zero-hour rows filtered: %d, Unknown staff groups (rated 0): %d\n",
			generateInvoiceNo,
			result.RowsRead,
			len(priced),
			result.VendorRows,
			result.ZeroHourRows,
			result.UnknownCategoryRows,
		)
		fmt.Printf("Subtotal: %.2f kr, Moms (%.0f%%): %.2f kr, Total: %.2f kr\n",
			summary.Subtotal, cfg.TaxRate*100, summary.Tax, summary.Total)
		fmt.Printf("Files: %s, %s\n",
			filepath.Join(generateOutputDir, tableName),
			filepath.Join(generateOutputDir, pdfName),
		)
		return nil
	},
}

func parseHolidayFlags(values []string) ([]time.Time, error) {
	holidays := make([]time.Time, 0, len(values))
	for _, value := range values {
		parsed, err := time.ParseInLocation("02.01.2006", strings.TrimSpace(value), time.Local)
		if err != nil {
			return nil, fmt.Errorf("invalid --holiday value %q (expected DD.MM.YYYY)", value)
		}
		holidays = append(holidays, parsed)
	}
	return holidays, nil
}

func tableFileName(format string, invoiceNumber int, lines []shift.PricedLine) (string, error) {
	switch strings.TrimSpace(strings.ToLower(format)) {
	case "excel", "xlsx":
		return output.ExcelFileName(invoiceNumber, lines), nil
	case "csv":
		return output.CSVFileName(invoiceNumber, lines), nil
	default:
		return "", fmt.Errorf("unsupported table format: %s (supported: excel, csv)", format)
	}
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateInput, "input", "i", "", "Schedule file path (.xlsx, .xlsm, .xls, .csv)")
	generateCmd.Flags().StringVarP(&generateFormat, "format", "f", "", "Input format: csv|excel (optional, inferred from extension when omitted)")
	generateCmd.Flags().IntVar(&generateInvoiceNo, "invoice", 0, "Invoice number (positive integer)")
	generateCmd.Flags().StringArrayVar(&generateHolidays, "holiday", nil, "Holiday date among the schedule dates, DD.MM.YYYY (repeatable)")
	generateCmd.Flags().StringVar(&generateOutputDir, "output-dir", ".", "Directory for the generated artifacts")
	generateCmd.Flags().StringVar(&generateTableFormat, "table-format", "excel", "Tabular artifact format: excel|csv")

	_ = generateCmd.MarkFlagRequired("input")
	_ = generateCmd.MarkFlagRequired("invoice")
}
