package output

import (
	"fmt"
	"time"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"vikarfaktura/config"
	"vikarfaktura/shift"
)

var invoiceGridSizes = []uint{1, 2, 2, 1, 2, 1, 1, 1, 1}

// PDFWriter renders the paginated invoice: agency and customer blocks, the
// line-item table, and the totals and payment footer.
type PDFWriter struct {
	Invoice       config.Invoice
	TaxRate       float64
	InvoiceNumber int
	IssuedAt      time.Time
}

func (w *PDFWriter) Write(path string, lines []shift.PricedLine) error {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(15, 10, 15)

	w.writeAgencyBlock(m)
	w.writeCustomerBlock(m)
	w.writeInvoiceHeader(m)

	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, invoiceRow(line))
	}

	m.TableList(invoiceHeaders, rows, props.TableList{
		HeaderProp: props.TableListContent{
			Size:      9,
			GridSizes: invoiceGridSizes,
		},
		ContentProp: props.TableListContent{
			Size:      8,
			GridSizes: invoiceGridSizes,
		},
		Align:                consts.Left,
		AlternatedBackground: &color.Color{Red: 240, Green: 240, Blue: 240},
		HeaderContentSpace:   1,
		Line:                 false,
	})

	w.writeSummaryBlock(m, BuildSummary(lines, w.TaxRate))
	w.writePaymentBlock(m)

	if err := m.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("save pdf output %s: %w", path, err)
	}
	return nil
}

func (w *PDFWriter) writeAgencyBlock(m pdf.Maroto) {
	agency := w.Invoice.Agency

	m.Row(8, func() {
		m.Col(12, func() {
			m.Text(agency.Name, props.Text{Style: consts.Bold, Size: 14})
		})
	})
	for _, line := range []string{
		agency.Address,
		"CVR.nr. " + agency.CVR,
		fmt.Sprintf("Tlf: %s   Web: %s", agency.Phone, agency.Web),
	} {
		textRow(m, line, props.Text{Size: 10})
	}
	m.Row(4, func() {})
}

func (w *PDFWriter) writeCustomerBlock(m pdf.Maroto) {
	customer := w.Invoice.Customer

	textRow(m, "Til: "+customer.Name, props.Text{Style: consts.Bold, Size: 11})
	for _, line := range []string{
		"CVR: " + customer.CVR,
		"Kontaktperson: " + customer.Contact,
		"Email: " + customer.Email,
	} {
		textRow(m, line, props.Text{Size: 10})
	}
	m.Row(4, func() {})
}

func (w *PDFWriter) writeInvoiceHeader(m pdf.Maroto) {
	textRow(m, fmt.Sprintf("Faktura nr. %d", w.InvoiceNumber), props.Text{Style: consts.Bold, Size: 12})
	textRow(m, "Fakturadato: "+w.IssuedAt.Format("02.01.2006"), props.Text{Size: 10})
	m.Row(4, func() {})
}

func (w *PDFWriter) writeSummaryBlock(m pdf.Maroto, summary Summary) {
	m.Row(4, func() {})
	for _, line := range []string{
		fmt.Sprintf("Subtotal: %.2f kr", summary.Subtotal),
		fmt.Sprintf("Moms (%.0f%%): %.2f kr", w.TaxRate*100, summary.Tax),
		fmt.Sprintf("Total inkl. moms: %.2f kr", summary.Total),
	} {
		textRow(m, line, props.Text{Style: consts.Bold, Size: 10, Align: consts.Right})
	}
}

func (w *PDFWriter) writePaymentBlock(m pdf.Maroto) {
	payment := w.Invoice.Payment

	m.Row(5, func() {})
	textRow(m, fmt.Sprintf("Bank: %s | IBAN: %s | BIC: %s", payment.Bank, payment.IBAN, payment.BIC), props.Text{Size: 9})
	textRow(m, "Betalingsbetingelser: "+payment.Terms, props.Text{Size: 9})
}

func textRow(m pdf.Maroto, content string, text props.Text) {
	m.Row(6, func() {
		m.Col(12, func() {
			m.Text(content, text)
		})
	})
}
