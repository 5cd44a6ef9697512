package output

import "vikarfaktura/shift"

// Summary is the totals block printed under the invoice table.
type Summary struct {
	Subtotal float64
	Tax      float64
	Total    float64
}

func BuildSummary(lines []shift.PricedLine, taxRate float64) Summary {
	subtotal := 0.0
	for _, line := range lines {
		subtotal += line.Total
	}
	tax := subtotal * taxRate
	return Summary{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}
}
