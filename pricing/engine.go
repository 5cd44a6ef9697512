// Package pricing resolves the hourly rate and line total for canonical
// shift lines against the configured tariff policy.
package pricing

import (
	"fmt"
	"regexp"
	"strings"

	"vikarfaktura/config"
	"vikarfaktura/internal/timeutil"
	"vikarfaktura/shift"
)

// Shifts starting before 15:00 are priced at the day rate, from 15:00 on at
// the night rate. There is no other time boundary.
const nightStartHour = 15

// Engine prices one line at a time. It holds only policy data, no state
// across lines; the holiday set is supplied per call.
type Engine struct {
	rates       map[shift.Category]config.CategoryRates
	surcharge   config.Surcharge
	surchargeRe *regexp.Regexp
}

func NewEngine(cfg config.Config) (*Engine, error) {
	rates := make(map[shift.Category]config.CategoryRates, len(cfg.Rates))
	for name, row := range cfg.Rates {
		rates[shift.Category(strings.ToLower(name))] = row
	}

	token := strings.TrimSpace(cfg.Surcharge.Token)
	if token == "" {
		return nil, fmt.Errorf("surcharge token must not be empty")
	}
	surchargeRe, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(token) + `\b`)
	if err != nil {
		return nil, fmt.Errorf("compile surcharge token %q: %w", token, err)
	}

	return &Engine{
		rates:       rates,
		surcharge:   cfg.Surcharge,
		surchargeRe: surchargeRe,
	}, nil
}

// Price attaches holiday flag, hourly rate, and line total to one line.
// Holiday status takes precedence over weekend status; a holiday weekend
// uses the holiday row. Unrecognized categories price at 0 and are thereby
// excluded from billing.
func (e *Engine) Price(line shift.Line, holidays shift.HolidaySet) (shift.PricedLine, error) {
	startHour, err := timeutil.StartHour(line.TimeRange)
	if err != nil {
		return shift.PricedLine{}, fmt.Errorf("price line for %s: %w", line.Employee, err)
	}

	holiday := holidays.Contains(line.Date)
	rate := e.baseRate(line.Category, holiday, timeutil.IsWeekend(line.Date), startHour)
	if rate > 0 && e.surchargeRe.MatchString(line.RawLocation) {
		rate += e.surcharge.Amount
	}

	return shift.PricedLine{
		Line:    line,
		Holiday: holiday,
		Rate:    rate,
		Total:   line.Hours * float64(rate),
	}, nil
}

// PriceAll prices every line in order against the same holiday set.
func (e *Engine) PriceAll(lines []shift.Line, holidays shift.HolidaySet) ([]shift.PricedLine, error) {
	priced := make([]shift.PricedLine, 0, len(lines))
	for _, line := range lines {
		p, err := e.Price(line, holidays)
		if err != nil {
			return nil, err
		}
		priced = append(priced, p)
	}
	return priced, nil
}

func (e *Engine) baseRate(category shift.Category, holiday, weekend bool, startHour int) int {
	row, ok := e.rates[category]
	if !ok {
		return 0
	}

	var slots config.RateSlots
	switch {
	case holiday:
		slots = row.Holiday
	case weekend:
		slots = row.Weekend
	default:
		slots = row.Weekday
	}

	if startHour < nightStartHour {
		return slots.Day
	}
	return slots.Night
}
