package pricing

import (
	"testing"
	"time"

	"vikarfaktura/config"
	"vikarfaktura/shift"
)

var (
	tuesday  = time.Date(2025, 4, 8, 0, 0, 0, 0, time.Local)
	saturday = time.Date(2025, 4, 5, 0, 0, 0, 0, time.Local)
	sunday   = time.Date(2025, 4, 6, 0, 0, 0, 0, time.Local)
	thursday = time.Date(2025, 4, 17, 0, 0, 0, 0, time.Local)
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()

	cfg, err := config.Default()
	if err != nil {
		t.Fatalf("load default config: %v", err)
	}
	engine, err := NewEngine(*cfg)
	if err != nil {
		t.Fatalf("build engine: %v", err)
	}
	return engine
}

func testLine(category shift.Category, date time.Time, timeRange string, hours float64) shift.Line {
	return shift.Line{
		Date:        date,
		Employee:    "Test Medarbejder",
		TimeRange:   timeRange,
		Hours:       hours,
		RawCategory: string(category),
		Category:    category,
		Bucket:      "herlev",
		RawLocation: "Plejecenter Herlev",
	}
}

func TestPrice_RateTable(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)
	holidays := shift.NewHolidaySet(thursday)

	cases := []struct {
		name      string
		category  shift.Category
		date      time.Time
		timeRange string
		want      int
	}{
		{"unskilled weekday day", shift.CategoryUnskilled, tuesday, "08:00-15:00", 175},
		{"unskilled weekday night", shift.CategoryUnskilled, tuesday, "15:00-23:00", 210},
		{"unskilled weekend day", shift.CategoryUnskilled, saturday, "08:00-15:00", 215},
		{"unskilled weekend night", shift.CategoryUnskilled, sunday, "16:00-23:00", 220},
		{"unskilled holiday day", shift.CategoryUnskilled, thursday, "08:00-15:00", 215},
		{"unskilled holiday night", shift.CategoryUnskilled, thursday, "16:00-23:00", 220},
		{"helper weekday day", shift.CategoryHelper, tuesday, "08:00-15:00", 200},
		{"helper weekday night", shift.CategoryHelper, tuesday, "15:00-23:00", 210},
		{"helper weekend day", shift.CategoryHelper, saturday, "08:00-15:00", 215},
		{"helper weekend night", shift.CategoryHelper, saturday, "16:00-23:00", 220},
		{"helper holiday day", shift.CategoryHelper, thursday, "08:00-15:00", 215},
		{"helper holiday night", shift.CategoryHelper, thursday, "16:00-23:00", 220},
		{"assistant weekday day", shift.CategoryAssistant, tuesday, "08:00-15:00", 220},
		{"assistant weekday night", shift.CategoryAssistant, tuesday, "15:00-23:00", 225},
		{"assistant weekend day", shift.CategoryAssistant, sunday, "08:00-15:00", 230},
		{"assistant weekend night", shift.CategoryAssistant, saturday, "16:00-23:00", 240},
		{"assistant holiday day", shift.CategoryAssistant, thursday, "08:00-15:00", 230},
		{"assistant holiday night", shift.CategoryAssistant, thursday, "20:00-23:00", 240},
		{"unknown category", shift.CategoryUnknown, tuesday, "08:00-15:00", 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			priced, err := engine.Price(testLine(c.category, c.date, c.timeRange, 8), holidays)
			if err != nil {
				t.Fatalf("price line: %v", err)
			}
			if priced.Rate != c.want {
				t.Fatalf("want rate %d, got %d", c.want, priced.Rate)
			}
			if priced.Total != 8*float64(c.want) {
				t.Fatalf("want total %v, got %v", 8*float64(c.want), priced.Total)
			}
		})
	}
}

func TestPrice_DayNightBoundary(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)

	day, err := engine.Price(testLine(shift.CategoryUnskilled, tuesday, "14:00-22:00", 8), shift.HolidaySet{})
	if err != nil {
		t.Fatalf("price 14:00 start: %v", err)
	}
	if day.Rate != 175 {
		t.Fatalf("start hour 14 must use day rate 175, got %d", day.Rate)
	}

	night, err := engine.Price(testLine(shift.CategoryUnskilled, tuesday, "15:00-23:00", 8), shift.HolidaySet{})
	if err != nil {
		t.Fatalf("price 15:00 start: %v", err)
	}
	if night.Rate != 210 {
		t.Fatalf("start hour 15 must use night rate 210, got %d", night.Rate)
	}
}

func TestPrice_HolidayPrecedesWeekend(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)
	holidays := shift.NewHolidaySet(sunday)

	priced, err := engine.Price(testLine(shift.CategoryAssistant, sunday, "08:00-15:00", 8), holidays)
	if err != nil {
		t.Fatalf("price line: %v", err)
	}
	if !priced.Holiday {
		t.Fatalf("date in holiday set must flag holiday regardless of weekday")
	}
	if priced.Rate != 230 {
		t.Fatalf("holiday row must win on a weekend, got %d", priced.Rate)
	}
}

func TestPrice_SurchargeIsAdditiveAndIndependent(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)
	holidays := shift.NewHolidaySet(thursday)

	cases := []struct {
		category  shift.Category
		date      time.Time
		timeRange string
	}{
		{shift.CategoryUnskilled, tuesday, "08:00-15:00"},
		{shift.CategoryUnskilled, saturday, "16:00-23:00"},
		{shift.CategoryHelper, thursday, "08:00-15:00"},
		{shift.CategoryHelper, tuesday, "15:00-23:00"},
		{shift.CategoryAssistant, thursday, "20:00-23:00"},
		{shift.CategoryAssistant, sunday, "08:00-15:00"},
	}

	for _, c := range cases {
		plain := testLine(c.category, c.date, c.timeRange, 8)
		marked := plain
		marked.RawLocation = "Aflastning hos Kirsten"

		without, err := engine.Price(plain, holidays)
		if err != nil {
			t.Fatalf("price plain line: %v", err)
		}
		with, err := engine.Price(marked, holidays)
		if err != nil {
			t.Fatalf("price marked line: %v", err)
		}
		if with.Rate != without.Rate+10 {
			t.Fatalf("%s %s: surcharge must add exactly 10 (got %d vs %d)",
				c.category, c.timeRange, with.Rate, without.Rate)
		}
	}
}

func TestPrice_SurchargeRequiresWholeWord(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)

	line := testLine(shift.CategoryHelper, tuesday, "08:00-15:00", 8)
	line.RawLocation = "Kirstensminde Plejehjem"

	priced, err := engine.Price(line, shift.HolidaySet{})
	if err != nil {
		t.Fatalf("price line: %v", err)
	}
	if priced.Rate != 200 {
		t.Fatalf("embedded token must not trigger surcharge, got %d", priced.Rate)
	}

	line.RawLocation = "Plejecenter Kirsten Marie"
	priced, err = engine.Price(line, shift.HolidaySet{})
	if err != nil {
		t.Fatalf("price line: %v", err)
	}
	if priced.Rate != 210 {
		t.Fatalf("whole-word token must trigger surcharge, got %d", priced.Rate)
	}
}

func TestPrice_UnknownCategoryNeverGetsSurcharge(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)

	line := testLine(shift.CategoryUnknown, tuesday, "08:00-15:00", 8)
	line.RawLocation = "Hos Kirsten"

	priced, err := engine.Price(line, shift.HolidaySet{})
	if err != nil {
		t.Fatalf("price line: %v", err)
	}
	if priced.Rate != 0 || priced.Total != 0 {
		t.Fatalf("unknown category must stay unbilled, got rate %d total %v", priced.Rate, priced.Total)
	}
}

func TestPrice_Deterministic(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)
	holidays := shift.NewHolidaySet(thursday)
	line := testLine(shift.CategoryHelper, thursday, "15:00-23:00", 6)

	first, err := engine.Price(line, holidays)
	if err != nil {
		t.Fatalf("price line: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := engine.Price(line, holidays)
		if err != nil {
			t.Fatalf("price line: %v", err)
		}
		if again != first {
			t.Fatalf("repeated pricing diverged: %+v vs %+v", again, first)
		}
	}
}

func TestPrice_EndToEndExamples(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)

	// Assistant on a Tuesday, day shift: 220/h, 7.5h -> 1650.00.
	priced, err := engine.Price(testLine(shift.CategoryAssistant, tuesday, "09:00-16:30", 7.5), shift.HolidaySet{})
	if err != nil {
		t.Fatalf("price line: %v", err)
	}
	if priced.Rate != 220 || priced.Total != 1650 {
		t.Fatalf("want 220/1650, got %d/%v", priced.Rate, priced.Total)
	}

	// Assistant on a Saturday evening: weekend night 240, no holiday flag.
	priced, err = engine.Price(testLine(shift.CategoryAssistant, saturday, "16:00-23:00", 7), shift.HolidaySet{})
	if err != nil {
		t.Fatalf("price line: %v", err)
	}
	if priced.Rate != 240 || priced.Holiday {
		t.Fatalf("want 240 and no holiday, got %d holiday=%t", priced.Rate, priced.Holiday)
	}

	// Assistant on a holiday night at a surcharge location: 240+10, 8h -> 2000.00.
	line := testLine(shift.CategoryAssistant, thursday, "20:00-23:00", 8)
	line.RawLocation = "Hos Kirsten"
	priced, err = engine.Price(line, shift.NewHolidaySet(thursday))
	if err != nil {
		t.Fatalf("price line: %v", err)
	}
	if priced.Rate != 250 || priced.Total != 2000 {
		t.Fatalf("want 250/2000, got %d/%v", priced.Rate, priced.Total)
	}
}

func TestPrice_RejectsMalformedTimeRange(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)
	line := testLine(shift.CategoryHelper, tuesday, "night-23:00", 8)

	if _, err := engine.Price(line, shift.HolidaySet{}); err == nil {
		t.Fatalf("expected error for malformed time range")
	}
}

func TestNewEngine_RejectsEmptySurchargeToken(t *testing.T) {
	t.Parallel()

	cfg, err := config.Default()
	if err != nil {
		t.Fatalf("load default config: %v", err)
	}
	cfg.Surcharge.Token = "  "

	if _, err := NewEngine(*cfg); err == nil {
		t.Fatalf("expected error for empty surcharge token")
	}
}
