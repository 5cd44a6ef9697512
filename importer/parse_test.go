package importer

import "testing"

func TestParseHours(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want float64
	}{
		{"8", 8},
		{"7.5", 7.5},
		{"7,5", 7.5},
		{"0,25", 0.25},
		{"1.007,5", 1007.5},
	}
	for _, c := range cases {
		got, err := parseHours(c.raw)
		if err != nil {
			t.Fatalf("parse %q: %v", c.raw, err)
		}
		if got != c.want {
			t.Fatalf("parse %q: want %v, got %v", c.raw, c.want, got)
		}
	}
}

func TestParseHours_Rejects(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "   ", "otte", "8t"} {
		if _, err := parseHours(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	parsed, err := parseDate("17.04.2025")
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	if parsed.Day() != 17 || parsed.Month() != 4 || parsed.Year() != 2025 {
		t.Fatalf("unexpected date: %v", parsed)
	}

	for _, raw := range []string{"2025-04-17", "17/04/2025", "17.04.25", ""} {
		if _, err := parseDate(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestClipTimeToken(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want string
	}{
		{"07:30:00", "07:30"},
		{"07:30", "07:30"},
		{" 15:00:00 ", "15:00"},
		{"9:30", "9:30"},
	}
	for _, c := range cases {
		if got := clipTimeToken(c.raw); got != c.want {
			t.Fatalf("clip %q: want %q, got %q", c.raw, c.want, got)
		}
	}
}
