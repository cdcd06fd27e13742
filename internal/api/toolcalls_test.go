package api

import "testing"

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"20251228", "2025-12-28"},
		{"2025-12-28", "2025-12-28"},
		{"December 28", "2026-12-28"},
		{"28 December", "2026-12-28"},
		{"January 15", "2025-01-15"},
		{"feb 5", "2025-02-05"},
		{"March 3", "2026-03-03"},
		{"", "2025-12-20"},
		{"sometime soon", "2025-12-20"},
		{"December", "2025-12-20"},
	}
	for _, tc := range cases {
		if got := normalizeDate(tc.in); got != tc.want {
			t.Errorf("normalizeDate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeDate_TwoMonthsIsDeterministic(t *testing.T) {
	// Earliest calendar month wins regardless of word order.
	for i := 0; i < 20; i++ {
		if got := normalizeDate("15 march or january"); got != "2025-01-15" {
			t.Fatalf("normalizeDate = %q, want 2025-01-15", got)
		}
	}
}
