package patterns

import "testing"

func TestAirlineRE(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"I booked Air India yesterday", "Air India"},
		{"flying with saudia next month", "saudia"},
		{"the emirates flight was delayed", "emirates"},
		{"we flew with BudgetWings", ""},
	}
	for _, tc := range cases {
		m := AirlineRE.FindStringSubmatch(tc.text)
		got := ""
		if m != nil {
			got = m[1]
		}
		if got != tc.want {
			t.Errorf("AirlineRE(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestFlightNumberRE(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"your flight AI 101 departs soon", "AI 101"},
		{"flight TK-1234 to Istanbul", "TK-1234"},
		{"flight EK567 is confirmed", "EK567"},
		{"no flight number here", ""},
	}
	for _, tc := range cases {
		m := FlightNumberRE.FindStringSubmatch(tc.text)
		got := ""
		if m != nil {
			got = m[1]
		}
		if got != tc.want {
			t.Errorf("FlightNumberRE(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestRouteREs_Order(t *testing.T) {
	cases := []struct {
		text        string
		origin, dst string
	}{
		{"I am flying from Bangalore to Jeddah", "Bangalore", "Jeddah"},
		{"Bangalore to Jeddah", "Bangalore", "Jeddah"},
		{"departing from New Delhi to Riyadh", "New Delhi", "Riyadh"},
		{"from BLR to DXB", "BLR", "DXB"},
	}
	for _, tc := range cases {
		var origin, dst string
		for _, re := range RouteREs {
			if m := re.FindStringSubmatch(tc.text); m != nil {
				origin, dst = m[1], m[2]
				break
			}
		}
		if origin != tc.origin || dst != tc.dst {
			t.Errorf("route(%q) = (%q, %q), want (%q, %q)", tc.text, origin, dst, tc.origin, tc.dst)
		}
	}
}

func TestDateREs_Shapes(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"departing 15th December 2025", "15th December 2025"},
		{"departing December 15", "December 15"},
		{"on 15/12/2025 in the morning", "15/12/2025"},
		{"scheduled 2025-12-15 depart", "2025-12-15"},
		{"on December fifteenth if possible", "December fifteenth"},
	}
	for _, tc := range cases {
		got := ""
		for _, re := range DateREs {
			if m := re.FindStringSubmatch(tc.text); m != nil {
				got = m[1]
				break
			}
		}
		if got != tc.want {
			t.Errorf("date(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestTimeRE(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"departs 4:10 on December 15", "4:10"},
		{"lands at 8:30 AM sharp", "8:30 AM"},
		{"the 6:55a redeye", "6:55a"},
		{"boarding 11:45pm", "11:45pm"},
		{"arrives 7:30 and taxis in", "7:30"},
	}
	for _, tc := range cases {
		m := TimeRE.FindStringSubmatch(tc.text)
		if m == nil {
			t.Errorf("time(%q) = no match, want %q", tc.text, tc.want)
			continue
		}
		if m[1] != tc.want {
			t.Errorf("time(%q) = %q, want %q", tc.text, m[1], tc.want)
		}
	}
}

func TestPriceRE_RequiresCurrencyMarker(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"the fare is ₹24,500 total", true},
		{"that costs Rs. 12000", true},
		{"12000 rupees one way", true},
		{"seat 24500 is taken", false},
	}
	for _, tc := range cases {
		if got := PriceRE.MatchString(tc.text); got != tc.want {
			t.Errorf("PriceRE(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestBookingRefRE(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"your reference is PNR-123456", "PNR-123456"},
		{"booking id BK_20251007 noted", "BK_20251007"},
		{"code A1-123456 is invalid", ""},
	}
	for _, tc := range cases {
		m := BookingRefRE.FindStringSubmatch(tc.text)
		got := ""
		if m != nil {
			got = m[1]
		}
		if got != tc.want {
			t.Errorf("BookingRefRE(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestContainsAny(t *testing.T) {
	if !ContainsAny("Your BOOKING is done", ConfirmationKeywords) {
		t.Error("expected confirmation keyword match to be case-insensitive")
	}
	if ContainsAny("just chatting", ConfirmationKeywords) {
		t.Error("expected no confirmation keyword")
	}
	if !ContainsAny("Welcome to Attar, how can I help you?", InquiryPhrases) {
		t.Error("expected inquiry phrase match")
	}
}
