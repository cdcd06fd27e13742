package extract

import "testing"

func TestName(t *testing.T) {
	cases := []struct {
		userText string
		want     string
	}{
		{"Hi, my name is rahul and I need a flight", "Rahul"},
		{"I'm Priya, calling about my trip", "Priya"},
		{"this is Ahmed from Chennai", "Ahmed"},
		{"call me SARA please", "Sara"},
		{"I need some information", "Traveler"},
		{"", "Traveler"},
	}
	for _, tc := range cases {
		if got := Name(tc.userText); got != tc.want {
			t.Errorf("Name(%q) = %q, want %q", tc.userText, got, tc.want)
		}
	}
}

func TestName_DenylistFallsThroughToNextTemplate(t *testing.T) {
	// The first template captures "Booking" from "I'm booking"; the
	// denylist rejects it and the second template still finds the name.
	got := Name("I'm booking a trip and my name is Sarah")
	if got != "Sarah" {
		t.Errorf("expected second template to recover the name, got %q", got)
	}
}

func TestName_DenylistedOnly(t *testing.T) {
	cases := []string{
		"I'm booking a flight right now",
		"this is Attar right?",
		"call me me",
	}
	for _, text := range cases {
		if got := Name(text); got != DefaultName {
			t.Errorf("Name(%q) = %q, want %q", text, got, DefaultName)
		}
	}
}

func TestIntents(t *testing.T) {
	labels := Intents("I want to fly next week and need a hotel room when I arrive")
	for _, want := range []string{"flight", "hotel", "dates"} {
		if !HasIntent(labels, want) {
			t.Errorf("expected intent %q in %v", want, labels)
		}
	}
	if HasIntent(labels, "destination") {
		t.Errorf("unexpected destination intent in %v", labels)
	}

	if got := Intents(""); got != nil {
		t.Errorf("expected nil intents for empty conversation, got %v", got)
	}
}
