package transcript

import "testing"

func TestBody_PrefersMessage(t *testing.T) {
	turn := Turn{Role: RoleUser, Message: "hello", Text: "ignored"}
	if turn.Body() != "hello" {
		t.Errorf("expected message field, got %q", turn.Body())
	}

	turn = Turn{Role: RoleUser, Text: "fallback"}
	if turn.Body() != "fallback" {
		t.Errorf("expected text fallback, got %q", turn.Body())
	}
}

func TestJoins(t *testing.T) {
	turns := []Turn{
		{Role: "system", Message: "system prompt"},
		{Role: "assistant", Message: "Welcome to the agency"},
		{Role: "User", Message: "I need a flight"},
		{Role: "user", Text: "to Jeddah"},
	}

	if got := UserText(turns); got != "I need a flight to Jeddah" {
		t.Errorf("UserText = %q", got)
	}
	if got := CombinedText(turns); got != "Welcome to the agency I need a flight to Jeddah" {
		t.Errorf("CombinedText = %q", got)
	}
	if got := SpokenText(turns); got != "Welcome to the agency I need a flight to Jeddah" {
		t.Errorf("SpokenText = %q", got)
	}
	if got := AllText(turns); got != "system prompt Welcome to the agency I need a flight to Jeddah" {
		t.Errorf("AllText = %q", got)
	}
}

func TestRoleCaseInsensitive(t *testing.T) {
	turns := []Turn{
		{Role: "USER", Message: "hi"},
		{Role: "Assistant", Message: "hello"},
	}
	if got := UserText(turns); got != "hi" {
		t.Errorf("expected uppercase role to count as user, got %q", got)
	}
}

func TestWordCount(t *testing.T) {
	if n := WordCount("one two  three\nfour"); n != 4 {
		t.Errorf("expected 4 words, got %d", n)
	}
	if n := WordCount(""); n != 0 {
		t.Errorf("expected 0 words for empty string, got %d", n)
	}
}
