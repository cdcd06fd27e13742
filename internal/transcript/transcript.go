package transcript

import "strings"

// Speaker roles as delivered by the voice platform.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Turn is one utterance from a call. The platform delivers the text under
// either "message" or "text" depending on the payload format.
type Turn struct {
	Role    string `json:"role"`
	Message string `json:"message,omitempty"`
	Text    string `json:"text,omitempty"`
}

// Body returns the utterance text regardless of which field carried it.
func (t Turn) Body() string {
	if t.Message != "" {
		return t.Message
	}
	return t.Text
}

func (t Turn) role() string {
	return strings.ToLower(t.Role)
}

// CombinedText joins user and assistant utterances into one search text.
func CombinedText(turns []Turn) string {
	return join(turns, func(role string) bool {
		return role == RoleUser || role == RoleAssistant
	})
}

// UserText joins user utterances only.
func UserText(turns []Turn) string {
	return join(turns, func(role string) bool { return role == RoleUser })
}

// SpokenText joins everything except system turns.
func SpokenText(turns []Turn) string {
	return join(turns, func(role string) bool { return role != RoleSystem })
}

// AllText joins every turn, including system ones.
func AllText(turns []Turn) string {
	return join(turns, func(string) bool { return true })
}

func join(turns []Turn, keep func(role string) bool) string {
	parts := make([]string, 0, len(turns))
	for _, t := range turns {
		if keep(t.role()) {
			parts = append(parts, t.Body())
		}
	}
	return strings.Join(parts, " ")
}

// WordCount counts whitespace-separated words.
func WordCount(s string) int {
	return len(strings.Fields(s))
}
