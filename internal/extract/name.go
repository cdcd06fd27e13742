package extract

import (
	"strings"

	"github.com/attar-travel/voicedesk/internal/patterns"
)

// DefaultName is used when no customer name could be extracted.
const DefaultName = "Traveler"

// Name pulls a probable customer first name from the user-only text.
// Templates are tried in declared order; each template contributes only
// its first match — a denylisted capture moves on to the next template
// rather than rescanning the same one.
func Name(userText string) string {
	for _, re := range patterns.NameREs {
		m := re.FindStringSubmatch(userText)
		if m == nil {
			continue
		}
		name := capitalize(m[1])
		if denylisted(name) {
			continue
		}
		return name
	}
	return DefaultName
}

func denylisted(name string) bool {
	lower := strings.ToLower(name)
	for _, w := range patterns.NameDenylist {
		if lower == w {
			return true
		}
	}
	return false
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
