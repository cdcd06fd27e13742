package extract

import "github.com/attar-travel/voicedesk/internal/patterns"

// Intents labels the conversation's topics from the keyword table. A
// conversation may match zero, one, or several buckets; classification
// is non-exclusive and purely lexical.
func Intents(conversation string) []string {
	if conversation == "" {
		return nil
	}
	var labels []string
	for _, bucket := range patterns.IntentKeywords {
		if patterns.ContainsAny(conversation, bucket.Words) {
			labels = append(labels, bucket.Label)
		}
	}
	return labels
}

// HasIntent reports whether a label is present in a classification result.
func HasIntent(labels []string, want string) bool {
	for _, l := range labels {
		if l == want {
			return true
		}
	}
	return false
}
