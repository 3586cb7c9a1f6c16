package redact

import (
	"regexp"
	"strings"
)

var (
	emailRE = regexp.MustCompile(`(?i)\b[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}\b`)
	phoneRE = regexp.MustCompile(`\b(?:\+?\d{1,2}[\s.-]?)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}\b`)
	// "my name is John" / "My Name Is John Smith"
	introRE = regexp.MustCompile(`(?i)\b(my name is)\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)?`)
)

// Text scrubs emails, phone numbers, the respondent's own name, and
// self-introduction phrases from free text before anything is stored.
// Idempotent: already-redacted text passes through unchanged. Empty
// input is returned as-is.
func Text(text, respondentName string) string {
	if text == "" {
		return text
	}

	redacted := emailRE.ReplaceAllString(text, "[REDACTED_EMAIL]")
	redacted = phoneRE.ReplaceAllString(redacted, "[REDACTED_PHONE]")

	if name := strings.TrimSpace(respondentName); name != "" {
		nameRE, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(name))
		if err == nil {
			redacted = nameRE.ReplaceAllString(redacted, "[REDACTED_NAME]")
		}
	}

	redacted = introRE.ReplaceAllString(redacted, "${1} [REDACTED_NAME]")
	return redacted
}
