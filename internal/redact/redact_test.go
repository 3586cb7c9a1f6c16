package redact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextScrubsEmails(t *testing.T) {
	out := Text("reach me at jane.doe@example.com for details", "")
	assert.Equal(t, "reach me at [REDACTED_EMAIL] for details", out)
}

func TestTextScrubsPhoneNumbers(t *testing.T) {
	assert.Equal(t, "call [REDACTED_PHONE] tomorrow", Text("call 415-555-1234 tomorrow", ""))
	assert.Equal(t, "call [REDACTED_PHONE] tomorrow", Text("call 415 555 1234 tomorrow", ""))
	assert.Equal(t, "call [REDACTED_PHONE] tomorrow", Text("call 1 415.555.1234 tomorrow", ""))
}

func TestTextScrubsRespondentNameCaseInsensitive(t *testing.T) {
	out := Text("Jane Doe mentioned that JANE DOE approves invoices", "jane doe")
	assert.Equal(t, "[REDACTED_NAME] mentioned that [REDACTED_NAME] approves invoices", out)
}

func TestTextScrubsSelfIntroductionKeepingPhrase(t *testing.T) {
	out := Text("Hi, my name is John Smith and I run finance.", "")
	assert.Equal(t, "Hi, my name is [REDACTED_NAME] and I run finance.", out)

	out = Text("My Name Is Priya.", "")
	assert.Equal(t, "My Name Is [REDACTED_NAME].", out)
}

func TestTextIsIdempotent(t *testing.T) {
	in := "Hi, my name is John Smith, email john@example.com, phone 415-555-1234."
	once := Text(in, "John Smith")
	twice := Text(once, "John Smith")
	assert.Equal(t, once, twice)
}

func TestTextLeavesCleanTextUntouched(t *testing.T) {
	assert.Equal(t, "hello world", Text("hello world", ""))
	assert.Equal(t, "", Text("", "Jane"))
}
