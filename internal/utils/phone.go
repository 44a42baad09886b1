package utils

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const defaultPhoneRegion = "BR"

// NormalizeTelefone parses a phone number and returns its formatted national
// representation. Numbers that cannot be parsed or are not viable are kept
// verbatim: telefone is an optional free-text field upstream, so rejection
// would lose data that a human can still read.
func NormalizeTelefone(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}

	parsed, err := phonenumbers.Parse(trimmed, defaultPhoneRegion)
	if err != nil {
		return trimmed, false
	}
	if !phonenumbers.IsValidNumber(parsed) {
		return trimmed, false
	}

	if parsed.GetCountryCode() == 55 {
		return phonenumbers.Format(parsed, phonenumbers.NATIONAL), true
	}
	return phonenumbers.Format(parsed, phonenumbers.INTERNATIONAL), true
}
