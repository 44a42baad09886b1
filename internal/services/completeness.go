package services

import (
	"strings"

	"github.com/salomao-adv/crm-backend/internal/models"
)

// fieldSatisfied reports whether a single schema field carries a usable
// value. String values count only when non-blank after trimming; numeric
// values count whenever present, zero included.
func fieldSatisfied(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(v) != ""
	case int:
		return true
	case float64:
		return true
	default:
		return true
	}
}

// MissingFields evaluates a record against the required-field schema and
// returns the unsatisfied fields in schema order. Waived fields are
// suppressed from the output; a waiver on a field that later receives a
// value is simply inert.
func MissingFields(record *models.ClientRecord) []models.RequiredField {
	waived := make(map[string]bool)
	for _, key := range models.NormalizeWaivers(record.IgnoredFields) {
		waived[key] = true
	}

	var missing []models.RequiredField
	for _, field := range models.RequiredFieldSchema {
		if fieldSatisfied(record.FieldValue(field.Key)) {
			continue
		}
		if waived[field.Key] {
			continue
		}
		missing = append(missing, field)
	}
	return missing
}

// IsComplete reports whether a record has no outstanding missing fields
func IsComplete(record *models.ClientRecord) bool {
	return len(MissingFields(record)) == 0
}
