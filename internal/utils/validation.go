package utils

import (
	"regexp"
	"strings"

	"github.com/salomao-adv/crm-backend/internal/models"
)

// ValidationError represents a validation error with field and message
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult represents the result of validation
type ValidationResult struct {
	IsValid bool              `json:"is_valid"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

// NewValidationResult creates a new validation result
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		IsValid: true,
		Errors:  []ValidationError{},
	}
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.IsValid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

var (
	cepPattern = regexp.MustCompile(`^\d{5}-?\d{3}$`)
	ufPattern  = regexp.MustCompile(`^[A-Z]{2}$`)
)

// ValidateClientInput validates a client create/update payload. Only format
// constraints are enforced here: completeness is the pendency workflow's
// concern, so empty optional fields never fail validation.
func ValidateClientInput(input models.ClientInput, isCreate bool) *ValidationResult {
	result := NewValidationResult()

	if isCreate {
		if input.Nome == nil || strings.TrimSpace(*input.Nome) == "" {
			result.AddError("nome", "Nome is required")
		}
	} else if input.Nome != nil && strings.TrimSpace(*input.Nome) == "" {
		result.AddError("nome", "Nome cannot be cleared")
	}

	if input.CEP != nil && strings.TrimSpace(*input.CEP) != "" {
		if !cepPattern.MatchString(strings.TrimSpace(*input.CEP)) {
			result.AddError("cep", "CEP must be 8 digits (00000-000)")
		}
	}

	if input.Estado != nil && strings.TrimSpace(*input.Estado) != "" {
		if !ufPattern.MatchString(strings.ToUpper(strings.TrimSpace(*input.Estado))) {
			result.AddError("estado", "UF must be a two-letter state code")
		}
	}

	if input.Quantidade != nil && *input.Quantidade < 0 {
		result.AddError("quantidade", "Quantidade cannot be negative")
	}

	return result
}
