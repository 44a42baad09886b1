package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/salomao-adv/crm-backend/internal/models"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestValidateClientInput(t *testing.T) {
	tests := []struct {
		name     string
		input    models.ClientInput
		isCreate bool
		valid    bool
		field    string
	}{
		{
			name:     "create requires nome",
			input:    models.ClientInput{},
			isCreate: true,
			valid:    false,
			field:    "nome",
		},
		{
			name:     "create with blank nome fails",
			input:    models.ClientInput{Nome: strPtr("   ")},
			isCreate: true,
			valid:    false,
			field:    "nome",
		},
		{
			name:     "update without nome is fine",
			input:    models.ClientInput{Empresa: strPtr("Silva & Associados")},
			isCreate: false,
			valid:    true,
		},
		{
			name:     "update cannot clear nome",
			input:    models.ClientInput{Nome: strPtr("")},
			isCreate: false,
			valid:    false,
			field:    "nome",
		},
		{
			name:     "bad cep",
			input:    models.ClientInput{Nome: strPtr("Ana"), CEP: strPtr("123")},
			isCreate: true,
			valid:    false,
			field:    "cep",
		},
		{
			name:     "cep with dash accepted",
			input:    models.ClientInput{Nome: strPtr("Ana"), CEP: strPtr("01310-100")},
			isCreate: true,
			valid:    true,
		},
		{
			name:     "uf must be two letters",
			input:    models.ClientInput{Nome: strPtr("Ana"), Estado: strPtr("São Paulo")},
			isCreate: true,
			valid:    false,
			field:    "estado",
		},
		{
			name:     "negative quantidade rejected",
			input:    models.ClientInput{Nome: strPtr("Ana"), Quantidade: intPtr(-1)},
			isCreate: true,
			valid:    false,
			field:    "quantidade",
		},
		{
			name:     "empty optional fields do not fail",
			input:    models.ClientInput{Nome: strPtr("Ana"), CEP: strPtr(""), Estado: strPtr("")},
			isCreate: true,
			valid:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateClientInput(tt.input, tt.isCreate)
			assert.Equal(t, tt.valid, result.IsValid)
			if !tt.valid {
				assert.Equal(t, tt.field, result.Errors[0].Field)
			}
		})
	}
}

func TestNormalizeTelefone(t *testing.T) {
	got, ok := NormalizeTelefone("+55 11 98765-4321")
	assert.True(t, ok)
	assert.Equal(t, "(11) 98765-4321", got)

	got, ok = NormalizeTelefone("1198765 4321")
	assert.True(t, ok)
	assert.Equal(t, "(11) 98765-4321", got)

	got, ok = NormalizeTelefone("ramal 204")
	assert.False(t, ok)
	assert.Equal(t, "ramal 204", got)

	got, ok = NormalizeTelefone("   ")
	assert.False(t, ok)
	assert.Equal(t, "", got)
}
