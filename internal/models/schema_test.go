package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequiredFieldSchema_Order(t *testing.T) {
	// Badge rendering depends on declaration order, not alphabetical order
	keys := make([]string, len(RequiredFieldSchema))
	for i, f := range RequiredFieldSchema {
		keys[i] = f.Key
	}

	assert.Equal(t, []string{
		"nome", "empresa", "cargo", "tipo_brinde",
		"cep", "endereco", "numero", "bairro", "cidade", "estado",
		"email", "socio",
	}, keys)
}

func TestRequiredFieldSchema_TelefoneNotRequired(t *testing.T) {
	assert.False(t, IsSchemaKey("telefone"))
	assert.False(t, IsSchemaKey("complemento"))
	assert.False(t, IsSchemaKey("quantidade"))
}

func TestLabelFor(t *testing.T) {
	assert.Equal(t, "Email", LabelFor("email"))
	assert.Equal(t, "UF", LabelFor("estado"))
	assert.Equal(t, "Tipo Brinde", LabelFor("tipo_brinde"))
	// Unknown keys resolve to themselves
	assert.Equal(t, "campo_antigo", LabelFor("campo_antigo"))
}

func TestNormalizeWaivers(t *testing.T) {
	tests := []struct {
		name     string
		waivers  []string
		expected []string
	}{
		{
			name:     "nil stays nil",
			waivers:  nil,
			expected: nil,
		},
		{
			name:     "keys pass through",
			waivers:  []string{"email", "cep"},
			expected: []string{"email", "cep"},
		},
		{
			name:     "legacy labels map to keys",
			waivers:  []string{"Email", "CEP", "Tipo Brinde", "UF"},
			expected: []string{"email", "cep", "tipo_brinde", "estado"},
		},
		{
			name:     "mixed labels and keys deduplicate",
			waivers:  []string{"Email", "email", "socio", "Sócio"},
			expected: []string{"email", "socio"},
		},
		{
			name:     "unknown entries are preserved",
			waivers:  []string{"campo_que_nao_existe", "email"},
			expected: []string{"campo_que_nao_existe", "email"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeWaivers(tt.waivers))
		})
	}
}
