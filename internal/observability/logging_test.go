package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskEmail(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		expected string
	}{
		{"regular address", "joao.silva@salomao.adv.br", "jo********@salomao.adv.br"},
		{"short local part", "jo@salomao.adv.br", "**@salomao.adv.br"},
		{"single char local part", "j@x.com", "**@x.com"},
		{"not an email", "sem-arroba", "***"},
		{"empty", "", "***"},
		{"leading at", "@dominio.com", "***"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MaskEmail(tt.email))
		})
	}
}

func TestMaskSensitiveData(t *testing.T) {
	data := map[string]interface{}{
		"nome":     "Ana Silva",
		"email":    "ana@exemplo.com",
		"telefone": "+55 11 99999-0000",
		"empresa":  "Exemplo SA",
	}

	masked := MaskSensitiveData(data)

	assert.Equal(t, "Ana Silva", masked["nome"])
	assert.Equal(t, "Exemplo SA", masked["empresa"])
	assert.Equal(t, "********", masked["email"])
	assert.Equal(t, "********", masked["telefone"])
}
