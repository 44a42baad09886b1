package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/salomao-adv/crm-backend/internal/models"
)

func TestApplyInput_PartialUpdate(t *testing.T) {
	record := completeRecord()
	record.IgnoredFields = []string{"email"}

	empresa := "  Nova Empresa Ltda  "
	estado := "rj"
	applyInput(&record, models.ClientInput{Empresa: &empresa, Estado: &estado})

	assert.Equal(t, "Nova Empresa Ltda", record.Empresa)
	assert.Equal(t, "RJ", record.Estado)
	// Untouched fields and waivers survive the edit
	assert.Equal(t, "Ana Silva", record.Nome)
	assert.Equal(t, []string{"email"}, record.IgnoredFields)
}

func TestApplyInput_TelefoneNormalized(t *testing.T) {
	var record models.ClientRecord

	telefone := "+5511987654321"
	applyInput(&record, models.ClientInput{Telefone: &telefone})
	assert.Equal(t, "(11) 98765-4321", record.Telefone)

	freeText := "ramal 12"
	applyInput(&record, models.ClientInput{Telefone: &freeText})
	assert.Equal(t, "ramal 12", record.Telefone)
}

func TestApplyInput_QuantidadeZeroIsSet(t *testing.T) {
	var record models.ClientRecord

	quantidade := 0
	applyInput(&record, models.ClientInput{Quantidade: &quantidade})
	assert.NotNil(t, record.Quantidade)
	assert.Equal(t, 0, *record.Quantidade)
}

func TestEscapeRegex(t *testing.T) {
	assert.Equal(t, `Silva & Cia\.`, escapeRegex(`Silva & Cia.`))
	assert.Equal(t, `a\+b\*c`, escapeRegex(`a+b*c`))
	assert.Equal(t, `sem mudanças`, escapeRegex(`sem mudanças`))
}
