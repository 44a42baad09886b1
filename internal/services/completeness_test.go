package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/salomao-adv/crm-backend/internal/models"
)

func intPtr(i int) *int { return &i }

func completeRecord() models.ClientRecord {
	return models.ClientRecord{
		Nome:       "Ana Silva",
		Empresa:    "Construtora Horizonte",
		Cargo:      "Diretora",
		TipoBrinde: "Vinho",
		CEP:        "01310-100",
		Endereco:   "Av. Paulista",
		Numero:     "1000",
		Bairro:     "Bela Vista",
		Cidade:     "São Paulo",
		Estado:     "SP",
		Email:      "ana@horizonte.com.br",
		Socio:      "Dr. Salomão",
	}
}

func missingKeys(record *models.ClientRecord) []string {
	fields := MissingFields(record)
	keys := make([]string, 0, len(fields))
	for _, f := range fields {
		keys = append(keys, f.Key)
	}
	return keys
}

func TestMissingFields_CompleteRecord(t *testing.T) {
	record := completeRecord()
	assert.Empty(t, MissingFields(&record))
	assert.True(t, IsComplete(&record))
}

func TestMissingFields_BlankAndWhitespace(t *testing.T) {
	record := completeRecord()
	record.Email = ""
	record.Cargo = "   "

	keys := missingKeys(&record)
	assert.Equal(t, []string{"cargo", "email"}, keys)
	assert.False(t, IsComplete(&record))
}

func TestMissingFields_SchemaOrder(t *testing.T) {
	record := models.ClientRecord{Nome: "Só Nome"}

	keys := missingKeys(&record)
	assert.Equal(t, []string{
		"empresa", "cargo", "tipo_brinde", "cep", "endereco",
		"numero", "bairro", "cidade", "estado", "email", "socio",
	}, keys)
}

func TestMissingFields_OptionalFieldsNeverMissing(t *testing.T) {
	record := completeRecord()
	record.Telefone = ""
	record.Complemento = ""
	record.Quantidade = nil

	assert.Empty(t, MissingFields(&record))
}

func TestMissingFields_WaiverSuppression(t *testing.T) {
	record := completeRecord()
	record.Email = ""
	record.Socio = ""
	record.IgnoredFields = []string{"socio"}

	keys := missingKeys(&record)
	assert.Equal(t, []string{"email"}, keys)
}

func TestMissingFields_LegacyLabelWaivers(t *testing.T) {
	record := completeRecord()
	record.Email = ""
	record.Estado = ""
	// Documents written by earlier versions stored display labels
	record.IgnoredFields = []string{"Email", "UF"}

	assert.Empty(t, MissingFields(&record))
}

func TestMissingFields_WaiverInertOnceFilled(t *testing.T) {
	record := completeRecord()
	record.Email = ""
	record.IgnoredFields = []string{"email"}

	assert.Empty(t, MissingFields(&record))

	// Filling the field keeps the record complete; the stale waiver stays
	// persisted but has nothing to suppress.
	record.Email = "ana@horizonte.com.br"
	assert.Empty(t, MissingFields(&record))
}

func TestMissingFields_UnknownWaiverIgnored(t *testing.T) {
	record := completeRecord()
	record.Email = ""
	record.IgnoredFields = []string{"telefone", "campo_antigo"}

	keys := missingKeys(&record)
	assert.Equal(t, []string{"email"}, keys)
}

func TestMissingFields_QuantidadeZeroNotMissing(t *testing.T) {
	record := completeRecord()
	record.Quantidade = intPtr(0)

	assert.Empty(t, MissingFields(&record))
}
