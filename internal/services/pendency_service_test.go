package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/salomao-adv/crm-backend/internal/models"
)

func incompleteRecord(nome, socio string) models.ClientRecord {
	record := completeRecord()
	record.Nome = nome
	record.Socio = socio
	record.Email = ""
	return record
}

func TestValidateQuery(t *testing.T) {
	tests := []struct {
		name  string
		query models.WorkingSetQuery
		err   error
	}{
		{"empty query", models.WorkingSetQuery{}, nil},
		{"sort by nome asc", models.WorkingSetQuery{SortKey: "nome", SortOrder: "asc"}, nil},
		{"sort by socio desc", models.WorkingSetQuery{SortKey: "socio", SortOrder: "desc"}, nil},
		{"unknown sort key", models.WorkingSetQuery{SortKey: "email"}, models.ErrInvalidSortKey},
		{"unknown direction", models.WorkingSetQuery{SortKey: "nome", SortOrder: "up"}, models.ErrInvalidSortDirection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.err, ValidateQuery(tt.query))
		})
	}
}

func TestAssemblePendencies_KeepsOnlyIncomplete(t *testing.T) {
	records := []models.ClientRecord{
		completeRecord(),
		incompleteRecord("Bruno Costa", "Dra. Marta"),
		completeRecord(),
		incompleteRecord("Carla Dias", "Dr. Salomão"),
	}

	pendencies := assemblePendencies(records)
	require.Len(t, pendencies, 2)
	assert.Equal(t, "Bruno Costa", pendencies[0].Client.Nome)
	assert.Equal(t, "Carla Dias", pendencies[1].Client.Nome)
	assert.Equal(t, "email", pendencies[0].MissingFields[0].Key)
}

func TestSortPendencies_PortugueseCollation(t *testing.T) {
	pendencies := assemblePendencies([]models.ClientRecord{
		incompleteRecord("Átila Mendes", "B"),
		incompleteRecord("Zélia Prado", "A"),
		incompleteRecord("antonio lima", "C"),
	})

	sortPendencies(pendencies, models.SortByNome, models.SortAscending)

	// Accents and case do not push names to the end of the order
	assert.Equal(t, "antonio lima", pendencies[0].Client.Nome)
	assert.Equal(t, "Átila Mendes", pendencies[1].Client.Nome)
	assert.Equal(t, "Zélia Prado", pendencies[2].Client.Nome)
}

func TestSortPendencies_Descending(t *testing.T) {
	pendencies := assemblePendencies([]models.ClientRecord{
		incompleteRecord("Ana", "X"),
		incompleteRecord("Bruno", "Y"),
	})

	sortPendencies(pendencies, models.SortByNome, models.SortDescending)
	assert.Equal(t, "Bruno", pendencies[0].Client.Nome)
}

func TestSortPendencies_StableOnTies(t *testing.T) {
	pendencies := assemblePendencies([]models.ClientRecord{
		incompleteRecord("Ana", "Dr. Salomão"),
		incompleteRecord("Bruno", "Dr. Salomão"),
		incompleteRecord("Carla", "Dr. Salomão"),
	})

	sortPendencies(pendencies, models.SortBySocio, models.SortAscending)

	// Identical socio keys keep fetch order
	assert.Equal(t, "Ana", pendencies[0].Client.Nome)
	assert.Equal(t, "Bruno", pendencies[1].Client.Nome)
	assert.Equal(t, "Carla", pendencies[2].Client.Nome)
}

func TestSortPendencies_DefaultsToNome(t *testing.T) {
	pendencies := assemblePendencies([]models.ClientRecord{
		incompleteRecord("Bruno", "A"),
		incompleteRecord("Ana", "B"),
	})

	sortPendencies(pendencies, "", "")
	assert.Equal(t, "Ana", pendencies[0].Client.Nome)
}

func TestDeliver_DiscardsStaleSequence(t *testing.T) {
	s := &PendencyService{}

	assert.True(t, s.deliver(1))
	assert.True(t, s.deliver(3))
	// Sequence 2 finished after 3 delivered: stale, dropped
	assert.False(t, s.deliver(2))
	assert.True(t, s.deliver(4))
}

func TestUnionWaivers_DismissIdempotent(t *testing.T) {
	record := incompleteRecord("Ana", "Dr. Salomão")

	once := unionWaivers(record.IgnoredFields, []string{"email"})
	assert.Equal(t, []string{"email"}, once)

	// Confirming the same dismiss again leaves the list unchanged
	twice := unionWaivers(once, []string{"email"})
	assert.Equal(t, once, twice)

	record.IgnoredFields = twice
	assert.False(t, isMissing(&record, "email"))
}

func TestUnionWaivers_NormalizesLegacyLabels(t *testing.T) {
	// Older documents stored display labels; the union migrates them to keys
	// without duplicating the waiver being added
	waivers := unionWaivers([]string{"Email", "UF"}, []string{"email", "cidade"})
	assert.Equal(t, []string{"email", "estado", "cidade"}, waivers)
}

func TestUnionWaivers_PreservesUnrelatedEntries(t *testing.T) {
	waivers := unionWaivers([]string{"cargo"}, []string{"email"})
	assert.Equal(t, []string{"cargo", "email"}, waivers)

	assert.Equal(t, []string{}, unionWaivers(nil, nil))
}

func TestUnionWaivers_DiscardEmptiesMissingSet(t *testing.T) {
	record := completeRecord()
	record.Email = ""
	record.Cidade = ""
	record.Cargo = ""

	missing := MissingFields(&record)
	require.Len(t, missing, 3)

	keys := make([]string, len(missing))
	for i, field := range missing {
		keys[i] = field.Key
	}

	record.IgnoredFields = unionWaivers(record.IgnoredFields, keys)
	assert.Empty(t, MissingFields(&record))

	// A second discard of the same record adds nothing
	again := unionWaivers(record.IgnoredFields, keys)
	assert.Equal(t, record.IgnoredFields, again)
}

func TestWorkingSetFilter_Composition(t *testing.T) {
	assert.Empty(t, workingSetFilter(models.WorkingSetQuery{}))

	socioOnly := workingSetFilter(models.WorkingSetQuery{Socio: "Dr. Salomão"})
	assert.Equal(t, bson.M{"socio": "Dr. Salomão"}, socioOnly)

	// Both filters set: one document must match both equality conditions
	both := workingSetFilter(models.WorkingSetQuery{
		Socio:      "Dr. Salomão",
		TipoBrinde: "Brinde VIP",
	})
	assert.Equal(t, bson.M{"socio": "Dr. Salomão", "tipo_brinde": "Brinde VIP"}, both)
}

func TestIsMissing(t *testing.T) {
	record := incompleteRecord("Ana", "Dr. Salomão")
	assert.True(t, isMissing(&record, "email"))
	assert.False(t, isMissing(&record, "nome"))
	assert.False(t, isMissing(&record, "telefone"))

	record.IgnoredFields = []string{"email"}
	assert.False(t, isMissing(&record, "email"))
}
