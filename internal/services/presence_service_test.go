package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salomao-adv/crm-backend/internal/models"
)

func TestParsePresenceRows(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	rows := [][]string{
		{"Colaborador", "Tempo"},
		{"João Pereira", "02/03/2025 08:15"},
		{"", "02/03/2025 08:20"},
		{"Maria Souza", "não é data"},
		{"   ", ""},
		{"Pedro Lima"},
	}

	records, skipped, err := parsePresenceRows(rows, "portaria.xlsx", now)
	require.NoError(t, err)
	assert.Equal(t, 2, skipped)
	require.Len(t, records, 3)

	assert.Equal(t, "João Pereira", records[0].NomeColaborador)
	assert.Equal(t, time.Date(2025, 3, 2, 8, 15, 0, 0, time.UTC), records[0].DataHora)
	assert.Equal(t, "portaria.xlsx", records[0].ArquivoOrigem)

	// Unparseable and absent dates fall back to the import time
	assert.Equal(t, now, records[1].DataHora)
	assert.Equal(t, now, records[2].DataHora)
}

func TestParsePresenceRows_HeaderSynonyms(t *testing.T) {
	rows := [][]string{
		{"FUNCIONÁRIO", "Data/Hora"},
		{"Ana Dias", "01/02/2025"},
	}

	records, skipped, err := parsePresenceRows(rows, "f.xlsx", time.Now())
	require.NoError(t, err)
	assert.Zero(t, skipped)
	require.Len(t, records, 1)
	assert.Equal(t, "Ana Dias", records[0].NomeColaborador)
}

func TestParsePresenceRows_Errors(t *testing.T) {
	now := time.Now()

	_, _, err := parsePresenceRows([][]string{{"Colaborador", "Tempo"}}, "x.xlsx", now)
	assert.ErrorIs(t, err, models.ErrNoImportableRows)

	_, _, err = parsePresenceRows([][]string{
		{"Coluna A", "Coluna B"},
		{"valor", "valor"},
	}, "x.xlsx", now)
	assert.ErrorIs(t, err, models.ErrMissingSheetColumns)

	_, skipped, err := parsePresenceRows([][]string{
		{"Colaborador", "Tempo"},
		{"", "02/03/2025"},
		{"  ", ""},
	}, "x.xlsx", now)
	assert.ErrorIs(t, err, models.ErrNoImportableRows)
	assert.Equal(t, 2, skipped)
}
