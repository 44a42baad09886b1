package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderIndex(t *testing.T) {
	headers := []string{"ID", " Nome ", "TEMPO", "Portaria"}

	assert.Equal(t, 1, HeaderIndex(headers, "nome", "colaborador", "funcionario"))
	assert.Equal(t, 2, HeaderIndex(headers, "tempo", "data", "horario"))
	assert.Equal(t, -1, HeaderIndex(headers, "email"))
	assert.Equal(t, -1, HeaderIndex(nil, "nome"))
}

func TestHeaderIndex_Synonyms(t *testing.T) {
	// Exports from different gate systems label the name column differently
	assert.Equal(t, 0, HeaderIndex([]string{"COLABORADOR"}, "nome", "colaborador", "funcionario"))
	assert.Equal(t, 0, HeaderIndex([]string{"Funcionario"}, "nome", "colaborador", "funcionario"))
	assert.Equal(t, 0, HeaderIndex([]string{"horario"}, "tempo", "data", "horario"))
}

func TestCellAt(t *testing.T) {
	row := []string{"Ana Silva", " 2025-11-19 16:54:41 "}

	assert.Equal(t, "Ana Silva", CellAt(row, 0))
	assert.Equal(t, "2025-11-19 16:54:41", CellAt(row, 1))
	// Readers drop trailing empty cells; short rows read as empty
	assert.Equal(t, "", CellAt(row, 5))
	assert.Equal(t, "", CellAt(row, -1))
}

func TestParseSheetDate_TextLayouts(t *testing.T) {
	tests := []struct {
		raw      string
		expected time.Time
	}{
		{"2025-11-19 16:54:41", time.Date(2025, 11, 19, 16, 54, 41, 0, time.UTC)},
		{"2025-11-19", time.Date(2025, 11, 19, 0, 0, 0, 0, time.UTC)},
		{"19/11/2025 16:54:41", time.Date(2025, 11, 19, 16, 54, 41, 0, time.UTC)},
		{"19/11/2025", time.Date(2025, 11, 19, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			parsed, err := ParseSheetDate(tt.raw)
			require.NoError(t, err)
			assert.True(t, parsed.Equal(tt.expected), "got %v want %v", parsed, tt.expected)
		})
	}
}

func TestParseSheetDate_ExcelSerial(t *testing.T) {
	// 45000 is 2023-03-15
	parsed, err := ParseSheetDate("45000")
	require.NoError(t, err)
	assert.Equal(t, 2023, parsed.Year())
	assert.Equal(t, time.March, parsed.Month())
	assert.Equal(t, 15, parsed.Day())
}

func TestParseSheetDate_Invalid(t *testing.T) {
	for _, raw := range []string{"", "  ", "ontem", "-3"} {
		_, err := ParseSheetDate(raw)
		assert.Error(t, err, "raw=%q", raw)
	}
}

func TestColumnName(t *testing.T) {
	assert.Equal(t, "A", ColumnName(0))
	assert.Equal(t, "D", ColumnName(3))
	assert.Equal(t, "Z", ColumnName(25))
	assert.Equal(t, "AA", ColumnName(26))
	assert.Equal(t, "AB", ColumnName(27))
}
