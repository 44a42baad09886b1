package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salomao-adv/crm-backend/internal/models"
)

func sampleWorkingSet() *models.WorkingSet {
	pendencies := assemblePendencies([]models.ClientRecord{
		incompleteRecord("Ana Silva", "Dr. Salomão"),
		incompleteRecord("Bruno Costa", "Dra. Marta"),
	})
	return &models.WorkingSet{Pendencies: pendencies, Total: len(pendencies)}
}

func TestBuildWorkbook(t *testing.T) {
	workingSet := sampleWorkingSet()

	f, err := ReportServiceInstance.BuildWorkbook(workingSet)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Nome", "Empresa", "Sócio", "Campos Faltantes"}, rows[0])
	assert.Equal(t, "Ana Silva", rows[1][0])
	assert.Equal(t, "Dr. Salomão", rows[1][2])
	assert.Equal(t, "Email", rows[1][3])
	assert.Equal(t, "Bruno Costa", rows[2][0])
}

func TestBuildWorkbook_MissingLabelsJoined(t *testing.T) {
	record := incompleteRecord("Carla Dias", "Dr. Salomão")
	record.Cargo = ""
	record.Cidade = ""
	workingSet := &models.WorkingSet{
		Pendencies: assemblePendencies([]models.ClientRecord{record}),
	}

	f, err := ReportServiceInstance.BuildWorkbook(workingSet)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheetName)
	require.NoError(t, err)
	// Labels come out in schema order regardless of edit order
	assert.Equal(t, "Cargo, Cidade, Email", rows[1][3])
}

func TestBuildWorkbook_EmptyWorkingSet(t *testing.T) {
	f, err := ReportServiceInstance.BuildWorkbook(&models.WorkingSet{Pendencies: []models.Pendency{}})
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestExportFileName(t *testing.T) {
	name := ReportServiceInstance.ExportFileName()
	assert.True(t, strings.HasPrefix(name, "pendencias_"))
	assert.True(t, strings.HasSuffix(name, ".xlsx"))
}

func TestRenderPrintAll(t *testing.T) {
	page, err := ReportServiceInstance.RenderPrintAll(sampleWorkingSet())
	require.NoError(t, err)

	html := string(page)
	assert.Contains(t, html, "Relatório de Clientes Incompletos")
	assert.Contains(t, html, "Ana Silva")
	assert.Contains(t, html, "Bruno Costa")
	assert.Contains(t, html, "Campos faltantes: Email")
	assert.Contains(t, html, "window.print()")
}

func TestRenderPrintSingle(t *testing.T) {
	workingSet := sampleWorkingSet()

	page, err := ReportServiceInstance.RenderPrintSingle(&workingSet.Pendencies[0])
	require.NoError(t, err)

	html := string(page)
	assert.Contains(t, html, "Ficha de Cliente: Ana Silva")
	assert.Contains(t, html, "Construtora Horizonte")
	assert.NotContains(t, html, "Bruno Costa")
}

func TestRenderPrintSingle_CompleteRecordOmitsMissingBlock(t *testing.T) {
	record := completeRecord()
	pendency := models.Pendency{Client: record, MissingFields: MissingFields(&record)}

	page, err := ReportServiceInstance.RenderPrintSingle(&pendency)
	require.NoError(t, err)
	assert.NotContains(t, string(page), "Campos faltantes")
}
