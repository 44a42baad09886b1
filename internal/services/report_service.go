package services

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/salomao-adv/crm-backend/internal/models"
	"github.com/salomao-adv/crm-backend/internal/utils"
)

const exportSheetName = "Pendências"

// exportColumns are the XLSX export columns, in output order
var exportColumns = []string{"Nome", "Empresa", "Sócio", "Campos Faltantes"}

// ReportService renders the working set as downloadable artifacts: an XLSX
// workbook and printable HTML pages. It is read-only over the data model.
type ReportService struct{}

// Global report service instance
var ReportServiceInstance = &ReportService{}

// BuildWorkbook renders a working set into an XLSX workbook. Missing field
// labels are joined with ", " in schema order.
func (s *ReportService) BuildWorkbook(workingSet *models.WorkingSet) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet, err := f.NewSheet(exportSheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create export sheet: %w", err)
	}
	f.SetActiveSheet(sheet)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	for col, title := range exportColumns {
		cell := fmt.Sprintf("%s1", utils.ColumnName(col))
		if err := f.SetCellValue(exportSheetName, cell, title); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, pendency := range workingSet.Pendencies {
		row := i + 2
		values := []interface{}{
			pendency.Client.Nome,
			pendency.Client.Empresa,
			pendency.Client.Socio,
			joinLabels(pendency.MissingFields),
		}
		for col, value := range values {
			cell := fmt.Sprintf("%s%d", utils.ColumnName(col), row)
			if err := f.SetCellValue(exportSheetName, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write row %d: %w", row, err)
			}
		}
	}

	return f, nil
}

// ExportFileName returns the attachment name for a working-set export
func (s *ReportService) ExportFileName() string {
	return fmt.Sprintf("pendencias_%s.xlsx", time.Now().Format("2006-01-02"))
}

func joinLabels(fields []models.RequiredField) string {
	labels := make([]string, len(fields))
	for i, f := range fields {
		labels[i] = f.Label
	}
	return strings.Join(labels, ", ")
}

// printPageTemplate is shared chrome for the printable reports: fixed A4
// layout, auto-print on load, window closes after printing.
var printPageTemplate = template.Must(template.New("print").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: Arial, Helvetica, sans-serif; margin: 24px; color: #1a1a1a; }
  h1 { font-size: 18px; border-bottom: 2px solid #1a1a1a; padding-bottom: 8px; }
  .meta { font-size: 11px; color: #555; margin-bottom: 16px; }
  .card { border: 1px solid #bbb; border-radius: 4px; padding: 12px; margin-bottom: 12px;
          page-break-inside: avoid; }
  .card h2 { font-size: 14px; margin: 0 0 8px 0; }
  .field { font-size: 12px; margin: 2px 0; }
  .field span.label { font-weight: bold; }
  .missing { color: #b00020; font-size: 12px; margin-top: 8px; }
  .grid { display: grid; grid-template-columns: 1fr 1fr; gap: 12px; }
  @media print { .grid { display: block; } }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<div class="meta">Gerado em {{.GeneratedAt}} · {{.Count}} registro(s)</div>
{{if .Single}}{{template "card" .Single}}{{else}}<div class="grid">{{range .Pendencies}}{{template "card" .}}{{end}}</div>{{end}}
<script>
  window.onload = function () { window.print(); window.onafterprint = function () { window.close(); }; };
</script>
</body>
</html>
{{define "card"}}<div class="card">
<h2>{{.Client.Nome}}</h2>
<div class="field"><span class="label">Empresa:</span> {{.Client.Empresa}}</div>
<div class="field"><span class="label">Cargo:</span> {{.Client.Cargo}}</div>
<div class="field"><span class="label">Sócio:</span> {{.Client.Socio}}</div>
<div class="field"><span class="label">Email:</span> {{.Client.Email}}</div>
<div class="field"><span class="label">Telefone:</span> {{.Client.Telefone}}</div>
<div class="field"><span class="label">Endereço:</span> {{.Client.Endereco}}, {{.Client.Numero}} {{.Client.Complemento}} - {{.Client.Bairro}}, {{.Client.Cidade}}/{{.Client.Estado}} {{.Client.CEP}}</div>
<div class="field"><span class="label">Tipo de Brinde:</span> {{.Client.TipoBrinde}}</div>
{{if .MissingLabels}}<div class="missing">Campos faltantes: {{.MissingLabels}}</div>{{end}}
</div>{{end}}`))

type printCard struct {
	Client        models.ClientRecord
	MissingLabels string
}

type printPage struct {
	Title       string
	GeneratedAt string
	Count       int
	Single      *printCard
	Pendencies  []printCard
}

// RenderPrintAll renders the whole working set as a printable card grid
func (s *ReportService) RenderPrintAll(workingSet *models.WorkingSet) ([]byte, error) {
	cards := make([]printCard, len(workingSet.Pendencies))
	for i, p := range workingSet.Pendencies {
		cards[i] = printCard{Client: p.Client, MissingLabels: joinLabels(p.MissingFields)}
	}

	return renderPrintPage(printPage{
		Title:       "Relatório de Clientes Incompletos",
		GeneratedAt: time.Now().Format("02/01/2006 15:04"),
		Count:       len(cards),
		Pendencies:  cards,
	})
}

// RenderPrintSingle renders one record as a printable page
func (s *ReportService) RenderPrintSingle(pendency *models.Pendency) ([]byte, error) {
	return renderPrintPage(printPage{
		Title:       fmt.Sprintf("Ficha de Cliente: %s", pendency.Client.Nome),
		GeneratedAt: time.Now().Format("02/01/2006 15:04"),
		Count:       1,
		Single: &printCard{
			Client:        pendency.Client,
			MissingLabels: joinLabels(pendency.MissingFields),
		},
	})
}

func renderPrintPage(page printPage) ([]byte, error) {
	var buf bytes.Buffer
	if err := printPageTemplate.Execute(&buf, page); err != nil {
		return nil, fmt.Errorf("failed to render print page: %w", err)
	}
	return buf.Bytes(), nil
}
