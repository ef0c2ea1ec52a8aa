package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"duartecontrol/models"
)

// caseSheetTemplate is the printable one-page summary of a case and its
// linked deadlines.
const caseSheetTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Georgia, serif; color: #1a1a1a; }
  h1 { font-size: 18px; border-bottom: 2px solid #1a1a1a; padding-bottom: 6px; }
  table { width: 100%; border-collapse: collapse; margin-top: 12px; }
  th { text-align: left; width: 30%; padding: 6px 8px; background: #f0f0f0; }
  td { padding: 6px 8px; border-bottom: 1px solid #ddd; }
  h2 { font-size: 14px; margin-top: 24px; }
  .footer { margin-top: 32px; font-size: 10px; color: #777; }
</style>
</head>
<body>
<h1>Ficha do Processo {{.Case.ProcessNumber}}</h1>
<table>
  <tr><th>Autor</th><td>{{.Case.Author}}</td></tr>
  <tr><th>Advogado responsável</th><td>{{.Case.Lawyer}}</td></tr>
  <tr><th>Situação</th><td>{{.Case.Status}}</td></tr>
  <tr><th>Registrado em</th><td>{{.Case.DateAdded.Format "02/01/2006"}}</td></tr>
  {{if .Case.Description}}<tr><th>Descrição</th><td>{{.Case.Description}}</td></tr>{{end}}
  {{if .Case.PDFName}}<tr><th>Documento anexado</th><td>{{.Case.PDFName}}</td></tr>{{end}}
</table>
{{if .Deadlines}}
<h2>Prazos vinculados</h2>
<table>
  {{range .Deadlines}}
  <tr><td>{{.Date}}</td><td>{{.Title}}</td><td>{{.Priority}}</td><td>{{if .Completed}}Concluído{{else}}Pendente{{end}}</td></tr>
  {{end}}
</table>
{{end}}
<div class="footer">DuarteControl</div>
</body>
</html>`

var caseSheetTmpl = template.Must(template.New("case_sheet").Parse(caseSheetTemplate))

// RenderCaseSheet renders the printable HTML summary for a case.
func RenderCaseSheet(c models.LegalCase, deadlines []models.Deadline) (string, error) {
	var linked []models.Deadline
	for _, d := range deadlines {
		if d.CaseID == c.ID {
			linked = append(linked, d)
		}
	}
	linked = SortDeadlinesByDate(linked)

	var buf bytes.Buffer
	err := caseSheetTmpl.Execute(&buf, struct {
		Case      models.LegalCase
		Deadlines []models.Deadline
	}{c, linked})
	if err != nil {
		return "", fmt.Errorf("failed to render case sheet: %w", err)
	}
	return buf.String(), nil
}

// CaseSheetPDF renders the case summary sheet and prints it to PDF.
func CaseSheetPDF(ctx context.Context, c models.LegalCase, deadlines []models.Deadline) ([]byte, error) {
	html, err := RenderCaseSheet(c, deadlines)
	if err != nil {
		return nil, err
	}
	return GeneratePDF(ctx, html)
}
