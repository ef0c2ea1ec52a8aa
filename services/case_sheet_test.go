package services

import (
	"strings"
	"testing"
	"time"

	"duartecontrol/models"

	"github.com/stretchr/testify/assert"
)

func TestRenderCaseSheet(t *testing.T) {
	c := models.LegalCase{
		ID:            "c1",
		ProcessNumber: "0001234-56.2024",
		Author:        "Maria Silva",
		Lawyer:        "Dra. Ana Costa",
		Status:        models.CaseStatusActive,
		DateAdded:     time.Date(2025, 1, 20, 10, 0, 0, 0, time.UTC),
		Description:   "Ação de cobrança",
		PDFName:       "contrato.pdf",
		PDFData:       "data:application/pdf;base64,JVBERg==",
	}
	deadlines := []models.Deadline{
		{ID: "d1", CaseID: "c1", Title: "Contestação", Date: "2025-06-01"},
		{ID: "d2", CaseID: "c1", Title: "Audiência", Date: "2025-02-15", Completed: true},
		{ID: "d3", CaseID: "other", Title: "Alheio", Date: "2025-03-01"},
	}

	html, err := RenderCaseSheet(c, deadlines)
	assert.NoError(t, err)

	assert.Contains(t, html, "Ficha do Processo 0001234-56.2024")
	assert.Contains(t, html, "Maria Silva")
	assert.Contains(t, html, "Dra. Ana Costa")
	assert.Contains(t, html, "20/01/2025")
	assert.Contains(t, html, "contrato.pdf")

	// Only the linked deadlines appear, earlier date first.
	assert.Contains(t, html, "Contestação")
	assert.Contains(t, html, "Concluído")
	assert.NotContains(t, html, "Alheio")
	assert.Less(t, strings.Index(html, "Audiência"), strings.Index(html, "Contestação"))
}

func TestRenderCaseSheetEscapesMarkup(t *testing.T) {
	c := models.LegalCase{
		ID:            "c1",
		ProcessNumber: "100",
		Author:        "<script>alert(1)</script>",
		Status:        models.CaseStatusActive,
		DateAdded:     time.Now(),
	}

	html, err := RenderCaseSheet(c, nil)
	assert.NoError(t, err)
	assert.NotContains(t, html, "<script>alert(1)</script>")
}

func TestRenderCaseSheetWithoutOptionalSections(t *testing.T) {
	c := models.LegalCase{
		ID:            "c1",
		ProcessNumber: "100",
		Author:        "Maria",
		Status:        models.CaseStatusActive,
		DateAdded:     time.Now(),
	}

	html, err := RenderCaseSheet(c, nil)
	assert.NoError(t, err)
	assert.NotContains(t, html, "Descrição")
	assert.NotContains(t, html, "Documento anexado")
	assert.NotContains(t, html, "Prazos vinculados")
}
