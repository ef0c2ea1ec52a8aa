package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"duartecontrol/models"

	"github.com/microcosm-cc/bluemonday"
	"google.golang.org/genai"
)

// InsightFallback is returned whenever the AI service cannot produce a
// summary. The insight is best-effort decoration; it never blocks anything.
const InsightFallback = "Não foi possível gerar um resumo inteligente no momento."

// InsightService asks Gemini for a short professional summary of a case
// registration. Any failure (missing key, network, empty answer) degrades to
// the static fallback.
type InsightService struct {
	apiKey    string
	model     string
	sanitizer *bluemonday.Policy
}

// NewInsightService creates a new insight service instance
func NewInsightService(apiKey, model string) *InsightService {
	return &InsightService{
		apiKey:    apiKey,
		model:     model,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// CaseInsight returns a 2-3 sentence natural-language summary for the case,
// or the fallback string. It never returns an error.
func (s *InsightService) CaseInsight(ctx context.Context, c models.LegalCase) string {
	if s.apiKey == "" {
		return InsightFallback
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: s.apiKey})
	if err != nil {
		log.Printf("[WARNING] Failed to create Gemini client: %v", err)
		return InsightFallback
	}

	prompt := fmt.Sprintf(`Analise as seguintes informações de um processo jurídico:
Número: %s
Autor: %s
Advogado: %s

Forneça um breve resumo profissional (2-3 frases) sobre como este registro ajuda na organização do escritório.`,
		c.ProcessNumber, c.Author, c.Lawyer)

	result, err := client.Models.GenerateContent(ctx, s.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature: genai.Ptr[float32](0.7),
			TopP:        genai.Ptr[float32](0.95),
		},
	)
	if err != nil {
		log.Printf("[WARNING] Gemini insight request failed: %v", err)
		return InsightFallback
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return InsightFallback
	}

	// Model output is rendered verbatim in clients; strip any markup.
	return s.sanitizer.Sanitize(text)
}
