package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"duartecontrol/models"
	"duartecontrol/services"

	"github.com/labstack/echo/v4"
)

// GetCasesHandler lists cases, optionally filtered by a search term against a
// single field selected by mode (number, author or lawyer).
func GetCasesHandler(c echo.Context) error {
	ctx := c.Request().Context()

	cases, err := Cases.List(ctx)
	if err != nil {
		return serviceError(err)
	}

	term := c.QueryParam("term")
	mode := services.SearchMode(c.QueryParam("mode"))
	if term != "" {
		if !services.IsValidSearchMode(mode) {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid search mode")
		}
		cases = services.FilterCases(cases, term, mode)
	}

	return c.JSON(http.StatusOK, cases)
}

// GetCaseHandler returns a single case by id
func GetCaseHandler(c echo.Context) error {
	existing, ok, err := Cases.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceError(err)
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Case not found")
	}
	return c.JSON(http.StatusOK, existing)
}

// CreateCaseHandler registers a new case
func CreateCaseHandler(c echo.Context) error {
	var in services.CaseInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	created, err := Cases.Create(c.Request().Context(), in)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateCaseHandler rewrites an existing case
func UpdateCaseHandler(c echo.Context) error {
	var in services.CaseInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	updated, ok, err := Cases.Update(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return serviceError(err)
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Case not found")
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteCaseHandler removes a case and any offloaded document copy
func DeleteCaseHandler(c echo.Context) error {
	ctx := c.Request().Context()

	removed, ok, err := Cases.Delete(ctx, c.Param("id"))
	if err != nil {
		return serviceError(err)
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Case not found")
	}

	discardOffloadedDocument(ctx, removed.StorageKey)
	return c.NoContent(http.StatusNoContent)
}

// GetCaseGroupsHandler returns cases partitioned by lawyer or by author,
// with group names sorted alphabetically. The same term/mode filter as the
// list endpoint applies before grouping.
func GetCaseGroupsHandler(c echo.Context) error {
	cases, err := Cases.List(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}

	term := c.QueryParam("term")
	mode := services.SearchMode(c.QueryParam("mode"))
	if term != "" {
		if !services.IsValidSearchMode(mode) {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid search mode")
		}
		cases = services.FilterCases(cases, term, mode)
	}

	var groups map[string][]models.LegalCase
	switch c.QueryParam("by") {
	case "lawyer":
		groups = services.GroupCasesByLawyer(cases)
	case "author":
		groups = services.GroupCasesByAuthor(cases)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "Group by must be 'lawyer' or 'author'")
	}

	type caseGroup struct {
		Name  string             `json:"name"`
		Cases []models.LegalCase `json:"cases"`
	}
	ordered := make([]caseGroup, 0, len(groups))
	for _, name := range services.SortedGroupKeys(groups) {
		ordered = append(ordered, caseGroup{Name: name, Cases: groups[name]})
	}

	return c.JSON(http.StatusOK, ordered)
}

// offloadDocument writes a raw copy of an uploaded PDF to the storage
// provider and returns its key. Failures are logged, not surfaced: the
// inline data-URI stays the authoritative copy.
func offloadDocument(ctx context.Context, caseID, filename string, content []byte) string {
	if services.Storage == nil || !services.Storage.IsConfigured() {
		return ""
	}

	key := services.GenerateCaseDocumentKey(caseID, filename)
	if err := services.Storage.UploadBytes(ctx, content, key, services.AllowedMimeType); err != nil {
		log.Printf("[WARNING] Failed to offload case document %s: %v", key, err)
		return ""
	}
	return key
}

// discardOffloadedDocument removes a raw copy, if one was stored.
func discardOffloadedDocument(ctx context.Context, key string) {
	if key == "" || services.Storage == nil {
		return
	}
	if err := services.Storage.Delete(ctx, key); err != nil {
		log.Printf("[WARNING] Failed to delete offloaded case document %s: %v", key, err)
	}
}

// UploadCaseDocumentHandler attaches a PDF to a case. The document is stored
// inline as a data-URI and a raw copy is offloaded to the storage provider;
// the copy's key is persisted on the case so it can be served and cleaned up.
func UploadCaseDocumentHandler(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	fileHeader, err := c.FormFile("document")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "A PDF file is required")
	}

	if err := services.ValidatePDFUpload(fileHeader); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	dataURI, err := services.EncodePDFDataURI(fileHeader)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	content, err := services.DecodePDFDataURI(dataURI)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid PDF content")
	}

	key := offloadDocument(ctx, id, fileHeader.Filename, content)

	updated, replacedKey, ok, err := Cases.AttachDocument(ctx, id, fileHeader.Filename, dataURI, key)
	if err != nil {
		discardOffloadedDocument(ctx, key)
		return serviceError(err)
	}
	if !ok {
		discardOffloadedDocument(ctx, key)
		return echo.NewHTTPError(http.StatusNotFound, "Case not found")
	}
	if replacedKey != "" && replacedKey != key {
		discardOffloadedDocument(ctx, replacedKey)
	}

	return c.JSON(http.StatusOK, updated)
}

// DownloadCaseDocumentHandler streams the attached PDF back to the client.
// The offloaded raw copy is preferred; the inline data-URI is the fallback
// when no copy was stored or the provider cannot serve it.
func DownloadCaseDocumentHandler(c echo.Context) error {
	ctx := c.Request().Context()

	existing, ok, err := Cases.Get(ctx, c.Param("id"))
	if err != nil {
		return serviceError(err)
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Case not found")
	}
	if !existing.HasDocument() {
		return echo.NewHTTPError(http.StatusNotFound, "Case has no attached document")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"`, existing.PDFName))

	if existing.StorageKey != "" && services.Storage != nil {
		reader, contentType, err := services.Storage.Get(ctx, existing.StorageKey)
		if err == nil {
			defer reader.Close()
			return c.Stream(http.StatusOK, contentType, reader)
		}
		log.Printf("[WARNING] Offloaded case document %s unavailable, serving inline copy: %v", existing.StorageKey, err)
	}

	content, err := services.DecodePDFDataURI(existing.PDFData)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Stored document is corrupted")
	}
	return c.Blob(http.StatusOK, services.AllowedMimeType, content)
}

// DeleteCaseDocumentHandler removes the attachment from a case, including
// the offloaded raw copy
func DeleteCaseDocumentHandler(c echo.Context) error {
	ctx := c.Request().Context()

	updated, removedKey, ok, err := Cases.RemoveDocument(ctx, c.Param("id"))
	if err != nil {
		return serviceError(err)
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Case not found")
	}

	discardOffloadedDocument(ctx, removedKey)
	return c.JSON(http.StatusOK, updated)
}

// GetCaseInsightHandler returns an AI-generated summary for the case. The
// response always succeeds; failures inside the AI call degrade to a static
// fallback message.
func GetCaseInsightHandler(c echo.Context) error {
	ctx := c.Request().Context()

	existing, ok, err := Cases.Get(ctx, c.Param("id"))
	if err != nil {
		return serviceError(err)
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Case not found")
	}

	return c.JSON(http.StatusOK, map[string]string{
		"insight": Insight.CaseInsight(ctx, existing),
	})
}

// GetCaseSheetHandler renders a printable PDF summary of the case and its
// linked deadlines.
func GetCaseSheetHandler(c echo.Context) error {
	ctx := c.Request().Context()

	existing, ok, err := Cases.Get(ctx, c.Param("id"))
	if err != nil {
		return serviceError(err)
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Case not found")
	}

	deadlines, err := Deadlines.List(ctx)
	if err != nil {
		return serviceError(err)
	}

	pdf, err := services.CaseSheetPDF(ctx, existing, deadlines)
	if err != nil {
		log.Printf("[WARNING] Failed to generate case sheet for %s: %v", existing.ID, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate case sheet")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="ficha_%s.pdf"`, existing.ProcessNumber))
	return c.Blob(http.StatusOK, services.AllowedMimeType, pdf)
}
