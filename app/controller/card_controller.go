package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"cartoes-materiais/layout"
	"cartoes-materiais/models"
	"cartoes-materiais/service"
	"cartoes-materiais/utils"
)

// CardController handles HTTP requests for card document generation
type CardController struct {
	imageService service.ImageServiceInterface
	pdfService   *service.PDFService
	renderer     *service.HTMLRenderer
}

// NewCardController creates a new CardController
func NewCardController(
	imageService service.ImageServiceInterface,
	pdfService *service.PDFService,
	renderer *service.HTMLRenderer,
) *CardController {
	return &CardController{
		imageService: imageService,
		pdfService:   pdfService,
		renderer:     renderer,
	}
}

// decodeAndValidate parses the request body and validates it before any I/O
func decodeAndValidate(r *http.Request) (*models.GenerateRequest, models.LayoutConfig, error) {
	var req models.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, models.LayoutConfig{}, &models.ValidationError{Field: "body", Message: "invalid request body: " + err.Error()}
	}
	cfg, err := req.Validate()
	if err != nil {
		return nil, models.LayoutConfig{}, err
	}
	return &req, cfg, nil
}

// writeError maps pipeline errors to HTTP responses. Unexpected errors get a
// generic message; details stay in the server log
func writeError(w http.ResponseWriter, operation string, err error) {
	var validationErr *models.ValidationError
	var renderErr *models.RenderError

	switch {
	case errors.As(err, &validationErr):
		log.Printf("❌ %s: Validation failed: %v", operation, err)
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, layout.ErrInvalidGrid):
		log.Printf("❌ %s: Invalid layout: %v", operation, err)
		http.Error(w, layout.ErrInvalidGrid.Error(), http.StatusBadRequest)
	case errors.As(err, &renderErr):
		log.Printf("❌ %s: Render failed [%s]: %v", operation, renderErr.Code, err)
		http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
	default:
		log.Printf("❌ %s: Unexpected error: %v", operation, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// Preview handles POST /preview
// Builds the document and returns it as HTML for interactive viewing
func (c *CardController) Preview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req, cfg, err := decodeAndValidate(r)
	if err != nil {
		writeError(w, "Preview", err)
		return
	}

	ctx := r.Context()
	logoData := c.imageService.ResolveLogo(ctx, req.LogoURL)
	resolved := c.imageService.ResolveMaterials(ctx, req.Materials)

	doc, err := service.BuildDocument(cfg, logoData, resolved, models.ModeInteractive)
	if err != nil {
		writeError(w, "Preview", err)
		return
	}

	htmlContent, err := c.renderer.Render(doc)
	if err != nil {
		writeError(w, "Preview", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(htmlContent)); err != nil {
		log.Printf("❌ Preview: Error writing HTML response: %v", err)
	}
}

// GeneratePDF handles POST /gerar-pdf
// Runs the full render pipeline and registers the artifact for cleanup
func (c *CardController) GeneratePDF(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req, cfg, err := decodeAndValidate(r)
	if err != nil {
		writeError(w, "GeneratePDF", err)
		return
	}

	log.Printf("📥 GeneratePDF: %d material(s), grid %dx%d", len(req.Materials), cfg.Cols, cfg.Rows)

	ctx := r.Context()
	logoData := c.imageService.ResolveLogo(ctx, req.LogoURL)
	resolved := c.imageService.ResolveMaterials(ctx, req.Materials)

	doc, err := service.BuildDocument(cfg, logoData, resolved, models.ModePrint)
	if err != nil {
		writeError(w, "GeneratePDF", err)
		return
	}

	fileName, pageCount, err := c.pdfService.GeneratePDF(ctx, doc)
	if err != nil {
		writeError(w, "GeneratePDF", err)
		return
	}

	fileID := utils.SanitizeFileID(strings.TrimSuffix(fileName, ".pdf"))
	response := map[string]interface{}{
		"status":      "ok",
		"downloadUrl": fmt.Sprintf("/files/%s", fileName),
		"viewerUrl":   fmt.Sprintf("/view/%s", fileID),
		"pages":       pageCount,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ GeneratePDF: Error encoding response: %v", err)
	}
}
