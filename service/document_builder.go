package service

import (
	"fmt"
	"html"

	"cartoes-materiais/layout"
	"cartoes-materiais/models"
)

// BuildDocument composes the validated layout, resolved materials and logo
// into a render-ready Document tree. Pure: no I/O, deterministic.
//
// Every user-controlled string (company name, material name, material code)
// is fitted to its character budget and escaped here, before it can reach any
// markup. The final page is padded with placeholder cells so the grid stays
// visually square; the logo is attached only to page 0
func BuildDocument(cfg models.LayoutConfig, logoData string, materials []models.ResolvedMaterial, mode models.RenderMode) (*models.Document, error) {
	geom, err := layout.Geometry(cfg.CardWidth, cfg.CardHeight, cfg.RotateCard, cfg.Cols, cfg.Rows, cfg.GapCol, cfg.GapRow)
	if err != nil {
		return nil, fmt.Errorf("failed to compute grid geometry: %w", err)
	}

	perPage := cfg.CellsPerPage()
	company := html.EscapeString(cfg.CompanyName)

	var pages []models.DocumentPage
	for i, pageMaterials := range layout.Paginate(materials, perPage) {
		cards := make([]models.Card, 0, perPage)
		for _, m := range pageMaterials {
			cards = append(cards, models.Card{
				CompanyName: company,
				Name:        html.EscapeString(layout.FitText(m.Name, cfg.MaxCharsName)),
				Code:        html.EscapeString(layout.FitText(m.Code, cfg.MaxCharsCode)),
				QRData:      m.QRData,
			})
		}
		// Pad the final page up to a full grid
		for len(cards) < perPage {
			cards = append(cards, models.Card{Placeholder: true})
		}

		page := models.DocumentPage{Index: i, Cards: cards}
		if i == 0 {
			page.Logo = logoData
		}
		pages = append(pages, page)
	}

	return &models.Document{
		Mode:     mode,
		Layout:   cfg,
		Geometry: geom,
		Pages:    pages,
	}, nil
}
