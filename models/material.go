package models

import (
	"fmt"
	"strings"
)

// Material is a single record to print as a card
type Material struct {
	Name string `json:"name"`
	Code string `json:"code"`
	QR   string `json:"qr"` // optional QR image URL
}

// ResolvedMaterial is a Material whose QR reference has been resolved to an
// embeddable data URI. An empty QRData means the image was unavailable and a
// placeholder is rendered instead
type ResolvedMaterial struct {
	Material
	QRData string
}

// GenerateRequest is the request body shared by /preview and /gerar-pdf
type GenerateRequest struct {
	LogoURL   string        `json:"logoUrl"`
	Layout    LayoutRequest `json:"layout"`
	Materials []Material    `json:"materials"`
}

// Validate checks the whole request and returns the validated layout.
// Validation happens before any external I/O
func (r GenerateRequest) Validate() (LayoutConfig, error) {
	cfg, err := r.Layout.Validate()
	if err != nil {
		return cfg, err
	}

	if len(r.Materials) == 0 {
		return cfg, &ValidationError{Field: "materials", Message: "must be a non-empty list"}
	}
	for i, m := range r.Materials {
		if strings.TrimSpace(m.Name) == "" {
			return cfg, &ValidationError{Field: "materials", Message: fmt.Sprintf("item %d is missing a name", i)}
		}
		if strings.TrimSpace(m.Code) == "" {
			return cfg, &ValidationError{Field: "materials", Message: fmt.Sprintf("item %d is missing a code", i)}
		}
	}

	return cfg, nil
}
