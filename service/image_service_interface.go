package service

import (
	"context"

	"cartoes-materiais/models"
)

// ImageServiceInterface resolves remote images into embeddable data URIs
type ImageServiceInterface interface {
	// ResolveLogo fetches the logo, returning "" when unavailable
	ResolveLogo(ctx context.Context, logoURL string) string
	// ResolveMaterials resolves every material's QR reference concurrently.
	// Individual fetch failures degrade to an empty QRData, never an error
	ResolveMaterials(ctx context.Context, materials []models.Material) []models.ResolvedMaterial
}
