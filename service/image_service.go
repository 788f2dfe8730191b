package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"io"
	"log"
	"net/http"
	"time"

	"cartoes-materiais/models"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"
)

const (
	// Max dimension for embedded images; larger fetches are downscaled so
	// documents with hundreds of cards stay renderable
	maxImageDim = 512
	// Concurrent fetches per batch
	fetchConcurrency = 8
	// Per-fetch HTTP timeout
	fetchTimeout = 10 * time.Second
)

// ImageService fetches remote images (logo, QR codes) and converts them to
// base64 data URIs for embedding. Implements ImageServiceInterface
type ImageService struct {
	client *http.Client
}

// NewImageService creates a new ImageService
func NewImageService() *ImageService {
	return &ImageService{
		client: &http.Client{Timeout: fetchTimeout},
	}
}

// Ensure ImageService implements ImageServiceInterface
var _ ImageServiceInterface = (*ImageService)(nil)

// FetchImageAsBase64 fetches an image URL and converts it to a data URI
func (s *ImageService) FetchImageAsBase64(ctx context.Context, imageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build image request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image endpoint returned status %d", resp.StatusCode)
	}

	imageData, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read image data: %w", err)
	}

	optimized, mimeType := optimizeImage(imageData)
	base64Str := base64.StdEncoding.EncodeToString(optimized)
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64Str), nil
}

// ResolveLogo fetches the logo image, degrading to "" when unavailable
func (s *ImageService) ResolveLogo(ctx context.Context, logoURL string) string {
	if logoURL == "" {
		return ""
	}
	data, err := s.FetchImageAsBase64(ctx, logoURL)
	if err != nil {
		log.Printf("⚠️  Warning: Failed to fetch logo: %v", err)
		return ""
	}
	return data
}

// ResolveMaterials resolves QR references for a batch of materials with a
// bounded fan-out. A failed fetch yields a placeholder for that material only
// and does not cancel sibling fetches
func (s *ImageService) ResolveMaterials(ctx context.Context, materials []models.Material) []models.ResolvedMaterial {
	resolved := make([]models.ResolvedMaterial, len(materials))

	g := &errgroup.Group{}
	g.SetLimit(fetchConcurrency)

	for i, m := range materials {
		resolved[i] = models.ResolvedMaterial{Material: m}
		if m.QR == "" {
			continue
		}
		i, m := i, m
		g.Go(func() error {
			data, err := s.FetchImageAsBase64(ctx, m.QR)
			if err != nil {
				log.Printf("⚠️  Warning: Failed to fetch QR for material %s: %v", m.Code, err)
				return nil
			}
			resolved[i].QRData = data
			return nil
		})
	}

	// Workers never return errors; failures degrade per item
	_ = g.Wait()
	return resolved
}

// optimizeImage downscales an image to at most maxImageDim on its longest
// side and re-encodes it as PNG, keeping QR edges crisp. Data that cannot be
// decoded (e.g. SVG) is embedded unchanged with a sniffed MIME type
func optimizeImage(imageData []byte) ([]byte, string) {
	img, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return imageData, http.DetectContentType(imageData)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width > maxImageDim || height > maxImageDim {
		if width > height {
			img = imaging.Resize(img, maxImageDim, 0, imaging.Lanczos)
		} else {
			img = imaging.Resize(img, 0, maxImageDim, imaging.Lanczos)
		}
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return imageData, http.DetectContentType(imageData)
	}
	return buf.Bytes(), "image/png"
}
