package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"cartoes-materiais/models"
	"cartoes-materiais/utils"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

const (
	// Hard timeout for one rasterization; on expiry the whole request fails
	renderTimeout = 30 * time.Second
	// A4 in inches (210mm x 297mm, 1mm = 0.03937")
	paperWidthIn  = 8.27
	paperHeightIn = 11.69
)

// PDFService runs the render pipeline: serialize the document, rasterize it
// with headless Chrome, persist the artifact and register it for cleanup
type PDFService struct {
	renderer *HTMLRenderer
	cleanup  CleanupServiceInterface
	filesDir string
}

// NewPDFService creates a new PDFService writing artifacts under filesDir
func NewPDFService(renderer *HTMLRenderer, cleanup CleanupServiceInterface, filesDir string) *PDFService {
	return &PDFService{
		renderer: renderer,
		cleanup:  cleanup,
		filesDir: filesDir,
	}
}

// detectChromePath detects the path to Chrome/Chromium executable
// Checks CHROME_PATH env var first, then common installation paths
func detectChromePath() string {
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// GeneratePDF rasterizes the document and persists it as an artifact.
// Returns the artifact file name and its page count
func (s *PDFService) GeneratePDF(ctx context.Context, doc *models.Document) (string, int, error) {
	htmlContent, err := s.renderer.Render(doc)
	if err != nil {
		return "", 0, models.NewRenderError(models.ErrCodeRenderFailed, "failed to serialize document", err)
	}

	pdfData, err := s.rasterize(ctx, htmlContent)
	if err != nil {
		return "", 0, err
	}

	fileName := utils.ArtifactFileName(time.Now())
	filePath := filepath.Join(s.filesDir, fileName)
	if err := os.WriteFile(filePath, pdfData, 0644); err != nil {
		// Never leave a partial artifact behind
		_ = os.Remove(filePath)
		return "", 0, models.NewRenderError(models.ErrCodeStorageFailed, "failed to persist artifact", err)
	}

	pageCount, err := api.PageCountFile(filePath)
	if err != nil {
		log.Printf("⚠️  Warning: Could not read page count of %s: %v", fileName, err)
		pageCount = len(doc.Pages)
	}

	s.cleanup.Register(fileName)
	log.Printf("✅ Generated %s (%d page(s), %d bytes)", fileName, pageCount, len(pdfData))
	return fileName, pageCount, nil
}

// rasterize converts HTML to PDF bytes using chromedp, time-bounded
func (s *PDFService) rasterize(ctx context.Context, htmlContent string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, renderTimeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if chromePath := detectChromePath(); chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	var pdfBuf []byte
	err := chromedp.Run(chromedpCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		// Wait for fonts and embedded images before printing
		chromedp.Evaluate(`
			(function() {
				return Promise.all([
					document.fonts.ready,
					Promise.all(Array.from(document.querySelectorAll('img')).map(img => {
						return new Promise((resolve) => {
							if (img.complete) {
								resolve();
								return;
							}
							const timeout = setTimeout(() => resolve(), 5000);
							img.onload = () => { clearTimeout(timeout); resolve(); };
							img.onerror = () => { clearTimeout(timeout); resolve(); };
						});
					}))
				]);
			})();
		`, nil),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// Page breaks come from the .page CSS; engine margins stay zero
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthIn).
				WithPaperHeight(paperHeightIn).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			return err
		}),
	)

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, models.NewRenderError(models.ErrCodeRenderTimeout,
				fmt.Sprintf("rasterizer timed out after %s", renderTimeout), err)
		}
		return nil, models.NewRenderError(models.ErrCodeRenderFailed, "failed to generate PDF", err)
	}
	return pdfBuf, nil
}
