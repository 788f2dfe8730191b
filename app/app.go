package app

import (
	"fmt"
	"os"

	"cartoes-materiais/app/controller"
	"cartoes-materiais/app/router"
	"cartoes-materiais/service"
)

// Initialize wires services and controllers and registers the routes
func Initialize() error {
	filesDir := os.Getenv("FILES_DIR")
	if filesDir == "" {
		filesDir = "generated"
	}
	if err := os.MkdirAll(filesDir, 0755); err != nil {
		return fmt.Errorf("failed to create artifact directory: %w", err)
	}

	// Every persisted artifact self-destructs after the retention window
	cleanupService := service.NewCleanupService(filesDir, service.DefaultRetention)
	// Files from a previous run have no timers left; reap them too
	cleanupService.SweepExisting()

	imageService := service.NewImageService()
	renderer := service.NewHTMLRenderer()
	pdfService := service.NewPDFService(renderer, cleanupService, filesDir)

	controllers := &router.Controllers{
		Card: controller.NewCardController(imageService, pdfService, renderer),
		File: controller.NewFileController(filesDir),
	}

	// Setup routes using standard http router
	router.SetupRoutes(controllers)

	return nil
}
