package controller

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"cartoes-materiais/models"
	"cartoes-materiais/utils"
)

// FileController serves generated artifacts while they still exist
type FileController struct {
	filesDir string
}

// NewFileController creates a new FileController
func NewFileController(filesDir string) *FileController {
	return &FileController{filesDir: filesDir}
}

// resolveArtifact sanitizes an id and probes the artifact path directly;
// there is no index, existence is the path probe
func (c *FileController) resolveArtifact(id string) (string, string, error) {
	fileID := utils.SanitizeFileID(id)
	if fileID == "" {
		return "", "", models.ErrNotFound
	}
	fileName := fileID + ".pdf"
	filePath := filepath.Join(c.filesDir, fileName)
	if _, err := os.Stat(filePath); err != nil {
		return "", "", models.ErrNotFound
	}
	return fileName, filePath, nil
}

// ViewFile handles GET /view/:fileId
// Returns an HTML wrapper embedding the PDF for in-browser viewing
func (c *FileController) ViewFile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/view/")
	fileName, _, err := c.resolveArtifact(id)
	if err != nil {
		log.Printf("⚠️  ViewFile: Artifact not found: %s", id)
		http.Error(w, models.ErrNotFound.Error(), http.StatusNotFound)
		return
	}

	page := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>%s</title>
<style>html,body{margin:0;height:100%%;}iframe{border:0;width:100%%;height:100%%;}</style>
</head>
<body><iframe src="/files/%s"></iframe></body>
</html>`, fileName, fileName)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(page)); err != nil {
		log.Printf("❌ ViewFile: Error writing response: %v", err)
	}
}

// ServeFile handles GET /files/:fileName
// Streams the artifact bytes while it still exists
func (c *FileController) ServeFile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/files/")
	fileName, filePath, err := c.resolveArtifact(name)
	if err != nil {
		log.Printf("⚠️  ServeFile: Artifact not found: %s", name)
		http.Error(w, models.ErrNotFound.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=\"%s\"", fileName))
	http.ServeFile(w, r, filePath)
}
