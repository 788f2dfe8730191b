package router

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"cartoes-materiais/app/controller"
)

type Controllers struct {
	Card *controller.CardController
	File *controller.FileController
}

// healthHandler handles GET /health
func healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// withRecovery contains panics from a single bad request so the process
// survives; only startup failures like a bound port are fatal
func withRecovery(handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("❌ Panic handling %s %s: %v", r.Method, r.URL.Path, rec)
				http.Error(w, "Internal server error", http.StatusInternalServerError)
			}
		}()
		handler(w, r)
	}
}

func SetupRoutes(controllers *Controllers) {
	// Health endpoint
	http.HandleFunc("/health", withRecovery(healthHandler))

	// Interactive document preview
	http.HandleFunc("/preview", withRecovery(controllers.Card.Preview))

	// Full render pipeline
	http.HandleFunc("/gerar-pdf", withRecovery(controllers.Card.GeneratePDF))

	// In-browser viewer wrapper for a generated artifact
	http.HandleFunc("/view/", withRecovery(controllers.File.ViewFile))

	// Raw artifact bytes while the artifact still exists
	http.HandleFunc("/files/", withRecovery(controllers.File.ServeFile))
}
