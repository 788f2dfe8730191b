package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// unsafeFileChars matches everything outside the allowed file id alphabet
var unsafeFileChars = regexp.MustCompile(`[^a-z0-9_-]+`)

// SanitizeFileID case-folds an artifact id and strips every character outside
// [a-z0-9_-]. Applied before any filesystem use, including lookups, so a
// crafted id can never escape the artifact directory
func SanitizeFileID(id string) string {
	id = strings.ToLower(strings.TrimSpace(id))
	id = strings.TrimSuffix(id, ".pdf")
	return unsafeFileChars.ReplaceAllString(id, "")
}

// ArtifactFileName builds a generated PDF file name: cards_<ISO-date>_<8-hex>.pdf
// The random suffix makes collisions between concurrent requests astronomically
// unlikely
func ArtifactFileName(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("cards_%s_%s.pdf", now.Format("2006-01-02"), suffix)
}
