package layout

// Ellipsis is appended to truncated strings
const Ellipsis = "…"

// FitText truncates s to at most max characters (runes, not bytes) followed
// by an ellipsis marker. A max of zero or less means no truncation. Strings
// that already fit are returned unchanged
func FitText(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + Ellipsis
}
