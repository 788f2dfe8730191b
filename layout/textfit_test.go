package layout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitText_NoBudgetReturnsUnchanged(t *testing.T) {
	long := strings.Repeat("x", 500)

	assert.Equal(t, long, FitText(long, 0))
	assert.Equal(t, long, FitText(long, -3))
}

func TestFitText_FittingStringUnchanged(t *testing.T) {
	assert.Equal(t, "short", FitText("short", 10))
	assert.Equal(t, "exact", FitText("exact", 5))
	assert.Equal(t, "", FitText("", 5))
}

func TestFitText_Truncates(t *testing.T) {
	got := FitText(strings.Repeat("A", 50), 10)

	assert.Equal(t, strings.Repeat("A", 10)+Ellipsis, got)
	// Never more than budget + one ellipsis marker
	assert.Len(t, []rune(got), 11)
}

func TestFitText_CountsRunesNotBytes(t *testing.T) {
	got := FitText("àéîõü-àéîõü", 5)

	assert.Equal(t, "àéîõü"+Ellipsis, got)
}

func TestFitText_Idempotent(t *testing.T) {
	fitted := FitText(strings.Repeat("material", 20), 10)

	assert.Equal(t, fitted, FitText(fitted, 10))
}
