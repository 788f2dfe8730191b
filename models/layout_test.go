package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }

func iptr(v int) *int { return &v }

// validLayoutRequest returns a minimal valid layout request
func validLayoutRequest() LayoutRequest {
	return LayoutRequest{
		Cols:         iptr(2),
		Rows:         iptr(2),
		MarginTop:    fptr(10),
		MarginBottom: fptr(10),
		MarginLeft:   fptr(10),
		MarginRight:  fptr(10),
		GapCol:       fptr(5),
		GapRow:       fptr(5),
		CardWidth:    fptr(60),
		CardHeight:   fptr(40),
	}
}

func TestLayoutRequest_DefaultsApplied(t *testing.T) {
	cfg, err := validLayoutRequest().Validate()
	require.NoError(t, err)

	assert.Equal(t, 0.0, cfg.RotateCard)
	assert.Equal(t, 8.0, cfg.CardPadding)
	assert.Equal(t, 4.0, cfg.CardMarginTop)
	assert.Equal(t, 4.0, cfg.CardMarginBottom)
	assert.Equal(t, "Appsculpt", cfg.CompanyName)
	assert.Equal(t, 3.5, cfg.CompanyFont)
	assert.Equal(t, 4.0, cfg.NameFont)
	assert.Equal(t, 3.2, cfg.CodeFont)
	assert.Equal(t, 32.0, cfg.QRSize)
	assert.Equal(t, 0, cfg.MaxCharsName) // unset = no truncation
	assert.Equal(t, 0, cfg.MaxCharsCode)
	assert.Equal(t, 4, cfg.CellsPerPage())
}

func TestLayoutRequest_OptionalOverrides(t *testing.T) {
	req := validLayoutRequest()
	req.RotateCard = fptr(90)
	req.CompanyName = "Oficina"
	req.MaxCharsName = iptr(12)

	cfg, err := req.Validate()
	require.NoError(t, err)

	assert.Equal(t, 90.0, cfg.RotateCard)
	assert.Equal(t, "Oficina", cfg.CompanyName)
	assert.Equal(t, 12, cfg.MaxCharsName)
}

func TestLayoutRequest_MissingRequiredField(t *testing.T) {
	req := validLayoutRequest()
	req.GapRow = nil

	_, err := req.Validate()

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "layout.gapRow", vErr.Field)
}

func TestLayoutRequest_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*LayoutRequest)
	}{
		{"missing cols", func(r *LayoutRequest) { r.Cols = nil }},
		{"zero cols", func(r *LayoutRequest) { r.Cols = iptr(0) }},
		{"negative rows", func(r *LayoutRequest) { r.Rows = iptr(-1) }},
		{"negative margin", func(r *LayoutRequest) { r.MarginLeft = fptr(-2) }},
		{"negative gap", func(r *LayoutRequest) { r.GapCol = fptr(-1) }},
		{"zero card width", func(r *LayoutRequest) { r.CardWidth = fptr(0) }},
		{"zero card height", func(r *LayoutRequest) { r.CardHeight = fptr(0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validLayoutRequest()
			tt.mutate(&req)

			_, err := req.Validate()

			var vErr *ValidationError
			assert.ErrorAs(t, err, &vErr)
		})
	}
}

func TestLayoutRequest_NonNumericFieldFailsDecoding(t *testing.T) {
	var req LayoutRequest
	err := json.Unmarshal([]byte(`{"cols":"two","rows":2}`), &req)
	assert.Error(t, err)
}

func TestGenerateRequest_Validate(t *testing.T) {
	base := GenerateRequest{
		Layout:    validLayoutRequest(),
		Materials: []Material{{Name: "Parafuso", Code: "PF-01"}},
	}

	t.Run("valid", func(t *testing.T) {
		_, err := base.Validate()
		assert.NoError(t, err)
	})

	t.Run("empty materials", func(t *testing.T) {
		req := base
		req.Materials = nil

		_, err := req.Validate()

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "materials", vErr.Field)
	})

	t.Run("material missing name", func(t *testing.T) {
		req := base
		req.Materials = []Material{{Name: "   ", Code: "PF-01"}}

		_, err := req.Validate()
		assert.Error(t, err)
	})

	t.Run("material missing code", func(t *testing.T) {
		req := base
		req.Materials = []Material{{Name: "Parafuso", Code: ""}}

		_, err := req.Validate()
		assert.Error(t, err)
	})

	t.Run("qr is optional", func(t *testing.T) {
		req := base
		req.Materials = []Material{{Name: "Parafuso", Code: "PF-01", QR: ""}}

		_, err := req.Validate()
		assert.NoError(t, err)
	})
}
