package models

// Default values applied to optional layout fields
const (
	DefaultRotateCard       = 0.0
	DefaultCardPadding      = 8.0
	DefaultCardMarginTop    = 4.0
	DefaultCardMarginBottom = 4.0
	DefaultCompanyName      = "Appsculpt"
	DefaultCompanyFont      = 3.5
	DefaultNameFont         = 4.0
	DefaultCodeFont         = 3.2
	DefaultQRSize           = 32.0
)

// LayoutRequest is the raw layout section of a request body. Required numeric
// fields are pointers so a missing field can be told apart from a zero value
type LayoutRequest struct {
	Cols         *int     `json:"cols"`
	Rows         *int     `json:"rows"`
	MarginTop    *float64 `json:"marginTop"`
	MarginBottom *float64 `json:"marginBottom"`
	MarginLeft   *float64 `json:"marginLeft"`
	MarginRight  *float64 `json:"marginRight"`
	GapCol       *float64 `json:"gapCol"`
	GapRow       *float64 `json:"gapRow"`
	CardWidth    *float64 `json:"cardWidth"`
	CardHeight   *float64 `json:"cardHeight"`
	// Optional fields fall back to documented defaults
	RotateCard       *float64 `json:"rotateCard"`
	CardPadding      *float64 `json:"cardPadding"`
	CardMarginTop    *float64 `json:"cardMarginTop"`
	CardMarginBottom *float64 `json:"cardMarginBottom"`
	CompanyName      string   `json:"companyName"`
	CompanyFont      *float64 `json:"companyFont"`
	NameFont         *float64 `json:"nameFont"`
	CodeFont         *float64 `json:"codeFont"`
	QRSize           *float64 `json:"qrSize"`
	MaxCharsName     *int     `json:"maxCharsName"`
	MaxCharsCode     *int     `json:"maxCharsCode"`
}

// LayoutConfig is the validated, defaults-applied layout used by the document
// builder and renderer. All dimensions are millimeters, fonts included.
// It is never mutated after validation
type LayoutConfig struct {
	Cols             int
	Rows             int
	MarginTop        float64
	MarginBottom     float64
	MarginLeft       float64
	MarginRight      float64
	GapCol           float64
	GapRow           float64
	CardWidth        float64
	CardHeight       float64
	RotateCard       float64
	CardPadding      float64
	CardMarginTop    float64
	CardMarginBottom float64
	CompanyName      string
	CompanyFont      float64
	NameFont         float64
	CodeFont         float64
	QRSize           float64
	MaxCharsName     int // 0 = no truncation
	MaxCharsCode     int // 0 = no truncation
}

// CellsPerPage returns the number of grid cells on one page
func (c LayoutConfig) CellsPerPage() int {
	return c.Cols * c.Rows
}

// requiredFloat validates one required non-negative numeric field
func requiredFloat(field string, value *float64, out *float64) error {
	if value == nil {
		return &ValidationError{Field: field, Message: "is required and must be numeric"}
	}
	if *value < 0 {
		return &ValidationError{Field: field, Message: "must not be negative"}
	}
	*out = *value
	return nil
}

// Validate checks the request and produces a LayoutConfig with defaults applied
func (r LayoutRequest) Validate() (LayoutConfig, error) {
	var cfg LayoutConfig

	if r.Cols == nil {
		return cfg, &ValidationError{Field: "layout.cols", Message: "is required and must be numeric"}
	}
	if r.Rows == nil {
		return cfg, &ValidationError{Field: "layout.rows", Message: "is required and must be numeric"}
	}
	if *r.Cols <= 0 || *r.Rows <= 0 {
		return cfg, &ValidationError{Field: "layout", Message: "cols and rows must be positive integers"}
	}
	cfg.Cols = *r.Cols
	cfg.Rows = *r.Rows

	required := []struct {
		field string
		value *float64
		out   *float64
	}{
		{"layout.marginTop", r.MarginTop, &cfg.MarginTop},
		{"layout.marginBottom", r.MarginBottom, &cfg.MarginBottom},
		{"layout.marginLeft", r.MarginLeft, &cfg.MarginLeft},
		{"layout.marginRight", r.MarginRight, &cfg.MarginRight},
		{"layout.gapCol", r.GapCol, &cfg.GapCol},
		{"layout.gapRow", r.GapRow, &cfg.GapRow},
		{"layout.cardWidth", r.CardWidth, &cfg.CardWidth},
		{"layout.cardHeight", r.CardHeight, &cfg.CardHeight},
	}
	for _, f := range required {
		if err := requiredFloat(f.field, f.value, f.out); err != nil {
			return cfg, err
		}
	}

	if cfg.CardWidth <= 0 {
		return cfg, &ValidationError{Field: "layout.cardWidth", Message: "must be positive"}
	}
	if cfg.CardHeight <= 0 {
		return cfg, &ValidationError{Field: "layout.cardHeight", Message: "must be positive"}
	}

	// Optional fields with defaults
	cfg.RotateCard = DefaultRotateCard
	if r.RotateCard != nil {
		cfg.RotateCard = *r.RotateCard
	}
	cfg.CardPadding = DefaultCardPadding
	if r.CardPadding != nil {
		cfg.CardPadding = *r.CardPadding
	}
	cfg.CardMarginTop = DefaultCardMarginTop
	if r.CardMarginTop != nil {
		cfg.CardMarginTop = *r.CardMarginTop
	}
	cfg.CardMarginBottom = DefaultCardMarginBottom
	if r.CardMarginBottom != nil {
		cfg.CardMarginBottom = *r.CardMarginBottom
	}
	cfg.CompanyName = DefaultCompanyName
	if r.CompanyName != "" {
		cfg.CompanyName = r.CompanyName
	}
	cfg.CompanyFont = DefaultCompanyFont
	if r.CompanyFont != nil {
		cfg.CompanyFont = *r.CompanyFont
	}
	cfg.NameFont = DefaultNameFont
	if r.NameFont != nil {
		cfg.NameFont = *r.NameFont
	}
	cfg.CodeFont = DefaultCodeFont
	if r.CodeFont != nil {
		cfg.CodeFont = *r.CodeFont
	}
	cfg.QRSize = DefaultQRSize
	if r.QRSize != nil {
		cfg.QRSize = *r.QRSize
	}
	if r.MaxCharsName != nil && *r.MaxCharsName > 0 {
		cfg.MaxCharsName = *r.MaxCharsName
	}
	if r.MaxCharsCode != nil && *r.MaxCharsCode > 0 {
		cfg.MaxCharsCode = *r.MaxCharsCode
	}

	return cfg, nil
}
