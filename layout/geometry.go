package layout

import (
	"errors"
	"math"
)

// ErrInvalidGrid is returned when the grid has no cells (cols*rows == 0)
var ErrInvalidGrid = errors.New("invalid layout: grid must contain at least one cell")

// CellGeometry holds the effective dimensions of a grid cell and of the
// whole grid, in the same unit as the card dimensions (millimeters)
type CellGeometry struct {
	CellWidth  float64 `json:"cellWidth"`
	CellHeight float64 `json:"cellHeight"`
	GridWidth  float64 `json:"gridWidth"`
	GridHeight float64 `json:"gridHeight"`
}

// NormalizeAngle normalizes an angle in degrees into [0, 360)
func NormalizeAngle(deg float64) float64 {
	normalized := math.Mod(deg, 360)
	if normalized < 0 {
		normalized += 360
	}
	return normalized
}

// AxisSwapped reports whether a card rotated by the given angle ends up with
// its long axis closer to vertical, so the cell must swap width and height
// to avoid clipping. That happens for normalized angles in [45,135] and [225,315]
func AxisSwapped(deg float64) bool {
	a := NormalizeAngle(deg)
	return (a >= 45 && a <= 135) || (a >= 225 && a <= 315)
}

// Geometry computes the effective cell dimensions and total grid extents for
// a cols x rows grid of cardWidth x cardHeight cards rotated by rotate degrees.
// Grid totals include (n-1) gap units between cells
func Geometry(cardWidth, cardHeight, rotate float64, cols, rows int, gapCol, gapRow float64) (CellGeometry, error) {
	if cols*rows <= 0 {
		return CellGeometry{}, ErrInvalidGrid
	}

	cellWidth := cardWidth
	cellHeight := cardHeight
	if AxisSwapped(rotate) {
		cellWidth, cellHeight = cardHeight, cardWidth
	}

	return CellGeometry{
		CellWidth:  cellWidth,
		CellHeight: cellHeight,
		GridWidth:  float64(cols)*cellWidth + float64(cols-1)*gapCol,
		GridHeight: float64(rows)*cellHeight + float64(rows-1)*gapRow,
	}, nil
}
