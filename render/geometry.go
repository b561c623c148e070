package render

import (
	"math"

	"github.com/lixenwraith/supernova/constants"
)

// Distance measures cell (x, y) from the grid center with the row
// offset pre-scaled, so circles come out round on taller-than-wide
// terminal cells.
func Distance(x, y int) float64 {
	dx := float64(x) - constants.GridCenterX
	dy := (float64(y) - constants.GridCenterY) * constants.VerticalScale
	return math.Sqrt(dx*dx + dy*dy)
}
