package constants

// Grid Dimensions
// The simulation renders into a fixed grid independent of terminal size
const (
	GridWidth  = 90
	GridHeight = 32

	GridCenterX = 45.0
	GridCenterY = 16.0

	// VerticalScale pre-scales row offsets in distance tests, correcting
	// cells being taller than they are wide
	VerticalScale = 1.5
)

// Shell Thickness for annulus phases
const (
	BounceShellThickness = 1.5
	ShockShellThickness  = 1.6
)

// NebulaFillChance lights one cell in N inside the remnant per frame,
// re-rolled every frame for a shimmering gas texture
const NebulaFillChance = 12

// Cell Symbols
const (
	SymbolGiant    = '#'
	SymbolCollapse = '@'
	SymbolShock    = '*' // bounce and explosion fronts share the symbol
	SymbolNebula   = '.'
	SymbolCore     = 'O'
	SymbolEjecta   = '+'
	SymbolBlank    = ' '
)
