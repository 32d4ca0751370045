// Package builder defines the constructor names and minimum sizes shared by
// all topology constructors.
package builder

// Constructor names, used to prefix errors.
const (
	MethodPath         = "Path"
	MethodCycle        = "Cycle"
	MethodStar         = "Star"
	MethodWheel        = "Wheel"
	MethodComplete     = "Complete"
	MethodGrid         = "Grid"
	MethodRandomSparse = "RandomSparse"
)

// Minimum sizes.
const (
	MinPathNodes         = 2
	MinCycleNodes        = 3
	MinStarNodes         = 2
	MinWheelNodes        = 4
	MinCompleteNodes     = 1
	MinGridDim           = 1
	MinRandomSparseNodes = 1

	MinProbability = 0.0
	MaxProbability = 1.0
)
