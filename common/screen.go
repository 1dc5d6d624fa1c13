package common

// Logical screen size. The window scales this to fit.
const (
	BaseWidth  = 1280
	BaseHeight = 800
)

// GroundY is the ground line for a screen height and ground strip.
func GroundY(height, strip float64) float64 {
	return height - strip
}
