package component

// Transform is a world-space position. For the player Y is the foot line;
// for everything else it is the top-left corner.
type Transform struct {
	X float64
	Y float64
}

var TransformComponent = NewComponent[Transform]()
