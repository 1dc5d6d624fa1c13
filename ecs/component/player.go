package component

type Player struct {
	Width     float64
	Height    float64
	VelocityY float64
	// Facing is 1 for right, -1 for left.
	Facing  int
	Jumping bool
}

var PlayerComponent = NewComponent[Player]()
