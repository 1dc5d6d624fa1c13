package component

// Bird is background decoration. Transform.X is the world anchor before
// parallax; Transform.Y is recomputed each tick from BaseY and the bob.
type Bird struct {
	BaseY     float64
	Drift     float64
	FlapSpeed float64
	FlapPhase float64
	BobAmp    float64
	BobPhase  float64
	Size      float64
}

var BirdComponent = NewComponent[Bird]()
