package component

import "github.com/jakecoffman/cp"

type Particle struct {
	Pos     cp.Vector
	Vel     cp.Vector
	Life    int
	MaxLife int
	Size    float64
	Hue     float64
	Bright  float64
}

var ParticleComponent = NewComponent[Particle]()
