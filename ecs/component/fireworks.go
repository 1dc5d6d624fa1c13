package component

type Fireworks struct {
	Active bool
	Timer  int
	Bursts int
}

var FireworksComponent = NewComponent[Fireworks]()
