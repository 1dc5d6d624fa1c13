package component

type Camera struct {
	LeadOffset   float64
	ScrollOffset float64
}

var CameraComponent = NewComponent[Camera]()
