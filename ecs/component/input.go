package component

// Input stores per-frame intent. Move flags are level-held; JumpPressed is an
// edge that is consumed once per frame.
type Input struct {
	MoveLeft    bool
	MoveRight   bool
	JumpPressed bool
}

var InputComponent = NewComponent[Input]()
