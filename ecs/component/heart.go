package component

// Heart is a collectible memory. Released and Collected only ever go from
// false to true within a run.
type Heart struct {
	ID        int
	Width     float64
	Height    float64
	Released  bool
	Collected bool
	// Angle drives the pulse animation.
	Angle float64
}

var HeartComponent = NewComponent[Heart]()

// QuestionBlock is the tile that releases the heart sharing its entity.
type QuestionBlock struct {
	Index int
	X     float64
	Top   float64
	Size  float64
	Hit   bool
}

var QuestionBlockComponent = NewComponent[QuestionBlock]()
