package component

// Input stores per-frame input state. One entity carries it; the host fills
// it in before systems run.
type Input struct {
	MoveX float64
	MoveY float64

	PointerX       float64
	PointerY       float64
	PointerPressed bool

	Decide bool
}

var InputComponent = NewComponent[Input]()
