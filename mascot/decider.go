package mascot

// DecisionContext is what a Decider sees while the machine is deciding.
type DecisionContext struct {
	Position Point
	Rand     Rand
}

// Decider picks the next behavior when an idle period ends. Returning Idle
// keeps the mascot idle for another round.
type Decider interface {
	Decide(ctx DecisionContext) Behavior
}

// Guards is the default Decider: each guard rolls independently, in order,
// and the first hit wins. Later guards are not rolled once one fires.
type Guards []Guard

func (g Guards) Decide(ctx DecisionContext) Behavior {
	for _, guard := range g {
		if ctx.Rand.Float64() < guard.Weight {
			return guard.Behavior
		}
	}
	return Idle
}

// DeciderFunc adapts a function to the Decider interface.
type DeciderFunc func(ctx DecisionContext) Behavior

func (f DeciderFunc) Decide(ctx DecisionContext) Behavior { return f(ctx) }
