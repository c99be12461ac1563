package mascot

// seqRand replays values in order, repeating the last one forever.
type seqRand struct {
	values []float64
	i      int
}

func (r *seqRand) Float64() float64 {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[r.i]
	if r.i < len(r.values)-1 {
		r.i++
	}
	return v
}

type constRand float64

func (r constRand) Float64() float64 { return float64(r) }

// forcedConfig keeps the mascot idle for a long time and makes the first
// guard for want fire on every decision.
func forcedConfig(want Behavior) Config {
	cfg := DefaultConfig()
	cfg.IdleDuration = Range{Min: 100000, Max: 100000}
	guards := make([]Guard, 0, len(cfg.Guards))
	for _, g := range cfg.Guards {
		g.Weight = 0
		if g.Behavior == want {
			g.Weight = 1
		}
		guards = append(guards, g)
	}
	cfg.Guards = guards
	return cfg
}

func mustMachine(t interface{ Fatalf(string, ...any) }, cfg Config, opts ...MachineOption) *Machine {
	m, err := NewMachine(cfg, DefaultCatalog(), opts...)
	if err != nil {
		t.Fatalf("NewMachine: %v", err)
	}
	return m
}
