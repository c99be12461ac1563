package system

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/rouzeris/catroom/mascot"
)

const decideDispatchScript = `
__result = decide(__engine)
`

// ScriptDecider is a mascot.Decider backed by a tengo script defining
// decide(engine). The script returns a behavior name; "" keeps the mascot
// idle. engine exposes rand(), position() and weights.
type ScriptDecider struct {
	mu       sync.Mutex
	name     string
	compiled *tengo.Compiled
	weights  *tengo.ImmutableMap
}

func NewScriptDecider(name string, src []byte, guards []mascot.Guard) (*ScriptDecider, error) {
	script := tengo.NewScript([]byte(string(src) + "\n" + decideDispatchScript))
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__result", "")
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("decider %s: compile: %w", name, err)
	}

	weights := make(map[string]tengo.Object, len(guards))
	for _, g := range guards {
		weights[g.Behavior.String()] = &tengo.Float{Value: g.Weight}
	}
	return &ScriptDecider{
		name:     name,
		compiled: compiled,
		weights:  &tengo.ImmutableMap{Value: weights},
	}, nil
}

// Decide runs the script. Script errors and unknown names fall back to Idle.
func (d *ScriptDecider) Decide(ctx mascot.DecisionContext) mascot.Behavior {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.compiled.Set("__engine", d.engine(ctx)); err != nil {
		log.Printf("decider: %s: %v", d.name, err)
		return mascot.Idle
	}
	if err := d.compiled.Run(); err != nil {
		log.Printf("decider: %s: run: %v", d.name, err)
		return mascot.Idle
	}

	name := strings.TrimSpace(objectAsString(d.compiled.Get("__result").Object()))
	if name == "" {
		return mascot.Idle
	}
	b, ok := mascot.ParseBehavior(name)
	if !ok {
		log.Printf("decider: %s: unknown behavior %q", d.name, name)
		return mascot.Idle
	}
	return b
}

func (d *ScriptDecider) engine(ctx mascot.DecisionContext) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["rand"] = &tengo.UserFunction{Name: "rand", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if ctx.Rand == nil {
			return &tengo.Float{Value: 0}, nil
		}
		return &tengo.Float{Value: ctx.Rand.Float64()}, nil
	}}

	values["position"] = &tengo.UserFunction{Name: "position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Array{Value: []tengo.Object{&tengo.Float{Value: ctx.Position.X}, &tengo.Float{Value: ctx.Position.Y}}}, nil
	}}

	values["weights"] = d.weights

	return &tengo.ImmutableMap{Value: values}
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	case *tengo.Undefined:
		return ""
	default:
		return strings.Trim(v.String(), "\"")
	}
}
