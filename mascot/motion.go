package mascot

import "github.com/jakecoffman/cp"

// Direction is the facing chosen for a walk.
type Direction struct {
	Animation   string
	FacingRight bool
}

// WalkDirection picks the walk animation for a walk from x to targetX.
// Equal coordinates face left.
func WalkDirection(x, targetX float64) Direction {
	return walkDirection(x, targetX, AnimWalkRight, AnimWalkLeft)
}

func walkDirection(x, targetX float64, right, left string) Direction {
	if targetX > x {
		return Direction{Animation: right, FacingRight: true}
	}
	return Direction{Animation: left, FacingRight: false}
}

// Integrator moves a position toward a target at a fixed speed per tick.
// It keeps no state between calls.
type Integrator struct {
	Speed     float64
	Tolerance float64
}

// Step advances pos one tick toward target. When the remaining distance is
// inside the tolerance, or a full step would reach the target, it snaps to
// target and reports arrival.
func (in Integrator) Step(pos, target Point) (Point, bool) {
	p := cp.Vector{X: pos.X, Y: pos.Y}
	t := cp.Vector{X: target.X, Y: target.Y}

	delta := t.Sub(p)
	dist := delta.Length()
	if dist < in.Tolerance || dist <= in.Speed {
		return target, true
	}

	next := p.Add(delta.Mult(in.Speed / dist))
	return Point{X: next.X, Y: next.Y}, false
}
