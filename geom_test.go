package tablemark_test

import (
	"testing"

	"github.com/tablemark/tablemark"
)

func TestVec2Ops(t *testing.T) {
	a := tablemark.Vec2{X: 1, Y: 2}
	b := tablemark.Vec2{X: 3, Y: 4}

	if got := a.Add(b); got != (tablemark.Vec2{X: 4, Y: 6}) {
		t.Errorf("Add: got %+v", got)
	}
	if got := a.Sub(b); got != (tablemark.Vec2{X: -2, Y: -2}) {
		t.Errorf("Sub: got %+v", got)
	}
	if got := a.Scale(2); got != (tablemark.Vec2{X: 2, Y: 4}) {
		t.Errorf("Scale: got %+v", got)
	}
	if got := b.Div(2); got != (tablemark.Vec2{X: 1.5, Y: 2}) {
		t.Errorf("Div: got %+v", got)
	}

	// Operations return new values; the operands must be untouched.
	if a != (tablemark.Vec2{X: 1, Y: 2}) || b != (tablemark.Vec2{X: 3, Y: 4}) {
		t.Errorf("operands mutated: a=%+v b=%+v", a, b)
	}
}

func TestVec3Ops(t *testing.T) {
	a := tablemark.Vec3{X: 1, Y: 2, Z: 3}
	b := tablemark.Vec3{X: 4, Y: 5, Z: 6}

	if got := a.Add(b); got != (tablemark.Vec3{X: 5, Y: 7, Z: 9}) {
		t.Errorf("Add: got %+v", got)
	}
	if got := a.Sub(b); got != (tablemark.Vec3{X: -3, Y: -3, Z: -3}) {
		t.Errorf("Sub: got %+v", got)
	}
	if got := a.Scale(2); got != (tablemark.Vec3{X: 2, Y: 4, Z: 6}) {
		t.Errorf("Scale: got %+v", got)
	}
	if got := b.Div(2); got != (tablemark.Vec3{X: 2, Y: 2.5, Z: 3}) {
		t.Errorf("Div: got %+v", got)
	}
	if a != (tablemark.Vec3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("operand mutated: %+v", a)
	}
}

func TestRectArea(t *testing.T) {
	r := tablemark.RectF{X: 0.5, Y: 0.3, W: 100, H: 50}
	if got := r.Area(); got != 5000 {
		t.Errorf("Area: got %v, want 5000", got)
	}
}

func TestPointSumSquares(t *testing.T) {
	p := tablemark.Point{X: 1, Y: 2}
	if got := p.SumSquares(); got != 5 {
		t.Errorf("SumSquares: got %d, want 5", got)
	}
}
