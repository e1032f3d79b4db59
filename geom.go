package tablemark

// Vec2 is a two-component vector.
//
// All arithmetic methods return a new value; receivers are never mutated.
// Fields are float64 so host-side arithmetic matches Lua number arithmetic
// exactly, which the workload equivalence tests rely on.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Div returns v divided by s. Division by zero follows IEEE 754 semantics.
func (v Vec2) Div(s float64) Vec2 { return Vec2{v.X / s, v.Y / s} }

// Vec3 is a three-component vector with the same operation set as Vec2.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Div returns v divided by s.
func (v Vec3) Div(s float64) Vec3 { return Vec3{v.X / s, v.Y / s, v.Z / s} }

// RectF is an axis-aligned rectangle: origin plus extent.
// It carries no operators, only field reads.
type RectF struct {
	X, Y, W, H float64
}

// Area returns W * H.
func (r RectF) Area() float64 { return r.W * r.H }

// Point is an integer point. Field reads only.
type Point struct {
	X, Y int
}

// SumSquares returns X*X + Y*Y.
func (p Point) SumSquares() int { return p.X*p.X + p.Y*p.Y }
