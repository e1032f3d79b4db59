package tablemark

import (
	lua "github.com/yuin/gopher-lua"
)

// Lua global names for the geometry constructors.
const (
	vec2TypeName  = "Vector2"
	vec3TypeName  = "Vector3"
	rectTypeName  = "RectF"
	pointTypeName = "Point"
)

// Binding installs the geometry usertypes into a Lua state and counts every
// userdata construction it performs, including the results of operator
// metamethods. The counter lets tests verify that a workload's allocation
// count is an exact linear function of its iteration count, independent of
// timing.
//
// A Binding belongs to a single state and, like the state itself, is not safe
// for concurrent use.
type Binding struct {
	constructions int64
}

// Constructions returns the number of userdata values built so far.
func (b *Binding) Constructions() int64 { return b.constructions }

// ResetConstructions zeroes the construction counter.
func (b *Binding) ResetConstructions() { b.constructions = 0 }

// Install registers the four geometry usertypes with L: a global constructor
// per type, __index field access, and __add/__sub/__mul/__div on Vector2 and
// Vector3. Operator metamethods always build a new userdata; operands are
// never mutated. RectF and Point get constructor and field access only.
func (b *Binding) Install(L *lua.LState) {
	mt := L.NewTypeMetatable(vec2TypeName)
	L.SetField(mt, "__index", L.NewFunction(vec2Index))
	L.SetField(mt, "__add", L.NewFunction(b.vec2Add))
	L.SetField(mt, "__sub", L.NewFunction(b.vec2Sub))
	L.SetField(mt, "__mul", L.NewFunction(b.vec2Mul))
	L.SetField(mt, "__div", L.NewFunction(b.vec2Div))
	L.SetGlobal(vec2TypeName, L.NewFunction(b.vec2New))

	mt = L.NewTypeMetatable(vec3TypeName)
	L.SetField(mt, "__index", L.NewFunction(vec3Index))
	L.SetField(mt, "__add", L.NewFunction(b.vec3Add))
	L.SetField(mt, "__sub", L.NewFunction(b.vec3Sub))
	L.SetField(mt, "__mul", L.NewFunction(b.vec3Mul))
	L.SetField(mt, "__div", L.NewFunction(b.vec3Div))
	L.SetGlobal(vec3TypeName, L.NewFunction(b.vec3New))

	mt = L.NewTypeMetatable(rectTypeName)
	L.SetField(mt, "__index", L.NewFunction(rectIndex))
	L.SetGlobal(rectTypeName, L.NewFunction(b.rectNew))

	mt = L.NewTypeMetatable(pointTypeName)
	L.SetField(mt, "__index", L.NewFunction(pointIndex))
	L.SetGlobal(pointTypeName, L.NewFunction(b.pointNew))
}

// push wraps v in a userdata carrying the named metatable and leaves it on
// the stack.
func (b *Binding) push(L *lua.LState, typeName string, v any) int {
	b.constructions++
	ud := L.NewUserData()
	ud.Value = v
	L.SetMetatable(ud, L.GetTypeMetatable(typeName))
	L.Push(ud)
	return 1
}

// -----------------------------------------------------------------------------
// Vector2
// -----------------------------------------------------------------------------

func checkVec2(L *lua.LState, n int) Vec2 {
	ud := L.CheckUserData(n)
	if v, ok := ud.Value.(Vec2); ok {
		return v
	}
	L.ArgError(n, vec2TypeName+" expected")
	return Vec2{}
}

func (b *Binding) vec2New(L *lua.LState) int {
	v := Vec2{
		X: float64(L.CheckNumber(1)),
		Y: float64(L.CheckNumber(2)),
	}
	return b.push(L, vec2TypeName, v)
}

func vec2Index(L *lua.LState) int {
	v := checkVec2(L, 1)
	switch L.CheckString(2) {
	case "x":
		L.Push(lua.LNumber(v.X))
	case "y":
		L.Push(lua.LNumber(v.Y))
	default:
		L.Push(lua.LNil)
	}
	return 1
}

func (b *Binding) vec2Add(L *lua.LState) int {
	return b.push(L, vec2TypeName, checkVec2(L, 1).Add(checkVec2(L, 2)))
}

func (b *Binding) vec2Sub(L *lua.LState) int {
	return b.push(L, vec2TypeName, checkVec2(L, 1).Sub(checkVec2(L, 2)))
}

// vec2Mul accepts the scalar on either side: Lua dispatches "v * 2" and
// "2 * v" to the same metamethod with the operands in source order.
func (b *Binding) vec2Mul(L *lua.LState) int {
	if ud, ok := L.Get(1).(*lua.LUserData); ok {
		if v, ok := ud.Value.(Vec2); ok {
			return b.push(L, vec2TypeName, v.Scale(float64(L.CheckNumber(2))))
		}
	}
	v := checkVec2(L, 2)
	return b.push(L, vec2TypeName, v.Scale(float64(L.CheckNumber(1))))
}

func (b *Binding) vec2Div(L *lua.LState) int {
	v := checkVec2(L, 1)
	return b.push(L, vec2TypeName, v.Div(float64(L.CheckNumber(2))))
}

// -----------------------------------------------------------------------------
// Vector3
// -----------------------------------------------------------------------------

func checkVec3(L *lua.LState, n int) Vec3 {
	ud := L.CheckUserData(n)
	if v, ok := ud.Value.(Vec3); ok {
		return v
	}
	L.ArgError(n, vec3TypeName+" expected")
	return Vec3{}
}

func (b *Binding) vec3New(L *lua.LState) int {
	v := Vec3{
		X: float64(L.CheckNumber(1)),
		Y: float64(L.CheckNumber(2)),
		Z: float64(L.CheckNumber(3)),
	}
	return b.push(L, vec3TypeName, v)
}

func vec3Index(L *lua.LState) int {
	v := checkVec3(L, 1)
	switch L.CheckString(2) {
	case "x":
		L.Push(lua.LNumber(v.X))
	case "y":
		L.Push(lua.LNumber(v.Y))
	case "z":
		L.Push(lua.LNumber(v.Z))
	default:
		L.Push(lua.LNil)
	}
	return 1
}

func (b *Binding) vec3Add(L *lua.LState) int {
	return b.push(L, vec3TypeName, checkVec3(L, 1).Add(checkVec3(L, 2)))
}

func (b *Binding) vec3Sub(L *lua.LState) int {
	return b.push(L, vec3TypeName, checkVec3(L, 1).Sub(checkVec3(L, 2)))
}

func (b *Binding) vec3Mul(L *lua.LState) int {
	if ud, ok := L.Get(1).(*lua.LUserData); ok {
		if v, ok := ud.Value.(Vec3); ok {
			return b.push(L, vec3TypeName, v.Scale(float64(L.CheckNumber(2))))
		}
	}
	v := checkVec3(L, 2)
	return b.push(L, vec3TypeName, v.Scale(float64(L.CheckNumber(1))))
}

func (b *Binding) vec3Div(L *lua.LState) int {
	v := checkVec3(L, 1)
	return b.push(L, vec3TypeName, v.Div(float64(L.CheckNumber(2))))
}

// -----------------------------------------------------------------------------
// RectF
// -----------------------------------------------------------------------------

func checkRect(L *lua.LState, n int) RectF {
	ud := L.CheckUserData(n)
	if r, ok := ud.Value.(RectF); ok {
		return r
	}
	L.ArgError(n, rectTypeName+" expected")
	return RectF{}
}

func (b *Binding) rectNew(L *lua.LState) int {
	r := RectF{
		X: float64(L.CheckNumber(1)),
		Y: float64(L.CheckNumber(2)),
		W: float64(L.CheckNumber(3)),
		H: float64(L.CheckNumber(4)),
	}
	return b.push(L, rectTypeName, r)
}

func rectIndex(L *lua.LState) int {
	r := checkRect(L, 1)
	switch L.CheckString(2) {
	case "x":
		L.Push(lua.LNumber(r.X))
	case "y":
		L.Push(lua.LNumber(r.Y))
	case "w":
		L.Push(lua.LNumber(r.W))
	case "h":
		L.Push(lua.LNumber(r.H))
	default:
		L.Push(lua.LNil)
	}
	return 1
}

// -----------------------------------------------------------------------------
// Point
// -----------------------------------------------------------------------------

func checkPoint(L *lua.LState, n int) Point {
	ud := L.CheckUserData(n)
	if p, ok := ud.Value.(Point); ok {
		return p
	}
	L.ArgError(n, pointTypeName+" expected")
	return Point{}
}

func (b *Binding) pointNew(L *lua.LState) int {
	p := Point{
		X: L.CheckInt(1),
		Y: L.CheckInt(2),
	}
	return b.push(L, pointTypeName, p)
}

func pointIndex(L *lua.LState) int {
	p := checkPoint(L, 1)
	switch L.CheckString(2) {
	case "x":
		L.Push(lua.LNumber(p.X))
	case "y":
		L.Push(lua.LNumber(p.Y))
	default:
		L.Push(lua.LNil)
	}
	return 1
}
