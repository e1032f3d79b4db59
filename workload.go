package tablemark

import (
	_ "embed"
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

//go:embed scripts/usertype_fullop.lua
var usertypeFullOpSource string

//go:embed scripts/table_fullop.lua
var tableFullOpSource string

//go:embed scripts/usertype_singleop.lua
var usertypeSingleOpSource string

//go:embed scripts/table_singleop.lua
var tableSingleOpSource string

// Workload is a named Lua procedure taking an iteration count and returning
// an accumulated numeric sum.
//
// Workloads come in pairs: a usertype variant operating on native-bound
// geometry values and a table variant performing the same per-field
// arithmetic on anonymous Lua tables. Both variants of a pair execute the
// same number of arithmetic operations and the same number of object
// constructions per iteration; the Constructions field records that shared
// count so tests can verify it.
type Workload struct {
	// Name identifies the workload in reports and filters.
	Name string

	// Source is the Lua script text defining the entry point.
	Source string

	// Entry is the name of the global function to invoke.
	Entry string

	// Bindings reports whether the geometry usertypes must be installed
	// before loading Source.
	Bindings bool

	// Constructions is the number of value constructions (userdata or
	// table literals) performed per loop iteration.
	Constructions int
}

// Workloads returns the fixed workload catalog: the full-operator pair using
// all four vector operations, and the single-operator pair restricted to
// addition. The pairs are kept as separate named cases rather than collapsed,
// since their per-iteration work differs.
func Workloads() []Workload {
	return []Workload{
		{Name: "usertypes-fullop", Source: usertypeFullOpSource, Entry: "do_work", Bindings: true, Constructions: 14},
		{Name: "tables-fullop", Source: tableFullOpSource, Entry: "do_work", Constructions: 14},
		{Name: "usertypes-singleop", Source: usertypeSingleOpSource, Entry: "do_work", Bindings: true, Constructions: 8},
		{Name: "tables-singleop", Source: tableSingleOpSource, Entry: "do_work", Constructions: 8},
	}
}

// Load prepares L to run the workload: it installs the geometry bindings when
// the workload needs them, evaluates the script source, and verifies that the
// entry point is defined. The returned Binding is nil for table workloads.
//
// A load failure (malformed source or missing entry point) invalidates the
// comparison and is returned as an error rather than skipped.
func (w Workload) Load(L *lua.LState) (*Binding, error) {
	var b *Binding
	if w.Bindings {
		b = &Binding{}
		b.Install(L)
	}
	if err := L.DoString(w.Source); err != nil {
		return nil, fmt.Errorf("load %s: %w", w.Name, err)
	}
	if _, ok := L.GetGlobal(w.Entry).(*lua.LFunction); !ok {
		return nil, fmt.Errorf("load %s: entry point %q is not a function", w.Name, w.Entry)
	}
	return b, nil
}

// Invoke calls the workload entry point with iteration count n and returns
// the accumulated sum. For fixed n the result is deterministic.
func (w Workload) Invoke(L *lua.LState, n int) (float64, error) {
	fn := L.GetGlobal(w.Entry)
	if err := L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, lua.LNumber(n)); err != nil {
		return 0, fmt.Errorf("invoke %s(%d): %w", w.Entry, n, err)
	}
	ret := L.Get(-1)
	L.Pop(1)
	num, ok := ret.(lua.LNumber)
	if !ok {
		return 0, fmt.Errorf("invoke %s(%d): non-numeric result of type %s", w.Entry, n, ret.Type())
	}
	return float64(num), nil
}
