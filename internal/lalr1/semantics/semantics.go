// Package semantics holds the mapping from a semantic rule id to the
// callback that implements it. It is a thin, hash-indexed
// registry rather than a dynamic-dispatch hierarchy: the hot path of the
// driver touches exactly one map lookup per reduction.
package semantics

import "github.com/t-weber/lalr1/internal/lalr1/types"

// Args is the ordered list of right-hand-side symbols passed to a semantic
// callback, oldest (leftmost) first.
type Args []types.Symbol

// Func is the minimal, non-partial callback signature: called
// exactly once per reduction, with the full set of matched symbols.
type Func func(args Args) types.Value

// PartialFunc is the full callback signature: called on every
// partial-rule invocation with finished=false, and once more with
// finished=true on the owning reduction. retval threads the accumulator
// across calls for the same rule occurrence.
type PartialFunc func(args Args, finished bool, retval types.Value) types.Value

// Registry maps semantic ids to callbacks. The zero value is not usable;
// construct one with New.
type Registry struct {
	funcs map[types.SemanticID]PartialFunc
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{funcs: map[types.SemanticID]PartialFunc{}}
}

// Bind installs a full, partial-capable callback for id, replacing any
// previous binding.
func (r *Registry) Bind(id types.SemanticID, fn PartialFunc) {
	r.funcs[id] = fn
}

// BindFunc installs a minimal callback for id. It is invoked only at the
// final, finished=true call; partial calls pass the accumulator through
// untouched, as is required when a grammar's actions depend only on
// final-reduction arguments.
func (r *Registry) BindFunc(id types.SemanticID, fn Func) {
	r.funcs[id] = func(args Args, finished bool, retval types.Value) types.Value {
		if !finished {
			return retval
		}
		return fn(args)
	}
}

// Lookup returns the callback bound to id, if any.
func (r *Registry) Lookup(id types.SemanticID) (PartialFunc, bool) {
	fn, ok := r.funcs[id]
	return fn, ok
}

// Clear removes all bindings.
func (r *Registry) Clear() {
	r.funcs = map[types.SemanticID]PartialFunc{}
}

// Len reports the number of bound semantic ids.
func (r *Registry) Len() int {
	return len(r.funcs)
}
