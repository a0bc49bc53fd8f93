package semantics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/t-weber/lalr1/internal/lalr1/types"
)

func TestBindFuncIgnoresPartialCalls(t *testing.T) {
	reg := New()
	calls := 0
	reg.BindFunc(1, func(args Args) types.Value {
		calls++
		return 7
	})

	fn, ok := reg.Lookup(1)
	assert.True(t, ok)

	assert.Equal(t, types.Value(5), fn(nil, false, 5), "partial calls pass the accumulator through")
	assert.Equal(t, 0, calls)

	assert.Equal(t, types.Value(7), fn(nil, true, 5))
	assert.Equal(t, 1, calls)
}

func TestBindReplacesPreviousBinding(t *testing.T) {
	reg := New()
	reg.Bind(1, func(args Args, finished bool, retval types.Value) types.Value { return 1 })
	reg.Bind(1, func(args Args, finished bool, retval types.Value) types.Value { return 2 })

	assert.Equal(t, 1, reg.Len())
	fn, _ := reg.Lookup(1)
	assert.Equal(t, types.Value(2), fn(nil, true, 0))
}

func TestClearRemovesAllBindings(t *testing.T) {
	reg := New()
	reg.Bind(1, func(args Args, finished bool, retval types.Value) types.Value { return 1 })
	reg.Bind(2, func(args Args, finished bool, retval types.Value) types.Value { return 2 })

	reg.Clear()

	assert.Equal(t, 0, reg.Len())
	_, ok := reg.Lookup(1)
	assert.False(t, ok)
}
