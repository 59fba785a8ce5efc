package fast

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ib-77/branch/pkg/branch"
)

func TestRun(t *testing.T) {
	t.Parallel()

	calls := 0
	Of(1 == 1).Run(func() { calls++ })
	assert.Equal(t, 1, calls)

	Of(1 == 2).Run(func() { calls++ })
	assert.Equal(t, 1, calls)
}

func TestThrow_ReturnsSuppliedErrorUnchanged(t *testing.T) {
	t.Parallel()

	x := errors.New("x")
	err := Of(true).Throw(func() error { return x })
	require.Error(t, err)
	assert.Same(t, x, err)
	assert.EqualError(t, err, "x")
}

func TestThrow_ClosedGateSkipsSupplier(t *testing.T) {
	t.Parallel()

	err := Of(false).Throw(func() error {
		t.Fatal("supplier must not run")
		return nil
	})
	assert.NoError(t, err)
}

func TestSelect_ElseGet(t *testing.T) {
	t.Parallel()

	var trueCalls, falseCalls int
	onTrue := func() string {
		trueCalls++
		return "yes"
	}
	onFalse := func() string {
		falseCalls++
		return "no"
	}

	sel := Select(Of(true), onTrue)
	assert.Equal(t, 0, trueCalls, "Select must not evaluate the producer")
	assert.Equal(t, "yes", sel.ElseGet(onFalse))
	assert.Equal(t, 1, trueCalls)
	assert.Equal(t, 0, falseCalls)

	assert.Equal(t, "no", Select(Of(false), onTrue).ElseGet(onFalse))
	assert.Equal(t, 1, trueCalls)
	assert.Equal(t, 1, falseCalls)
}

func TestElseGet_OpenGateWithoutProducerPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, branch.ErrNoTrueBranch)
		assert.True(t, branch.IsPreconditionError(err))
	}()

	Select[int](Of(true), nil).ElseGet(func() int { return 0 })
}

func TestElseGet_ClosedGateWithoutProducer(t *testing.T) {
	t.Parallel()

	got := Select[int](Of(false), nil).ElseGet(func() int { return 7 })
	assert.Equal(t, 7, got)

	var zero Selection[int]
	assert.Equal(t, 8, zero.ElseGet(func() int { return 8 }))
}

func TestIfElse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cond bool
		want string
	}{
		{"true", true, "adult"},
		{"false", false, "minor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			evaluated := 0
			got := IfElse(tt.cond,
				func() string { evaluated++; return "adult" },
				func() string { evaluated++; return "minor" })
			assert.Equal(t, tt.want, got)
			assert.Equal(t, 1, evaluated)
		})
	}
}

func TestCondition_ReadOnly(t *testing.T) {
	t.Parallel()

	g := Of(true)
	for i := 0; i < 3; i++ {
		assert.True(t, g.Condition())
	}
	assert.False(t, Gate{}.Condition())
}

func TestGate_LogsWhenOpen(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core)

	Of(false, branch.WithLogger(log)).Run(func() {})
	assert.Equal(t, 0, logs.Len())

	Of(true, branch.WithLogger(log)).Run(func() {})
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "gate open, running effect", logs.All()[0].Message)
	assert.Contains(t, logs.All()[0].ContextMap(), "branch_id")
}
