package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hamroute/builder"
	"github.com/katalvlaran/hamroute/matrix"
	"github.com/katalvlaran/hamroute/route"
)

func TestComplete_Shape(t *testing.T) {
	conns, err := builder.Complete(4, builder.WithIDScheme(builder.SymbolIDFn))
	require.NoError(t, err)
	require.Len(t, conns, 6)
	assert.Equal(t, route.Connection{From: "A", To: "B", Cost: builder.DefaultEdgeWeight}, conns[0])
	assert.Equal(t, route.Connection{From: "C", To: "D", Cost: builder.DefaultEdgeWeight}, conns[5])

	net, err := route.Build(conns)
	require.NoError(t, err)
	assert.NoError(t, net.Validate())
}

func TestComplete_Deterministic(t *testing.T) {
	a, err := builder.Complete(6, builder.WithSeed(9), builder.WithUniformWeight(1, 50))
	require.NoError(t, err)
	b, err := builder.Complete(6, builder.WithRand(rand.New(rand.NewSource(9))), builder.WithUniformWeight(1, 50))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestPath_Incomplete(t *testing.T) {
	conns, err := builder.Path(4, builder.WithConstantWeight(3))
	require.NoError(t, err)
	require.Len(t, conns, 3)

	net, err := route.Build(conns)
	require.NoError(t, err)
	assert.ErrorIs(t, net.Validate(), matrix.ErrIncompleteGraph)

	two, err := builder.Path(2)
	require.NoError(t, err)
	net, err = route.Build(two)
	require.NoError(t, err)
	assert.NoError(t, net.Validate())
}

func TestConstructors_Errors(t *testing.T) {
	_, err := builder.Complete(1)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.Path(0)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	same := func(int) string { return "X" }
	_, err = builder.Complete(3, builder.WithIDScheme(same))
	assert.ErrorIs(t, err, builder.ErrDuplicateID)

	zero := func(*rand.Rand) matrix.Cost { return 0 }
	_, err = builder.Complete(3, builder.WithWeightFn(zero))
	assert.ErrorIs(t, err, builder.ErrBadWeight)
}

func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
}
