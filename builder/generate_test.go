package builder_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adjpower/bfs"
	"github.com/katalvlaran/adjpower/builder"
)

var allRules = []builder.Rule{
	builder.Default, builder.Symmetrical, builder.Antisymmetrical, builder.Asymmetrical,
}

// TestGenerate_Properties checks connectivity, the structural predicate and
// the edge count for every rule and strategy at the low, middle and high end
// of the admissible edge range.
func TestGenerate_Properties(t *testing.T) {
	strategies := []builder.Strategy{builder.Rejection, builder.SpanningFirst}
	for _, rule := range allRules {
		for _, strategy := range strategies {
			for n := 1; n <= 6; n++ {
				lo, hi := rule.MinEdges(n), rule.MaxEdges(n)
				for _, e := range []int{lo, (lo + hi) / 2, hi} {
					name := fmt.Sprintf("%v/%v/n=%d/e=%d", rule, strategy, n, e)
					t.Run(name, func(t *testing.T) {
						res, err := builder.Generate(n, e, rule,
							builder.WithSeed(int64(n*100+e)),
							builder.WithStrategy(strategy))
						require.NoError(t, err)
						require.Equal(t, n, res.Matrix.Rows())

						comps, err := bfs.Components(res.Matrix)
						require.NoError(t, err)
						assert.Equal(t, 1, comps)
						assert.Equal(t, 1, res.Components)
						assert.True(t, rule.Satisfies(res.Matrix), "predicate violated:\n%s", res.Matrix)
						assert.Equal(t, e, rule.Count(res.Matrix))
						assert.GreaterOrEqual(t, res.Attempts, 1)
					})
				}
			}
		}
	}
}

// TestGenerate_SpanningForward checks the arborescence keeps forward
// connectivity for directed rules in a single attempt.
func TestGenerate_SpanningForward(t *testing.T) {
	for _, rule := range allRules {
		res, err := builder.Generate(8, 7, rule,
			builder.WithSeed(3),
			builder.WithStrategy(builder.SpanningFirst),
			builder.WithConnectivity(bfs.Forward))
		require.NoError(t, err, "%v", rule)
		assert.Equal(t, 1, res.Attempts)

		comps, err := bfs.Components(res.Matrix, bfs.WithMode(bfs.Forward))
		require.NoError(t, err)
		assert.Equal(t, 1, comps, "%v", rule)

		reach, err := bfs.BFS(res.Matrix, 0, bfs.WithMode(bfs.Forward))
		require.NoError(t, err)
		assert.Len(t, reach.Order, 8)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := builder.Generate(6, 9, builder.Default, builder.WithSeed(11))
	require.NoError(t, err)
	b, err := builder.Generate(6, 9, builder.Default, builder.WithSeed(11))
	require.NoError(t, err)
	assert.True(t, a.Matrix.Equal(b.Matrix))
	assert.Equal(t, a.Attempts, b.Attempts)
}

func TestGenerate_Empty(t *testing.T) {
	res, err := builder.Generate(0, 0, builder.Default)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Matrix.Rows())
	assert.Equal(t, 0, res.Components)
	assert.Equal(t, 0, res.Attempts)
}

func TestGenerate_Errors(t *testing.T) {
	cases := []struct {
		name string
		n, e int
		rule builder.Rule
		opts []builder.BuilderOption
		want error
	}{
		{"negative size", -1, 0, builder.Default, nil, builder.ErrTooFewVertices},
		{"unknown rule", 3, 2, builder.Rule(7), nil, builder.ErrUnknownRule},
		{"too few edges", 4, 2, builder.Default, nil, builder.ErrEdgeCount},
		{"too many default", 3, 10, builder.Default, nil, builder.ErrEdgeCount},
		{"too many asymm", 3, 4, builder.Asymmetrical, nil, builder.ErrEdgeCount},
		{"negative edges", 1, -1, builder.Default, nil, builder.ErrEdgeCount},
		{"bad strategy", 3, 2, builder.Default,
			[]builder.BuilderOption{builder.WithSeed(1), builder.WithStrategy(builder.Strategy(5))},
			builder.ErrOptionViolation},
		{"no rng", 3, 2, builder.Default, nil, builder.ErrNeedRandSource},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.Generate(tc.n, tc.e, tc.rule, tc.opts...)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestGenerate_Exhaustion bounds the rejection loop. With n=2, e=1 under
// Default only the two off-diagonal cells connect, so a single attempt
// fails for roughly half of all seeds.
func TestGenerate_Exhaustion(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	failures := 0
	for seed := int64(1); seed <= 64; seed++ {
		res, err := builder.Generate(2, 1, builder.Default,
			builder.WithSeed(seed),
			builder.WithMaxAttempts(1),
			builder.WithLogger(logger))
		if errors.Is(err, builder.ErrNonTerminatingGeneration) {
			failures++
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, 1, res.Attempts)
	}
	assert.Positive(t, failures)
	assert.Contains(t, buf.String(), "generation exhausted attempts")
	assert.Contains(t, buf.String(), "generation attempt")
}
