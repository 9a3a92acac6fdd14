// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaults verifies the deterministic default configuration.
func TestDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	assert.Nil(t, cfg.rng)
	assert.Equal(t, DefaultSpacing, cfg.spacing)
	assert.Equal(t, orb.Point{}, cfg.origin)
	require.NotNil(t, cfg.costFn)
	assert.InDelta(t, 5.0, cfg.costFn(orb.Point{0, 0}, orb.Point{3, 4}, nil), 1e-12)
}

// TestRNGOptions verifies WithSeed reproducibility and WithRand attachment.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	a := newBuilderConfig(WithSeed(42))
	b := newBuilderConfig(WithSeed(42))
	require.NotNil(t, a.rng)
	assert.Equal(t, a.rng.Int63(), b.rng.Int63())

	r := rand.New(rand.NewSource(1))
	c := newBuilderConfig(WithRand(r))
	assert.Same(t, r, c.rng)
}

// TestLastOptionWins verifies in-order application.
func TestLastOptionWins(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithSpacing(1), WithSpacing(3), WithConstantCost(2), WithOrigin(orb.Point{1, 1}))
	assert.Equal(t, 3.0, cfg.spacing)
	assert.Equal(t, orb.Point{1, 1}, cfg.origin)
	assert.Equal(t, 2.0, cfg.costFn(orb.Point{}, orb.Point{9, 9}, nil))
}

// TestCostFns covers the RNG-free fallbacks and ranges.
func TestCostFns(t *testing.T) {
	t.Parallel()

	from, to := orb.Point{0, 0}, orb.Point{0, 2}
	assert.Equal(t, 1.5, UniformCostFn(1.5, 4)(from, to, nil))
	assert.Equal(t, 3.0, ScaledDistanceCostFn(1.5, 2)(from, to, nil))

	rng := rand.New(rand.NewSource(3))
	u := UniformCostFn(1, 2)
	s := ScaledDistanceCostFn(1, 2)
	for i := 0; i < 100; i++ {
		v := u(from, to, rng)
		assert.GreaterOrEqual(t, v, 1.0)
		assert.Less(t, v, 2.0)
		d := s(from, to, rng)
		assert.GreaterOrEqual(t, d, 2.0)
		assert.Less(t, d, 4.0)
	}
}

// TestRingLayout verifies neighbor spacing of the ring layout.
func TestRingLayout(t *testing.T) {
	t.Parallel()

	pts := ringLayout(orb.Point{5, 5}, 6, 2)
	for i := range pts {
		j := (i + 1) % len(pts)
		dx, dy := pts[j][0]-pts[i][0], pts[j][1]-pts[i][1]
		assert.InDelta(t, 4.0, dx*dx+dy*dy, 1e-9)
	}
	assert.Equal(t, []orb.Point{{5, 5}}, ringLayout(orb.Point{5, 5}, 1, 2))
}
