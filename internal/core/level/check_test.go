package level

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exact(p, m []int) ([]int, error) {
	out := make([]int, len(p))
	for i := range p {
		out[i] = p[i] + m[i]
	}
	return out, nil
}

func offByOne(p, m []int) ([]int, error) {
	out, _ := exact(p, m)
	for i := range out {
		out[i]++
	}
	return out, nil
}

// scriptedSampler replays values in order and records every range it was asked for.
type scriptedSampler struct {
	values []int
	next   int
	ranges [][2]int
}

func (s *scriptedSampler) IntRange(lo, hi int) int {
	s.ranges = append(s.ranges, [2]int{lo, hi})
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

func TestCheckExactModelPassesForAnySeed(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		e, err := NewEuclidean(3, WithSampler(NewRandSampler(seed)))
		require.NoError(t, err)

		ok, err := e.Check(exact)
		require.NoError(t, err)
		assert.True(t, ok, "seed %d", seed)
	}
}

func TestCheckOffByOneFails(t *testing.T) {
	e := newLevel(t, 3)
	ok, err := e.Check(offByOne)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyReportsFirstMismatch(t *testing.T) {
	e := newLevel(t, 2)
	report, err := e.Verify(offByOne)
	require.NoError(t, err)

	assert.False(t, report.Passed)
	assert.Equal(t, 1, report.Trials)
	require.NotNil(t, report.Mismatch)
	assert.Equal(t, 0, report.Mismatch.Trial)

	want, _ := exact(report.Mismatch.Position, report.Mismatch.Movement)
	assert.Equal(t, want, report.Mismatch.Expected)
	assert.Contains(t, report.Mismatch.String(), "trial 0")
}

func TestVerifyRunsAllTrials(t *testing.T) {
	calls := 0
	e := newLevel(t, 3)
	report, err := e.Verify(func(p, m []int) ([]int, error) {
		calls++
		return exact(p, m)
	})
	require.NoError(t, err)
	assert.True(t, report.Passed)
	assert.Equal(t, DefaultTrials, calls)
	assert.Equal(t, DefaultTrials, report.Trials)
	assert.Nil(t, report.Mismatch)
	assert.NotEqual(t, uuid.Nil, report.RunID)
}

func TestVerifyStopsAtLaterMismatch(t *testing.T) {
	calls := 0
	e := newLevel(t, 3, WithTrials(10))
	report, err := e.Verify(func(p, m []int) ([]int, error) {
		calls++
		if calls == 4 {
			return offByOne(p, m)
		}
		return exact(p, m)
	})
	require.NoError(t, err)
	assert.False(t, report.Passed)
	assert.Equal(t, 4, calls)
	assert.Equal(t, 3, report.Mismatch.Trial)
}

func TestCheckSamplesConfiguredRange(t *testing.T) {
	s := &scriptedSampler{values: []int{7, -3}}
	e := newLevel(t, 2, WithSampler(s), WithTrials(5))

	var seen [][2][]int
	ok, err := e.Check(func(p, m []int) ([]int, error) {
		seen = append(seen, [2][]int{p, m})
		return exact(p, m)
	})
	require.NoError(t, err)
	assert.True(t, ok)

	require.Len(t, seen, 5)
	assert.Equal(t, []int{7, -3}, seen[0][0])
	assert.Equal(t, []int{7, -3}, seen[0][1])
	require.Len(t, s.ranges, 5*2*2)
	for _, r := range s.ranges {
		assert.Equal(t, [2]int{DefaultMin, DefaultMax}, r)
	}
}

func TestCheckLeavesLevelStateAlone(t *testing.T) {
	e := newLevel(t, 3)
	require.NoError(t, e.Move([]int{1, 2, 3}))
	e.SavePoint("p")

	_, err := e.Check(exact)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, e.Position())
	assert.Equal(t, []string{"p"}, e.Points())
}

func TestCheckModelMutatingInputsDoesNotAffectExpectation(t *testing.T) {
	e := newLevel(t, 3, WithTrials(10))
	ok, err := e.Check(func(p, m []int) ([]int, error) {
		out, _ := exact(p, m)
		p[0], m[0] = 0, 0
		return out, nil
	})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCheckPropagatesModelError(t *testing.T) {
	boom := errors.New("model exploded")
	e := newLevel(t, 3)

	ok, err := e.Check(func(p, m []int) ([]int, error) { return nil, boom })
	assert.False(t, ok)
	assert.ErrorIs(t, err, boom)
}

func TestCheckWrongLengthIsMismatch(t *testing.T) {
	e := newLevel(t, 3)
	ok, err := e.Check(func(p, m []int) ([]int, error) { return []int{0}, nil })
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCheckNilModel(t *testing.T) {
	e := newLevel(t, 3)
	_, err := e.Check(nil)
	assert.ErrorIs(t, err, ErrNilModel)
}

func TestRandSamplerIsDeterministicAndInRange(t *testing.T) {
	a := NewRandSampler(42)
	b := NewRandSampler(42)
	assert.Equal(t, uint64(42), a.Seed())
	for i := 0; i < 1000; i++ {
		va := a.IntRange(DefaultMin, DefaultMax)
		assert.Equal(t, va, b.IntRange(DefaultMin, DefaultMax))
		assert.GreaterOrEqual(t, va, DefaultMin)
		assert.Less(t, va, DefaultMax)
	}
}

func TestNewSeed(t *testing.T) {
	_, err := NewSeed()
	assert.NoError(t, err)
}

func TestReportSeedReplaysMismatch(t *testing.T) {
	seed, err := NewSeed()
	require.NoError(t, err)
	e := newLevel(t, 3, WithSampler(NewRandSampler(seed)))

	// The second run starts from a derived seed, not the construction seed.
	first, err := e.Verify(offByOne)
	require.NoError(t, err)
	assert.Equal(t, seed, first.Seed)

	second, err := e.Verify(offByOne)
	require.NoError(t, err)
	require.NotNil(t, second.Mismatch)

	for _, report := range []Report{first, second} {
		replay := newLevel(t, 3, WithSampler(NewRandSampler(report.Seed)))
		again, err := replay.Verify(offByOne)
		require.NoError(t, err)
		assert.Equal(t, report.Seed, again.Seed)
		assert.Equal(t, report.Mismatch, again.Mismatch)
	}
}

func TestReportSeedZeroForUnseededSampler(t *testing.T) {
	e := newLevel(t, 2, WithSampler(&scriptedSampler{values: []int{1}}), WithTrials(2))
	report, err := e.Verify(exact)
	require.NoError(t, err)
	assert.Zero(t, report.Seed)
}

func TestRandSamplerReseedRestartsSequence(t *testing.T) {
	s := NewRandSampler(8)
	a := s.IntRange(0, 1_000_000)
	s.IntRange(0, 1_000_000)

	s.Reseed(8)
	assert.Equal(t, uint64(8), s.Seed())
	assert.Equal(t, a, s.IntRange(0, 1_000_000))
}
