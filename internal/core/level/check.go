package level

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zeusync/levelcheck/internal/core/geometry"
	"github.com/zeusync/levelcheck/internal/core/observability/log"
)

// Report describes one conformance run.
type Report struct {
	RunID uuid.UUID
	// Seed reproduces the run on a fresh level built with the same trials
	// and range. Zero when the sampler is not a SeededSampler.
	Seed     uint64
	Dim      int
	Trials   int // trials executed, including a failing one
	Passed   bool
	Mismatch *Mismatch
	Elapsed  time.Duration
}

// Mismatch records the first trial whose prediction differed from ground truth.
type Mismatch struct {
	Trial    int
	Position []int
	Movement []int
	Expected []int
	Got      []int
}

func (m *Mismatch) String() string {
	return fmt.Sprintf("trial %d: model(%v, %v) = %v, want %v", m.Trial, m.Position, m.Movement, m.Got, m.Expected)
}

// Check runs the conformance trials and reports whether every prediction was
// exact. Errors returned by the model are passed through, not treated as a
// failed trial.
func (e *Euclidean) Check(model Model) (bool, error) {
	report, err := e.Verify(model)
	if err != nil {
		return false, err
	}
	return report.Passed, nil
}

// Verify samples a random position and movement per trial, independent of the
// level's own position, and compares model(position, movement) to the exact
// vector sum. It stops at the first mismatch.
func (e *Euclidean) Verify(model Model) (Report, error) {
	if model == nil {
		return Report{}, ErrNilModel
	}

	report := Report{RunID: uuid.New(), Dim: e.dim}
	if s, ok := e.sampler.(SeededSampler); ok {
		if e.runs > 0 {
			s.Reseed(s.Uint64())
		}
		report.Seed = s.Seed()
	}
	e.runs++

	logger := e.logger.With(log.String("run_id", report.RunID.String()), log.Uint64("seed", report.Seed))
	logger.Debug("check started", log.Int("trials", e.trials), log.Int("min", e.min), log.Int("max", e.max))

	start := time.Now()

	for trial := 0; trial < e.trials; trial++ {
		report.Trials = trial + 1

		position := e.sample()
		movement := e.sample()
		expected, err := geometry.Add(position, movement)
		if err != nil {
			return report, err
		}

		got, err := model(append([]int(nil), position...), append([]int(nil), movement...))
		if err != nil {
			logger.Warn("model failed", log.Int("trial", trial), log.Error(err))
			return report, fmt.Errorf("model failed on trial %d: %w", trial, err)
		}

		if !geometry.Equal(expected, got) {
			report.Mismatch = &Mismatch{
				Trial:    trial,
				Position: position,
				Movement: movement,
				Expected: expected,
				Got:      got,
			}
			logger.Info("model mismatch",
				log.Int("trial", trial),
				log.Ints("position", position),
				log.Ints("movement", movement),
				log.Ints("expected", expected),
				log.Ints("got", got),
			)
			report.Elapsed = time.Since(start)
			return report, nil
		}
	}

	report.Passed = true
	report.Elapsed = time.Since(start)
	logger.Debug("check passed", log.Int("trials", report.Trials), log.Duration("elapsed", report.Elapsed))
	return report, nil
}

func (e *Euclidean) sample() []int {
	v := make([]int, e.dim)
	for i := range v {
		v[i] = e.sampler.IntRange(e.min, e.max)
	}
	return v
}
