package session

import (
	"fmt"

	"github.com/zeusync/levelcheck/internal/core/level"
	"github.com/zeusync/levelcheck/internal/core/models"
	"github.com/zeusync/levelcheck/internal/core/observability/log"
)

// Result is the outcome of one step. Only the fields relevant to the op are set.
type Result struct {
	Step     int
	Op       Op
	Position []int
	Vector   []int
	Angle    float64
	Distance float64
	Passed   bool
	Report   *level.Report
	Text     string
}

// LevelFactory builds the level a script runs against.
type LevelFactory func(dim int) (level.Level, error)

type Runner struct {
	newLevel   LevelFactory
	models     *models.Registry
	logger     log.Log
	defaultDim int
}

// NewRunner returns a runner resolving check models from reg. Scripts without
// a dim run at defaultDim.
func NewRunner(factory LevelFactory, reg *models.Registry, logger log.Log, defaultDim int) *Runner {
	if logger == nil {
		logger = log.NewNop()
	}
	return &Runner{
		newLevel:   factory,
		models:     reg,
		logger:     logger,
		defaultDim: defaultDim,
	}
}

// EuclideanFactory builds Euclidean levels with opts applied.
func EuclideanFactory(opts ...level.Option) LevelFactory {
	return func(dim int) (level.Level, error) {
		return level.NewEuclidean(dim, opts...)
	}
}

// Run executes the script in order. On the first failing step it returns the
// results gathered so far together with the error.
func (r *Runner) Run(script *Script) ([]Result, error) {
	dim := script.Dim
	if dim == 0 {
		dim = r.defaultDim
	}
	lvl, err := r.newLevel(dim)
	if err != nil {
		return nil, err
	}

	logger := r.logger.With(log.String("script", script.Name))
	results := make([]Result, 0, len(script.Steps))
	for i, step := range script.Steps {
		res, err := r.exec(lvl, step)
		if err != nil {
			logger.Warn("step failed", log.Int("step", i), log.String("op", string(step.Op)), log.Error(err))
			return results, fmt.Errorf("step %d (%s): %w", i, step.Op, err)
		}
		res.Step = i
		res.Op = step.Op
		logger.Debug("step done", log.Int("step", i), log.String("op", string(step.Op)))
		results = append(results, res)
	}
	return results, nil
}

func (r *Runner) exec(lvl level.Level, step Step) (Result, error) {
	if err := step.Validate(); err != nil {
		return Result{}, err
	}

	var res Result
	switch step.Op {
	case OpMove:
		if err := lvl.Move(step.Vector); err != nil {
			return res, err
		}
		res.Position = lvl.Position()
	case OpSave:
		lvl.SavePoint(step.Name)
		res.Position = lvl.Position()
	case OpPosition:
		res.Position = lvl.Position()
	case OpAngle:
		angle, err := lvl.MeasureAngle(step.Left, step.Right)
		if err != nil {
			return res, err
		}
		res.Angle = angle
	case OpLength:
		v, err := lvl.MeasureLength(step.Name)
		if err != nil {
			return res, err
		}
		res.Vector = v
	case OpDistance:
		d, err := lvl.Distance(step.Name)
		if err != nil {
			return res, err
		}
		res.Distance = d
	case OpCheck:
		model, err := r.models.Get(step.Model)
		if err != nil {
			return res, err
		}
		report, err := lvl.Verify(model)
		if err != nil {
			return res, err
		}
		res.Passed = report.Passed
		res.Report = &report
		if report.Mismatch != nil {
			res.Text = report.Mismatch.String()
		}
	case OpDescribe:
		res.Text = lvl.Description()
	}
	return res, nil
}
