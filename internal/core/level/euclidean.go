package level

import (
	"fmt"
	"sort"

	"github.com/zeusync/levelcheck/internal/core/geometry"
	"github.com/zeusync/levelcheck/internal/core/observability/log"
)

const (
	DefaultTrials = 100
	DefaultMin    = -1000
	DefaultMax    = 1000
)

var _ Level = (*Euclidean)(nil)

// Euclidean is a dim-dimensional integer lattice with vector-addition movement.
// It is not safe for concurrent use.
type Euclidean struct {
	dim      int
	position []int
	points   map[string][]int

	sampler  Sampler
	logger   log.Log
	trials   int
	min, max int
	runs     int
}

type Option func(*Euclidean)

func WithSampler(s Sampler) Option {
	return func(e *Euclidean) { e.sampler = s }
}

func WithLogger(l log.Log) Option {
	return func(e *Euclidean) { e.logger = l }
}

func WithTrials(n int) Option {
	return func(e *Euclidean) { e.trials = n }
}

// WithRange sets the half-open interval [lo, hi) check samples from.
func WithRange(lo, hi int) Option {
	return func(e *Euclidean) { e.min, e.max = lo, hi }
}

// NewEuclidean returns a level positioned at the origin with no saved points.
// Without WithSampler the check draws from a freshly seeded RandSampler.
func NewEuclidean(dim int, opts ...Option) (*Euclidean, error) {
	if dim < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDimension, dim)
	}
	e := &Euclidean{
		dim:      dim,
		position: make([]int, dim),
		points:   make(map[string][]int),
		trials:   DefaultTrials,
		min:      DefaultMin,
		max:      DefaultMax,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.trials < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTrials, e.trials)
	}
	if e.min >= e.max || e.max-e.min <= 0 {
		return nil, fmt.Errorf("%w: [%d, %d)", ErrInvalidRange, e.min, e.max)
	}
	if e.logger == nil {
		e.logger = log.NewNop()
	}
	if e.sampler == nil {
		seed, err := NewSeed()
		if err != nil {
			return nil, err
		}
		e.sampler = NewRandSampler(seed)
	}
	e.logger = e.logger.With(log.String("level", "euclidean"), log.Int("dim", dim))
	return e, nil
}

func (e *Euclidean) Description() string {
	return fmt.Sprintf(`This level takes %[1]d values as a movement vector and expects the model to
take a %[1]d sized list position and a %[1]d sized list movement vector.
It should return a %[1]d sized list with the predicted new position.

So the model should have type model(position []int, movement []int) -> []int
where every list is %[1]d long.`, e.dim)
}

func (e *Euclidean) Dim() int { return e.dim }

// Position returns a copy of the current position.
func (e *Euclidean) Position() []int {
	return append([]int(nil), e.position...)
}

// Move adds movement to the current position in place.
func (e *Euclidean) Move(movement []int) error {
	if len(movement) != e.dim {
		return fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(movement), e.dim)
	}
	for i, d := range movement {
		e.position[i] += d
	}
	return nil
}

// SavePoint snapshots the current position under name, replacing any earlier
// point with the same name.
func (e *Euclidean) SavePoint(name string) {
	e.points[name] = e.Position()
}

// Point returns a copy of the saved point.
func (e *Euclidean) Point(name string) ([]int, bool) {
	p, ok := e.points[name]
	if !ok {
		return nil, false
	}
	return append([]int(nil), p...), true
}

// Points lists saved point names in lexical order.
func (e *Euclidean) Points() []string {
	names := make([]string, 0, len(e.points))
	for name := range e.points {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MeasureAngle returns the angle at the current position between the
// directions towards left and right. A point that coincides with the current
// position has no direction and yields geometry.ErrZeroVector.
func (e *Euclidean) MeasureAngle(left, right string) (float64, error) {
	a, err := e.MeasureLength(left)
	if err != nil {
		return 0, err
	}
	b, err := e.MeasureLength(right)
	if err != nil {
		return 0, err
	}
	angle, err := geometry.AngleBetween(geometry.ToFloats(a), geometry.ToFloats(b))
	if err != nil {
		return 0, fmt.Errorf("angle between %q and %q: %w", left, right, err)
	}
	return angle, nil
}

// MeasureLength returns the displacement vector from the current position to
// the saved point, not its scalar length. Use Distance for the latter.
func (e *Euclidean) MeasureLength(name string) ([]int, error) {
	p, ok := e.points[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPointNotFound, name)
	}
	return geometry.Sub(p, e.position)
}

// Distance returns the Euclidean distance from the current position to the
// saved point.
func (e *Euclidean) Distance(name string) (float64, error) {
	d, err := e.MeasureLength(name)
	if err != nil {
		return 0, err
	}
	return geometry.Norm(geometry.ToFloats(d)), nil
}
