// Package level defines geometric contexts in which a movement model is
// exercised. A level owns a current position, a table of named points and a
// conformance check that compares a model's predictions against ground truth.
package level

// Model predicts the position reached from position after applying movement.
// Both arguments and the result have one entry per dimension.
type Model func(position, movement []int) ([]int, error)

// Level is the capability set every geometry provides. Euclidean is the only
// implementation today; other geometries plug in by satisfying this interface.
type Level interface {
	// Identity

	Description() string
	Dim() int

	// Navigation

	Move(movement []int) error
	Position() []int

	// Measurement

	SavePoint(name string)
	MeasureAngle(left, right string) (float64, error)
	MeasureLength(name string) ([]int, error)
	Distance(name string) (float64, error)

	// Validation

	Check(model Model) (bool, error)
	Verify(model Model) (Report, error)
}
