package either

// Either is a two-variant result: Left carries an expected failure,
// Right carries the success value. Use-case callers must check which
// branch is populated before unwrapping.
type Either[L, R any] struct {
	left   L
	right  R
	isLeft bool
}

// NewLeft builds a failure-branch Either.
func NewLeft[L, R any](l L) Either[L, R] {
	return Either[L, R]{left: l, isLeft: true}
}

// NewRight builds a success-branch Either.
func NewRight[L, R any](r R) Either[L, R] {
	return Either[L, R]{right: r}
}

func (e Either[L, R]) IsLeft() bool  { return e.isLeft }
func (e Either[L, R]) IsRight() bool { return !e.isLeft }

// Left returns the failure value; zero value when IsRight.
func (e Either[L, R]) Left() L { return e.left }

// Right returns the success value; zero value when IsLeft.
func (e Either[L, R]) Right() R { return e.right }
