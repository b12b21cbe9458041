package forest

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors returned by the estimator. Compare with errors.Is.
var (
	// ErrInvalidAge indicates a tree age that is zero, negative or NaN.
	// Lifetime capture is amortised over the age, so the estimator refuses
	// to run rather than produce an infinite rate.
	ErrInvalidAge = constError("tree age must be greater than zero")

	// ErrUndefinedRatio indicates a capture ratio against zero emissions.
	ErrUndefinedRatio = constError("capture ratio is undefined when emissions are zero")
)
