package passkit

import "errors"

// Policy validation errors. All builder methods report invalid input through
// these sentinels so callers can branch with errors.Is.
var (
	// ErrWordsCount is returned when a policy requests zero words.
	ErrWordsCount = errors.New("words count must be a positive integer")

	// ErrWordLengthTooShort is returned when the minimum word length falls
	// below MinWordLength. It takes precedence over ErrWordLengthTooLong
	// when both bounds are out of range.
	ErrWordLengthTooShort = errors.New("min word length must be 4 or higher")

	// ErrWordLengthTooLong is returned when the maximum word length exceeds
	// MaxWordLength.
	ErrWordLengthTooLong = errors.New("max word length must be 10 or lower")

	// ErrTransform is returned when a transform set enables no usable case
	// transform.
	ErrTransform = errors.New("at least one word transform is required")

	// ErrAdaptiveTarget is returned when an adaptive padding strategy
	// carries a zero target length.
	ErrAdaptiveTarget = errors.New("adaptive padding target must be a positive integer")
)
