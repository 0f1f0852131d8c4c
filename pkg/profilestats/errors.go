package profilestats

import "errors"

var (
	// ErrEmptyInput is returned when a reducer is called with no profiles.
	ErrEmptyInput = errors.New("profiles list is empty")

	// ErrInvalidBirthdate is returned when the oldest birthdate is missing
	// or lies in the future.
	ErrInvalidBirthdate = errors.New("oldest birthdate is missing or in the future")

	// ErrInvalidAggregate is returned when the summed ages are not positive.
	ErrInvalidAggregate = errors.New("sum of ages is not positive")
)
