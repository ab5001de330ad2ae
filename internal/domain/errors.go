package domain

import "errors"

// Messages double as the "detail" shown to users, keep them human readable.
var (
	ErrActivityNotFound = errors.New("Activity not found")
	ErrAlreadySignedUp  = errors.New("Student already signed up")
	ErrNotRegistered    = errors.New("Student is not registered")
)

var (
	ErrValidation = errors.New("validation error")
)
