package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput is an error thrown when a request is malformed or misses required fields
var ErrInvalidInput = errors.New("invalid input")

// ErrEventNotFound is an error thrown when an event is not found
var ErrEventNotFound = errors.New("event not found")

// ErrPhotoNotFound is an error thrown when a photo is not found
var ErrPhotoNotFound = errors.New("photo not found")

// ErrInvalidEventTimes is an error thrown when an event time range fails validation
var ErrInvalidEventTimes = errors.New("invalid event times")

// ErrPhotoRejected is an error thrown when a submitted photo fails validation
var ErrPhotoRejected = errors.New("photo rejected")

// ErrUnauthorized is an error thrown when a caller is not authorized
var ErrUnauthorized = errors.New("unauthorized")

// ErrAlreadyExists is an error thrown when entity already exists
var ErrAlreadyExists = errors.New("already exists")

// RejectionError carries every blocking finding for a refused photo so
// callers can surface them individually. It matches ErrPhotoRejected in
// errors.Is checks.
type RejectionError struct {
	Findings []string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("%s: %s", ErrPhotoRejected, strings.Join(e.Findings, "; "))
}

func (e *RejectionError) Unwrap() error {
	return ErrPhotoRejected
}
