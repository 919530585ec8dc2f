// Package apperr defines the error taxonomy shared by services and
// controllers. Controllers map these onto HTTP statuses; everything
// else wraps with %w so errors.Is keeps working across layers.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound: a referenced Question/Exam/ExamItem id does not
	// exist, or an item exists but under a different exam.
	ErrNotFound = errors.New("not found")

	// ErrValidation: a required field (title, content, answer) is
	// empty or malformed. The caller has to correct the input.
	ErrValidation = errors.New("validation failed")

	// ErrExternalService: the text-extraction collaborator timed out,
	// failed at the transport level, or returned an unparseable
	// payload. The whole import batch fails as one unit.
	ErrExternalService = errors.New("external service failed")

	// ErrStorage: persistence failure. Fatal for the operation, no
	// automatic retry, prior state stays unchanged.
	ErrStorage = errors.New("storage failure")
)

func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}

func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrValidation)...)
}

func ExternalServicef(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrExternalService)...)
}

func Storagef(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrStorage)...)
}
