package errs

import (
	"errors"
)

var (
	ErrNotFound = errors.New("not found")

	ErrUserNotFound  = errors.New("user does not exist")
	ErrBookNotFound  = errors.New("book does not exist")
	ErrBookNotLoaned = errors.New("book was not loaned")

	// ErrLoanConflict: the ledger refused to open a loan that passed the
	// pre-checks, i.e. a concurrent request won the race.
	ErrLoanConflict = errors.New("loan conflicts with an open loan")
)

type ValidationErrorResponse struct {
	Message string `json:"message"`
	Errors  struct {
		AdditionalProperties string `json:"additionalProperties"`
	} `json:"errors"`
}
