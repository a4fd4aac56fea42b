package model

import (
	"time"
)

type User struct {
	ID      int    `json:"-" db:"id"`
	UserUid string `json:"userUid" db:"user_uid"`
	Name    string `json:"name" db:"name"`
	Email   string `json:"email" db:"email"`
}

type Book struct {
	ID      int    `json:"-" db:"id"`
	BookUid string `json:"bookUid" db:"book_uid"`
	Name    string `json:"name" db:"name"`
	Author  string `json:"author" db:"author"`
}

// Loan is one borrowing episode. An open loan has no returned_at.
type Loan struct {
	ID         int        `json:"-" db:"id"`
	LoanUid    string     `json:"loanUid" db:"loan_uid"`
	UserUid    string     `json:"userUid" db:"user_uid"`
	BookUid    string     `json:"bookUid" db:"book_uid"`
	TakenAt    time.Time  `json:"takenAt" db:"taken_at"`
	ReturnedAt *time.Time `json:"returnedAt,omitempty" db:"returned_at"`
}

type LoanInput struct {
	UserUid string `json:"userUid" validate:"required,uuid"`
	BookUid string `json:"bookUid" validate:"required,uuid"`
}

type ResolutionStatus string

const (
	StatusLoanAccepted ResolutionStatus = "LOAN_ACCEPTED"
	StatusLoanDenied   ResolutionStatus = "LOAN_DENIED"
)

type DenyReason string

const (
	ReasonBookIsAlreadyLoaned DenyReason = "BOOK_IS_ALREADY_LOANED"
	ReasonUserHasTooManyLoans DenyReason = "USER_HAS_TOO_MANY_LOANS"
)

// LoanResolution is the outcome of a loan request. A denial is a regular
// outcome carried in the body, not an error.
type LoanResolution struct {
	Status ResolutionStatus `json:"status"`
	Reason DenyReason       `json:"reason,omitempty"`
	Loan   *Loan            `json:"loan,omitempty"`
}

func LoanAccepted(loan Loan) LoanResolution {
	return LoanResolution{
		Status: StatusLoanAccepted,
		Loan:   &loan,
	}
}

func LoanDenied(reason DenyReason) LoanResolution {
	return LoanResolution{
		Status: StatusLoanDenied,
		Reason: reason,
	}
}

// LoanMadeMsg is the payload published to the loan-made topic.
type LoanMadeMsg struct {
	LoanUid string `json:"loanUid"`
	UserUid string `json:"userUid"`
	BookUid string `json:"bookUid"`
}
