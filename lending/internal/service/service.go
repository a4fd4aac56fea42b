package service

import (
	"context"

	"github.com/bookhive/lending-service/lending/internal/errs"
	"github.com/bookhive/lending-service/lending/internal/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

// MaxOpenLoans is the most open loans a single user may hold.
const MaxOpenLoans = 4

type UserDirectory interface {
	FindUser(ctx context.Context, userUid string) (model.User, error)
}

type Catalog interface {
	FindBook(ctx context.Context, bookUid string) (model.Book, error)
}

// LoanLedger is the source of truth for open loans. TakeLoan re-validates
// both invariants atomically; a lost race comes back as errs.ErrLoanConflict.
type LoanLedger interface {
	GetBookLoaner(ctx context.Context, bookUid string) (string, error)
	GetUserLoans(ctx context.Context, userUid string) ([]model.Loan, error)
	TakeLoan(ctx context.Context, user model.User, book model.Book) (model.Loan, error)
	EndLoan(ctx context.Context, user model.User, book model.Book) error
}

type EventSink interface {
	OnLoanMade(ctx context.Context, msg model.LoanMadeMsg) error
}

type Service struct {
	log    *zap.Logger
	users  UserDirectory
	books  Catalog
	ledger LoanLedger
	events EventSink
}

func NewService(users UserDirectory, books Catalog, ledger LoanLedger, events EventSink, log *zap.Logger) *Service {
	return &Service{
		log:    log,
		users:  users,
		books:  books,
		ledger: ledger,
		events: events,
	}
}

// LoanBook resolves the request against the directory and catalog, evaluates
// the two lending rules and opens the loan. Denials come back as a resolution
// value; unresolvable identifiers and ledger conflicts come back as errors.
//
// The holder check runs strictly before the count check, so a request for an
// already-loaned book by an over-limit user is denied as already-loaned.
func (s *Service) LoanBook(ctx context.Context, input model.LoanInput) (model.LoanResolution, error) {
	user, err := s.resolveUser(ctx, input.UserUid)
	if err != nil {
		return model.LoanResolution{}, err
	}
	book, err := s.resolveBook(ctx, input.BookUid)
	if err != nil {
		return model.LoanResolution{}, err
	}

	if _, err := s.ledger.GetBookLoaner(ctx, book.BookUid); err == nil {
		return model.LoanDenied(model.ReasonBookIsAlreadyLoaned), nil
	} else if !errors.Is(err, errs.ErrNotFound) {
		return model.LoanResolution{}, err
	}

	loans, err := s.ledger.GetUserLoans(ctx, user.UserUid)
	if err != nil {
		return model.LoanResolution{}, err
	}
	if len(loans) >= MaxOpenLoans {
		return model.LoanDenied(model.ReasonUserHasTooManyLoans), nil
	}

	// The pre-checks above only pick the denial reason; the ledger enforces
	// uniqueness at the point of mutation.
	loan, err := s.ledger.TakeLoan(ctx, user, book)
	if err != nil {
		return model.LoanResolution{}, err
	}
	s.log.Debug("loan taken",
		zap.String("loanUid", loan.LoanUid),
		zap.String("userUid", user.UserUid),
		zap.String("bookUid", book.BookUid))

	// The loan is committed at this point; a sink failure still propagates.
	if err := s.events.OnLoanMade(ctx, model.LoanMadeMsg{
		LoanUid: loan.LoanUid,
		UserUid: loan.UserUid,
		BookUid: loan.BookUid,
	}); err != nil {
		return model.LoanResolution{}, err
	}

	return model.LoanAccepted(loan), nil
}

// ReturnBook closes the open loan on a book.
func (s *Service) ReturnBook(ctx context.Context, bookUid string) error {
	book, err := s.resolveBook(ctx, bookUid)
	if err != nil {
		return err
	}

	loanerUid, err := s.ledger.GetBookLoaner(ctx, book.BookUid)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return errors.Wrap(errs.ErrBookNotLoaned, bookUid)
		}
		return err
	}

	// The ledger referenced this user; a miss here is a consistency anomaly.
	user, err := s.resolveUser(ctx, loanerUid)
	if err != nil {
		return err
	}

	return s.ledger.EndLoan(ctx, user, book)
}

func (s *Service) GetUserLoans(ctx context.Context, userUid string) ([]model.Loan, error) {
	user, err := s.resolveUser(ctx, userUid)
	if err != nil {
		return nil, err
	}
	return s.ledger.GetUserLoans(ctx, user.UserUid)
}

func (s *Service) resolveUser(ctx context.Context, userUid string) (model.User, error) {
	user, err := s.users.FindUser(ctx, userUid)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.User{}, errors.Wrap(errs.ErrUserNotFound, userUid)
		}
		return model.User{}, err
	}
	return user, nil
}

func (s *Service) resolveBook(ctx context.Context, bookUid string) (model.Book, error) {
	book, err := s.books.FindBook(ctx, bookUid)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Book{}, errors.Wrap(errs.ErrBookNotFound, bookUid)
		}
		return model.Book{}, err
	}
	return book, nil
}
