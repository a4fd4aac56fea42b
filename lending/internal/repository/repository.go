package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/bookhive/lending-service/lending/internal/errs"
	"github.com/bookhive/lending-service/lending/internal/model"
	"github.com/bookhive/lending-service/lending/internal/service"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Repository interface {
	service.UserDirectory
	service.Catalog
	service.LoanLedger
	RecordLoanMade(ctx context.Context, msg model.LoanMadeMsg) error
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

var _ Repository = (*repository)(nil)

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	usersTableName     = `users`
	booksTableName     = `books`
	loansTableName     = `loans`
	loanAuditTableName = `loan_audit`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *repository) FindUser(ctx context.Context, userUid string) (model.User, error) {
	query, args, err := qb.Select("id", "user_uid", "name", "email").
		From(usersTableName).
		Where(sq.Eq{"user_uid": userUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	var user model.User
	if err := r.db.GetContext(ctx, &user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrNotFound
		}
		return model.User{}, err
	}

	return user, nil
}

func (r *repository) FindBook(ctx context.Context, bookUid string) (model.Book, error) {
	query, args, err := qb.Select("id", "book_uid", "name", "author").
		From(booksTableName).
		Where(sq.Eq{"book_uid": bookUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}

	return book, nil
}

func (r *repository) GetBookLoaner(ctx context.Context, bookUid string) (string, error) {
	q := `
	select user_uid from loans
	where book_uid = $1 and returned_at is null
`
	var loanerUid string
	if err := r.db.QueryRowContext(ctx, q, bookUid).Scan(&loanerUid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", errs.ErrNotFound
		}
		return "", err
	}
	return loanerUid, nil
}

func (r *repository) GetUserLoans(ctx context.Context, userUid string) ([]model.Loan, error) {
	query, args, err := qb.Select("id", "loan_uid", "user_uid", "book_uid", "taken_at", "returned_at").
		From(loansTableName).
		Where(sq.Eq{"user_uid": userUid}).
		Where("returned_at is null").
		ToSql()
	if err != nil {
		return nil, err
	}
	var loans []model.Loan
	if err := r.db.SelectContext(ctx, &loans, query, args...); err != nil {
		return nil, err
	}
	return loans, nil
}

// TakeLoan opens a loan only while the book has no holder and the user is
// under the limit. The user row is locked first: under read committed two
// concurrent inserts for the same user would otherwise both snapshot the
// open-loan count before either commits. The partial unique index on open
// loans per book backs the holder condition up.
func (r *repository) TakeLoan(ctx context.Context, user model.User, book model.Book) (model.Loan, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Loan{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	var userID int
	if err := tx.GetContext(ctx, &userID,
		`select id from users where user_uid = $1 for update`, user.UserUid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Loan{}, errs.ErrNotFound
		}
		return model.Loan{}, err
	}

	q := `
	insert into loans (loan_uid, user_uid, book_uid, taken_at)
	select $1, $2, $3, now()
	where not exists (
	    select 1 from loans where book_uid = $3 and returned_at is null
	)
	and (
	    select count(*) from loans where user_uid = $2 and returned_at is null
	) < $4
	returning id, loan_uid, user_uid, book_uid, taken_at, returned_at`

	var loan model.Loan
	if err := tx.GetContext(ctx, &loan, q, uuid.New(), user.UserUid, book.BookUid, service.MaxOpenLoans); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Debug("TakeLoan lost race",
				zap.String("userUid", user.UserUid),
				zap.String("bookUid", book.BookUid))
			return model.Loan{}, errs.ErrLoanConflict
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) &&
			(pgErr.Code == pgerrcode.UniqueViolation || pgErr.Code == pgerrcode.SerializationFailure) {
			r.log.Debug("TakeLoan lost race",
				zap.String("userUid", user.UserUid),
				zap.String("bookUid", book.BookUid),
				zap.String("code", pgErr.Code))
			return model.Loan{}, errs.ErrLoanConflict
		}
		r.log.Error("TakeLoan",
			zap.String("userUid", user.UserUid),
			zap.String("bookUid", book.BookUid),
			zap.Error(err))
		return model.Loan{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.Loan{}, err
	}
	return loan, nil
}

func (r *repository) EndLoan(ctx context.Context, user model.User, book model.Book) error {
	q := `
	update loans set returned_at = now()
	where user_uid = $1 and book_uid = $2 and returned_at is null
`
	res, err := r.db.ExecContext(ctx, q, user.UserUid, book.BookUid)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) RecordLoanMade(ctx context.Context, msg model.LoanMadeMsg) error {
	query, args, err := qb.Insert(loanAuditTableName).
		Columns("loan_uid", "user_uid", "book_uid", "event_type").
		Values(msg.LoanUid, msg.UserUid, msg.BookUid, "LOAN_MADE").
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.log.Error("RecordLoanMade", zap.String("q", query), zap.Any("args", args))
		return err
	}
	return nil
}
