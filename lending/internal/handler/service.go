package handler

import (
	"context"

	"github.com/bookhive/lending-service/lending/internal/model"
	"github.com/bookhive/lending-service/lending/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LendingService interface {
	LoanBook(ctx context.Context, input model.LoanInput) (model.LoanResolution, error)
	ReturnBook(ctx context.Context, bookUid string) error
	GetUserLoans(ctx context.Context, userUid string) ([]model.Loan, error)
}

var _ LendingService = (*service.Service)(nil)
