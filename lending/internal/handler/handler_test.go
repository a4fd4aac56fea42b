package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bookhive/lending-service/lending/internal/errs"
	"github.com/bookhive/lending-service/lending/internal/handler"
	"github.com/bookhive/lending-service/lending/internal/model"
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	service_mocks "github.com/bookhive/lending-service/lending/internal/handler/mocks"
)

const (
	userUid = "7ab519fc-30e9-4f8f-a99c-72aa8a11ab4c"
	bookUid = "f7cdc58f-2caf-4b15-9727-f89dcc629b27"
	loanUid = "1d9b5d39-5e05-4c1b-97cb-7752b7b6e8b4"
)

func TestHandler_LoanBook(t *testing.T) {
	t.Parallel()
	takenAt := time.Date(2023, 10, 12, 10, 0, 0, 0, time.UTC)

	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLendingService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok. accepted",
			body: `{"userUid":"` + userUid + `","bookUid":"` + bookUid + `"}`,
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					LoanBook(gomock.Any(), model.LoanInput{UserUid: userUid, BookUid: bookUid}).
					Return(model.LoanAccepted(model.Loan{
						LoanUid: loanUid,
						UserUid: userUid,
						BookUid: bookUid,
						TakenAt: takenAt,
					}), nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"status":"LOAN_ACCEPTED","loan":{"loanUid":"` + loanUid + `","userUid":"` + userUid + `","bookUid":"` + bookUid + `","takenAt":"2023-10-12T10:00:00Z"}}`,
			},
		},
		{
			name: "ok. denied",
			body: `{"userUid":"` + userUid + `","bookUid":"` + bookUid + `"}`,
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					LoanBook(gomock.Any(), model.LoanInput{UserUid: userUid, BookUid: bookUid}).
					Return(model.LoanDenied(model.ReasonUserHasTooManyLoans), nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"status":"LOAN_DENIED","reason":"USER_HAS_TOO_MANY_LOANS"}`,
			},
		},
		{
			name:         "err. invalid input",
			body:         `{"userUid":"not-a-uuid","bookUid":""}`,
			mockBehavior: func(r *service_mocks.MockLendingService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
		{
			name: "err. user not found",
			body: `{"userUid":"` + userUid + `","bookUid":"` + bookUid + `"}`,
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					LoanBook(gomock.Any(), model.LoanInput{UserUid: userUid, BookUid: bookUid}).
					Return(model.LoanResolution{}, errors.Wrap(errs.ErrUserNotFound, userUid))
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"` + userUid + `: user does not exist"}`,
			},
		},
		{
			name: "err. lost race at the ledger",
			body: `{"userUid":"` + userUid + `","bookUid":"` + bookUid + `"}`,
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					LoanBook(gomock.Any(), model.LoanInput{UserUid: userUid, BookUid: bookUid}).
					Return(model.LoanResolution{}, errs.ErrLoanConflict)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"loan conflicts with an open loan"}`,
			},
		},
		{
			name: "err. internal",
			body: `{"userUid":"` + userUid + `","bookUid":"` + bookUid + `"}`,
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					LoanBook(gomock.Any(), model.LoanInput{UserUid: userUid, BookUid: bookUid}).
					Return(model.LoanResolution{}, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockLendingService(c)
			tt.mockBehavior(svc)

			h := handler.New(svc, zap.NewExample().Named("test"))
			router := h.NewRouter()

			req := httptest.NewRequest(http.MethodPost, "/api/v1/loans", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, tt.response.expectedCode, rec.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.TrimSpace(rec.Body.String()))
			}
		})
	}
}

func TestHandler_ReturnBook(t *testing.T) {
	t.Parallel()

	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLendingService)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().ReturnBook(gomock.Any(), bookUid).Return(nil)
			},
			response: response{
				expectedCode: http.StatusNoContent,
			},
		},
		{
			name: "err. book not found",
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().ReturnBook(gomock.Any(), bookUid).
					Return(errors.Wrap(errs.ErrBookNotFound, bookUid))
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"` + bookUid + `: book does not exist"}`,
			},
		},
		{
			name: "err. book was not loaned",
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().ReturnBook(gomock.Any(), bookUid).
					Return(errors.Wrap(errs.ErrBookNotLoaned, bookUid))
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"` + bookUid + `: book was not loaned"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockLendingService(c)
			tt.mockBehavior(svc)

			h := handler.New(svc, zap.NewExample().Named("test"))
			router := h.NewRouter()

			req := httptest.NewRequest(http.MethodPost, "/api/v1/books/"+bookUid+"/return", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, tt.response.expectedCode, rec.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.TrimSpace(rec.Body.String()))
			}
		})
	}
}

func TestHandler_GetUserLoans(t *testing.T) {
	t.Parallel()
	takenAt := time.Date(2023, 10, 12, 10, 0, 0, 0, time.UTC)

	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockLendingService(c)
	svc.EXPECT().GetUserLoans(gomock.Any(), userUid).Return([]model.Loan{
		{LoanUid: loanUid, UserUid: userUid, BookUid: bookUid, TakenAt: takenAt},
	}, nil)

	h := handler.New(svc, zap.NewExample().Named("test"))
	router := h.NewRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/"+userUid+"/loans", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t,
		`[{"loanUid":"`+loanUid+`","userUid":"`+userUid+`","bookUid":"`+bookUid+`","takenAt":"2023-10-12T10:00:00Z"}]`,
		strings.TrimSpace(rec.Body.String()))
}
