package handler

import (
	"net/http"

	md "github.com/bookhive/lending-service/pkg/middleware"

	"github.com/bookhive/lending-service/lending/internal/errs"
	"github.com/bookhive/lending-service/lending/internal/model"
	"github.com/bookhive/lending-service/pkg/validate"
	_ "github.com/bookhive/lending-service/swagger"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

type Handler struct {
	lendingSvc LendingService
	log        *zap.Logger
}

func New(lendingSvc LendingService, log *zap.Logger) *Handler {
	h := &Handler{
		lendingSvc: lendingSvc,
		log:        log,
	}
	return h
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.POST("/loans", h.LoanBook)
	api.POST("/books/:bookUid/return", h.ReturnBook)
	api.GET("/users/:userUid/loans", h.GetUserLoans)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// LoanBook godoc
// @Summary      Loan a book to a user
// @Accept       json
// @Produce      json
// @Param        input body model.LoanInput true "loan request"
// @Success      200 {object} model.LoanResolution
// @Failure      404 {object} echo.HTTPError
// @Failure      409 {object} echo.HTTPError
// @Router       /loans [post]
func (h *Handler) LoanBook(c echo.Context) error {
	var input model.LoanInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.lendingSvc.LoanBook(c.Request().Context(), input)
	if err != nil {
		return lendingHTTPError(err)
	}
	return c.JSON(http.StatusOK, res)
}

// ReturnBook godoc
// @Summary      Return a loaned book
// @Param        bookUid path string true "book uid"
// @Success      204
// @Failure      404 {object} echo.HTTPError
// @Failure      409 {object} echo.HTTPError
// @Router       /books/{bookUid}/return [post]
func (h *Handler) ReturnBook(c echo.Context) error {
	bookUid := c.Param("bookUid")
	if bookUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty bookUid")
	}
	if err := h.lendingSvc.ReturnBook(c.Request().Context(), bookUid); err != nil {
		return lendingHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetUserLoans godoc
// @Summary      List a user's open loans
// @Produce      json
// @Param        userUid path string true "user uid"
// @Success      200 {array} model.Loan
// @Failure      404 {object} echo.HTTPError
// @Router       /users/{userUid}/loans [get]
func (h *Handler) GetUserLoans(c echo.Context) error {
	userUid := c.Param("userUid")
	if userUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty userUid")
	}
	loans, err := h.lendingSvc.GetUserLoans(c.Request().Context(), userUid)
	if err != nil {
		return lendingHTTPError(err)
	}
	return c.JSON(http.StatusOK, loans)
}

func lendingHTTPError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrUserNotFound), errors.Is(err, errs.ErrBookNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrBookNotLoaned), errors.Is(err, errs.ErrLoanConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
