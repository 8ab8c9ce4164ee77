package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"loan-request-service/internal/domain/decision"
	"loan-request-service/internal/domain/request"
)

// writeError maps lifecycle errors to status codes. Unknown errors are logged and hidden.
func writeError(c echo.Context, err error) error {
	var ve *request.ValidationError
	if errors.As(err, &ve) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: []FieldError{{Field: ve.Field, Message: ve.Message}},
		})
	}

	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, request.ErrInvalidInput),
		errors.Is(err, request.ErrAmountOutOfRange),
		errors.Is(err, decision.ErrInvalidTerm):
		code = http.StatusBadRequest
	case errors.Is(err, request.ErrUnauthorized):
		code = http.StatusUnauthorized
	case errors.Is(err, request.ErrForbidden):
		code = http.StatusForbidden
	case errors.Is(err, request.ErrLoanTypeNotFound),
		errors.Is(err, request.ErrNotFound):
		code = http.StatusNotFound
	}
	if code == http.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Request().Method, c.Path(), err)
		return c.JSON(code, ErrorResponse{Error: "internal error"})
	}
	return c.JSON(code, ErrorResponse{Error: err.Error()})
}
