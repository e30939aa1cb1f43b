package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the error payload shape of the analysis API. Failures are
// carried in the body rather than in the HTTP status: the API answers 200
// for every well-formed connection so browser clients always get JSON.
type ErrorBody struct {
	Error string `json:"error"`
}

// ResultResponse writes a success payload with HTTP 200.
func ResultResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// ErrorResponse writes an error payload with HTTP 200.
func ErrorResponse(c echo.Context, msg string) error {
	return c.JSON(http.StatusOK, ErrorBody{Error: msg})
}

// ValidationError represents validation error detail.
type ValidationError struct {
	Code    string                 `json:"code,omitempty"`
	Field   string                 `json:"field,omitempty"`
	Message string                 `json:"message,omitempty"`
	Params  map[string]interface{} `json:"params,omitempty"`
}
