package dto

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/vintiq/offer-service/pkg/errs"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

func WriteSuccessResponse(c echo.Context, payload interface{}) error {
	return c.JSON(http.StatusOK, payload)
}

func WriteCreatedResponse(c echo.Context, payload interface{}) error {
	return c.JSON(http.StatusCreated, payload)
}

func WriteNotFoundResponse(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, message)
}

func WriteErrorResponse(c echo.Context, err error) error {
	statusCode := errs.GetErrorStatusCode(err)
	return c.JSON(statusCode, ErrorResponse{Message: err.Error()})
}
