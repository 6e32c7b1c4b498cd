package middleware

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := err.Error()

	switch e := err.(type) {
	case *echo.HTTPError:
		code = e.Code
		if m, ok := e.Message.(string); ok {
			msg = m
		}
	case validator.ValidationErrors:
		code = http.StatusBadRequest
	}

	_ = c.JSON(code, map[string]string{"message": msg})
}
