package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adriandotdev/emsp-v2/internal/domain"
	"github.com/adriandotdev/emsp-v2/internal/service/location"
)

type coded interface {
	error
	Code() int
}

func httpErrorHandler(err error, c echo.Context) {
	msg := err.Error()
	code := http.StatusInternalServerError

	var data any
	for e := err; e != nil; e = errors.Unwrap(e) {
		if batch, ok := e.(*location.BatchError); ok {
			code = batch.Code()
			data = batch.Reasons()
			break
		}
		if ce, ok := e.(coded); ok {
			code = ce.Code()
			msg = ce.Error()
			break
		}
		if he, ok := e.(*echo.HTTPError); ok {
			code = he.Code
			break
		}
	}

	_ = c.JSON(code, domain.ErrorResponse{
		Message: msg,
		Code:    code,
		Data:    data,
	})
}
