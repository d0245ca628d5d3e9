package controller

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/adriandotdev/emsp-v2/internal/domain"
	"github.com/adriandotdev/emsp-v2/internal/pkg/constants"
)

func (c *Controller) Login(ctx echo.Context) error {
	var req domain.LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	resp, err := c.auth.Login(ctx.Request().Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, domain.APIResponse{
		Status: http.StatusOK,
		Data:   resp,
	})
}

func (c *Controller) Refresh(ctx echo.Context) error {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return constants.ErrInvalidRefreshToken
	}

	resp, err := c.auth.Refresh(ctx.Request().Context(), strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, domain.APIResponse{
		Status: http.StatusOK,
		Data:   resp,
	})
}
