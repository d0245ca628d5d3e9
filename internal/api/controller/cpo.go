package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adriandotdev/emsp-v2/internal/domain"
	"github.com/adriandotdev/emsp-v2/internal/pkg/constants"
)

func cpoOwnerID(ctx echo.Context) (int64, error) {
	id, ok := ctx.Get(constants.CtxKeyCPOID).(int64)
	if !ok {
		return 0, constants.ErrUnauthorized
	}
	return id, nil
}

func (c *Controller) RegisterCPO(ctx echo.Context) error {
	var req domain.RegisterCPORequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	details, err := c.cpo.RegisterCPO(ctx.Request().Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, domain.APIResponse{
		Status: http.StatusOK,
		Data:   details,
	})
}

func (c *Controller) GetCPODetails(ctx echo.Context) error {
	id, err := cpoOwnerID(ctx)
	if err != nil {
		return err
	}

	details, err := c.cpo.GetCPODetails(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, domain.APIResponse{
		Status: http.StatusOK,
		Data:   details,
	})
}

func (c *Controller) GetCPOLogo(ctx echo.Context) error {
	id, err := cpoOwnerID(ctx)
	if err != nil {
		return err
	}

	logo, err := c.cpo.GetLogo(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, domain.APIResponse{
		Status: http.StatusOK,
		Data:   echo.Map{"logo": logo},
	})
}

func (c *Controller) UpdateCPOLogo(ctx echo.Context) error {
	id, err := cpoOwnerID(ctx)
	if err != nil {
		return err
	}

	var req struct {
		Logo string `json:"logo" validate:"required"`
	}
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	if err := c.cpo.UpdateLogo(ctx.Request().Context(), id, req.Logo); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, domain.APIResponse{
		Status:  http.StatusOK,
		Message: "SUCCESS",
	})
}

func (c *Controller) GetPendingImportCounts(ctx echo.Context) error {
	id, err := cpoOwnerID(ctx)
	if err != nil {
		return err
	}

	counts, err := c.cpo.GetPendingImportCounts(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, domain.APIResponse{
		Status: http.StatusOK,
		Data:   counts,
	})
}
