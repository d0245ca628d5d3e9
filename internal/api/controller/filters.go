package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adriandotdev/emsp-v2/internal/domain"
)

func (c *Controller) GetFilters(ctx echo.Context) error {
	filters, err := c.filters.GetFilters(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, domain.APIResponse{
		Status: http.StatusOK,
		Data:   filters,
	})
}

func (c *Controller) GetCitiesByProvince(ctx echo.Context) error {
	cities, err := c.filters.GetCitiesByProvince(ctx.Request().Context(), ctx.Param("province"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, domain.APIResponse{
		Status: http.StatusOK,
		Data:   cities,
	})
}
