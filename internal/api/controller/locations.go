package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adriandotdev/emsp-v2/internal/domain"
	locationService "github.com/adriandotdev/emsp-v2/internal/service/location"
)

// RegisterLocations is the partner webhook: the whole batch registers
// atomically, so a response is either every location id or a rolled
// back batch with per-entry reasons.
func (c *Controller) RegisterLocations(ctx echo.Context) error {
	var req domain.RegisterLocationsRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	partyID := ctx.Param("party_id")

	results, err := c.locations.RegisterAllLocationsAndEVSEs(
		ctx.Request().Context(), partyID, req.Locations, locationService.ResolveByCode)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, domain.APIResponse{
		Status: http.StatusOK,
		Data:   results,
	})
}
