package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adriandotdev/emsp-v2/internal/domain"
	"github.com/adriandotdev/emsp-v2/internal/pkg/constants"
	csvService "github.com/adriandotdev/emsp-v2/internal/service/csv"
)

func csvVersion(ctx echo.Context) (csvService.Version, error) {
	switch ctx.QueryParam("version") {
	case "", "1":
		return csvService.VersionLegacy, nil
	case "2":
		return csvService.Version2, nil
	default:
		return 0, constants.ErrInvalidCSVFormat
	}
}

// UploadCSV registers every location described by the uploaded file in
// one atomic batch on behalf of the authenticated CPO.
func (c *Controller) UploadCSV(ctx echo.Context) error {
	version, err := csvVersion(ctx)
	if err != nil {
		return err
	}

	partyID, ok := ctx.Get(constants.CtxKeyPartyID).(string)
	if !ok {
		return constants.ErrUnauthorized
	}

	header, err := ctx.FormFile("file")
	if err != nil {
		return constants.ErrInvalidCSVFormat
	}
	file, err := header.Open()
	if err != nil {
		return constants.ErrInvalidCSVFormat
	}
	defer file.Close()

	results, err := c.csv.Import(ctx.Request().Context(), partyID, file, version)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, domain.APIResponse{
		Status: http.StatusOK,
		Data:   results,
	})
}

// StageCSV parses a v2 file, stages its rows for the pending-import
// counters, and returns the parsed payloads for review.
func (c *Controller) StageCSV(ctx echo.Context) error {
	id, err := cpoOwnerID(ctx)
	if err != nil {
		return err
	}

	header, err := ctx.FormFile("file")
	if err != nil {
		return constants.ErrInvalidCSVFormat
	}
	file, err := header.Open()
	if err != nil {
		return constants.ErrInvalidCSVFormat
	}
	defer file.Close()

	locations, err := c.csv.Stage(ctx.Request().Context(), id, file)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, domain.APIResponse{
		Status: http.StatusOK,
		Data:   locations,
	})
}
