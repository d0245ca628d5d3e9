package store

import (
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/adriandotdev/emsp-v2/internal/pkg/constants"
)

const (
	tableUsers                 = "users"
	tableCPOOwners             = "cpo_owners"
	tableLocations             = "cpo_locations"
	tableLocationFacilities    = "cpo_location_facilities"
	tableLocationParkingTypes  = "cpo_location_parking_types"
	tableLocationParkingRestrs = "cpo_location_parking_restrictions"
	tableEVSE                  = "evse"
	tableEVSEConnectors        = "evse_connectors"
	tableEVSECapabilities      = "evse_capabilities"
	tableEVSEPaymentTypes      = "evse_payment_types"
	tableFacilities            = "facilities"
	tableParkingTypes          = "parking_types"
	tableParkingRestrictions   = "parking_restrictions"
	tableCapabilities          = "capabilities"
	tablePaymentTypes          = "payment_types"
	tableConnectorTypes        = "connector_types"
	tableCSVTemporary          = "csv_temporary_table"
)

var mapping = map[error]error{pgx.ErrNoRows: constants.ErrDBNotFound}

func wrapErr(err error) error {
	for k, v := range mapping {
		if errors.Is(err, k) {
			return v
		}
	}
	return err
}

// builder returns a squirrel statement builder with Postgres
// placeholders.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
