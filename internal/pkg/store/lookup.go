package store

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/adriandotdev/emsp-v2/internal/domain"
)

func (s *store) lookupTable(ctx context.Context, table string) ([]domain.LookupCode, error) {
	query := builder().Select("id", "code", "description").From(table)

	var codes []domain.LookupCode
	if err := s.pool.Selectx(ctx, &codes, query); err != nil {
		return nil, wrapErr(err)
	}

	return codes, nil
}

func (s *store) GetFacilities(ctx context.Context) ([]domain.LookupCode, error) {
	return s.lookupTable(ctx, tableFacilities)
}

func (s *store) GetParkingTypes(ctx context.Context) ([]domain.LookupCode, error) {
	return s.lookupTable(ctx, tableParkingTypes)
}

func (s *store) GetParkingRestrictions(ctx context.Context) ([]domain.LookupCode, error) {
	return s.lookupTable(ctx, tableParkingRestrictions)
}

func (s *store) GetCapabilities(ctx context.Context) ([]domain.LookupCode, error) {
	return s.lookupTable(ctx, tableCapabilities)
}

func (s *store) GetPaymentTypes(ctx context.Context) ([]domain.LookupCode, error) {
	return s.lookupTable(ctx, tablePaymentTypes)
}

func (s *store) GetConnectorTypes(ctx context.Context) ([]domain.ConnectorType, error) {
	query := builder().Select("id", "code", "description").From(tableConnectorTypes)

	var types []domain.ConnectorType
	if err := s.pool.Selectx(ctx, &types, query); err != nil {
		return nil, wrapErr(err)
	}

	return types, nil
}

var locationColumns = []string{
	"id", "cpo_owner_id", "name", "address", "address_lat", "address_lng",
	"city", "region", "province", "postal_code", "country_code", "images", "publish",
	"date_created", "date_modified",
}

func (s *store) GetLocations(ctx context.Context, cpoOwnerID int64, limit, offset uint64) ([]*domain.Location, error) {
	query := builder().Select(locationColumns...).
		From(tableLocations).
		Where(squirrel.Eq{"cpo_owner_id": cpoOwnerID}).
		OrderBy("id").
		Limit(limit).
		Offset(offset)

	var locations []*domain.Location
	if err := s.pool.Selectx(ctx, &locations, query); err != nil {
		return nil, wrapErr(err)
	}

	return locations, nil
}

func (s *store) GetEVSEs(ctx context.Context, locationID int64) ([]*domain.EVSE, error) {
	query := builder().
		Select("uid", "evse_id", "serial_number", "meter_type", "status", "cpo_location_id", "date_created").
		From(tableEVSE).
		Where(squirrel.Eq{"cpo_location_id": locationID})

	var evses []*domain.EVSE
	if err := s.pool.Selectx(ctx, &evses, query); err != nil {
		return nil, wrapErr(err)
	}

	return evses, nil
}

func (s *store) GetConnectors(ctx context.Context, evseUID string) ([]*domain.Connector, error) {
	query := builder().
		Select(
			"id", "evse_uid", "connector_id", "standard", "format", "power_type",
			"max_voltage", "max_amperage", "max_electric_power", "connector_type",
			"rate_setting", "status", "date_created", "date_modified",
		).
		From(tableEVSEConnectors).
		Where(squirrel.Eq{"evse_uid": evseUID}).
		OrderBy("connector_id")

	var connectors []*domain.Connector
	if err := s.pool.Selectx(ctx, &connectors, query); err != nil {
		return nil, wrapErr(err)
	}

	return connectors, nil
}

// association reads use parameterized subqueries; squirrel binds the
// id arrays instead of string-concatenating IN clauses.
func (s *store) associatedCodes(ctx context.Context, table, joinTable, joinColumn string, key any, keyColumn string) ([]domain.LookupCode, error) {
	sub := builder().Select(joinColumn).
		From(joinTable).
		Where(squirrel.Eq{keyColumn: key})

	subSQL, subArgs, err := sub.ToSql()
	if err != nil {
		return nil, err
	}

	query := builder().Select("id", "code", "description").
		From(table).
		Where("id IN ("+subSQL+")", subArgs...)

	var codes []domain.LookupCode
	if err := s.pool.Selectx(ctx, &codes, query); err != nil {
		return nil, wrapErr(err)
	}

	return codes, nil
}

func (s *store) GetLocationFacilities(ctx context.Context, locationID int64) ([]domain.LookupCode, error) {
	return s.associatedCodes(ctx, tableFacilities, tableLocationFacilities, "facility_id", locationID, "cpo_location_id")
}

func (s *store) GetLocationParkingTypes(ctx context.Context, locationID int64) ([]domain.LookupCode, error) {
	return s.associatedCodes(ctx, tableParkingTypes, tableLocationParkingTypes, "parking_type_id", locationID, "cpo_location_id")
}

func (s *store) GetLocationParkingRestrictions(ctx context.Context, locationID int64) ([]domain.LookupCode, error) {
	return s.associatedCodes(ctx, tableParkingRestrictions, tableLocationParkingRestrs, "parking_restriction_code_id", locationID, "cpo_location_id")
}

func (s *store) GetEVSECapabilities(ctx context.Context, evseUID string) ([]domain.LookupCode, error) {
	return s.associatedCodes(ctx, tableCapabilities, tableEVSECapabilities, "capability_id", evseUID, "evse_uid")
}

func (s *store) GetEVSEPaymentTypes(ctx context.Context, evseUID string) ([]domain.LookupCode, error) {
	return s.associatedCodes(ctx, tablePaymentTypes, tableEVSEPaymentTypes, "payment_type_id", evseUID, "evse_uid")
}
