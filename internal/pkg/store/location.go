package store

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/adriandotdev/emsp-v2/internal/domain"
	"github.com/adriandotdev/emsp-v2/internal/pkg/constants"
	"github.com/adriandotdev/emsp-v2/internal/pkg/store/xpgx"
)

type RegisterLocationParams struct {
	CPOOwnerID int64
	Name       string
	Address    string
	Lat        float64
	Lng        float64
	City       string
	Region     string
	Province   string
	PostalCode string
	Images     []string
}

type RegisterEVSEParams struct {
	UID          string
	SerialNumber string
	MeterType    string
	LocationID   int64
}

type ConnectorRow struct {
	Standard         string
	Format           string
	PowerType        string
	MaxVoltage       float64
	MaxAmperage      float64
	MaxElectricPower float64
	RateSetting      string
}

type (
	LocationFacilityRow struct {
		FacilityID int64
		LocationID int64
	}
	LocationParkingTypeRow struct {
		ParkingTypeID int64
		LocationID    int64
		Tag           string
	}
	LocationParkingRestrictionRow struct {
		ParkingRestrictionID int64
		LocationID           int64
	}
	EVSECapabilityRow struct {
		CapabilityID int64
		EvseUID      string
	}
	EVSEPaymentTypeRow struct {
		EvseUID       string
		PaymentTypeID int64
	}
)

// SearchLocationByName is the dedup pre-check: a case-insensitive exact
// match scoped to the owning CPO. The (cpo_owner_id, lower(name))
// unique index backs it up against concurrent duplicates.
func (s *store) SearchLocationByName(ctx context.Context, cpoOwnerID int64, name string) (*domain.Location, error) {
	query := builder().Select("id", "cpo_owner_id", "name").
		From(tableLocations).
		Where(squirrel.Eq{"cpo_owner_id": cpoOwnerID}).
		Where("LOWER(name) = LOWER(?)", name).
		Limit(1)

	var location domain.Location
	if err := s.pool.Getx(ctx, &location, query); err != nil {
		return nil, wrapErr(err)
	}

	return &location, nil
}

func (s *store) RegisterLocation(ctx context.Context, db Querier, params RegisterLocationParams) (int64, error) {
	images := params.Images
	if images == nil {
		images = []string{}
	}

	query := builder().Insert(tableLocations).
		Columns(
			"cpo_owner_id", "name", "address", "address_lat", "address_lng",
			"city", "region", "province", "postal_code", "country_code",
			"images", "date_created", "date_modified",
		).
		Values(
			params.CPOOwnerID, params.Name, params.Address, params.Lat, params.Lng,
			params.City, params.Region, params.Province, params.PostalCode,
			constants.DefaultCountryCode, images,
			squirrel.Expr("NOW()"), squirrel.Expr("NOW()"),
		).
		Suffix("RETURNING id")

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err = db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, wrapErr(err)
	}

	return id, nil
}

func (s *store) AddLocationFacilities(ctx context.Context, db Querier, rows []LocationFacilityRow) error {
	query := builder().Insert(tableLocationFacilities).
		Columns("facility_id", "cpo_location_id")
	for _, row := range rows {
		query = query.Values(row.FacilityID, row.LocationID)
	}

	return xpgx.Execx(ctx, db, query)
}

func (s *store) AddLocationParkingTypes(ctx context.Context, db Querier, rows []LocationParkingTypeRow) error {
	query := builder().Insert(tableLocationParkingTypes).
		Columns("parking_type_id", "cpo_location_id", "tag")
	for _, row := range rows {
		query = query.Values(row.ParkingTypeID, row.LocationID, row.Tag)
	}

	return xpgx.Execx(ctx, db, query)
}

func (s *store) AddLocationParkingRestrictions(ctx context.Context, db Querier, rows []LocationParkingRestrictionRow) error {
	query := builder().Insert(tableLocationParkingRestrs).
		Columns("parking_restriction_code_id", "cpo_location_id")
	for _, row := range rows {
		query = query.Values(row.ParkingRestrictionID, row.LocationID)
	}

	return xpgx.Execx(ctx, db, query)
}

// RegisterEVSE calls the emsp_register_evse procedure, which enforces
// uid uniqueness and location validity and reports violations through
// its (status, status_type) row.
func (s *store) RegisterEVSE(ctx context.Context, db Querier, params RegisterEVSEParams) (ProcResult, error) {
	var result ProcResult
	err := db.QueryRow(ctx,
		`SELECT status, status_type FROM emsp_register_evse($1,$2,$3,$4)`,
		params.UID,
		params.SerialNumber,
		params.MeterType,
		params.LocationID,
	).Scan(&result.Status, &result.StatusType)
	if err != nil {
		return ProcResult{}, wrapErr(err)
	}

	return result, nil
}

func (s *store) AddConnectors(ctx context.Context, db Querier, evseUID string, rows []ConnectorRow) error {
	query := builder().Insert(tableEVSEConnectors).
		Columns(
			"evse_uid", "connector_id", "standard", "format", "power_type",
			"max_voltage", "max_amperage", "max_electric_power",
			"connector_type", "rate_setting", "status",
			"date_created", "date_modified",
		)
	for i, row := range rows {
		query = query.Values(
			evseUID, i+1, row.Standard, row.Format, row.PowerType,
			row.MaxVoltage, row.MaxAmperage, row.MaxElectricPower,
			row.Standard, row.RateSetting, "AVAILABLE",
			squirrel.Expr("NOW()"), squirrel.Expr("NOW()"),
		)
	}

	return xpgx.Execx(ctx, db, query)
}

func (s *store) AddEVSECapabilities(ctx context.Context, db Querier, rows []EVSECapabilityRow) error {
	query := builder().Insert(tableEVSECapabilities).
		Columns("capability_id", "evse_uid")
	for _, row := range rows {
		query = query.Values(row.CapabilityID, row.EvseUID)
	}

	return xpgx.Execx(ctx, db, query)
}

func (s *store) AddEVSEPaymentTypes(ctx context.Context, db Querier, rows []EVSEPaymentTypeRow) error {
	query := builder().Insert(tableEVSEPaymentTypes).
		Columns("evse_uid", "payment_type_id")
	for _, row := range rows {
		query = query.Values(row.EvseUID, row.PaymentTypeID)
	}

	return xpgx.Execx(ctx, db, query)
}
