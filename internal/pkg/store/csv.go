package store

import (
	"context"

	"github.com/adriandotdev/emsp-v2/internal/pkg/store/xpgx"
)

// TemporaryImportRow is one staged CSV row awaiting registration;
// pending counts per CPO are derived from this table.
type TemporaryImportRow struct {
	CPOOwnerID       int64
	LocationName     string
	Address          string
	AddressLat       float64
	AddressLng       float64
	EvseSN           string
	KWH              float64
	Connectors       string
	ConnectorFormat  string
	PowerType        string
	MaxVoltage       float64
	MaxAmperage      float64
	MaxElectricPower float64
	Facilities       string
	ParkingTypes     string
	Capabilities     string
	PaymentTypes     string
}

func (s *store) InsertTemporaryImportRows(ctx context.Context, rows []TemporaryImportRow) error {
	if len(rows) == 0 {
		return nil
	}

	query := builder().Insert(tableCSVTemporary).
		Columns(
			"cpo_owner_id", "location_name", "address", "address_lat", "address_lng",
			"evse_sn", "kwh", "connectors", "connector_format", "power_type",
			"max_voltage", "max_amperage", "max_electric_power",
			"location_facilities", "location_parking_types",
			"evse_capabilities", "evse_payment_types",
		)
	for _, row := range rows {
		query = query.Values(
			row.CPOOwnerID, row.LocationName, row.Address, row.AddressLat, row.AddressLng,
			row.EvseSN, row.KWH, row.Connectors, row.ConnectorFormat, row.PowerType,
			row.MaxVoltage, row.MaxAmperage, row.MaxElectricPower,
			row.Facilities, row.ParkingTypes, row.Capabilities, row.PaymentTypes,
		)
	}

	return xpgx.Execx(ctx, s.pool, query)
}
