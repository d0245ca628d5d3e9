package domain

import "time"

// Location is a physical charging site owned by exactly one CPO. Name
// is unique per CPO (case-insensitive), enforced by a unique index and
// a pre-check in the registration flow.
type Location struct {
	ID          int64     `db:"id" json:"id"`
	CPOOwnerID  int64     `db:"cpo_owner_id" json:"cpo_owner_id"`
	Name        string    `db:"name" json:"name"`
	Address     string    `db:"address" json:"address"`
	AddressLat  float64   `db:"address_lat" json:"address_lat"`
	AddressLng  float64   `db:"address_lng" json:"address_lng"`
	City        string    `db:"city" json:"city"`
	Region      string    `db:"region" json:"region"`
	Province    string    `db:"province" json:"province"`
	PostalCode  string    `db:"postal_code" json:"postal_code"`
	CountryCode string    `db:"country_code" json:"country_code"`
	Images      []string  `db:"images" json:"images"`
	Publish     bool      `db:"publish" json:"publish"`
	DateCreated time.Time `db:"date_created" json:"date_created"`
	DateModifed time.Time `db:"date_modified" json:"date_modified"`
}

// EVSE is one charging unit installed at a location.
type EVSE struct {
	UID           string    `db:"uid" json:"uid"`
	EvseID        string    `db:"evse_id" json:"evse_id"`
	SerialNumber  string    `db:"serial_number" json:"serial_number"`
	MeterType     string    `db:"meter_type" json:"meter_type"`
	Status        string    `db:"status" json:"status"`
	CPOLocationID int64     `db:"cpo_location_id" json:"cpo_location_id"`
	DateCreated   time.Time `db:"date_created" json:"date_created"`
}

// Connector is a single plug on an EVSE. ConnectorID is the 1-based
// position within its EVSE; RateSetting is derived from the EVSE's kWh.
type Connector struct {
	ID               int64     `db:"id" json:"id"`
	EvseUID          string    `db:"evse_uid" json:"evse_uid"`
	ConnectorID      int       `db:"connector_id" json:"connector_id"`
	Standard         string    `db:"standard" json:"standard"`
	Format           string    `db:"format" json:"format"`
	PowerType        string    `db:"power_type" json:"power_type"`
	MaxVoltage       float64   `db:"max_voltage" json:"max_voltage"`
	MaxAmperage      float64   `db:"max_amperage" json:"max_amperage"`
	MaxElectricPower float64   `db:"max_electric_power" json:"max_electric_power"`
	ConnectorType    string    `db:"connector_type" json:"connector_type"`
	RateSetting      string    `db:"rate_setting" json:"rate_setting"`
	Status           string    `db:"status" json:"status"`
	DateCreated      time.Time `db:"date_created" json:"date_created"`
	DateModified     time.Time `db:"date_modified" json:"date_modified"`
}

// LookupCode is one row of a reference table (facilities, parking
// types, parking restrictions, capabilities, payment types).
type LookupCode struct {
	ID          int64  `db:"id" json:"id"`
	Code        string `db:"code" json:"code"`
	Description string `db:"description" json:"description,omitempty"`
}

// ConnectorType is the reference table backing the marketplace filter
// screen; it is read-only for this service.
type ConnectorType struct {
	ID          int64  `db:"id" json:"id"`
	Code        string `db:"code" json:"code"`
	Description string `db:"description" json:"description,omitempty"`
}

type ProvinceCount struct {
	Province       string `db:"province" json:"province"`
	TotalLocations int64  `db:"total_locations" json:"total_locations"`
}
