package domain

// LocationPayload is one entry of a registration batch, whether it
// arrived via the webhook JSON body or was assembled from CSV rows.
// Reference lists carry either codes (webhook, v1 CSV) or numeric ids
// rendered as strings (v2 CSV); the resolver handles both.
type LocationPayload struct {
	Name                string        `json:"name" validate:"required,max=255"`
	Address             string        `json:"address" validate:"required"`
	Lat                 *float64      `json:"lat,omitempty"`
	Lng                 *float64      `json:"lng,omitempty"`
	EVSEs               []EVSEPayload `json:"evses" validate:"dive"`
	Facilities          []string      `json:"facilities"`
	ParkingTypes        []string      `json:"parking_types"`
	ParkingRestrictions []string      `json:"parking_restrictions"`
}

type EVSEPayload struct {
	UID          string             `json:"uid" validate:"required,max=64"`
	Status       string             `json:"status"`
	MeterType    string             `json:"meter_type" validate:"omitempty,oneof=AC DC"`
	KWH          float64            `json:"kwh"`
	Connectors   []ConnectorPayload `json:"connectors" validate:"dive"`
	Capabilities []string           `json:"capabilities"`
	PaymentTypes []string           `json:"payment_types"`
}

type ConnectorPayload struct {
	Standard         string  `json:"standard" validate:"required"`
	Format           string  `json:"format" validate:"required"`
	PowerType        string  `json:"power_type" validate:"required"`
	MaxVoltage       float64 `json:"max_voltage"`
	MaxAmperage      float64 `json:"max_amperage"`
	MaxElectricPower float64 `json:"max_electric_power"`
}

// RegisterLocationsRequest is the webhook body.
type RegisterLocationsRequest struct {
	Locations []LocationPayload `json:"locations" validate:"required,min=1,dive"`
}

// RegistrationResult is the per-entry success value of a batch.
type RegistrationResult struct {
	LocationID int64 `json:"location_id"`
}

// RegisterCPORequest is the CPO onboarding body. Contact number formats
// follow the marketplace's local conventions.
type RegisterCPORequest struct {
	Username      string `json:"username" validate:"required,max=64"`
	CPOOwnerName  string `json:"cpo_owner_name" validate:"required,max=255"`
	ContactName   string `json:"contact_name" validate:"required,max=255"`
	ContactNumber string `json:"contact_number" validate:"required,ph_mobile"`
	ContactEmail  string `json:"contact_email" validate:"required,email"`
	OCPPReady     *bool  `json:"ocpp_ready" validate:"required"`
	Logo          string `json:"logo"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	PartyID      string `json:"party_id"`
}
