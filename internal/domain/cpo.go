package domain

import "time"

// CPO is a Charge Point Operator: the tenant owning locations and
// EVSEs. PartyID is a short generated uppercase identifier, collision
// checked at registration and immutable afterwards.
type CPO struct {
	ID            int64     `db:"id" json:"id"`
	UserID        int64     `db:"user_id" json:"user_id"`
	PartyID       string    `db:"party_id" json:"party_id"`
	CPOOwnerName  string    `db:"cpo_owner_name" json:"cpo_owner_name"`
	ContactName   string    `db:"contact_name" json:"contact_name"`
	ContactNumber string    `db:"contact_number" json:"contact_number"`
	ContactEmail  string    `db:"contact_email" json:"contact_email"`
	OCPPReady     bool      `db:"ocpp_ready" json:"ocpp_ready"`
	Logo          string    `db:"logo" json:"logo"`
	TokenC        string    `db:"token_c" json:"-"`
	DateCreated   time.Time `db:"date_created" json:"date_created"`
	DateModified  time.Time `db:"date_modified" json:"date_modified"`
}

// CPODetails is the public projection returned by the details endpoint.
type CPODetails struct {
	PartyID       string `db:"party_id" json:"party_id"`
	CPOOwnerName  string `db:"cpo_owner_name" json:"cpo_owner_name"`
	ContactName   string `db:"contact_name" json:"contact_name"`
	ContactNumber string `db:"contact_number" json:"contact_number"`
	ContactEmail  string `db:"contact_email" json:"contact_email"`
	Logo          string `db:"logo" json:"logo"`
	TokenC        string `db:"token_c" json:"token_c"`
}

// PendingImportCounts summarizes CSV rows staged but not yet registered
// for a CPO.
type PendingImportCounts struct {
	PendingLocations int64 `db:"pending_locations" json:"pending_locations"`
	PendingEVSEs     int64 `db:"pending_evses" json:"pending_evses"`
}
