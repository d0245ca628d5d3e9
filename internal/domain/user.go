package domain

import "time"

// User is an account that can authenticate against the service. CPO
// accounts reference their cpo_owners row.
type User struct {
	ID           int64     `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CPOOwnerID   int64     `db:"cpo_owner_id" json:"cpo_owner_id"`
	PartyID      string    `db:"party_id" json:"party_id"`
	DateCreated  time.Time `db:"date_created" json:"date_created"`
}
