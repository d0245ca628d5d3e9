package store

import (
	"context"

	"github.com/adriandotdev/emsp-v2/internal/domain"
)

func (s *store) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := builder().
		Select(
			"u.id", "u.username", "u.password_hash", "u.date_created",
			"o.id AS cpo_owner_id", "o.party_id",
		).
		From(tableUsers + " u").
		Join(tableCPOOwners + " o ON o.user_id = u.id").
		Where("LOWER(u.username) = LOWER(?)", username)

	var user domain.User
	if err := s.pool.Getx(ctx, &user, query); err != nil {
		return nil, wrapErr(err)
	}

	return &user, nil
}
