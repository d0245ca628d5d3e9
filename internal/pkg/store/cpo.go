package store

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/adriandotdev/emsp-v2/internal/domain"
)

// RegisterCPOParams mirrors the emsp_register_cpo stored procedure
// signature.
type RegisterCPOParams struct {
	Username      string
	Password      string
	PartyID       string
	CPOOwnerName  string
	ContactName   string
	ContactNumber string
	ContactEmail  string
	OCPPReady     bool
	TokenC        string
	Logo          string
}

func (s *store) CheckCPOExistsByName(ctx context.Context, ownerName string) (bool, error) {
	query := builder().Select("1").
		From(tableCPOOwners).
		Where("LOWER(cpo_owner_name) = LOWER(?)", ownerName).
		Limit(1)

	sql, args, err := query.ToSql()
	if err != nil {
		return false, err
	}

	var one int
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return false, wrapErr(err)
	}
	defer rows.Close()

	if !rows.Next() {
		return false, rows.Err()
	}
	if err = rows.Scan(&one); err != nil {
		return false, err
	}

	return true, nil
}

func (s *store) PartyIDExists(ctx context.Context, partyID string) (bool, error) {
	query := builder().Select("COUNT(*)").
		From(tableCPOOwners).
		Where(squirrel.Eq{"party_id": partyID})

	sql, args, err := query.ToSql()
	if err != nil {
		return false, err
	}

	var count int64
	if err = s.pool.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return false, wrapErr(err)
	}

	return count > 0, nil
}

func (s *store) GetCPOOwnerIDByPartyID(ctx context.Context, partyID string) (int64, error) {
	query := builder().Select("id").
		From(tableCPOOwners).
		Where(squirrel.Eq{"party_id": partyID})

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err = s.pool.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, wrapErr(err)
	}

	return id, nil
}

func (s *store) RegisterCPO(ctx context.Context, params RegisterCPOParams) (ProcResult, error) {
	logo := params.Logo
	if logo == "" {
		logo = "default.svg"
	}

	var result ProcResult
	err := s.pool.QueryRow(ctx,
		`SELECT status, status_type FROM emsp_register_cpo($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		params.Username,
		params.Password,
		params.PartyID,
		params.CPOOwnerName,
		params.ContactName,
		params.ContactNumber,
		params.ContactEmail,
		params.OCPPReady,
		params.TokenC,
		logo,
	).Scan(&result.Status, &result.StatusType)
	if err != nil {
		return ProcResult{}, wrapErr(err)
	}

	return result, nil
}

var cpoDetailsColumns = []string{
	"party_id", "cpo_owner_name", "contact_name",
	"contact_number", "contact_email", "logo", "token_c",
}

func (s *store) GetCPODetailsByID(ctx context.Context, cpoID int64) (*domain.CPODetails, error) {
	query := builder().Select(cpoDetailsColumns...).
		From(tableCPOOwners).
		Where(squirrel.Eq{"id": cpoID})

	var details domain.CPODetails
	if err := s.pool.Getx(ctx, &details, query); err != nil {
		return nil, wrapErr(err)
	}

	return &details, nil
}

func (s *store) GetCPOLogoByID(ctx context.Context, cpoID int64) (string, error) {
	query := builder().Select("logo").
		From(tableCPOOwners).
		Where(squirrel.Eq{"id": cpoID})

	sql, args, err := query.ToSql()
	if err != nil {
		return "", err
	}

	var logo string
	if err = s.pool.QueryRow(ctx, sql, args...).Scan(&logo); err != nil {
		return "", wrapErr(err)
	}

	return logo, nil
}

func (s *store) UpdateCPOLogoByID(ctx context.Context, cpoID int64, logo string) error {
	query := builder().Update(tableCPOOwners).
		Set("logo", logo).
		Set("date_modified", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": cpoID})

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = s.pool.Exec(ctx, sql, args...)
	return wrapErr(err)
}

func (s *store) GetPendingImportCounts(ctx context.Context, cpoID int64) (*domain.PendingImportCounts, error) {
	query := builder().
		Select(
			"COUNT(DISTINCT location_name) AS pending_locations",
			"COUNT(DISTINCT evse_sn) AS pending_evses",
		).
		From(tableCSVTemporary).
		Where(squirrel.Eq{"cpo_owner_id": cpoID})

	var counts domain.PendingImportCounts
	if err := s.pool.Getx(ctx, &counts, query); err != nil {
		return nil, wrapErr(err)
	}

	return &counts, nil
}
