package store

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/adriandotdev/emsp-v2/internal/domain"
	"github.com/adriandotdev/emsp-v2/internal/pkg/store/xpgx"
)

type (
	Pool    = xpgx.Pool
	Querier = xpgx.Querier
)

// ProcResult is the decoded outcome of a stored-procedure write. The
// procedures report validation failures (duplicate EVSE uid, unknown
// location id) as rows instead of SQL errors.
type ProcResult struct {
	Status     string `db:"status"`
	StatusType string `db:"status_type"`
}

func (r ProcResult) BadRequest() bool { return r.StatusType == "bad_request" }

// Store is the persistence API of the onboarding service. Write
// operations that participate in a registration batch take a Querier so
// they can run on the orchestrator's transaction.
type Store interface {
	Begin(ctx context.Context) (pgx.Tx, error)

	// users / auth
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// cpo owners
	CheckCPOExistsByName(ctx context.Context, ownerName string) (bool, error)
	PartyIDExists(ctx context.Context, partyID string) (bool, error)
	GetCPOOwnerIDByPartyID(ctx context.Context, partyID string) (int64, error)
	RegisterCPO(ctx context.Context, params RegisterCPOParams) (ProcResult, error)
	GetCPODetailsByID(ctx context.Context, cpoID int64) (*domain.CPODetails, error)
	GetCPOLogoByID(ctx context.Context, cpoID int64) (string, error)
	UpdateCPOLogoByID(ctx context.Context, cpoID int64, logo string) error
	GetPendingImportCounts(ctx context.Context, cpoID int64) (*domain.PendingImportCounts, error)

	// locations / evses
	SearchLocationByName(ctx context.Context, cpoOwnerID int64, name string) (*domain.Location, error)
	RegisterLocation(ctx context.Context, db Querier, params RegisterLocationParams) (int64, error)
	AddLocationFacilities(ctx context.Context, db Querier, rows []LocationFacilityRow) error
	AddLocationParkingTypes(ctx context.Context, db Querier, rows []LocationParkingTypeRow) error
	AddLocationParkingRestrictions(ctx context.Context, db Querier, rows []LocationParkingRestrictionRow) error
	RegisterEVSE(ctx context.Context, db Querier, params RegisterEVSEParams) (ProcResult, error)
	AddConnectors(ctx context.Context, db Querier, evseUID string, rows []ConnectorRow) error
	AddEVSECapabilities(ctx context.Context, db Querier, rows []EVSECapabilityRow) error
	AddEVSEPaymentTypes(ctx context.Context, db Querier, rows []EVSEPaymentTypeRow) error

	// lookup tables
	GetFacilities(ctx context.Context) ([]domain.LookupCode, error)
	GetParkingTypes(ctx context.Context) ([]domain.LookupCode, error)
	GetParkingRestrictions(ctx context.Context) ([]domain.LookupCode, error)
	GetCapabilities(ctx context.Context) ([]domain.LookupCode, error)
	GetPaymentTypes(ctx context.Context) ([]domain.LookupCode, error)
	GetConnectorTypes(ctx context.Context) ([]domain.ConnectorType, error)

	// read projections
	GetLocations(ctx context.Context, cpoOwnerID int64, limit, offset uint64) ([]*domain.Location, error)
	GetEVSEs(ctx context.Context, locationID int64) ([]*domain.EVSE, error)
	GetConnectors(ctx context.Context, evseUID string) ([]*domain.Connector, error)
	GetLocationFacilities(ctx context.Context, locationID int64) ([]domain.LookupCode, error)
	GetLocationParkingTypes(ctx context.Context, locationID int64) ([]domain.LookupCode, error)
	GetLocationParkingRestrictions(ctx context.Context, locationID int64) ([]domain.LookupCode, error)
	GetEVSECapabilities(ctx context.Context, evseUID string) ([]domain.LookupCode, error)
	GetEVSEPaymentTypes(ctx context.Context, evseUID string) ([]domain.LookupCode, error)

	// filter projections
	GetProvinces(ctx context.Context) ([]domain.ProvinceCount, error)
	GetCities(ctx context.Context) ([]string, error)
	GetCitiesByProvince(ctx context.Context, province string) ([]string, error)

	// csv staging
	InsertTemporaryImportRows(ctx context.Context, rows []TemporaryImportRow) error
}

type store struct {
	pool Pool
}

func NewStore(pool Pool) Store {
	return &store{pool}
}

func (s *store) Begin(ctx context.Context) (pgx.Tx, error) {
	return s.pool.Begin(ctx)
}
