package location

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/adriandotdev/emsp-v2/internal/domain"
	"github.com/adriandotdev/emsp-v2/internal/pkg/constants"
	"github.com/adriandotdev/emsp-v2/internal/pkg/geocoding"
	"github.com/adriandotdev/emsp-v2/internal/pkg/logger"
	"github.com/adriandotdev/emsp-v2/internal/pkg/metrics"
	"github.com/adriandotdev/emsp-v2/internal/pkg/store"
)

// ResolveMode selects how reference lists in a payload are interpreted:
// human-readable codes (webhook, v1 CSV) or numeric ids (v2 CSV).
type ResolveMode int

const (
	ResolveByCode ResolveMode = iota
	ResolveByID
)

type Service struct {
	store    store.Store
	geocoder geocoding.Geocoder
}

func NewLocationService(store store.Store, geocoder geocoding.Geocoder) *Service {
	return &Service{store: store, geocoder: geocoder}
}

// preparedEntry is the side-effect-free output of the prepare phase:
// everything a location entry needs before any row is written.
type preparedEntry struct {
	payload            domain.LocationPayload
	existingLocationID int64 // non-zero when the dedup check hit
	geo                *geocoding.Result
	facilityIDs        []int64
	parkingTypeIDs     []int64
	parkingRestrIDs    []int64
	evses              []preparedEVSE
}

type preparedEVSE struct {
	payload       domain.EVSEPayload
	capabilityIDs []int64
	paymentIDs    []int64
	rateSetting   string
}

// RegisterAllLocationsAndEVSEs registers a whole batch atomically.
// Geocoding and reference resolution run concurrently per entry; all
// writes then happen sequentially on a single transaction. Any entry
// failure rolls back the entire batch, including entries that
// succeeded individually.
func (s *Service) RegisterAllLocationsAndEVSEs(ctx context.Context, partyID string, locations []domain.LocationPayload, mode ResolveMode) ([]domain.RegistrationResult, error) {
	batchID := uuid.NewString()

	cpoOwnerID, err := s.store.GetCPOOwnerIDByPartyID(ctx, partyID)
	if err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			return nil, constants.ErrPartyIDNotFound
		}
		return nil, fmt.Errorf("store.GetCPOOwnerIDByPartyID: %w", err)
	}

	refs, err := s.loadLookups(ctx, mode)
	if err != nil {
		return nil, err
	}

	entries := make([]*preparedEntry, len(locations))
	entryErrs := make([]error, len(locations))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, payload := range locations {
		i, payload := i, payload
		eg.Go(func() error {
			entry, prepErr := s.prepareEntry(egCtx, cpoOwnerID, payload, refs, mode)
			if prepErr != nil {
				// Captured as a value so the remaining entries still
				// finish before the batch decision.
				entryErrs[i] = prepErr
				return nil
			}
			entries[i] = entry
			return nil
		})
	}
	_ = eg.Wait()

	tx, err := s.store.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.Begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	results := make([]domain.RegistrationResult, len(locations))
	insertedByName := make(map[string]int64, len(locations))

	for i, entry := range entries {
		if entryErrs[i] != nil {
			continue
		}

		locationID, writeErr := s.writeEntry(ctx, tx, cpoOwnerID, entry, insertedByName)
		if writeErr != nil {
			entryErrs[i] = writeErr
			continue
		}
		results[i] = domain.RegistrationResult{LocationID: locationID}
	}

	if batchErr := collectBatchError(locations, entryErrs); batchErr != nil {
		logger.Errorf(ctx, "batch %s: one or more operations failed, transaction rolled back: %s", batchID, batchErr.Error())
		metrics.BatchesRolledBack.Inc()
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			logger.Errorf(ctx, "batch %s: rollback: %s", batchID, rbErr.Error())
		}
		return nil, batchErr
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("tx.Commit: %w", err)
	}
	metrics.BatchesCommitted.Inc()
	logger.Infof(ctx, "batch %s: transaction committed, %d location(s)", batchID, len(results))

	return results, nil
}

// prepareEntry performs the read-only part of one entry's registration:
// dedup check, geocoding, and reference resolution. It never writes.
func (s *Service) prepareEntry(ctx context.Context, cpoOwnerID int64, payload domain.LocationPayload, refs *lookups, mode ResolveMode) (*preparedEntry, error) {
	entry := &preparedEntry{payload: payload}

	existing, err := s.store.SearchLocationByName(ctx, cpoOwnerID, payload.Name)
	switch {
	case err == nil:
		entry.existingLocationID = existing.ID
	case errors.Is(err, constants.ErrDBNotFound):
		// New location: geocode and resolve its reference lists.
		if entry.geo, err = s.geocode(ctx, payload, mode); err != nil {
			return nil, err
		}
		if entry.facilityIDs, err = refs.resolve(categoryFacilities, payload.Facilities); err != nil {
			return nil, err
		}
		if entry.parkingTypeIDs, err = refs.resolve(categoryParkingTypes, payload.ParkingTypes); err != nil {
			return nil, err
		}
		if entry.parkingRestrIDs, err = refs.resolve(categoryParkingRestrictions, payload.ParkingRestrictions); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("store.SearchLocationByName: %w", err)
	}

	for _, evse := range payload.EVSEs {
		prepared := preparedEVSE{
			payload:     evse,
			rateSetting: decimal.NewFromFloat(evse.KWH).String() + " KW-H",
		}
		if prepared.capabilityIDs, err = refs.resolve(categoryCapabilities, evse.Capabilities); err != nil {
			return nil, err
		}
		if prepared.paymentIDs, err = refs.resolve(categoryPaymentTypes, evse.PaymentTypes); err != nil {
			return nil, err
		}
		entry.evses = append(entry.evses, prepared)
	}

	return entry, nil
}

func (s *Service) geocode(ctx context.Context, payload domain.LocationPayload, mode ResolveMode) (*geocoding.Result, error) {
	var (
		result *geocoding.Result
		err    error
	)
	if mode == ResolveByID && payload.Lat != nil && payload.Lng != nil {
		result, err = s.geocoder.ReverseGeocode(ctx, *payload.Lat, *payload.Lng)
	} else {
		result, err = s.geocoder.Geocode(ctx, payload.Address)
	}
	if err != nil {
		if errors.Is(err, constants.ErrLocationNotFound) {
			metrics.GeocodeFailures.Inc()
			return nil, constants.ErrLocationNotFound
		}
		return nil, fmt.Errorf("geocoder: %w", err)
	}

	return result, nil
}

// writeEntry performs the write part of one entry on the shared
// transaction. insertedByName lets a later entry in the same batch
// reuse a location inserted by an earlier one.
func (s *Service) writeEntry(ctx context.Context, tx store.Querier, cpoOwnerID int64, entry *preparedEntry, insertedByName map[string]int64) (int64, error) {
	nameKey := strings.ToLower(entry.payload.Name)

	locationID := entry.existingLocationID
	if locationID == 0 {
		if id, ok := insertedByName[nameKey]; ok {
			locationID = id
		}
	}

	if locationID == 0 {
		var err error
		locationID, err = s.store.RegisterLocation(ctx, tx, store.RegisterLocationParams{
			CPOOwnerID: cpoOwnerID,
			Name:       entry.payload.Name,
			Address:    entry.geo.FormattedAddress,
			Lat:        entry.geo.Lat,
			Lng:        entry.geo.Lng,
			City:       entry.geo.City,
			Region:     entry.geo.Region,
			Province:   entry.geo.Province,
			PostalCode: entry.geo.PostalCode,
		})
		if err != nil {
			return 0, fmt.Errorf("store.RegisterLocation: %w", err)
		}
		insertedByName[nameKey] = locationID
		metrics.LocationsRegistered.Inc()

		// Empty association lists must not issue insert statements.
		if len(entry.facilityIDs) > 0 {
			rows := make([]store.LocationFacilityRow, 0, len(entry.facilityIDs))
			for _, id := range entry.facilityIDs {
				rows = append(rows, store.LocationFacilityRow{FacilityID: id, LocationID: locationID})
			}
			if err = s.store.AddLocationFacilities(ctx, tx, rows); err != nil {
				return 0, fmt.Errorf("store.AddLocationFacilities: %w", err)
			}
		}
		if len(entry.parkingTypeIDs) > 0 {
			rows := make([]store.LocationParkingTypeRow, 0, len(entry.parkingTypeIDs))
			for i, id := range entry.parkingTypeIDs {
				rows = append(rows, store.LocationParkingTypeRow{
					ParkingTypeID: id,
					LocationID:    locationID,
					Tag:           entry.payload.ParkingTypes[i],
				})
			}
			if err = s.store.AddLocationParkingTypes(ctx, tx, rows); err != nil {
				return 0, fmt.Errorf("store.AddLocationParkingTypes: %w", err)
			}
		}
		if len(entry.parkingRestrIDs) > 0 {
			rows := make([]store.LocationParkingRestrictionRow, 0, len(entry.parkingRestrIDs))
			for _, id := range entry.parkingRestrIDs {
				rows = append(rows, store.LocationParkingRestrictionRow{ParkingRestrictionID: id, LocationID: locationID})
			}
			if err = s.store.AddLocationParkingRestrictions(ctx, tx, rows); err != nil {
				return 0, fmt.Errorf("store.AddLocationParkingRestrictions: %w", err)
			}
		}
	}

	for _, evse := range entry.evses {
		if err := s.writeEVSE(ctx, tx, locationID, evse); err != nil {
			return 0, err
		}
	}

	return locationID, nil
}

func (s *Service) writeEVSE(ctx context.Context, tx store.Querier, locationID int64, evse preparedEVSE) error {
	if len(evse.payload.Connectors) == 0 {
		return constants.ErrEVSEWithoutConnector
	}

	result, err := s.store.RegisterEVSE(ctx, tx, store.RegisterEVSEParams{
		UID:          evse.payload.UID,
		SerialNumber: evse.payload.UID,
		MeterType:    evse.payload.MeterType,
		LocationID:   locationID,
	})
	if err != nil {
		return fmt.Errorf("store.RegisterEVSE: %w", err)
	}
	if result.BadRequest() {
		return constants.NewBadRequest(result.Status + ":" + evse.payload.UID)
	}
	metrics.EVSEsRegistered.Inc()

	rows := make([]store.ConnectorRow, 0, len(evse.payload.Connectors))
	for _, connector := range evse.payload.Connectors {
		rows = append(rows, store.ConnectorRow{
			Standard:         connector.Standard,
			Format:           connector.Format,
			PowerType:        connector.PowerType,
			MaxVoltage:       connector.MaxVoltage,
			MaxAmperage:      connector.MaxAmperage,
			MaxElectricPower: connector.MaxElectricPower,
			RateSetting:      evse.rateSetting,
		})
	}
	if err = s.store.AddConnectors(ctx, tx, evse.payload.UID, rows); err != nil {
		return fmt.Errorf("store.AddConnectors: %w", err)
	}

	if len(evse.capabilityIDs) > 0 {
		capRows := make([]store.EVSECapabilityRow, 0, len(evse.capabilityIDs))
		for _, id := range evse.capabilityIDs {
			capRows = append(capRows, store.EVSECapabilityRow{CapabilityID: id, EvseUID: evse.payload.UID})
		}
		if err = s.store.AddEVSECapabilities(ctx, tx, capRows); err != nil {
			return fmt.Errorf("store.AddEVSECapabilities: %w", err)
		}
	}
	if len(evse.paymentIDs) > 0 {
		payRows := make([]store.EVSEPaymentTypeRow, 0, len(evse.paymentIDs))
		for _, id := range evse.paymentIDs {
			payRows = append(payRows, store.EVSEPaymentTypeRow{EvseUID: evse.payload.UID, PaymentTypeID: id})
		}
		if err = s.store.AddEVSEPaymentTypes(ctx, tx, payRows); err != nil {
			return fmt.Errorf("store.AddEVSEPaymentTypes: %w", err)
		}
	}

	return nil
}
