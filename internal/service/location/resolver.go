package location

import (
	"context"
	"fmt"
	"strconv"

	"github.com/adriandotdev/emsp-v2/internal/domain"
	"github.com/adriandotdev/emsp-v2/internal/pkg/constants"
)

type refCategory int

const (
	categoryFacilities refCategory = iota
	categoryParkingTypes
	categoryParkingRestrictions
	categoryCapabilities
	categoryPaymentTypes
)

var categoryErrors = map[refCategory]*constants.CodedError{
	categoryFacilities:          constants.ErrInvalidFacilities,
	categoryParkingTypes:        constants.ErrInvalidParkingTypes,
	categoryParkingRestrictions: constants.ErrInvalidParkingRestricts,
	categoryCapabilities:        constants.ErrInvalidCapabilities,
	categoryPaymentTypes:        constants.ErrInvalidPaymentTypes,
}

// lookups holds the five reference tables, loaded once per batch.
type lookups struct {
	tables map[refCategory][]domain.LookupCode
	mode   ResolveMode
}

func (s *Service) loadLookups(ctx context.Context, mode ResolveMode) (*lookups, error) {
	facilities, err := s.store.GetFacilities(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.GetFacilities: %w", err)
	}
	parkingTypes, err := s.store.GetParkingTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.GetParkingTypes: %w", err)
	}
	parkingRestrictions, err := s.store.GetParkingRestrictions(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.GetParkingRestrictions: %w", err)
	}
	capabilities, err := s.store.GetCapabilities(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.GetCapabilities: %w", err)
	}
	paymentTypes, err := s.store.GetPaymentTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.GetPaymentTypes: %w", err)
	}

	return &lookups{
		tables: map[refCategory][]domain.LookupCode{
			categoryFacilities:          facilities,
			categoryParkingTypes:        parkingTypes,
			categoryParkingRestrictions: parkingRestrictions,
			categoryCapabilities:        capabilities,
			categoryPaymentTypes:        paymentTypes,
		},
		mode: mode,
	}, nil
}

// resolve maps every value of the input set to its internal id. The
// first unresolvable value fails the whole set with the category's
// INVALID_* error; no partial mapping is ever returned.
func (r *lookups) resolve(category refCategory, values []string) ([]int64, error) {
	if len(values) == 0 {
		return nil, nil
	}

	table := r.tables[category]
	ids := make([]int64, 0, len(values))

	for _, value := range values {
		id, ok := r.lookupOne(table, value)
		if !ok {
			return nil, categoryErrors[category]
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func (r *lookups) lookupOne(table []domain.LookupCode, value string) (int64, bool) {
	if r.mode == ResolveByID {
		wanted, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return 0, false
		}
		for _, row := range table {
			if row.ID == wanted {
				return row.ID, true
			}
		}
		return 0, false
	}

	for _, row := range table {
		if row.Code == value {
			return row.ID, true
		}
	}
	return 0, false
}
