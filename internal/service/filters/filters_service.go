package filters

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/adriandotdev/emsp-v2/internal/domain"
	"github.com/adriandotdev/emsp-v2/internal/pkg/store"
)

// facilityNames are the facility codes presented under "facilities";
// every other facility row is presented as an amenity.
var facilityNames = map[string]struct{}{
	"ATM":         {},
	"CAFE":        {},
	"RESTAURANTS": {},
	"RESTROOM":    {},
	"SHOPS":       {},
}

// Filters is the full catalogue the mobile client filters locations by.
type Filters struct {
	ConnectorTypes []domain.ConnectorType `json:"connector_types"`
	Facilities     []domain.LookupCode    `json:"facilities"`
	Amenities      []domain.LookupCode    `json:"amenities"`
	Capabilities   []domain.LookupCode    `json:"capabilities"`
	PaymentTypes   []domain.LookupCode    `json:"payment_types"`
	ParkingTypes   []domain.LookupCode    `json:"parking_types"`
	Provinces      []domain.ProvinceCount `json:"provinces"`
	Cities         []string               `json:"cities"`
}

type Service struct {
	store store.Store
}

func NewFiltersService(store store.Store) *Service {
	return &Service{store: store}
}

// GetFilters loads every filter dimension concurrently.
func (s *Service) GetFilters(ctx context.Context) (*Filters, error) {
	var (
		filters    Filters
		facilities []domain.LookupCode
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		filters.ConnectorTypes, err = s.store.GetConnectorTypes(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		facilities, err = s.store.GetFacilities(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		filters.Capabilities, err = s.store.GetCapabilities(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		filters.PaymentTypes, err = s.store.GetPaymentTypes(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		filters.ParkingTypes, err = s.store.GetParkingTypes(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		filters.Provinces, err = s.store.GetProvinces(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		filters.Cities, err = s.store.GetCities(groupCtx)
		return err
	})

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("load filters: %w", err)
	}

	for _, row := range facilities {
		if _, ok := facilityNames[row.Code]; ok {
			filters.Facilities = append(filters.Facilities, row)
		} else {
			filters.Amenities = append(filters.Amenities, row)
		}
	}

	return &filters, nil
}

func (s *Service) GetCitiesByProvince(ctx context.Context, province string) ([]string, error) {
	cities, err := s.store.GetCitiesByProvince(ctx, province)
	if err != nil {
		return nil, fmt.Errorf("store.GetCitiesByProvince: %w", err)
	}
	return cities, nil
}
