package filters

import (
	"context"
	"testing"

	"github.com/adriandotdev/emsp-v2/internal/domain"
	"github.com/adriandotdev/emsp-v2/internal/pkg/store"
)

type fakeStore struct {
	store.Store
}

func (fakeStore) GetConnectorTypes(context.Context) ([]domain.ConnectorType, error) {
	return []domain.ConnectorType{{ID: 1, Code: "TYPE_2"}}, nil
}

func (fakeStore) GetFacilities(context.Context) ([]domain.LookupCode, error) {
	return []domain.LookupCode{
		{ID: 1, Code: "CAFE"},
		{ID: 2, Code: "CINEMA"},
		{ID: 3, Code: "ATM"},
		{ID: 4, Code: "WIFI"},
		{ID: 5, Code: "RESTROOM"},
	}, nil
}

func (fakeStore) GetCapabilities(context.Context) ([]domain.LookupCode, error) {
	return []domain.LookupCode{{ID: 30, Code: "QR_READER"}}, nil
}

func (fakeStore) GetPaymentTypes(context.Context) ([]domain.LookupCode, error) {
	return []domain.LookupCode{{ID: 40, Code: "GCASH"}}, nil
}

func (fakeStore) GetParkingTypes(context.Context) ([]domain.LookupCode, error) {
	return []domain.LookupCode{{ID: 10, Code: "INDOOR"}}, nil
}

func (fakeStore) GetProvinces(context.Context) ([]domain.ProvinceCount, error) {
	return []domain.ProvinceCount{{Province: "Batangas", TotalLocations: 3}}, nil
}

func (fakeStore) GetCities(context.Context) ([]string, error) {
	return []string{"Lipa", "Makati"}, nil
}

func TestGetFiltersSplitsFacilitiesAndAmenities(t *testing.T) {
	svc := NewFiltersService(fakeStore{})

	filters, err := svc.GetFilters(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantFacilities := map[string]bool{"CAFE": true, "ATM": true, "RESTROOM": true}
	if len(filters.Facilities) != len(wantFacilities) {
		t.Fatalf("facilities = %+v, want %d entries", filters.Facilities, len(wantFacilities))
	}
	for _, row := range filters.Facilities {
		if !wantFacilities[row.Code] {
			t.Errorf("%q classified as facility", row.Code)
		}
	}

	wantAmenities := map[string]bool{"CINEMA": true, "WIFI": true}
	if len(filters.Amenities) != len(wantAmenities) {
		t.Fatalf("amenities = %+v, want %d entries", filters.Amenities, len(wantAmenities))
	}
	for _, row := range filters.Amenities {
		if !wantAmenities[row.Code] {
			t.Errorf("%q classified as amenity", row.Code)
		}
	}

	if len(filters.ConnectorTypes) != 1 || len(filters.Provinces) != 1 || len(filters.Cities) != 2 {
		t.Errorf("filters = %+v, missing dimensions", filters)
	}
}
