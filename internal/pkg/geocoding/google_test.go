package geocoding

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adriandotdev/emsp-v2/internal/pkg/constants"
)

const lipaResponse = `{
	"results": [{
		"address_components": [
			{"long_name": "Lipa", "short_name": "Lipa", "types": ["locality", "political"]},
			{"long_name": "Batangas", "short_name": "Batangas", "types": ["administrative_area_level_2", "political"]},
			{"long_name": "Calabarzon", "short_name": "Calabarzon", "types": ["administrative_area_level_1", "political"]},
			{"long_name": "4217", "short_name": "4217", "types": ["postal_code"]}
		],
		"geometry": {"location": {"lat": 14.0860746, "lng": 121.1571632}},
		"formatted_address": "8 Leviste St, Lipa, Batangas, Philippines"
	}]
}`

func stubServer(t *testing.T, response string, wantParam string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if wantParam != "" && r.URL.Query().Get(wantParam) == "" {
			t.Errorf("missing query param %q in %s", wantParam, r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(response))
	}))
}

func TestGeocodeExtractsComponents(t *testing.T) {
	server := stubServer(t, lipaResponse, "address")
	defer server.Close()

	geocoder := NewGoogleWithBaseURL("test-key", server.URL)
	result, err := geocoder.Geocode(context.Background(), "8 Leviste St, Lipa")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.City != "Lipa" {
		t.Errorf("city = %q, want Lipa", result.City)
	}
	if result.Region != "CAL" {
		t.Errorf("region = %q, want CAL (truncated Calabarzon)", result.Region)
	}
	if result.Province != "Batangas" {
		t.Errorf("province = %q, want Batangas", result.Province)
	}
	if result.PostalCode != "4217" {
		t.Errorf("postal code = %q, want 4217", result.PostalCode)
	}
	if result.Lat != 14.0860746 || result.Lng != 121.1571632 {
		t.Errorf("coordinates = %v,%v", result.Lat, result.Lng)
	}
}

func TestGeocodeNoResults(t *testing.T) {
	server := stubServer(t, `{"results": []}`, "")
	defer server.Close()

	geocoder := NewGoogleWithBaseURL("test-key", server.URL)
	if _, err := geocoder.Geocode(context.Background(), "nowhere"); !errors.Is(err, constants.ErrLocationNotFound) {
		t.Fatalf("err = %v, want %v", err, constants.ErrLocationNotFound)
	}
}

func TestReverseGeocodeSendsLatLng(t *testing.T) {
	server := stubServer(t, lipaResponse, "latlng")
	defer server.Close()

	geocoder := NewGoogleWithBaseURL("test-key", server.URL)
	result, err := geocoder.ReverseGeocode(context.Background(), 14.0860746, 121.1571632)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.City != "Lipa" {
		t.Errorf("city = %q, want Lipa", result.City)
	}
}

func TestGeocodeRetriesServerErrors(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(lipaResponse))
	}))
	defer server.Close()

	geocoder := NewGoogleWithBaseURL("test-key", server.URL)
	result, err := geocoder.Geocode(context.Background(), "8 Leviste St, Lipa")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want a retry after the first failure", calls)
	}
	if result.Region != "CAL" {
		t.Errorf("region = %q, want CAL", result.Region)
	}
}

func TestShortRegion(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Calabarzon", "CAL"},
		{"NCR", "NCR"},
		{"I", "I"},
	}

	for _, tc := range cases {
		if got := shortRegion(tc.in); got != tc.want {
			t.Errorf("shortRegion(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
