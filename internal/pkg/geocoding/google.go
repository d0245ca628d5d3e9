package geocoding

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cenkalti/backoff/v4"

	"github.com/adriandotdev/emsp-v2/internal/pkg/constants"
)

// Result is the subset of a geocoder response the registration flow
// needs. Region is the first three letters of the upper-cased
// administrative_area_level_1 short name; this lossy heuristic is load
// bearing for downstream consumers and must not change.
type Result struct {
	Lat              float64
	Lng              float64
	City             string
	Region           string
	Province         string
	PostalCode       string
	FormattedAddress string
}

// Geocoder resolves free-text addresses or coordinate pairs into
// normalized address components.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*Result, error)
	ReverseGeocode(ctx context.Context, lat, lng float64) (*Result, error)
}

type googleGeocoder struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

const defaultBaseURL = "https://maps.googleapis.com/maps/api/geocode/json"

func NewGoogle(apiKey string) Geocoder {
	return &googleGeocoder{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
	}
}

// NewGoogleWithBaseURL exists for tests pointing at a stub server.
func NewGoogleWithBaseURL(apiKey, baseURL string) Geocoder {
	return &googleGeocoder{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

type googleResponse struct {
	Results []struct {
		AddressComponents []struct {
			LongName  string   `json:"long_name"`
			ShortName string   `json:"short_name"`
			Types     []string `json:"types"`
		} `json:"address_components"`
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
		FormattedAddress string `json:"formatted_address"`
	} `json:"results"`
}

func (g *googleGeocoder) Geocode(ctx context.Context, address string) (*Result, error) {
	return g.fetch(ctx, url.Values{"address": {address}, "key": {g.apiKey}})
}

func (g *googleGeocoder) ReverseGeocode(ctx context.Context, lat, lng float64) (*Result, error) {
	return g.fetch(ctx, url.Values{"latlng": {fmt.Sprintf("%f,%f", lat, lng)}, "key": {g.apiKey}})
}

func (g *googleGeocoder) fetch(ctx context.Context, params url.Values) (*Result, error) {
	var body []byte
	err := backoff.Retry(
		func() error {
			req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+params.Encode(), nil)
			if reqErr != nil {
				return backoff.Permanent(reqErr)
			}

			resp, httpErr := g.client.Do(req)
			if httpErr != nil {
				return fmt.Errorf("geocoding request: %w", httpErr)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("geocoding status code error: %d %s", resp.StatusCode, resp.Status)
			}

			body, httpErr = io.ReadAll(resp.Body)
			return httpErr
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(200*time.Millisecond), 3),
			ctx,
		),
	)
	if err != nil {
		return nil, err
	}

	var decoded googleResponse
	if err = sonic.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("geocoding response decode: %w", err)
	}

	if len(decoded.Results) == 0 || len(decoded.Results[0].AddressComponents) == 0 {
		return nil, constants.ErrLocationNotFound
	}

	first := decoded.Results[0]
	result := &Result{
		Lat:              first.Geometry.Location.Lat,
		Lng:              first.Geometry.Location.Lng,
		FormattedAddress: first.FormattedAddress,
	}

	var regionLong string
	for _, component := range first.AddressComponents {
		switch {
		case hasType(component.Types, "locality"):
			result.City = component.LongName
		case hasType(component.Types, "administrative_area_level_1"):
			result.Region = shortRegion(component.ShortName)
			regionLong = component.LongName
		case hasType(component.Types, "administrative_area_level_2"):
			result.Province = component.LongName
		case hasType(component.Types, "postal_code"):
			result.PostalCode = component.LongName
		}
	}

	// Some localities have no level-2 division; fall back to the long
	// region name so the province column is never empty.
	if result.Province == "" {
		result.Province = regionLong
	}

	return result, nil
}

func shortRegion(shortName string) string {
	region := strings.ToUpper(shortName)
	if len(region) > 3 {
		region = region[:3]
	}
	return strings.TrimSpace(region)
}

func hasType(types []string, want string) bool {
	for _, t := range types {
		if t == want {
			return true
		}
	}
	return false
}
