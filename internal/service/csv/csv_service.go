package csv

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/adriandotdev/emsp-v2/internal/domain"
	"github.com/adriandotdev/emsp-v2/internal/pkg/constants"
	"github.com/adriandotdev/emsp-v2/internal/pkg/store"
	locationService "github.com/adriandotdev/emsp-v2/internal/service/location"
)

// Version selects the CSV layout: the legacy 19-column format carrying
// one connector per row and reference codes, or the 16-column format
// carrying one EVSE per row, a JSON list of connector standards, and
// numeric reference ids.
type Version int

const (
	VersionLegacy Version = 1
	Version2      Version = 2
)

const (
	legacyColumnCount = 19
	v2ColumnCount     = 16
)

type Service struct {
	store     store.Store
	locations *locationService.Service
}

func NewCSVService(store store.Store, locations *locationService.Service) *Service {
	return &Service{store: store, locations: locations}
}

// Parse reads a CSV payload (header row skipped) into registration
// payloads, grouping rows by location and EVSE.
func (s *Service) Parse(r io.Reader, version Version) ([]domain.LocationPayload, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	if _, err := reader.Read(); err != nil { // header
		if err == io.EOF {
			return nil, constants.ErrInvalidCSVFormat
		}
		return nil, fmt.Errorf("csv header: %w", err)
	}

	var records [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, constants.ErrInvalidCSVFormat
		}
		records = append(records, record)
	}

	switch version {
	case VersionLegacy:
		return assembleLegacy(records)
	case Version2:
		return assembleV2(records)
	default:
		return nil, constants.ErrInvalidCSVFormat
	}
}

// Import parses the file and registers every location it describes in
// one atomic batch. v2 files resolve reference lists by numeric id.
func (s *Service) Import(ctx context.Context, partyID string, r io.Reader, version Version) ([]domain.RegistrationResult, error) {
	locations, err := s.Parse(r, version)
	if err != nil {
		return nil, err
	}

	mode := locationService.ResolveByCode
	if version == Version2 {
		mode = locationService.ResolveByID
	}

	return s.locations.RegisterAllLocationsAndEVSEs(ctx, partyID, locations, mode)
}

// Stage parses a v2 file and records its rows in the staging table so
// pending-import counts reflect the upload before registration.
func (s *Service) Stage(ctx context.Context, cpoOwnerID int64, r io.Reader) ([]domain.LocationPayload, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	if _, err := reader.Read(); err != nil {
		return nil, constants.ErrInvalidCSVFormat
	}

	var (
		records [][]string
		staged  []store.TemporaryImportRow
	)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil || len(record) != v2ColumnCount {
			return nil, constants.ErrInvalidCSVFormat
		}
		records = append(records, record)

		lat, _ := strconv.ParseFloat(record[2], 64)
		lng, _ := strconv.ParseFloat(record[3], 64)
		kwh, _ := strconv.ParseFloat(record[5], 64)
		maxVoltage, _ := strconv.ParseFloat(record[9], 64)
		maxAmperage, _ := strconv.ParseFloat(record[10], 64)
		maxPower, _ := strconv.ParseFloat(record[11], 64)

		staged = append(staged, store.TemporaryImportRow{
			CPOOwnerID:       cpoOwnerID,
			LocationName:     record[0],
			Address:          record[1],
			AddressLat:       lat,
			AddressLng:       lng,
			EvseSN:           record[4],
			KWH:              kwh,
			Connectors:       record[6],
			ConnectorFormat:  record[7],
			PowerType:        record[8],
			MaxVoltage:       maxVoltage,
			MaxAmperage:      maxAmperage,
			MaxElectricPower: maxPower,
			Facilities:       record[12],
			ParkingTypes:     record[13],
			Capabilities:     record[14],
			PaymentTypes:     record[15],
		})
	}

	if err := s.store.InsertTemporaryImportRows(ctx, staged); err != nil {
		return nil, fmt.Errorf("store.InsertTemporaryImportRows: %w", err)
	}

	return assembleV2(records)
}

// assembleLegacy groups 19-column rows: one connector per row, EVSEs
// keyed by station id, locations keyed by name+address.
func assembleLegacy(records [][]string) ([]domain.LocationPayload, error) {
	var locations []domain.LocationPayload

	findLocation := func(name, address string) *domain.LocationPayload {
		for i := range locations {
			if locations[i].Name == name && locations[i].Address == address {
				return &locations[i]
			}
		}
		return nil
	}

	for _, record := range records {
		if len(record) != legacyColumnCount {
			return nil, constants.ErrInvalidCSVFormat
		}

		name, address := record[0], record[1]
		lat, _ := strconv.ParseFloat(record[2], 64)
		lng, _ := strconv.ParseFloat(record[3], 64)

		loc := findLocation(name, address)
		if loc == nil {
			facilities, err := parseStringList(record[14])
			if err != nil {
				return nil, constants.ErrInvalidCSVFormat
			}
			parkingTypes, err := parseStringList(record[15])
			if err != nil {
				return nil, constants.ErrInvalidCSVFormat
			}
			parkingRestrictions, err := parseStringList(record[16])
			if err != nil {
				return nil, constants.ErrInvalidCSVFormat
			}

			locations = append(locations, domain.LocationPayload{
				Name:                name,
				Address:             address,
				Lat:                 &lat,
				Lng:                 &lng,
				Facilities:          facilities,
				ParkingTypes:        parkingTypes,
				ParkingRestrictions: parkingRestrictions,
			})
			loc = &locations[len(locations)-1]
		}

		uid := record[4]
		evse := findEVSE(loc.EVSEs, uid)
		if evse == nil {
			kwh, _ := strconv.ParseFloat(record[7], 64)
			capabilities, err := parseStringList(record[17])
			if err != nil {
				return nil, constants.ErrInvalidCSVFormat
			}
			paymentTypes, err := parseStringList(record[18])
			if err != nil {
				return nil, constants.ErrInvalidCSVFormat
			}

			loc.EVSEs = append(loc.EVSEs, domain.EVSEPayload{
				UID:          uid,
				Status:       record[5],
				MeterType:    record[6],
				KWH:          kwh,
				Capabilities: capabilities,
				PaymentTypes: paymentTypes,
			})
			evse = &loc.EVSEs[len(loc.EVSEs)-1]
		}

		maxVoltage, _ := strconv.ParseFloat(record[11], 64)
		maxAmperage, _ := strconv.ParseFloat(record[12], 64)
		maxPower, _ := strconv.ParseFloat(record[13], 64)

		evse.Connectors = append(evse.Connectors, domain.ConnectorPayload{
			Standard:         record[8],
			Format:           record[9],
			PowerType:        record[10],
			MaxVoltage:       maxVoltage,
			MaxAmperage:      maxAmperage,
			MaxElectricPower: maxPower,
		})
	}

	return locations, nil
}

// assembleV2 groups 16-column rows: one EVSE per row whose connectors
// fan out from a JSON list of standards sharing one electrical rating.
func assembleV2(records [][]string) ([]domain.LocationPayload, error) {
	var locations []domain.LocationPayload

	findLocation := func(name, address string) *domain.LocationPayload {
		for i := range locations {
			if locations[i].Name == name && locations[i].Address == address {
				return &locations[i]
			}
		}
		return nil
	}

	for _, record := range records {
		if len(record) != v2ColumnCount {
			return nil, constants.ErrInvalidCSVFormat
		}

		name, address := record[0], record[1]
		lat, _ := strconv.ParseFloat(record[2], 64)
		lng, _ := strconv.ParseFloat(record[3], 64)

		loc := findLocation(name, address)
		if loc == nil {
			facilities, err := parseIDList(record[12])
			if err != nil {
				return nil, constants.ErrInvalidCSVFormat
			}
			parkingTypes, err := parseIDList(record[13])
			if err != nil {
				return nil, constants.ErrInvalidCSVFormat
			}

			locations = append(locations, domain.LocationPayload{
				Name:         name,
				Address:      address,
				Lat:          &lat,
				Lng:          &lng,
				Facilities:   facilities,
				ParkingTypes: parkingTypes,
			})
			loc = &locations[len(locations)-1]
		}

		kwh, _ := strconv.ParseFloat(record[5], 64)
		standards, err := parseStringList(record[6])
		if err != nil {
			return nil, constants.ErrInvalidCSVFormat
		}
		capabilities, err := parseIDList(record[14])
		if err != nil {
			return nil, constants.ErrInvalidCSVFormat
		}
		paymentTypes, err := parseIDList(record[15])
		if err != nil {
			return nil, constants.ErrInvalidCSVFormat
		}

		maxVoltage, _ := strconv.ParseFloat(record[9], 64)
		maxAmperage, _ := strconv.ParseFloat(record[10], 64)
		maxPower, _ := strconv.ParseFloat(record[11], 64)
		powerType := record[8]

		evse := domain.EVSEPayload{
			UID:          record[4],
			Status:       "AVAILABLE",
			MeterType:    meterTypeOf(powerType),
			KWH:          kwh,
			Capabilities: capabilities,
			PaymentTypes: paymentTypes,
		}
		for _, standard := range standards {
			evse.Connectors = append(evse.Connectors, domain.ConnectorPayload{
				Standard:         standard,
				Format:           record[7],
				PowerType:        powerType,
				MaxVoltage:       maxVoltage,
				MaxAmperage:      maxAmperage,
				MaxElectricPower: maxPower,
			})
		}
		loc.EVSEs = append(loc.EVSEs, evse)
	}

	return locations, nil
}

func findEVSE(evses []domain.EVSEPayload, uid string) *domain.EVSEPayload {
	for i := range evses {
		if evses[i].UID == uid {
			return &evses[i]
		}
	}
	return nil
}

func meterTypeOf(powerType string) string {
	if strings.HasPrefix(strings.ToUpper(powerType), "DC") {
		return "DC"
	}
	return "AC"
}

// parseStringList decodes a JSON array cell. Spreadsheet exports wrap
// the array in an extra pair of quotes, which is stripped first.
func parseStringList(cell string) ([]string, error) {
	cell = unquoteCell(cell)
	if cell == "" {
		return nil, nil
	}

	var values []string
	if err := sonic.UnmarshalString(cell, &values); err != nil {
		return nil, err
	}
	return values, nil
}

// parseIDList decodes a JSON array of numeric ids into the string form
// the id-based resolver consumes.
func parseIDList(cell string) ([]string, error) {
	cell = unquoteCell(cell)
	if cell == "" {
		return nil, nil
	}

	var ids []int64
	if err := sonic.UnmarshalString(cell, &ids); err != nil {
		return nil, err
	}

	values := make([]string, 0, len(ids))
	for _, id := range ids {
		values = append(values, strconv.FormatInt(id, 10))
	}
	return values, nil
}

func unquoteCell(cell string) string {
	cell = strings.TrimSpace(cell)
	if len(cell) >= 2 {
		first, last := cell[0], cell[len(cell)-1]
		if (first == '\'' && last == '\'') || (first == '"' && last == '"') {
			cell = cell[1 : len(cell)-1]
		}
	}
	return cell
}
