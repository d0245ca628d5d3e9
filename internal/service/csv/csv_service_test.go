package csv

import (
	"errors"
	"strings"
	"testing"

	"github.com/adriandotdev/emsp-v2/internal/pkg/constants"
)

const legacyHeader = "location,address,lat,lng,station_id,status,meter_type,kwh,standard,format,power_type,max_voltage,max_amperage,max_electric_power,facilities,parking_types,parking_restrictions,capabilities,payment_types"

const v2Header = "location,address,lat,lng,evse_sn,kwh,connectors,format,power_type,max_voltage,max_amperage,max_electric_power,facilities,parking_types,capabilities,payment_types"

func TestParseLegacyGroupsRows(t *testing.T) {
	file := strings.Join([]string{
		legacyHeader,
		`Store A,8 Leviste St,14.08,121.15,evse-001,AVAILABLE,AC,7.4,IEC_62196_T2,SOCKET,AC_1_PHASE,230,32,7400,"[""CAFE""]","[""INDOOR""]","[]","[""QR_READER""]","[""GCASH""]"`,
		`Store A,8 Leviste St,14.08,121.15,evse-001,AVAILABLE,AC,7.4,CHADEMO,CABLE,AC_1_PHASE,230,32,7400,"[""CAFE""]","[""INDOOR""]","[]","[""QR_READER""]","[""GCASH""]"`,
		`Store B,Ayala Ave,14.55,121.02,evse-002,AVAILABLE,DC,50,CCS,CABLE,DC,400,125,50000,"[]","[]","[]","[]","[]"`,
	}, "\n")

	svc := &Service{}
	locations, err := svc.Parse(strings.NewReader(file), VersionLegacy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(locations) != 2 {
		t.Fatalf("parsed %d locations, want 2", len(locations))
	}

	storeA := locations[0]
	if storeA.Name != "Store A" || len(storeA.EVSEs) != 1 {
		t.Fatalf("store A = %+v, want one evse", storeA)
	}
	if len(storeA.EVSEs[0].Connectors) != 2 {
		t.Errorf("store A connectors = %d, want 2 from two rows", len(storeA.EVSEs[0].Connectors))
	}
	if storeA.EVSEs[0].Connectors[1].Standard != "CHADEMO" {
		t.Errorf("second connector standard = %q, want CHADEMO", storeA.EVSEs[0].Connectors[1].Standard)
	}
	if got := storeA.Facilities; len(got) != 1 || got[0] != "CAFE" {
		t.Errorf("facilities = %v, want [CAFE]", got)
	}

	storeB := locations[1]
	if storeB.EVSEs[0].MeterType != "DC" || storeB.EVSEs[0].KWH != 50 {
		t.Errorf("store B evse = %+v, want DC 50kwh", storeB.EVSEs[0])
	}
	if len(storeB.Facilities) != 0 {
		t.Errorf("empty facilities cell parsed as %v, want none", storeB.Facilities)
	}
}

func TestParseV2FansOutConnectors(t *testing.T) {
	file := strings.Join([]string{
		v2Header,
		`Store A,8 Leviste St,14.08,121.15,SN-100,22,"[""IEC_62196_T2"",""CHADEMO""]",CABLE,AC_3_PHASE,400,32,22000,"[1,2]","[10]","[30]","[40]"`,
		`Store A,8 Leviste St,14.08,121.15,SN-101,50,"[""CCS""]",CABLE,DC_FAST,400,125,50000,"[1,2]","[10]","[30]","[40]"`,
	}, "\n")

	svc := &Service{}
	locations, err := svc.Parse(strings.NewReader(file), Version2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(locations) != 1 {
		t.Fatalf("parsed %d locations, want 1", len(locations))
	}

	loc := locations[0]
	if len(loc.EVSEs) != 2 {
		t.Fatalf("evses = %d, want 2", len(loc.EVSEs))
	}
	if got := loc.Facilities; len(got) != 2 || got[0] != "1" || got[1] != "2" {
		t.Errorf("facility ids = %v, want [1 2]", got)
	}

	first := loc.EVSEs[0]
	if len(first.Connectors) != 2 {
		t.Fatalf("connectors = %d, want 2 fanned out standards", len(first.Connectors))
	}
	if first.Connectors[0].Standard != "IEC_62196_T2" || first.Connectors[1].Standard != "CHADEMO" {
		t.Errorf("standards = %q/%q", first.Connectors[0].Standard, first.Connectors[1].Standard)
	}
	if first.Connectors[0].MaxElectricPower != 22000 {
		t.Errorf("shared electric power = %v, want 22000", first.Connectors[0].MaxElectricPower)
	}
	if first.MeterType != "AC" {
		t.Errorf("meter type = %q, want AC from AC_3_PHASE", first.MeterType)
	}
	if loc.EVSEs[1].MeterType != "DC" {
		t.Errorf("meter type = %q, want DC from DC_FAST", loc.EVSEs[1].MeterType)
	}
}

func TestParseRejectsWrongColumnCount(t *testing.T) {
	file := strings.Join([]string{
		legacyHeader,
		"Store A,8 Leviste St,14.08",
	}, "\n")

	svc := &Service{}
	if _, err := svc.Parse(strings.NewReader(file), VersionLegacy); !errors.Is(err, constants.ErrInvalidCSVFormat) {
		t.Fatalf("err = %v, want %v", err, constants.ErrInvalidCSVFormat)
	}
}

func TestParseRejectsEmptyFile(t *testing.T) {
	svc := &Service{}
	if _, err := svc.Parse(strings.NewReader(""), VersionLegacy); !errors.Is(err, constants.ErrInvalidCSVFormat) {
		t.Fatalf("err = %v, want %v", err, constants.ErrInvalidCSVFormat)
	}
}

func TestUnquoteCellStripsWrappingQuotes(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`'["CAFE"]'`, `["CAFE"]`},
		{`["CAFE"]`, `["CAFE"]`},
		{`  '[1,2]' `, `[1,2]`},
		{``, ``},
	}

	for _, tc := range cases {
		if got := unquoteCell(tc.in); got != tc.want {
			t.Errorf("unquoteCell(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
