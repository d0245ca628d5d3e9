package location

import (
	"errors"
	"testing"

	"github.com/adriandotdev/emsp-v2/internal/domain"
	"github.com/adriandotdev/emsp-v2/internal/pkg/constants"
)

func testLookups(mode ResolveMode) *lookups {
	return &lookups{
		mode: mode,
		tables: map[refCategory][]domain.LookupCode{
			categoryFacilities: {
				{ID: 1, Code: "CAFE"},
				{ID: 2, Code: "ATM"},
			},
			categoryCapabilities: {
				{ID: 30, Code: "QR_READER"},
			},
		},
	}
}

func TestResolveByCode(t *testing.T) {
	refs := testLookups(ResolveByCode)

	ids, err := refs.resolve(categoryFacilities, []string{"ATM", "CAFE"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 2 || ids[0] != 2 || ids[1] != 1 {
		t.Errorf("ids = %v, want [2 1]", ids)
	}
}

func TestResolveByID(t *testing.T) {
	refs := testLookups(ResolveByID)

	ids, err := refs.resolve(categoryCapabilities, []string{"30"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 1 || ids[0] != 30 {
		t.Errorf("ids = %v, want [30]", ids)
	}
}

func TestResolveEmptyListIsNil(t *testing.T) {
	refs := testLookups(ResolveByCode)

	ids, err := refs.resolve(categoryFacilities, nil)
	if err != nil || ids != nil {
		t.Errorf("resolve(nil) = %v, %v, want nil, nil", ids, err)
	}
}

func TestResolveUnknownValueFailsWholeSet(t *testing.T) {
	cases := []struct {
		name     string
		category refCategory
		values   []string
		want     *constants.CodedError
	}{
		{"unknown facility code", categoryFacilities, []string{"CAFE", "HELIPAD"}, constants.ErrInvalidFacilities},
		{"unknown capability id", categoryCapabilities, []string{"999"}, constants.ErrInvalidCapabilities},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mode := ResolveByCode
			if tc.category == categoryCapabilities {
				mode = ResolveByID
			}
			refs := testLookups(mode)

			ids, err := refs.resolve(tc.category, tc.values)
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
			if ids != nil {
				t.Errorf("partial ids %v returned on failure", ids)
			}
		})
	}
}

func TestResolveByIDRejectsNonNumeric(t *testing.T) {
	refs := testLookups(ResolveByID)

	if _, err := refs.resolve(categoryFacilities, []string{"CAFE"}); !errors.Is(err, constants.ErrInvalidFacilities) {
		t.Fatalf("err = %v, want %v", err, constants.ErrInvalidFacilities)
	}
}
