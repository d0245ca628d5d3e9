package graphql

import (
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/adriandotdev/emsp-v2/internal/domain"
	"github.com/adriandotdev/emsp-v2/internal/pkg/store"
)

const (
	defaultLimit  = 10
	defaultOffset = 0
)

// buildSchema wires the read-only location graph: locations own evses
// and reference lists, evses own connectors.
func buildSchema(st store.Store) (graphql.Schema, error) {
	lookupType := graphql.NewObject(graphql.ObjectConfig{
		Name: "LOOKUP",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.Int},
			"code":        &graphql.Field{Type: graphql.String},
			"description": &graphql.Field{Type: graphql.String},
		},
	})

	connectorType := graphql.NewObject(graphql.ObjectConfig{
		Name: "CONNECTOR",
		Fields: graphql.Fields{
			"id":                 &graphql.Field{Type: graphql.Int},
			"evse_uid":           &graphql.Field{Type: graphql.String},
			"connector_id":       &graphql.Field{Type: graphql.Int},
			"standard":           &graphql.Field{Type: graphql.String},
			"format":             &graphql.Field{Type: graphql.String},
			"power_type":         &graphql.Field{Type: graphql.String},
			"max_voltage":        &graphql.Field{Type: graphql.Float},
			"max_amperage":       &graphql.Field{Type: graphql.Float},
			"max_electric_power": &graphql.Field{Type: graphql.Float},
			"rate_setting":       &graphql.Field{Type: graphql.String},
			"status":             &graphql.Field{Type: graphql.String},
		},
	})

	evseType := graphql.NewObject(graphql.ObjectConfig{
		Name: "EVSE",
		Fields: graphql.Fields{
			"uid":             &graphql.Field{Type: graphql.String},
			"evse_id":         &graphql.Field{Type: graphql.String},
			"serial_number":   &graphql.Field{Type: graphql.String},
			"status":          &graphql.Field{Type: graphql.String},
			"meter_type":      &graphql.Field{Type: graphql.String},
			"cpo_location_id": &graphql.Field{Type: graphql.Int},
			"connectors": &graphql.Field{
				Type: graphql.NewList(connectorType),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					evse, ok := p.Source.(*domain.EVSE)
					if !ok {
						return nil, fmt.Errorf("unexpected evse source %T", p.Source)
					}
					return st.GetConnectors(p.Context, evse.UID)
				},
			},
			"capabilities": &graphql.Field{
				Type: graphql.NewList(lookupType),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					evse, ok := p.Source.(*domain.EVSE)
					if !ok {
						return nil, fmt.Errorf("unexpected evse source %T", p.Source)
					}
					return st.GetEVSECapabilities(p.Context, evse.UID)
				},
			},
			"payment_types": &graphql.Field{
				Type: graphql.NewList(lookupType),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					evse, ok := p.Source.(*domain.EVSE)
					if !ok {
						return nil, fmt.Errorf("unexpected evse source %T", p.Source)
					}
					return st.GetEVSEPaymentTypes(p.Context, evse.UID)
				},
			},
		},
	})

	locationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "LOCATIONS",
		Fields: graphql.Fields{
			"id":           &graphql.Field{Type: graphql.Int},
			"cpo_owner_id": &graphql.Field{Type: graphql.Int},
			"name":         &graphql.Field{Type: graphql.String},
			"address":      &graphql.Field{Type: graphql.String},
			"address_lat":  &graphql.Field{Type: graphql.Float},
			"address_lng":  &graphql.Field{Type: graphql.Float},
			"city":         &graphql.Field{Type: graphql.String},
			"region":       &graphql.Field{Type: graphql.String},
			"province":     &graphql.Field{Type: graphql.String},
			"country_code": &graphql.Field{Type: graphql.String},
			"postal_code":  &graphql.Field{Type: graphql.String},
			"evses": &graphql.Field{
				Type: graphql.NewList(evseType),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					loc, ok := p.Source.(*domain.Location)
					if !ok {
						return nil, fmt.Errorf("unexpected location source %T", p.Source)
					}
					return st.GetEVSEs(p.Context, loc.ID)
				},
			},
			"facilities": &graphql.Field{
				Type: graphql.NewList(lookupType),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					loc, ok := p.Source.(*domain.Location)
					if !ok {
						return nil, fmt.Errorf("unexpected location source %T", p.Source)
					}
					return st.GetLocationFacilities(p.Context, loc.ID)
				},
			},
			"parking_types": &graphql.Field{
				Type: graphql.NewList(lookupType),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					loc, ok := p.Source.(*domain.Location)
					if !ok {
						return nil, fmt.Errorf("unexpected location source %T", p.Source)
					}
					return st.GetLocationParkingTypes(p.Context, loc.ID)
				},
			},
			"parking_restrictions": &graphql.Field{
				Type: graphql.NewList(lookupType),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					loc, ok := p.Source.(*domain.Location)
					if !ok {
						return nil, fmt.Errorf("unexpected location source %T", p.Source)
					}
					return st.GetLocationParkingRestrictions(p.Context, loc.ID)
				},
			},
		},
	})

	rootQuery := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"locations": &graphql.Field{
				Type: graphql.NewList(locationType),
				Args: graphql.FieldConfigArgument{
					"limit":  &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: defaultLimit},
					"offset": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: defaultOffset},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					cpoID, err := cpoOwnerIDFromContext(p.Context)
					if err != nil {
						return nil, err
					}

					limit, _ := p.Args["limit"].(int)
					offset, _ := p.Args["offset"].(int)
					if limit <= 0 {
						limit = defaultLimit
					}
					if offset < 0 {
						offset = defaultOffset
					}

					return st.GetLocations(p.Context, cpoID, uint64(limit), uint64(offset))
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: rootQuery})
}
