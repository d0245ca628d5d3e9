package controller

import (
	authService "github.com/adriandotdev/emsp-v2/internal/service/auth"
	cpoService "github.com/adriandotdev/emsp-v2/internal/service/cpo"
	csvService "github.com/adriandotdev/emsp-v2/internal/service/csv"
	filtersService "github.com/adriandotdev/emsp-v2/internal/service/filters"
	locationService "github.com/adriandotdev/emsp-v2/internal/service/location"
)

type Controller struct {
	cpo       *cpoService.Service
	locations *locationService.Service
	csv       *csvService.Service
	filters   *filtersService.Service
	auth      *authService.Service
}

func NewController(
	cpo *cpoService.Service,
	locations *locationService.Service,
	csv *csvService.Service,
	filters *filtersService.Service,
	auth *authService.Service,
) *Controller {
	return &Controller{
		cpo:       cpo,
		locations: locations,
		csv:       csv,
		filters:   filters,
		auth:      auth,
	}
}
