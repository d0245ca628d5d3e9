package api

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/adriandotdev/emsp-v2/internal/api/controller"
	appgraphql "github.com/adriandotdev/emsp-v2/internal/graphql"
	"github.com/adriandotdev/emsp-v2/internal/pkg/constants"
	"github.com/adriandotdev/emsp-v2/internal/pkg/geocoding"
	"github.com/adriandotdev/emsp-v2/internal/pkg/logger"
	"github.com/adriandotdev/emsp-v2/internal/pkg/mailer"
	"github.com/adriandotdev/emsp-v2/internal/pkg/store"
	authService "github.com/adriandotdev/emsp-v2/internal/service/auth"
	cpoService "github.com/adriandotdev/emsp-v2/internal/service/cpo"
	csvService "github.com/adriandotdev/emsp-v2/internal/service/csv"
	filtersService "github.com/adriandotdev/emsp-v2/internal/service/filters"
	locationService "github.com/adriandotdev/emsp-v2/internal/service/location"
)

type APIService struct {
	router *echo.Echo
	store  store.Store
}

func (svc *APIService) Serve(addr string) {
	logger.Fatal(context.Background(), svc.router.Start(addr))
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func NewAPIService(st store.Store, geocoder geocoding.Geocoder, mail mailer.Mailer) (*APIService, error) {
	svc := &APIService{router: echo.New(), store: st}

	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.Use(middleware.Logger())
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	locations := locationService.NewLocationService(st, geocoder)
	cntrl := controller.NewController(
		cpoService.NewCPOService(st, mail),
		locations,
		csvService.NewCSVService(st, locations),
		filtersService.NewFiltersService(st),
		authService.NewAuthService(st),
	)

	emsp := svc.router.Group("/emsp/api/v1/cpo")
	emsp.POST("/register", cntrl.RegisterCPO, svc.BasicTokenVerifier)
	emsp.POST("/login", cntrl.Login, svc.BasicTokenVerifier)
	emsp.POST("/refresh", cntrl.Refresh)
	emsp.GET("/details", cntrl.GetCPODetails, svc.AccessTokenVerifier)
	emsp.GET("/logo", cntrl.GetCPOLogo, svc.AccessTokenVerifier)
	emsp.PUT("/logo", cntrl.UpdateCPOLogo, svc.AccessTokenVerifier)
	emsp.GET("/uploads/pending", cntrl.GetPendingImportCounts, svc.AccessTokenVerifier)

	ocpi := svc.router.Group("/ocpi/cpo")
	ocpi.POST("/api/v1/locations/uploads/csv", cntrl.UploadCSV, svc.AccessTokenVerifier)
	ocpi.POST("/api/v1/locations/uploads/csv/stage", cntrl.StageCSV, svc.AccessTokenVerifier)
	ocpi.POST("/api/v1/webhook/locations/:country_code/:party_id", cntrl.RegisterLocations, svc.CPOTokenVerifier)
	ocpi.GET("/2.2/filters", cntrl.GetFilters, svc.BasicTokenVerifier)
	ocpi.GET("/2.2/filters/cities/:province", cntrl.GetCitiesByProvince, svc.BasicTokenVerifier)

	graphHandler, err := appgraphql.NewHandler(st)
	if err != nil {
		return nil, err
	}
	ocpi.POST("/graphql", func(ctx echo.Context) error {
		cpoID, ok := ctx.Get(constants.CtxKeyCPOID).(int64)
		if !ok {
			return constants.ErrUnauthorized
		}

		req := ctx.Request()
		req = req.WithContext(appgraphql.WithCPOOwnerID(req.Context(), cpoID))
		graphHandler.ServeHTTP(ctx.Response(), req)
		return nil
	}, svc.AccessTokenVerifier)

	return svc, nil
}
