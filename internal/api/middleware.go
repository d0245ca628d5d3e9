package api

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/spf13/viper"

	"github.com/adriandotdev/emsp-v2/internal/pkg/constants"
	"github.com/adriandotdev/emsp-v2/internal/pkg/utils"
)

func bearerToken(ctx echo.Context) (string, bool) {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(header, "Bearer "), true
}

// BasicTokenVerifier guards the public onboarding and login endpoints
// with the marketplace's shared basic credentials.
func (svc *APIService) BasicTokenVerifier(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(echo.HeaderAuthorization)
		if !strings.HasPrefix(header, "Basic ") {
			return constants.ErrInvalidBasicToken
		}

		decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(header, "Basic "))
		if err != nil {
			return constants.ErrInvalidBasicToken
		}

		username, password, found := strings.Cut(string(decoded), ":")
		if !found {
			return constants.ErrInvalidBasicToken
		}

		wantUser := viper.GetString(constants.ViperBasicUsername)
		wantPass := viper.GetString(constants.ViperBasicPassword)
		if subtle.ConstantTimeCompare([]byte(username), []byte(wantUser)) != 1 ||
			subtle.ConstantTimeCompare([]byte(password), []byte(wantPass)) != 1 {
			return constants.ErrInvalidBasicToken
		}

		return next(ctx)
	}
}

// AccessTokenVerifier authenticates an operator session token and puts
// the CPO identity into the request context.
func (svc *APIService) AccessTokenVerifier(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		raw, ok := bearerToken(ctx)
		if !ok {
			return constants.ErrInvalidAccessToken
		}

		token, err := utils.ParseAuthToken(raw)
		if err != nil {
			return err
		}
		if token.Refresh {
			return constants.ErrInvalidAccessToken
		}

		ctx.Set(constants.CtxKeyUserID, token.UserID)
		ctx.Set(constants.CtxKeyCPOID, token.CPOOwnerID)
		ctx.Set(constants.CtxKeyPartyID, token.PartyID)

		return next(ctx)
	}
}

// CPOTokenVerifier guards the webhook: the bearer token must match the
// token_c issued to the CPO addressed by the :party_id path param.
func (svc *APIService) CPOTokenVerifier(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		raw, ok := bearerToken(ctx)
		if !ok {
			return constants.ErrInvalidCPOToken
		}

		partyID := ctx.Param("party_id")
		reqCtx := ctx.Request().Context()

		ownerID, err := svc.store.GetCPOOwnerIDByPartyID(reqCtx, partyID)
		if err != nil {
			if errors.Is(err, constants.ErrDBNotFound) {
				return constants.ErrPartyIDNotFound
			}
			return err
		}

		details, err := svc.store.GetCPODetailsByID(reqCtx, ownerID)
		if err != nil {
			return err
		}
		if subtle.ConstantTimeCompare([]byte(details.TokenC), []byte(raw)) != 1 {
			return constants.ErrInvalidCPOToken
		}

		ctx.Set(constants.CtxKeyCPOID, ownerID)
		ctx.Set(constants.CtxKeyPartyID, partyID)

		return next(ctx)
	}
}
