package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/adriandotdev/emsp-v2/internal/domain"
	"github.com/adriandotdev/emsp-v2/internal/pkg/constants"
	"github.com/adriandotdev/emsp-v2/internal/pkg/store"
	"github.com/adriandotdev/emsp-v2/internal/pkg/utils"
)

type Service struct {
	store store.Store
}

func NewAuthService(store store.Store) *Service {
	return &Service{store: store}
}

// Login verifies the operator account credentials and issues an access
// and refresh token pair carrying the CPO identity.
func (s *Service) Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error) {
	user, err := s.store.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			return nil, constants.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("store.GetUserByUsername: %w", err)
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		return nil, constants.ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

// Refresh exchanges a valid refresh token for a new token pair. The
// account is reloaded so revoked users stop refreshing.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*domain.LoginResponse, error) {
	wrapper, err := utils.ParseAuthToken(refreshToken)
	if err != nil || !wrapper.Refresh {
		return nil, constants.ErrInvalidRefreshToken
	}

	user, err := s.store.GetUserByUsername(ctx, wrapper.Subject)
	if err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			return nil, constants.ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("store.GetUserByUsername: %w", err)
	}

	return s.issueTokens(user)
}

func (s *Service) issueTokens(user *domain.User) (*domain.LoginResponse, error) {
	claims := func() *utils.AuthTokenWrapper {
		w := &utils.AuthTokenWrapper{
			UserID:     user.ID,
			CPOOwnerID: user.CPOOwnerID,
			PartyID:    user.PartyID,
		}
		w.Subject = user.Username
		return w
	}

	accessToken, err := utils.GenerateAuthToken(claims())
	if err != nil {
		return nil, fmt.Errorf("utils.GenerateAuthToken: %w", err)
	}

	refreshToken, err := utils.GenerateRefreshToken(claims())
	if err != nil {
		return nil, fmt.Errorf("utils.GenerateRefreshToken: %w", err)
	}

	return &domain.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		PartyID:      user.PartyID,
	}, nil
}
