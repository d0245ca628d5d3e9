package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/viper"

	"github.com/adriandotdev/emsp-v2/internal/domain"
	"github.com/adriandotdev/emsp-v2/internal/pkg/constants"
	"github.com/adriandotdev/emsp-v2/internal/pkg/store"
	"github.com/adriandotdev/emsp-v2/internal/pkg/utils"
)

type fakeStore struct {
	store.Store
	users map[string]*domain.User
}

func (f *fakeStore) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, constants.ErrDBNotFound
	}
	return user, nil
}

func testService() *Service {
	viper.Set(constants.ViperJWTSecret, "test-secret")
	return NewAuthService(&fakeStore{users: map[string]*domain.User{
		"testsolutions": {
			ID:           1,
			Username:     "testsolutions",
			PasswordHash: utils.HashPassword("secret123"),
			CPOOwnerID:   7,
			PartyID:      "TES",
		},
	}})
}

func TestLogin(t *testing.T) {
	svc := testService()

	resp, err := svc.Login(context.Background(), &domain.LoginRequest{
		Username: "testsolutions",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("token pair not issued")
	}
	if resp.PartyID != "TES" {
		t.Errorf("party id = %q, want TES", resp.PartyID)
	}

	token, err := utils.ParseAuthToken(resp.AccessToken)
	if err != nil {
		t.Fatalf("access token does not parse: %v", err)
	}
	if token.CPOOwnerID != 7 || token.Refresh {
		t.Errorf("claims = %+v, want cpo 7 non-refresh", token)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := testService()

	cases := []struct {
		name string
		req  domain.LoginRequest
	}{
		{"wrong password", domain.LoginRequest{Username: "testsolutions", Password: "nope"}},
		{"unknown user", domain.LoginRequest{Username: "ghost", Password: "secret123"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Login(context.Background(), &tc.req); !errors.Is(err, constants.ErrInvalidCredentials) {
				t.Fatalf("err = %v, want %v", err, constants.ErrInvalidCredentials)
			}
		})
	}
}

func TestRefresh(t *testing.T) {
	svc := testService()

	login, err := svc.Login(context.Background(), &domain.LoginRequest{
		Username: "testsolutions",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	resp, err := svc.Refresh(context.Background(), login.RefreshToken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.AccessToken == "" {
		t.Error("refresh issued no access token")
	}
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc := testService()

	login, err := svc.Login(context.Background(), &domain.LoginRequest{
		Username: "testsolutions",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if _, err := svc.Refresh(context.Background(), login.AccessToken); !errors.Is(err, constants.ErrInvalidRefreshToken) {
		t.Fatalf("err = %v, want %v", err, constants.ErrInvalidRefreshToken)
	}
}
