package utils

import (
	"time"

	"github.com/adriandotdev/emsp-v2/internal/pkg/constants"
	"github.com/golang-jwt/jwt"
	"github.com/spf13/viper"
)

// AuthTokenWrapper is the claim set carried by access and refresh tokens.
type AuthTokenWrapper struct {
	UserID     int64  `json:"user_id"`
	CPOOwnerID int64  `json:"cpo_owner_id"`
	PartyID    string `json:"party_id"`
	Secret     string `json:"secret,omitempty"`
	Refresh    bool   `json:"refresh,omitempty"`
	jwt.StandardClaims
}

func GenerateAuthToken(w *AuthTokenWrapper) (string, error) {
	return generateToken(w, 1*time.Hour)
}

func GenerateRefreshToken(w *AuthTokenWrapper) (string, error) {
	w.Refresh = true
	return generateToken(w, 24*time.Hour)
}

func generateToken(w *AuthTokenWrapper, ttl time.Duration) (string, error) {
	now := time.Now()
	w.IssuedAt = now.Unix()
	w.ExpiresAt = now.Add(ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, w)
	return token.SignedString([]byte(viper.GetString(constants.ViperJWTSecret)))
}

func ParseAuthToken(raw string) (*AuthTokenWrapper, error) {
	wrapper := &AuthTokenWrapper{}
	token, err := jwt.ParseWithClaims(raw, wrapper, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, constants.ErrInvalidAccessToken
		}
		return []byte(viper.GetString(constants.ViperJWTSecret)), nil
	})
	if err != nil || !token.Valid {
		return nil, constants.ErrInvalidAccessToken
	}

	return wrapper, nil
}
