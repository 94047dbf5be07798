package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"creatorlab/internal/model"
	"creatorlab/internal/validation"
)

func TestAuth_SessionRoundTrip(t *testing.T) {
	s := NewAuthService("test-secret", nil)
	resp, err := s.StartSession(model.SessionRequest{Name: " Alice "})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	require.Equal(t, "Alice", resp.Author.Name)
	require.Equal(t, "https://i.pravatar.cc/150?u=Alice", resp.Author.AvatarURL)

	claims, err := s.ValidateToken(resp.Token)
	require.NoError(t, err)
	require.Equal(t, resp.Author, s.Author(claims))
}

func TestAuth_RejectsBadInput(t *testing.T) {
	s := NewAuthService("test-secret", nil)
	_, err := s.StartSession(model.SessionRequest{Name: ""})
	_, ok := validation.AsValidationError(err)
	require.True(t, ok)
}

func TestAuth_RejectsForeignTokens(t *testing.T) {
	s := NewAuthService("test-secret", nil)
	other := NewAuthService("other-secret", nil)
	resp, err := other.StartSession(model.SessionRequest{Name: "Mallory"})
	require.NoError(t, err)

	_, err = s.ValidateToken(resp.Token)
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = s.ValidateToken("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &model.CreatorClaims{Name: "Mallory"})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = s.ValidateToken(raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuth_ExpiredToken(t *testing.T) {
	s := NewAuthService("test-secret", nil)
	s.now = func() time.Time { return time.Now().Add(-8 * 24 * time.Hour) }
	resp, err := s.StartSession(model.SessionRequest{Name: "Alice"})
	require.NoError(t, err)

	s.now = time.Now
	_, err = s.ValidateToken(resp.Token)
	require.ErrorIs(t, err, ErrInvalidToken)
}
