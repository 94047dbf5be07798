package service

import (
	"errors"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"creatorlab/internal/model"
	"creatorlab/internal/validation"
)

var ErrInvalidToken = errors.New("invalid or expired token")

const sessionTTL = 7 * 24 * time.Hour

// AuthService issues and validates creator session tokens
type AuthService struct {
	jwtSecret []byte
	validate  *validation.Validator
	now       func() time.Time
}

// NewAuthService creates a new auth service
func NewAuthService(secret string, v *validation.Validator) *AuthService {
	if secret == "" {
		secret = "super-secret-key-change-in-production"
	}
	if v == nil {
		v = validation.New()
	}
	return &AuthService{
		jwtSecret: []byte(secret),
		validate:  v,
		now:       time.Now,
	}
}

// StartSession validates the creator identity and returns a signed token
func (s *AuthService) StartSession(req model.SessionRequest) (*model.SessionResponse, error) {
	req, err := s.validate.Session(req)
	if err != nil {
		return nil, err
	}
	if req.AvatarURL == "" {
		req.AvatarURL = "https://i.pravatar.cc/150?u=" + url.QueryEscape(req.Name)
	}

	now := s.now()
	claims := &model.CreatorClaims{
		Name:      req.Name,
		AvatarURL: req.AvatarURL,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   req.Name,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &model.SessionResponse{
		Token:  tokenString,
		Author: model.Author{Name: req.Name, AvatarURL: req.AvatarURL},
	}, nil
}

// ValidateToken validates a creator JWT and returns claims
func (s *AuthService) ValidateToken(tokenString string) (*model.CreatorClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.CreatorClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.CreatorClaims)
	if !ok || !token.Valid || claims.Name == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// Author converts claims into the author identity they carry
func (s *AuthService) Author(claims *model.CreatorClaims) model.Author {
	return model.Author{Name: claims.Name, AvatarURL: claims.AvatarURL}
}
