package model

import "github.com/golang-jwt/jwt/v5"

// CreatorClaims are JWT claims carrying the author identity
type CreatorClaims struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
	jwt.RegisteredClaims
}

// SessionRequest is the request body for starting a creator session
type SessionRequest struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
}

// SessionResponse is returned after a session is issued
type SessionResponse struct {
	Token  string `json:"token"`
	Author Author `json:"author"`
}
