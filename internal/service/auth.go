package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"strconv"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"medpractice/doctor-dashboard/internal/domain"
)

// The single hard-coded dashboard identity.
const (
	sessionUserID   = 1
	sessionUserName = "Dr. Alice"
	tokenIssuer     = "doctor-dashboard"
)

// Login opens the session when password matches the demo password. The email is
// taken as given and becomes part of the session identity.
func (s *Store) Login(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	if !s.passwordMatches(password) {
		return nil, ErrInvalidCredentials
	}

	user := domain.User{ID: sessionUserID, Name: sessionUserName, Email: email}
	s.mu.Lock()
	s.session = &user
	s.mu.Unlock()

	return &domain.LoginResult{Token: s.token, User: user}, nil
}

// passwordMatches requires an exact match of the demo password before the bcrypt check.
func (s *Store) passwordMatches(password string) bool {
	digest := sha256.Sum256([]byte(password))
	if subtle.ConstantTimeCompare(digest[:], s.passwordDigest[:]) != 1 {
		return false
	}
	return bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) == nil
}

// Logout clears the session. It is safe to call when nobody is logged in.
func (s *Store) Logout() {
	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()
}

// CurrentUser returns the logged-in identity, or nil.
func (s *Store) CurrentUser() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return nil
	}
	u := *s.session
	return &u
}

// NewSessionToken renders the fixed session token. Without a secret the literal
// fallback is used; with one, the token is an HS256 JWT over constant claims, so it
// is the same string for the lifetime of the configuration. It is never validated.
func NewSessionToken(secret, fallback string) (string, error) {
	if secret == "" {
		if fallback == "" {
			fallback = DefaultToken
		}
		return fallback, nil
	}
	claims := jwt.RegisteredClaims{
		Subject: strconv.Itoa(sessionUserID),
		Issuer:  tokenIssuer,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
