// Package auth registers staff users and issues and verifies their bearer tokens.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"HospitalHub/models"
	"HospitalHub/store"
	"HospitalHub/util"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

const TokenType = "bearer"

type Service struct {
	staff  store.Staff
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
	cost   int
	now    func() time.Time
}

type Option func(*Service)

// WithClock replaces time.Now for token issuance and expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithBcryptCost(cost int) Option {
	return func(s *Service) { s.cost = cost }
}

func NewService(staff store.Staff, secret string, algorithm string, ttl time.Duration, opts ...Option) (*Service, error) {
	method := jwt.GetSigningMethod(algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}
	s := &Service{
		staff:  staff,
		secret: []byte(secret),
		method: method,
		ttl:    ttl,
		cost:   bcrypt.DefaultCost,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

/*
* Trim the username and email
* Hash the password
* Insert; the username index reports duplicates as a conflict
 */
func (s *Service) Register(ctx context.Context, in models.Register) error {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)
	if username == "" || email == "" || in.Password == "" {
		return util.InvalidArgument("username, email and password are required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return util.InvalidArgument("password is too long")
	}
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user := &models.Staff{
		Username:  username,
		Email:     email,
		Password:  string(hash),
		CreatedAt: s.now().UTC(),
	}
	if err := s.staff.Insert(ctx, user); err != nil {
		log.Error().Err(err).Str("username", username).Msg("Error from staff insert")
		return err
	}
	return nil
}

func (s *Service) IssueToken(ctx context.Context, username, password string) (*models.Token, error) {
	user, err := s.staff.FindByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, util.ErrNotFound) {
		return nil, util.Unauthorized("%s", util.INVALID_CREDENTIALS)
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, util.Unauthorized("%s", util.INVALID_CREDENTIALS)
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   user.Username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &models.Token{AccessToken: signed, TokenType: TokenType}, nil
}

// Verify returns the staff member the token was issued to. Every failure,
// including a deleted user, is reported as unauthorized.
func (s *Service) Verify(ctx context.Context, token string) (*models.Staff, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{s.method.Alg()}), jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		log.Debug().Err(err).Msg("token rejected")
		return nil, util.Unauthorized("%s", util.INVALID_TOKEN)
	}
	if claims.Subject == "" {
		return nil, util.Unauthorized("%s", util.INVALID_TOKEN)
	}
	user, err := s.staff.FindByUsername(ctx, claims.Subject)
	if errors.Is(err, util.ErrNotFound) {
		return nil, util.Unauthorized("%s", util.USER_NOT_FOUND)
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
