package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Fixed demo credentials; there is no user store behind the stub login.
const (
	demoEmail    = "demo.csir@demomail.com"
	demoPassword = "D3mo@Pass123!"
)

// ErrInvalidCredentials is returned when the login attempt does not match
// the demo account.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Config holds the JWT signing parameters.
type Config struct {
	Key                string
	Issuer             string
	Audience           string
	AccessTokenMinutes int
}

// LoginResult is the payload returned on a successful login.
type LoginResult struct {
	AccessToken  string `json:"accessToken"`
	ExpiresIn    int    `json:"expiresIn"`
	RefreshToken string `json:"refreshToken"`
}

// Service issues and validates session tokens.
type Service struct {
	cfg Config
}

// NewService creates a new Service.
func NewService(cfg Config) *Service {
	if cfg.AccessTokenMinutes <= 0 {
		cfg.AccessTokenMinutes = 30
	}
	return &Service{cfg: cfg}
}

// Login checks the supplied credentials against the demo account and issues
// an HS256 access token plus an opaque refresh token.
func (s *Service) Login(email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	password = strings.TrimSpace(password)

	if email != demoEmail || password != demoPassword {
		return nil, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  email,
		"jti":  uuid.NewString(),
		"name": email,
		"pid":  uuid.NewString(),
		"iss":  s.cfg.Issuer,
		"aud":  s.cfg.Audience,
		"iat":  now.Unix(),
		"nbf":  now.Unix(),
		"exp":  now.Add(time.Duration(s.cfg.AccessTokenMinutes) * time.Minute).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Key))
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	var refresh strings.Builder
	for i := 0; i < 6; i++ {
		refresh.WriteString(uuid.NewString())
	}

	return &LoginResult{
		AccessToken: token,
		// Historical quirk kept for client compatibility: the reported
		// lifetime is minutes*180 seconds.
		ExpiresIn:    s.cfg.AccessTokenMinutes * 180,
		RefreshToken: refresh.String(),
	}, nil
}

// ValidateToken parses and verifies an access token.
func (s *Service) ValidateToken(tokenString string) error {
	_, err := jwt.Parse(tokenString,
		func(t *jwt.Token) (interface{}, error) {
			return []byte(s.cfg.Key), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.cfg.Issuer),
		jwt.WithAudience(s.cfg.Audience),
		jwt.WithExpirationRequired(),
	)
	return err
}

// Middleware returns a Fiber handler that rejects requests lacking a valid
// bearer token.
func (s *Service) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}

		if err := s.ValidateToken(strings.TrimSpace(token)); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid bearer token")
		}

		return c.Next()
	}
}
