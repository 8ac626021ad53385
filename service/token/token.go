package token

import (
	"context"
	"fmt"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/golang-jwt/jwt/v5"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/halcyonlabs/demo-wallet/core"
)

type Config struct {
	Secret string `valid:"required"`
	Issuer string `valid:"required"`
	TTL    time.Duration
}

// Service issues and verifies the mock session tokens. It satisfies both
// core.TokenIssuer and core.SessionVerifier.
type Service struct {
	secret   []byte
	issuer   string
	ttl      time.Duration
	sessions *lru.Cache[string, *core.Session]
}

func New(cfg Config) *Service {
	if _, err := govalidator.ValidateStruct(cfg); err != nil {
		panic(err)
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = 24 * time.Hour
	}

	sessions, err := lru.New[string, *core.Session](512)
	if err != nil {
		panic(err)
	}

	return &Service{
		secret:   []byte(cfg.Secret),
		issuer:   cfg.Issuer,
		ttl:      ttl,
		sessions: sessions,
	}
}

func (s *Service) Issue(user *core.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss":   s.issuer,
		"sub":   user.ID,
		"email": user.Email,
		"iat":   now.Unix(),
		"nbf":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *Service) Verify(ctx context.Context, token string) (*core.Session, error) {
	if sess, ok := s.sessions.Get(token); ok {
		return sess, nil
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithExpirationRequired())

	if err != nil {
		return nil, fmt.Errorf("verify token: %w", err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("verify token: unexpected claims type")
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, fmt.Errorf("verify token: missing subject")
	}

	email, _ := claims["email"].(string)
	sess := &core.Session{UserID: sub, Email: email}
	s.sessions.Add(token, sess)
	return sess, nil
}
