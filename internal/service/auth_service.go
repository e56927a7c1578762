package service

import (
	"context"
	"log"
	"time"

	"quizhub-service/internal/apperr"
	"quizhub-service/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

const invalidCredentials = "invalid credentials"

type Claims struct {
	jwt.RegisteredClaims
	AdminID  string `json:"adminId"`
	Username string `json:"username"`
}

// AuthService issues and verifies the opaque admin credential. Failures are
// reported uniformly: callers never learn which part of the credential was
// wrong.
type AuthService struct {
	Admins AdminStore
	secret []byte
	expiry time.Duration

	now func() time.Time
}

func NewAuthService(admins AdminStore, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		Admins: admins,
		secret: []byte(secret),
		expiry: expiry,
		now:    time.Now,
	}
}

// Login checks the password and returns a signed token for the admin.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *models.Admin, error) {
	if username == "" || password == "" {
		return "", nil, apperr.NewValidation("username and password are required", "username", "password")
	}

	admin, err := s.Admins.FindByUsername(ctx, username)
	if err != nil {
		if isNoDocuments(err) {
			return "", nil, apperr.NewAuth(invalidCredentials)
		}
		return "", nil, apperr.NewStorage("find admin", err)
	}
	if !admin.ComparePassword(password) {
		return "", nil, apperr.NewAuth(invalidCredentials)
	}

	admin.LastLogin = s.now().UTC()
	if err := s.Admins.UpdateLastLogin(ctx, admin.ID, admin.LastLogin); err != nil {
		// Login still succeeds; the timestamp is informational.
		log.Printf("failed to update last login for %s: %v", admin.Username, err)
	}

	token, err := s.issueToken(admin)
	if err != nil {
		return "", nil, apperr.NewStorage("sign token", err)
	}
	return token, admin, nil
}

// Verify parses the token and returns its claims, or an auth error.
func (s *AuthService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperr.NewAuth(invalidCredentials)
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil || !token.Valid {
		return nil, apperr.NewAuth(invalidCredentials)
	}
	return claims, nil
}

// Principal resolves verified claims to the stored admin.
func (s *AuthService) Principal(ctx context.Context, claims *Claims) (*models.Admin, error) {
	admin, err := s.Admins.FindByID(ctx, claims.AdminID)
	if err != nil {
		if isNoDocuments(err) {
			return nil, apperr.NewAuth(invalidCredentials)
		}
		return nil, apperr.NewStorage("find admin", err)
	}
	return admin, nil
}

// EnsureDefaultAdmin seeds the first admin account when the collection is
// empty. A blank password disables seeding.
func (s *AuthService) EnsureDefaultAdmin(ctx context.Context, username, password string) error {
	if password == "" {
		return nil
	}
	count, err := s.Admins.Count(ctx)
	if err != nil {
		return apperr.NewStorage("count admins", err)
	}
	if count > 0 {
		return nil
	}
	admin := &models.Admin{
		Username:  username,
		CreatedAt: s.now().UTC(),
	}
	if err := admin.SetPassword(password); err != nil {
		return err
	}
	if err := s.Admins.Create(ctx, admin); err != nil {
		return apperr.NewStorage("create default admin", err)
	}
	log.Printf("Default admin %q created", username)
	return nil
}

func (s *AuthService) issueToken(admin *models.Admin) (string, error) {
	now := s.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "quizhub-service",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
		AdminID:  admin.ID.Hex(),
		Username: admin.Username,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
