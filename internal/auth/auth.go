package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Role is a closed enum; every request is authorized from it alone.
type Role string

const (
	RoleCitizen    Role = "citizen"
	RoleAgency     Role = "agency"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

func ValidRole(r string) bool {
	switch Role(r) {
	case RoleCitizen, RoleAgency, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// User is the authenticated principal attached to the request context.
type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	AgencyID *int64 `json:"agency_id,omitempty"`
}

// IsAdmin reports whether the principal clears the admin gate. super_admin is
// intentionally not differentiated: no backend route requires more than admin.
func (u *User) IsAdmin() bool {
	return u.Role == string(RoleAdmin) || u.Role == string(RoleSuperAdmin)
}

// Claims are the JWT payload: {id, email, role} plus registered claims.
type Claims struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// AuthResult is returned by register and login: a signed bearer token and the
// public user record (password hash excluded).
type AuthResult struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

// PublicUser is the externally visible user shape.
type PublicUser struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	AgencyID  *int64    `json:"agency_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type TokenGeneratorAPI interface {
	GenerateToken(userID int64, email, role string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type JWTTokenGenerator struct {
	Secret   []byte
	TokenTTL time.Duration
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrEmailTaken         = errors.New("email already registered")
)

type ctxKey string

const ContextUserKey ctxKey = "authUser"

func UserFromContext(ctx context.Context) (*User, bool) {
	u, ok := ctx.Value(ContextUserKey).(*User)
	return u, ok
}

func ContextWithUser(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, ContextUserKey, u)
}

func VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
