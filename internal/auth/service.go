package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	userDatamodel "github.com/citizenserve/complaint-management/internal/core/datamodel/user"
)

type RepositoryAPI interface {
	EmailExists(email string) (bool, error)
	CreateUser(u *userDatamodel.User) error
	GetByEmail(email string) (*userDatamodel.User, error)
	GetByID(userID int64) (*userDatamodel.User, error)
}

type ServiceAPI interface {
	Register(dto RegisterDTO) (*AuthResult, error)
	Login(dto LoginDTO) (*AuthResult, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
	GetUserByID(userID int64) (*User, error)
}

type Service struct {
	repo       RepositoryAPI
	tokenGen   TokenGeneratorAPI
	bcryptCost int
	logger     *slog.Logger
}

func NewService(repo RepositoryAPI, tokenGen TokenGeneratorAPI, bcryptCost int, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		tokenGen:   tokenGen,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

func NewJWTTokenGenerator(secret string, ttl time.Duration) *JWTTokenGenerator {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTTokenGenerator{
		Secret:   []byte(secret),
		TokenTTL: ttl,
	}
}

// Register creates a user row with a bcrypt-hashed password and returns a
// fresh token alongside the public record.
func (s *Service) Register(dto RegisterDTO) (*AuthResult, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	taken, err := s.repo.EmailExists(dto.Email)
	if err != nil {
		s.logger.Error("register: email lookup failed", "error", err)
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := HashPassword(dto.Password, s.bcryptCost)
	if err != nil {
		s.logger.Error("register: password hashing failed", "error", err)
		return nil, err
	}

	var agencyID *int64
	if dto.Role == string(RoleAgency) {
		agencyID = dto.AgencyID
	}

	row := &userDatamodel.User{
		Email:        dto.Email,
		PasswordHash: hash,
		Name:         dto.Name,
		Role:         dto.Role,
		AgencyID:     agencyID,
		CreatedAt:    time.Now(),
	}
	if err := s.repo.CreateUser(row); err != nil {
		s.logger.Error("register: insert failed", "error", err, "email", dto.Email)
		return nil, err
	}

	token, err := s.tokenGen.GenerateToken(row.ID, row.Email, row.Role)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "user_id", row.ID, "role", row.Role)

	return &AuthResult{
		Token: token,
		User:  toPublicUser(row),
	}, nil
}

// Login returns ErrInvalidCredentials for both an unknown email and a wrong
// password, so the response carries no enumeration signal.
func (s *Service) Login(dto LoginDTO) (*AuthResult, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	row, err := s.repo.GetByEmail(dto.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := VerifyPassword(row.PasswordHash, dto.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokenGen.GenerateToken(row.ID, row.Email, row.Role)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user logged in", "user_id", row.ID)

	return &AuthResult{
		Token: token,
		User:  toPublicUser(row),
	}, nil
}

func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokenGen.ValidateToken(tokenString)
}

// GetUserByID loads the request principal; deleted users fail here even when
// their token is still formally valid.
func (s *Service) GetUserByID(userID int64) (*User, error) {
	row, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	return &User{
		ID:       row.ID,
		Email:    row.Email,
		Role:     row.Role,
		AgencyID: row.AgencyID,
	}, nil
}

func toPublicUser(row *userDatamodel.User) PublicUser {
	return PublicUser{
		ID:        row.ID,
		Email:     row.Email,
		Name:      row.Name,
		Role:      row.Role,
		AgencyID:  row.AgencyID,
		CreatedAt: row.CreatedAt,
	}
}

func (j *JWTTokenGenerator) GenerateToken(userID int64, email, role string) (string, error) {
	now := time.Now()

	claims := &Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(j.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   fmt.Sprintf("%d", userID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.Secret)
}

func (j *JWTTokenGenerator) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.Secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
