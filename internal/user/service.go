package user

import (
	"log/slog"

	"github.com/citizenserve/complaint-management/internal/auth"
)

type Repository interface {
	GetByID(userID int64) (*User, error)
	GetAll() ([]*User, error)
	Update(userID int64, name, role string, agencyID *int64) error
	Delete(userID int64) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) GetByID(userID int64) (*User, error) {
	u, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, ErrNotFound
	}
	return u, nil
}

func (s *Service) GetAll() ([]*User, error) {
	users, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, err
	}
	return users, nil
}

// Update rewrites name, role, and agency link. A non-agency role always
// clears the agency link so the role/agency invariant holds.
func (s *Service) Update(userID int64, dto UpdateUserDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	agencyID := dto.AgencyID
	if dto.Role != string(auth.RoleAgency) {
		agencyID = nil
	}

	if err := s.repo.Update(userID, dto.Name, dto.Role, agencyID); err != nil {
		if err == ErrNotFound {
			return err
		}
		s.logger.Error("failed to update user", "error", err, "user_id", userID)
		return err
	}

	s.logger.Info("user updated", "user_id", userID, "role", dto.Role)
	return nil
}

func (s *Service) Delete(userID int64) error {
	if err := s.repo.Delete(userID); err != nil {
		if err == ErrNotFound {
			return err
		}
		s.logger.Error("failed to delete user", "error", err, "user_id", userID)
		return err
	}

	s.logger.Info("user deleted", "user_id", userID)
	return nil
}
