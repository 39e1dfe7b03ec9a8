package agency

import (
	"log/slog"

	agencyDatamodel "github.com/citizenserve/complaint-management/internal/core/datamodel/agency"
)

// Repository defines the data access surface for agencies. CreateWithUserLink
// must be atomic: when linking fails for any reason, the agency row must not
// survive.
type Repository interface {
	GetAll() ([]*agencyDatamodel.Agency, error)
	CreateWithUserLink(a *agencyDatamodel.Agency, userID *int64) error
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

func (s *Service) ListAgencies() ([]*Agency, error) {
	rows, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list agencies", "error", err)
		return nil, err
	}
	return FromDataModelSlice(rows), nil
}

// CreateAgency inserts the agency and, when a user id is supplied, links that
// user to it in the same transaction. The linked user must already hold the
// agency role.
func (s *Service) CreateAgency(dto CreateAgencyDTO) (*Agency, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	row := &agencyDatamodel.Agency{
		Name:       dto.Name,
		Department: dto.Department,
	}

	if err := s.repo.CreateWithUserLink(row, dto.UserID); err != nil {
		switch err {
		case ErrNameTaken, ErrUserNotFound, ErrUserNotAgencyRole:
			return nil, err
		}
		s.logger.Error("failed to create agency", "error", err, "name", dto.Name)
		return nil, err
	}

	s.logger.Info("agency created", "agency_id", row.ID, "name", row.Name)
	return FromDataModel(row), nil
}
