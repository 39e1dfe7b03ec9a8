package postgres

import (
	"github.com/citizenserve/complaint-management/internal/agency"
	agencyDatamodel "github.com/citizenserve/complaint-management/internal/core/datamodel/agency"
	userDatamodel "github.com/citizenserve/complaint-management/internal/core/datamodel/user"
	"gorm.io/gorm"
)

type AgencyRepository struct {
	db *gorm.DB
}

func NewAgencyRepository(db *gorm.DB) agency.Repository {
	return &AgencyRepository{db: db}
}

func (r *AgencyRepository) GetAll() ([]*agencyDatamodel.Agency, error) {
	var rows []*agencyDatamodel.Agency
	err := r.db.Order("name ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CreateWithUserLink inserts the agency and, when userID is supplied, points
// that user's agency_id at the new row. Everything runs in one transaction so
// a failed link rolls the agency insert back.
func (r *AgencyRepository) CreateWithUserLink(a *agencyDatamodel.Agency, userID *int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&agencyDatamodel.Agency{}).
			Where("name = ?", a.Name).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return agency.ErrNameTaken
		}

		if err := tx.Create(a).Error; err != nil {
			return err
		}

		if userID == nil {
			return nil
		}

		var linked userDatamodel.User
		if err := tx.Where("id = ?", *userID).First(&linked).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return agency.ErrUserNotFound
			}
			return err
		}
		if linked.Role != "agency" {
			return agency.ErrUserNotAgencyRole
		}

		return tx.Model(&userDatamodel.User{}).
			Where("id = ?", *userID).
			Update("agency_id", a.ID).Error
	})
}
