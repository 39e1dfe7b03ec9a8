package postgres

import (
	userDatamodel "github.com/citizenserve/complaint-management/internal/core/datamodel/user"
	"github.com/citizenserve/complaint-management/internal/user"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) user.Repository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(userID int64) (*user.User, error) {
	var row userDatamodel.User
	err := r.db.Where("id = ?", userID).First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, user.ErrNotFound
		}
		return nil, err
	}
	return user.FromDataModel(&row), nil
}

func (r *UserRepository) GetAll() ([]*user.User, error) {
	var rows []*userDatamodel.User
	err := r.db.Order("id ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return user.FromDataModelSlice(rows), nil
}

func (r *UserRepository) Update(userID int64, name, role string, agencyID *int64) error {
	tx := r.db.Model(&userDatamodel.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"name":      name,
			"role":      role,
			"agency_id": agencyID,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *UserRepository) Delete(userID int64) error {
	tx := r.db.Where("id = ?", userID).Delete(&userDatamodel.User{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return user.ErrNotFound
	}
	return nil
}
