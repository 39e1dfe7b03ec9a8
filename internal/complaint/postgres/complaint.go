package postgres

import (
	"time"

	"github.com/citizenserve/complaint-management/internal/complaint"
	complaintDatamodel "github.com/citizenserve/complaint-management/internal/core/datamodel/complaint"
	"gorm.io/gorm"
)

// ComplaintRepository implements the complaint.Repository interface using GORM.
type ComplaintRepository struct {
	db *gorm.DB
}

func NewComplaintRepository(db *gorm.DB) complaint.Repository {
	return &ComplaintRepository{db: db}
}

func (r *ComplaintRepository) Create(c *complaintDatamodel.Complaint) error {
	return r.db.Create(c).Error
}

const complaintColumns = `c.id, c.title, c.description, c.category, c.location,
	c.status, c.priority, c.created_at, c.updated_at,
	c.user_id AS citizen_id, u.name AS citizen_name, u.email AS citizen_email,
	c.assigned_to, a.name AS assigned_agency_name`

func (r *ComplaintRepository) listQuery() *gorm.DB {
	return r.db.Table("complaints c").
		Select(complaintColumns).
		Joins("JOIN users u ON u.id = c.user_id").
		Joins("LEFT JOIN agencies a ON a.id = c.assigned_to")
}

// List applies the optional filters (values within a field OR-combined via
// IN, fields AND-combined) and always orders newest-first.
func (r *ComplaintRepository) List(f complaint.Filters) ([]*complaint.Complaint, error) {
	q := r.listQuery()

	if len(f.Status) > 0 {
		q = q.Where("c.status IN ?", f.Status)
	}
	if len(f.Category) > 0 {
		q = q.Where("c.category IN ?", f.Category)
	}
	if len(f.Priority) > 0 {
		q = q.Where("c.priority IN ?", f.Priority)
	}
	if f.UserID != nil {
		q = q.Where("c.user_id = ?", *f.UserID)
	}
	if f.AssignedAgencyID != nil {
		q = q.Where("c.assigned_to = ?", *f.AssignedAgencyID)
	}

	var rows []*complaint.Complaint
	err := q.Order("c.created_at DESC").Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []*complaint.Complaint{}
	}
	return rows, nil
}

func (r *ComplaintRepository) GetByID(id int64) (*complaint.Complaint, error) {
	var row complaint.Complaint
	tx := r.listQuery().Where("c.id = ?", id).Scan(&row)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, complaint.ErrNotFound
	}
	return &row, nil
}

func (r *ComplaintRepository) UpdateStatus(id int64, status string) error {
	return r.updateFields(id, map[string]interface{}{"status": status})
}

func (r *ComplaintRepository) UpdatePriority(id int64, priority string) error {
	return r.updateFields(id, map[string]interface{}{"priority": priority})
}

func (r *ComplaintRepository) Assign(id int64, agencyID int64) error {
	return r.updateFields(id, map[string]interface{}{"assigned_to": agencyID})
}

func (r *ComplaintRepository) updateFields(id int64, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()
	tx := r.db.Model(&complaintDatamodel.Complaint{}).
		Where("id = ?", id).
		Updates(fields)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return complaint.ErrNotFound
	}
	return nil
}

func (r *ComplaintRepository) Delete(id int64) error {
	tx := r.db.Where("id = ?", id).Delete(&complaintDatamodel.Complaint{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return complaint.ErrNotFound
	}
	return nil
}

func (r *ComplaintRepository) CreateResponse(resp *complaintDatamodel.Response) error {
	return r.db.Create(resp).Error
}

// ListResponses returns the thread oldest-first, enriched with author name
// and role.
func (r *ComplaintRepository) ListResponses(complaintID int64) ([]*complaint.Response, error) {
	var rows []*complaint.Response
	err := r.db.Table("responses r").
		Select(`r.id, r.complaint_id, r.user_id, r.message, r.created_at,
			u.name AS user_name, u.role AS user_role`).
		Joins("JOIN users u ON u.id = r.user_id").
		Where("r.complaint_id = ?", complaintID).
		Order("r.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []*complaint.Response{}
	}
	return rows, nil
}
