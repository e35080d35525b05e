package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/justsurfingit/job-portal-api/internal/models"
)

// UpdateResult acknowledges a status update. A missing id yields zero counts,
// not an error.
type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type ApplicationService struct {
	DB *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{DB: db}
}

func (s *ApplicationService) CreateApplication(ctx context.Context, doc models.Document) (*models.Application, error) {
	app := models.NewApplication(doc)
	if err := s.DB.WithContext(ctx).Create(app).Error; err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}
	return app, nil
}

func (s *ApplicationService) ListByApplicant(ctx context.Context, email string) ([]models.Application, error) {
	apps := []models.Application{}
	err := s.DB.WithContext(ctx).
		Where("applicant_email = ?", email).
		Order("created_at").
		Find(&apps).Error
	if err != nil {
		return nil, fmt.Errorf("list applications for %s: %w", email, err)
	}
	return apps, nil
}

// UpdateStatus sets the status column of one application. A nil status
// clears it. MatchedCount reports whether the id exists; ModifiedCount is zero
// when the stored status already equals the requested one.
func (s *ApplicationService) UpdateStatus(ctx context.Context, id string, status *string) (UpdateResult, error) {
	key, err := ParseID(id)
	if err != nil {
		return UpdateResult{}, err
	}
	res := UpdateResult{Acknowledged: true}
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Application{}).Where("id = ?", key).Count(&res.MatchedCount).Error; err != nil {
			return err
		}
		if res.MatchedCount == 0 {
			return nil
		}
		q := tx.Model(&models.Application{}).Where("id = ?", key)
		if status == nil {
			q = q.Where("status IS NOT NULL")
		} else {
			q = q.Where("(status IS NULL OR status <> ?)", *status)
		}
		upd := q.UpdateColumn("status", status)
		if upd.Error != nil {
			return upd.Error
		}
		res.ModifiedCount = upd.RowsAffected
		return nil
	})
	if err != nil {
		return UpdateResult{}, fmt.Errorf("update status of application %s: %w", key, err)
	}
	return res, nil
}
