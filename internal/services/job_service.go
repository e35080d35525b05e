package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/justsurfingit/job-portal-api/internal/apperrors"
	"github.com/justsurfingit/job-portal-api/internal/models"
)

// JobFilter narrows a job listing. A zero filter matches every job.
type JobFilter struct {
	OwnerEmail string
}

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{
		DB: db,
	}
}

// CreateJob stores doc verbatim and returns the stored job with its new id.
func (s *JobService) CreateJob(ctx context.Context, doc models.Document) (*models.Job, error) {
	job := models.NewJob(doc)
	if err := s.DB.WithContext(ctx).Create(job).Error; err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	return job, nil
}

// ListJobs returns jobs in store order, restricted to one owner when the
// filter names one.
func (s *JobService) ListJobs(ctx context.Context, filter JobFilter) ([]models.Job, error) {
	q := s.DB.WithContext(ctx).Order("created_at")
	if filter.OwnerEmail != "" {
		q = q.Where("hr_email = ?", filter.OwnerEmail)
	}
	jobs := []models.Job{}
	if err := q.Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}

// GetJob returns nil, nil when no job has the id. A malformed id is an
// InvalidIdentifier error.
func (s *JobService) GetJob(ctx context.Context, id string) (*models.Job, error) {
	key, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	var job models.Job
	err = s.DB.WithContext(ctx).Where("id = ?", key).Take(&job).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get job %s: %w", key, err)
	}
	return &job, nil
}

// IncrementApplicationCount adds one to the job's counter in a single UPDATE,
// treating a NULL counter as zero. Concurrent callers never lose an update.
func (s *JobService) IncrementApplicationCount(ctx context.Context, id string) error {
	key, err := ParseID(id)
	if err != nil {
		return err
	}
	err = s.DB.WithContext(ctx).
		Model(&models.Job{}).
		Where("id = ?", key).
		UpdateColumn("application_count", gorm.Expr("COALESCE(application_count, 0) + ?", 1)).
		Error
	if err != nil {
		return fmt.Errorf("increment application count for job %s: %w", key, err)
	}
	return nil
}

// ParseID validates a store identifier and returns its canonical form.
func ParseID(id string) (string, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", apperrors.InvalidIdentifier(id, err)
	}
	return u.String(), nil
}
