package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/justsurfingit/job-portal-api/internal/apperrors"
	"github.com/justsurfingit/job-portal-api/internal/auth"
	"github.com/justsurfingit/job-portal-api/internal/metrics"
	"github.com/justsurfingit/job-portal-api/internal/models"
)

// JobStore is the part of JobService the workflow needs.
type JobStore interface {
	GetJob(ctx context.Context, id string) (*models.Job, error)
	IncrementApplicationCount(ctx context.Context, id string) error
}

// ApplicationStore is the part of ApplicationService the workflow needs.
type ApplicationStore interface {
	CreateApplication(ctx context.Context, doc models.Document) (*models.Application, error)
	ListByApplicant(ctx context.Context, email string) ([]models.Application, error)
}

// InsertResult acknowledges an insert and names the assigned id.
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// ApplicationWorkflow spans both stores: it keeps each job's applicationCount
// in step with submissions and joins job display fields onto listings.
// Nothing here is transactional.
type ApplicationWorkflow struct {
	Jobs         JobStore
	Applications ApplicationStore
	Metrics      *metrics.Metrics
}

func NewApplicationWorkflow(jobs JobStore, apps ApplicationStore, m *metrics.Metrics) *ApplicationWorkflow {
	return &ApplicationWorkflow{Jobs: jobs, Applications: apps, Metrics: m}
}

// Submit persists the application, then bumps the referenced job's counter.
// When job_id does not resolve to a job the application is still kept and
// the counter step is skipped. A failed increment after a successful insert
// is returned as an error and leaves the counter one short.
func (w *ApplicationWorkflow) Submit(ctx context.Context, doc models.Document, submitter *auth.Identity) (InsertResult, error) {
	if submitter == nil {
		return InsertResult{}, apperrors.Unauthorized(nil)
	}
	log := zerolog.Ctx(ctx)

	app, err := w.Applications.CreateApplication(ctx, doc)
	if err != nil {
		return InsertResult{}, err
	}
	w.Metrics.ApplicationSubmitted()
	log.Info().
		Str("application_id", app.ID).
		Str("job_id", app.JobID).
		Str("submitted_by", submitter.Email).
		Msg("application stored")

	job, err := w.resolveJob(ctx, app.JobID)
	if err != nil {
		return InsertResult{}, err
	}
	if job == nil {
		w.Metrics.ApplicationCountSkipped()
		log.Warn().
			Str("application_id", app.ID).
			Str("job_id", app.JobID).
			Msg("job reference did not resolve; application count not incremented")
		return InsertResult{Acknowledged: true, InsertedID: app.ID}, nil
	}

	if err := w.Jobs.IncrementApplicationCount(ctx, job.ID); err != nil {
		return InsertResult{}, err
	}
	return InsertResult{Acknowledged: true, InsertedID: app.ID}, nil
}

// ListForApplicant returns the applicant's applications, each enriched with
// its job's display fields when that job still exists. The requester must be
// the applicant.
func (w *ApplicationWorkflow) ListForApplicant(ctx context.Context, applicantEmail string, requester *auth.Identity) ([]models.Application, error) {
	if err := auth.AuthorizeSelf(requester, applicantEmail); err != nil {
		return nil, err
	}

	apps, err := w.Applications.ListByApplicant(ctx, applicantEmail)
	if err != nil {
		return nil, err
	}

	for i := range apps {
		job, err := w.resolveJob(ctx, apps[i].JobID)
		if err != nil {
			return nil, err
		}
		apps[i].Enrich(job)
	}
	return apps, nil
}

// resolveJob is the best-effort side of the join: an empty, malformed or
// dangling reference resolves to nil. Store failures are still errors.
func (w *ApplicationWorkflow) resolveJob(ctx context.Context, jobID string) (*models.Job, error) {
	if jobID == "" {
		return nil, nil
	}
	job, err := w.Jobs.GetJob(ctx, jobID)
	if err != nil {
		if se := apperrors.GetServiceError(err); se != nil && se.Code == apperrors.CodeInvalidIdentifier {
			return nil, nil
		}
		return nil, fmt.Errorf("resolve job %s: %w", jobID, err)
	}
	return job, nil
}
