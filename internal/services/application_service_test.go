package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justsurfingit/job-portal-api/internal/apperrors"
	"github.com/justsurfingit/job-portal-api/internal/models"
)

func TestApplicationService_CreateAndList(t *testing.T) {
	ctx := context.Background()
	svc := NewApplicationService(newTestDB(t))

	for _, email := range []string{"a@x.com", "a@x.com", "b@x.com"} {
		_, err := svc.CreateApplication(ctx, models.Document{
			"job_id":          uuid.NewString(),
			"applicant_email": email,
			"resume":          "https://cv.example/" + email,
		})
		require.NoError(t, err)
	}

	apps, err := svc.ListByApplicant(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, apps, 2)
	for _, a := range apps {
		assert.Equal(t, "a@x.com", a.ApplicantEmail)
		assert.Equal(t, "https://cv.example/a@x.com", a.Document["resume"])
	}

	none, err := svc.ListByApplicant(ctx, "c@x.com")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestApplicationService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	svc := NewApplicationService(newTestDB(t))

	app, err := svc.CreateApplication(ctx, models.Document{"applicant_email": "a@x.com", "status": "pending"})
	require.NoError(t, err)

	res, err := svc.UpdateStatus(ctx, app.ID, ptr("accepted"))
	require.NoError(t, err)
	assert.Equal(t, UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, res)

	apps, err := svc.ListByApplicant(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, apps, 1)
	require.NotNil(t, apps[0].Status)
	assert.Equal(t, "accepted", *apps[0].Status)
}

func TestApplicationService_UpdateStatusMissing(t *testing.T) {
	svc := NewApplicationService(newTestDB(t))

	res, err := svc.UpdateStatus(context.Background(), uuid.NewString(), ptr("accepted"))
	require.NoError(t, err)
	assert.Equal(t, UpdateResult{Acknowledged: true}, res)
}

func TestApplicationService_UpdateStatusMalformed(t *testing.T) {
	svc := NewApplicationService(newTestDB(t))

	_, err := svc.UpdateStatus(context.Background(), "42", ptr("accepted"))
	assert.True(t, errors.Is(err, apperrors.ErrInvalidIdentifier))
}

func TestApplicationService_UpdateStatusUnchanged(t *testing.T) {
	ctx := context.Background()
	svc := NewApplicationService(newTestDB(t))

	app, err := svc.CreateApplication(ctx, models.Document{"applicant_email": "a@x.com"})
	require.NoError(t, err)

	res, err := svc.UpdateStatus(ctx, app.ID, ptr("accepted"))
	require.NoError(t, err)
	assert.Equal(t, UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, res)

	res, err = svc.UpdateStatus(ctx, app.ID, ptr("accepted"))
	require.NoError(t, err)
	assert.Equal(t, UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 0}, res)

	res, err = svc.UpdateStatus(ctx, app.ID, ptr("rejected"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.ModifiedCount)
}

func TestApplicationService_UpdateStatusClear(t *testing.T) {
	ctx := context.Background()
	svc := NewApplicationService(newTestDB(t))

	app, err := svc.CreateApplication(ctx, models.Document{"applicant_email": "a@x.com", "status": "pending"})
	require.NoError(t, err)

	res, err := svc.UpdateStatus(ctx, app.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, res)

	apps, err := svc.ListByApplicant(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Nil(t, apps[0].Status)

	res, err = svc.UpdateStatus(ctx, app.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 0}, res)
}

func ptr(s string) *string { return &s }
