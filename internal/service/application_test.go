package service

import (
	"testing"
	"time"

	"github.com/SWEConnect/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationPublishAndClose(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db)
	project := createTestProject(t, db, "swec")

	app, err := svc.Create(project.ID, "mentorship", "", nil)
	require.NoError(t, err)
	assert.Equal(t, model.ApplicationStatusDraft, app.Status)

	published, err := svc.Publish(app.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ApplicationStatusOpen, published.Status)

	// Publishing twice is an invalid transition.
	_, err = svc.Publish(app.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "40003")

	closed, err := svc.Close(app.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ApplicationStatusClosed, closed.Status)

	_, err = svc.Close(app.ID)
	require.Error(t, err)
}

func TestApplicationListLazyClosesExpired(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db)
	project := createTestProject(t, db, "swec")

	deadline := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	expired := createTestApplication(t, db, &project.ID, timePtr(deadline))
	open := createTestApplication(t, db, &project.ID, nil)
	svc.now = func() time.Time { return deadline.Add(time.Minute) }

	// The listing that observes the expiry still reports OPEN.
	apps, err := svc.ListByProject(project.ID)
	require.NoError(t, err)
	require.Len(t, apps, 2)

	var stored model.Application
	require.NoError(t, db.First(&stored, expired.ID).Error)
	assert.Equal(t, model.ApplicationStatusClosed, stored.Status)

	stored = model.Application{}
	require.NoError(t, db.First(&stored, open.ID).Error)
	assert.Equal(t, model.ApplicationStatusOpen, stored.Status)
}

func TestCloseExpiredSweep(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db)
	project := createTestProject(t, db, "swec")

	deadline := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	expired := createTestApplication(t, db, &project.ID, timePtr(deadline))
	future := createTestApplication(t, db, &project.ID, timePtr(deadline.Add(48*time.Hour)))
	noDeadline := createTestApplication(t, db, &project.ID, nil)
	svc.now = func() time.Time { return deadline.Add(time.Hour) }

	closed, err := svc.CloseExpired()
	require.NoError(t, err)
	assert.Equal(t, int64(1), closed)

	var stored model.Application
	require.NoError(t, db.First(&stored, expired.ID).Error)
	assert.Equal(t, model.ApplicationStatusClosed, stored.Status)
	stored = model.Application{}
	require.NoError(t, db.First(&stored, future.ID).Error)
	assert.Equal(t, model.ApplicationStatusOpen, stored.Status)
	stored = model.Application{}
	require.NoError(t, db.First(&stored, noDeadline.ID).Error)
	assert.Equal(t, model.ApplicationStatusOpen, stored.Status)

	// The sweep is idempotent.
	closed, err = svc.CloseExpired()
	require.NoError(t, err)
	assert.Zero(t, closed)
}
