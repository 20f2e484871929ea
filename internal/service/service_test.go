package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/SWEConnect/backend/internal/model"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.Member{},
		&model.Application{},
		&model.ApplicationQuestion{},
		&model.ApplicationSubmission{},
		&model.ApplicationSubmissionAnswer{},
		&model.ApplicationSubmissionEvaluation{},
		&model.ClubApplication{},
		&model.ClubApplicationQuestion{},
	)
	require.NoError(t, err)
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name string) *model.User {
	t.Helper()
	user := &model.User{
		Subject: "sub-" + name,
		Name:    name,
		Email:   name + "@example.com",
		Status:  1,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestProject(t *testing.T, db *gorm.DB, name string) *model.Project {
	t.Helper()
	project := &model.Project{Name: name}
	require.NoError(t, db.Create(project).Error)
	return project
}

// createTestApplication creates an OPEN application; projectID nil makes
// it standalone.
func createTestApplication(t *testing.T, db *gorm.DB, projectID *uint, deadline *time.Time) *model.Application {
	t.Helper()
	app := &model.Application{
		ProjectID: projectID,
		Name:      "test application",
		Deadline:  deadline,
		Status:    model.ApplicationStatusOpen,
	}
	require.NoError(t, db.Create(app).Error)
	return app
}

func timePtr(t time.Time) *time.Time { return &t }
