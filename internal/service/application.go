package service

import (
	"fmt"
	"time"

	"github.com/SWEConnect/backend/internal/logger"
	"github.com/SWEConnect/backend/internal/model"
	"gorm.io/gorm"
)

type ApplicationService struct {
	db *gorm.DB

	// now is swappable so deadline behavior is testable.
	now func() time.Time
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{db: db, now: time.Now}
}

func (s *ApplicationService) Create(projectID uint, name, description string, deadline *time.Time) (*model.Application, error) {
	app := &model.Application{
		ProjectID:   &projectID,
		Name:        name,
		Description: description,
		Deadline:    deadline,
		Status:      model.ApplicationStatusDraft,
	}
	if err := s.db.Create(app).Error; err != nil {
		return nil, err
	}
	return app, nil
}

func (s *ApplicationService) GetByID(id uint) (*model.Application, error) {
	var app model.Application
	if err := s.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_number asc")
	}).First(&app, id).Error; err != nil {
		return nil, fmt.Errorf("40403:申请表不存在")
	}
	s.CloseIfExpired(&app)
	return &app, nil
}

func (s *ApplicationService) ListByProject(projectID uint) ([]model.Application, error) {
	var apps []model.Application
	if err := s.db.Where("project_id = ?", projectID).
		Order("created_at desc").Find(&apps).Error; err != nil {
		return nil, err
	}
	for i := range apps {
		s.CloseIfExpired(&apps[i])
	}
	return apps, nil
}

func (s *ApplicationService) Update(id uint, updates map[string]interface{}) (*model.Application, error) {
	var app model.Application
	if err := s.db.First(&app, id).Error; err != nil {
		return nil, fmt.Errorf("40403:申请表不存在")
	}
	if err := s.db.Model(&model.Application{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// Publish moves a draft application to OPEN.
func (s *ApplicationService) Publish(id uint) (*model.Application, error) {
	var app model.Application
	if err := s.db.First(&app, id).Error; err != nil {
		return nil, fmt.Errorf("40403:申请表不存在")
	}
	if app.Status != model.ApplicationStatusDraft {
		return nil, fmt.Errorf("40003:仅草稿状态的申请表可以发布")
	}
	if err := s.db.Model(&app).Update("status", model.ApplicationStatusOpen).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// Close moves an open application to CLOSED.
func (s *ApplicationService) Close(id uint) (*model.Application, error) {
	var app model.Application
	if err := s.db.First(&app, id).Error; err != nil {
		return nil, fmt.Errorf("40403:申请表不存在")
	}
	if app.Status != model.ApplicationStatusOpen {
		return nil, fmt.Errorf("40003:仅开放状态的申请表可以关闭")
	}
	if err := s.db.Model(&app).Update("status", model.ApplicationStatusClosed).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// CloseIfExpired flips an OPEN application with a past deadline to CLOSED.
// The update runs against the store only; the loaded row keeps the status
// it was read with, so the caller's payload reflects pre-reconcile state.
// Setting CLOSED is idempotent, so concurrent readers racing here is fine.
func (s *ApplicationService) CloseIfExpired(app *model.Application) {
	if app == nil || app.Deadline == nil || app.Status != model.ApplicationStatusOpen {
		return
	}
	if !s.now().After(*app.Deadline) {
		return
	}
	if err := s.db.Model(&model.Application{}).Where("id = ?", app.ID).
		Update("status", model.ApplicationStatusClosed).Error; err != nil {
		logger.Warn("close expired application %d: %v", app.ID, err)
		return
	}
	logger.Info("application %d closed: deadline %s passed", app.ID, app.Deadline.Format(time.RFC3339))
}

// CloseExpired closes every OPEN application whose deadline has passed.
// Used by the background sweep; the same update the read paths apply lazily.
func (s *ApplicationService) CloseExpired() (int64, error) {
	result := s.db.Model(&model.Application{}).
		Where("status = ? AND deadline IS NOT NULL AND deadline < ?", model.ApplicationStatusOpen, s.now()).
		Update("status", model.ApplicationStatusClosed)
	return result.RowsAffected, result.Error
}
