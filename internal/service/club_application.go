package service

import (
	"fmt"

	"github.com/SWEConnect/backend/internal/model"
	"gorm.io/gorm"
)

type ClubApplicationService struct {
	db *gorm.DB
}

func NewClubApplicationService(db *gorm.DB) *ClubApplicationService {
	return &ClubApplicationService{db: db}
}

func (s *ClubApplicationService) Create(name, description string) (*model.ClubApplication, error) {
	app := &model.ClubApplication{Name: name, Description: description}
	if err := s.db.Create(app).Error; err != nil {
		return nil, err
	}
	return app, nil
}

func (s *ClubApplicationService) List() ([]model.ClubApplication, error) {
	var apps []model.ClubApplication
	if err := s.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_number asc")
	}).Order("created_at desc").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (s *ClubApplicationService) CreateQuestion(clubApplicationID uint, orderNumber int, question string, qType model.QuestionType, required bool) (*model.ClubApplicationQuestion, error) {
	var app model.ClubApplication
	if err := s.db.First(&app, clubApplicationID).Error; err != nil {
		return nil, fmt.Errorf("40405:社团申请表不存在")
	}

	q := &model.ClubApplicationQuestion{
		ClubApplicationID: clubApplicationID,
		OrderNumber:       orderNumber,
		Question:          question,
		Type:              qType,
		Required:          required,
	}
	if err := s.db.Create(q).Error; err != nil {
		return nil, err
	}
	return q, nil
}

func (s *ClubApplicationService) UpdateQuestion(questionID uint, orderNumber int, question string, qType model.QuestionType, required bool) (*model.ClubApplicationQuestion, error) {
	var q model.ClubApplicationQuestion
	if err := s.db.First(&q, questionID).Error; err != nil {
		return nil, fmt.Errorf("40406:社团申请问题不存在")
	}

	updates := map[string]interface{}{
		"order_number": orderNumber,
		"question":     question,
		"type":         qType,
		"required":     required,
	}
	if err := s.db.Model(&q).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

// DeleteAllQuestions clears a club application's question set, same
// replace-set pattern as project application questions.
func (s *ClubApplicationService) DeleteAllQuestions(clubApplicationID uint) error {
	return s.db.Where("club_application_id = ?", clubApplicationID).
		Delete(&model.ClubApplicationQuestion{}).Error
}
