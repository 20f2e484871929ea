package service

import (
	"fmt"

	"github.com/SWEConnect/backend/internal/model"
	"gorm.io/gorm"
)

type ApplicationQuestionService struct {
	db *gorm.DB
}

func NewApplicationQuestionService(db *gorm.DB) *ApplicationQuestionService {
	return &ApplicationQuestionService{db: db}
}

func (s *ApplicationQuestionService) Create(applicationID uint, orderNumber int, question string, qType model.QuestionType, required bool, answerChoices []string) (*model.ApplicationQuestion, error) {
	var app model.Application
	if err := s.db.First(&app, applicationID).Error; err != nil {
		return nil, fmt.Errorf("40403:申请表不存在")
	}
	if qType.NeedsChoices() && len(answerChoices) == 0 {
		return nil, fmt.Errorf("40004:选择题必须提供选项")
	}

	q := &model.ApplicationQuestion{
		ApplicationID: applicationID,
		OrderNumber:   orderNumber,
		Question:      question,
		Type:          qType,
		Required:      required,
		AnswerChoices: answerChoices,
	}
	if err := s.db.Create(q).Error; err != nil {
		return nil, err
	}
	return q, nil
}

// DeleteByApplicationID removes the application's entire question set.
// Admins replace questions by deleting them all and recreating, rather
// than diffing.
func (s *ApplicationQuestionService) DeleteByApplicationID(applicationID uint) error {
	return s.db.Where("application_id = ?", applicationID).
		Delete(&model.ApplicationQuestion{}).Error
}

func (s *ApplicationQuestionService) ListByApplicationID(applicationID uint) ([]model.ApplicationQuestion, error) {
	var questions []model.ApplicationQuestion
	if err := s.db.Where("application_id = ?", applicationID).
		Order("order_number asc").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}
