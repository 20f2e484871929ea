package service

import (
	"fmt"

	"github.com/SWEConnect/backend/internal/model"
	"gorm.io/gorm"
)

type AnswerInput struct {
	QuestionID uint   `json:"question_id" binding:"required"`
	Answer     string `json:"answer"`
}

type ApplicationSubmissionService struct {
	db   *gorm.DB
	apps *ApplicationService
}

func NewApplicationSubmissionService(db *gorm.DB, apps *ApplicationService) *ApplicationSubmissionService {
	return &ApplicationSubmissionService{db: db, apps: apps}
}

// Upsert creates the caller's submission when submissionID is nil and
// updates the existing row otherwise. When answers is non-nil the stored
// answer set is replaced wholesale. Returns the submission with its
// answers and parent application loaded.
func (s *ApplicationSubmissionService) Upsert(userID uint, submissionID *uint, applicationID uint, status model.SubmissionStatus, answers []AnswerInput) (*model.ApplicationSubmission, error) {
	var submission model.ApplicationSubmission

	if submissionID == nil {
		var app model.Application
		if err := s.db.First(&app, applicationID).Error; err != nil {
			return nil, fmt.Errorf("40403:申请表不存在")
		}

		var count int64
		s.db.Model(&model.ApplicationSubmission{}).
			Where("application_id = ? AND user_id = ?", applicationID, userID).Count(&count)
		if count > 0 {
			return nil, fmt.Errorf("40005:该申请表已有提交记录")
		}

		submission = model.ApplicationSubmission{
			ApplicationID: applicationID,
			UserID:        userID,
			Status:        status,
		}
		if err := s.db.Create(&submission).Error; err != nil {
			return nil, err
		}
	} else {
		if err := s.db.First(&submission, *submissionID).Error; err != nil {
			return nil, fmt.Errorf("40404:提交记录不存在")
		}
		if submission.UserID != userID {
			return nil, fmt.Errorf("40404:提交记录不存在")
		}
		if !submission.Status.CanTransitionTo(status) {
			return nil, fmt.Errorf("40006:已提交的申请不能退回草稿")
		}
		if err := s.db.Model(&submission).Update("status", status).Error; err != nil {
			return nil, err
		}
	}

	if answers != nil {
		err := s.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("application_submission_id = ?", submission.ID).
				Delete(&model.ApplicationSubmissionAnswer{}).Error; err != nil {
				return err
			}
			for _, a := range answers {
				answer := model.ApplicationSubmissionAnswer{
					ApplicationSubmissionID: submission.ID,
					QuestionID:              a.QuestionID,
					Answer:                  a.Answer,
				}
				if err := tx.Create(&answer).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	var result model.ApplicationSubmission
	if err := s.db.Preload("Answers").Preload("Application").
		First(&result, submission.ID).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

// ListForUser returns every submission owned by the caller, each with its
// application (questions in display order) and answers. Applications past
// their deadline are reconciled to CLOSED after loading, so the payload
// that triggered the reconcile still shows the stale status.
func (s *ApplicationSubmissionService) ListForUser(userID uint) ([]model.ApplicationSubmission, error) {
	var submissions []model.ApplicationSubmission
	if err := s.db.Where("user_id = ?", userID).
		Preload("Application.Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_number asc")
		}).
		Preload("Answers").
		Find(&submissions).Error; err != nil {
		return nil, err
	}
	for i := range submissions {
		s.apps.CloseIfExpired(submissions[i].Application)
	}
	return submissions, nil
}

// GetByApplicationID returns the caller's submission for the application,
// or nil when none exists.
func (s *ApplicationSubmissionService) GetByApplicationID(userID, applicationID uint) (*model.ApplicationSubmission, error) {
	var submission model.ApplicationSubmission
	err := s.db.Where("application_id = ? AND user_id = ?", applicationID, userID).
		Preload("Answers").Preload("Application").
		First(&submission).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	s.apps.CloseIfExpired(submission.Application)
	return &submission, nil
}

// Withdraw deletes the caller's submission with its answers and
// evaluation in one transaction, children first. When the owning
// application is standalone and this was its last submission, the
// application goes too.
func (s *ApplicationSubmissionService) Withdraw(userID, submissionID uint) error {
	var submission model.ApplicationSubmission
	if err := s.db.First(&submission, submissionID).Error; err != nil {
		return fmt.Errorf("40404:提交记录不存在")
	}
	if submission.UserID != userID {
		return fmt.Errorf("40404:提交记录不存在")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("application_submission_id = ?", submission.ID).
			Delete(&model.ApplicationSubmissionAnswer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("application_submission_id = ?", submission.ID).
			Delete(&model.ApplicationSubmissionEvaluation{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&submission).Error; err != nil {
			return err
		}

		var remaining int64
		if err := tx.Model(&model.ApplicationSubmission{}).
			Where("application_id = ?", submission.ApplicationID).
			Count(&remaining).Error; err != nil {
			return err
		}
		if remaining == 0 {
			var app model.Application
			if err := tx.First(&app, submission.ApplicationID).Error; err != nil {
				// Application already gone, nothing left to clean up.
				return nil
			}
			if app.ProjectID == nil {
				if err := tx.Delete(&app).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// GetByIDForEvaluator fetches a submission with its full question set and
// the submitter's identity. Access control happens at the route.
func (s *ApplicationSubmissionService) GetByIDForEvaluator(submissionID uint) (*model.ApplicationSubmission, error) {
	var submission model.ApplicationSubmission
	err := s.db.
		Preload("Answers").
		Preload("Application.Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_number asc")
		}).
		Preload("User").
		Preload("Evaluation").
		First(&submission, submissionID).Error
	if err != nil {
		return nil, fmt.Errorf("40404:提交记录不存在")
	}
	s.apps.CloseIfExpired(submission.Application)
	return &submission, nil
}

// UpsertEvaluation records an evaluator's decision for a submission,
// one evaluation per submission.
func (s *ApplicationSubmissionService) UpsertEvaluation(evaluatorID, submissionID uint, decision model.EvaluationDecision, notes string) (*model.ApplicationSubmissionEvaluation, error) {
	var submission model.ApplicationSubmission
	if err := s.db.First(&submission, submissionID).Error; err != nil {
		return nil, fmt.Errorf("40404:提交记录不存在")
	}

	var evaluation model.ApplicationSubmissionEvaluation
	err := s.db.Where("application_submission_id = ?", submissionID).First(&evaluation).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
		evaluation = model.ApplicationSubmissionEvaluation{
			ApplicationSubmissionID: submissionID,
			EvaluatorID:             evaluatorID,
			Decision:                decision,
			Notes:                   notes,
		}
		if err := s.db.Create(&evaluation).Error; err != nil {
			return nil, err
		}
		return &evaluation, nil
	}

	updates := map[string]interface{}{
		"evaluator_id": evaluatorID,
		"decision":     decision,
		"notes":        notes,
	}
	if err := s.db.Model(&evaluation).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &evaluation, nil
}
