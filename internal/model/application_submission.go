package model

import "time"

type SubmissionStatus string

const (
	SubmissionStatusNew       SubmissionStatus = "NEW"
	SubmissionStatusDraft     SubmissionStatus = "DRAFT"
	SubmissionStatusSubmitted SubmissionStatus = "SUBMITTED"
)

func (s SubmissionStatus) Valid() bool {
	switch s {
	case SubmissionStatusNew, SubmissionStatusDraft, SubmissionStatusSubmitted:
		return true
	}
	return false
}

// rank orders the lifecycle so the upsert path can refuse regressions.
func (s SubmissionStatus) rank() int {
	switch s {
	case SubmissionStatusNew:
		return 0
	case SubmissionStatusDraft:
		return 1
	case SubmissionStatusSubmitted:
		return 2
	}
	return -1
}

// CanTransitionTo reports whether moving from s to next keeps the
// NEW -> DRAFT -> SUBMITTED ordering. Re-saving the same status is allowed.
func (s SubmissionStatus) CanTransitionTo(next SubmissionStatus) bool {
	return next.rank() >= s.rank()
}

// ApplicationSubmission is one user's attempt at an application. A user
// holds at most one submission per application.
type ApplicationSubmission struct {
	ID            uint             `gorm:"primaryKey" json:"id"`
	ApplicationID uint             `gorm:"not null;uniqueIndex:uk_application_user" json:"application_id"`
	UserID        uint             `gorm:"not null;uniqueIndex:uk_application_user;index:idx_application_submissions_user_id" json:"user_id"`
	Status        SubmissionStatus `gorm:"type:varchar(10);not null;default:NEW" json:"status"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`

	Application *Application                     `gorm:"foreignKey:ApplicationID" json:"application,omitempty"`
	User        *User                            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Answers     []ApplicationSubmissionAnswer    `gorm:"foreignKey:ApplicationSubmissionID" json:"answers,omitempty"`
	Evaluation  *ApplicationSubmissionEvaluation `gorm:"foreignKey:ApplicationSubmissionID" json:"evaluation,omitempty"`
}

func (ApplicationSubmission) TableName() string { return "application_submissions" }

type ApplicationSubmissionAnswer struct {
	ID                      uint      `gorm:"primaryKey" json:"id"`
	ApplicationSubmissionID uint      `gorm:"not null;index:idx_submission_id" json:"application_submission_id"`
	QuestionID              uint      `gorm:"not null" json:"question_id"`
	Answer                  string    `gorm:"type:text" json:"answer"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

func (ApplicationSubmissionAnswer) TableName() string { return "application_submission_answers" }

type EvaluationDecision string

const (
	EvaluationDecisionPending EvaluationDecision = "PENDING"
	EvaluationDecisionAccept  EvaluationDecision = "ACCEPT"
	EvaluationDecisionReject  EvaluationDecision = "REJECT"
)

func (d EvaluationDecision) Valid() bool {
	switch d {
	case EvaluationDecisionPending, EvaluationDecisionAccept, EvaluationDecisionReject:
		return true
	}
	return false
}

type ApplicationSubmissionEvaluation struct {
	ID                      uint               `gorm:"primaryKey" json:"id"`
	ApplicationSubmissionID uint               `gorm:"not null;uniqueIndex:uk_submission" json:"application_submission_id"`
	EvaluatorID             uint               `gorm:"not null" json:"evaluator_id"`
	Decision                EvaluationDecision `gorm:"type:varchar(10);not null;default:PENDING" json:"decision"`
	Notes                   string             `gorm:"type:text" json:"notes"`
	CreatedAt               time.Time          `json:"created_at"`
	UpdatedAt               time.Time          `json:"updated_at"`

	Evaluator *User `gorm:"foreignKey:EvaluatorID" json:"evaluator,omitempty"`
}

func (ApplicationSubmissionEvaluation) TableName() string {
	return "application_submission_evaluations"
}
