package model

import (
	"time"

	"gorm.io/gorm"
)

type ApplicationStatus string

const (
	ApplicationStatusDraft  ApplicationStatus = "DRAFT"
	ApplicationStatusOpen   ApplicationStatus = "OPEN"
	ApplicationStatusClosed ApplicationStatus = "CLOSED"
)

// Application is a form template. ProjectID is nullable: a standalone
// application (no owning project) is deleted once its last submission
// is withdrawn.
type Application struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	ProjectID   *uint             `gorm:"index:idx_project_id" json:"project_id"`
	Name        string            `gorm:"type:varchar(128);not null" json:"name"`
	Description string            `gorm:"type:text" json:"description"`
	Deadline    *time.Time        `json:"deadline"`
	Status      ApplicationStatus `gorm:"type:varchar(10);not null;default:DRAFT;index:idx_status" json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	DeletedAt   gorm.DeletedAt    `gorm:"index" json:"-"`

	Project   *Project              `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Questions []ApplicationQuestion `gorm:"foreignKey:ApplicationID" json:"questions,omitempty"`
}

func (Application) TableName() string { return "applications" }
