package model

import (
	"time"

	"gorm.io/gorm"
)

// ClubApplication is the club-level application template, independent of
// any project-owned Application.
type ClubApplication struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"type:varchar(128);not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Questions []ClubApplicationQuestion `gorm:"foreignKey:ClubApplicationID" json:"questions,omitempty"`
}

func (ClubApplication) TableName() string { return "club_applications" }

type ClubApplicationQuestion struct {
	ID                uint         `gorm:"primaryKey" json:"id"`
	ClubApplicationID uint         `gorm:"not null;index:idx_club_application_id" json:"club_application_id"`
	OrderNumber       int          `gorm:"not null" json:"order_number"`
	Question          string       `gorm:"type:text;not null" json:"question"`
	Type              QuestionType `gorm:"type:varchar(20);not null" json:"type"`
	Required          bool         `gorm:"not null" json:"required"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

func (ClubApplicationQuestion) TableName() string { return "club_application_questions" }
