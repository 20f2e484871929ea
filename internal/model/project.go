package model

import (
	"time"

	"gorm.io/gorm"
)

type Project struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"type:varchar(128);not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Members      []Member      `gorm:"foreignKey:ProjectID" json:"members,omitempty"`
	Applications []Application `gorm:"foreignKey:ProjectID" json:"applications,omitempty"`
}

func (Project) TableName() string { return "projects" }
