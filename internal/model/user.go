package model

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Subject     string         `gorm:"type:varchar(128);uniqueIndex:idx_subject;not null" json:"-"`
	Name        string         `gorm:"type:varchar(64);not null" json:"name"`
	Avatar      string         `gorm:"type:varchar(512)" json:"avatar"`
	Email       string         `gorm:"type:varchar(128)" json:"email"`
	Status      int            `gorm:"default:1" json:"status"`
	LastLoginAt *time.Time     `json:"last_login_at"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }

type UserBrief struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
	Email  string `json:"email,omitempty"`
}

func (u *User) Brief() UserBrief {
	return UserBrief{
		ID:     u.ID,
		Name:   u.Name,
		Avatar: u.Avatar,
		Email:  u.Email,
	}
}
