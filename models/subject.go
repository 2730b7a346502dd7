package models

import (
	"time"

	"github.com/google/uuid"
)

type Subject struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CourseID    uuid.UUID `gorm:"type:uuid;not null" json:"course_id"`
	Course      Course    `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	Term        int       `gorm:"not null;default:1" json:"term"` // 1..Course.Terms
	Slug        string    `gorm:"size:255;index" json:"slug"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
