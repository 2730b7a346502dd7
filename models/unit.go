package models

import (
	"time"

	"github.com/google/uuid"
)

type Unit struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	CourseID    uuid.UUID `gorm:"type:uuid;not null" json:"course_id"`
	Course      Course    `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	SubjectID   uuid.UUID `gorm:"type:uuid;not null" json:"subject_id"`
	Subject     Subject   `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	Term        int       `gorm:"not null;default:1" json:"term"`
	Progress    int       `gorm:"not null;default:0" json:"progress"` // 0..100
	Status      string    `gorm:"type:varchar(20);not null;default:'draft'" json:"status"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	Lessons     []Lesson  `gorm:"foreignKey:UnitID" json:"lessons"`
}
