package models

import (
	"time"

	"github.com/google/uuid"
)

type Course struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null;unique" json:"name"`
	Terms     int       `gorm:"not null;default:2" json:"terms"` // số học kỳ (hoặc số năm với khoá GNM)
	Slug      string    `gorm:"size:255;uniqueIndex" json:"slug"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	Subjects  []Subject `gorm:"foreignKey:CourseID" json:"subjects,omitempty"`
}
