package models

import (
	"time"

	"github.com/google/uuid"
)

// Lesson thuộc trọn về một Unit; thứ tự hiển thị theo SortOrder.
type Lesson struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UnitID    uuid.UUID `gorm:"type:uuid;not null" json:"unit_id"`
	Unit      Unit      `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Content   string    `gorm:"type:text" json:"content"` // markup HTML, backend không parse
	SortOrder int       `gorm:"column:sort_order;default:1" json:"sort_order"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
