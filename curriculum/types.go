package curriculum

import "github.com/google/uuid"

// Trạng thái của một unit trong giáo trình
type UnitStatus string

const (
	StatusDraft     UnitStatus = "draft"
	StatusPublished UnitStatus = "published"
	StatusArchived  UnitStatus = "archived"
)

// Các kiểu dữ liệu chuẩn hoá dùng trong store và derivation.
// Khác với models (bản ghi GORM thô), các struct này đã gộp sẵn
// tên course/subject và danh sách lesson theo đúng thứ tự hiển thị.

type Course struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Terms int       `json:"terms"` // số học kỳ / số năm của khoá học
}

type Subject struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CourseID    uuid.UUID `json:"course_id"`
	CourseName  string    `json:"course_name"` // tên khoá học đã join sẵn
	Term        int       `json:"term"`
}

type Lesson struct {
	ID      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"` // markup dạng HTML, store không parse
}

type Unit struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Course       string     `json:"course"`  // tên khoá học (denormalized)
	Subject      string     `json:"subject"` // tên môn học (denormalized)
	Term         int        `json:"term"`
	Lessons      []Lesson   `json:"lessons"` // thứ tự là thứ tự trình chiếu
	Progress     int        `json:"progress"`
	Status       UnitStatus `json:"status"`
	LastModified string     `json:"last_modified"` // YYYY-MM-DD
}
