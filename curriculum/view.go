package curriculum

import (
	"fmt"
	"regexp"
	"strings"
)

// Presentation adapter: các hàm thuần map dữ liệu store/derivation
// sang giá trị hiển thị. Thiếu dữ liệu thì dùng default, không bao giờ lỗi.

var tagPattern = regexp.MustCompile(`<[^>]+>`)

// LessonPreview bỏ hết tag markup, gom khoảng trắng rồi cắt còn maxLen ký tự.
func LessonPreview(content string, maxLen int) string {
	plain := tagPattern.ReplaceAllString(content, " ")
	plain = strings.Join(strings.Fields(plain), " ")
	if plain == "" {
		return "No content"
	}
	// Cắt theo rune để không vỡ ký tự unicode
	if r := []rune(plain); maxLen > 0 && len(r) > maxLen {
		return strings.TrimSpace(string(r[:maxLen])) + "…"
	}
	return plain
}

// ClampProgress ép progress về [0, 100] dù nguồn có giá trị lệch.
func ClampProgress(progress int) int {
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}

// StatusBadge map trạng thái unit sang loại badge trên card.
func StatusBadge(status UnitStatus) string {
	switch status {
	case StatusPublished:
		return "success"
	case StatusDraft:
		return "warning"
	case StatusArchived:
		return "muted"
	default:
		return "muted"
	}
}

// TermLabel chọn nhãn cho dropdown học kỳ. Khoá GNM học theo năm,
// còn lại theo semester (heuristic đơn giản lấy từ UI, không cấu hình được).
func TermLabel(courseName string) string {
	if strings.Contains(courseName, "GNM") {
		return "Year"
	}
	return "Semester"
}

// Describe trả về placeholder khi unit không có mô tả.
func Describe(description string) string {
	if strings.TrimSpace(description) == "" {
		return "No description provided."
	}
	return description
}

// CourseOptions dựng option list cho filter khoá học: sentinel "All"
// đứng đầu, sau đó là tên khoá theo thứ tự xuất hiện.
func CourseOptions(units []Unit) []string {
	return append([]string{AllCourses}, DistinctCourseNames(units)...)
}

// LessonListContent chuyển nội dung nhập theo dòng thành markup bullet list,
// đúng format mà editor tạo topic sử dụng.
func LessonListContent(text string) string {
	lines := strings.Split(text, "\n")
	return fmt.Sprintf("<ul><li>%s</li></ul>", strings.Join(lines, "</li><li>"))
}

// LessonCount chịu được unit chưa có lessons (nil slice).
func LessonCount(u Unit) int {
	return len(u.Lessons)
}

// UnitCard là view-model cho card ở trang danh sách unit.
type UnitCard struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Course       string `json:"course"`
	Subject      string `json:"subject"`
	Term         int    `json:"term"`
	LessonCount  int    `json:"lesson_count"`
	Progress     int    `json:"progress"`
	Status       string `json:"status"`
	StatusBadge  string `json:"status_badge"`
	LastModified string `json:"last_modified"`
}

func BuildUnitCard(u Unit) UnitCard {
	return UnitCard{
		ID:           u.ID.String(),
		Title:        u.Title,
		Description:  Describe(u.Description),
		Course:       u.Course,
		Subject:      u.Subject,
		Term:         u.Term,
		LessonCount:  LessonCount(u),
		Progress:     ClampProgress(u.Progress),
		Status:       string(u.Status),
		StatusBadge:  StatusBadge(u.Status),
		LastModified: u.LastModified,
	}
}

func BuildUnitCards(units []Unit) []UnitCard {
	cards := make([]UnitCard, 0, len(units))
	for _, u := range units {
		cards = append(cards, BuildUnitCard(u))
	}
	return cards
}
