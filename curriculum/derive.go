package curriculum

import (
	"strings"

	"github.com/google/uuid"
)

// Filter "xem tất cả" cho dropdown khoá học.
const AllCourses = "All"

// Các hàm derivation đều thuần: chỉ đọc snapshot, không side effect,
// gọi bao nhiêu lần và theo thứ tự nào cũng cho cùng kết quả.

// TermsForCourse trả về dãy [1..terms] của khoá học.
// Course không tồn tại hoặc terms <= 0 thì trả về dãy rỗng, không lỗi.
func (s *Store) TermsForCourse(courseID uuid.UUID) []int {
	course, ok := s.CourseByID(courseID)
	if !ok || course.Terms <= 0 {
		return []int{}
	}
	terms := make([]int, course.Terms)
	for i := range terms {
		terms[i] = i + 1
	}
	return terms
}

// SubjectsForCourseAndTerm lọc subject theo đúng cặp (courseID, term).
// Giữ nguyên thứ tự trong store để option list không nhảy giữa các lần render.
func (s *Store) SubjectsForCourseAndTerm(courseID uuid.UUID, term int) []Subject {
	result := []Subject{}
	for _, sub := range s.Subjects() {
		if sub.CourseID == courseID && sub.Term == term {
			result = append(result, sub)
		}
	}
	return result
}

// UnitsForSubject lọc unit theo tên môn học đã denormalize.
// Unit sau khi fetch chỉ còn giữ tên môn, nên phải so theo tên;
// hai môn trùng tên ở hai khoá khác nhau sẽ bị gộp chung.
func (s *Store) UnitsForSubject(subjectName string) []Unit {
	result := []Unit{}
	for _, u := range s.Units() {
		if u.Subject == subjectName {
			result = append(result, u)
		}
	}
	return result
}

// FilterUnits áp hai điều kiện AND: search khớp substring (không phân biệt
// hoa thường) trên title hoặc description, và course khớp đúng tên
// (hoặc AllCourses). Search rỗng khớp tất cả. Thứ tự input được giữ nguyên.
func FilterUnits(units []Unit, search, courseFilter string) []Unit {
	needle := strings.ToLower(search)
	result := []Unit{}
	for _, u := range units {
		matchesSearch := needle == "" ||
			strings.Contains(strings.ToLower(u.Title), needle) ||
			strings.Contains(strings.ToLower(u.Description), needle)
		matchesCourse := courseFilter == AllCourses || u.Course == courseFilter
		if matchesSearch && matchesCourse {
			result = append(result, u)
		}
	}
	return result
}

// DistinctCourseNames liệt kê tên khoá học xuất hiện trong units,
// không trùng lặp, theo thứ tự xuất hiện lần đầu.
func DistinctCourseNames(units []Unit) []string {
	seen := make(map[string]bool)
	names := []string{}
	for _, u := range units {
		if !seen[u.Course] {
			seen[u.Course] = true
			names = append(names, u.Course)
		}
	}
	return names
}
