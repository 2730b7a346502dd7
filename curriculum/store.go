package curriculum

import (
	"sync"

	"github.com/google/uuid"
)

// Store giữ snapshot trong bộ nhớ của toàn bộ dữ liệu giáo trình đã fetch.
// Đây là nguồn duy nhất cho derivation; mọi view đều tính lại từ đây.
// Store chỉ được ghi sau khi một lời gọi collaborator thành công.
type Store struct {
	mu       sync.RWMutex
	courses  []Course
	subjects []Subject
	units    []Unit
	loaded   bool
}

func NewStore() *Store {
	return &Store{}
}

// ReplaceAll thay cả ba collection trong một lần khoá duy nhất.
// Dùng sau initial load: derivation chỉ có nghĩa khi cả ba đã về đủ.
func (s *Store) ReplaceAll(courses []Course, subjects []Subject, units []Unit) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.courses = cloneCourses(courses)
	s.subjects = cloneSubjects(subjects)
	s.units = cloneUnits(units)
	s.loaded = true
}

// Loaded cho biết initial load đã hoàn tất chưa (cả ba collection).
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

func (s *Store) ReplaceCourses(courses []Course) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.courses = cloneCourses(courses)
}

func (s *Store) ReplaceSubjects(subjects []Subject) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subjects = cloneSubjects(subjects)
}

func (s *Store) ReplaceUnits(units []Unit) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.units = cloneUnits(units)
}

// AppendCourse thêm course mới (đã có id do server cấp) vào cuối collection.
func (s *Store) AppendCourse(c Course) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.courses = append(s.courses, c)
}

func (s *Store) AppendSubject(sub Subject) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subjects = append(s.subjects, sub)
}

// UpsertUnit cập nhật unit theo id, hoặc thêm mới nếu chưa có.
// Dùng cho optimistic update sau khi gateway gọi collaborator thành công.
func (s *Store) UpsertUnit(u Unit) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.units {
		if s.units[i].ID == u.ID {
			s.units[i] = cloneUnit(u)
			return
		}
	}
	s.units = append(s.units, cloneUnit(u))
}

// RemoveUnit xoá unit khỏi snapshot. Id không tồn tại thì bỏ qua (no-op).
func (s *Store) RemoveUnit(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.units {
		if s.units[i].ID == id {
			s.units = append(s.units[:i], s.units[i+1:]...)
			return
		}
	}
}

// Courses trả về bản copy, caller sửa thoải mái không ảnh hưởng store.
func (s *Store) Courses() []Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneCourses(s.courses)
}

func (s *Store) Subjects() []Subject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSubjects(s.subjects)
}

func (s *Store) Units() []Unit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneUnits(s.units)
}

func (s *Store) CourseByID(id uuid.UUID) (Course, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.courses {
		if c.ID == id {
			return c, true
		}
	}
	return Course{}, false
}

func (s *Store) SubjectByID(id uuid.UUID) (Subject, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sub := range s.subjects {
		if sub.ID == id {
			return sub, true
		}
	}
	return Subject{}, false
}

func (s *Store) UnitByID(id uuid.UUID) (Unit, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.units {
		if s.units[i].ID == id {
			return cloneUnit(s.units[i]), true
		}
	}
	return Unit{}, false
}

func cloneCourses(in []Course) []Course {
	out := make([]Course, len(in))
	copy(out, in)
	return out
}

func cloneSubjects(in []Subject) []Subject {
	out := make([]Subject, len(in))
	copy(out, in)
	return out
}

func cloneUnit(u Unit) Unit {
	lessons := make([]Lesson, len(u.Lessons))
	copy(lessons, u.Lessons)
	u.Lessons = lessons
	return u
}

func cloneUnits(in []Unit) []Unit {
	out := make([]Unit, len(in))
	for i := range in {
		out[i] = cloneUnit(in[i])
	}
	return out
}
