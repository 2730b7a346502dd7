package curriculum

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// NewUnit là input tạo unit; id và timestamp do kho dữ liệu cấp.
type NewUnit struct {
	Title       string
	Description string
	CourseID    uuid.UUID
	SubjectID   uuid.UUID
	Term        int
}

// UnitPatch chỉ chứa các trường của unit được phép sửa từ xa.
// Field nil nghĩa là giữ nguyên giá trị cũ.
type UnitPatch struct {
	Title       *string
	Description *string
}

// Repository là query client mỏng tới kho dữ liệu ngoài.
// Mọi lời gọi đều có thể thất bại với message mờ (opaque);
// gateway gói lại thành CollaboratorError, không diễn giải.
type Repository interface {
	ListCourses(ctx context.Context) ([]Course, error)
	InsertCourse(ctx context.Context, name string, terms int) (Course, error)
	ListSubjects(ctx context.Context) ([]Subject, error)
	InsertSubject(ctx context.Context, name, description string, courseID uuid.UUID, term int) (Subject, error)
	ListUnits(ctx context.Context) ([]Unit, error)
	GetUnit(ctx context.Context, id uuid.UUID) (Unit, bool, error)
	InsertUnit(ctx context.Context, input NewUnit) (Unit, error)
	UpdateUnit(ctx context.Context, id uuid.UUID, patch UnitPatch) (Unit, error)
	DeleteUnit(ctx context.Context, id uuid.UUID) error
}

// Gateway kiểm tra invariant trên snapshot cục bộ trước khi gọi collaborator,
// và chỉ fold kết quả vào store khi lời gọi thành công.
// Store không bao giờ bị đổi khi có lỗi; cũng không có retry tự động.
type Gateway struct {
	store *Store
	repo  Repository
}

func NewGateway(store *Store, repo Repository) *Gateway {
	return &Gateway{store: store, repo: repo}
}

func (g *Gateway) Store() *Store { return g.store }

// Refresh tải lại cả ba collection rồi thay snapshot trong một lần.
// Bất kỳ request nào lỗi thì store giữ nguyên trạng thái cũ.
func (g *Gateway) Refresh(ctx context.Context) error {
	courses, err := g.repo.ListCourses(ctx)
	if err != nil {
		return &CollaboratorError{Op: "list courses", Err: err}
	}
	subjects, err := g.repo.ListSubjects(ctx)
	if err != nil {
		return &CollaboratorError{Op: "list subjects", Err: err}
	}
	units, err := g.repo.ListUnits(ctx)
	if err != nil {
		return &CollaboratorError{Op: "list units", Err: err}
	}
	// Caller đã huỷ request thì bỏ kết quả, không ghi đè snapshot
	if ctx.Err() != nil {
		return ctx.Err()
	}
	g.store.ReplaceAll(courses, subjects, units)
	return nil
}

// LoadUnit đọc một unit trực tiếp từ collaborator (classroom luôn lấy
// bản mới nhất) rồi đồng bộ lại vào snapshot.
func (g *Gateway) LoadUnit(ctx context.Context, id uuid.UUID) (Unit, error) {
	unit, found, err := g.repo.GetUnit(ctx, id)
	if err != nil {
		return Unit{}, &CollaboratorError{Op: "get unit", Err: err}
	}
	if !found {
		return Unit{}, &NotFoundError{Entity: "unit", ID: id.String()}
	}
	if ctx.Err() != nil {
		return unit, ctx.Err()
	}
	g.store.UpsertUnit(unit)
	return unit, nil
}

func (g *Gateway) CreateCourse(ctx context.Context, name string, terms int) (Course, error) {
	if strings.TrimSpace(name) == "" {
		return Course{}, &ValidationError{Field: "name", Reason: "tên khoá học không được để trống"}
	}
	if terms < 1 {
		return Course{}, &ValidationError{Field: "terms", Reason: "số học kỳ phải >= 1"}
	}

	course, err := g.repo.InsertCourse(ctx, name, terms)
	if err != nil {
		return Course{}, &CollaboratorError{Op: "insert course", Err: err}
	}
	if ctx.Err() != nil {
		return course, ctx.Err()
	}
	g.store.AppendCourse(course)
	return course, nil
}

func (g *Gateway) CreateSubject(ctx context.Context, name, description string, courseID uuid.UUID, term int) (Subject, error) {
	if strings.TrimSpace(name) == "" {
		return Subject{}, &ValidationError{Field: "name", Reason: "tên môn học không được để trống"}
	}
	course, ok := g.store.CourseByID(courseID)
	if !ok {
		return Subject{}, &ValidationError{Field: "course_id", Reason: "khoá học không tồn tại"}
	}
	if term < 1 || term > course.Terms {
		return Subject{}, &ValidationError{Field: "term", Reason: "học kỳ nằm ngoài phạm vi của khoá học"}
	}

	subject, err := g.repo.InsertSubject(ctx, name, description, courseID, term)
	if err != nil {
		return Subject{}, &CollaboratorError{Op: "insert subject", Err: err}
	}
	if ctx.Err() != nil {
		return subject, ctx.Err()
	}
	g.store.AppendSubject(subject)
	return subject, nil
}

func (g *Gateway) CreateUnit(ctx context.Context, input NewUnit) (Unit, error) {
	if strings.TrimSpace(input.Title) == "" {
		return Unit{}, &ValidationError{Field: "title", Reason: "tiêu đề unit không được để trống"}
	}
	course, ok := g.store.CourseByID(input.CourseID)
	if !ok {
		return Unit{}, &ValidationError{Field: "course_id", Reason: "khoá học không tồn tại"}
	}
	// Subject phải thuộc đúng cặp (course, term) theo derivation
	var subject *Subject
	for _, s := range g.store.SubjectsForCourseAndTerm(input.CourseID, input.Term) {
		if s.ID == input.SubjectID {
			sub := s
			subject = &sub
			break
		}
	}
	if subject == nil {
		return Unit{}, &ValidationError{Field: "subject_id", Reason: "môn học không thuộc khoá học / học kỳ đã chọn"}
	}

	created, err := g.repo.InsertUnit(ctx, input)
	if err != nil {
		return Unit{}, &CollaboratorError{Op: "insert unit", Err: err}
	}
	if ctx.Err() != nil {
		return created, ctx.Err()
	}

	// Bản ghi trả về chưa join tên, điền từ snapshot
	created.Course = course.Name
	created.Subject = subject.Name
	created.Term = input.Term
	if created.Lessons == nil {
		created.Lessons = []Lesson{}
	}
	g.store.UpsertUnit(created)
	return created, nil
}

func (g *Gateway) UpdateUnit(ctx context.Context, id uuid.UUID, patch UnitPatch) (Unit, error) {
	existing, ok := g.store.UnitByID(id)
	if !ok {
		return Unit{}, &NotFoundError{Entity: "unit", ID: id.String()}
	}

	updated, err := g.repo.UpdateUnit(ctx, id, patch)
	if err != nil {
		return Unit{}, &CollaboratorError{Op: "update unit", Err: err}
	}
	if ctx.Err() != nil {
		return updated, ctx.Err()
	}

	// Merge patch vào bản ghi cũ, field không gửi thì giữ nguyên
	if patch.Title != nil {
		existing.Title = *patch.Title
	}
	if patch.Description != nil {
		existing.Description = *patch.Description
	}
	existing.LastModified = updated.LastModified
	g.store.UpsertUnit(existing)
	return existing, nil
}

// DeleteUnit luôn gọi collaborator; id không có trong snapshot thì phần xoá
// cục bộ là no-op chứ không phải lỗi.
func (g *Gateway) DeleteUnit(ctx context.Context, id uuid.UUID) error {
	if err := g.repo.DeleteUnit(ctx, id); err != nil {
		return &CollaboratorError{Op: "delete unit", Err: err}
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	g.store.RemoveUnit(id)
	return nil
}

// AddLessonToUnit chỉ sửa danh sách lesson cục bộ; chưa có API riêng
// cho lesson ở phía kho dữ liệu.
func (g *Gateway) AddLessonToUnit(unitID uuid.UUID, title, content string) (Lesson, error) {
	if strings.TrimSpace(title) == "" {
		return Lesson{}, &ValidationError{Field: "title", Reason: "tiêu đề lesson không được để trống"}
	}
	unit, ok := g.store.UnitByID(unitID)
	if !ok {
		return Lesson{}, &NotFoundError{Entity: "unit", ID: unitID.String()}
	}

	lesson := Lesson{
		ID:      uuid.New(),
		Title:   title,
		Content: content,
	}
	unit.Lessons = append(unit.Lessons, lesson)
	g.store.UpsertUnit(unit)
	return lesson, nil
}

func (g *Gateway) RemoveLessonFromUnit(unitID, lessonID uuid.UUID) error {
	unit, ok := g.store.UnitByID(unitID)
	if !ok {
		return &NotFoundError{Entity: "unit", ID: unitID.String()}
	}

	kept := unit.Lessons[:0]
	for _, l := range unit.Lessons {
		if l.ID != lessonID {
			kept = append(kept, l)
		}
	}
	unit.Lessons = kept
	g.store.UpsertUnit(unit)
	return nil
}
