package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/ngtlinh/edupanel-backend/curriculum"
	"github.com/ngtlinh/edupanel-backend/models"
)

// GormRepository là query client mỏng tới Postgres, implement
// curriculum.Repository. Chỉ làm hai việc: query và map bản ghi thô
// (models, còn dính tên join + lessons lồng) sang kiểu chuẩn hoá
// của curriculum. Không chứa business logic.
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) ListCourses(ctx context.Context) ([]curriculum.Course, error) {
	var rows []models.Course
	if err := r.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, err
	}
	courses := make([]curriculum.Course, 0, len(rows))
	for _, row := range rows {
		courses = append(courses, mapCourse(row))
	}
	return courses, nil
}

func (r *GormRepository) InsertCourse(ctx context.Context, name string, terms int) (curriculum.Course, error) {
	row := models.Course{
		Name:  name,
		Terms: terms,
		Slug:  slug.Make(name),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return curriculum.Course{}, err
	}
	return mapCourse(row), nil
}

func (r *GormRepository) ListSubjects(ctx context.Context) ([]curriculum.Subject, error) {
	var rows []models.Subject
	if err := r.db.WithContext(ctx).Preload("Course").Order("name").Find(&rows).Error; err != nil {
		return nil, err
	}
	subjects := make([]curriculum.Subject, 0, len(rows))
	for _, row := range rows {
		subjects = append(subjects, mapSubject(row))
	}
	return subjects, nil
}

func (r *GormRepository) InsertSubject(ctx context.Context, name, description string, courseID uuid.UUID, term int) (curriculum.Subject, error) {
	row := models.Subject{
		Name:        name,
		Description: description,
		CourseID:    courseID,
		Term:        term,
		Slug:        slug.Make(name),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return curriculum.Subject{}, err
	}
	// Lấy lại kèm tên khoá học (UI hiển thị "<course> - Term <n>")
	if err := r.db.WithContext(ctx).Preload("Course").First(&row, "id = ?", row.ID).Error; err != nil {
		return curriculum.Subject{}, err
	}
	return mapSubject(row), nil
}

func (r *GormRepository) ListUnits(ctx context.Context) ([]curriculum.Unit, error) {
	var rows []models.Unit
	err := r.db.WithContext(ctx).
		Preload("Course").
		Preload("Subject").
		Preload("Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order asc, created_at asc")
		}).
		Order("created_at desc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	units := make([]curriculum.Unit, 0, len(rows))
	for _, row := range rows {
		units = append(units, mapUnit(row))
	}
	return units, nil
}

func (r *GormRepository) GetUnit(ctx context.Context, id uuid.UUID) (curriculum.Unit, bool, error) {
	var row models.Unit
	err := r.db.WithContext(ctx).
		Preload("Course").
		Preload("Subject").
		Preload("Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order asc, created_at asc")
		}).
		First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return curriculum.Unit{}, false, nil
	}
	if err != nil {
		return curriculum.Unit{}, false, err
	}
	return mapUnit(row), true, nil
}

func (r *GormRepository) InsertUnit(ctx context.Context, input curriculum.NewUnit) (curriculum.Unit, error) {
	row := models.Unit{
		Title:       input.Title,
		Description: input.Description,
		CourseID:    input.CourseID,
		SubjectID:   input.SubjectID,
		Term:        input.Term,
		Progress:    0,
		Status:      string(curriculum.StatusDraft),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return curriculum.Unit{}, err
	}
	// Bản ghi mới chưa preload tên course/subject; gateway tự điền từ snapshot
	return mapUnit(row), nil
}

func (r *GormRepository) UpdateUnit(ctx context.Context, id uuid.UUID, patch curriculum.UnitPatch) (curriculum.Unit, error) {
	updates := map[string]interface{}{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}

	var row models.Unit
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return curriculum.Unit{}, err
	}
	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).Model(&row).Updates(updates).Error; err != nil {
			return curriculum.Unit{}, err
		}
	}
	return mapUnit(row), nil
}

func (r *GormRepository) DeleteUnit(ctx context.Context, id uuid.UUID) error {
	// Lessons đi theo unit nhờ OnDelete:CASCADE
	return r.db.WithContext(ctx).Delete(&models.Unit{}, "id = ?", id).Error
}

// ===== Mapping: bản ghi thô -> kiểu chuẩn hoá =====
// Shape denormalized dừng lại ở đây, không lọt vào derivation engine.

func mapCourse(row models.Course) curriculum.Course {
	return curriculum.Course{
		ID:    row.ID,
		Name:  row.Name,
		Terms: row.Terms,
	}
}

func mapSubject(row models.Subject) curriculum.Subject {
	courseName := row.Course.Name
	if courseName == "" {
		courseName = "Unknown Course"
	}
	return curriculum.Subject{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		CourseID:    row.CourseID,
		CourseName:  courseName,
		Term:        row.Term,
	}
}

func mapUnit(row models.Unit) curriculum.Unit {
	courseName := row.Course.Name
	if courseName == "" {
		courseName = "Unknown Course"
	}
	subjectName := row.Subject.Name
	if subjectName == "" {
		subjectName = "Unknown Subject"
	}

	lessons := make([]curriculum.Lesson, 0, len(row.Lessons))
	for _, l := range row.Lessons {
		lessons = append(lessons, curriculum.Lesson{
			ID:      l.ID,
			Title:   l.Title,
			Content: l.Content,
		})
	}

	return curriculum.Unit{
		ID:           row.ID,
		Title:        row.Title,
		Description:  row.Description,
		Course:       courseName,
		Subject:      subjectName,
		Term:         row.Term,
		Lessons:      lessons,
		Progress:     row.Progress,
		Status:       curriculum.UnitStatus(row.Status),
		LastModified: row.CreatedAt.Format("2006-01-02"),
	}
}
