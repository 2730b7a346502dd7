package curriculum

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo giả lập query client: trả dữ liệu dựng sẵn hoặc lỗi bơm vào,
// và ghi lại các lời gọi để test kiểm tra gateway có gọi hay không.
type fakeRepo struct {
	courses  []Course
	subjects []Subject
	units    []Unit

	listCoursesErr   error
	listSubjectsErr  error
	listUnitsErr     error
	insertCourseErr  error
	insertSubjectErr error
	insertUnitErr    error
	updateUnitErr    error
	deleteUnitErr    error

	getUnit      Unit
	getUnitFound bool
	getUnitErr   error

	calls  []string
	onCall func() // chạy trong lúc collaborator xử lý (giả lập caller đã huỷ)
}

func (f *fakeRepo) record(name string) {
	f.calls = append(f.calls, name)
	if f.onCall != nil {
		f.onCall()
	}
}

func (f *fakeRepo) called(name string) bool {
	for _, c := range f.calls {
		if c == name {
			return true
		}
	}
	return false
}

func (f *fakeRepo) ListCourses(ctx context.Context) ([]Course, error) {
	f.record("ListCourses")
	return f.courses, f.listCoursesErr
}

func (f *fakeRepo) InsertCourse(ctx context.Context, name string, terms int) (Course, error) {
	f.record("InsertCourse")
	if f.insertCourseErr != nil {
		return Course{}, f.insertCourseErr
	}
	return Course{ID: uuid.New(), Name: name, Terms: terms}, nil
}

func (f *fakeRepo) ListSubjects(ctx context.Context) ([]Subject, error) {
	f.record("ListSubjects")
	return f.subjects, f.listSubjectsErr
}

func (f *fakeRepo) InsertSubject(ctx context.Context, name, description string, courseID uuid.UUID, term int) (Subject, error) {
	f.record("InsertSubject")
	if f.insertSubjectErr != nil {
		return Subject{}, f.insertSubjectErr
	}
	return Subject{ID: uuid.New(), Name: name, Description: description, CourseID: courseID, Term: term}, nil
}

func (f *fakeRepo) ListUnits(ctx context.Context) ([]Unit, error) {
	f.record("ListUnits")
	return f.units, f.listUnitsErr
}

func (f *fakeRepo) GetUnit(ctx context.Context, id uuid.UUID) (Unit, bool, error) {
	f.record("GetUnit")
	return f.getUnit, f.getUnitFound, f.getUnitErr
}

func (f *fakeRepo) InsertUnit(ctx context.Context, input NewUnit) (Unit, error) {
	f.record("InsertUnit")
	if f.insertUnitErr != nil {
		return Unit{}, f.insertUnitErr
	}
	return Unit{
		ID:           uuid.New(),
		Title:        input.Title,
		Description:  input.Description,
		Term:         input.Term,
		Progress:     0,
		Status:       StatusDraft,
		LastModified: "2026-08-29",
	}, nil
}

func (f *fakeRepo) UpdateUnit(ctx context.Context, id uuid.UUID, patch UnitPatch) (Unit, error) {
	f.record("UpdateUnit")
	if f.updateUnitErr != nil {
		return Unit{}, f.updateUnitErr
	}
	return Unit{ID: id, LastModified: "2026-08-30"}, nil
}

func (f *fakeRepo) DeleteUnit(ctx context.Context, id uuid.UUID) error {
	f.record("DeleteUnit")
	return f.deleteUnitErr
}

func newTestGateway() (*Gateway, *fakeRepo, Course, Course) {
	store, bsc, gnm := newTestStore()
	repo := &fakeRepo{}
	return NewGateway(store, repo), repo, bsc, gnm
}

func TestCreateCourse(t *testing.T) {
	ctx := context.Background()

	t.Run("thanh cong", func(t *testing.T) {
		gw, _, _, _ := newTestGateway()

		course, err := gw.CreateCourse(ctx, "B.Sc CS New", 3)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, course.ID)

		// Course mới nằm trong snapshot và derivation dùng được ngay
		assert.Equal(t, []int{1, 2, 3}, gw.Store().TermsForCourse(course.ID))
	})

	t.Run("ten rong", func(t *testing.T) {
		gw, repo, _, _ := newTestGateway()
		before := gw.Store().Courses()

		_, err := gw.CreateCourse(ctx, "  ", 2)

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.False(t, repo.called("InsertCourse"), "lỗi validation không được gọi collaborator")
		assert.Equal(t, before, gw.Store().Courses())
	})

	t.Run("terms nho hon 1", func(t *testing.T) {
		gw, _, _, _ := newTestGateway()
		_, err := gw.CreateCourse(ctx, "X", 0)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
	})

	t.Run("collaborator loi", func(t *testing.T) {
		gw, repo, _, _ := newTestGateway()
		repo.insertCourseErr = errors.New("duplicate key value")
		before := gw.Store().Courses()

		_, err := gw.CreateCourse(ctx, "X", 2)

		var cErr *CollaboratorError
		require.ErrorAs(t, err, &cErr)
		// Message gốc được giữ nguyên
		assert.Contains(t, cErr.Error(), "duplicate key value")
		assert.Equal(t, before, gw.Store().Courses())
	})
}

func TestCreateSubject(t *testing.T) {
	ctx := context.Background()

	t.Run("thanh cong va vao dung bucket", func(t *testing.T) {
		gw, _, bsc, _ := newTestGateway()

		subject, err := gw.CreateSubject(ctx, "Physics", "", bsc.ID, 2)
		require.NoError(t, err)

		bucket := gw.Store().SubjectsForCourseAndTerm(bsc.ID, 2)
		names := []string{}
		for _, s := range bucket {
			names = append(names, s.Name)
		}
		assert.Contains(t, names, "Physics")
		assert.NotContains(t, subjectNames(gw.Store().SubjectsForCourseAndTerm(bsc.ID, 1)), subject.Name)
	})

	t.Run("khoa hoc khong ton tai", func(t *testing.T) {
		gw, repo, _, _ := newTestGateway()
		_, err := gw.CreateSubject(ctx, "Physics", "", uuid.New(), 1)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.False(t, repo.called("InsertSubject"))
	})

	t.Run("term ngoai pham vi", func(t *testing.T) {
		gw, _, bsc, _ := newTestGateway()
		var vErr *ValidationError

		_, err := gw.CreateSubject(ctx, "Physics", "", bsc.ID, 4) // bsc chỉ có 3 terms
		require.ErrorAs(t, err, &vErr)

		_, err = gw.CreateSubject(ctx, "Physics", "", bsc.ID, 0)
		require.ErrorAs(t, err, &vErr)
	})
}

func subjectNames(subjects []Subject) []string {
	names := make([]string, 0, len(subjects))
	for _, s := range subjects {
		names = append(names, s.Name)
	}
	return names
}

func TestCreateUnit(t *testing.T) {
	ctx := context.Background()

	t.Run("thanh cong", func(t *testing.T) {
		gw, _, bsc, _ := newTestGateway()
		biology := gw.Store().SubjectsForCourseAndTerm(bsc.ID, 2)[0]

		unit, err := gw.CreateUnit(ctx, NewUnit{
			Title:     "Genetics",
			CourseID:  bsc.ID,
			SubjectID: biology.ID,
			Term:      2,
		})
		require.NoError(t, err)

		assert.Equal(t, StatusDraft, unit.Status)
		assert.Equal(t, 0, unit.Progress)
		assert.NotNil(t, unit.Lessons)
		assert.Empty(t, unit.Lessons)
		// Tên denormalize lấy từ snapshot
		assert.Equal(t, "B.Sc CS", unit.Course)
		assert.Equal(t, "Biology", unit.Subject)

		_, ok := gw.Store().UnitByID(unit.ID)
		assert.True(t, ok)
	})

	t.Run("title rong thi store giu nguyen", func(t *testing.T) {
		gw, repo, bsc, _ := newTestGateway()
		biology := gw.Store().SubjectsForCourseAndTerm(bsc.ID, 2)[0]
		before := gw.Store().Units()

		_, err := gw.CreateUnit(ctx, NewUnit{
			Title:     "",
			CourseID:  bsc.ID,
			SubjectID: biology.ID,
			Term:      2,
		})

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.False(t, repo.called("InsertUnit"))
		assert.Equal(t, before, gw.Store().Units())
	})

	t.Run("subject khong thuoc cap course term", func(t *testing.T) {
		gw, _, bsc, _ := newTestGateway()
		biology := gw.Store().SubjectsForCourseAndTerm(bsc.ID, 2)[0]
		var vErr *ValidationError

		// Đúng subject nhưng sai term
		_, err := gw.CreateUnit(ctx, NewUnit{Title: "X", CourseID: bsc.ID, SubjectID: biology.ID, Term: 1})
		require.ErrorAs(t, err, &vErr)

		// Subject lạ
		_, err = gw.CreateUnit(ctx, NewUnit{Title: "X", CourseID: bsc.ID, SubjectID: uuid.New(), Term: 2})
		require.ErrorAs(t, err, &vErr)
	})

	t.Run("collaborator loi thi store giu nguyen", func(t *testing.T) {
		gw, repo, bsc, _ := newTestGateway()
		biology := gw.Store().SubjectsForCourseAndTerm(bsc.ID, 2)[0]
		repo.insertUnitErr = errors.New("connection refused")
		before := gw.Store().Units()

		_, err := gw.CreateUnit(ctx, NewUnit{Title: "X", CourseID: bsc.ID, SubjectID: biology.ID, Term: 2})

		var cErr *CollaboratorError
		require.ErrorAs(t, err, &cErr)
		assert.Equal(t, before, gw.Store().Units())
	})
}

func TestUpdateUnit(t *testing.T) {
	ctx := context.Background()

	t.Run("id la thi khong goi collaborator", func(t *testing.T) {
		gw, repo, _, _ := newTestGateway()

		_, err := gw.UpdateUnit(ctx, uuid.New(), UnitPatch{})

		var nfErr *NotFoundError
		require.ErrorAs(t, err, &nfErr)
		assert.False(t, repo.called("UpdateUnit"))
	})

	t.Run("patch mot phan", func(t *testing.T) {
		gw, _, _, _ := newTestGateway()
		existing := gw.Store().Units()[0]

		newTitle := "Cells (revised)"
		updated, err := gw.UpdateUnit(ctx, existing.ID, UnitPatch{Title: &newTitle})
		require.NoError(t, err)

		// Title đổi, description giữ nguyên, lastModified refresh
		assert.Equal(t, "Cells (revised)", updated.Title)
		assert.Equal(t, existing.Description, updated.Description)
		assert.Equal(t, "2026-08-30", updated.LastModified)

		stored, ok := gw.Store().UnitByID(existing.ID)
		require.True(t, ok)
		assert.Equal(t, "Cells (revised)", stored.Title)
	})
}

func TestDeleteUnit(t *testing.T) {
	ctx := context.Background()

	t.Run("xoa khoi snapshot", func(t *testing.T) {
		gw, _, _, _ := newTestGateway()
		target := gw.Store().Units()[0]

		require.NoError(t, gw.DeleteUnit(ctx, target.ID))

		_, ok := gw.Store().UnitByID(target.ID)
		assert.False(t, ok)
	})

	t.Run("id khong co van goi collaborator va khong loi", func(t *testing.T) {
		gw, repo, _, _ := newTestGateway()

		require.NoError(t, gw.DeleteUnit(ctx, uuid.New()))
		assert.True(t, repo.called("DeleteUnit"))
	})

	t.Run("collaborator loi thi store giu nguyen", func(t *testing.T) {
		gw, repo, _, _ := newTestGateway()
		repo.deleteUnitErr = errors.New("permission denied")
		target := gw.Store().Units()[0]

		err := gw.DeleteUnit(ctx, target.ID)

		var cErr *CollaboratorError
		require.ErrorAs(t, err, &cErr)
		_, ok := gw.Store().UnitByID(target.ID)
		assert.True(t, ok)
	})
}

func TestLessonMutations(t *testing.T) {
	t.Run("them lesson vao cuoi danh sach", func(t *testing.T) {
		gw, repo, _, _ := newTestGateway()
		unit := gw.Store().Units()[0]

		first, err := gw.AddLessonToUnit(unit.ID, "Lesson 1", "<p>a</p>")
		require.NoError(t, err)
		second, err := gw.AddLessonToUnit(unit.ID, "Lesson 2", "<p>b</p>")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, first.ID)
		stored, _ := gw.Store().UnitByID(unit.ID)
		require.Len(t, stored.Lessons, 2)
		assert.Equal(t, first.ID, stored.Lessons[0].ID)
		assert.Equal(t, second.ID, stored.Lessons[1].ID)

		// Lesson chỉ sửa cục bộ, không có lời gọi collaborator nào
		assert.Empty(t, repo.calls)
	})

	t.Run("title rong", func(t *testing.T) {
		gw, _, _, _ := newTestGateway()
		unit := gw.Store().Units()[0]

		_, err := gw.AddLessonToUnit(unit.ID, "  ", "x")
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
	})

	t.Run("unit khong ton tai", func(t *testing.T) {
		gw, _, _, _ := newTestGateway()
		var nfErr *NotFoundError

		_, err := gw.AddLessonToUnit(uuid.New(), "L", "x")
		require.ErrorAs(t, err, &nfErr)

		err = gw.RemoveLessonFromUnit(uuid.New(), uuid.New())
		require.ErrorAs(t, err, &nfErr)
	})

	t.Run("xoa lesson", func(t *testing.T) {
		gw, _, _, _ := newTestGateway()
		unit := gw.Store().Units()[0]
		lesson, err := gw.AddLessonToUnit(unit.ID, "L", "x")
		require.NoError(t, err)

		require.NoError(t, gw.RemoveLessonFromUnit(unit.ID, lesson.ID))
		stored, _ := gw.Store().UnitByID(unit.ID)
		assert.Empty(t, stored.Lessons)

		// Xoá lesson không tồn tại là no-op
		require.NoError(t, gw.RemoveLessonFromUnit(unit.ID, uuid.New()))
	})
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()

	t.Run("thay toan bo snapshot mot lan", func(t *testing.T) {
		store := NewStore()
		repo := &fakeRepo{
			courses:  []Course{{ID: uuid.New(), Name: "C", Terms: 2}},
			subjects: []Subject{{ID: uuid.New(), Name: "S"}},
			units:    []Unit{{ID: uuid.New(), Title: "U"}},
		}
		gw := NewGateway(store, repo)

		require.NoError(t, gw.Refresh(ctx))
		assert.True(t, store.Loaded())
		assert.Len(t, store.Courses(), 1)
		assert.Len(t, store.Subjects(), 1)
		assert.Len(t, store.Units(), 1)
	})

	t.Run("mot request loi thi store khong doi", func(t *testing.T) {
		store := NewStore()
		repo := &fakeRepo{
			courses:      []Course{{ID: uuid.New(), Name: "C", Terms: 2}},
			listUnitsErr: errors.New("timeout"),
		}
		gw := NewGateway(store, repo)

		err := gw.Refresh(ctx)

		var cErr *CollaboratorError
		require.ErrorAs(t, err, &cErr)
		assert.False(t, store.Loaded())
		assert.Empty(t, store.Courses())
	})
}

func TestLoadUnit(t *testing.T) {
	ctx := context.Background()

	t.Run("doc qua collaborator va dong bo snapshot", func(t *testing.T) {
		gw, repo, _, _ := newTestGateway()
		fresh := Unit{ID: uuid.New(), Title: "Fresh", Course: "B.Sc CS", Subject: "Biology"}
		repo.getUnit = fresh
		repo.getUnitFound = true

		got, err := gw.LoadUnit(ctx, fresh.ID)
		require.NoError(t, err)
		assert.Equal(t, "Fresh", got.Title)

		stored, ok := gw.Store().UnitByID(fresh.ID)
		require.True(t, ok)
		assert.Equal(t, "Fresh", stored.Title)
	})

	t.Run("khong tim thay", func(t *testing.T) {
		gw, _, _, _ := newTestGateway()
		_, err := gw.LoadUnit(ctx, uuid.New())
		var nfErr *NotFoundError
		require.ErrorAs(t, err, &nfErr)
	})
}

// Response về sau khi caller đã huỷ request thì bị bỏ, không ghi vào store.
func TestDiscardStaleResponse(t *testing.T) {
	gw, repo, _, _ := newTestGateway()
	ctx, cancel := context.WithCancel(context.Background())
	repo.onCall = cancel // caller "unmount" trong lúc collaborator xử lý
	before := gw.Store().Courses()

	_, err := gw.CreateCourse(ctx, "Late Course", 2)

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, before, gw.Store().Courses())
}
