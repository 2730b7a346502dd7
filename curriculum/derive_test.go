package curriculum

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() (*Store, Course, Course) {
	bsc := Course{ID: uuid.New(), Name: "B.Sc CS", Terms: 3}
	gnm := Course{ID: uuid.New(), Name: "GNM Nursing", Terms: 2}

	store := NewStore()
	store.ReplaceAll(
		[]Course{bsc, gnm},
		[]Subject{
			{ID: uuid.New(), Name: "Biology", CourseID: bsc.ID, CourseName: bsc.Name, Term: 2},
			{ID: uuid.New(), Name: "Anatomy", CourseID: gnm.ID, CourseName: gnm.Name, Term: 1},
			{ID: uuid.New(), Name: "Chemistry", CourseID: bsc.ID, CourseName: bsc.Name, Term: 2},
		},
		[]Unit{
			{ID: uuid.New(), Title: "Cells", Description: "Intro to cells", Course: bsc.Name, Subject: "Biology", Term: 2},
			{ID: uuid.New(), Title: "Atoms", Description: "Matter basics", Course: gnm.Name, Subject: "Anatomy", Term: 1},
			{ID: uuid.New(), Title: "Bonding", Description: "Chemical bonds", Course: bsc.Name, Subject: "Chemistry", Term: 2},
		},
	)
	return store, bsc, gnm
}

func TestTermsForCourse(t *testing.T) {
	store, bsc, gnm := newTestStore()

	assert.Equal(t, []int{1, 2, 3}, store.TermsForCourse(bsc.ID))
	assert.Equal(t, []int{1, 2}, store.TermsForCourse(gnm.ID))

	// Course không tồn tại -> rỗng, không lỗi
	assert.Empty(t, store.TermsForCourse(uuid.New()))

	// terms = 0 -> rỗng, không panic
	zero := Course{ID: uuid.New(), Name: "Empty", Terms: 0}
	store.AppendCourse(zero)
	assert.Empty(t, store.TermsForCourse(zero.ID))
}

func TestSubjectsForCourseAndTerm(t *testing.T) {
	store, bsc, gnm := newTestStore()

	// Đúng bucket (course, term), giữ thứ tự insertion
	got := store.SubjectsForCourseAndTerm(bsc.ID, 2)
	require.Len(t, got, 2)
	assert.Equal(t, "Biology", got[0].Name)
	assert.Equal(t, "Chemistry", got[1].Name)

	// Mỗi subject chỉ nằm trong đúng một bucket
	assert.Empty(t, store.SubjectsForCourseAndTerm(bsc.ID, 1))
	assert.Empty(t, store.SubjectsForCourseAndTerm(gnm.ID, 2))

	anatomy := store.SubjectsForCourseAndTerm(gnm.ID, 1)
	require.Len(t, anatomy, 1)
	assert.Equal(t, "Anatomy", anatomy[0].Name)

	assert.Empty(t, store.SubjectsForCourseAndTerm(uuid.New(), 1))
}

func TestUnitsForSubject(t *testing.T) {
	store, _, _ := newTestStore()

	got := store.UnitsForSubject("Biology")
	require.Len(t, got, 1)
	assert.Equal(t, "Cells", got[0].Title)

	assert.Empty(t, store.UnitsForSubject("Physics"))

	// So theo tên môn: hai môn trùng tên khác khoá bị gộp chung
	store.UpsertUnit(Unit{ID: uuid.New(), Title: "Cells II", Course: "GNM Nursing", Subject: "Biology"})
	assert.Len(t, store.UnitsForSubject("Biology"), 2)
}

func TestFilterUnits(t *testing.T) {
	store, _, _ := newTestStore()
	units := store.Units()

	t.Run("search khop title khong phan biet hoa thuong", func(t *testing.T) {
		got := FilterUnits(units, "cell", AllCourses)
		require.Len(t, got, 1)
		assert.Equal(t, "Cells", got[0].Title)
	})

	t.Run("search khop description", func(t *testing.T) {
		got := FilterUnits(units, "matter", AllCourses)
		require.Len(t, got, 1)
		assert.Equal(t, "Atoms", got[0].Title)
	})

	t.Run("filter theo course", func(t *testing.T) {
		got := FilterUnits(units, "", "GNM Nursing")
		require.Len(t, got, 1)
		assert.Equal(t, "Atoms", got[0].Title)
	})

	t.Run("search rong khop tat ca", func(t *testing.T) {
		assert.Len(t, FilterUnits(units, "", AllCourses), 3)
	})

	t.Run("hai dieu kien la AND", func(t *testing.T) {
		// filter(s, f) phải là tập con của filter(s, All) ∩ filter("", f)
		s, f := "b", "B.Sc CS"
		both := FilterUnits(units, s, f)
		bySearch := FilterUnits(units, s, AllCourses)
		byCourse := FilterUnits(units, "", f)
		for _, u := range both {
			assert.Contains(t, bySearch, u)
			assert.Contains(t, byCourse, u)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		once := FilterUnits(units, "b", "B.Sc CS")
		twice := FilterUnits(once, "b", "B.Sc CS")
		assert.Equal(t, once, twice)
	})

	t.Run("giu thu tu input", func(t *testing.T) {
		got := FilterUnits(units, "", "B.Sc CS")
		require.Len(t, got, 2)
		assert.Equal(t, "Cells", got[0].Title)
		assert.Equal(t, "Bonding", got[1].Title)
	})
}

func TestDistinctCourseNames(t *testing.T) {
	units := []Unit{
		{Course: "X"},
		{Course: "Y"},
		{Course: "X"},
		{Course: "Z"},
	}

	assert.Equal(t, []string{"X", "Y", "Z"}, DistinctCourseNames(units))
	assert.Empty(t, DistinctCourseNames(nil))

	// Option list có sentinel All đứng đầu
	assert.Equal(t, []string{"All", "X", "Y", "Z"}, CourseOptions(units))
}
