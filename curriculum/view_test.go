package curriculum

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestLessonPreview(t *testing.T) {
	tests := []struct {
		name    string
		content string
		maxLen  int
		want    string
	}{
		{"bo tag markup", "<ul><li>Cell structure</li><li>Membrane</li></ul>", 120, "Cell structure Membrane"},
		{"noi dung rong", "", 120, "No content"},
		{"chi con tag", "<p></p><br/>", 120, "No content"},
		{"khong can cat", "short", 120, "short"},
		{"giu nguyen text thuong", "plain text", 0, "plain text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LessonPreview(tt.content, tt.maxLen))
		})
	}

	t.Run("cat theo maxLen", func(t *testing.T) {
		long := strings.Repeat("a", 200)
		got := LessonPreview("<p>"+long+"</p>", 120)
		assert.Equal(t, strings.Repeat("a", 120)+"…", got)
	})
}

func TestClampProgress(t *testing.T) {
	assert.Equal(t, 0, ClampProgress(-5))
	assert.Equal(t, 0, ClampProgress(0))
	assert.Equal(t, 42, ClampProgress(42))
	assert.Equal(t, 100, ClampProgress(100))
	assert.Equal(t, 100, ClampProgress(150))
}

func TestStatusBadge(t *testing.T) {
	assert.Equal(t, "success", StatusBadge(StatusPublished))
	assert.Equal(t, "warning", StatusBadge(StatusDraft))
	assert.Equal(t, "muted", StatusBadge(StatusArchived))
	assert.Equal(t, "muted", StatusBadge(UnitStatus("whatever")))
}

func TestTermLabel(t *testing.T) {
	assert.Equal(t, "Year", TermLabel("GNM Nursing"))
	assert.Equal(t, "Semester", TermLabel("B.Sc CS"))
	assert.Equal(t, "Semester", TermLabel(""))
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "No description provided.", Describe(""))
	assert.Equal(t, "No description provided.", Describe("   "))
	assert.Equal(t, "Intro", Describe("Intro"))
}

func TestLessonListContent(t *testing.T) {
	assert.Equal(t, "<ul><li>a</li><li>b</li></ul>", LessonListContent("a\nb"))
	assert.Equal(t, "<ul><li>single</li></ul>", LessonListContent("single"))
}

func TestBuildUnitCard(t *testing.T) {
	unit := Unit{
		ID:       uuid.New(),
		Title:    "Cells",
		Course:   "B.Sc CS",
		Subject:  "Biology",
		Progress: 150, // nguồn lệch vẫn phải ra [0,100]
		Status:   StatusPublished,
	}

	card := BuildUnitCard(unit)

	assert.Equal(t, 100, card.Progress)
	assert.Equal(t, "success", card.StatusBadge)
	assert.Equal(t, "No description provided.", card.Description)
	assert.Equal(t, 0, card.LessonCount) // lessons nil coi như rỗng
}
