package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstCursorSkipsLeadingEmptySubtopics(t *testing.T) {
	course := &Course{Chapters: []Chapter{
		{ID: 1, Subtopics: []Subtopic{
			{ID: 10},
			{ID: 11, Questions: []Question{q(1)}},
		}},
	}}

	cur, ok := FirstCursor(course)
	require.True(t, ok)
	assert.Equal(t, Cursor{Chapter: 0, Subtopic: 1, Question: 0}, cur)
}

func TestFirstCursorEmptyCourse(t *testing.T) {
	course := &Course{Chapters: []Chapter{{ID: 1, Subtopics: []Subtopic{{ID: 10}}}}}
	_, ok := FirstCursor(course)
	assert.False(t, ok)
}

func TestNextCursorWalksDocumentOrder(t *testing.T) {
	course := testCourse()

	cur, ok := FirstCursor(course)
	require.True(t, ok)

	var ids []int
	for {
		ids = append(ids, QuestionAt(course, cur).ID)
		next, ok := NextCursor(course, cur)
		if !ok {
			break
		}
		// The empty subtopic (id 101) is never visited.
		sub := course.Chapters[next.Chapter].Subtopics[next.Subtopic]
		require.NotEmpty(t, sub.Questions)
		cur = next
	}

	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids)
}

func TestNextCursorAtEnd(t *testing.T) {
	course := testCourse()
	last := Cursor{Chapter: 1, Subtopic: 0, Question: 1}

	got, ok := NextCursor(course, last)
	assert.False(t, ok)
	assert.Equal(t, last, got)
}

func TestFindQuestion(t *testing.T) {
	course := testCourse()

	cur, ok := FindQuestion(course, 4)
	require.True(t, ok)
	assert.Equal(t, Cursor{Chapter: 1, Subtopic: 0, Question: 0}, cur)

	_, ok = FindQuestion(course, 404)
	assert.False(t, ok)
}

func TestResumeCursorNoPointerFirstIncomplete(t *testing.T) {
	course := testCourse()
	completed := map[int]bool{1: true, 2: true}

	cur, ok := ResumeCursor(course, completed, 0)
	require.True(t, ok)
	assert.Equal(t, 3, QuestionAt(course, cur).ID)
}

func TestResumeCursorAllCompleteNoPointer(t *testing.T) {
	course := testCourse()
	completed := map[int]bool{1: true, 2: true, 3: true, 4: true, 5: true}

	cur, ok := ResumeCursor(course, completed, 0)
	require.True(t, ok)
	assert.Equal(t, 1, QuestionAt(course, cur).ID)
}

func TestResumeCursorSkipsRunOfAnswered(t *testing.T) {
	course := testCourse()

	// Last viewed is 1; the next three (2, 3, 4) are answered, 5 is
	// not: resume resolves to 5.
	completed := map[int]bool{1: true, 2: true, 3: true, 4: true}

	cur, ok := ResumeCursor(course, completed, 1)
	require.True(t, ok)
	assert.Equal(t, 5, QuestionAt(course, cur).ID)
}

func TestResumeCursorWrapsAcrossChapter(t *testing.T) {
	course := testCourse()

	// Last viewed 3 is the final question of chapter one; resume
	// wraps into chapter two, over the empty subtopic.
	cur, ok := ResumeCursor(course, map[int]bool{3: true}, 3)
	require.True(t, ok)
	assert.Equal(t, 4, QuestionAt(course, cur).ID)
}
