package api

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepdeck/prepdeck/internal/quiz"
)

const practiceProgressJSON = `{
	"attempted_questions": 3,
	"flagged_count": 1,
	"skipped_count": 1,
	"correct_count": 1,
	"last_viewed_question": 2,
	"is_submitted": false,
	"chapters": [
		{
			"chapter": 10,
			"attempted_questions": 3,
			"subtopics": [
				{
					"subtopic": 100,
					"attempted_questions": 3,
					"questions": [
						{"question": 1, "selected_option": 2, "is_flagged": true},
						{"question": 2, "selected_option": 10, "is_flagged": false},
						{"question": 3, "selected_option": null, "is_flagged": false}
					]
				}
			]
		}
	]
}`

func TestPracticeProgressDecodesAnswerStates(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/quiz_progress/5/progress/", r.URL.Path)
		w.Write([]byte(practiceProgressJSON))
	}))

	prog, err := c.PracticeProgress(context.Background(), 5)
	require.NoError(t, err)

	require.Len(t, prog.Chapters, 1)
	require.Len(t, prog.Chapters[0].Subtopics, 1)
	recs := prog.Chapters[0].Subtopics[0].Questions
	require.Len(t, recs, 3)

	assert.Equal(t, quiz.Chosen(2), recs[0].Answer)
	assert.True(t, recs[0].Flagged)
	// The legacy wire value 10 means skipped, never an option index.
	assert.Equal(t, quiz.SkippedAnswer, recs[1].Answer)
	assert.Equal(t, quiz.NoAnswer, recs[2].Answer)

	assert.Equal(t, 3, prog.Attempted)
	assert.Equal(t, 2, prog.LastViewedQuestion)
}

func TestPracticeProgressRejectsMalformedPayload(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"attempted_questions": "three"}`))
	}))

	_, err := c.PracticeProgress(context.Background(), 5)
	require.Error(t, err)

	var invalid *ErrInvalidPayload
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "quiz-progress", invalid.Schema)
}

func TestPracticeQuestionsBuildsTree(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"id": 5, "name": "Anatomy", "total_questions": 2,
			"chapters": [
				{"id": 10, "name": "Bones", "subtopics": [
					{"id": 100, "name": "Skull", "questions": [
						{"id": 1, "text": "Q1", "option0": "a", "option1": "b",
						 "option2": "c", "option3": "d", "correct_option": 1,
						 "explanation": "because"}
					]},
					{"id": 101, "name": "Spine", "questions": []}
				]}
			]
		}`))
	}))

	course, err := c.PracticeQuestions(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, "Anatomy", course.Name)
	assert.Equal(t, 2, course.TotalQuestions)
	require.Len(t, course.Chapters, 1)
	require.Len(t, course.Chapters[0].Subtopics, 2)

	q := course.Chapters[0].Subtopics[0].Questions[0]
	assert.Equal(t, 1, q.ID)
	assert.Equal(t, []string{"a", "b", "c", "d"}, q.Options)
	assert.Equal(t, 1, q.CorrectOption)
	assert.Empty(t, course.Chapters[0].Subtopics[1].Questions)
}

func TestFullTestQuestionsWrapsFlatContent(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/courses/7/full_test_page/", r.URL.Path)
		w.Write([]byte(`{
			"total_questions": 2,
			"questions": [
				{"id": 11, "text": "Q11", "option0": "a", "option1": "b",
				 "option2": "c", "option3": "d", "correct_option": 0},
				{"id": 12, "text": "Q12", "option0": "a", "option1": "b",
				 "option2": "c", "option3": "d", "correct_option": 3}
			]
		}`))
	}))

	course, err := c.FullTestQuestions(context.Background(), 7)
	require.NoError(t, err)

	// Flat content is wrapped in one synthetic chapter/subtopic so the
	// same cursor and reconciliation code serves both surfaces.
	require.Len(t, course.Chapters, 1)
	require.Len(t, course.Chapters[0].Subtopics, 1)
	assert.Equal(t, 7, course.Chapters[0].ID)
	assert.Equal(t, 7, course.Chapters[0].Subtopics[0].ID)
	require.Len(t, course.Chapters[0].Subtopics[0].Questions, 2)
	assert.Equal(t, 11, course.Chapters[0].Subtopics[0].Questions[0].ID)
}

func TestFullTestProgressSource(t *testing.T) {
	var gotQuery string
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{
			"attempted_questions": 1,
			"last_viewed_question": null,
			"is_submitted": true,
			"questions": [
				{"id": 11, "question": "Q11", "selected_option": 0, "is_flagged": false}
			]
		}`))
	}))

	prog, err := c.FullTestProgress(context.Background(), 7, SourceAnalytics)
	require.NoError(t, err)
	assert.Equal(t, "source=analytics", gotQuery)
	assert.True(t, prog.Submitted)
	assert.Zero(t, prog.LastViewedQuestion)
	require.Len(t, prog.Questions, 1)
	assert.Equal(t, quiz.Chosen(0), prog.Questions[0].Answer)
}
