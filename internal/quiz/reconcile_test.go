package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func q(id int) Question {
	return Question{
		ID:            id,
		Text:          "question",
		Options:       []string{"a", "b", "c", "d"},
		CorrectOption: 1,
		Explanation:   "because",
	}
}

// testCourse builds a tree with an empty subtopic in the middle:
//
//	chapter 10: subtopic 100 [1 2 3], subtopic 101 []
//	chapter 20: subtopic 200 [4 5]
func testCourse() *Course {
	return &Course{
		ID:             1,
		Name:           "Anatomy",
		TotalQuestions: 5,
		Chapters: []Chapter{
			{ID: 10, Name: "Basics", Subtopics: []Subtopic{
				{ID: 100, Name: "Cells", Questions: []Question{q(1), q(2), q(3)}},
				{ID: 101, Name: "Empty", Questions: nil},
			}},
			{ID: 20, Name: "Systems", Subtopics: []Subtopic{
				{ID: 200, Name: "Cardio", Questions: []Question{q(4), q(5)}},
			}},
		},
	}
}

func answeredRec(id, option int) QuestionProgress {
	return QuestionProgress{QuestionID: id, Answer: Chosen(option)}
}

func TestReconcileCompletedKeyedByID(t *testing.T) {
	course := testCourse()

	// Progress records deliberately out of document order: the join
	// is by id, not position.
	prog := &Progress{
		Attempted: 2,
		Questions: []QuestionProgress{
			answeredRec(4, 2),
			{QuestionID: 2, Answer: Chosen(0), Flagged: true},
			{QuestionID: 5, Answer: SkippedAnswer},
		},
	}

	st, err := Reconcile(course, prog)
	require.NoError(t, err)

	assert.True(t, st.Completed[2])
	assert.True(t, st.Completed[4])
	assert.False(t, st.Completed[1])
	assert.False(t, st.Completed[3])
	// Skipped is visited but not completed.
	assert.False(t, st.Completed[5])

	assert.True(t, st.Flags[2])
	assert.False(t, st.Flags[4])
	assert.Equal(t, Chosen(0), st.Answers[2])
	assert.Equal(t, SkippedAnswer, st.Answers[5])
}

func TestReconcileCursorNeverOnEmptySubtopic(t *testing.T) {
	course := testCourse()

	cases := []struct {
		name string
		prog *Progress
	}{
		{"no progress", &Progress{}},
		{"resume at subtopic boundary", &Progress{
			LastViewedQuestion: 3,
			Questions:          []QuestionProgress{answeredRec(1, 0), answeredRec(2, 0), answeredRec(3, 0)},
		}},
		{"everything answered", &Progress{
			LastViewedQuestion: 2,
			Questions: []QuestionProgress{
				answeredRec(1, 0), answeredRec(2, 0), answeredRec(3, 0),
				answeredRec(4, 0), answeredRec(5, 0),
			},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st, err := Reconcile(course, tc.prog)
			require.NoError(t, err)
			sub := course.Chapters[st.Cursor.Chapter].Subtopics[st.Cursor.Subtopic]
			assert.NotEmpty(t, sub.Questions, "cursor parked on empty subtopic")
			assert.NotNil(t, st.CurrentQuestion())
		})
	}
}

func TestReconcileResumeAfterLastViewed(t *testing.T) {
	course := testCourse()

	// Last viewed is question 1; 2, 3, and 4 are already answered,
	// 5 is not: the cursor must land on 5.
	prog := &Progress{
		LastViewedQuestion: 1,
		Questions: []QuestionProgress{
			answeredRec(1, 0), answeredRec(2, 1), answeredRec(3, 2), answeredRec(4, 3),
		},
	}

	st, err := Reconcile(course, prog)
	require.NoError(t, err)
	require.NotNil(t, st.CurrentQuestion())
	assert.Equal(t, 5, st.CurrentQuestion().ID)
}

func TestReconcileLastQuestionAnsweredParksOnIt(t *testing.T) {
	course := testCourse()

	// Last viewed is the final question and everything is answered:
	// the cursor stays on it rather than moving past the end.
	prog := &Progress{
		LastViewedQuestion: 5,
		Questions: []QuestionProgress{
			answeredRec(1, 0), answeredRec(2, 0), answeredRec(3, 0),
			answeredRec(4, 0), answeredRec(5, 0),
		},
	}

	st, err := Reconcile(course, prog)
	require.NoError(t, err)
	require.NotNil(t, st.CurrentQuestion())
	assert.Equal(t, 5, st.CurrentQuestion().ID)
}

func TestReconcileIdempotent(t *testing.T) {
	course := testCourse()
	prog := &Progress{
		Attempted:          2,
		FlaggedCount:       1,
		LastViewedQuestion: 2,
		Chapters: []ChapterProgress{
			{ChapterID: 20, Attempted: 1, Subtopics: []SubtopicProgress{
				{SubtopicID: 200, Attempted: 1, Questions: []QuestionProgress{answeredRec(4, 1)}},
			}},
			{ChapterID: 10, Attempted: 1, Subtopics: []SubtopicProgress{
				{SubtopicID: 100, Attempted: 1, Questions: []QuestionProgress{{QuestionID: 2, Answer: Chosen(3), Flagged: true}}},
			}},
		},
	}

	first, err := Reconcile(course, prog)
	require.NoError(t, err)
	second, err := Reconcile(course, prog)
	require.NoError(t, err)

	assert.Equal(t, first.Cursor, second.Cursor)
	assert.Equal(t, first.Completed, second.Completed)
	assert.Equal(t, first.Answers, second.Answers)
	assert.Equal(t, first.SubtopicStats, second.SubtopicStats)
	assert.Equal(t, first.OverallPercent(), second.OverallPercent())
	assert.Equal(t, first.ChapterPercent(10), second.ChapterPercent(10))
}

func TestReconcileSubtopicFractionsAndChapterDenominator(t *testing.T) {
	// One chapter, two subtopics (3 questions and 0 questions): the
	// chapter denominator is 3 and the empty subtopic shows 0/0.
	course := &Course{
		ID: 2, Name: "Single", TotalQuestions: 3,
		Chapters: []Chapter{
			{ID: 30, Name: "Only", Subtopics: []Subtopic{
				{ID: 300, Name: "Full", Questions: []Question{q(7), q(8), q(9)}},
				{ID: 301, Name: "Hollow", Questions: nil},
			}},
		},
	}
	prog := &Progress{
		Attempted: 2,
		Chapters: []ChapterProgress{
			{ChapterID: 30, Attempted: 2, Subtopics: []SubtopicProgress{
				{SubtopicID: 300, Attempted: 2, Questions: []QuestionProgress{answeredRec(7, 0), answeredRec(9, 1)}},
				{SubtopicID: 301, Attempted: 0},
			}},
		},
	}

	st, err := Reconcile(course, prog)
	require.NoError(t, err)

	full := st.SubtopicStats[SubtopicKey{ChapterID: 30, SubtopicID: 300}]
	assert.Equal(t, SubtopicStat{Attempted: 2, Total: 3}, full)

	hollow := st.SubtopicStats[SubtopicKey{ChapterID: 30, SubtopicID: 301}]
	assert.Equal(t, SubtopicStat{Attempted: 0, Total: 0}, hollow)

	assert.InDelta(t, 100.0*2/3, st.ChapterPercent(30), 0.001)
	assert.InDelta(t, 100.0*2/3, st.OverallPercent(), 0.001)

	// Cursor resumes on the first incomplete question, never the
	// empty subtopic.
	require.NotNil(t, st.CurrentQuestion())
	assert.Equal(t, 8, st.CurrentQuestion().ID)
}

func TestReconcileOrphanedProgressRecords(t *testing.T) {
	course := testCourse()
	prog := &Progress{
		Questions: []QuestionProgress{
			answeredRec(1, 0),
			answeredRec(999, 2), // not in the tree
		},
	}

	st, err := Reconcile(course, prog)
	require.NoError(t, err)
	require.Len(t, st.Orphans, 1)
	assert.Equal(t, 999, st.Orphans[0].QuestionID)
	assert.False(t, st.Completed[999])
}

func TestReconcileUnknownLastViewedTreatedAsNone(t *testing.T) {
	course := testCourse()
	prog := &Progress{
		LastViewedQuestion: 12345,
		Questions:          []QuestionProgress{answeredRec(1, 0)},
	}

	st, err := Reconcile(course, prog)
	require.NoError(t, err)
	require.NotNil(t, st.CurrentQuestion())
	assert.Equal(t, 2, st.CurrentQuestion().ID)
}

func TestReconcileNoQuestions(t *testing.T) {
	course := &Course{ID: 3, Chapters: []Chapter{
		{ID: 40, Subtopics: []Subtopic{{ID: 400}}},
	}}

	_, err := Reconcile(course, &Progress{})
	assert.ErrorIs(t, err, ErrNoQuestions)
}

func TestReconcileRoundTripRestoresSelection(t *testing.T) {
	course := testCourse()

	// Server echoes selected_option 2 for the resume question.
	prog := &Progress{
		Attempted:          5,
		LastViewedQuestion: 3,
		Questions: []QuestionProgress{
			answeredRec(1, 0), answeredRec(2, 0), answeredRec(3, 2),
			answeredRec(4, 0), answeredRec(5, 0),
		},
	}

	st, err := Reconcile(course, prog)
	require.NoError(t, err)

	// All complete → parked on last viewed (question 3).
	require.NotNil(t, st.CurrentQuestion())
	require.Equal(t, 3, st.CurrentQuestion().ID)

	ctrl := NewController(st, PracticePolicy())
	assert.True(t, ctrl.Answered())
	assert.Equal(t, 2, ctrl.Selected())
}
