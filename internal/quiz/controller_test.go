package quiz

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freshController(t *testing.T, policy Policy) *Controller {
	t.Helper()
	st, err := Reconcile(testCourse(), &Progress{})
	require.NoError(t, err)
	return NewController(st, policy)
}

func TestSelectOptionOptimisticCounters(t *testing.T) {
	c := freshController(t, PracticePolicy())
	q := c.Current()
	require.NotNil(t, q)

	require.True(t, c.SelectOption(2))
	assert.Equal(t, 2, c.Selected())
	assert.True(t, c.Answered())
	assert.True(t, c.State.Completed[q.ID])
	assert.Equal(t, 1, c.State.Attempted)
	assert.InDelta(t, 20.0, c.State.OverallPercent(), 0.001)

	stat := c.State.SubtopicStats[SubtopicKey{ChapterID: 10, SubtopicID: 100}]
	assert.Equal(t, 1, stat.Attempted)
}

func TestSelectOptionDeselectToggle(t *testing.T) {
	c := freshController(t, PracticePolicy())
	q := c.Current()

	require.True(t, c.SelectOption(1))
	require.True(t, c.SelectOption(1)) // same option deselects
	assert.False(t, c.Answered())
	assert.Equal(t, -1, c.Selected())
	assert.False(t, c.State.Completed[q.ID])
	assert.Equal(t, 0, c.State.Attempted)
}

func TestSelectOptionFirstSelectionFinal(t *testing.T) {
	c := freshController(t, FullTestPolicy())

	require.True(t, c.SelectOption(1))
	assert.False(t, c.SelectOption(1), "re-select must be ignored")
	assert.False(t, c.SelectOption(3), "changing answer must be ignored")
	assert.Equal(t, 1, c.Selected())
}

func TestContinueCommitAdvances(t *testing.T) {
	c := freshController(t, PracticePolicy())
	require.True(t, c.SelectOption(0))

	upd, ok := c.StartContinue()
	require.True(t, ok)
	assert.Equal(t, 1, upd.QuestionID)
	assert.Equal(t, Chosen(0), upd.Answer)
	assert.Equal(t, PhaseAdvancing, c.Phase())

	// Selections are ignored while the persistence call is in flight.
	assert.False(t, c.SelectOption(2))

	out := c.CommitAdvance()
	assert.False(t, out.AtEnd)
	assert.Equal(t, PhaseReady, c.Phase())
	assert.Equal(t, 2, c.Current().ID)
	assert.False(t, c.Answered(), "next question starts blank")
}

func TestContinueWithoutSelectionIgnored(t *testing.T) {
	c := freshController(t, PracticePolicy())
	_, ok := c.StartContinue()
	assert.False(t, ok)
	assert.Equal(t, PhaseReady, c.Phase())
}

func TestRevertAdvanceRestoresState(t *testing.T) {
	c := freshController(t, PracticePolicy())
	q := c.Current()
	require.True(t, c.SelectOption(3))
	attempted := c.State.Attempted

	_, ok := c.StartContinue()
	require.True(t, ok)
	c.RevertAdvance()

	// Prior state intact: selection still present, cursor unmoved.
	assert.Equal(t, PhaseReady, c.Phase())
	assert.Equal(t, q.ID, c.Current().ID)
	assert.Equal(t, 3, c.Selected())
	assert.Equal(t, attempted, c.State.Attempted)
	assert.Equal(t, Chosen(3), c.State.Answers[q.ID])
}

func TestSkipCountsAsAttemptedPolicy(t *testing.T) {
	c := freshController(t, PracticePolicy())
	q := c.Current()

	upd, ok := c.StartSkip()
	require.True(t, ok)
	assert.Equal(t, SkippedAnswer, upd.Answer)
	assert.Nil(t, upd.Answer.EncodeSelectedOption(), "skip persists explicit null")

	assert.True(t, c.State.Completed[q.ID])
	assert.Equal(t, 1, c.State.Attempted)
	assert.Equal(t, 1, c.State.SkippedCount)
}

func TestSkipOnCompletedQuestionKeepsCountersConverged(t *testing.T) {
	// Resume parks on the last-viewed question when everything after
	// it is complete; skipping it again must not drift the mirrored
	// counters past the server snapshot.
	prog := &Progress{
		Attempted:          5,
		LastViewedQuestion: 5,
		Questions: []QuestionProgress{
			answeredRec(1, 0), answeredRec(2, 1), answeredRec(3, 2),
			answeredRec(4, 3), answeredRec(5, 1),
		},
	}
	st, err := Reconcile(testCourse(), prog)
	require.NoError(t, err)
	c := NewController(st, PracticePolicy())
	require.Equal(t, 5, c.Current().ID)

	_, ok := c.StartSkip()
	require.True(t, ok)

	assert.Equal(t, 5, c.State.Attempted)
	assert.Equal(t, 1, c.State.SkippedCount)
	assert.InDelta(t, 100.0, c.State.OverallPercent(), 0.001)
}

func TestReskipDoesNotDoubleCountSkipped(t *testing.T) {
	prog := &Progress{
		SkippedCount:       1,
		LastViewedQuestion: 1,
		Questions:          []QuestionProgress{{QuestionID: 1, Answer: SkippedAnswer}},
	}
	st, err := Reconcile(testCourse(), prog)
	require.NoError(t, err)
	c := NewController(st, PracticePolicy())
	st.Cursor = Cursor{}
	c.syncCursorState()
	require.Equal(t, 1, c.Current().ID)

	_, ok := c.StartSkip()
	require.True(t, ok)
	assert.Equal(t, 1, c.State.SkippedCount)

	// Revert restores the prior count rather than decrementing blindly.
	c.RevertAdvance()
	assert.Equal(t, 1, c.State.SkippedCount)
}

func TestSkipDoesNotCountPolicy(t *testing.T) {
	c := freshController(t, FullTestPolicy())
	q := c.Current()

	_, ok := c.StartSkip()
	require.True(t, ok)
	assert.False(t, c.State.Completed[q.ID])
	assert.Equal(t, 0, c.State.Attempted)
	assert.Equal(t, 1, c.State.SkippedCount)
}

func TestSkipRevertRestoresState(t *testing.T) {
	c := freshController(t, PracticePolicy())
	q := c.Current()

	_, ok := c.StartSkip()
	require.True(t, ok)
	c.RevertAdvance()

	assert.False(t, c.State.Completed[q.ID])
	assert.Equal(t, 0, c.State.Attempted)
	assert.Equal(t, 0, c.State.SkippedCount)
	_, has := c.State.Answers[q.ID]
	assert.False(t, has)
}

func TestSkipOnLastQuestionReachesEnd(t *testing.T) {
	c := freshController(t, PracticePolicy())

	// Walk to the last question.
	for i := 0; i < 4; i++ {
		_, ok := c.StartSkip()
		require.True(t, ok)
		out := c.CommitAdvance()
		require.False(t, out.AtEnd)
	}
	require.Equal(t, 5, c.Current().ID)

	_, ok := c.StartSkip()
	require.True(t, ok)
	out := c.CommitAdvance()
	assert.True(t, out.AtEnd, "skip on the final question must route to submission")
	// Cursor still addresses a valid question, not past the end.
	assert.NotNil(t, c.Current())
}

func TestFlagRidesAlongWithContinue(t *testing.T) {
	c := freshController(t, PracticePolicy())
	q := c.Current()

	require.True(t, c.ToggleFlag())
	assert.True(t, c.State.Flags[q.ID])
	assert.Equal(t, 1, c.State.FlaggedCount)

	require.True(t, c.SelectOption(0))
	upd, ok := c.StartContinue()
	require.True(t, ok)
	assert.True(t, upd.Flagged)

	c.CommitAdvance()
	assert.False(t, c.Flagged(), "flag state is per question")
}

func TestToggleFlagTwice(t *testing.T) {
	c := freshController(t, PracticePolicy())
	q := c.Current()

	require.True(t, c.ToggleFlag())
	require.True(t, c.ToggleFlag())
	assert.False(t, c.State.Flags[q.ID])
	assert.Equal(t, 0, c.State.FlaggedCount)
}

func TestFlagUpdateStandalone(t *testing.T) {
	c := freshController(t, PracticePolicy())
	require.True(t, c.ToggleFlag())

	upd, ok := c.FlagUpdate()
	require.True(t, ok)
	assert.Equal(t, c.Current().ID, upd.QuestionID)
	assert.True(t, upd.Flagged)
	assert.Equal(t, NoAnswer, upd.Answer)
}

func TestSubmitLifecycle(t *testing.T) {
	c := freshController(t, FullTestPolicy())

	require.True(t, c.StartSubmit())
	assert.Equal(t, PhaseSubmitting, c.Phase())

	// Failure is retryable and leaves state unchanged.
	assert.Equal(t, PhaseSubmitError, c.FinishSubmit(errors.New("boom")))
	assert.False(t, c.State.Submitted)

	require.True(t, c.StartSubmit())
	assert.Equal(t, PhaseSubmitted, c.FinishSubmit(nil))
	assert.True(t, c.State.Submitted)
}

func TestQuitLifecycle(t *testing.T) {
	c := freshController(t, PracticePolicy())

	require.True(t, c.StartQuit())
	assert.Equal(t, PhaseQuitting, c.Phase())
	assert.Equal(t, PhaseQuit, c.FinishQuit(nil))
}

func TestQuitFailureReturnsToReady(t *testing.T) {
	c := freshController(t, PracticePolicy())

	require.True(t, c.StartQuit())
	assert.Equal(t, PhaseReady, c.FinishQuit(errors.New("network")))
}

func TestDecodeSelectedOption(t *testing.T) {
	two := 2
	sentinel := 10

	assert.Equal(t, NoAnswer, DecodeSelectedOption(nil))
	assert.Equal(t, SkippedAnswer, DecodeSelectedOption(&sentinel))
	assert.Equal(t, Chosen(2), DecodeSelectedOption(&two))

	assert.False(t, SkippedAnswer.Attempted())
	assert.True(t, Chosen(2).Attempted())
	require.NotNil(t, Chosen(2).EncodeSelectedOption())
	assert.Equal(t, 2, *Chosen(2).EncodeSelectedOption())
}
