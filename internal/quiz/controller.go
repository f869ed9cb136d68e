package quiz

// Surface identifies which quiz surface a session runs on. The two
// surfaces share one controller but carry different policies and hit
// different endpoints.
type Surface string

const (
	SurfacePractice Surface = "practice"
	SurfaceFullTest Surface = "full_test"
)

// Policy captures the behavioral knobs that differ between surfaces.
type Policy struct {
	// AllowDeselect lets re-selecting the chosen option clear it.
	AllowDeselect bool

	// SkipCountsAsAttempted controls whether a skip marks the
	// question completed and bumps the attempted counter locally.
	SkipCountsAsAttempted bool
}

// PracticePolicy is the policy for the practice surface.
func PracticePolicy() Policy {
	return Policy{AllowDeselect: true, SkipCountsAsAttempted: true}
}

// FullTestPolicy is the policy for the timed full-test surface.
func FullTestPolicy() Policy {
	return Policy{AllowDeselect: false, SkipCountsAsAttempted: false}
}

// Phase is the quiz session state machine.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseLoadError
	PhaseReady
	PhaseAdvancing // persistence call in flight
	PhaseSubmitting
	PhaseSubmitted
	PhaseSubmitError // retryable; session state unchanged
	PhaseQuitting
	PhaseQuit
)

// Update is the delta persisted for one question.
type Update struct {
	QuestionID int
	Answer     Answer
	Flagged    bool
}

// AdvanceOutcome reports what happened after a continue/skip commit.
type AdvanceOutcome struct {
	// AtEnd is true when there was no next question; the caller
	// should start the submission flow.
	AtEnd bool
}

// pendingTxn is the optimistic mutation awaiting server confirmation.
// On failure the previous values are restored verbatim.
type pendingTxn struct {
	update        Update
	prevAnswer    Answer
	hadAnswer     bool
	prevCompleted bool
	prevFlag      bool
	prevAttempted int
	prevSkipped   int
	prevStat      SubtopicStat
	statKey       SubtopicKey
	prevChapter   int
	chapterID     int
}

// Controller wraps a reconciled CourseState with the user-facing quiz
// actions. It performs no I/O: mutating actions return the Update to
// persist, and the caller reports the outcome via Commit/Revert.
type Controller struct {
	State  *CourseState
	Policy Policy

	phase Phase

	// Per-question UI state for the cursor's question.
	selected int // -1 when nothing selected
	answered bool
	flagged  bool

	pending *pendingTxn
}

// NewController creates a controller in PhaseReady and restores the
// cursor question's prior selection so the screen renders the chosen
// answer rather than a blank question.
func NewController(state *CourseState, policy Policy) *Controller {
	c := &Controller{
		State:  state,
		Policy: policy,
		phase:  PhaseReady,
	}
	c.syncCursorState()
	return c
}

// Phase returns the current session phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Current returns the question under the cursor.
func (c *Controller) Current() *Question {
	return c.State.CurrentQuestion()
}

// Selected returns the locally selected option, -1 for none.
func (c *Controller) Selected() int {
	return c.selected
}

// Answered reports whether the cursor question has a selection.
func (c *Controller) Answered() bool {
	return c.answered
}

// Flagged reports the cursor question's local flag state.
func (c *Controller) Flagged() bool {
	return c.flagged
}

// syncCursorState restores per-question UI state from the reconciled
// answer lookup after the cursor moves.
func (c *Controller) syncCursorState() {
	c.selected = -1
	c.answered = false
	c.flagged = false

	q := c.Current()
	if q == nil {
		return
	}
	if a, ok := c.State.Answers[q.ID]; ok && a.Kind == KindAnswered {
		c.selected = a.Option
		c.answered = true
	}
	c.flagged = c.State.Flags[q.ID]
}

// SelectOption applies a selection to the cursor question. Re-selecting
// the chosen option deselects it when the policy allows; otherwise the
// first selection is final. The local completed flag and attempted
// counter update immediately, independent of the next round-trip.
// Returns false when the action was ignored.
func (c *Controller) SelectOption(option int) bool {
	q := c.Current()
	if c.phase != PhaseReady || q == nil {
		return false
	}
	if option < 0 || option >= len(q.Options) {
		return false
	}

	if c.answered {
		if !c.Policy.AllowDeselect {
			return false
		}
		if option == c.selected {
			c.selected = -1
			c.answered = false
			c.setLocalAnswer(q, NoAnswer)
			return true
		}
	}

	c.selected = option
	c.answered = true
	c.setLocalAnswer(q, Chosen(option))
	return true
}

// ToggleFlag flips the cursor question's flag. The new value rides
// along with the next continue/skip persistence call; FlagUpdate is
// available for standalone flushing.
func (c *Controller) ToggleFlag() bool {
	q := c.Current()
	if c.phase != PhaseReady || q == nil {
		return false
	}
	c.flagged = !c.flagged
	if c.flagged {
		c.State.Flags[q.ID] = true
		c.State.FlaggedCount++
	} else {
		delete(c.State.Flags, q.ID)
		if c.State.FlaggedCount > 0 {
			c.State.FlaggedCount--
		}
	}
	return true
}

// FlagUpdate returns an Update carrying only the current answer and
// flag state, for call sites that persist a flag toggle on its own.
func (c *Controller) FlagUpdate() (Update, bool) {
	q := c.Current()
	if q == nil {
		return Update{}, false
	}
	return Update{
		QuestionID: q.ID,
		Answer:     c.State.Answers[q.ID],
		Flagged:    c.flagged,
	}, true
}

// StartContinue begins the answer-then-advance transaction for the
// current selection. It returns the Update to persist; the cursor does
// not move until CommitAdvance. Returns false when nothing is selected
// or the session is not ready.
func (c *Controller) StartContinue() (Update, bool) {
	q := c.Current()
	if c.phase != PhaseReady || q == nil || !c.answered {
		return Update{}, false
	}

	upd := Update{
		QuestionID: q.ID,
		Answer:     Chosen(c.selected),
		Flagged:    c.flagged,
	}
	c.beginTxn(q, upd)
	return upd, true
}

// StartSkip begins the skip-then-advance transaction: the persisted
// selection is explicit null, distinguishing "visited and skipped"
// from "never visited". Whether the skip counts as attempted locally
// is a policy decision.
func (c *Controller) StartSkip() (Update, bool) {
	q := c.Current()
	if c.phase != PhaseReady || q == nil {
		return Update{}, false
	}

	upd := Update{
		QuestionID: q.ID,
		Answer:     SkippedAnswer,
		Flagged:    c.flagged,
	}
	c.beginTxn(q, upd)

	// Re-skipping an already-attempted question must not drift the
	// mirrored counters away from the server snapshot.
	wasCompleted := c.State.Completed[q.ID]
	if c.State.Answers[q.ID].Kind != KindSkipped {
		c.State.SkippedCount++
	}
	c.State.Answers[q.ID] = SkippedAnswer
	if c.Policy.SkipCountsAsAttempted {
		c.State.Completed[q.ID] = true
		if !wasCompleted {
			c.bumpAttempted(q, +1)
		}
	}
	return upd, true
}

// CommitAdvance completes a continue/skip transaction after a 2xx
// response and advances the cursor, skipping empty subtopics. When the
// current question is the last one the outcome directs the caller to
// the submission flow instead of walking past the end.
func (c *Controller) CommitAdvance() AdvanceOutcome {
	c.pending = nil

	next, ok := NextCursor(c.State.Course, c.State.Cursor)
	if !ok {
		c.phase = PhaseReady
		return AdvanceOutcome{AtEnd: true}
	}

	c.State.Cursor = next
	c.phase = PhaseReady
	c.syncCursorState()
	return AdvanceOutcome{}
}

// RevertAdvance rolls the optimistic mutation back after a failed
// persistence call. Prior state is restored and the cursor stays put
// so the user may retry.
func (c *Controller) RevertAdvance() {
	txn := c.pending
	c.pending = nil
	c.phase = PhaseReady
	if txn == nil {
		return
	}

	qid := txn.update.QuestionID
	if txn.hadAnswer {
		c.State.Answers[qid] = txn.prevAnswer
	} else {
		delete(c.State.Answers, qid)
	}
	if txn.prevCompleted {
		c.State.Completed[qid] = true
	} else {
		delete(c.State.Completed, qid)
	}
	if txn.prevFlag {
		c.State.Flags[qid] = true
	} else {
		delete(c.State.Flags, qid)
	}
	c.State.Attempted = txn.prevAttempted
	c.State.SkippedCount = txn.prevSkipped
	c.State.SubtopicStats[txn.statKey] = txn.prevStat
	c.State.ChapterAttempted[txn.chapterID] = txn.prevChapter
	c.syncCursorState()
}

// StartSubmit moves the session into the submitting phase.
func (c *Controller) StartSubmit() bool {
	if c.phase != PhaseReady && c.phase != PhaseSubmitError {
		return false
	}
	c.phase = PhaseSubmitting
	return true
}

// FinishSubmit records the submission outcome. A failure is retryable
// and leaves the quiz state untouched.
func (c *Controller) FinishSubmit(err error) Phase {
	if err != nil {
		c.phase = PhaseSubmitError
	} else {
		c.phase = PhaseSubmitted
		c.State.Submitted = true
	}
	return c.phase
}

// StartQuit moves the session into the quitting phase. Partial
// in-progress answers beyond what continue/skip already sent are not
// persisted.
func (c *Controller) StartQuit() bool {
	if c.phase != PhaseReady {
		return false
	}
	c.phase = PhaseQuitting
	return true
}

// FinishQuit records the quit outcome.
func (c *Controller) FinishQuit(err error) Phase {
	if err != nil {
		c.phase = PhaseReady
	} else {
		c.phase = PhaseQuit
	}
	return c.phase
}

// beginTxn snapshots the state touched by an optimistic mutation and
// enters the advancing phase.
func (c *Controller) beginTxn(q *Question, upd Update) {
	ch := &c.State.Course.Chapters[c.State.Cursor.Chapter]
	sub := &ch.Subtopics[c.State.Cursor.Subtopic]
	key := SubtopicKey{ChapterID: ch.ID, SubtopicID: sub.ID}

	prev, hadAnswer := c.State.Answers[q.ID]
	c.pending = &pendingTxn{
		update:        upd,
		prevAnswer:    prev,
		hadAnswer:     hadAnswer,
		prevCompleted: c.State.Completed[q.ID],
		prevFlag:      c.State.Flags[q.ID],
		prevAttempted: c.State.Attempted,
		prevSkipped:   c.State.SkippedCount,
		prevStat:      c.State.SubtopicStats[key],
		statKey:       key,
		prevChapter:   c.State.ChapterAttempted[ch.ID],
		chapterID:     ch.ID,
	}
	c.phase = PhaseAdvancing
}

// setLocalAnswer applies a selection (or clears one) optimistically,
// keeping the attempted counters consistent.
func (c *Controller) setLocalAnswer(q *Question, a Answer) {
	wasCompleted := c.State.Completed[q.ID]
	if a.Kind == KindAnswered {
		c.State.Answers[q.ID] = a
		c.State.Completed[q.ID] = true
		if !wasCompleted {
			c.bumpAttempted(q, +1)
		}
	} else {
		delete(c.State.Answers, q.ID)
		delete(c.State.Completed, q.ID)
		if wasCompleted {
			c.bumpAttempted(q, -1)
		}
	}
}

// bumpAttempted adjusts the mirrored aggregate counters for the
// cursor's chapter and subtopic.
func (c *Controller) bumpAttempted(q *Question, delta int) {
	c.State.Attempted += delta
	if c.State.Attempted < 0 {
		c.State.Attempted = 0
	}

	ch := &c.State.Course.Chapters[c.State.Cursor.Chapter]
	sub := &ch.Subtopics[c.State.Cursor.Subtopic]
	key := SubtopicKey{ChapterID: ch.ID, SubtopicID: sub.ID}

	stat := c.State.SubtopicStats[key]
	stat.Attempted += delta
	if stat.Attempted < 0 {
		stat.Attempted = 0
	}
	c.State.SubtopicStats[key] = stat

	n := c.State.ChapterAttempted[ch.ID] + delta
	if n < 0 {
		n = 0
	}
	c.State.ChapterAttempted[ch.ID] = n
}
