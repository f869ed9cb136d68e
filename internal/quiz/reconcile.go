package quiz

import "errors"

// ErrNoQuestions is returned when the content tree has no questions
// anywhere, leaving the cursor nowhere valid to park.
var ErrNoQuestions = errors.New("course has no questions")

// SubtopicKey joins a subtopic across the two response shapes. Both
// ids come from the content tree; the progress response is matched to
// them by its own chapter/subtopic foreign-id fields.
type SubtopicKey struct {
	ChapterID  int
	SubtopicID int
}

// SubtopicStat is the per-subtopic "attempted/total" fraction badge.
// Total comes from the content tree, Attempted from the progress
// response; an empty subtopic renders as 0/0.
type SubtopicStat struct {
	Attempted int
	Total     int
}

// CourseState is the reconciled, navigable view of one course: the
// content tree annotated with per-question progress, derived
// aggregates, and the resume cursor.
type CourseState struct {
	Course *Course

	// Answers, Completed, and Flags are keyed by server question id.
	// Completed means an option is selected; a skipped question is
	// not completed and is revisited on resume.
	Answers   map[int]Answer
	Completed map[int]bool
	Flags     map[int]bool

	// Orphans are progress records whose question id is absent from
	// the content tree. They are surfaced rather than silently
	// dropped.
	Orphans []QuestionProgress

	// Server aggregate counters, mirrored locally and adjusted by
	// optimistic updates.
	Attempted    int
	FlaggedCount int
	SkippedCount int
	CorrectCount int
	Submitted    bool

	// ChapterAttempted is keyed by chapter id, joined from the nested
	// progress variant.
	ChapterAttempted map[int]int

	// SubtopicStats backs the per-subtopic fraction badges.
	SubtopicStats map[SubtopicKey]SubtopicStat

	LastViewed int
	Cursor     Cursor
}

// Reconcile merges the independently fetched content and progress
// responses into a single consistent CourseState. The join is by id
// (question, chapter, subtopic), never by array position: the two
// endpoints order their collections independently. Reconciling the
// same inputs twice yields the same state.
func Reconcile(course *Course, prog *Progress) (*CourseState, error) {
	st := &CourseState{
		Course:           course,
		Answers:          make(map[int]Answer),
		Completed:        make(map[int]bool),
		Flags:            make(map[int]bool),
		ChapterAttempted: make(map[int]int),
		SubtopicStats:    make(map[SubtopicKey]SubtopicStat),
		Attempted:        prog.Attempted,
		FlaggedCount:     prog.FlaggedCount,
		SkippedCount:     prog.SkippedCount,
		CorrectCount:     prog.CorrectCount,
		Submitted:        prog.Submitted,
		LastViewed:       prog.LastViewedQuestion,
	}

	// Single source of truth for "is this question answered": the
	// id-keyed lookup over all progress records.
	lookup := make(map[int]QuestionProgress)
	for _, rec := range prog.flatten() {
		lookup[rec.QuestionID] = rec
	}

	known := make(map[int]bool)
	for ci := range course.Chapters {
		ch := &course.Chapters[ci]
		for si := range ch.Subtopics {
			sub := &ch.Subtopics[si]
			key := SubtopicKey{ChapterID: ch.ID, SubtopicID: sub.ID}
			st.SubtopicStats[key] = SubtopicStat{Total: len(sub.Questions)}

			for qi := range sub.Questions {
				q := &sub.Questions[qi]
				known[q.ID] = true
				rec, ok := lookup[q.ID]
				if !ok {
					continue
				}
				st.Answers[q.ID] = rec.Answer
				st.Completed[q.ID] = rec.Answer.Attempted()
				if rec.Flagged {
					st.Flags[q.ID] = true
				}
			}
		}
	}

	for _, rec := range prog.flatten() {
		if !known[rec.QuestionID] {
			st.Orphans = append(st.Orphans, rec)
		}
	}

	// Per-chapter and per-subtopic aggregates join on the progress
	// response's foreign ids.
	for _, cp := range prog.Chapters {
		st.ChapterAttempted[cp.ChapterID] = cp.Attempted
		for _, sp := range cp.Subtopics {
			key := SubtopicKey{ChapterID: cp.ChapterID, SubtopicID: sp.SubtopicID}
			if stat, ok := st.SubtopicStats[key]; ok {
				stat.Attempted = sp.Attempted
				st.SubtopicStats[key] = stat
			}
		}
	}

	cur, ok := ResumeCursor(course, st.Completed, prog.LastViewedQuestion)
	if !ok {
		return nil, ErrNoQuestions
	}
	st.Cursor = cur

	return st, nil
}

// OverallPercent is the whole-course progress percentage, computed
// from the server counters rather than the local completed flags so
// skip-counting policy differences cannot double-count.
func (st *CourseState) OverallPercent() float64 {
	total := st.Course.TotalQuestions
	if total <= 0 {
		return 0
	}
	return float64(st.Attempted) / float64(total) * 100
}

// ChapterPercent is the per-chapter progress percentage for the given
// chapter id. The denominator is the chapter's question count from
// the content tree; a chapter with no questions reports 0.
func (st *CourseState) ChapterPercent(chapterID int) float64 {
	for ci := range st.Course.Chapters {
		ch := &st.Course.Chapters[ci]
		if ch.ID != chapterID {
			continue
		}
		total := ch.QuestionCount()
		if total <= 0 {
			return 0
		}
		return float64(st.ChapterAttempted[chapterID]) / float64(total) * 100
	}
	return 0
}

// CurrentQuestion returns the question the cursor addresses.
func (st *CourseState) CurrentQuestion() *Question {
	return QuestionAt(st.Course, st.Cursor)
}
