package quiz

// Cursor addresses the currently displayed question as indices into
// the content tree. A valid cursor never points into an empty
// subtopic.
type Cursor struct {
	Chapter  int
	Subtopic int
	Question int
}

// FirstCursor returns the cursor for the first question in document
// order, skipping empty subtopics. ok is false when the course has no
// questions at all.
func FirstCursor(course *Course) (Cursor, bool) {
	for ci := range course.Chapters {
		for si := range course.Chapters[ci].Subtopics {
			if len(course.Chapters[ci].Subtopics[si].Questions) > 0 {
				return Cursor{Chapter: ci, Subtopic: si}, true
			}
		}
	}
	return Cursor{}, false
}

// NextCursor advances cur by one question in document order: next
// question, then the next non-empty subtopic's first question, then
// the next chapter. ok is false when cur is the last question.
func NextCursor(course *Course, cur Cursor) (Cursor, bool) {
	st := &course.Chapters[cur.Chapter].Subtopics[cur.Subtopic]
	if cur.Question+1 < len(st.Questions) {
		cur.Question++
		return cur, true
	}

	si := cur.Subtopic + 1
	for ci := cur.Chapter; ci < len(course.Chapters); ci++ {
		for ; si < len(course.Chapters[ci].Subtopics); si++ {
			if len(course.Chapters[ci].Subtopics[si].Questions) > 0 {
				return Cursor{Chapter: ci, Subtopic: si}, true
			}
		}
		si = 0
	}
	return cur, false
}

// QuestionAt returns the question cur addresses, or nil when cur is
// out of range.
func QuestionAt(course *Course, cur Cursor) *Question {
	if cur.Chapter < 0 || cur.Chapter >= len(course.Chapters) {
		return nil
	}
	ch := &course.Chapters[cur.Chapter]
	if cur.Subtopic < 0 || cur.Subtopic >= len(ch.Subtopics) {
		return nil
	}
	st := &ch.Subtopics[cur.Subtopic]
	if cur.Question < 0 || cur.Question >= len(st.Questions) {
		return nil
	}
	return &st.Questions[cur.Question]
}

// FindQuestion locates a question by server id. ok is false when the
// id is not in the tree.
func FindQuestion(course *Course, id int) (Cursor, bool) {
	for ci := range course.Chapters {
		for si := range course.Chapters[ci].Subtopics {
			for qi := range course.Chapters[ci].Subtopics[si].Questions {
				if course.Chapters[ci].Subtopics[si].Questions[qi].ID == id {
					return Cursor{Chapter: ci, Subtopic: si, Question: qi}, true
				}
			}
		}
	}
	return Cursor{}, false
}

// ResumeCursor derives where navigation should continue.
//
// Without a resume pointer it is the first incomplete question in
// document order, or the first question when everything is complete.
// With a resume pointer it is the first incomplete question strictly
// after the last-viewed one; when every later question is complete the
// cursor parks on the last-viewed question itself rather than running
// past the end. A resume pointer that is not in the tree is treated as
// absent.
func ResumeCursor(course *Course, completed map[int]bool, lastViewed int) (Cursor, bool) {
	first, ok := FirstCursor(course)
	if !ok {
		return Cursor{}, false
	}

	if lastViewed == 0 {
		if cur, found := scanIncomplete(course, first, completed); found {
			return cur, true
		}
		return first, true
	}

	last, found := FindQuestion(course, lastViewed)
	if !found {
		return ResumeCursor(course, completed, 0)
	}

	start, hasNext := NextCursor(course, last)
	if hasNext {
		if cur, found := scanIncomplete(course, start, completed); found {
			return cur, true
		}
	}
	return last, true
}

// scanIncomplete walks forward from start (inclusive) to the first
// question whose completed flag is false.
func scanIncomplete(course *Course, start Cursor, completed map[int]bool) (Cursor, bool) {
	cur := start
	for {
		q := QuestionAt(course, cur)
		if q == nil {
			return Cursor{}, false
		}
		if !completed[q.ID] {
			return cur, true
		}
		next, ok := NextCursor(course, cur)
		if !ok {
			return Cursor{}, false
		}
		cur = next
	}
}
