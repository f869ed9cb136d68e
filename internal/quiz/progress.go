package quiz

// QuestionProgress is the server's per-question progress record,
// already decoded into the tagged Answer state.
type QuestionProgress struct {
	QuestionID int
	Answer     Answer
	Flagged    bool
}

// SubtopicProgress carries per-subtopic aggregates in the nested
// (practice) progress variant. SubtopicID is a foreign id into the
// content tree, not an array position.
type SubtopicProgress struct {
	SubtopicID int
	Attempted  int
	Questions  []QuestionProgress
}

// ChapterProgress carries per-chapter aggregates in the nested
// progress variant. ChapterID is a foreign id into the content tree.
type ChapterProgress struct {
	ChapterID int
	Attempted int
	Subtopics []SubtopicProgress
}

// Progress is the decoded progress response for one course and user.
// Exactly one of Chapters (nested variant) or Questions (flat
// variant) is populated, depending on the quiz surface.
type Progress struct {
	Attempted    int
	FlaggedCount int
	SkippedCount int
	CorrectCount int

	// LastViewedQuestion is the server resume pointer; 0 means none.
	LastViewedQuestion int

	Submitted bool

	Chapters  []ChapterProgress
	Questions []QuestionProgress
}

// flatten returns every per-question record regardless of variant.
func (p *Progress) flatten() []QuestionProgress {
	if p.Questions != nil {
		return p.Questions
	}
	var out []QuestionProgress
	for i := range p.Chapters {
		for j := range p.Chapters[i].Subtopics {
			out = append(out, p.Chapters[i].Subtopics[j].Questions...)
		}
	}
	return out
}
