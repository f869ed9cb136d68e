package quiz

// Question is a single multiple-choice question. The option list has
// arity 4 in the service contract.
type Question struct {
	ID            int
	Text          string
	Options       []string
	CorrectOption int
	Explanation   string
}

// Subtopic groups questions within a chapter. Subtopics with zero
// questions legitimately occur and must be skipped by navigation.
type Subtopic struct {
	ID        int
	Name      string
	Questions []Question
}

// Chapter is a top-level grouping of course content.
type Chapter struct {
	ID        int
	Name      string
	Subtopics []Subtopic
}

// Course is the immutable content tree fetched for one quiz session.
// TotalQuestions is the server-reported count; it is the denominator
// for overall progress and may disagree with the tree during content
// edits, which is why it is carried rather than recomputed.
type Course struct {
	ID             int
	Name           string
	TotalQuestions int
	Chapters       []Chapter
}

// QuestionCount returns the number of questions in the subtopic.
func (s *Subtopic) QuestionCount() int {
	return len(s.Questions)
}

// QuestionCount returns the number of questions across all subtopics.
func (c *Chapter) QuestionCount() int {
	n := 0
	for i := range c.Subtopics {
		n += len(c.Subtopics[i].Questions)
	}
	return n
}

// QuestionCount returns the number of questions in the content tree.
func (c *Course) QuestionCount() int {
	n := 0
	for i := range c.Chapters {
		n += c.Chapters[i].QuestionCount()
	}
	return n
}
