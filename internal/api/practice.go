package api

import (
	"context"
	"fmt"

	"github.com/prepdeck/prepdeck/internal/quiz"
)

// wire shapes for the practice surface.

type wireQuestion struct {
	ID            int    `json:"id"`
	Text          string `json:"text"`
	Option0       string `json:"option0"`
	Option1       string `json:"option1"`
	Option2       string `json:"option2"`
	Option3       string `json:"option3"`
	CorrectOption int    `json:"correct_option"`
	Explanation   string `json:"explanation"`
}

func (w wireQuestion) toQuestion() quiz.Question {
	return quiz.Question{
		ID:            w.ID,
		Text:          w.Text,
		Options:       []string{w.Option0, w.Option1, w.Option2, w.Option3},
		CorrectOption: w.CorrectOption,
		Explanation:   w.Explanation,
	}
}

type questionPagePayload struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	TotalQuestions int    `json:"total_questions"`
	Chapters       []struct {
		ID        int    `json:"id"`
		Name      string `json:"name"`
		Subtopics []struct {
			ID        int            `json:"id"`
			Name      string         `json:"name"`
			Questions []wireQuestion `json:"questions"`
		} `json:"subtopics"`
	} `json:"chapters"`
}

type wireProgressRecord struct {
	Question       int  `json:"question"`
	SelectedOption *int `json:"selected_option"`
	IsFlagged      bool `json:"is_flagged"`
}

func (w wireProgressRecord) toRecord() quiz.QuestionProgress {
	return quiz.QuestionProgress{
		QuestionID: w.Question,
		Answer:     quiz.DecodeSelectedOption(w.SelectedOption),
		Flagged:    w.IsFlagged,
	}
}

type quizProgressPayload struct {
	AttemptedQuestions int  `json:"attempted_questions"`
	FlaggedCount       int  `json:"flagged_count"`
	SkippedCount       int  `json:"skipped_count"`
	CorrectCount       int  `json:"correct_count"`
	LastViewedQuestion *int `json:"last_viewed_question"`
	IsSubmitted        bool `json:"is_submitted"`
	Chapters           []struct {
		Chapter            int `json:"chapter"`
		AttemptedQuestions int `json:"attempted_questions"`
		Subtopics          []struct {
			Subtopic           int                  `json:"subtopic"`
			AttemptedQuestions int                  `json:"attempted_questions"`
			Questions          []wireProgressRecord `json:"questions"`
		} `json:"subtopics"`
	} `json:"chapters"`
}

type updateQuestionRequest struct {
	QuestionID     int  `json:"question_id"`
	SelectedOption *int `json:"selected_option"`
	IsFlagged      bool `json:"is_flagged"`
}

// PracticeQuestions fetches and converts the chaptered question
// content for the practice surface.
func (c *Client) PracticeQuestions(ctx context.Context, courseID int) (*quiz.Course, error) {
	var payload questionPagePayload
	path := fmt.Sprintf("/courses/%d/question_page/", courseID)
	if err := c.getValidated(ctx, path, questionPageSchema, &payload); err != nil {
		return nil, err
	}

	course := &quiz.Course{
		ID:             payload.ID,
		Name:           payload.Name,
		TotalQuestions: payload.TotalQuestions,
	}
	for _, ch := range payload.Chapters {
		chapter := quiz.Chapter{ID: ch.ID, Name: ch.Name}
		for _, st := range ch.Subtopics {
			sub := quiz.Subtopic{ID: st.ID, Name: st.Name}
			for _, wq := range st.Questions {
				sub.Questions = append(sub.Questions, wq.toQuestion())
			}
			chapter.Subtopics = append(chapter.Subtopics, sub)
		}
		course.Chapters = append(course.Chapters, chapter)
	}
	return course, nil
}

// PracticeProgress fetches and decodes the nested per-chapter progress
// for the practice surface.
func (c *Client) PracticeProgress(ctx context.Context, courseID int) (*quiz.Progress, error) {
	var payload quizProgressPayload
	path := fmt.Sprintf("/quiz_progress/%d/progress/", courseID)
	if err := c.getValidated(ctx, path, quizProgressSchema, &payload); err != nil {
		return nil, err
	}

	prog := &quiz.Progress{
		Attempted:    payload.AttemptedQuestions,
		FlaggedCount: payload.FlaggedCount,
		SkippedCount: payload.SkippedCount,
		CorrectCount: payload.CorrectCount,
		Submitted:    payload.IsSubmitted,
	}
	if payload.LastViewedQuestion != nil {
		prog.LastViewedQuestion = *payload.LastViewedQuestion
	}

	for _, ch := range payload.Chapters {
		chapter := quiz.ChapterProgress{ChapterID: ch.Chapter, Attempted: ch.AttemptedQuestions}
		for _, st := range ch.Subtopics {
			sub := quiz.SubtopicProgress{SubtopicID: st.Subtopic, Attempted: st.AttemptedQuestions}
			for _, rec := range st.Questions {
				sub.Questions = append(sub.Questions, rec.toRecord())
			}
			chapter.Subtopics = append(chapter.Subtopics, sub)
		}
		prog.Chapters = append(prog.Chapters, chapter)
	}
	return prog, nil
}

// UpdatePracticeQuestion persists one answer/skip/flag delta.
func (c *Client) UpdatePracticeQuestion(ctx context.Context, upd quiz.Update) error {
	req := updateQuestionRequest{
		QuestionID:     upd.QuestionID,
		SelectedOption: upd.Answer.EncodeSelectedOption(),
		IsFlagged:      upd.Flagged,
	}
	return c.post(ctx, "/quiz_progress/update_question/", req, nil)
}

// SubmitPractice submits the practice session for the course.
func (c *Client) SubmitPractice(ctx context.Context, courseID int) error {
	return c.post(ctx, fmt.Sprintf("/quiz_progress/%d/submit/", courseID), nil, nil)
}

// QuitPractice ends the practice session without submitting.
func (c *Client) QuitPractice(ctx context.Context, courseID int) error {
	return c.post(ctx, fmt.Sprintf("/quiz_progress/%d/quit/", courseID), nil, nil)
}

// PracticeSurface bundles the practice endpoints for one course behind
// the surface-neutral backend shape the quiz screen consumes.
type PracticeSurface struct {
	client   *Client
	courseID int
}

// Practice returns the practice surface for a course.
func (c *Client) Practice(courseID int) *PracticeSurface {
	return &PracticeSurface{client: c, courseID: courseID}
}

func (s *PracticeSurface) Surface() quiz.Surface { return quiz.SurfacePractice }
func (s *PracticeSurface) Policy() quiz.Policy   { return quiz.PracticePolicy() }
func (s *PracticeSurface) CourseID() int         { return s.courseID }

func (s *PracticeSurface) Questions(ctx context.Context) (*quiz.Course, error) {
	return s.client.PracticeQuestions(ctx, s.courseID)
}

func (s *PracticeSurface) Progress(ctx context.Context) (*quiz.Progress, error) {
	return s.client.PracticeProgress(ctx, s.courseID)
}

func (s *PracticeSurface) UpdateQuestion(ctx context.Context, upd quiz.Update) error {
	return s.client.UpdatePracticeQuestion(ctx, upd)
}

func (s *PracticeSurface) Submit(ctx context.Context) error {
	return s.client.SubmitPractice(ctx, s.courseID)
}

func (s *PracticeSurface) Quit(ctx context.Context) error {
	return s.client.QuitPractice(ctx, s.courseID)
}
