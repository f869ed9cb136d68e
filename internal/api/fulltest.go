package api

import (
	"context"
	"fmt"

	"github.com/prepdeck/prepdeck/internal/quiz"
)

type fullTestPagePayload struct {
	TotalQuestions int            `json:"total_questions"`
	Questions      []wireQuestion `json:"questions"`
}

type wireTestRecord struct {
	ID             int    `json:"id"`
	Question       string `json:"question"`
	SelectedOption *int   `json:"selected_option"`
	IsFlagged      bool   `json:"is_flagged"`
}

type testProgressPayload struct {
	AttemptedQuestions int              `json:"attempted_questions"`
	LastViewedQuestion *int             `json:"last_viewed_question"`
	IsSubmitted        bool             `json:"is_submitted"`
	Questions          []wireTestRecord `json:"questions"`
}

// ProgressSource selects which view of full-test progress the server
// returns.
type ProgressSource string

const (
	SourceContent   ProgressSource = "content"
	SourceAnalytics ProgressSource = "analytics"
)

// FullTestQuestions fetches the flat full-test content and wraps it in
// a single-chapter tree so both surfaces share one reconciliation
// path. The synthetic chapter and subtopic reuse the course id.
func (c *Client) FullTestQuestions(ctx context.Context, courseID int) (*quiz.Course, error) {
	var payload fullTestPagePayload
	path := fmt.Sprintf("/courses/%d/full_test_page/", courseID)
	if err := c.getValidated(ctx, path, fullTestPageSchema, &payload); err != nil {
		return nil, err
	}

	sub := quiz.Subtopic{ID: courseID, Name: "Full Test"}
	for _, wq := range payload.Questions {
		sub.Questions = append(sub.Questions, wq.toQuestion())
	}

	return &quiz.Course{
		ID:             courseID,
		Name:           "Full Test",
		TotalQuestions: payload.TotalQuestions,
		Chapters: []quiz.Chapter{
			{ID: courseID, Name: "Full Test", Subtopics: []quiz.Subtopic{sub}},
		},
	}, nil
}

// FullTestProgress fetches the flat full-test progress.
func (c *Client) FullTestProgress(ctx context.Context, courseID int, source ProgressSource) (*quiz.Progress, error) {
	var payload testProgressPayload
	path := fmt.Sprintf("/test_progress/%d/progress/?source=%s", courseID, source)
	if err := c.getValidated(ctx, path, testProgressSchema, &payload); err != nil {
		return nil, err
	}

	prog := &quiz.Progress{
		Attempted: payload.AttemptedQuestions,
		Submitted: payload.IsSubmitted,
	}
	if payload.LastViewedQuestion != nil {
		prog.LastViewedQuestion = *payload.LastViewedQuestion
	}
	for _, rec := range payload.Questions {
		prog.Questions = append(prog.Questions, quiz.QuestionProgress{
			QuestionID: rec.ID,
			Answer:     quiz.DecodeSelectedOption(rec.SelectedOption),
			Flagged:    rec.IsFlagged,
		})
	}
	return prog, nil
}

// UpdateTestQuestion persists one answer/skip/flag delta on the
// full-test surface.
func (c *Client) UpdateTestQuestion(ctx context.Context, upd quiz.Update) error {
	req := updateQuestionRequest{
		QuestionID:     upd.QuestionID,
		SelectedOption: upd.Answer.EncodeSelectedOption(),
		IsFlagged:      upd.Flagged,
	}
	return c.post(ctx, "/test_progress/update_question/", req, nil)
}

// SubmitTest submits the full test for the course.
func (c *Client) SubmitTest(ctx context.Context, courseID int) error {
	return c.post(ctx, fmt.Sprintf("/test_progress/%d/submit/", courseID), nil, nil)
}

// QuitTest ends the full test without submitting.
func (c *Client) QuitTest(ctx context.Context, courseID int) error {
	return c.post(ctx, fmt.Sprintf("/test_progress/%d/quit/", courseID), nil, nil)
}

// FullTestSurface bundles the full-test endpoints for one course.
type FullTestSurface struct {
	client   *Client
	courseID int
}

// FullTest returns the full-test surface for a course.
func (c *Client) FullTest(courseID int) *FullTestSurface {
	return &FullTestSurface{client: c, courseID: courseID}
}

func (s *FullTestSurface) Surface() quiz.Surface { return quiz.SurfaceFullTest }
func (s *FullTestSurface) Policy() quiz.Policy   { return quiz.FullTestPolicy() }
func (s *FullTestSurface) CourseID() int         { return s.courseID }

func (s *FullTestSurface) Questions(ctx context.Context) (*quiz.Course, error) {
	return s.client.FullTestQuestions(ctx, s.courseID)
}

func (s *FullTestSurface) Progress(ctx context.Context) (*quiz.Progress, error) {
	return s.client.FullTestProgress(ctx, s.courseID, SourceContent)
}

func (s *FullTestSurface) UpdateQuestion(ctx context.Context, upd quiz.Update) error {
	return s.client.UpdateTestQuestion(ctx, upd)
}

func (s *FullTestSurface) Submit(ctx context.Context) error {
	return s.client.SubmitTest(ctx, s.courseID)
}

func (s *FullTestSurface) Quit(ctx context.Context) error {
	return s.client.QuitTest(ctx, s.courseID)
}
