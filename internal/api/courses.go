package api

import (
	"context"
	"fmt"
)

// Announcement is a course-level notice shown on the detail screen.
type Announcement struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`
}

// SubtopicSummary is the content outline entry for one subtopic.
type SubtopicSummary struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	QuestionCount int    `json:"question_count"`
}

// ChapterSummary is the content outline entry for one chapter.
type ChapterSummary struct {
	ID        int               `json:"id"`
	Name      string            `json:"name"`
	Subtopics []SubtopicSummary `json:"subtopics"`
}

// CourseDetail is the full course description.
type CourseDetail struct {
	ID             int              `json:"id"`
	Name           string           `json:"name"`
	About          string           `json:"about"`
	AboutShort     string           `json:"about_short"`
	TotalQuestions int              `json:"total_questions"`
	TotalChapters  int              `json:"total_chapters"`
	Announcements  []Announcement   `json:"announcements"`
	Chapters       []ChapterSummary `json:"chapters"`
}

// CourseDetail fetches the course description, outline, and
// announcements.
func (c *Client) CourseDetail(ctx context.Context, courseID int) (*CourseDetail, error) {
	var detail CourseDetail
	if err := c.get(ctx, fmt.Sprintf("/course_details/%d/", courseID), &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}
