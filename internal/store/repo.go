package store

import (
	"context"
	"time"
)

// Credential keys used by the session layer.
const (
	KeyToken      = "token"
	KeyCourseID   = "course_id"
	KeyCourseName = "course_name"
)

// CredentialRepo is the narrow persistence interface for session
// credentials. Set upserts by key.
type CredentialRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	All(ctx context.Context) (map[string]string, error)
}

// SyncEventData captures one answer-persistence call to the remote
// service.
type SyncEventData struct {
	RequestID      string
	CourseID       int
	Surface        string
	QuestionID     int
	Action         string
	SelectedOption int // -1 when no option was sent
	Flagged        bool
	OK             bool
	Error          string
}

// SyncEventRecord is a stored sync event with its timestamp.
type SyncEventRecord struct {
	SyncEventData
	Timestamp time.Time
}

// SyncRepo provides append and query access to the sync log.
type SyncRepo interface {
	Append(ctx context.Context, data SyncEventData) error

	// Recent returns up to limit events for the course, newest first.
	Recent(ctx context.Context, courseID, limit int) ([]SyncEventRecord, error)
}
