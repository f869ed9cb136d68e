package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/prepdeck/prepdeck/internal/store"
)

// ErrNoToken is returned when an operation requires a signed-in session
// and none exists.
var ErrNoToken = errors.New("not signed in: run `prepdeck login` first")

// ErrNoCourse is returned when an operation requires an active course
// and none has been selected.
var ErrNoCourse = errors.New("no active course selected")

// Session is the typed, process-wide session state: the auth token and
// the currently selected course. Reads are in-memory; every write goes
// through exactly one path per field and is persisted immediately, so
// separate command invocations share the same session.
type Session struct {
	creds store.CredentialRepo

	token      string
	courseID   int
	courseName string
}

// Load reads the persisted session from the credential store.
func Load(ctx context.Context, creds store.CredentialRepo) (*Session, error) {
	s := &Session{creds: creds}

	token, err := creds.Get(ctx, store.KeyToken)
	if err != nil {
		return nil, fmt.Errorf("load token: %w", err)
	}
	s.token = token

	rawID, err := creds.Get(ctx, store.KeyCourseID)
	if err != nil {
		return nil, fmt.Errorf("load course id: %w", err)
	}
	if rawID != "" {
		id, err := strconv.Atoi(rawID)
		if err != nil {
			return nil, fmt.Errorf("parse stored course id %q: %w", rawID, err)
		}
		s.courseID = id
	}

	name, err := creds.Get(ctx, store.KeyCourseName)
	if err != nil {
		return nil, fmt.Errorf("load course name: %w", err)
	}
	s.courseName = name

	return s, nil
}

// Token returns the stored auth token, empty when signed out.
func (s *Session) Token() string {
	return s.token
}

// RequireToken returns the token or ErrNoToken. Callers must check this
// before issuing any authenticated request.
func (s *Session) RequireToken() (string, error) {
	if s.token == "" {
		return "", ErrNoToken
	}
	return s.token, nil
}

// ActiveCourse returns the selected course id and name. ok is false
// when no course has been selected yet.
func (s *Session) ActiveCourse() (id int, name string, ok bool) {
	if s.courseID == 0 {
		return 0, "", false
	}
	return s.courseID, s.courseName, true
}

// RequireCourse returns the active course id or ErrNoCourse.
func (s *Session) RequireCourse() (int, error) {
	if s.courseID == 0 {
		return 0, ErrNoCourse
	}
	return s.courseID, nil
}

// SetToken stores a new auth token.
func (s *Session) SetToken(ctx context.Context, token string) error {
	if err := s.creds.Set(ctx, store.KeyToken, token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	s.token = token
	return nil
}

// SetActiveCourse records the course the user is working in.
func (s *Session) SetActiveCourse(ctx context.Context, id int, name string) error {
	if err := s.creds.Set(ctx, store.KeyCourseID, strconv.Itoa(id)); err != nil {
		return fmt.Errorf("persist course id: %w", err)
	}
	if err := s.creds.Set(ctx, store.KeyCourseName, name); err != nil {
		return fmt.Errorf("persist course name: %w", err)
	}
	s.courseID = id
	s.courseName = name
	return nil
}

// Clear signs the user out and forgets the active course.
func (s *Session) Clear(ctx context.Context) error {
	for _, key := range []string{store.KeyToken, store.KeyCourseID, store.KeyCourseName} {
		if err := s.creds.Delete(ctx, key); err != nil {
			return fmt.Errorf("clear %s: %w", key, err)
		}
	}
	s.token = ""
	s.courseID = 0
	s.courseName = ""
	return nil
}
