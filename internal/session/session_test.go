package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// memCreds implements store.CredentialRepo in memory for testing.
type memCreds struct {
	data map[string]string
}

func newMemCreds() *memCreds {
	return &memCreds{data: make(map[string]string)}
}

func (m *memCreds) Get(_ context.Context, key string) (string, error) {
	return m.data[key], nil
}

func (m *memCreds) Set(_ context.Context, key, value string) error {
	m.data[key] = value
	return nil
}

func (m *memCreds) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *memCreds) All(_ context.Context) (map[string]string, error) {
	out := make(map[string]string, len(m.data))
	for k, v := range m.data {
		out[k] = v
	}
	return out, nil
}

func TestLoadEmpty(t *testing.T) {
	s, err := Load(context.Background(), newMemCreds())
	require.NoError(t, err)

	require.Empty(t, s.Token())

	_, err = s.RequireToken()
	require.ErrorIs(t, err, ErrNoToken)

	_, _, ok := s.ActiveCourse()
	require.False(t, ok)

	_, err = s.RequireCourse()
	require.ErrorIs(t, err, ErrNoCourse)
}

func TestSetTokenPersists(t *testing.T) {
	ctx := context.Background()
	creds := newMemCreds()

	s, err := Load(ctx, creds)
	require.NoError(t, err)
	require.NoError(t, s.SetToken(ctx, "tok-123"))

	// A fresh load (new process) sees the same token.
	s2, err := Load(ctx, creds)
	require.NoError(t, err)
	require.Equal(t, "tok-123", s2.Token())

	tok, err := s2.RequireToken()
	require.NoError(t, err)
	require.Equal(t, "tok-123", tok)
}

func TestSetActiveCourseRoundTrip(t *testing.T) {
	ctx := context.Background()
	creds := newMemCreds()

	s, err := Load(ctx, creds)
	require.NoError(t, err)
	require.NoError(t, s.SetActiveCourse(ctx, 42, "NCLEX Prep"))

	s2, err := Load(ctx, creds)
	require.NoError(t, err)

	id, name, ok := s2.ActiveCourse()
	require.True(t, ok)
	require.Equal(t, 42, id)
	require.Equal(t, "NCLEX Prep", name)
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	creds := newMemCreds()

	s, err := Load(ctx, creds)
	require.NoError(t, err)
	require.NoError(t, s.SetToken(ctx, "tok"))
	require.NoError(t, s.SetActiveCourse(ctx, 7, "Course"))

	require.NoError(t, s.Clear(ctx))
	require.Empty(t, s.Token())
	_, _, ok := s.ActiveCourse()
	require.False(t, ok)

	s2, err := Load(ctx, creds)
	require.NoError(t, err)
	require.Empty(t, s2.Token())
}

func TestCorruptCourseID(t *testing.T) {
	ctx := context.Background()
	creds := newMemCreds()
	creds.data["course_id"] = "not-a-number"

	_, err := Load(ctx, creds)
	require.Error(t, err)
}
