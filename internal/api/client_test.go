package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepdeck/prepdeck/internal/quiz"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Config{BaseURL: srv.URL, Token: "tok-abc"})
}

func TestAuthHeaderSentVerbatim(t *testing.T) {
	var gotAuth string
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))

	_, err := c.ListNotes(context.Background())
	require.NoError(t, err)
	// No "Bearer" prefix: the service expects the token as stored.
	assert.Equal(t, "tok-abc", gotAuth)
}

func TestNon2xxBecomesAPIError(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such course", http.StatusNotFound)
	}))

	_, err := c.CourseDetail(context.Background(), 99)
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.True(t, IsNotFound(err))
}

func TestUpdateEncodesSkipAsNull(t *testing.T) {
	var gotBody string
	var gotType string
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		gotType = r.Header.Get("Content-Type")
		w.Write([]byte(`{}`))
	}))

	err := c.UpdatePracticeQuestion(context.Background(), quiz.Update{
		QuestionID: 7,
		Answer:     quiz.SkippedAnswer,
		Flagged:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, "application/json", gotType)
	assert.JSONEq(t, `{"question_id":7,"selected_option":null,"is_flagged":true}`, gotBody)
}

func TestUpdateEncodesSelectedOption(t *testing.T) {
	var gotBody string
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Write([]byte(`{}`))
	}))

	err := c.UpdateTestQuestion(context.Background(), quiz.Update{
		QuestionID: 3,
		Answer:     quiz.Chosen(2),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"question_id":3,"selected_option":2,"is_flagged":false}`, gotBody)
}
