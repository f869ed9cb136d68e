package store

import (
	"context"
	"fmt"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"credentials", "sync_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}

func TestCredentialSetUpserts(t *testing.T) {
	s := openTestStore(t)
	repo := s.CredentialRepo()
	ctx := context.Background()

	// Missing key reads as empty, not an error.
	v, err := repo.Get(ctx, "token")
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if v != "" {
		t.Errorf("value = %q, want empty", v)
	}

	if err := repo.Set(ctx, "token", "tok-1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	// Second write to the same key overwrites, it must not create a
	// duplicate row.
	if err := repo.Set(ctx, "token", "tok-2"); err != nil {
		t.Fatalf("set (overwrite): %v", err)
	}

	v, err = repo.Get(ctx, "token")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if v != "tok-2" {
		t.Errorf("value = %q, want tok-2", v)
	}

	count, err := s.Client().Credential.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("credential rows = %d, want 1", count)
	}
}

func TestCredentialDeleteAndAll(t *testing.T) {
	s := openTestStore(t)
	repo := s.CredentialRepo()
	ctx := context.Background()

	if err := repo.Set(ctx, "token", "tok"); err != nil {
		t.Fatalf("set token: %v", err)
	}
	if err := repo.Set(ctx, "course_id", "42"); err != nil {
		t.Fatalf("set course_id: %v", err)
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 2 || all["token"] != "tok" || all["course_id"] != "42" {
		t.Errorf("all = %v, want token/course_id pair", all)
	}

	if err := repo.Delete(ctx, "token"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	// Deleting a missing key is a no-op, not an error.
	if err := repo.Delete(ctx, "token"); err != nil {
		t.Fatalf("delete (again): %v", err)
	}

	v, err := repo.Get(ctx, "token")
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if v != "" {
		t.Errorf("value after delete = %q, want empty", v)
	}
}

func appendEvent(t *testing.T, repo SyncRepo, courseID, questionID int) {
	t.Helper()
	err := repo.Append(context.Background(), SyncEventData{
		RequestID:      fmt.Sprintf("req-%d-%d", courseID, questionID),
		CourseID:       courseID,
		Surface:        "practice",
		QuestionID:     questionID,
		Action:         "continue",
		SelectedOption: 1,
		OK:             true,
	})
	if err != nil {
		t.Fatalf("append q%d: %v", questionID, err)
	}
}

func TestSyncAppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.SyncRepo()
	ctx := context.Background()

	// Empty log.
	events, err := repo.Recent(ctx, 5, 10)
	if err != nil {
		t.Fatalf("recent (empty): %v", err)
	}
	if len(events) != 0 {
		t.Errorf("events = %d, want 0", len(events))
	}

	for qid := 1; qid <= 3; qid++ {
		appendEvent(t, repo, 5, qid)
	}
	err = repo.Append(ctx, SyncEventData{
		RequestID:      "req-fail",
		CourseID:       5,
		Surface:        "practice",
		QuestionID:     4,
		Action:         "skip",
		SelectedOption: -1,
		OK:             false,
		Error:          "503 from server",
	})
	if err != nil {
		t.Fatalf("append failed event: %v", err)
	}

	events, err = repo.Recent(ctx, 5, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(events) != 4 {
		t.Fatalf("events = %d, want 4", len(events))
	}

	// Newest first.
	if events[0].QuestionID != 4 || events[3].QuestionID != 1 {
		t.Errorf("order = [%d ... %d], want newest (4) first, oldest (1) last",
			events[0].QuestionID, events[3].QuestionID)
	}
	if events[0].OK || events[0].Error != "503 from server" {
		t.Errorf("failed event not preserved: ok=%v error=%q",
			events[0].OK, events[0].Error)
	}
	if events[0].Timestamp.IsZero() {
		t.Error("timestamp not set")
	}
}

func TestSyncRecentFiltersAndLimits(t *testing.T) {
	s := openTestStore(t)
	repo := s.SyncRepo()
	ctx := context.Background()

	for qid := 1; qid <= 5; qid++ {
		appendEvent(t, repo, 5, qid)
	}
	appendEvent(t, repo, 9, 100) // different course

	events, err := repo.Recent(ctx, 5, 3)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("events = %d, want limit of 3", len(events))
	}
	for _, ev := range events {
		if ev.CourseID != 5 {
			t.Errorf("event for course %d leaked into course 5's log", ev.CourseID)
		}
	}
	if events[0].QuestionID != 5 {
		t.Errorf("first event q%d, want the newest (q5)", events[0].QuestionID)
	}
}
