package attempt

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/prepdeck/prepdeck/internal/quiz"
	"github.com/prepdeck/prepdeck/internal/router"
	"github.com/prepdeck/prepdeck/internal/store"
)

// fakeBackend implements Backend against fixture data.
type fakeBackend struct {
	course *quiz.Course
	prog   *quiz.Progress

	updateErr error
	updates   []quiz.Update
	submits   int
	quits     int
}

func (f *fakeBackend) Surface() quiz.Surface { return quiz.SurfacePractice }
func (f *fakeBackend) Policy() quiz.Policy   { return quiz.PracticePolicy() }
func (f *fakeBackend) CourseID() int         { return f.course.ID }

func (f *fakeBackend) Questions(context.Context) (*quiz.Course, error) { return f.course, nil }
func (f *fakeBackend) Progress(context.Context) (*quiz.Progress, error) {
	return f.prog, nil
}

func (f *fakeBackend) UpdateQuestion(_ context.Context, upd quiz.Update) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates = append(f.updates, upd)
	return nil
}

func (f *fakeBackend) Submit(context.Context) error { f.submits++; return nil }
func (f *fakeBackend) Quit(context.Context) error   { f.quits++; return nil }

// memSync is an in-memory sync journal.
type memSync struct {
	events []store.SyncEventData
}

func (m *memSync) Append(_ context.Context, data store.SyncEventData) error {
	m.events = append(m.events, data)
	return nil
}

func (m *memSync) Recent(context.Context, int, int) ([]store.SyncEventRecord, error) {
	return nil, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func fixtureCourse() *quiz.Course {
	return &quiz.Course{
		ID:             5,
		Name:           "Anatomy",
		TotalQuestions: 2,
		Chapters: []quiz.Chapter{
			{ID: 10, Name: "Bones", Subtopics: []quiz.Subtopic{
				{ID: 100, Name: "Skull", Questions: []quiz.Question{
					{ID: 1, Text: "Q1", Options: []string{"a", "b", "c", "d"}, CorrectOption: 1},
					{ID: 2, Text: "Q2", Options: []string{"a", "b", "c", "d"}, CorrectOption: 0},
				}},
			}},
		},
	}
}

// loadedScreen builds an attempt screen with both halves delivered.
func loadedScreen(fb *fakeBackend, sync store.SyncRepo) *AttemptScreen {
	s := New(fb, sync)
	s.Update(questionsMsg{Course: fb.course})
	s.Update(progressMsg{Progress: fb.prog})
	return s
}

func TestLoadReconcilesAfterBothHalves(t *testing.T) {
	fb := &fakeBackend{course: fixtureCourse(), prog: &quiz.Progress{}}
	s := New(fb, nil)

	s.Update(questionsMsg{Course: fb.course})
	if s.ctrl != nil {
		t.Fatal("controller must not exist before progress arrives")
	}

	s.Update(progressMsg{Progress: fb.prog})
	if s.ctrl == nil {
		t.Fatal("controller missing after both halves")
	}
	if s.ctrl.Phase() != quiz.PhaseReady {
		t.Errorf("phase = %v, want PhaseReady", s.ctrl.Phase())
	}
}

func TestAnswerContinuePersistsAndAdvances(t *testing.T) {
	fb := &fakeBackend{course: fixtureCourse(), prog: &quiz.Progress{}}
	sync := &memSync{}
	s := loadedScreen(fb, sync)

	s.Update(keyPress('2'))
	if s.ctrl.Selected() != 1 {
		t.Fatalf("selected = %d, want 1", s.ctrl.Selected())
	}

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected persistence command")
	}
	if s.ctrl.Phase() != quiz.PhaseAdvancing {
		t.Fatalf("phase = %v, want PhaseAdvancing", s.ctrl.Phase())
	}

	// Run the command and feed its result back, as the program would.
	s.Update(cmd())

	if got := s.ctrl.Current().ID; got != 2 {
		t.Errorf("cursor question = %d, want 2", got)
	}
	if len(fb.updates) != 1 {
		t.Fatalf("updates = %d, want 1", len(fb.updates))
	}
	if fb.updates[0].Answer != quiz.Chosen(1) {
		t.Errorf("persisted answer = %v, want Chosen(1)", fb.updates[0].Answer)
	}

	if len(sync.events) != 1 {
		t.Fatalf("sync events = %d, want 1", len(sync.events))
	}
	ev := sync.events[0]
	if !ev.OK || ev.Action != "continue" || ev.QuestionID != 1 || ev.SelectedOption != 1 {
		t.Errorf("unexpected sync event: %+v", ev)
	}
	if ev.RequestID == "" {
		t.Error("sync event missing request id")
	}
}

func TestFailedAdvanceRevertsAndKeepsCursor(t *testing.T) {
	fb := &fakeBackend{
		course:    fixtureCourse(),
		prog:      &quiz.Progress{},
		updateErr: errors.New("boom"),
	}
	sync := &memSync{}
	s := loadedScreen(fb, sync)

	s.Update(keyPress('1'))
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	s.Update(cmd())

	if got := s.ctrl.Current().ID; got != 1 {
		t.Errorf("cursor question = %d, want 1 (no advance)", got)
	}
	if s.ctrl.Phase() != quiz.PhaseReady {
		t.Errorf("phase = %v, want PhaseReady for retry", s.ctrl.Phase())
	}
	if s.actionErr == "" {
		t.Error("expected an error message")
	}
	if len(sync.events) != 1 || sync.events[0].OK {
		t.Errorf("expected one failed sync event, got %+v", sync.events)
	}
}

func TestLastQuestionRoutesToSubmission(t *testing.T) {
	fb := &fakeBackend{course: fixtureCourse(), prog: &quiz.Progress{}}
	s := loadedScreen(fb, nil)

	// Answer question 1.
	s.Update(keyPress('1'))
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	s.Update(cmd())

	// Answer question 2 (the last one).
	s.Update(keyPress('1'))
	_, cmd = s.Update(specialKey(tea.KeyEnter))
	_, submitCmd := s.Update(cmd())

	if s.ctrl.Phase() != quiz.PhaseSubmitting {
		t.Fatalf("phase = %v, want PhaseSubmitting", s.ctrl.Phase())
	}
	if submitCmd == nil {
		t.Fatal("expected submit command at end of quiz")
	}

	_, replaceCmd := s.Update(submitCmd())
	if fb.submits != 1 {
		t.Errorf("submits = %d, want 1", fb.submits)
	}
	if s.ctrl.Phase() != quiz.PhaseSubmitted {
		t.Errorf("phase = %v, want PhaseSubmitted", s.ctrl.Phase())
	}
	if replaceCmd == nil {
		t.Fatal("expected screen replacement after submission")
	}
	if _, ok := replaceCmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg to the results screen")
	}
}

func TestSkipPersistsNullAnswer(t *testing.T) {
	fb := &fakeBackend{course: fixtureCourse(), prog: &quiz.Progress{}}
	sync := &memSync{}
	s := loadedScreen(fb, sync)

	_, cmd := s.Update(keyPress('s'))
	if cmd == nil {
		t.Fatal("expected persistence command for skip")
	}
	s.Update(cmd())

	if len(fb.updates) != 1 {
		t.Fatalf("updates = %d, want 1", len(fb.updates))
	}
	if fb.updates[0].Answer != quiz.SkippedAnswer {
		t.Errorf("persisted answer = %v, want SkippedAnswer", fb.updates[0].Answer)
	}
	if sync.events[0].SelectedOption != -1 || sync.events[0].Action != "skip" {
		t.Errorf("unexpected sync event: %+v", sync.events[0])
	}
}

func TestQuitConfirmFlow(t *testing.T) {
	fb := &fakeBackend{course: fixtureCourse(), prog: &quiz.Progress{}}
	s := loadedScreen(fb, nil)

	s.Update(keyPress('q'))
	if !s.confirmQuit {
		t.Fatal("expected quit confirmation prompt")
	}

	// Dismiss.
	s.Update(keyPress('n'))
	if s.confirmQuit {
		t.Fatal("expected prompt dismissed")
	}
	if fb.quits != 0 {
		t.Fatal("quit must not fire before confirmation")
	}

	// Confirm.
	s.Update(keyPress('q'))
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	_, popCmd := s.Update(cmd())
	if fb.quits != 1 {
		t.Errorf("quits = %d, want 1", fb.quits)
	}
	if popCmd == nil {
		t.Fatal("expected pop after quit")
	}
	if _, ok := popCmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestResumeStartsAfterLastViewed(t *testing.T) {
	fb := &fakeBackend{
		course: fixtureCourse(),
		prog: &quiz.Progress{
			Attempted:          1,
			LastViewedQuestion: 1,
			Questions: []quiz.QuestionProgress{
				{QuestionID: 1, Answer: quiz.Chosen(1)},
			},
		},
	}
	s := loadedScreen(fb, nil)

	if got := s.ctrl.Current().ID; got != 2 {
		t.Errorf("resume question = %d, want 2", got)
	}
}

func TestSelectionIgnoredWhileAdvancing(t *testing.T) {
	fb := &fakeBackend{course: fixtureCourse(), prog: &quiz.Progress{}}
	s := loadedScreen(fb, nil)

	s.Update(keyPress('1'))
	s.Update(specialKey(tea.KeyEnter))

	// Mid-flight keystrokes must not change the pending update.
	s.Update(keyPress('3'))
	if s.ctrl.Selected() != 0 {
		t.Errorf("selected = %d, want 0 (unchanged)", s.ctrl.Selected())
	}
}
