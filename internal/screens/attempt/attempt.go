package attempt

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/prepdeck/prepdeck/internal/quiz"
	"github.com/prepdeck/prepdeck/internal/router"
	"github.com/prepdeck/prepdeck/internal/screen"
	"github.com/prepdeck/prepdeck/internal/screens/results"
	"github.com/prepdeck/prepdeck/internal/store"
	"github.com/prepdeck/prepdeck/internal/ui/components"
	"github.com/prepdeck/prepdeck/internal/ui/layout"
)

// Backend is the surface-specific slice of the API the attempt screen
// drives. Both the practice and full-test surfaces satisfy it.
type Backend interface {
	Surface() quiz.Surface
	Policy() quiz.Policy
	CourseID() int
	Questions(ctx context.Context) (*quiz.Course, error)
	Progress(ctx context.Context) (*quiz.Progress, error)
	UpdateQuestion(ctx context.Context, upd quiz.Update) error
	Submit(ctx context.Context) error
	Quit(ctx context.Context) error
}

// AttemptScreen runs a quiz session on one surface: it loads content
// and progress in parallel, reconciles them, and drives the
// answer/skip/flag/submit flow through the controller.
type AttemptScreen struct {
	backend Backend
	sync    store.SyncRepo

	// Partial load state. The controller exists only once both halves
	// have arrived and reconciled.
	course   *quiz.Course
	progress *quiz.Progress
	fetching bool
	loadErr  string

	ctrl    *quiz.Controller
	options components.OptionList

	confirmQuit bool
	actionErr   string
}

var _ screen.Screen = (*AttemptScreen)(nil)
var _ screen.KeyHintProvider = (*AttemptScreen)(nil)

// New creates an attempt screen for the given surface backend.
func New(backend Backend, sync store.SyncRepo) *AttemptScreen {
	return &AttemptScreen{backend: backend, sync: sync}
}

// Init starts both halves of the load. The fetching guard keeps a
// re-Init (screen re-push) from doubling the requests; it is reset
// only on failure so retry works.
func (s *AttemptScreen) Init() tea.Cmd {
	if s.fetching || s.ctrl != nil {
		return nil
	}
	s.fetching = true
	s.loadErr = ""
	return tea.Batch(s.fetchQuestions(), s.fetchProgress())
}

func (s *AttemptScreen) Title() string {
	if s.backend.Surface() == quiz.SurfaceFullTest {
		return "Full Test"
	}
	return "Practice"
}

func (s *AttemptScreen) fetchQuestions() tea.Cmd {
	return func() tea.Msg {
		course, err := s.backend.Questions(context.Background())
		return questionsMsg{Course: course, Err: err}
	}
}

func (s *AttemptScreen) fetchProgress() tea.Cmd {
	return func() tea.Msg {
		prog, err := s.backend.Progress(context.Background())
		return progressMsg{Progress: prog, Err: err}
	}
}

// reconcile builds the controller once both halves are in.
func (s *AttemptScreen) reconcile() {
	if s.course == nil || s.progress == nil {
		return
	}
	state, err := quiz.Reconcile(s.course, s.progress)
	if err != nil {
		s.loadErr = err.Error()
		s.fetching = false
		return
	}
	s.ctrl = quiz.NewController(state, s.backend.Policy())
	s.syncOptions()
}

// syncOptions rebuilds the option component for the cursor question.
func (s *AttemptScreen) syncOptions() {
	q := s.ctrl.Current()
	if q == nil {
		return
	}
	s.options = components.NewOptionList(q.Options, q.CorrectOption)
	s.options.Chosen = s.ctrl.Selected()
}

// persistAdvance sends the update and logs the outcome to the local
// sync journal.
func (s *AttemptScreen) persistAdvance(upd quiz.Update, action string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		err := s.backend.UpdateQuestion(ctx, upd)
		s.logSync(ctx, upd, action, err)
		return advanceResultMsg{Update: upd, Action: action, Err: err}
	}
}

func (s *AttemptScreen) logSync(ctx context.Context, upd quiz.Update, action string, callErr error) {
	if s.sync == nil {
		return
	}
	data := store.SyncEventData{
		RequestID:      uuid.New().String(),
		CourseID:       s.backend.CourseID(),
		Surface:        string(s.backend.Surface()),
		QuestionID:     upd.QuestionID,
		Action:         action,
		SelectedOption: -1,
		Flagged:        upd.Flagged,
		OK:             callErr == nil,
	}
	if upd.Answer.Kind == quiz.KindAnswered {
		data.SelectedOption = upd.Answer.Option
	}
	if callErr != nil {
		data.Error = callErr.Error()
	}
	// Journal failures must never interrupt the quiz.
	_ = s.sync.Append(ctx, data)
}

func (s *AttemptScreen) submit() tea.Cmd {
	return func() tea.Msg {
		return submitResultMsg{Err: s.backend.Submit(context.Background())}
	}
}

func (s *AttemptScreen) quit() tea.Cmd {
	return func() tea.Msg {
		return quitResultMsg{Err: s.backend.Quit(context.Background())}
	}
}

func (s *AttemptScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsMsg:
		if msg.Err != nil {
			s.loadErr = msg.Err.Error()
			s.fetching = false
			return s, nil
		}
		s.course = msg.Course
		s.reconcile()
		return s, nil

	case progressMsg:
		if msg.Err != nil {
			s.loadErr = msg.Err.Error()
			s.fetching = false
			return s, nil
		}
		s.progress = msg.Progress
		s.reconcile()
		return s, nil

	case advanceResultMsg:
		if s.ctrl == nil {
			return s, nil
		}
		if msg.Err != nil {
			s.ctrl.RevertAdvance()
			s.actionErr = msg.Err.Error()
			s.syncOptions()
			return s, nil
		}
		s.actionErr = ""
		outcome := s.ctrl.CommitAdvance()
		if outcome.AtEnd {
			s.ctrl.StartSubmit()
			return s, s.submit()
		}
		s.syncOptions()
		return s, nil

	case submitResultMsg:
		if s.ctrl == nil {
			return s, nil
		}
		if s.ctrl.FinishSubmit(msg.Err) == quiz.PhaseSubmitted {
			return s, func() tea.Msg {
				return router.ReplaceScreenMsg{
					Screen: results.New(s.ctrl.State, s.backend.Surface()),
				}
			}
		}
		return s, nil

	case quitResultMsg:
		if s.ctrl == nil {
			return s, nil
		}
		if s.ctrl.FinishQuit(msg.Err) == quiz.PhaseQuit {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		s.actionErr = msg.Err.Error()
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *AttemptScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Load failed: r retries, esc backs out.
	if s.ctrl == nil {
		switch key {
		case "r":
			if s.loadErr != "" {
				return s, s.Init()
			}
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	if s.confirmQuit {
		switch key {
		case "y", "enter":
			s.confirmQuit = false
			if s.ctrl.StartQuit() {
				return s, s.quit()
			}
		case "n", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	switch s.ctrl.Phase() {
	case quiz.PhaseSubmitError:
		if key == "enter" || key == "r" {
			if s.ctrl.StartSubmit() {
				return s, s.submit()
			}
		}
		return s, nil

	case quiz.PhaseAdvancing, quiz.PhaseSubmitting, quiz.PhaseQuitting:
		// Writes in flight: ignore input until the result lands.
		return s, nil
	}

	switch key {
	case "1", "2", "3", "4":
		option := int(key[0] - '1')
		if s.ctrl.SelectOption(option) {
			s.options.Chosen = s.ctrl.Selected()
			s.actionErr = ""
		}
		return s, nil

	case " ", "space":
		if s.ctrl.SelectOption(s.options.Cursor) {
			s.options.Chosen = s.ctrl.Selected()
			s.actionErr = ""
		}
		return s, nil

	case "enter":
		if upd, ok := s.ctrl.StartContinue(); ok {
			s.options.Locked = true
			return s, s.persistAdvance(upd, "continue")
		}
		return s, nil

	case "s":
		if upd, ok := s.ctrl.StartSkip(); ok {
			s.options.Locked = true
			return s, s.persistAdvance(upd, "skip")
		}
		return s, nil

	case "f":
		s.ctrl.ToggleFlag()
		return s, nil

	case "q", "esc":
		s.confirmQuit = true
		return s, nil
	}

	var cmd tea.Cmd
	s.options, cmd = s.options.Update(msg)
	return s, cmd
}

func (s *AttemptScreen) KeyHints() []layout.KeyHint {
	if s.ctrl == nil {
		return []layout.KeyHint{
			{Key: "r", Description: "Retry"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "Enter", Description: "Continue"},
		{Key: "s", Description: "Skip"},
		{Key: "f", Description: "Flag"},
		{Key: "q", Description: "Quit quiz"},
	}
}
