package attempt

import "github.com/prepdeck/prepdeck/internal/quiz"

// questionsMsg carries the content half of the parallel load.
type questionsMsg struct {
	Course *quiz.Course
	Err    error
}

// progressMsg carries the progress half of the parallel load.
type progressMsg struct {
	Progress *quiz.Progress
	Err      error
}

// advanceResultMsg reports the persistence call behind a continue or
// skip.
type advanceResultMsg struct {
	Update quiz.Update
	Action string
	Err    error
}

// submitResultMsg reports the submission call.
type submitResultMsg struct {
	Err error
}

// quitResultMsg reports the quit call.
type quitResultMsg struct {
	Err error
}
