package quiz

import "fmt"

// AnswerKind distinguishes the three per-question states the service
// conflates on the wire (null vs. option index vs. a legacy sentinel).
type AnswerKind int

const (
	// KindUnanswered means the question was never visited or its
	// selection was cleared.
	KindUnanswered AnswerKind = iota

	// KindSkipped means the question was visited and explicitly
	// skipped.
	KindSkipped

	// KindAnswered means an option was selected.
	KindAnswered
)

// skippedSentinel is the legacy wire value some deployments store in
// selected_option to mean "explicitly skipped". It is decoded here and
// never leaks past this package boundary.
const skippedSentinel = 10

// Answer is the tagged per-question answer state. Option is only
// meaningful when Kind is KindAnswered.
type Answer struct {
	Kind   AnswerKind
	Option int
}

// NoAnswer is the zero Answer: unanswered.
var NoAnswer = Answer{Kind: KindUnanswered}

// SkippedAnswer marks a question as visited and skipped.
var SkippedAnswer = Answer{Kind: KindSkipped}

// Chosen returns an Answer for the selected option index.
func Chosen(option int) Answer {
	return Answer{Kind: KindAnswered, Option: option}
}

// Attempted reports whether the answer counts as attempted by the
// server's convention: an option was actually selected.
func (a Answer) Attempted() bool {
	return a.Kind == KindAnswered
}

// DecodeSelectedOption maps the wire selected_option field to an
// Answer: null means unanswered, the legacy sentinel means skipped,
// anything else is a selected option index.
func DecodeSelectedOption(selected *int) Answer {
	switch {
	case selected == nil:
		return NoAnswer
	case *selected == skippedSentinel:
		return SkippedAnswer
	default:
		return Chosen(*selected)
	}
}

// EncodeSelectedOption maps an Answer back to the wire field. Skipped
// is persisted as explicit null, matching the write-side convention
// (the sentinel is read-side legacy only).
func (a Answer) EncodeSelectedOption() *int {
	if a.Kind != KindAnswered {
		return nil
	}
	opt := a.Option
	return &opt
}

func (a Answer) String() string {
	switch a.Kind {
	case KindSkipped:
		return "skipped"
	case KindAnswered:
		return fmt.Sprintf("answered(%d)", a.Option)
	default:
		return "unanswered"
	}
}
