package session

import (
	"github.com/umputun/onepick/pkg/domain"
)

// Input is one user action applied to a session
type Input interface {
	name() string
	validate() error
}

// MoodAnswer answers the first question
type MoodAnswer struct{ Mood domain.Mood }

// PaceAnswer answers the second question
type PaceAnswer struct{ Pace domain.Pace }

// FormatAnswer answers the third question and triggers the recommendation
type FormatAnswer struct{ Format domain.ItemType }

// Shown acknowledges the recommendation reached the user
type Shown struct{}

// Feedback is the reaction to the shown recommendation
type Feedback struct{ Kind domain.FeedbackKind }

func (MoodAnswer) name() string   { return "mood answer" }
func (PaceAnswer) name() string   { return "pace answer" }
func (FormatAnswer) name() string { return "format answer" }
func (Shown) name() string        { return "shown" }
func (Feedback) name() string     { return "feedback" }

func (a MoodAnswer) validate() error   { return a.Mood.Validate() }
func (a PaceAnswer) validate() error   { return a.Pace.Validate() }
func (a FormatAnswer) validate() error { return a.Format.Validate() }
func (Shown) validate() error          { return nil }
func (f Feedback) validate() error     { return f.Kind.Validate() }
