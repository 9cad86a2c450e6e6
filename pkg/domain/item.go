package domain

import (
	"fmt"
	"time"
)

// ItemType is the catalog item kind
type ItemType string

// item types
const (
	ItemMovie  ItemType = "movie"
	ItemSeries ItemType = "series"
)

// Validate checks the item type is one of the known values
func (t ItemType) Validate() error {
	switch t {
	case ItemMovie, ItemSeries:
		return nil
	default:
		return fmt.Errorf("unknown item type %q", t)
	}
}

// Mood is the answer to the first question, the emotional state the user is in
type Mood string

// moods
const (
	MoodLight  Mood = "light"
	MoodHeavy  Mood = "heavy"
	MoodEscape Mood = "escape"
)

// Validate checks the mood is one of the known values
func (m Mood) Validate() error {
	switch m {
	case MoodLight, MoodHeavy, MoodEscape:
		return nil
	default:
		return fmt.Errorf("unknown mood %q", m)
	}
}

// Pace is the answer to the second question
type Pace string

// paces
const (
	PaceSlow Pace = "slow"
	PaceFast Pace = "fast"
)

// Validate checks the pace is one of the known values
func (p Pace) Validate() error {
	switch p {
	case PaceSlow, PaceFast:
		return nil
	default:
		return fmt.Errorf("unknown pace %q", p)
	}
}

// Item represents a catalog entry that can be recommended or posted.
// Items are owned by the catalog; only BaseScore changes after creation, on sync.
type Item struct {
	ID        string
	Type      ItemType
	Title     string
	Tags      []string // genre and mood attributes, lower case
	Mood      Mood     // empty if the item has no mood attribute
	Pace      Pace     // empty if the item has no pace attribute
	Intensity int      // 1..5, zero if unknown
	BaseScore float64
	Meta      map[string]string

	// upstream stats used to recompute BaseScore
	VoteAverage float64
	VoteCount   int
	Popularity  float64

	UpdatedAt time.Time
}

// HasTag reports whether the item carries the given tag
func (i Item) HasTag(tag string) bool {
	for _, t := range i.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Answers holds the three answers collected by the questionnaire
type Answers struct {
	Mood   Mood     `json:"mood"`
	Pace   Pace     `json:"pace"`
	Format ItemType `json:"format"`
}

// Validate checks all three answers are present and known
func (a Answers) Validate() error {
	if err := a.Mood.Validate(); err != nil {
		return err
	}
	if err := a.Pace.Validate(); err != nil {
		return err
	}
	return a.Format.Validate()
}

// CandidateFilter narrows catalog candidates for a recommendation request
type CandidateFilter struct {
	Type    ItemType
	Mood    Mood
	Exclude map[string]struct{}
	Limit   int
}
