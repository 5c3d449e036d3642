package assessment

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/careercompass/compass/internal/catalog"
)

const (
	// MaxDomains is the most domains a user may select.
	MaxDomains = 3

	// DefaultRating is the slider midpoint shown before a skill is rated.
	// It is not recorded until the user touches the slider.
	DefaultRating = 50

	MinRating = 0
	MaxRating = 100
)

// ErrDomainLimit is returned when a fourth domain is toggled on.
var ErrDomainLimit = errors.New("at most 3 domains can be selected")

// Responses holds single-choice answers keyed by question key.
type Responses map[string]string

// Answers is the aggregate of everything the user entered in the wizard.
// Sets are kept as slices in selection order so serialization is stable.
type Answers struct {
	SelectedInterests []string       `json:"selectedInterests"`
	SelectedDomains   []string       `json:"selectedDomains"`
	SkillRatings      map[string]int `json:"skillRatings"`
	Personality       Responses      `json:"personality"`
	WorkStyle         Responses      `json:"workStyle"`
	Goals             Responses      `json:"goals"`
}

// NewAnswers returns an empty answer model.
func NewAnswers() *Answers {
	return &Answers{
		SelectedInterests: []string{},
		SelectedDomains:   []string{},
		SkillRatings:      map[string]int{},
		Personality:       Responses{},
		WorkStyle:         Responses{},
		Goals:             Responses{},
	}
}

// Clone returns a deep copy.
func (a *Answers) Clone() *Answers {
	c := NewAnswers()
	c.SelectedInterests = append(c.SelectedInterests, a.SelectedInterests...)
	c.SelectedDomains = append(c.SelectedDomains, a.SelectedDomains...)
	maps.Copy(c.SkillRatings, a.SkillRatings)
	maps.Copy(c.Personality, a.Personality)
	maps.Copy(c.WorkStyle, a.WorkStyle)
	maps.Copy(c.Goals, a.Goals)
	return c
}

// Normalize replaces nil containers with empty ones, e.g. after decoding
// a record that omitted a section.
func (a *Answers) Normalize() {
	if a.SelectedInterests == nil {
		a.SelectedInterests = []string{}
	}
	if a.SelectedDomains == nil {
		a.SelectedDomains = []string{}
	}
	if a.SkillRatings == nil {
		a.SkillRatings = map[string]int{}
	}
	if a.Personality == nil {
		a.Personality = Responses{}
	}
	if a.WorkStyle == nil {
		a.WorkStyle = Responses{}
	}
	if a.Goals == nil {
		a.Goals = Responses{}
	}
}

// ToggleInterest adds id to the selected interests, or removes it if present.
func (a *Answers) ToggleInterest(id string) {
	a.SelectedInterests = toggle(a.SelectedInterests, id)
}

// ToggleDomain adds or removes a domain. Adding a domain when MaxDomains
// are already selected leaves the set unchanged and returns ErrDomainLimit.
func (a *Answers) ToggleDomain(id string) error {
	if !slices.Contains(a.SelectedDomains, id) && len(a.SelectedDomains) >= MaxDomains {
		return ErrDomainLimit
	}
	a.SelectedDomains = toggle(a.SelectedDomains, id)
	return nil
}

func toggle(set []string, id string) []string {
	if i := slices.Index(set, id); i >= 0 {
		return slices.Delete(slices.Clone(set), i, i+1)
	}
	return append(slices.Clone(set), id)
}

// RateSkill records a rating, clamped to [MinRating, MaxRating].
func (a *Answers) RateSkill(skill string, value int) {
	a.SkillRatings[skill] = min(max(value, MinRating), MaxRating)
}

// Rating returns the recorded rating for skill, or DefaultRating and false.
func (a *Answers) Rating(skill string) (int, bool) {
	v, ok := a.SkillRatings[skill]
	if !ok {
		return DefaultRating, false
	}
	return v, true
}

// Responses returns the response map for a single-choice section.
func (a *Answers) Responses(id SectionID) (Responses, bool) {
	switch id {
	case SectionPersonality:
		return a.Personality, true
	case SectionWorkStyle:
		return a.WorkStyle, true
	case SectionGoals:
		return a.Goals, true
	default:
		return nil, false
	}
}

// SetResponse stores the answer for key in a single-choice section. An
// empty value clears the answer.
func (a *Answers) SetResponse(id SectionID, key, value string) error {
	group, ok := responseGroup(id)
	if !ok {
		return fmt.Errorf("section %q has no single-choice questions", id)
	}
	if !slices.Contains(catalog.QuestionKeys(group), key) {
		return fmt.Errorf("unknown %s question %q", id, key)
	}
	r, _ := a.Responses(id)
	if value == "" {
		delete(r, key)
		return nil
	}
	r[key] = value
	return nil
}

// ResetSelections clears interests and domains. Called whenever the field
// of study changes, since option ids are only meaningful per field.
func (a *Answers) ResetSelections() {
	a.SelectedInterests = []string{}
	a.SelectedDomains = []string{}
}

// Validate checks the structural invariants of the model.
func (a *Answers) Validate() error {
	if len(a.SelectedDomains) > MaxDomains {
		return fmt.Errorf("%d domains selected, at most %d allowed", len(a.SelectedDomains), MaxDomains)
	}
	if err := unique("interest", a.SelectedInterests); err != nil {
		return err
	}
	if err := unique("domain", a.SelectedDomains); err != nil {
		return err
	}
	for skill, v := range a.SkillRatings {
		if v < MinRating || v > MaxRating {
			return fmt.Errorf("rating %d for %q out of range", v, skill)
		}
	}
	return nil
}

func unique(kind string, set []string) error {
	seen := make(map[string]bool, len(set))
	for _, id := range set {
		if seen[id] {
			return fmt.Errorf("duplicate %s %q", kind, id)
		}
		seen[id] = true
	}
	return nil
}

// Equal reports whether two models hold the same answers.
func (a *Answers) Equal(b *Answers) bool {
	return slices.Equal(a.SelectedInterests, b.SelectedInterests) &&
		slices.Equal(a.SelectedDomains, b.SelectedDomains) &&
		maps.Equal(a.SkillRatings, b.SkillRatings) &&
		maps.Equal(a.Personality, b.Personality) &&
		maps.Equal(a.WorkStyle, b.WorkStyle) &&
		maps.Equal(a.Goals, b.Goals)
}
