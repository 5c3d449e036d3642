package assessment

import (
	"fmt"
	"slices"

	"github.com/careercompass/compass/internal/catalog"
)

// SectionID is the stable key of a wizard section.
type SectionID string

const (
	SectionBackground  SectionID = "background"
	SectionInterests   SectionID = "interests"
	SectionSkills      SectionID = "skills"
	SectionPersonality SectionID = "personality"
	SectionWorkStyle   SectionID = "workstyle"
	SectionGoals       SectionID = "goals"
)

// Section is one page of the assessment.
type Section struct {
	ID    SectionID
	Title string
	Icon  string
}

var allSections = []Section{
	{ID: SectionBackground, Title: "Academic Background", Icon: "📘"},
	{ID: SectionInterests, Title: "Interest Mapping", Icon: "♥"},
	{ID: SectionSkills, Title: "Skill Assessment", Icon: "🔧"},
	{ID: SectionPersonality, Title: "Personality Traits", Icon: "🧠"},
	{ID: SectionWorkStyle, Title: "Work Preferences", Icon: "🧠"},
	{ID: SectionGoals, Title: "Career Goals", Icon: "🎯"},
}

// AllSections returns every section in canonical order.
func AllSections() []Section {
	return slices.Clone(allSections)
}

// responseGroup maps single-choice sections to their catalog question group.
func responseGroup(id SectionID) (string, bool) {
	switch id {
	case SectionPersonality:
		return catalog.GroupPersonality, true
	case SectionWorkStyle:
		return catalog.GroupWorkStyle, true
	case SectionGoals:
		return catalog.GroupGoals, true
	default:
		return "", false
	}
}

// Sequence is the ordered list of sections a deployment presents.
// It is never empty.
type Sequence []Section

// DefaultSequence returns all six sections.
func DefaultSequence() Sequence {
	return Sequence(AllSections())
}

// ParseSequence builds a Sequence from section ids. The ids must be known,
// unique, and listed in canonical order. An empty list yields the default.
func ParseSequence(ids []string) (Sequence, error) {
	if len(ids) == 0 {
		return DefaultSequence(), nil
	}
	seq := make(Sequence, 0, len(ids))
	last := -1
	for _, raw := range ids {
		pos := slices.IndexFunc(allSections, func(s Section) bool { return string(s.ID) == raw })
		if pos < 0 {
			return nil, fmt.Errorf("unknown section %q", raw)
		}
		if pos == last {
			return nil, fmt.Errorf("duplicate section %q", raw)
		}
		if pos < last {
			return nil, fmt.Errorf("section %q is out of order", raw)
		}
		last = pos
		seq = append(seq, allSections[pos])
	}
	return seq, nil
}

// Len returns the number of sections.
func (s Sequence) Len() int { return len(s) }

// At returns the section at index i. i must be in range.
func (s Sequence) At(i int) Section { return s[i] }

// Valid reports whether i is a valid index.
func (s Sequence) Valid(i int) bool { return i >= 0 && i < len(s) }

// Last returns the index of the terminal section.
func (s Sequence) Last() int { return len(s) - 1 }

// IndexOf returns the position of id, or -1.
func (s Sequence) IndexOf(id SectionID) int {
	return slices.IndexFunc(s, func(sec Section) bool { return sec.ID == id })
}

// IDs returns the section ids in order.
func (s Sequence) IDs() []string {
	out := make([]string, len(s))
	for i, sec := range s {
		out[i] = string(sec.ID)
	}
	return out
}
