package assessment

import (
	"fmt"

	"github.com/careercompass/compass/internal/catalog"
)

// Minimum answer counts per section.
const (
	MinSkillRatings       = 4
	MinPersonalityAnswers = 3
	MinWorkStyleAnswers   = 3
	MinGoalAnswers        = 2
)

// Verdict is the result of checking whether the wizard may move forward
// from a section. A rejected verdict carries a user-facing Reason. Warning
// is informational and never blocks.
type Verdict struct {
	OK      bool
	Reason  string
	Warning string
}

func allow() Verdict               { return Verdict{OK: true} }
func reject(reason string) Verdict { return Verdict{Reason: reason} }

// ValidationContext carries read-only data some rules consult.
type ValidationContext struct {
	FieldOfStudy string
}

type rule func(a *Answers, ctx ValidationContext) Verdict

var rules = map[SectionID]rule{
	SectionBackground:  checkBackground,
	SectionInterests:   checkInterests,
	SectionSkills:      checkSkills,
	SectionPersonality: minResponses(SectionPersonality, MinPersonalityAnswers, "personality"),
	SectionWorkStyle:   minResponses(SectionWorkStyle, MinWorkStyleAnswers, "work preference"),
	SectionGoals:       minResponses(SectionGoals, MinGoalAnswers, "goal"),
}

// CanAdvance evaluates the forward-navigation rule for section. It is only
// consulted when moving forward; going back or jumping never validates.
func CanAdvance(section SectionID, a *Answers, ctx ValidationContext) Verdict {
	r, ok := rules[section]
	if !ok {
		return allow()
	}
	return r(a, ctx)
}

func checkBackground(_ *Answers, ctx ValidationContext) Verdict {
	v := allow()
	if ctx.FieldOfStudy == "" {
		v.Warning = "Your field of study is not specified. Complete onboarding for tailored questions."
	}
	return v
}

func checkInterests(a *Answers, _ ValidationContext) Verdict {
	if len(a.SelectedInterests) == 0 {
		return reject("Please select at least one interest")
	}
	if len(a.SelectedDomains) == 0 {
		return reject("Please select at least one domain")
	}
	return allow()
}

func checkSkills(a *Answers, _ ValidationContext) Verdict {
	if len(a.SkillRatings) < MinSkillRatings {
		return reject(fmt.Sprintf("Please rate at least %d skills", MinSkillRatings))
	}
	return allow()
}

func minResponses(section SectionID, n int, noun string) rule {
	return func(a *Answers, _ ValidationContext) Verdict {
		if AnsweredCount(section, a) < n {
			return reject(fmt.Sprintf("Please answer at least %d %s questions", n, noun))
		}
		return allow()
	}
}

// AnsweredCount returns how many of a single-choice section's fixed
// questions hold a non-empty answer. Keys outside the fixed set are ignored.
func AnsweredCount(section SectionID, a *Answers) int {
	group, ok := responseGroup(section)
	if !ok {
		return 0
	}
	r, _ := a.Responses(section)
	n := 0
	for _, key := range catalog.QuestionKeys(group) {
		if r[key] != "" {
			n++
		}
	}
	return n
}
