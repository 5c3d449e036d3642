package quiz

import (
	"context"
	"errors"
)

// ErrProfileNotFound is returned by a Backend when the user has no
// onboarding profile yet.
var ErrProfileNotFound = errors.New("onboarding profile not found")

// AnswerOption is one backend-defined answer to a Question.
type AnswerOption struct {
	ID         int     `json:"id"`
	QuestionID int     `json:"question_id"`
	Text       string  `json:"answer_text"`
	Weight     float64 `json:"weight"`
}

// Question is an entry of the backend question catalog.
type Question struct {
	ID       int            `json:"id"`
	Text     string         `json:"question_text"`
	Type     string         `json:"question_type"`
	Category string         `json:"category"`
	Answers  []AnswerOption `json:"answers"`
}

// Pair is one element of a submission.
type Pair struct {
	QuestionID int `json:"question_id"`
	AnswerID   int `json:"answer_id"`
}

// Payload is the body of a quiz submission, one pair per catalog question
// in catalog order.
type Payload struct {
	Answers []Pair `json:"answers"`
}

// SubmissionReceipt is the backend's acknowledgement of a submission.
type SubmissionReceipt struct {
	ID          int    `json:"id"`
	UserID      int    `json:"user_id"`
	SubmittedAt string `json:"submitted_at"`
}

// Profile is the onboarding profile the wizard is seeded from.
type Profile struct {
	EducationLevel    string   `json:"education_level"`
	FieldOfStudy      string   `json:"field_of_study"`
	Institution       string   `json:"institution"`
	GraduationYear    int      `json:"graduation_year"`
	CurrentRole       string   `json:"current_role"`
	YearsOfExperience int      `json:"years_of_experience"`
	TechnicalSkills   []string `json:"technical_skills"`
	SoftSkills        []string `json:"soft_skills"`
	Interests         []string `json:"interests"`
	IsCompleted       bool     `json:"is_completed"`
}

// Field returns the field of study, or "" when the profile is nil or
// onboarding was not completed.
func (p *Profile) Field() string {
	if p == nil || !p.IsCompleted {
		return ""
	}
	return p.FieldOfStudy
}

// Backend is the career-guidance REST backend as seen by the wizard.
type Backend interface {
	// Questions returns the question catalog in backend order.
	Questions(ctx context.Context) ([]Question, error)

	// Profile returns the onboarding profile, or ErrProfileNotFound.
	Profile(ctx context.Context) (*Profile, error)

	// Submit sends the final answers.
	Submit(ctx context.Context, p Payload) (*SubmissionReceipt, error)
}
