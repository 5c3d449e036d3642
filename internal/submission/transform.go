// Package submission turns wizard answers into the flat question/answer
// payload the backend scores.
package submission

import (
	"github.com/careercompass/compass/internal/assessment"
	"github.com/careercompass/compass/internal/quiz"
)

// FallbackAnswerID is submitted for a question that has no answer options.
const FallbackAnswerID = 1

// Transformer builds a submission payload. Implementations must be total
// (exactly one pair per question, in catalog order) and deterministic.
type Transformer interface {
	Transform(questions []quiz.Question, answers *assessment.Answers) (quiz.Payload, error)
}

// FirstOption submits the first answer option of every question.
//
// The wizard's answers are not consulted: the backend has not published
// how interests, ratings and single-choice answers map onto its question
// ids, so this keeps the reference behavior until that contract exists.
type FirstOption struct{}

var _ Transformer = FirstOption{}

func (FirstOption) Transform(questions []quiz.Question, _ *assessment.Answers) (quiz.Payload, error) {
	pairs := make([]quiz.Pair, 0, len(questions))
	for _, q := range questions {
		answerID := FallbackAnswerID
		if len(q.Answers) > 0 {
			answerID = q.Answers[0].ID
		}
		pairs = append(pairs, quiz.Pair{QuestionID: q.ID, AnswerID: answerID})
	}
	return quiz.Payload{Answers: pairs}, nil
}
