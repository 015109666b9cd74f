package inmemdb

import (
	"context"

	"github.com/learnplaygrow/backend/core/quiz"
)

// Quizzes and their answer keys are authored content shipped with the app.
var (
	fixtureQuizzes = map[string]quiz.Quiz{
		"q1": {
			ID:    "q1",
			Title: "Simple Math Quiz",
			Questions: []quiz.Question{
				{ID: "q1-1", Text: "What is 7 + 5?", Options: []string{"10", "12", "13", "11"}},
				{ID: "q1-2", Text: `Which animal says "Moo"?`, Options: []string{"Dog", "Cat", "Cow", "Sheep"}},
			},
		},
	}

	fixtureAnswerKeys = map[string]map[string]int{
		"q1": {"q1-1": 1, "q1-2": 2},
	}
)

type quizRepository struct{}

var _ quiz.Repository = (*quizRepository)(nil) // interface compliance check

func NewQuizRepository() *quizRepository {
	return &quizRepository{}
}

func (repo quizRepository) GetQuiz(ctx context.Context, id string) (quiz.Quiz, error) {
	q, ok := fixtureQuizzes[id]
	if !ok {
		return quiz.Quiz{}, quiz.ErrNotFound
	}
	return q, nil
}

func (repo quizRepository) GetAnswerKey(ctx context.Context, id string) (map[string]int, error) {
	key, ok := fixtureAnswerKeys[id]
	if !ok {
		return nil, quiz.ErrNotFound
	}
	return key, nil
}
