package quiz

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("quiz not found")

// anonymousUser is recorded on results submitted without a user id.
const anonymousUser = "anonymous"

type (
	// Repository serves quizzes and their answer keys. An answer key maps a
	// question id to the index of the correct option.
	Repository interface {
		GetQuiz(ctx context.Context, id string) (Quiz, error)
		GetAnswerKey(ctx context.Context, id string) (map[string]int, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Get(ctx context.Context, id string) (Quiz, error) {
	return svc.repo.GetQuiz(ctx, id)
}

// Grade scores a submission against the quiz's answer key. Answers for unknown
// question ids simply do not score.
func (svc *Service) Grade(ctx context.Context, id string, sub Submission) (Result, error) {
	key, err := svc.repo.GetAnswerKey(ctx, id)
	if err != nil {
		return Result{}, err
	}

	var correct int
	for _, ans := range sub.Answers {
		if want, ok := key[ans.QuestionID]; ok && want == ans.SelectedIndex {
			correct++
		}
	}

	total := len(key)
	var score int
	if total > 0 {
		score = int(math.Round(float64(correct) / float64(total) * 100))
	}

	userID := sub.UserID
	if userID == "" {
		userID = anonymousUser
	}

	return Result{
		ID:           "res-" + uuid.New().String(),
		QuizID:       id,
		UserID:       userID,
		CorrectCount: correct,
		Total:        total,
		Score:        score,
		CompletedAt:  time.Now().UTC(),
	}, nil
}
