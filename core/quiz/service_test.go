package quiz_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnplaygrow/backend/core/quiz"
	"github.com/learnplaygrow/backend/storage/database/inmem"
)

func TestService_Get(t *testing.T) {
	svc := quiz.NewService(inmemdb.NewQuizRepository())
	ctx := context.Background()

	q, err := svc.Get(ctx, "q1")
	require.NoError(t, err)
	assert.Equal(t, "q1", q.ID)
	assert.Equal(t, "Simple Math Quiz", q.Title)
	assert.Len(t, q.Questions, 2)

	_, err = svc.Get(ctx, "nope")
	assert.Equal(t, quiz.ErrNotFound, err)
}

func TestService_Grade(t *testing.T) {
	svc := quiz.NewService(inmemdb.NewQuizRepository())
	ctx := context.Background()

	tests := []struct {
		name        string
		sub         quiz.Submission
		wantCorrect int
		wantScore   int
		wantUserID  string
	}{
		{
			name: "all correct",
			sub: quiz.Submission{UserID: "u1", Answers: []quiz.Answer{
				{QuestionID: "q1-1", SelectedIndex: 1},
				{QuestionID: "q1-2", SelectedIndex: 2},
			}},
			wantCorrect: 2, wantScore: 100, wantUserID: "u1",
		},
		{
			name: "half correct",
			sub: quiz.Submission{UserID: "u1", Answers: []quiz.Answer{
				{QuestionID: "q1-1", SelectedIndex: 1},
				{QuestionID: "q1-2", SelectedIndex: 0},
			}},
			wantCorrect: 1, wantScore: 50, wantUserID: "u1",
		},
		{
			name:        "no answers",
			sub:         quiz.Submission{UserID: "u1"},
			wantCorrect: 0, wantScore: 0, wantUserID: "u1",
		},
		{
			name: "unknown question ids do not score",
			sub: quiz.Submission{UserID: "u1", Answers: []quiz.Answer{
				{QuestionID: "bogus", SelectedIndex: 1},
				{QuestionID: "q1-2", SelectedIndex: 2},
			}},
			wantCorrect: 1, wantScore: 50, wantUserID: "u1",
		},
		{
			name: "anonymous submission",
			sub: quiz.Submission{Answers: []quiz.Answer{
				{QuestionID: "q1-1", SelectedIndex: 1},
			}},
			wantCorrect: 1, wantScore: 50, wantUserID: "anonymous",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Grade(ctx, "q1", tt.sub)
			require.NoError(t, err)

			assert.Equal(t, "q1", res.QuizID)
			assert.Equal(t, tt.wantUserID, res.UserID)
			assert.Equal(t, tt.wantCorrect, res.CorrectCount)
			assert.Equal(t, 2, res.Total)
			assert.Equal(t, tt.wantScore, res.Score)
			assert.True(t, strings.HasPrefix(res.ID, "res-"))
			assert.False(t, res.CompletedAt.IsZero())
		})
	}

	_, err := svc.Grade(ctx, "nope", quiz.Submission{})
	assert.Equal(t, quiz.ErrNotFound, err)
}
