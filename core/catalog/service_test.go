package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnplaygrow/backend/core/catalog"
	"github.com/learnplaygrow/backend/core/user"
	"github.com/learnplaygrow/backend/storage/database/inmem"
)

func newService() (*catalog.Service, *user.Service) {
	usrSvc := user.NewService(inmemdb.NewUserRepository())
	return catalog.NewService(inmemdb.NewCatalogRepository(), usrSvc), usrSvc
}

func TestService_Leaderboard(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	full, err := svc.Leaderboard(ctx, 0)
	require.NoError(t, err)
	require.Len(t, full, 7)
	assert.Equal(t, 1, full[0].Rank)

	top3, err := svc.Leaderboard(ctx, 3)
	require.NoError(t, err)
	require.Len(t, top3, 3)
	assert.Equal(t, full[:3], top3)

	// a limit beyond the board size returns everything
	all, err := svc.Leaderboard(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, all, 7)
}

func TestService_Dashboard(t *testing.T) {
	svc, usrSvc := newService()
	ctx := context.Background()

	usr, err := usrSvc.Register(ctx, user.NewUser{
		Name: "Alex", Email: "alex@example.com", Password: "secret1", Role: user.RoleStudent,
	})
	require.NoError(t, err)

	dash, err := svc.Dashboard(ctx, usr.ID)
	require.NoError(t, err)

	assert.Equal(t, usr.ID, dash.User.ID)
	assert.Equal(t, "Alex", dash.User.Name)
	assert.Equal(t, user.RoleStudent, dash.User.Role)
	assert.Equal(t, "alex@example.com", dash.User.Email)

	assert.Len(t, dash.Subjects, 5)
	assert.Len(t, dash.Badges, 4)
	assert.Len(t, dash.LeaderboardTop, 5) // top slice, not the full board
	assert.Len(t, dash.Videos, 3)
	assert.Len(t, dash.Events, 2)
	assert.Equal(t, 7, dash.Streak)
	assert.Equal(t, 47, dash.Stars)
	assert.Equal(t, catalog.DailyChallenge{Completed: 2, Total: 3}, dash.DailyChallenge)
}

func TestService_Dashboard_unknownStudent(t *testing.T) {
	svc, _ := newService()

	dash, err := svc.Dashboard(context.Background(), "ghost")
	require.NoError(t, err)

	// no profile to show, but the dashboard still renders
	assert.Equal(t, catalog.DashboardUser{ID: "ghost"}, dash.User)
	assert.Len(t, dash.Subjects, 5)
}

func TestService_StudentProgress(t *testing.T) {
	svc, _ := newService()

	progress, err := svc.StudentProgress(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, progress, 5)

	assert.Equal(t, catalog.Progress{
		SubjectKey: "math", Percent: 75, LessonsCompleted: 15, TotalLessons: 20,
	}, progress[0])
}
