package catalog

import (
	"context"

	"github.com/pkg/errors"

	"github.com/learnplaygrow/backend/core/user"
)

// leaderboardTopSize is the number of entries shown on the dashboard.
const leaderboardTopSize = 5

type (
	Repository interface {
		QuerySubjects(ctx context.Context) ([]Subject, error)
		QueryBadges(ctx context.Context, studentID string) ([]Badge, error)
		QueryVideos(ctx context.Context, studentID string) ([]Video, error)
		QueryEvents(ctx context.Context) ([]Event, error)
		QueryLeaderboard(ctx context.Context) ([]LeaderboardEntry, error)
		QueryProgress(ctx context.Context, studentID string) ([]Progress, error)
		GetStudentStats(ctx context.Context, studentID string) (Stats, error)
	}

	Service struct {
		repo   Repository
		usrSvc *user.Service
	}
)

func NewService(repo Repository, usrSvc *user.Service) *Service {
	return &Service{repo: repo, usrSvc: usrSvc}
}

func (svc *Service) Subjects(ctx context.Context) ([]Subject, error) {
	return svc.repo.QuerySubjects(ctx)
}

func (svc *Service) StudentSubjects(ctx context.Context, studentID string) ([]Subject, error) {
	// every student currently sees the shared subject list; the id is kept in
	// the signature for when per-student curricula land.
	return svc.repo.QuerySubjects(ctx)
}

func (svc *Service) StudentBadges(ctx context.Context, studentID string) ([]Badge, error) {
	return svc.repo.QueryBadges(ctx, studentID)
}

func (svc *Service) StudentVideos(ctx context.Context, studentID string) ([]Video, error) {
	return svc.repo.QueryVideos(ctx, studentID)
}

func (svc *Service) Events(ctx context.Context) ([]Event, error) {
	return svc.repo.QueryEvents(ctx)
}

// Leaderboard returns the top `limit` entries; limit <= 0 returns the full board.
func (svc *Service) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	entries, err := svc.repo.QueryLeaderboard(ctx)
	if err != nil {
		return nil, err
	}
	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	return entries, nil
}

func (svc *Service) StudentProgress(ctx context.Context, studentID string) ([]Progress, error) {
	return svc.repo.QueryProgress(ctx, studentID)
}

// Dashboard assembles the student dashboard from the catalog and the user's
// profile. An unknown student id still yields a dashboard; the user block then
// only carries the id.
func (svc *Service) Dashboard(ctx context.Context, studentID string) (Dashboard, error) {
	dash := Dashboard{User: DashboardUser{ID: studentID}}

	if usr, err := svc.usrSvc.GetByID(ctx, studentID); err == nil {
		dash.User = DashboardUser{ID: usr.ID, Name: usr.Name, Role: usr.Role, Email: usr.Email}
	} else if errors.Cause(err) != user.ErrNotFound {
		return Dashboard{}, errors.Wrap(err, "resolving dashboard user")
	}

	var err error
	if dash.Subjects, err = svc.repo.QuerySubjects(ctx); err != nil {
		return Dashboard{}, errors.Wrap(err, "querying subjects")
	}
	if dash.Badges, err = svc.repo.QueryBadges(ctx, studentID); err != nil {
		return Dashboard{}, errors.Wrap(err, "querying badges")
	}
	if dash.Videos, err = svc.repo.QueryVideos(ctx, studentID); err != nil {
		return Dashboard{}, errors.Wrap(err, "querying videos")
	}
	if dash.Events, err = svc.repo.QueryEvents(ctx); err != nil {
		return Dashboard{}, errors.Wrap(err, "querying events")
	}
	if dash.LeaderboardTop, err = svc.Leaderboard(ctx, leaderboardTopSize); err != nil {
		return Dashboard{}, errors.Wrap(err, "querying leaderboard")
	}

	stats, err := svc.repo.GetStudentStats(ctx, studentID)
	if err != nil {
		return Dashboard{}, errors.Wrap(err, "querying student stats")
	}
	dash.Streak = stats.Streak
	dash.Stars = stats.Stars
	dash.DailyChallenge = DailyChallenge{Completed: stats.DailyChallengeDone, Total: stats.DailyChallengeTotal}

	return dash, nil
}
