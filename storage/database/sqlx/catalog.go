package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/learnplaygrow/backend/core/catalog"
)

// defaultStats is returned for students without a stats row yet.
var defaultStats = catalog.Stats{Streak: 7, Stars: 47, DailyChallengeDone: 2, DailyChallengeTotal: 3}

type catalogRepository struct {
	db *sqlx.DB
}

var _ catalog.Repository = (*catalogRepository)(nil) // interface compliance check

func NewCatalogRepository(db *sqlx.DB) *catalogRepository {
	return &catalogRepository{db: db}
}

type subjectRow struct {
	ID               string `db:"id"`
	Key              string `db:"key"`
	Title            string `db:"title"`
	Progress         int    `db:"progress"`
	LessonsCompleted int    `db:"lessons_completed"`
	TotalLessons     int    `db:"total_lessons"`
}

func (repo catalogRepository) QuerySubjects(ctx context.Context) ([]catalog.Subject, error) {
	const query = `
		SELECT id, key, title, progress, lessons_completed, total_lessons
		FROM subject ORDER BY ordering, id`
	var rows []subjectRow
	if err := repo.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, errors.Wrap(err, "querying subjects")
	}

	subjects := make([]catalog.Subject, 0, len(rows))
	for _, row := range rows {
		subjects = append(subjects, catalog.Subject{
			ID:               row.ID,
			Subject:          row.Key,
			Title:            row.Title,
			Progress:         row.Progress,
			LessonsCompleted: row.LessonsCompleted,
			TotalLessons:     row.TotalLessons,
		})
	}
	return subjects, nil
}

func (repo catalogRepository) QueryBadges(ctx context.Context, studentID string) ([]catalog.Badge, error) {
	const query = `SELECT type, label, count, earned FROM badge ORDER BY type`
	type badgeRow struct {
		Type   string `db:"type"`
		Label  string `db:"label"`
		Count  int    `db:"count"`
		Earned bool   `db:"earned"`
	}
	var rows []badgeRow
	if err := repo.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, errors.Wrap(err, "querying badges")
	}

	badges := make([]catalog.Badge, 0, len(rows))
	for _, row := range rows {
		badges = append(badges, catalog.Badge(row))
	}
	return badges, nil
}

func (repo catalogRepository) QueryVideos(ctx context.Context, studentID string) ([]catalog.Video, error) {
	const query = `SELECT id, title, thumbnail, url FROM video ORDER BY id`
	type videoRow struct {
		ID        string      `db:"id"`
		Title     string      `db:"title"`
		Thumbnail null.String `db:"thumbnail"`
		URL       string      `db:"url"`
	}
	var rows []videoRow
	if err := repo.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, errors.Wrap(err, "querying videos")
	}

	videos := make([]catalog.Video, 0, len(rows))
	for _, row := range rows {
		videos = append(videos, catalog.Video{
			ID:        row.ID,
			Title:     row.Title,
			Thumbnail: row.Thumbnail.String,
			URL:       row.URL,
		})
	}
	return videos, nil
}

func (repo catalogRepository) QueryEvents(ctx context.Context) ([]catalog.Event, error) {
	const query = `
		SELECT id, title, TO_CHAR(date, 'YYYY-MM-DD') AS date, type, details
		FROM event ORDER BY date, id`
	type eventRow struct {
		ID      string      `db:"id"`
		Title   string      `db:"title"`
		Date    string      `db:"date"`
		Type    string      `db:"type"`
		Details null.String `db:"details"`
	}
	var rows []eventRow
	if err := repo.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, errors.Wrap(err, "querying events")
	}

	events := make([]catalog.Event, 0, len(rows))
	for _, row := range rows {
		events = append(events, catalog.Event{
			ID:      row.ID,
			Title:   row.Title,
			Date:    row.Date,
			Type:    row.Type,
			Details: row.Details.String,
		})
	}
	return events, nil
}

func (repo catalogRepository) QueryLeaderboard(ctx context.Context) ([]catalog.LeaderboardEntry, error) {
	const query = `
		SELECT rank, name, avatar, points, streak, is_current_user
		FROM leaderboard ORDER BY rank`
	type leaderboardRow struct {
		Rank          int         `db:"rank"`
		Name          string      `db:"name"`
		Avatar        null.String `db:"avatar"`
		Points        int         `db:"points"`
		Streak        int         `db:"streak"`
		IsCurrentUser bool        `db:"is_current_user"`
	}
	var rows []leaderboardRow
	if err := repo.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, errors.Wrap(err, "querying leaderboard")
	}

	entries := make([]catalog.LeaderboardEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, catalog.LeaderboardEntry{
			Rank:          row.Rank,
			Name:          row.Name,
			Avatar:        row.Avatar.String,
			Points:        row.Points,
			Streak:        row.Streak,
			IsCurrentUser: row.IsCurrentUser,
		})
	}
	return entries, nil
}

// QueryProgress projects the subject table into per-student progress entries.
func (repo catalogRepository) QueryProgress(ctx context.Context, studentID string) ([]catalog.Progress, error) {
	subjects, err := repo.QuerySubjects(ctx)
	if err != nil {
		return nil, err
	}

	progress := make([]catalog.Progress, 0, len(subjects))
	for _, s := range subjects {
		progress = append(progress, catalog.Progress{
			SubjectKey:       s.ID,
			Percent:          s.Progress,
			LessonsCompleted: s.LessonsCompleted,
			TotalLessons:     s.TotalLessons,
		})
	}
	return progress, nil
}

func (repo catalogRepository) GetStudentStats(ctx context.Context, studentID string) (catalog.Stats, error) {
	const query = `
		SELECT streak, stars, daily_challenge_done, daily_challenge_total
		FROM student_stats WHERE student_id = $1`
	type statsRow struct {
		Streak              int `db:"streak"`
		Stars               int `db:"stars"`
		DailyChallengeDone  int `db:"daily_challenge_done"`
		DailyChallengeTotal int `db:"daily_challenge_total"`
	}
	var row statsRow
	if err := repo.db.GetContext(ctx, &row, query, studentID); err != nil {
		if errors.Cause(err) == sql.ErrNoRows {
			return defaultStats, nil
		}
		return catalog.Stats{}, errors.Wrap(err, "querying student stats")
	}
	return catalog.Stats(row), nil
}
