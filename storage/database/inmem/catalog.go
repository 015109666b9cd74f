package inmemdb

import (
	"context"

	"github.com/learnplaygrow/backend/core/catalog"
)

// Fixture data mirroring the seeded catalog; used in dev mode and tests.
var (
	fixtureSubjects = []catalog.Subject{
		{ID: "math", Subject: "math", Title: "Math", Progress: 75, LessonsCompleted: 15, TotalLessons: 20},
		{ID: "english", Subject: "english", Title: "English", Progress: 60, LessonsCompleted: 12, TotalLessons: 20},
		{ID: "science", Subject: "science", Title: "Science", Progress: 40, LessonsCompleted: 8, TotalLessons: 20},
		{ID: "art", Subject: "art", Title: "Art", Progress: 90, LessonsCompleted: 18, TotalLessons: 20},
		{ID: "music", Subject: "music", Title: "Music", Progress: 25, LessonsCompleted: 5, TotalLessons: 20},
	}

	fixtureBadges = []catalog.Badge{
		{Type: "star", Label: "Stars", Count: 47, Earned: true},
		{Type: "trophy", Label: "Quizzes Won", Count: 12, Earned: true},
		{Type: "medal", Label: "Perfect Score", Count: 5, Earned: true},
		{Type: "crown", Label: "Top Learner", Earned: false},
	}

	fixtureLeaderboard = []catalog.LeaderboardEntry{
		{Rank: 1, Name: "Emma Watson", Avatar: "👸", Points: 2450, Streak: 15},
		{Rank: 2, Name: "Noah Smith", Avatar: "🧑‍🎓", Points: 2280, Streak: 12},
		{Rank: 3, Name: "Olivia Brown", Avatar: "👧", Points: 2150, Streak: 10},
		{Rank: 4, Name: "Alex (You)", Avatar: "🦸", Points: 1890, Streak: 7, IsCurrentUser: true},
		{Rank: 5, Name: "Liam Johnson", Avatar: "👦", Points: 1750, Streak: 8},
		{Rank: 6, Name: "Sophia Davis", Avatar: "👩‍🦱", Points: 1620, Streak: 5},
		{Rank: 7, Name: "Mason Wilson", Avatar: "🧒", Points: 1480, Streak: 6},
	}

	fixtureVideos = []catalog.Video{
		{ID: "v1", Title: "Counting Fun", Thumbnail: "https://images.unsplash.com/photo-1596495578065-6e0763fa1178?w=400&h=225&fit=crop", URL: "https://example.com/video/1"},
		{ID: "v2", Title: "Animals Around Us", Thumbnail: "https://images.unsplash.com/photo-1509228468518-180dd4864904?w=400&h=225&fit=crop", URL: "https://example.com/video/2"},
		{ID: "v3", Title: "Science Basics", Thumbnail: "https://images.unsplash.com/photo-1456513080510-7bf3a84b82f8?w=400&h=225&fit=crop", URL: "https://example.com/video/3"},
	}

	fixtureEvents = []catalog.Event{
		{ID: "e1", Title: "Math Contest", Date: "2025-12-20", Type: "contest", Details: "Inter-class math contest"},
		{ID: "e2", Title: "Holiday Break", Date: "2025-12-24", Type: "holiday", Details: "School closed"},
	}

	fixtureStats = catalog.Stats{Streak: 7, Stars: 47, DailyChallengeDone: 2, DailyChallengeTotal: 3}
)

type catalogRepository struct{}

var _ catalog.Repository = (*catalogRepository)(nil) // interface compliance check

func NewCatalogRepository() *catalogRepository {
	return &catalogRepository{}
}

func (repo catalogRepository) QuerySubjects(ctx context.Context) ([]catalog.Subject, error) {
	return append([]catalog.Subject(nil), fixtureSubjects...), nil
}

func (repo catalogRepository) QueryBadges(ctx context.Context, studentID string) ([]catalog.Badge, error) {
	return append([]catalog.Badge(nil), fixtureBadges...), nil
}

func (repo catalogRepository) QueryVideos(ctx context.Context, studentID string) ([]catalog.Video, error) {
	return append([]catalog.Video(nil), fixtureVideos...), nil
}

func (repo catalogRepository) QueryEvents(ctx context.Context) ([]catalog.Event, error) {
	return append([]catalog.Event(nil), fixtureEvents...), nil
}

func (repo catalogRepository) QueryLeaderboard(ctx context.Context) ([]catalog.LeaderboardEntry, error) {
	return append([]catalog.LeaderboardEntry(nil), fixtureLeaderboard...), nil
}

func (repo catalogRepository) QueryProgress(ctx context.Context, studentID string) ([]catalog.Progress, error) {
	progress := make([]catalog.Progress, 0, len(fixtureSubjects))
	for _, s := range fixtureSubjects {
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
	return fixtureStats, nil
}
