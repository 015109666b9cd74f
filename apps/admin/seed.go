package main

import (
	"github.com/pkg/errors"
)

// Sample catalog content. Seeding replaces whatever is there, so running seed
// twice is safe.
var (
	sampleSubjects = []struct {
		id, key, title                               string
		progress, lessonsCompleted, totalLessons, ordering int
	}{
		{"math", "math", "Math", 75, 15, 20, 1},
		{"english", "english", "English", 60, 12, 20, 2},
		{"science", "science", "Science", 40, 8, 20, 3},
		{"art", "art", "Art", 90, 18, 20, 4},
		{"music", "music", "Music", 25, 5, 20, 5},
	}

	sampleBadges = []struct {
		typ, label string
		count      int
		earned     bool
	}{
		{"star", "Stars", 47, true},
		{"trophy", "Quizzes Won", 12, true},
		{"medal", "Perfect Score", 5, true},
		{"crown", "Top Learner", 0, false},
	}

	sampleLeaderboard = []struct {
		rank           int
		name, avatar   string
		points, streak int
		isCurrentUser  bool
	}{
		{1, "Emma Watson", "👸", 2450, 15, false},
		{2, "Noah Smith", "🧑‍🎓", 2280, 12, false},
		{3, "Olivia Brown", "👧", 2150, 10, false},
		{4, "Alex (You)", "🦸", 1890, 7, true},
		{5, "Liam Johnson", "👦", 1750, 8, false},
		{6, "Sophia Davis", "👩‍🦱", 1620, 5, false},
		{7, "Mason Wilson", "🧒", 1480, 6, false},
	}

	sampleVideos = []struct {
		id, title, thumbnail, url string
	}{
		{"v1", "Counting Fun", "https://images.unsplash.com/photo-1596495578065-6e0763fa1178?w=400&h=225&fit=crop", "https://example.com/video/1"},
		{"v2", "Animals Around Us", "https://images.unsplash.com/photo-1509228468518-180dd4864904?w=400&h=225&fit=crop", "https://example.com/video/2"},
		{"v3", "Science Basics", "https://images.unsplash.com/photo-1456513080510-7bf3a84b82f8?w=400&h=225&fit=crop", "https://example.com/video/3"},
	}

	sampleEvents = []struct {
		id, title, date, typ, details string
	}{
		{"e1", "Math Contest", "2025-12-20", "contest", "Inter-class math contest"},
		{"e2", "Holiday Break", "2025-12-24", "holiday", "School closed"},
	}
)

// seed replaces the catalog tables' contents with the sample data.
func (cli *commandLine) seed() error {
	tx, err := cli.db.Beginx()
	if err != nil {
		return errors.Wrap(err, "beginning seed transaction")
	}
	defer tx.Rollback() // no-op on commit

	for _, table := range []string{"subject", "badge", "video", "event", "leaderboard"} {
		if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
			return errors.Wrapf(err, "clearing %s", table)
		}
	}

	for _, s := range sampleSubjects {
		if _, err := tx.Exec(
			`INSERT INTO subject (id, key, title, progress, lessons_completed, total_lessons, ordering)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			s.id, s.key, s.title, s.progress, s.lessonsCompleted, s.totalLessons, s.ordering,
		); err != nil {
			return errors.Wrapf(err, "seeding subject %s", s.id)
		}
	}
	for _, b := range sampleBadges {
		if _, err := tx.Exec(
			`INSERT INTO badge (type, label, count, earned) VALUES ($1, $2, $3, $4)`,
			b.typ, b.label, b.count, b.earned,
		); err != nil {
			return errors.Wrapf(err, "seeding badge %s", b.typ)
		}
	}
	for _, l := range sampleLeaderboard {
		if _, err := tx.Exec(
			`INSERT INTO leaderboard (rank, name, avatar, points, streak, is_current_user)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			l.rank, l.name, l.avatar, l.points, l.streak, l.isCurrentUser,
		); err != nil {
			return errors.Wrapf(err, "seeding leaderboard rank %d", l.rank)
		}
	}
	for _, v := range sampleVideos {
		if _, err := tx.Exec(
			`INSERT INTO video (id, title, thumbnail, url) VALUES ($1, $2, $3, $4)`,
			v.id, v.title, v.thumbnail, v.url,
		); err != nil {
			return errors.Wrapf(err, "seeding video %s", v.id)
		}
	}
	for _, e := range sampleEvents {
		if _, err := tx.Exec(
			`INSERT INTO event (id, title, date, type, details) VALUES ($1, $2, $3, $4, $5)`,
			e.id, e.title, e.date, e.typ, e.details,
		); err != nil {
			return errors.Wrapf(err, "seeding event %s", e.id)
		}
	}

	return errors.Wrap(tx.Commit(), "committing seed transaction")
}
