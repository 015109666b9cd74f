package tests

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnplaygrow/backend/core/catalog"
	"github.com/learnplaygrow/backend/core/user"
	testutil "github.com/learnplaygrow/backend/tests"
)

func Test_catalogApi_subjects(t *testing.T) {
	app, _, _ := setup(t)

	var subjects []catalog.Subject
	getData(t, app, "/api/subjects", &subjects)

	require.Len(t, subjects, 5)
	assert.Equal(t, "math", subjects[0].ID)
	assert.Equal(t, 75, subjects[0].Progress)
	assert.Equal(t, "music", subjects[4].ID)
}

func Test_catalogApi_leaderboard(t *testing.T) {
	app, _, _ := setup(t)

	tests := []struct {
		name    string
		path    string
		wantLen int
	}{
		{"full board by default", "/api/leaderboard", 7},
		{"limited", "/api/leaderboard?limit=3", 3},
		{"limit beyond size", "/api/leaderboard?limit=100", 7},
		{"unparseable limit", "/api/leaderboard?limit=lots", 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var entries []catalog.LeaderboardEntry
			getData(t, app, tt.path, &entries)

			require.Len(t, entries, tt.wantLen)
			for i, entry := range entries {
				assert.Equal(t, i+1, entry.Rank)
			}
		})
	}
}

func Test_catalogApi_events(t *testing.T) {
	app, _, _ := setup(t)

	var events []catalog.Event
	getData(t, app, "/api/events", &events)

	require.Len(t, events, 2)
	assert.Equal(t, "contest", events[0].Type)
	assert.Equal(t, "2025-12-24", events[1].Date)
}

func Test_catalogApi_studentRoutes(t *testing.T) {
	app, _, _ := setup(t)

	t.Run("subjects", func(t *testing.T) {
		var subjects []catalog.Subject
		getData(t, app, "/api/students/alex/subjects", &subjects)
		assert.Len(t, subjects, 5)
	})

	t.Run("badges", func(t *testing.T) {
		var badges []catalog.Badge
		getData(t, app, "/api/students/alex/badges", &badges)
		require.Len(t, badges, 4)
		assert.Equal(t, "star", badges[0].Type)
		assert.False(t, badges[3].Earned)
	})

	t.Run("videos", func(t *testing.T) {
		var videos []catalog.Video
		getData(t, app, "/api/students/alex/videos", &videos)
		require.Len(t, videos, 3)
		assert.Equal(t, "Counting Fun", videos[0].Title)
	})

	t.Run("progress", func(t *testing.T) {
		var progress []catalog.Progress
		getData(t, app, "/api/students/alex/progress", &progress)
		require.Len(t, progress, 5)
		assert.Equal(t, "math", progress[0].SubjectKey)
		assert.Equal(t, 75, progress[0].Percent)
		assert.Equal(t, 15, progress[0].LessonsCompleted)
		assert.Equal(t, 20, progress[0].TotalLessons)
	})
}

func Test_catalogApi_studentDashboard(t *testing.T) {
	app, usrRepo, _ := setup(t)
	usr := testutil.CreateUser(t, usrRepo, "Alex", "alex@example.com", "hackme", user.RoleStudent)

	t.Run("registered student", func(t *testing.T) {
		var dash catalog.Dashboard
		getData(t, app, "/api/students/"+usr.ID+"/dashboard", &dash)

		assert.Equal(t, catalog.DashboardUser{ID: usr.ID, Name: "Alex", Role: user.RoleStudent, Email: "alex@example.com"}, dash.User)
		assert.Len(t, dash.Subjects, 5)
		assert.Len(t, dash.Badges, 4)
		assert.Len(t, dash.LeaderboardTop, 5)
		assert.Len(t, dash.Videos, 3)
		assert.Len(t, dash.Events, 2)
		assert.Equal(t, 7, dash.Streak)
		assert.Equal(t, 47, dash.Stars)
		assert.Equal(t, catalog.DailyChallenge{Completed: 2, Total: 3}, dash.DailyChallenge)
	})

	t.Run("unknown student still gets a dashboard", func(t *testing.T) {
		var dash catalog.Dashboard
		getData(t, app, "/api/students/ghost/dashboard", &dash)

		assert.Equal(t, catalog.DashboardUser{ID: "ghost"}, dash.User)
		assert.Len(t, dash.Subjects, 5)
	})
}

func Test_server_routes(t *testing.T) {
	app, _, _ := setup(t)

	t.Run("health", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/health")
		app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	})

	t.Run("unmatched route", func(t *testing.T) {
		tt := httpTest{
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, echo.Map{"error": "Not found"}),
		}
		req, rec := newRequest(http.MethodGet, "/api/nope")
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})
}
