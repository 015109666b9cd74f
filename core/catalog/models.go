package catalog

type Subject struct {
	ID               string `json:"id"`
	Subject          string `json:"subject"`
	Title            string `json:"title"`
	Progress         int    `json:"progress"`
	LessonsCompleted int    `json:"lessonsCompleted"`
	TotalLessons     int    `json:"totalLessons"`
}

type Badge struct {
	Type   string `json:"type"`
	Label  string `json:"label"`
	Count  int    `json:"count,omitempty"`
	Earned bool   `json:"earned"`
}

type LeaderboardEntry struct {
	Rank          int    `json:"rank"`
	Name          string `json:"name"`
	Avatar        string `json:"avatar"`
	Points        int    `json:"points"`
	Streak        int    `json:"streak"`
	IsCurrentUser bool   `json:"isCurrentUser,omitempty"`
}

type Video struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
	URL       string `json:"url"`
}

type Event struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Date    string `json:"date"` // YYYY-MM-DD
	Type    string `json:"type"`
	Details string `json:"details"`
}

type Progress struct {
	SubjectKey       string `json:"subjectKey"`
	Percent          int    `json:"percent"`
	LessonsCompleted int    `json:"lessonsCompleted"`
	TotalLessons     int    `json:"totalLessons"`
}

// Stats holds a student's gamification counters shown on the dashboard.
type Stats struct {
	Streak              int `json:"streak"`
	Stars               int `json:"stars"`
	DailyChallengeDone  int `json:"-"`
	DailyChallengeTotal int `json:"-"`
}

type DailyChallenge struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

type DashboardUser struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role,omitempty"`
	Email string `json:"email,omitempty"`
}

// Dashboard is the aggregated student-dashboard payload.
type Dashboard struct {
	User           DashboardUser      `json:"user"`
	Subjects       []Subject          `json:"subjects"`
	Badges         []Badge            `json:"badges"`
	LeaderboardTop []LeaderboardEntry `json:"leaderboardTop"`
	Videos         []Video            `json:"videos"`
	Events         []Event            `json:"events"`
	Streak         int                `json:"streak"`
	Stars          int                `json:"stars"`
	DailyChallenge DailyChallenge     `json:"dailyChallenge"`
}
