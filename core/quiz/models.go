package quiz

import "time"

type Question struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

// Quiz is the student-facing quiz payload; the answer key never leaves the server.
type Quiz struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

type Answer struct {
	QuestionID    string `json:"questionId"`
	SelectedIndex int    `json:"selectedIndex"`
}

type Submission struct {
	UserID  string   `json:"userId"`
	Answers []Answer `json:"answers"`
}

type Result struct {
	ID           string    `json:"id"`
	QuizID       string    `json:"quizId"`
	UserID       string    `json:"userId"`
	CorrectCount int       `json:"correctCount"`
	Total        int       `json:"total"`
	Score        int       `json:"score"`
	CompletedAt  time.Time `json:"completedAt"` // UTC
}
