package model

import "time"

// TaskStats хранит количество задач мероприятия, всего и по статусам.
type TaskStats struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
}

// BudgetStats хранит суммы запланированного и фактического бюджета.
type BudgetStats struct {
	Planned float64 `json:"planned"`
	Actual  float64 `json:"actual"`
}

// FeedbackStats хранит количество отзывов и среднюю оценку.
type FeedbackStats struct {
	Count     int     `json:"count"`
	AvgRating float64 `json:"avg_rating"`
}

// Dashboard описывает агрегированные показатели мероприятия для главной страницы.
type Dashboard struct {
	EventID     string        `json:"event_id"`
	Departments int           `json:"departments"`
	Members     int           `json:"members"`
	Tasks       TaskStats     `json:"tasks"`
	Budget      BudgetStats   `json:"budget"`
	Risks       int           `json:"risks"`
	Milestones  int           `json:"milestones"`
	Feedback    FeedbackStats `json:"feedback"`
	GeneratedAt time.Time     `json:"generated_at"`
}
