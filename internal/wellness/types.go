// Package wellness implements the self-report wellness check-in: form
// validation, the 0-100 wellbeing score, and coping tip selection.
package wellness

// Submission is a single wellness self-report. Name and Age are collected
// but never affect the score.
type Submission struct {
	Name         string `json:"name,omitempty"`
	Age          string `json:"age,omitempty"`
	Feelings     string `json:"feelings"`
	SleepQuality int    `json:"sleep_quality"`
	StressLevel  int    `json:"stress_level"`
}

// Result is the scored outcome of a Submission.
type Result struct {
	Score         int      `json:"score"`
	Category      string   `json:"category"`
	FeelingsScore int      `json:"feelings_score"`
	SleepScore    int      `json:"sleep_score"`
	StressScore   int      `json:"stress_score"`
	Tips          []string `json:"tips"`
}

// Score categories shown alongside the number.
const (
	CategorySupport  = "Could use support"
	CategoryManaging = "Managing"
	CategoryWell     = "Doing well"
)

// Category thresholds.
const (
	SupportThreshold  = 40
	ManagingThreshold = 70
)

// CategoryFor maps a score to its display category.
func CategoryFor(score int) string {
	switch {
	case score < SupportThreshold:
		return CategorySupport
	case score < ManagingThreshold:
		return CategoryManaging
	default:
		return CategoryWell
	}
}
