// Package dashboard builds the synthetic national insight panels: sentiment
// trend, emotion mix, trending keywords and the regional overview.
package dashboard

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
)

// TimeRange selects the window a panel covers.
type TimeRange string

// Supported time ranges.
const (
	Day   TimeRange = "day"
	Week  TimeRange = "week"
	Month TimeRange = "month"
)

// ParseTimeRange accepts day, week or month (case-insensitive). The empty
// string maps to Week.
func ParseTimeRange(s string) (TimeRange, error) {
	switch TimeRange(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return Week, nil
	case Day:
		return Day, nil
	case Week:
		return Week, nil
	case Month:
		return Month, nil
	}
	return "", fmt.Errorf("unknown time range %q (want day, week or month)", s)
}

// Points returns how many samples the sentiment series holds.
func (tr TimeRange) Points() int {
	switch tr {
	case Day:
		return 24
	case Month:
		return 30
	default:
		return 7
	}
}

// Label is the human heading for the range.
func (tr TimeRange) Label() string {
	switch tr {
	case Day:
		return "24 Hours"
	case Month:
		return "30 Days"
	default:
		return "7 Days"
	}
}

var weekdays = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// SentimentPoint is one sample of the sentiment trend, in percent.
type SentimentPoint struct {
	Name     string `json:"name"`
	Positive int    `json:"positive"`
	Negative int    `json:"negative"`
	Neutral  int    `json:"neutral"`
}

// SentimentSeries generates the trend for tr. Positive lies in [30,55),
// negative in [15,40) and neutral takes the remainder of 100.
func SentimentSeries(rng *rand.Rand, tr TimeRange) []SentimentPoint {
	n := tr.Points()
	out := make([]SentimentPoint, n)
	for i := range out {
		pos := 30 + rng.IntN(25)
		neg := 15 + rng.IntN(25)
		out[i] = SentimentPoint{
			Name:     pointName(tr, i),
			Positive: pos,
			Negative: neg,
			Neutral:  100 - pos - neg,
		}
	}
	return out
}

func pointName(tr TimeRange, i int) string {
	switch tr {
	case Day:
		return fmt.Sprintf("%d:00", i)
	case Month:
		return fmt.Sprintf("Day %d", i+1)
	default:
		return weekdays[i%len(weekdays)]
	}
}

// Emotion is one slice of the emotion distribution.
type Emotion struct {
	Name    string `json:"name"`
	Value   int    `json:"value"`
	Percent int    `json:"percent"`
	Color   string `json:"color"`
}

var baseEmotions = []Emotion{
	{Name: "Anxiety", Value: 30, Color: "#9333ea"},
	{Name: "Sadness", Value: 25, Color: "#3b82f6"},
	{Name: "Anger", Value: 15, Color: "#ef4444"},
	{Name: "Fear", Value: 12, Color: "#f97316"},
	{Name: "Joy", Value: 10, Color: "#22c55e"},
	{Name: "Hope", Value: 8, Color: "#eab308"},
}

// EmotionDistribution scales the base emotion counts for tr. Percent is each
// value's rounded share of the total.
func EmotionDistribution(tr TimeRange) []Emotion {
	mult := 1.2
	switch tr {
	case Day:
		mult = 1
	case Month:
		mult = 1.5
	}

	out := make([]Emotion, len(baseEmotions))
	total := 0
	for i, e := range baseEmotions {
		e.Value = int(math.Floor(float64(e.Value) * mult))
		total += e.Value
		out[i] = e
	}
	for i := range out {
		out[i].Percent = int(math.Round(float64(out[i].Value) * 100 / float64(total)))
	}
	return out
}

// Keyword is one entry of the trending keyword cloud.
type Keyword struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

var baseKeywords = []Keyword{
	{"Anxiety", 300, "#9333ea"},
	{"Depression", 280, "#3b82f6"},
	{"Stress", 250, "#ef4444"},
	{"School", 220, "#f97316"},
	{"Work", 200, "#22c55e"},
	{"Money", 190, "#eab308"},
	{"Family", 180, "#3b82f6"},
	{"COVID", 170, "#ef4444"},
	{"Unemployment", 160, "#f97316"},
	{"Sleep", 150, "#22c55e"},
	{"Therapy", 140, "#9333ea"},
	{"Relationships", 130, "#3b82f6"},
	{"Support", 120, "#f97316"},
	{"Self-care", 110, "#22c55e"},
	{"Overwhelm", 100, "#ef4444"},
	{"Hope", 90, "#eab308"},
	{"Medication", 80, "#9333ea"},
	{"Coping", 70, "#3b82f6"},
	{"Isolation", 60, "#f97316"},
}

// KeywordCloud scales each base keyword by the range multiplier and a
// jitter in [0.8,1.2).
func KeywordCloud(rng *rand.Rand, tr TimeRange) []Keyword {
	mult := 1.0
	switch tr {
	case Day:
		mult = 0.7
	case Month:
		mult = 1.5
	}

	out := make([]Keyword, len(baseKeywords))
	for i, k := range baseKeywords {
		jitter := 0.8 + rng.Float64()*0.4
		k.Value = int(math.Floor(float64(k.Value) * mult * jitter))
		out[i] = k
	}
	return out
}
