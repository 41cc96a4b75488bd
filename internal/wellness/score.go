package wellness

import (
	"math"
	"strings"
)

// negativeKeywords lower the feelings score by feelingsStep each.
var negativeKeywords = []string{"stressed", "anxious", "sad", "depressed", "worried", "tired", "exhausted"}

// positiveKeywords raise the feelings score by feelingsStep each.
var positiveKeywords = []string{"happy", "calm", "relaxed", "peaceful", "joyful", "excited", "grateful"}

const (
	feelingsBaseline = 50
	feelingsStep     = 5
)

// Score computes the wellbeing score and tips for a submission. It does not
// validate input; out-of-range ratings only affect the intermediate scores
// and the final score is always clamped to 0-100.
//
// Scoring breakdown:
//   - feelings: 50, -5 per negative keyword present, +5 per positive keyword
//     present (each keyword counted once), clamped to 0-100
//   - sleep:    sleepQuality * 10
//   - stress:   100 - stressLevel * 10
//   - score:    rounded mean of the three
func Score(s Submission) Result {
	feelings := FeelingsScore(s.Feelings)
	sleep := s.SleepQuality * 10
	stress := 100 - s.StressLevel*10

	mean := float64(feelings+sleep+stress) / 3.0
	score := clamp(int(math.Round(mean)), 0, 100)

	return Result{
		Score:         score,
		Category:      CategoryFor(score),
		FeelingsScore: feelings,
		SleepScore:    sleep,
		StressScore:   stress,
		Tips:          defaultTips.Select(s, score),
	}
}

// FeelingsScore scores free text against the fixed keyword sets.
func FeelingsScore(text string) int {
	lower := strings.ToLower(text)
	score := feelingsBaseline
	for _, k := range negativeKeywords {
		if strings.Contains(lower, k) {
			score -= feelingsStep
		}
	}
	for _, k := range positiveKeywords {
		if strings.Contains(lower, k) {
			score += feelingsStep
		}
	}
	return clamp(score, 0, 100)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
