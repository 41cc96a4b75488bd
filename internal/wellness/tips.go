package wellness

import "strings"

// TipRule examines a submission and its final score and returns zero or more
// tips to append.
type TipRule func(s Submission, score int) []string

// TipEngine runs its rules in order and concatenates their output. Rule order
// is the display order.
type TipEngine struct {
	rules []TipRule
}

// NewTipEngine creates a TipEngine with the built-in rules registered.
func NewTipEngine() *TipEngine {
	return &TipEngine{
		rules: []TipRule{
			ScoreBandTips,
			SleepHygieneTip,
			RelaxationTip,
		},
	}
}

// Select returns the tips for a submission. The result is never nil.
func (e *TipEngine) Select(s Submission, score int) []string {
	tips := []string{}
	for _, rule := range e.rules {
		tips = append(tips, rule(s, score)...)
	}
	return tips
}

var defaultTips = NewTipEngine()

// Tip text.
const (
	TipProfessional  = "Consider talking to a mental health professional about how you're feeling."
	TipBreathing     = "Take small breaks throughout your day to practice deep breathing."
	TipTrustedPerson = "Connect with a trusted friend or family member for support."

	TipSleepSchedule = "Try to establish a consistent sleep schedule, aiming for 7-8 hours each night."
	TipWalk          = "Take a 10-minute walk outdoors to boost your mood."
	TipMindfulness   = "Practice mindfulness through a guided meditation."

	TipKeepHabits     = "Continue with your positive habits that support your wellbeing."
	TipShare          = "Share your coping strategies with others who might benefit."
	TipEnjoyableTime  = "Set aside time each day to engage in activities you enjoy."
	TipScreens        = "Avoid screens an hour before bedtime to improve sleep quality."
	TipMuscleRelaxing = "Practice progressive muscle relaxation when feeling overwhelmed."
)

// ScoreBandTips returns three tips chosen by score band.
func ScoreBandTips(_ Submission, score int) []string {
	switch {
	case score < SupportThreshold:
		return []string{TipProfessional, TipBreathing, TipTrustedPerson}
	case score < ManagingThreshold:
		return []string{TipSleepSchedule, TipWalk, TipMindfulness}
	default:
		return []string{TipKeepHabits, TipShare, TipEnjoyableTime}
	}
}

// SleepHygieneTip fires when the text mentions sleep or sleep quality is
// rated below 5.
func SleepHygieneTip(s Submission, _ int) []string {
	if strings.Contains(strings.ToLower(s.Feelings), "sleep") || s.SleepQuality < 5 {
		return []string{TipScreens}
	}
	return nil
}

// RelaxationTip fires when the text mentions stress or stress is rated
// above 5. It is emitted at most once.
func RelaxationTip(s Submission, _ int) []string {
	if strings.Contains(strings.ToLower(s.Feelings), "stress") || s.StressLevel > 5 {
		return []string{TipMuscleRelaxing}
	}
	return nil
}
