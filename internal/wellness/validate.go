package wellness

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Rating bounds for sleep quality and stress level.
const (
	MinRating = 1
	MaxRating = 10

	MinFeelingsLength = 5
	MinNameLength     = 2
)

// ValidationError lists the fields of a Submission that failed validation.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

// Error implements error. Fields are reported in sorted order.
func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return "invalid submission: " + strings.Join(parts, "; ")
}

// Validate applies the check-in form rules. It returns a *ValidationError
// when any field is invalid and nil otherwise. Score is never called on a
// submission that fails here.
func Validate(s Submission) error {
	fields := make(map[string]string)

	if utf8.RuneCountInString(strings.TrimSpace(s.Feelings)) < MinFeelingsLength {
		fields["feelings"] = "Please share a bit more about how you're feeling"
	}

	if s.SleepQuality < MinRating || s.SleepQuality > MaxRating {
		fields["sleep_quality"] = fmt.Sprintf("Please rate your sleep quality (%d-%d)", MinRating, MaxRating)
	}

	if s.StressLevel < MinRating || s.StressLevel > MaxRating {
		fields["stress_level"] = fmt.Sprintf("Please rate your stress level (%d-%d)", MinRating, MaxRating)
	}

	if s.Name != "" && utf8.RuneCountInString(s.Name) < MinNameLength {
		fields["name"] = "Name must be at least 2 characters"
	}

	if s.Age != "" && !isDigits(s.Age) {
		fields["age"] = "Age must be a number"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}
