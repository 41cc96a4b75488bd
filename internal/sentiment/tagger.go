package sentiment

import (
	"sort"
	"strings"
)

// Label is a coarse sentiment classification.
type Label string

const (
	Positive Label = "positive"
	Negative Label = "negative"
	Neutral  Label = "neutral"
)

// Title returns the capitalized display form of the label.
func (l Label) Title() string {
	switch l {
	case Positive:
		return "Positive"
	case Negative:
		return "Negative"
	default:
		return "Neutral"
	}
}

const (
	baseScore         = 50
	keywordStep       = 5
	positiveThreshold = 60
	negativeThreshold = 40
)

// Analysis is the result of tagging a block of text.
type Analysis struct {
	Label           Label    `json:"label"`
	Score           int      `json:"score"`
	PositiveCount   int      `json:"positive_count"`
	NegativeCount   int      `json:"negative_count"`
	Keywords        []string `json:"keywords"`
	CrisisIndicator bool     `json:"crisis_indicator"`
	CrisisPhrases   []string `json:"crisis_phrases"`
}

// Tagger labels text using a fixed lexicon. The zero value is not usable;
// construct with NewTagger.
type Tagger struct {
	lex Lexicon
}

// NewTagger returns a Tagger for the given lexicon. Keyword lists are
// lower-cased once up front.
func NewTagger(lex Lexicon) *Tagger {
	return &Tagger{lex: Lexicon{
		Name:     lex.Name,
		Positive: lowerAll(lex.Positive),
		Negative: lowerAll(lex.Negative),
		Crisis:   lowerAll(lex.Crisis),
		Method:   lex.Method,
	}}
}

// Analyze tags text. Matching is case-insensitive substring search; each
// keyword counts at most once no matter how often it appears.
func (t *Tagger) Analyze(text string) Analysis {
	lower := strings.ToLower(text)

	pos := findKeywords(lower, t.lex.Positive)
	neg := findKeywords(lower, t.lex.Negative)

	a := Analysis{
		PositiveCount: len(pos),
		NegativeCount: len(neg),
		Keywords:      orderByFirstOccurrence(lower, append(pos, neg...)),
		CrisisPhrases: findKeywords(lower, t.lex.Crisis),
	}
	a.CrisisIndicator = len(a.CrisisPhrases) > 0

	score := baseScore + keywordStep*a.PositiveCount - keywordStep*a.NegativeCount
	a.Score = clamp(score, 0, 100)

	switch t.lex.Method {
	case MethodScore:
		switch {
		case a.Score > positiveThreshold:
			a.Label = Positive
		case a.Score < negativeThreshold:
			a.Label = Negative
		default:
			a.Label = Neutral
		}
	default:
		switch {
		case a.PositiveCount > a.NegativeCount:
			a.Label = Positive
		case a.NegativeCount > a.PositiveCount:
			a.Label = Negative
		default:
			a.Label = Neutral
		}
	}

	return a
}

// DetectCrisis reports whether text contains any of the crisis phrases and
// which ones matched.
func DetectCrisis(text string) (bool, []string) {
	found := findKeywords(strings.ToLower(text), CrisisPhrases)
	return len(found) > 0, found
}

// findKeywords returns the keywords contained in lower, in list order.
// The result is never nil.
func findKeywords(lower string, keywords []string) []string {
	found := []string{}
	for _, k := range keywords {
		if k != "" && strings.Contains(lower, k) {
			found = append(found, k)
		}
	}
	return found
}

// orderByFirstOccurrence sorts keywords by where they first appear in text,
// keeping list order for ties.
func orderByFirstOccurrence(lower string, keywords []string) []string {
	out := make([]string, 0, len(keywords))
	seen := make(map[string]bool, len(keywords))
	for _, k := range keywords {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.Index(lower, out[i]) < strings.Index(lower, out[j])
	})
	return out
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
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
