// Package sentiment provides the keyword sentiment tagger shared by the
// conversation simulator, the admin analysis tool, and the MCP/HTTP surfaces.
package sentiment

import (
	"fmt"
	"strings"
)

// Method selects how keyword hits are turned into a label.
type Method int

const (
	// MethodCount labels text by comparing positive and negative hit counts.
	MethodCount Method = iota

	// MethodScore starts from a neutral score of 50, moves it by a fixed step
	// per distinct keyword hit, and labels by threshold.
	MethodScore
)

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case MethodCount:
		return "count"
	case MethodScore:
		return "score"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// Lexicon is a named set of keyword lists plus the method used to score them.
type Lexicon struct {
	Name     string
	Positive []string
	Negative []string
	Crisis   []string
	Method   Method
}

// CrisisPhrases are the high-risk phrases that raise a depression indicator.
// Matching is a plain substring test, so "die" also fires on "diet".
var CrisisPhrases = []string{
	"hopeless",
	"worthless",
	"suicide",
	"die",
	"end it all",
	"can't go on",
	"no reason to live",
	"burden",
	"no future",
	"trapped",
	"endless pain",
	"never get better",
	"alone",
	"no point",
	"exhausted constantly",
}

// Conversation is the lexicon used to tag simulated conversation messages.
var Conversation = Lexicon{
	Name:     "conversation",
	Positive: []string{"good", "happy", "better", "joy", "hope", "grateful", "excited", "accomplished"},
	Negative: []string{"bad", "sad", "worse", "hopeless", "tired", "exhausted", "depressed", "anxious"},
	Crisis:   CrisisPhrases,
	Method:   MethodCount,
}

// Admin is the lexicon used by the admin portal's text analysis tool.
var Admin = Lexicon{
	Name:     "admin",
	Positive: []string{"good", "great", "happy", "positive", "better", "improve", "hope"},
	Negative: []string{"bad", "sad", "depressed", "anxious", "worried", "stress", "fear"},
	Crisis:   CrisisPhrases,
	Method:   MethodScore,
}

// LexiconByName resolves a preset lexicon. "simulator" is accepted as an
// alias for the conversation lexicon.
func LexiconByName(name string) (Lexicon, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "conversation", "simulator":
		return Conversation, nil
	case "admin":
		return Admin, nil
	default:
		return Lexicon{}, fmt.Errorf("unknown lexicon %q (want conversation or admin)", name)
	}
}
