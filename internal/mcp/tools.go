package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"

	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/dashboard"
	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/hotline"
	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/resources"
	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/sentiment"
	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/wellness"
)

// ScoreWellnessResult is the score_wellness payload.
type ScoreWellnessResult struct {
	wellness.Result
	Crisis bool `json:"crisis"`
}

// TagSentimentResult is the tag_sentiment payload.
type TagSentimentResult struct {
	Lexicon string `json:"lexicon"`
	sentiment.Analysis
}

// SearchResourcesResult is the search_resources payload.
type SearchResourcesResult struct {
	Query     string               `json:"query"`
	Tab       string               `json:"tab"`
	Count     int                  `json:"count"`
	Resources []resources.Resource `json:"resources"`
}

// CrisisSupportResult is the get_crisis_support payload.
type CrisisSupportResult struct {
	Numbers       []hotline.Number `json:"numbers"`
	Message       string           `json:"message"`
	CrisisPhrases []string         `json:"crisis_phrases"`
}

// crisisSupportMessage accompanies the emergency numbers.
const crisisSupportMessage = "If you're experiencing a mental health emergency, please call our 24/7 hotline or send a message. Our trained professionals are ready to provide immediate assistance."

var (
	noArgsSchema        = json.RawMessage(`{"type":"object","properties":{},"additionalProperties":false}`)
	scoreWellnessSchema = json.RawMessage(`{"type":"object","properties":{` +
		`"name":{"type":"string","description":"Optional name (at least 2 characters)"},` +
		`"age":{"type":"string","description":"Optional age in digits"},` +
		`"feelings":{"type":"string","description":"Free-text description of current feelings (at least 5 characters)"},` +
		`"sleep_quality":{"type":"integer","minimum":1,"maximum":10},` +
		`"stress_level":{"type":"integer","minimum":1,"maximum":10}},` +
		`"required":["feelings","sleep_quality","stress_level"],"additionalProperties":false}`)
	tagSentimentSchema = json.RawMessage(`{"type":"object","properties":{` +
		`"text":{"type":"string"},` +
		`"lexicon":{"type":"string","enum":["conversation","admin"],"description":"Keyword set (default conversation)"}},` +
		`"required":["text"],"additionalProperties":false}`)
	searchResourcesSchema = json.RawMessage(`{"type":"object","properties":{` +
		`"query":{"type":"string","description":"Matches name, location, type or service"},` +
		`"tab":{"type":"string","enum":["all","hospital","ngo","other"]}},` +
		`"additionalProperties":false}`)
	dashboardSchema = json.RawMessage(`{"type":"object","properties":{` +
		`"range":{"type":"string","enum":["day","week","month"]},` +
		`"seed":{"type":"integer","minimum":0,"description":"Fixes the generated values; omitted picks one at random"}},` +
		`"additionalProperties":false}`)
)

// addTools registers the MCP tool handlers on s.
func addTools(s *Server) {
	s.registerTool(toolDef{
		Name:        "score_wellness",
		Description: "Score a wellness check-in (feelings, sleep quality, stress level) and return category and tips.",
		InputSchema: scoreWellnessSchema,
		Handler:     s.handleScoreWellness,
	})
	s.registerTool(toolDef{
		Name:        "tag_sentiment",
		Description: "Tag text as Positive, Negative or Neutral by keyword and flag crisis phrases.",
		InputSchema: tagSentimentSchema,
		Handler:     s.handleTagSentiment,
	})
	s.registerTool(toolDef{
		Name:        "search_resources",
		Description: "Search the directory of mental health service providers.",
		InputSchema: searchResourcesSchema,
		Handler:     s.handleSearchResources,
	})
	s.registerTool(toolDef{
		Name:        "get_dashboard",
		Description: "Synthetic national insight panels for a time range.",
		InputSchema: dashboardSchema,
		Handler:     s.handleGetDashboard,
	})
	s.registerTool(toolDef{
		Name:        "get_crisis_support",
		Description: "Emergency hotline numbers and the phrases that trigger a crisis indicator.",
		InputSchema: noArgsSchema,
		Handler:     s.handleGetCrisisSupport,
	})
}

func decodeArgs(args json.RawMessage, v any) error {
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

func (s *Server) handleScoreWellness(_ context.Context, args json.RawMessage) (any, error) {
	var sub wellness.Submission
	if err := decodeArgs(args, &sub); err != nil {
		return nil, err
	}
	if err := wellness.Validate(sub); err != nil {
		return nil, err
	}
	crisis, _ := sentiment.DetectCrisis(sub.Feelings)
	return ScoreWellnessResult{Result: wellness.Score(sub), Crisis: crisis}, nil
}

func (s *Server) handleTagSentiment(_ context.Context, args json.RawMessage) (any, error) {
	var in struct {
		Text    string `json:"text"`
		Lexicon string `json:"lexicon"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	lex, err := sentiment.LexiconByName(in.Lexicon)
	if err != nil {
		return nil, err
	}
	return TagSentimentResult{
		Lexicon:  lex.Name,
		Analysis: sentiment.NewTagger(lex).Analyze(in.Text),
	}, nil
}

func (s *Server) handleSearchResources(ctx context.Context, args json.RawMessage) (any, error) {
	var in struct {
		Query string `json:"query"`
		Tab   string `json:"tab"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	if in.Tab == "" {
		in.Tab = resources.TabAll
	}
	found, err := s.directory.Tab(ctx, in.Tab, in.Query)
	if err != nil {
		return nil, err
	}
	return SearchResourcesResult{Query: in.Query, Tab: in.Tab, Count: len(found), Resources: found}, nil
}

func (s *Server) handleGetDashboard(ctx context.Context, args json.RawMessage) (any, error) {
	var in struct {
		Range string  `json:"range"`
		Seed  *uint64 `json:"seed"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}
	tr, err := dashboard.ParseTimeRange(in.Range)
	if err != nil {
		return nil, err
	}
	seed := rand.Uint64()
	if in.Seed != nil {
		seed = *in.Seed
	}
	return dashboard.Build(ctx, seed, tr)
}

func (s *Server) handleGetCrisisSupport(_ context.Context, _ json.RawMessage) (any, error) {
	return CrisisSupportResult{
		Numbers:       hotline.Numbers(),
		Message:       crisisSupportMessage,
		CrisisPhrases: append([]string(nil), sentiment.CrisisPhrases...),
	}, nil
}
