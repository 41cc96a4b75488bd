package dashboard

import (
	"context"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"
)

// Banner is the headline alert shown above the panels.
const Banner = "Significant increase in anxiety-related terms in the Southern Province."

// Snapshot holds every dashboard panel for one time range.
type Snapshot struct {
	Range     TimeRange        `json:"range"`
	Seed      uint64           `json:"seed"`
	Banner    string           `json:"banner"`
	Sentiment []SentimentPoint `json:"sentiment"`
	Emotions  []Emotion        `json:"emotions"`
	Keywords  []Keyword        `json:"keywords"`
	Regions   []Region         `json:"regions"`
}

// Panel stream identifiers, mixed into the seed so panels draw from
// independent sequences.
const (
	streamSentiment uint64 = iota + 1
	streamKeywords
)

// Build assembles all panels concurrently. The same seed and range always
// produce the same snapshot.
func Build(ctx context.Context, seed uint64, tr TimeRange) (Snapshot, error) {
	snap := Snapshot{Range: tr, Seed: seed, Banner: Banner}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		snap.Sentiment = SentimentSeries(rand.New(rand.NewPCG(seed, streamSentiment)), tr)
		return nil
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		snap.Keywords = KeywordCloud(rand.New(rand.NewPCG(seed, streamKeywords)), tr)
		return nil
	})
	g.Go(func() error {
		snap.Emotions = EmotionDistribution(tr)
		return nil
	})
	g.Go(func() error {
		snap.Regions = RegionalMap()
		return nil
	})

	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}
