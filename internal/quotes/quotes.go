// Package quotes supplies the rotating motivational quotes shown alongside
// every screen.
package quotes

import (
	"context"
	"math/rand/v2"
	"time"
)

// DefaultInterval is how often the Rotator changes quote.
const DefaultInterval = 20 * time.Second

// Quote is a short motivational line and its attribution.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// String renders the quote with its author.
func (q Quote) String() string {
	return "\"" + q.Text + "\" - " + q.Author
}

var all = []Quote{
	{"Mental health is not a destination, but a journey.", "Zambian Proverb"},
	{"Every day may not be good, but there is good in every day.", "Unknown"},
	{"You don't have to be positive all the time. It's perfectly okay to feel sad, angry or scared.", "Lori Deschene"},
	{"Recovery is not one and done. It is a lifelong journey that takes place one day, one step at a time.", "Unknown"},
	{"The strongest people are those who win battles we know nothing about.", "Unknown"},
	{"Self-care is how you take your power back.", "Lalah Delia"},
	{"There is hope, even when your brain tells you there isn't.", "John Green"},
	{"You are not alone in this journey.", "Zambia Mind"},
}

// All returns every quote in a fresh slice.
func All() []Quote {
	return append([]Quote(nil), all...)
}

// First is the quote shown before the first rotation.
func First() Quote { return all[0] }

// Pick returns a random quote. A nil rng uses the global source.
func Pick(rng *rand.Rand) Quote {
	if rng == nil {
		return all[rand.IntN(len(all))]
	}
	return all[rng.IntN(len(all))]
}

// Rotator emits a new random quote every interval.
type Rotator struct {
	Interval time.Duration
	Rand     *rand.Rand
}

// Run calls emit with First immediately and then with a random quote on
// every tick until ctx is done. It returns ctx.Err().
func (r Rotator) Run(ctx context.Context, emit func(Quote)) error {
	interval := r.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	emit(First())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			emit(Pick(r.Rand))
		}
	}
}
