package quotes

import (
	"context"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	q := All()
	require.Len(t, q, 8)
	assert.Equal(t, "Zambian Proverb", q[0].Author)
	assert.Equal(t, "You are not alone in this journey.", q[7].Text)

	q[0].Text = "changed"
	assert.NotEqual(t, "changed", First().Text)
}

func TestPick(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	for i := 0; i < 50; i++ {
		assert.Contains(t, all, Pick(rng))
	}
	assert.Contains(t, all, Pick(nil))
}

func TestQuoteString(t *testing.T) {
	q := Quote{"Be kind.", "Someone"}
	assert.Equal(t, `"Be kind." - Someone`, q.String())
}

func TestRotator_Run(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	var got []Quote
	done := make(chan error, 1)
	go func() {
		done <- Rotator{Interval: 5 * time.Millisecond, Rand: rand.New(rand.NewPCG(2, 2))}.Run(ctx, func(q Quote) {
			mu.Lock()
			got = append(got, q)
			mu.Unlock()
		})
	}()

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) >= 3
	}, 2*time.Second, 5*time.Millisecond)
	cancel()

	assert.ErrorIs(t, <-done, context.Canceled)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, First(), got[0])
}
