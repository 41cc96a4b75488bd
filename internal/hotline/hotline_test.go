package hotline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatElapsed(t *testing.T) {
	tests := map[int]string{
		0:   "0:00",
		9:   "0:09",
		15:  "0:15",
		60:  "1:00",
		61:  "1:01",
		754: "12:34",
		-3:  "0:00",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatElapsed(in), "seconds=%d", in)
	}
}

func TestNumbers(t *testing.T) {
	n := Numbers()
	assert.Len(t, n, 2)
	assert.Equal(t, "116", n[0].Contact)
	assert.Equal(t, `Text "HELP" to 5011`, n[1].Contact)
}

func TestCall_CompletesAfterDuration(t *testing.T) {
	var ticks []int
	res := call(context.Background(), 55*time.Millisecond, 10*time.Millisecond, func(s int) {
		ticks = append(ticks, s)
	})

	assert.True(t, res.Completed)
	assert.Equal(t, EndedMessage, res.Message())
	assert.GreaterOrEqual(t, res.Elapsed, 3)
	assert.Equal(t, res.Elapsed, len(ticks))
	for i, s := range ticks {
		assert.Equal(t, i+1, s)
	}
}

func TestCall_HangUp(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := call(ctx, time.Hour, time.Hour, nil)
	assert.False(t, res.Completed)
	assert.Equal(t, 0, res.Elapsed)
	assert.Equal(t, HungUpMessage, res.Message())
}
