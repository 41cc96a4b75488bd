// Package hotline holds the emergency contact numbers and the simulated
// support call.
package hotline

import (
	"context"
	"fmt"
	"time"
)

// DefaultCallDuration is how long a simulated call lasts before it ends on
// its own.
const DefaultCallDuration = 15 * time.Second

// Messages shown around a simulated call.
const (
	ConnectingMessage = "Connecting to mental health professional..."
	EndedMessage      = "Call ended. Help is always available when you need it."
	HungUpMessage     = "Call ended"
	TextSentMessage   = "Message sent! A counselor will respond shortly."
)

// Number is one way to reach help.
type Number struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Kind    string `json:"kind"`
}

// Numbers lists the emergency contacts.
func Numbers() []Number {
	return []Number{
		{Name: "Zambia Mental Health Helpline", Contact: "116", Kind: "call"},
		{Name: "Crisis Text Line", Contact: `Text "HELP" to 5011`, Kind: "text"},
	}
}

// CallResult describes how a simulated call finished.
type CallResult struct {
	Elapsed   int  `json:"elapsed_seconds"`
	Completed bool `json:"completed"`
}

// Message returns the closing notice for the call.
func (r CallResult) Message() string {
	if r.Completed {
		return EndedMessage
	}
	return HungUpMessage
}

// Call runs a simulated call, invoking onTick with the elapsed whole seconds
// once per second. It ends after duration, or early when ctx is done.
// A non-positive duration uses DefaultCallDuration.
func Call(ctx context.Context, duration time.Duration, onTick func(elapsed int)) CallResult {
	return call(ctx, duration, time.Second, onTick)
}

func call(ctx context.Context, duration, tick time.Duration, onTick func(int)) CallResult {
	if duration <= 0 {
		duration = DefaultCallDuration
	}

	ticker := time.NewTicker(tick)
	defer ticker.Stop()
	end := time.NewTimer(duration)
	defer end.Stop()

	elapsed := 0
	for {
		select {
		case <-ticker.C:
			elapsed++
			if onTick != nil {
				onTick(elapsed)
			}
		case <-end.C:
			return CallResult{Elapsed: elapsed, Completed: true}
		case <-ctx.Done():
			return CallResult{Elapsed: elapsed}
		}
	}
}

// FormatElapsed renders seconds as m:ss.
func FormatElapsed(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
