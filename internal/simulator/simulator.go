// Package simulator generates a synthetic stream of conversation messages,
// tags each one for sentiment and depression indicators, and raises alerts
// for flagged messages.
package simulator

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/sentiment"
)

// DefaultInterval is the time between generated messages.
const DefaultInterval = 8 * time.Second

var (
	// ErrAlreadyRunning is returned by Start when the simulator is running.
	ErrAlreadyRunning = errors.New("simulation already running")

	// ErrNotRunning is returned by Stop when the simulator is idle.
	ErrNotRunning = errors.New("simulation not running")
)

// State is the simulator lifecycle state.
type State int

const (
	Idle State = iota
	Running
)

// String implements fmt.Stringer.
func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

// Message is one simulated conversation message.
type Message struct {
	ID                  string          `json:"id"`
	Content             string          `json:"content"`
	Timestamp           time.Time       `json:"timestamp"`
	Sentiment           sentiment.Label `json:"sentiment"`
	DepressionIndicator bool            `json:"depression_indicator"`
	CrisisPhrases       []string        `json:"crisis_phrases,omitempty"`
	IsUser              bool            `json:"is_user"`
	Pool                sentiment.Label `json:"pool"`
}

// Options configures a Simulator. Zero values fall back to defaults.
type Options struct {
	Interval     time.Duration
	HistoryLimit int
	Seed         uint64 // 0 seeds from the clock

	// OnMessage is called for every generated message.
	OnMessage func(Message)

	// OnAlert is called once per generated message that carries a
	// depression indicator. Repeated flags are not deduplicated.
	OnAlert func(Alert)

	Now func() time.Time
}

// Simulator is a periodic message generator with an Idle -> Running -> Idle
// lifecycle. It is safe for concurrent use.
type Simulator struct {
	interval  time.Duration
	tagger    *sentiment.Tagger
	now       func() time.Time
	onMessage func(Message)
	onAlert   func(Alert)

	mu      sync.Mutex
	rng     *rand.Rand
	hist    *history
	state   State
	flagged bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// New creates an idle Simulator.
func New(opts Options) *Simulator {
	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Simulator{
		interval:  interval,
		tagger:    sentiment.NewTagger(sentiment.Conversation),
		now:       now,
		onMessage: opts.OnMessage,
		onAlert:   opts.OnAlert,
		rng:       rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		hist:      newHistory(opts.HistoryLimit),
	}
}

// Start clears the message history and begins generating a message every
// interval until Stop is called or ctx is cancelled.
func (s *Simulator) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Running {
		return ErrAlreadyRunning
	}

	s.hist.reset()
	s.flagged = false

	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	s.cancel = cancel
	s.done = done
	s.state = Running

	go s.loop(loopCtx, done)
	return nil
}

// Stop halts the generator and waits for it to exit. History is kept until
// the next Start.
func (s *Simulator) Stop() error {
	s.mu.Lock()
	if s.state != Running {
		s.mu.Unlock()
		return ErrNotRunning
	}
	cancel, done := s.cancel, s.done
	s.state = Idle
	s.cancel = nil
	s.mu.Unlock()

	cancel()
	<-done
	return nil
}

// Run starts the simulator and blocks until ctx is cancelled, then stops it.
// It returns ctx.Err().
func (s *Simulator) Run(ctx context.Context) error {
	if err := s.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	if err := s.Stop(); err != nil && !errors.Is(err, ErrNotRunning) {
		return err
	}
	return ctx.Err()
}

func (s *Simulator) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.mu.Lock()
			if s.done == done {
				s.state = Idle
				s.cancel = nil
			}
			s.mu.Unlock()
			return
		case <-ticker.C:
			s.Tick()
		}
	}
}

// Tick generates one message synchronously, appends it to the history and
// fires the handlers. It works in either state.
func (s *Simulator) Tick() Message {
	s.mu.Lock()
	pool := poolOrder[s.rng.IntN(len(poolOrder))]
	sentences := pools[pool]
	content := sentences[s.rng.IntN(len(sentences))]

	a := s.tagger.Analyze(content)
	m := Message{
		ID:                  newID(),
		Content:             content,
		Timestamp:           s.now(),
		Sentiment:           a.Label,
		DepressionIndicator: a.CrisisIndicator,
		CrisisPhrases:       a.CrisisPhrases,
		Pool:                pool,
	}
	s.hist.add(m)
	if m.DepressionIndicator {
		s.flagged = true
	}
	s.mu.Unlock()

	if s.onMessage != nil {
		s.onMessage(m)
	}
	if m.DepressionIndicator && s.onAlert != nil {
		s.onAlert(depressionAlert(m))
	}
	return m
}

// Messages returns a copy of the history, oldest first.
func (s *Simulator) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hist.snapshot()
}

// State returns the current lifecycle state.
func (s *Simulator) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Flagged reports whether any message since the last Start carried a
// depression indicator.
func (s *Simulator) Flagged() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flagged
}

// Dropped returns how many messages were evicted from the history since the
// last Start.
func (s *Simulator) Dropped() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hist.dropped
}

// HistoryLimit returns the maximum number of retained messages.
func (s *Simulator) HistoryLimit() int {
	return s.hist.capacity()
}

// Interval returns the generation interval.
func (s *Simulator) Interval() time.Duration {
	return s.interval
}

func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
