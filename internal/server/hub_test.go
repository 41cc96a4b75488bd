package server

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	mu     sync.Mutex
	got    []any
	fail   bool
	closed bool

	// When block is set, WriteJSON signals started and waits for block to
	// be closed.
	block   chan struct{}
	started chan struct{}
	once    sync.Once
}

func newBlockingSender() *fakeSender {
	return &fakeSender{block: make(chan struct{}), started: make(chan struct{})}
}

func (f *fakeSender) WriteJSON(v any) error {
	if f.block != nil {
		f.once.Do(func() { close(f.started) })
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("write failed")
	}
	f.got = append(f.got, v)
	return nil
}

func (f *fakeSender) SetWriteDeadline(time.Time) error { return nil }

func (f *fakeSender) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeSender) received() []any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]any(nil), f.got...)
}

func (f *fakeSender) isClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

func waitStarted(t *testing.T, f *fakeSender) {
	t.Helper()
	select {
	case <-f.started:
	case <-time.After(2 * time.Second):
		t.Fatal("write never started")
	}
}

func TestHub_BroadcastAndBacklog(t *testing.T) {
	h := NewHub()
	a := &fakeSender{}
	b := &fakeSender{}

	idA := h.Register(a, func() []any { return []any{"old-1", "old-2"} })
	idB := h.Register(b, nil)
	defer h.Unregister(idB)

	assert.Equal(t, 2, h.Broadcast("new"))
	require.Eventually(t, func() bool { return len(a.received()) == 3 }, 2*time.Second, time.Millisecond)
	assert.Equal(t, []any{"old-1", "old-2", "new"}, a.received())
	require.Eventually(t, func() bool { return len(b.received()) == 1 }, 2*time.Second, time.Millisecond)
	assert.Equal(t, []any{"new"}, b.received())

	h.Unregister(idA)
	assert.Equal(t, 1, h.Broadcast("later"))
	assert.Len(t, a.received(), 3)
	assert.False(t, a.isClosed(), "the handler owns a cleanly unregistered connection")
}

func TestHub_FailedWriteDropsClient(t *testing.T) {
	h := NewHub()
	bad := &fakeSender{fail: true}
	id := h.Register(bad, func() []any { return []any{"x"} })

	require.Eventually(t, func() bool { return h.Len() == 0 }, 2*time.Second, time.Millisecond)
	assert.True(t, bad.isClosed())
	assert.Equal(t, 0, h.Broadcast("y"))

	h.Unregister(id)
	h.Unregister(id)
}

func TestHub_SlowClientDoesNotBlockBroadcast(t *testing.T) {
	h := newHub(2, time.Second)
	slow := newBlockingSender()
	slowID := h.Register(slow, nil)

	h.Broadcast(0)
	waitStarted(t, slow)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 1; i <= 10; i++ {
			h.Broadcast(i)
		}
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Broadcast blocked behind a stalled client")
	}

	assert.Equal(t, 0, h.Len(), "the stalled client is dropped once its queue fills")
	assert.Equal(t, 0, h.Broadcast(11))

	close(slow.block)
	require.Eventually(t, slow.isClosed, 2*time.Second, time.Millisecond)
	h.Unregister(slowID)
}

func TestHub_UnregisterWaitsForInFlightWrite(t *testing.T) {
	h := NewHub()
	f := newBlockingSender()
	id := h.Register(f, nil)

	h.Broadcast("event")
	waitStarted(t, f)

	returned := make(chan struct{})
	go func() {
		h.Unregister(id)
		close(returned)
	}()

	select {
	case <-returned:
		t.Fatal("Unregister returned while a write was still in flight")
	case <-time.After(50 * time.Millisecond):
	}

	close(f.block)
	select {
	case <-returned:
	case <-time.After(2 * time.Second):
		t.Fatal("Unregister did not return after the write finished")
	}
	assert.Equal(t, 0, h.Len())
}

func TestSimulatorStopWithStalledStreamClient(t *testing.T) {
	s := newTestServer(t)
	f := newBlockingSender()
	id := s.Hub().Register(f, nil)
	defer func() {
		close(f.block)
		s.Hub().Unregister(id)
	}()

	require.NoError(t, s.Simulator().Start(context.Background()))
	waitStarted(t, f)

	stopped := make(chan error, 1)
	go func() { stopped <- s.Simulator().Stop() }()

	select {
	case err := <-stopped:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Stop blocked behind a stalled stream client")
	}
}

func TestSimulatorEventsReachHub(t *testing.T) {
	s := newTestServer(t)
	f := &fakeSender{}
	id := s.Hub().Register(f, nil)
	defer s.Hub().Unregister(id)

	s.Simulator().Tick()

	require.Eventually(t, func() bool { return len(f.received()) > 0 }, 2*time.Second, time.Millisecond)
	ev, ok := f.received()[0].(Event)
	require.True(t, ok)
	assert.Equal(t, "message", ev.Type)
	assert.NotNil(t, ev.Message)
}
