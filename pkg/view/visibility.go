package view

import (
	"sync"

	"github.com/vivek888gaya/portfolio/internal/utils"
)

// VisibleThreshold is the intersection ratio at which a section counts as
// visible.
const VisibleThreshold = 0.1

// IntersectionEvent reports how much of a section currently overlaps the
// viewport.
type IntersectionEvent struct {
	SectionID string
	Ratio     float64
}

// Observer is the capability that produces intersection events for a set of
// section ids. Observe may be called once per observer; the returned stream
// stays open until Disconnect, which closes it. A test double can feed
// synthetic events without a real viewport.
type Observer interface {
	Observe(ids []string) (<-chan IntersectionEvent, error)
	Disconnect()
}

// Tracker consumes an observer's event stream and maintains the
// section→visible map. A tracker is not restartable: create a fresh one if
// the observed sections change. Close must be called when the owning page
// view goes away so the observation resource is released.
type Tracker struct {
	obs     Observer
	watched map[string]bool

	mu      sync.RWMutex
	visible map[string]bool

	closeOnce sync.Once
	done      chan struct{}
}

// NewTracker starts observing the given section ids. The visibility map
// starts empty; entries appear only once an event for that section arrives,
// and are updated in place afterwards (last event wins).
func NewTracker(obs Observer, ids []string) (*Tracker, error) {
	events, err := obs.Observe(ids)
	if err != nil {
		return nil, err
	}

	t := &Tracker{
		obs:     obs,
		watched: make(map[string]bool, len(ids)),
		visible: make(map[string]bool, len(ids)),
		done:    make(chan struct{}),
	}
	for _, id := range ids {
		t.watched[id] = true
	}

	go t.consume(events)
	return t, nil
}

func (t *Tracker) consume(events <-chan IntersectionEvent) {
	defer close(t.done)
	for ev := range events {
		if !t.watched[ev.SectionID] {
			utils.Log.Debugf("visibility: dropping event for unobserved section %q", ev.SectionID)
			continue
		}
		t.mu.Lock()
		t.visible[ev.SectionID] = ev.Ratio >= VisibleThreshold
		t.mu.Unlock()
	}
}

// Visible reports whether a section is currently visible. The second return
// is false if no event has ever been delivered for the section.
func (t *Tracker) Visible(id string) (visible, known bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	visible, known = t.visible[id]
	return visible, known
}

// Snapshot returns a copy of the visibility map.
func (t *Tracker) Snapshot() map[string]bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make(map[string]bool, len(t.visible))
	for k, v := range t.visible {
		out[k] = v
	}
	return out
}

// Close disconnects the observer and waits for the event stream to drain.
// Safe to call more than once.
func (t *Tracker) Close() {
	t.closeOnce.Do(func() {
		t.obs.Disconnect()
		<-t.done
	})
}

// ChannelObserver is an in-process Observer fed by Publish calls. The web
// layer uses one per page view, pushing the intersection reports posted by
// the browser; tests use it to feed synthetic events.
type ChannelObserver struct {
	mu       sync.Mutex
	ch       chan IntersectionEvent
	observed map[string]bool
	closed   bool
}

func NewChannelObserver() *ChannelObserver {
	return &ChannelObserver{
		ch:       make(chan IntersectionEvent, 64),
		observed: make(map[string]bool),
	}
}

func (o *ChannelObserver) Observe(ids []string) (<-chan IntersectionEvent, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, id := range ids {
		o.observed[id] = true
	}
	return o.ch, nil
}

// Publish feeds one event into the stream. Events for sections that were
// never observed, or arriving after Disconnect, are dropped. If the consumer
// lags far behind, the oldest buffered event makes room for the newest one,
// keeping last-event-wins semantics without blocking the caller.
func (o *ChannelObserver) Publish(id string, ratio float64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed || !o.observed[id] {
		return
	}
	ev := IntersectionEvent{SectionID: id, Ratio: ratio}
	select {
	case o.ch <- ev:
		return
	default:
	}

	utils.Log.Debug("visibility: event buffer full, dropping oldest event")
	select {
	case <-o.ch:
	default:
	}
	select {
	case o.ch <- ev:
	default:
	}
}

// Disconnect closes the stream. Safe to call more than once.
func (o *ChannelObserver) Disconnect() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.closed {
		o.closed = true
		close(o.ch)
	}
}
