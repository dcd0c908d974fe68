package view

import (
	"testing"
	"time"
)

// waitFor polls until cond holds or the deadline passes. The tracker consumes
// events on its own goroutine, so assertions have to wait for delivery.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func TestTrackerAppliesThreshold(t *testing.T) {
	obs := NewChannelObserver()
	tr, err := NewTracker(obs, []string{"projects", "about"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer tr.Close()

	obs.Publish("projects", 0.5)
	waitFor(t, func() bool {
		v, known := tr.Visible("projects")
		return known && v
	})

	obs.Publish("projects", 0.05)
	waitFor(t, func() bool {
		v, known := tr.Visible("projects")
		return known && !v
	})

	// Exactly at the threshold counts as visible.
	obs.Publish("projects", 0.1)
	waitFor(t, func() bool {
		v, _ := tr.Visible("projects")
		return v
	})
}

func TestTrackerNeverInventsEntries(t *testing.T) {
	obs := NewChannelObserver()
	tr, err := NewTracker(obs, []string{"about", "contact"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer tr.Close()

	obs.Publish("about", 0.9)
	waitFor(t, func() bool {
		_, known := tr.Visible("about")
		return known
	})

	if _, known := tr.Visible("contact"); known {
		t.Fatal("expected no entry for a section with no events yet")
	}
	snap := tr.Snapshot()
	if len(snap) != 1 {
		t.Fatalf("expected 1 entry in snapshot, got %d", len(snap))
	}
}

func TestTrackerIgnoresUnobservedSections(t *testing.T) {
	obs := NewChannelObserver()
	tr, err := NewTracker(obs, []string{"about"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer tr.Close()

	obs.Publish("bogus", 0.9)
	obs.Publish("about", 0.9)
	waitFor(t, func() bool {
		_, known := tr.Visible("about")
		return known
	})

	if _, known := tr.Visible("bogus"); known {
		t.Fatal("expected events for unobserved sections to be dropped")
	}
}

func TestObserverKeepsNewestEventUnderBackpressure(t *testing.T) {
	obs := NewChannelObserver()
	events, err := obs.Observe([]string{"about"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Fill the buffer with no consumer running, then publish one more: the
	// oldest buffered event has to make room for the newest.
	for i := 0; i < 64; i++ {
		obs.Publish("about", 0.9)
	}
	obs.Publish("about", 0.05)
	obs.Disconnect()

	var last IntersectionEvent
	count := 0
	for ev := range events {
		last = ev
		count++
	}
	if count != 64 {
		t.Fatalf("expected a full buffer of 64 events, got %d", count)
	}
	if last.Ratio != 0.05 {
		t.Fatalf("expected the newest event to survive, got ratio %v", last.Ratio)
	}
}

func TestTrackerCloseReleasesStream(t *testing.T) {
	obs := NewChannelObserver()
	tr, err := NewTracker(obs, []string{"about"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tr.Close()
	tr.Close() // safe to call twice

	// Publishing after disconnect must not panic and must not change state.
	obs.Publish("about", 0.9)
	if _, known := tr.Visible("about"); known {
		t.Fatal("expected no updates after Close")
	}
}
