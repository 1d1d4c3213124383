package events

import (
	"testing"
	"time"
)

func TestPublishReachesAllSubscribers(t *testing.T) {
	b := NewBus()
	ch1, cancel1 := b.Subscribe()
	ch2, cancel2 := b.Subscribe()
	defer cancel1()
	defer cancel2()

	b.Publish(Event{Kind: KindQuestion, Op: OpCreated, ID: "q1", Title: "hello"})

	for _, ch := range []<-chan Event{ch1, ch2} {
		select {
		case ev := <-ch:
			if ev.Kind != KindQuestion || ev.Op != OpCreated || ev.ID != "q1" {
				t.Fatalf("unexpected event: %+v", ev)
			}
			if ev.OccurredAt.IsZero() {
				t.Fatalf("OccurredAt not stamped")
			}
		case <-time.After(time.Second):
			t.Fatalf("subscriber did not receive event")
		}
	}
}

func TestCancelClosesChannelAndUnsubscribes(t *testing.T) {
	b := NewBus()
	ch, cancel := b.Subscribe()
	if b.Len() != 1 {
		t.Fatalf("Len = %d, want 1", b.Len())
	}

	cancel()
	cancel() // idempotent

	if b.Len() != 0 {
		t.Fatalf("Len after cancel = %d, want 0", b.Len())
	}
	if _, open := <-ch; open {
		t.Fatalf("channel should be closed after cancel")
	}

	// Publishing after cancel must not panic.
	b.Publish(Event{Kind: KindAnswer, Op: OpDeleted, ID: "a1"})
}

func TestSlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	b := NewBus()
	_, cancel := b.Subscribe()
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < subBuffer*3; i++ {
			b.Publish(Event{Kind: KindUser, Op: OpCreated, ID: "u"})
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Publish blocked on a slow subscriber")
	}
}
