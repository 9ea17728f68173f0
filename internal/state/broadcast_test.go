package state

import "testing"

func TestBroadcaster_ReplaysLastValue(t *testing.T) {
	b := NewBroadcaster("initial")

	var first []string
	b.Subscribe(func(v string) { first = append(first, v) })
	b.Publish("one")
	b.Publish("two")

	var late []string
	b.Subscribe(func(v string) { late = append(late, v) })
	b.Publish("three")

	if want := []string{"initial", "one", "two", "three"}; !equalStrings(first, want) {
		t.Fatalf("first subscriber got %v, want %v", first, want)
	}
	if want := []string{"two", "three"}; !equalStrings(late, want) {
		t.Fatalf("late subscriber got %v, want %v", late, want)
	}
	if b.Last() != "three" {
		t.Fatalf("Last = %q, want three", b.Last())
	}
}

func TestBroadcaster_DeliversInSubscriptionOrder(t *testing.T) {
	var b Broadcaster[int]
	var order []string
	b.Subscribe(func(int) { order = append(order, "a") })
	sub := b.Subscribe(func(int) { order = append(order, "b") })
	b.Subscribe(func(int) { order = append(order, "c") })

	order = nil
	b.Unsubscribe(sub)
	b.Publish(1)

	if want := []string{"a", "c"}; !equalStrings(order, want) {
		t.Fatalf("delivery order = %v, want %v", order, want)
	}
	if b.Len() != 2 {
		t.Fatalf("Len = %d, want 2", b.Len())
	}
	b.Unsubscribe(sub)
	b.Unsubscribe(12345)
	if b.Len() != 2 {
		t.Fatalf("Len after unknown unsubscribe = %d, want 2", b.Len())
	}
}

func TestBroadcaster_CallbackMayPublishElsewhere(t *testing.T) {
	var upstream Broadcaster[int]
	var downstream Broadcaster[int]

	var seen []int
	downstream.Subscribe(func(v int) { seen = append(seen, v) })
	upstream.Subscribe(func(v int) { downstream.Publish(v * 10) })
	upstream.Publish(2)

	if want := []int{0, 0, 20}; len(seen) != len(want) || seen[2] != 20 {
		t.Fatalf("downstream saw %v, want %v", seen, want)
	}
}

func TestBroadcaster_NilCallbackIgnored(t *testing.T) {
	var b Broadcaster[int]
	if sub := b.Subscribe(nil); sub != 0 {
		t.Fatalf("Subscribe(nil) = %d, want 0", sub)
	}
	if b.Len() != 0 {
		t.Fatalf("Len = %d, want 0", b.Len())
	}
}

func TestBroadcaster_PublishNewerDropsStaleValues(t *testing.T) {
	b := NewBroadcaster(0)
	newer := func(v, last int) bool { return v > last }

	var seen []int
	b.Subscribe(func(v int) { seen = append(seen, v) })

	if !b.PublishNewer(5, newer) {
		t.Fatalf("PublishNewer(5) = false, want true")
	}
	if b.PublishNewer(3, newer) {
		t.Fatalf("PublishNewer(3) after 5 = true, want false")
	}
	if b.PublishNewer(5, newer) {
		t.Fatalf("PublishNewer(5) again = true, want false")
	}
	if b.Last() != 5 {
		t.Fatalf("Last = %d, want 5", b.Last())
	}
	if want := []int{0, 5}; len(seen) != len(want) || seen[0] != want[0] || seen[1] != want[1] {
		t.Fatalf("subscriber saw %v, want %v", seen, want)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
