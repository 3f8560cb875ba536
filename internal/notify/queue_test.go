package notify

import (
	"testing"

	"go-space-shooter/internal/event"
)

func TestQueue_LevelCompleteBecomesToast(t *testing.T) {
	d := event.NewDispatcher()
	q := NewQueue(3, 4)
	q.Subscribe(d)

	d.Dispatch(event.Event{
		Type: event.LevelComplete,
		Data: event.LevelCompleteData{Level: 1, Coins: 100, Message: "Level 1 complete! +100 coins"},
	})
	d.Dispatch(event.Event{Type: event.EnemyDestroyed})

	toasts := q.Active()
	if len(toasts) != 1 || toasts[0].Message != "Level 1 complete! +100 coins" || toasts[0].TTL != 3 {
		t.Fatalf("Unexpected toasts %+v", toasts)
	}
}

func TestQueue_Expires(t *testing.T) {
	q := NewQueue(3, 4)
	q.Push("a")
	q.Update()
	q.Push("b")
	q.Update()
	if q.Len() != 2 {
		t.Fatalf("Expected 2 toasts, got %d", q.Len())
	}
	q.Update() // a истекает
	if toasts := q.Active(); len(toasts) != 1 || toasts[0].Message != "b" {
		t.Errorf("Expected only b to remain, got %+v", toasts)
	}
	q.Update()
	if q.Len() != 0 {
		t.Errorf("Expected queue to be empty, got %d", q.Len())
	}
}

func TestQueue_DropsOldestWhenFull(t *testing.T) {
	q := NewQueue(10, 2)
	q.Push("a")
	q.Push("b")
	q.Push("c")
	toasts := q.Active()
	if len(toasts) != 2 || toasts[0].Message != "b" || toasts[1].Message != "c" {
		t.Errorf("Expected [b c], got %+v", toasts)
	}
}

func TestQueue_IgnoresForeignPayload(t *testing.T) {
	q := NewQueue(10, 2)
	q.OnEvent(event.Event{Type: event.LevelComplete, Data: "oops"})
	if q.Len() != 0 {
		t.Error("Expected payloads of the wrong type to be ignored")
	}
}

func TestQueue_Alpha(t *testing.T) {
	q := NewQueue(100, 1)
	tests := []struct {
		ttl  int
		want uint8
	}{
		{100, 25}, // первый кадр появления
		{50, 255}, // середина
		{5, 127},  // затухание
		{0, 0},
	}
	for _, tc := range tests {
		if got := q.Alpha(Toast{TTL: tc.ttl}, 10); got != tc.want {
			t.Errorf("Alpha(ttl=%d) = %d, want %d", tc.ttl, got, tc.want)
		}
	}
	if got := q.Alpha(Toast{TTL: 1}, 0); got != 255 {
		t.Errorf("Expected no fading with fade=0, got %d", got)
	}
}

func TestNewQueue_InvalidPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for zero ttl")
		}
	}()
	NewQueue(0, 1)
}
