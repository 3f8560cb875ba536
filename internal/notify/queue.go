// internal/notify/queue.go
package notify

import "go-space-shooter/internal/event"

// Toast: всплывающее сообщение и оставшееся время жизни в кадрах.
type Toast struct {
	Message string
	TTL     int
}

// Queue собирает события LevelComplete в тосты. OnEvent только ставит
// сообщение в очередь, поэтому симуляция никогда не ждёт отображения.
type Queue struct {
	ttl      int
	capacity int
	toasts   []Toast
}

func NewQueue(ttl, capacity int) *Queue {
	if ttl <= 0 || capacity <= 0 {
		panic("notify: ttl and capacity must be positive")
	}
	return &Queue{ttl: ttl, capacity: capacity}
}

// Subscribe подписывает очередь на события, которые показываются тостами.
func (q *Queue) Subscribe(d *event.Dispatcher) {
	d.Subscribe(event.LevelComplete, q)
}

func (q *Queue) OnEvent(e event.Event) {
	if data, ok := e.Data.(event.LevelCompleteData); ok {
		q.Push(data.Message)
	}
}

// Push добавляет тост; при полной очереди самый старый выбрасывается.
func (q *Queue) Push(msg string) {
	if len(q.toasts) == q.capacity {
		q.toasts = q.toasts[1:]
	}
	q.toasts = append(q.toasts, Toast{Message: msg, TTL: q.ttl})
}

// Update отсчитывает один кадр и убирает истёкшие тосты.
func (q *Queue) Update() {
	alive := q.toasts[:0]
	for _, t := range q.toasts {
		t.TTL--
		if t.TTL > 0 {
			alive = append(alive, t)
		}
	}
	q.toasts = alive
}

// Active возвращает видимые тосты, старые первыми.
func (q *Queue) Active() []Toast {
	out := make([]Toast, len(q.toasts))
	copy(out, q.toasts)
	return out
}

func (q *Queue) Len() int { return len(q.toasts) }

// Alpha считает прозрачность тоста: плавное появление и исчезновение за fade кадров.
func (q *Queue) Alpha(t Toast, fade int) uint8 {
	shown := q.ttl - t.TTL
	a := 255
	if fade > 0 {
		if shown < fade {
			a = 255 * (shown + 1) / fade
		}
		if t.TTL < fade {
			a = min(a, 255*t.TTL/fade)
		}
	}
	return uint8(min(max(a, 0), 255))
}
