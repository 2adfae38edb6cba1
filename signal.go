package gotable

// Signal is a typed publish/subscribe channel. Delivery is synchronous, in
// registration order. The latest emitted value is replayed on Subscribe, so
// a consumer attaching after the first emit is never stale.
//
// Signals are not safe for concurrent use. The package assumes a single
// goroutine drives mutations and delivery, matching a UI event loop.
type Signal[T any] struct {
	subs    []subscription[T]
	nextID  int
	last    T
	hasLast bool
}

type subscription[T any] struct {
	id int
	fn func(T)
}

func NewSignal[T any]() *Signal[T] {
	return new(Signal[T])
}

// Subscribe registers fn and returns an unsubscribe func. If a value was
// emitted before, fn is invoked with it immediately.
func (s *Signal[T]) Subscribe(fn func(T)) func() {
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscription[T]{id: id, fn: fn})

	if s.hasLast {
		fn(s.last)
	}

	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Emit delivers value to every subscriber in registration order and retains
// it for replay. Handlers may unsubscribe during delivery.
func (s *Signal[T]) Emit(value T) {
	s.last = value
	s.hasLast = true

	subs := make([]subscription[T], len(s.subs))
	copy(subs, s.subs)
	for _, sub := range subs {
		sub.fn(value)
	}
}

// Last returns the most recently emitted value, if any.
func (s *Signal[T]) Last() (T, bool) {
	return s.last, s.hasLast
}
