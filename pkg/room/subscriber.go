package room

import (
	"idlepoker-server/pkg/game"
)

// Subscriber receives a view after every tick and action
type Subscriber struct {
	send chan *game.View
}

// Send sends a view to the subscriber without blocking
// Returns false if the subscriber is not keeping up
func (s *Subscriber) Send(v *game.View) bool {
	select {
	case s.send <- v:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel
func (s *Subscriber) SendChan() <-chan *game.View {
	return s.send
}

// Subscribe registers a new subscriber
// This method must return quickly
func (r *Runner) Subscribe() *Subscriber {
	s := &Subscriber{
		send: make(chan *game.View, 16),
	}

	r.lock.Lock()
	r.subscribers[s] = true
	r.lock.Unlock()

	return s
}

// Unsubscribe removes the subscriber
func (r *Runner) Unsubscribe(s *Subscriber) {
	r.lock.Lock()
	delete(r.subscribers, s)
	r.lock.Unlock()
}

// Subscribers will return a slice of subscribers (at the time)
func (r *Runner) Subscribers() []*Subscriber {
	r.lock.RLock()
	defer r.lock.RUnlock()

	subscribers := make([]*Subscriber, 0, len(r.subscribers))
	for s := range r.subscribers {
		subscribers = append(subscribers, s)
	}

	return subscribers
}

func (r *Runner) broadcast(v *game.View) {
	for _, s := range r.Subscribers() {
		if !s.Send(v) {
			r.log.Debug("subscriber is not keeping up, dropping view")
		}
	}
}
