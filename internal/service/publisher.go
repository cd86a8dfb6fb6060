package service

import (
	"sync"
)

// publisher fans state out to subscribers. Each subscriber channel holds at most
// one pending state; a newer state replaces an unread one so slow readers skip
// intermediate states but always end on the latest.
type publisher struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan State
	closed bool
}

func newPublisher() *publisher {
	return &publisher{
		subs: make(map[int]chan State),
	}
}

func (p *publisher) subscribe(current State) (<-chan State, func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	ch := make(chan State, 1)
	if p.closed {
		close(ch)
		return ch, func() {}
	}

	ch <- current

	id := p.nextID
	p.nextID++
	p.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			p.mu.Lock()
			defer p.mu.Unlock()

			if sub, ok := p.subs[id]; ok {
				delete(p.subs, id)
				close(sub)
			}
		})
	}
}

func (p *publisher) publish(state State) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, ch := range p.subs {
		select {
		case <-ch:
		default:
		}
		ch <- state
	}
}

func (p *publisher) close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.closed = true

	for id, ch := range p.subs {
		delete(p.subs, id)
		close(ch)
	}
}

func (p *publisher) len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.subs)
}
