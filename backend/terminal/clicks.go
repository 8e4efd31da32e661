package terminal

import "github.com/go-theft-auto/tooltip"

// Clicks is an in-process tooltip.ClickSource fed by the mouse adapter
// (or directly by the host program).
type Clicks struct {
	handlers map[int]func(tooltip.Click)
	next     int
}

// NewClicks creates an empty click source.
func NewClicks() *Clicks {
	return &Clicks{handlers: make(map[int]func(tooltip.Click))}
}

// Subscribe implements tooltip.ClickSource.
func (c *Clicks) Subscribe(fn func(tooltip.Click)) tooltip.Subscription {
	id := c.next
	c.next++
	c.handlers[id] = fn
	return &clickSub{src: c, id: id}
}

// Emit delivers a click to every subscriber.
func (c *Clicks) Emit(click tooltip.Click) {
	for _, fn := range c.handlers {
		fn(click)
	}
}

type clickSub struct {
	src *Clicks
	id  int
}

func (s *clickSub) Unsubscribe() {
	delete(s.src.handlers, s.id)
}
