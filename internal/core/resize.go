package core

// ResizeNotifier fans host viewport resize events out to listeners.
type ResizeNotifier struct {
	next      int
	listeners map[int]func(vw, vh int)
}

// NewResizeNotifier returns a notifier with no listeners.
func NewResizeNotifier() *ResizeNotifier {
	return &ResizeNotifier{listeners: map[int]func(vw, vh int){}}
}

// Listen registers fn and returns a function removing it again. The returned
// cancel func may be called any number of times.
func (n *ResizeNotifier) Listen(fn func(vw, vh int)) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	n.next++
	id := n.next
	n.listeners[id] = fn
	return func() { delete(n.listeners, id) }
}

// Len reports the number of registered listeners.
func (n *ResizeNotifier) Len() int { return len(n.listeners) }

// Notify reports a new viewport size in host pixels to every listener.
func (n *ResizeNotifier) Notify(vw, vh int) {
	for _, fn := range n.listeners {
		fn(vw, vh)
	}
}
