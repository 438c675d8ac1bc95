package docstore

import "sync"

// hub fans document snapshots out to per-path subscribers. Both backends use
// it for in-process change notification.
type hub struct {
	mu   sync.Mutex
	next int
	subs map[string]map[int]func([]byte)
}

func newHub() *hub {
	return &hub{subs: make(map[string]map[int]func([]byte))}
}

func (h *hub) subscribe(path string, fn func([]byte)) func() {
	h.mu.Lock()
	id := h.next
	h.next++
	if h.subs[path] == nil {
		h.subs[path] = make(map[int]func([]byte))
	}
	h.subs[path][id] = fn
	h.mu.Unlock()

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if subs, ok := h.subs[path]; ok {
			delete(subs, id)
			if len(subs) == 0 {
				delete(h.subs, path)
			}
		}
	}
}

func (h *hub) publish(path string, doc []byte) {
	h.mu.Lock()
	fns := make([]func([]byte), 0, len(h.subs[path]))
	for _, fn := range h.subs[path] {
		fns = append(fns, fn)
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn(doc)
	}
}
