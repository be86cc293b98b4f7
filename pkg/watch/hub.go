package watch

import (
	"sync"
)

type Collection string

const (
	CollectionItems    Collection = "items"
	CollectionPeople   Collection = "people"
	CollectionSettings Collection = "settings"
)

// Snapshot carries a full replacement of one collection. Consumers must
// replace their previous view, never merge.
type Snapshot struct {
	Collection Collection  `json:"collection"`
	Data       interface{} `json:"data"`
}

// Hub fans out full-collection snapshots to subscribers. Each subscriber
// channel holds at most one pending snapshot; publishing while a subscriber
// lags replaces the undelivered snapshot, so the most recent write wins.
type Hub struct {
	mu     sync.Mutex
	nextID int
	subs   map[Collection]map[int]chan Snapshot
	last   map[Collection]*Snapshot
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[Collection]map[int]chan Snapshot),
		last: make(map[Collection]*Snapshot),
	}
}

// Subscribe registers for snapshots of one collection. The last published
// snapshot, if any, is delivered immediately. The returned function cancels
// the subscription and closes the channel.
func (h *Hub) Subscribe(collection Collection) (<-chan Snapshot, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Snapshot, 1)
	id := h.nextID
	h.nextID++

	if h.subs[collection] == nil {
		h.subs[collection] = make(map[int]chan Snapshot)
	}
	h.subs[collection][id] = ch

	if last := h.last[collection]; last != nil {
		ch <- *last
	}

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if _, ok := h.subs[collection][id]; ok {
			delete(h.subs[collection], id)
			close(ch)
		}
	}
	return ch, cancel
}

// Publish replaces the current snapshot of a collection and notifies all
// subscribers.
func (h *Hub) Publish(collection Collection, data interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()

	snapshot := Snapshot{Collection: collection, Data: data}
	h.last[collection] = &snapshot

	for _, ch := range h.subs[collection] {
		select {
		case ch <- snapshot:
		default:
			// Drop the stale pending snapshot and queue the new one.
			select {
			case <-ch:
			default:
			}
			ch <- snapshot
		}
	}
}
