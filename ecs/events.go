package ecs

// EventType identifies the payload carried by an Event.
type EventType string

const (
	// EventAssetsLoaded carries a component.AssetsLoadedEvent.
	EventAssetsLoaded EventType = "assets_loaded"
	// EventAssetLoadFailed carries a component.AssetLoadFailedEvent.
	EventAssetLoadFailed EventType = "asset_load_failed"
	// EventStateChanged carries a component.StateChangedEvent.
	EventStateChanged EventType = "state_changed"
)

// Event is a generic ECS event payload.
type Event struct {
	Type EventType
	Data any
}

// EventQueue is a simple FIFO queue. Events live until the scheduler ends
// the tick, so every system scheduled after the producer observes them.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Items returns a copy of the queued events without consuming them.
func (q *EventQueue) Items() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := make([]Event, len(q.items))
	copy(out, q.items)
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}

// Each calls fn with the payload of every queued event of type typ whose
// data is a T.
func Each[T any](q *EventQueue, typ EventType, fn func(T)) {
	if q == nil || fn == nil {
		return
	}
	for _, evt := range q.items {
		if evt.Type != typ {
			continue
		}
		if data, ok := evt.Data.(T); ok {
			fn(data)
		}
	}
}
