package game

// EventType indicates what happened in a match.
type EventType string

const (
	EventCardPlayed   EventType = "CARD_PLAYED"
	EventPlayerPassed EventType = "PLAYER_PASSED"
	EventRoundEnded   EventType = "ROUND_ENDED"
	EventMatchEnded   EventType = "MATCH_ENDED"
)

// Event describes a state change observers may react to.
type Event struct {
	Type     EventType
	MatchID  string
	Player   int
	Action   Action
	Round    int
	Outcome  Outcome
	Strength [2]int
	Life     [2]int
}

// Listener defines a callback that reacts to match events.
type Listener func(Event)

// EventBus is a synchronous publish/subscribe hub owned by one match.
// Listeners run on the caller's goroutine before Step returns.
type EventBus struct {
	listeners  map[int]Listener
	order      []int
	nextHandle int
}

// NewEventBus constructs an empty bus.
func NewEventBus() *EventBus {
	return &EventBus{
		listeners: make(map[int]Listener),
	}
}

// Subscribe registers a listener and returns its handle.
func (bus *EventBus) Subscribe(listener Listener) int {
	if listener == nil {
		return -1
	}
	handle := bus.nextHandle
	bus.nextHandle++
	bus.listeners[handle] = listener
	bus.order = append(bus.order, handle)
	return handle
}

// Unsubscribe removes the listener identified by handle.
func (bus *EventBus) Unsubscribe(handle int) {
	if _, ok := bus.listeners[handle]; !ok {
		return
	}
	delete(bus.listeners, handle)
	for i, h := range bus.order {
		if h == handle {
			bus.order = append(bus.order[:i], bus.order[i+1:]...)
			break
		}
	}
}

// Publish delivers event to every listener in subscription order.
func (bus *EventBus) Publish(event Event) {
	for _, handle := range bus.order {
		bus.listeners[handle](event)
	}
}
