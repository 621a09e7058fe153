package game

// EventKind tags a discrete game event emitted by the simulation core.
type EventKind uint8

const (
	EventDoorOpen EventKind = iota
	EventDoorClose
	EventEnemyAlert
	EventEnemyShoot
	EventEnemyHitPlayer
	EventEnemyDeath
	EventPlayerShoot
	EventPushwallActivate
	EventPushwallNoWay
)

func (k EventKind) String() string {
	switch k {
	case EventDoorOpen:
		return "door-open"
	case EventDoorClose:
		return "door-close"
	case EventEnemyAlert:
		return "enemy-alert"
	case EventEnemyShoot:
		return "enemy-shoot"
	case EventEnemyHitPlayer:
		return "enemy-hit-player"
	case EventEnemyDeath:
		return "enemy-death"
	case EventPlayerShoot:
		return "player-shoot"
	case EventPushwallActivate:
		return "pushwall-activate"
	case EventPushwallNoWay:
		return "pushwall-no-way"
	default:
		return "unknown"
	}
}

// Event is one transient simulation occurrence. Every event carries a world
// position so the audio sink can spatialise it; Actor and Damage are only
// meaningful for the kinds that set them.
type Event struct {
	Kind   EventKind
	X, Z   float64 // world position of the source
	Actor  int     // enemy id, -1 when not actor-related
	Damage int     // enemy-hit-player only
}

// EventQueue collects events during a tick. Events are transient: the queue
// is drained by each interested collaborator after the tick that produced
// them and reset at the start of the next. There is no pub/sub — consumers
// simply iterate the slice.
type EventQueue struct {
	events []Event
}

// Emit appends an event.
func (q *EventQueue) Emit(ev Event) {
	q.events = append(q.events, ev)
}

// Events returns this tick's events. The slice is valid until Reset.
func (q *EventQueue) Events() []Event {
	return q.events
}

// Reset clears the queue for the next tick.
func (q *EventQueue) Reset() {
	q.events = q.events[:0]
}

// Count returns how many events of the given kind are pending.
func (q *EventQueue) Count(kind EventKind) int {
	n := 0
	for _, ev := range q.events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}
