package sim

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// EventType names a station state transition.
type EventType string

const (
	EventVisitorEntered EventType = "visitor-entered"
	EventVisitorLeft    EventType = "visitor-left"
	EventStationFull    EventType = "station-full"
	EventStationClosed  EventType = "station-closed"
)

// Event is one station state transition, emitted as it happens.
// Entered/left events are emitted inside the station's exclusive section, so
// the order a sink observes matches the order visitors were actually serviced.
type Event struct {
	Type      EventType
	StationID string
	VisitorID string        // empty for station-closed
	Timestamp time.Time
	Elapsed   time.Duration // set only on visitor-left
}

// EventSink consumes station events. Implementations must be safe for
// concurrent use: every driver goroutine records through the same sink.
type EventSink interface {
	Record(Event)
}

// LogSink writes events through logrus at Info level.
type LogSink struct{}

func (LogSink) Record(e Event) {
	switch e.Type {
	case EventVisitorLeft:
		logrus.Infof("<< %s: visitor %s left %s after %s", e.Type, e.VisitorID, e.StationID, e.Elapsed)
	case EventStationClosed:
		logrus.Infof("<< %s: %s reached its run limit", e.Type, e.StationID)
	default:
		logrus.Infof("<< %s: visitor %s at %s", e.Type, e.VisitorID, e.StationID)
	}
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) Record(Event) {}

// RecordingSink captures events in order for inspection.
// Used by tests to assert service order and emitted transitions.
type RecordingSink struct {
	mu     sync.Mutex
	events []Event
}

func (rs *RecordingSink) Record(e Event) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.events = append(rs.events, e)
}

// Events returns a copy of everything recorded so far.
func (rs *RecordingSink) Events() []Event {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	out := make([]Event, len(rs.events))
	copy(out, rs.events)
	return out
}

// ByType returns recorded events of one type, in recording order.
func (rs *RecordingSink) ByType(t EventType) []Event {
	var out []Event
	for _, e := range rs.Events() {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}
