package handling

import (
	"fmt"
	"sort"

	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

// ErrHistoryIsNotConstructed is returned when attempting to use an
// improperly initialized History.
var ErrHistoryIsNotConstructed = errs.NewValueIsRequiredError(
	"handling history must be created via NewHistory constructor")

// History is the handling history of one cargo: the collection of handling
// events registered for it, reduced to a set of distinct events by content
// identity and ordered by completion time.
//
// A history is a value object, not an aggregate of its own. It is assembled
// by the handling event repository and fed into the cargo to recompute the
// delivery snapshot.
type History struct { //nolint:recvcheck //using for validation
	events []Event
	guard  guard.ConstructorGuard
}

// NewHistory creates a History from a collection of events. All events must
// be properly constructed and refer to the same cargo. An empty collection
// is a valid, empty history.
func NewHistory(events []Event) (History, error) {
	history := History{
		guard: guard.NewConstructorGuard(),
	}

	if err := history.setEvents(events); err != nil {
		return History{}, err
	}

	return history, nil
}

// Validate checks if the History was properly constructed using the
// constructor. The zero value fails this validation.
func (h History) Validate() error {
	return h.guard.Validate(ErrHistoryIsNotConstructed)
}

// DistinctEventsByCompletionTime returns the distinct events of this
// history, deduplicated by content identity with last-write-wins, sorted
// ascending by completion time. The returned slice is a copy.
func (h History) DistinctEventsByCompletionTime() []Event {
	// Deduplicate while preserving input order, so the stable sort below
	// yields the same ordering for completion-time ties on every call.
	positions := make(map[string]int, len(h.events))
	result := make([]Event, 0, len(h.events))
	for _, event := range h.events {
		key := event.contentKey()
		if at, seen := positions[key]; seen {
			result[at] = event
			continue
		}
		positions[key] = len(result)
		result = append(result, event)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].completionTime.Before(result[j].completionTime)
	})

	return result
}

// MostRecentlyCompletedEvent returns the most recently completed distinct
// event of this history. The second return value is false when the history
// is empty.
func (h History) MostRecentlyCompletedEvent() (Event, bool) {
	distinct := h.DistinctEventsByCompletionTime()
	if len(distinct) == 0 {
		return Event{}, false
	}

	return distinct[len(distinct)-1], true
}

// IsEmpty reports whether the history contains no events.
func (h History) IsEmpty() bool {
	return len(h.events) == 0
}

// setEvents sets the event collection with validation. Every event must be
// constructed and all events must share one tracking ID.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers, to enable self-encapsulated validation during
// construction.
func (h *History) setEvents(events []Event) error {
	for i, event := range events {
		if err := event.Validate(); err != nil {
			return err
		}

		if i > 0 {
			same, err := event.TrackingID().IsEqual(events[0].TrackingID())
			if err != nil {
				return err
			}
			if !same {
				return errs.NewValueIsInvalidErrorWithCause("handling history",
					fmt.Errorf("events of cargos %s and %s mixed in one history",
						events[0].TrackingID(), event.TrackingID()))
			}
		}
	}

	h.events = make([]Event, len(events))
	copy(h.events, events)
	return nil
}
