// Package projection builds read models from roster events.
// It never mutates the roster.
package projection

import (
	"attendance-lab/domain/event"
	"context"
	"fmt"

	"github.com/samber/lo"
)

const DefaultFeedSize = 5

// ActivityFeed keeps the most recent changes as display lines, oldest first.
type ActivityFeed struct {
	size  int
	lines []string
}

func NewActivityFeed(size int) *ActivityFeed {
	if size <= 0 {
		size = DefaultFeedSize
	}
	return &ActivityFeed{size: size}
}

func (f *ActivityFeed) Consume(_ context.Context, e event.DomainEvent) error {
	line, ok := describe(e)
	if !ok {
		return nil
	}
	f.lines = lo.Subset(append(f.lines, line), -f.size, uint(f.size))
	return nil
}

func (f *ActivityFeed) Lines() []string {
	return append([]string(nil), f.lines...)
}

func describe(e event.DomainEvent) (string, bool) {
	switch evt := e.(type) {
	case event.AttendeeAdded:
		return fmt.Sprintf("Added %s", evt.Attendee), true
	case event.AttendeeRemoved:
		return fmt.Sprintf("Removed %s", evt.Attendee), true
	case event.AttendeeRenamed:
		return fmt.Sprintf("Renamed %q to %q", evt.Previous, evt.Current), true
	case event.AttendanceToggled:
		if evt.Present {
			return fmt.Sprintf("%s marked present", evt.Attendee), true
		}
		return fmt.Sprintf("%s marked absent", evt.Attendee), true
	case event.EditDiscarded:
		return fmt.Sprintf("Discarded edit %q", evt.Draft), true
	}
	// Edit starts and rejected input are visible elsewhere on screen.
	return "", false
}
