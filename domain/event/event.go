package event

import (
	"attendance-lab/domain"
	"time"
)

// DomainEvent is recorded by the roster after every state change and flushed
// by the caller once the operation returns.
type DomainEvent interface {
	Name() string
	OccurredAt() time.Time
}

type AttendeeAdded struct {
	ID       domain.AttendeeID
	Attendee string
	At       time.Time
}

func (e AttendeeAdded) Name() string          { return "AttendeeAdded" }
func (e AttendeeAdded) OccurredAt() time.Time { return e.At }

type AttendeeRemoved struct {
	ID       domain.AttendeeID
	Attendee string
	At       time.Time
}

func (e AttendeeRemoved) Name() string          { return "AttendeeRemoved" }
func (e AttendeeRemoved) OccurredAt() time.Time { return e.At }

type EditStarted struct {
	ID    domain.AttendeeID
	Draft string
	At    time.Time
}

func (e EditStarted) Name() string          { return "EditStarted" }
func (e EditStarted) OccurredAt() time.Time { return e.At }

// EditDiscarded is emitted when an unsaved session is dropped, either because
// another edit replaced it or because its target was removed.
type EditDiscarded struct {
	ID    domain.AttendeeID
	Draft string
	At    time.Time
}

func (e EditDiscarded) Name() string          { return "EditDiscarded" }
func (e EditDiscarded) OccurredAt() time.Time { return e.At }

type AttendeeRenamed struct {
	ID       domain.AttendeeID
	Previous string
	Current  string
	At       time.Time
}

func (e AttendeeRenamed) Name() string          { return "AttendeeRenamed" }
func (e AttendeeRenamed) OccurredAt() time.Time { return e.At }

type AttendanceToggled struct {
	ID       domain.AttendeeID
	Attendee string
	Present  bool
	At       time.Time
}

func (e AttendanceToggled) Name() string          { return "AttendanceToggled" }
func (e AttendanceToggled) OccurredAt() time.Time { return e.At }

// NameRejected carries the raw input that failed validation.
type NameRejected struct {
	Raw    string
	Reason string
	At     time.Time
}

func (e NameRejected) Name() string          { return "NameRejected" }
func (e NameRejected) OccurredAt() time.Time { return e.At }
