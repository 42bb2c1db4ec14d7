// Package domain contains core concepts of the attendance roster.
// This file defines Attendee records and the read-only views handed to the UI.
// No runtime, terminal, or rendering logic should be added here.
package domain

// AttendeeID is opaque, assigned once at creation and never derived from the name.
type AttendeeID string

func (id AttendeeID) String() string {
	return string(id)
}

// Attendee is one tracked person with a presence flag.
type Attendee struct {
	ID      AttendeeID
	Name    string
	Present bool
}

func NewAttendee(id AttendeeID, name string) Attendee {
	return Attendee{ID: id, Name: name, Present: false}
}

// EditSession captures which record is being renamed and its draft value.
// At most one is active at a time.
type EditSession struct {
	TargetID AttendeeID
	Draft    string
}

type Summary struct {
	Present int
	Total   int
}

func (s Summary) Absent() int {
	return s.Total - s.Present
}

// Snapshot is an independent copy of the roster state, safe to hold while
// the roster keeps changing.
type Snapshot struct {
	Attendees       []Attendee
	Input           string
	Edit            *EditSession
	ValidationError string
	Summary         Summary
}

// IsEditing reports whether id is the target of the active edit session.
func (s Snapshot) IsEditing(id AttendeeID) bool {
	return s.Edit != nil && s.Edit.TargetID == id
}
