// Package roster holds the attendance list store.
// It owns the ordered list, the add-field draft, the single edit session and
// the last validation error, and records a domain event for every change.
// It is synchronous and not safe for concurrent use: callers handle one intent
// to completion before issuing the next.
package roster

import (
	"attendance-lab/domain"
	"attendance-lab/domain/event"
	"attendance-lab/errors"
	"attendance-lab/validation"
	"strings"
	"time"

	"github.com/samber/lo"
)

type Option func(*Roster)

func WithIDGenerator(gen domain.IDGenerator) Option {
	return func(r *Roster) { r.ids = gen }
}

func WithClock(now func() time.Time) Option {
	return func(r *Roster) { r.now = now }
}

// WithStrictEdits makes CommitEdit apply the same name validation as Add.
// Off by default: a blank draft is committed as an empty name.
func WithStrictEdits(strict bool) Option {
	return func(r *Roster) { r.strictEdits = strict }
}

type Roster struct {
	attendees       []domain.Attendee
	input           string
	edit            *domain.EditSession
	validationError string
	outbox          []event.DomainEvent

	ids         domain.IDGenerator
	now         func() time.Time
	strictEdits bool
}

func New(opts ...Option) *Roster {
	r := &Roster{
		ids: domain.NewUUIDGenerator(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetInput replaces the add-field draft. Typing clears any validation error.
func (r *Roster) SetInput(text string) {
	r.input = text
	r.validationError = ""
}

// SubmitInput adds the current add-field draft.
func (r *Roster) SubmitInput() (domain.AttendeeID, error) {
	return r.Add(r.input)
}

// Add appends a new absent attendee named after the trimmed rawName.
// A blank name leaves the list untouched, sets the validation error and
// returns errors.ErrEmptyName.
func (r *Roster) Add(rawName string) (domain.AttendeeID, error) {
	name, err := validation.ValidateName(rawName)
	if err != nil {
		r.reject(rawName)
		return "", err
	}

	attendee := domain.NewAttendee(r.ids.NextID(), name)
	r.attendees = append(r.attendees, attendee)
	r.input = ""
	r.validationError = ""
	r.record(event.AttendeeAdded{ID: attendee.ID, Attendee: name, At: r.now()})
	return attendee.ID, nil
}

// Remove deletes the attendee with id. Unknown ids are a no-op.
// Removing the record under edit also drops the edit session.
func (r *Roster) Remove(id domain.AttendeeID) bool {
	idx := r.indexOf(id)
	if idx < 0 {
		return false
	}
	removed := r.attendees[idx]
	r.attendees = lo.DropByIndex(r.attendees, idx)
	r.record(event.AttendeeRemoved{ID: removed.ID, Attendee: removed.Name, At: r.now()})

	if r.edit != nil && r.edit.TargetID == id {
		r.discardEdit()
	}
	return true
}

// BeginEdit opens an edit session seeded with the attendee's current name.
// An unsaved session on any record is discarded first.
func (r *Roster) BeginEdit(id domain.AttendeeID) bool {
	idx := r.indexOf(id)
	if idx < 0 {
		return false
	}
	if r.edit != nil {
		r.discardEdit()
	}
	name := r.attendees[idx].Name
	r.edit = &domain.EditSession{TargetID: id, Draft: name}
	r.record(event.EditStarted{ID: id, Draft: name, At: r.now()})
	return true
}

func (r *Roster) UpdateEditDraft(text string) bool {
	if r.edit == nil {
		return false
	}
	r.edit.Draft = text
	return true
}

// CommitEdit writes the trimmed draft onto the target and closes the session.
// Returns false when no session is active or the target no longer exists.
// With strict edits a blank draft is refused and the session stays open;
// a later valid commit clears the validation error again.
func (r *Roster) CommitEdit() (bool, error) {
	if r.edit == nil {
		return false, nil
	}
	session := *r.edit

	idx := r.indexOf(session.TargetID)
	if idx < 0 {
		r.edit = nil
		return false, nil
	}

	name := strings.TrimSpace(session.Draft)
	if r.strictEdits {
		validated, err := validation.ValidateName(session.Draft)
		if err != nil {
			r.reject(session.Draft)
			return false, err
		}
		name = validated
		r.validationError = ""
	}

	previous := r.attendees[idx].Name
	r.attendees[idx].Name = name
	r.edit = nil
	r.record(event.AttendeeRenamed{ID: session.TargetID, Previous: previous, Current: name, At: r.now()})
	return true, nil
}

// Toggle flips the presence flag. Unknown ids are a no-op.
func (r *Roster) Toggle(id domain.AttendeeID) bool {
	idx := r.indexOf(id)
	if idx < 0 {
		return false
	}
	a := &r.attendees[idx]
	a.Present = !a.Present
	r.record(event.AttendanceToggled{ID: a.ID, Attendee: a.Name, Present: a.Present, At: r.now()})
	return true
}

func (r *Roster) Summary() domain.Summary {
	return domain.Summary{
		Present: lo.CountBy(r.attendees, func(a domain.Attendee) bool { return a.Present }),
		Total:   len(r.attendees),
	}
}

// Snapshot copies the current state. The result shares no memory with the roster.
func (r *Roster) Snapshot() domain.Snapshot {
	var edit *domain.EditSession
	if r.edit != nil {
		edit = lo.ToPtr(*r.edit)
	}
	return domain.Snapshot{
		Attendees:       append([]domain.Attendee(nil), r.attendees...),
		Input:           r.input,
		Edit:            edit,
		ValidationError: r.validationError,
		Summary:         r.Summary(),
	}
}

// Get returns the attendee with id, if any.
func (r *Roster) Get(id domain.AttendeeID) (domain.Attendee, bool) {
	idx := r.indexOf(id)
	if idx < 0 {
		return domain.Attendee{}, false
	}
	return r.attendees[idx], true
}

// FlushEvents returns the recorded events in order and empties the outbox.
func (r *Roster) FlushEvents() []event.DomainEvent {
	events := r.outbox
	r.outbox = nil
	return events
}

func (r *Roster) indexOf(id domain.AttendeeID) int {
	_, idx, ok := lo.FindIndexOf(r.attendees, func(a domain.Attendee) bool {
		return a.ID == id
	})
	if !ok {
		return -1
	}
	return idx
}

func (r *Roster) discardEdit() {
	dropped := *r.edit
	r.edit = nil
	r.record(event.EditDiscarded{ID: dropped.TargetID, Draft: dropped.Draft, At: r.now()})
}

func (r *Roster) reject(raw string) {
	r.validationError = errors.EmptyNameMessage
	r.record(event.NameRejected{Raw: raw, Reason: errors.EmptyNameMessage, At: r.now()})
}

func (r *Roster) record(e event.DomainEvent) {
	r.outbox = append(r.outbox, e)
}
