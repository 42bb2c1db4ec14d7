package services

import (
	"attendance-lab/contract"
	"attendance-lab/domain"
	"attendance-lab/roster"
	"context"
	"log/slog"
)

// RosterService owns one roster and forwards the events each intent produces
// to the registered sinks. A failing sink is logged and never rolls back the
// change that has already been applied.
type RosterService struct {
	roster *roster.Roster
	log    *slog.Logger
	sinks  []contract.EventSink
}

func NewRosterService(r *roster.Roster, log *slog.Logger, sinks ...contract.EventSink) *RosterService {
	return &RosterService{roster: r, log: log, sinks: sinks}
}

func (s *RosterService) AddSinks(sinks ...contract.EventSink) {
	s.sinks = append(s.sinks, sinks...)
}

func (s *RosterService) SetInput(text string) {
	s.roster.SetInput(text)
}

func (s *RosterService) SubmitInput(ctx context.Context) (domain.AttendeeID, error) {
	id, err := s.roster.SubmitInput()
	s.dispatch(ctx)
	if err != nil {
		s.log.Debug("Input rejected", "error", err)
		return "", err
	}
	return id, nil
}

func (s *RosterService) Add(ctx context.Context, rawName string) (domain.AttendeeID, error) {
	id, err := s.roster.Add(rawName)
	s.dispatch(ctx)
	if err != nil {
		s.log.Debug("Name rejected", "raw", rawName, "error", err)
		return "", err
	}
	s.log.Debug("Attendee added", "id", id)
	return id, nil
}

func (s *RosterService) Remove(ctx context.Context, id domain.AttendeeID) bool {
	ok := s.roster.Remove(id)
	s.dispatch(ctx)
	if !ok {
		s.log.Debug("Remove ignored, unknown attendee", "id", id)
	}
	return ok
}

func (s *RosterService) BeginEdit(ctx context.Context, id domain.AttendeeID) bool {
	ok := s.roster.BeginEdit(id)
	s.dispatch(ctx)
	if !ok {
		s.log.Debug("Edit ignored, unknown attendee", "id", id)
	}
	return ok
}

func (s *RosterService) UpdateEditDraft(text string) bool {
	return s.roster.UpdateEditDraft(text)
}

func (s *RosterService) CommitEdit(ctx context.Context) (bool, error) {
	ok, err := s.roster.CommitEdit()
	s.dispatch(ctx)
	if err != nil {
		s.log.Debug("Edit rejected", "error", err)
	}
	return ok, err
}

func (s *RosterService) Toggle(ctx context.Context, id domain.AttendeeID) bool {
	ok := s.roster.Toggle(id)
	s.dispatch(ctx)
	if !ok {
		s.log.Debug("Toggle ignored, unknown attendee", "id", id)
	}
	return ok
}

func (s *RosterService) Summary() domain.Summary {
	return s.roster.Summary()
}

func (s *RosterService) Snapshot() domain.Snapshot {
	return s.roster.Snapshot()
}

func (s *RosterService) dispatch(ctx context.Context) {
	for _, e := range s.roster.FlushEvents() {
		for _, sink := range s.sinks {
			if err := sink.Consume(ctx, e); err != nil {
				s.log.Warn("Sink failed to consume event", "event", e.Name(), "error", err)
			}
		}
	}
}
