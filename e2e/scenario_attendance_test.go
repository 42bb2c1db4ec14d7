package e2e

import (
	"attendance-lab/domain"
	"attendance-lab/errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

type AttendanceScenarioSuite struct {
	BaseConsoleSuite
}

func TestAttendanceScenarioSuite(t *testing.T) {
	suite.Run(t, new(AttendanceScenarioSuite))
}

func (s *AttendanceScenarioSuite) TestMeetingRollCall() {
	session := s.NewSession()

	snap := s.Step(session, "Fill the roster",
		"add Alice",
		"add   Bob  ",
		"add",
	)
	s.Equal(errors.EmptyNameMessage, snap.ValidationError)
	s.Equal([]domain.Attendee{
		{ID: "a-1", Name: "Alice"},
		{ID: "a-2", Name: "Bob"},
	}, snap.Attendees)
	s.Equal(domain.Summary{Present: 0, Total: 2}, snap.Summary)

	snap = s.Step(session, "Typing clears the error",
		"type Cla",
		"type Clara",
		"submit",
	)
	s.Empty(snap.ValidationError)
	s.Empty(snap.Input)
	s.Len(snap.Attendees, 3)

	snap = s.Step(session, "Mark arrivals",
		"toggle 1",
		"toggle 3",
		"toggle 3",
		"toggle 3",
	)
	s.Equal(domain.Summary{Present: 2, Total: 3}, snap.Summary)

	snap = s.Step(session, "Rename Alice",
		"edit 1",
		"draft   Alicia ",
		"save",
	)
	s.Equal("Alicia", snap.Attendees[0].Name)
	s.Nil(snap.Edit)

	snap = s.Step(session, "Delete the row under edit",
		"edit 2",
		"draft Robert",
		"delete 2",
		"save",
	)
	s.Nil(snap.Edit)
	s.Equal([]domain.Attendee{
		{ID: "a-1", Name: "Alicia", Present: true},
		{ID: "a-3", Name: "Clara", Present: true},
	}, snap.Attendees)
	s.Equal(domain.Summary{Present: 2, Total: 2}, snap.Summary)

	s.Contains(session.Screen.String(), "Present: 2 / 2")
	s.Contains(session.Feed.Lines(), "Removed Bob")
}

func (s *AttendanceScenarioSuite) TestSwitchingEditsDropsDraft() {
	session := s.NewSession()

	snap := s.Step(session, "Switch edits",
		"add Alice",
		"add Bob",
		"edit 1",
		"draft Mallory",
		"edit 2",
		"save",
	)

	s.Equal("Alice", snap.Attendees[0].Name)
	s.Equal("Bob", snap.Attendees[1].Name)
	s.Contains(session.Feed.Lines(), `Discarded edit "Mallory"`)
}
