package e2e

import (
	"attendance-lab/domain"
	"attendance-lab/projection"
	"attendance-lab/roster"
	"attendance-lab/services"
	"attendance-lab/sink"
	"attendance-lab/ui"
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

// BaseConsoleSuite drives a fully wired console the way a user would,
// one scripted line at a time.
type BaseConsoleSuite struct {
	suite.Suite
	Config Config
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseConsoleSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
}

type Session struct {
	Console *ui.Console
	Service *services.RosterService
	Feed    *projection.ActivityFeed
	Screen  *bytes.Buffer
}

// NewSession wires roster, service, sinks and console like cmd/main.go does,
// with a sequence generator so rows are predictable.
func (s *BaseConsoleSuite) NewSession(opts ...roster.Option) *Session {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	base := []roster.Option{
		roster.WithIDGenerator(domain.NewSequenceGenerator("a")),
		roster.WithStrictEdits(s.Config.StrictEdits),
	}
	store := roster.New(append(base, opts...)...)
	feed := projection.NewActivityFeed(projection.DefaultFeedSize)
	service := services.NewRosterService(store, log, sink.NewLogSink(log), feed)
	screen := &bytes.Buffer{}
	return &Session{
		Console: ui.NewConsole(service, feed, screen, "Meeting Attendance", false),
		Service: service,
		Feed:    feed,
		Screen:  screen,
	}
}

// Step runs a named scripted block of console input and returns the final snapshot.
func (s *BaseConsoleSuite) Step(session *Session, name string, lines ...string) domain.Snapshot {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)

	err := session.Console.Run(context.Background(), strings.NewReader(strings.Join(lines, "\n")+"\n"))
	s.Require().NoError(err)

	if s.Config.DumpScreen {
		s.T().Log(session.Screen.String())
	}
	return session.Service.Snapshot()
}
