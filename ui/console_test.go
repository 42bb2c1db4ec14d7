package ui

import (
	"attendance-lab/domain"
	"attendance-lab/errors"
	"attendance-lab/mocks"
	"attendance-lab/projection"
	"attendance-lab/roster"
	"attendance-lab/services"
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newConsole(t *testing.T) (*Console, *services.RosterService, *bytes.Buffer) {
	t.Helper()
	r := roster.New(roster.WithIDGenerator(domain.NewSequenceGenerator("a")))
	feed := projection.NewActivityFeed(3)
	svc := services.NewRosterService(r, logs.GetLoggerFromLevel(slog.LevelDebug), feed)
	var out bytes.Buffer
	return NewConsole(svc, feed, &out, "Meeting Attendance", false), svc, &out
}

func TestConsole_Execute_Scenario(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	console, svc, _ := newConsole(t)

	for _, line := range []string{"add Alice", "add   Bob  ", "toggle 1", "edit 2", "draft Robert", "save"} {
		quit, err := console.Execute(ctx, line)
		req.NoError(err, line)
		req.False(quit)
	}

	snap := svc.Snapshot()
	req.Equal([]domain.Attendee{
		{ID: "a-1", Name: "Alice", Present: true},
		{ID: "a-2", Name: "Robert", Present: false},
	}, snap.Attendees)
	req.Nil(snap.Edit)
	req.Equal(domain.Summary{Present: 1, Total: 2}, snap.Summary)
}

func TestConsole_Execute_TypeAndSubmit(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	console, svc, _ := newConsole(t)

	_, err := console.Execute(ctx, "submit")
	req.NoError(err)
	req.Equal(errors.EmptyNameMessage, svc.Snapshot().ValidationError)

	_, err = console.Execute(ctx, "type Clara")
	req.NoError(err)
	req.Empty(svc.Snapshot().ValidationError)

	_, err = console.Execute(ctx, "submit")
	req.NoError(err)
	req.Equal("Clara", svc.Snapshot().Attendees[0].Name)
}

func TestConsole_Execute_BadCommands(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		line string
		err  error
	}{
		{"dance", errors.ErrUnknownCommand},
		{"toggle", errors.ErrMissingArgs},
		{"toggle x", errors.ErrInvalidIndex},
		{"toggle 0", errors.ErrInvalidIndex},
		{"delete 9", errors.ErrInvalidIndex},
		{"edit -1", errors.ErrInvalidIndex},
	}
	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			req := require.New(t)
			console, svc, _ := newConsole(t)
			_, err := console.Execute(ctx, "add Alice")
			req.NoError(err)

			_, err = console.Execute(ctx, tc.line)

			req.ErrorIs(err, tc.err)
			req.Equal([]domain.Attendee{{ID: "a-1", Name: "Alice"}}, svc.Snapshot().Attendees)
		})
	}
}

func TestConsole_Execute_InvalidRowNeverReachesService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	req := require.New(t)

	svc := mocks.NewMockIRosterService(ctrl)
	console := NewConsole(svc, nil, io.Discard, "t", false)

	svc.EXPECT().Snapshot().Return(domain.Snapshot{}).Times(1)
	svc.EXPECT().Toggle(gomock.Any(), gomock.Any()).Times(0)

	_, err := console.Execute(context.Background(), "toggle 1")
	req.ErrorIs(err, errors.ErrInvalidIndex)
}

func TestConsole_Render(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	console, _, out := newConsole(t)

	_, _ = console.Execute(ctx, "add Alice")
	_, _ = console.Execute(ctx, "add Bob")
	_, _ = console.Execute(ctx, "toggle 2")
	_, _ = console.Execute(ctx, "edit 1")
	_, _ = console.Execute(ctx, "draft Alicia")
	_, _ = console.Execute(ctx, "add  ")
	out.Reset()

	console.Render()

	text := out.String()
	req.Contains(text, "Meeting Attendance")
	req.Contains(text, errors.EmptyNameMessage)
	req.Contains(text, `Alice -> "Alicia" (editing)`)
	req.Contains(text, "[x]")
	req.Contains(text, "Present: 1 / 2")
	req.Contains(text, "Bob marked present")
}

func TestConsole_Run(t *testing.T) {
	req := require.New(t)
	console, svc, out := newConsole(t)
	in := strings.NewReader("add Alice\nfly\nadd Bob\nquit\nadd Clara\n")

	err := console.Run(context.Background(), in)

	req.NoError(err)
	req.Equal(domain.Summary{Present: 0, Total: 2}, svc.Summary())
	req.Contains(out.String(), `unknown command: "fly"`)
	req.Contains(out.String(), "No attendees yet.")
}

func TestConsole_Run_StopsAtEOF(t *testing.T) {
	req := require.New(t)
	console, svc, _ := newConsole(t)

	err := console.Run(context.Background(), strings.NewReader("add Alice"))

	req.NoError(err)
	req.Equal(1, svc.Summary().Total)
}

func TestConsole_Run_ReturnsWhenContextCancelledAtPrompt(t *testing.T) {
	req := require.New(t)
	console, svc, _ := newConsole(t)
	ctx, cancel := context.WithCancel(context.Background())
	reader, writer := io.Pipe()
	defer writer.Close()

	done := make(chan error, 1)
	go func() {
		done <- console.Run(ctx, reader)
	}()

	time.Sleep(50 * time.Millisecond)

	// Nothing is written: Run sits at the prompt until cancelled
	cancel()

	select {
	case err := <-done:
		req.NoError(err)
	case <-time.After(time.Second):
		req.Fail("Run still blocked after context cancel")
	}
	req.Zero(svc.Summary().Total)
}
