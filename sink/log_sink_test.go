package sink

import (
	"attendance-lab/domain/event"
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLogSink_Consume(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := NewLogSink(log)
	ctx := context.Background()

	req.NoError(s.Consume(ctx, event.AttendeeAdded{ID: "a-1", Attendee: "Alice", At: time.Now()}))
	req.NoError(s.Consume(ctx, event.AttendanceToggled{ID: "a-1", Attendee: "Alice", Present: true, At: time.Now()}))
	req.NoError(s.Consume(ctx, event.NameRejected{Raw: "  ", Reason: "Please enter a name.", At: time.Now()}))

	out := buf.String()
	req.Contains(out, `msg="Attendee added" id=a-1 name=Alice`)
	req.Contains(out, `msg="Attendance toggled" id=a-1 name=Alice present=true`)
	req.Contains(out, `msg="Name rejected"`)
}
