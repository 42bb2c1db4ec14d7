package sink

import (
	"attendance-lab/domain/event"
	"context"
	"fmt"
	"log/slog"
)

// LogSink writes one structured line per roster event.
type LogSink struct {
	log *slog.Logger
}

func NewLogSink(log *slog.Logger) LogSink {
	return LogSink{log: log}
}

func (l LogSink) Consume(ctx context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.AttendeeAdded:
		l.log.InfoContext(ctx, "Attendee added", "id", evt.ID, "name", evt.Attendee)
	case event.AttendeeRemoved:
		l.log.InfoContext(ctx, "Attendee removed", "id", evt.ID, "name", evt.Attendee)
	case event.AttendeeRenamed:
		l.log.InfoContext(ctx, "Attendee renamed", "id", evt.ID, "from", evt.Previous, "to", evt.Current)
	case event.AttendanceToggled:
		l.log.InfoContext(ctx, "Attendance toggled", "id", evt.ID, "name", evt.Attendee, "present", evt.Present)
	case event.EditStarted:
		l.log.DebugContext(ctx, "Edit started", "id", evt.ID)
	case event.EditDiscarded:
		l.log.DebugContext(ctx, "Edit discarded", "id", evt.ID, "draft", evt.Draft)
	case event.NameRejected:
		l.log.DebugContext(ctx, "Name rejected", "raw", evt.Raw, "reason", evt.Reason)
	default:
		l.log.Debug(fmt.Sprintf("Not implemented event : %v", evt))
	}
	return nil
}
