//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"attendance-lab/domain"
	"attendance-lab/domain/event"
	"context"
)

type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

// IRosterService is the only mutation surface offered to the presentation layer.
type IRosterService interface {
	SetInput(text string)
	SubmitInput(ctx context.Context) (domain.AttendeeID, error)
	Add(ctx context.Context, rawName string) (domain.AttendeeID, error)
	Remove(ctx context.Context, id domain.AttendeeID) bool
	BeginEdit(ctx context.Context, id domain.AttendeeID) bool
	UpdateEditDraft(text string) bool
	CommitEdit(ctx context.Context) (bool, error)
	Toggle(ctx context.Context, id domain.AttendeeID) bool
	Summary() domain.Summary
	Snapshot() domain.Snapshot
}
