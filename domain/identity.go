package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// IDGenerator hands out attendee identifiers. Implementations must never
// return the same value twice within a process, deleted records included.
type IDGenerator interface {
	NextID() AttendeeID
}

type UUIDGenerator struct{}

func NewUUIDGenerator() UUIDGenerator {
	return UUIDGenerator{}
}

func (UUIDGenerator) NextID() AttendeeID {
	return AttendeeID(uuid.NewString())
}

// SequenceGenerator produces "a-1", "a-2", ... in call order.
// Not safe for concurrent use, like the roster it feeds.
type SequenceGenerator struct {
	prefix string
	next   uint64
}

func NewSequenceGenerator(prefix string) *SequenceGenerator {
	if prefix == "" {
		prefix = "a"
	}
	return &SequenceGenerator{prefix: prefix}
}

func (g *SequenceGenerator) NextID() AttendeeID {
	g.next++
	return AttendeeID(fmt.Sprintf("%s-%d", g.prefix, g.next))
}
