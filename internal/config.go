package internal

import (
	"attendance-lab/domain"
	"attendance-lab/roster"
	"fmt"
	"strings"
)

const (
	IDStrategyUUID     = "uuid"
	IDStrategySequence = "sequence"
)

type Config struct {
	LogLevel    string `env:"LOG_LEVEL,default=INFO"`
	IDStrategy  string `env:"ID_STRATEGY,default=uuid"`
	StrictEdits bool   `env:"STRICT_EDITS,default=false"`
	Colours     bool   `env:"COLOURS,default=true"`
	FeedSize    int    `env:"FEED_SIZE,default=5"`
	Title       string `env:"TITLE,default=Meeting Attendance"`
}

// IDGenerator picks the identifier strategy named by ID_STRATEGY.
func (c Config) IDGenerator() (domain.IDGenerator, error) {
	switch strings.ToLower(c.IDStrategy) {
	case "", IDStrategyUUID:
		return domain.NewUUIDGenerator(), nil
	case IDStrategySequence:
		return domain.NewSequenceGenerator("a"), nil
	default:
		return nil, fmt.Errorf(
			"ID_STRATEGY must be %q or %q, got %q",
			IDStrategyUUID, IDStrategySequence, c.IDStrategy,
		)
	}
}

// RosterOptions translates the config into roster options.
func (c Config) RosterOptions() ([]roster.Option, error) {
	gen, err := c.IDGenerator()
	if err != nil {
		return nil, err
	}
	return []roster.Option{
		roster.WithIDGenerator(gen),
		roster.WithStrictEdits(c.StrictEdits),
	}, nil
}
