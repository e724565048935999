package board

import (
	"fmt"
	"math/rand/v2"

	"github.com/thenoetrevino/paso-board/internal/types"
)

// Generator supplies identifiers and placeholder text for new elements.
type Generator interface {
	NewID() types.ID
	ColumnTitle() string
	TaskContent() string
}

// DefaultColumnPrefix and DefaultTaskPrefix name new elements when no
// configuration overrides them.
const (
	DefaultColumnPrefix = "Column"
	DefaultTaskPrefix   = "Task"
)

// RandomGenerator creates UUID identifiers and numbered placeholder text
// such as "Column 417".
type RandomGenerator struct {
	ColumnPrefix string
	TaskPrefix   string
}

// NewRandomGenerator returns a RandomGenerator, falling back to the default
// prefixes for empty arguments.
func NewRandomGenerator(columnPrefix, taskPrefix string) *RandomGenerator {
	if columnPrefix == "" {
		columnPrefix = DefaultColumnPrefix
	}
	if taskPrefix == "" {
		taskPrefix = DefaultTaskPrefix
	}
	return &RandomGenerator{ColumnPrefix: columnPrefix, TaskPrefix: taskPrefix}
}

func (g *RandomGenerator) NewID() types.ID {
	return types.NewID()
}

func (g *RandomGenerator) ColumnTitle() string {
	return fmt.Sprintf("%s %d", g.ColumnPrefix, rand.IntN(1000))
}

func (g *RandomGenerator) TaskContent() string {
	return fmt.Sprintf("%s %d", g.TaskPrefix, rand.IntN(1000))
}

// SequenceGenerator produces predictable identifiers ("id-1", "id-2", ...)
// and numbered titles. Replays use it so their output is reproducible.
type SequenceGenerator struct {
	ColumnPrefix string
	TaskPrefix   string

	next    int
	columns int
	tasks   int
}

// NewSequenceGenerator returns a SequenceGenerator starting at 1.
func NewSequenceGenerator(columnPrefix, taskPrefix string) *SequenceGenerator {
	if columnPrefix == "" {
		columnPrefix = DefaultColumnPrefix
	}
	if taskPrefix == "" {
		taskPrefix = DefaultTaskPrefix
	}
	return &SequenceGenerator{ColumnPrefix: columnPrefix, TaskPrefix: taskPrefix}
}

func (g *SequenceGenerator) NewID() types.ID {
	g.next++
	return types.ID(fmt.Sprintf("id-%d", g.next))
}

func (g *SequenceGenerator) ColumnTitle() string {
	g.columns++
	return fmt.Sprintf("%s %d", g.ColumnPrefix, g.columns)
}

func (g *SequenceGenerator) TaskContent() string {
	g.tasks++
	return fmt.Sprintf("%s %d", g.TaskPrefix, g.tasks)
}
