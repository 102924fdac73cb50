package board

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator produces identifiers that are unique among all live items
// and columns on a board.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator issues time-ordered UUIDs.
type UUIDGenerator struct{}

// NewID returns a UUIDv7, falling back to a random UUIDv4 if the clock
// source fails.
func (UUIDGenerator) NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// SequenceGenerator issues "<prefix><n>" identifiers in order.
// Used for fixtures and tests where stable ids are needed.
type SequenceGenerator struct {
	Prefix string
	next   atomic.Int64
}

// NewSequenceGenerator returns a generator whose first id is prefix1
func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{Prefix: prefix}
}

// NewID returns the next id in the sequence
func (g *SequenceGenerator) NewID() string {
	return fmt.Sprintf("%s%d", g.Prefix, g.next.Add(1))
}
