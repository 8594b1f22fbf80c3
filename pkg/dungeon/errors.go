package dungeon

import (
	"errors"
	"fmt"
)

// ErrInvalidCount is returned when a caller requests a negative selection
// count or more distinct encounters than a pool holds.
var ErrInvalidCount = errors.New("invalid selection count")

// ErrStageOrder is returned when assignment steps run out of order. The
// required order is traps, then items, then character/monster, each once
// per session.
var ErrStageOrder = errors.New("assignment steps must run in order: traps, items, character/monster")

// CapacityError reports an encounter pool too small for the assignment step
// that consumed it. Assignment steps leave the session untouched when they
// fail this way.
type CapacityError struct {
	Op   string
	Need int
	Have int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s: pool has %d encounters, need %d", e.Op, e.Have, e.Need)
}
