package combat

import (
	"fmt"
	"time"
)

// Event is one narrated entry in the battle log, stamped with the turn it
// occurred on and the wall-clock time it was recorded.
type Event struct {
	Turn    int
	Time    time.Time
	Message string
}

// String renders the event as a log line in the format:
//
//	"[15:04:05.000] Turn 3: message"
func (e Event) String() string {
	return fmt.Sprintf("[%s] Turn %d: %s", e.Time.Format("15:04:05.000"), e.Turn, e.Message)
}
