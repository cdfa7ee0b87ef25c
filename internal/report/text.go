// Package report renders the battle session's outputs into persisted
// artifacts: a plain-text log file and a styled HTML report. It is a pure
// consumer of the combat core; nothing here feeds back into combat.
package report

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cory-johannsen/dungeonsim/internal/game/combat"
)

// WriteTextLog writes the battle narration to path as a plain-text log with
// a generation header.
//
// Precondition: path must be writable.
// Postcondition: The file at path contains the header followed by one line
// per event, or a non-nil error is returned and the file is untouched or
// partial per os.WriteFile semantics.
func WriteTextLog(path string, events []combat.Event, generatedAt time.Time) error {
	var b strings.Builder
	b.WriteString("Dungeon Battle Simulation Log\n")
	fmt.Fprintf(&b, "Generated: %s\n", generatedAt.Format("2006-01-02 15:04:05"))
	b.WriteString(strings.Repeat("=", 80))
	b.WriteString("\n\n")

	for i, ev := range events {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(ev.String())
	}
	b.WriteString("\n")

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing battle log %q: %w", path, err)
	}
	return nil
}
