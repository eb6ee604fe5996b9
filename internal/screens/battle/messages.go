package battle

import (
	"time"

	"github.com/halvden/grimoire/internal/arbiter"
	"github.com/halvden/grimoire/internal/session"
)

// battleReadyMsg is sent when the battle plan has been built.
type battleReadyMsg struct {
	Battle *session.Battle
	Err    error
}

// tickMsg drives the per-card response clock.
type tickMsg time.Time

// verdictMsg carries the arbiter's grade suggestion for a free-text
// answer, or the judging error.
type verdictMsg struct {
	Verdict *arbiter.Verdict
	Err     error
}
