package dodge

import "github.com/vovakirdan/neon-dodge/internal/core"

// Notices shown by hosts as modal messages.
const (
	NoticeLost         = "You lost! Try again."
	NoticeWon          = "You won the game!"
	NoticeSensorOn     = "Motion sensor activated!"
	NoticeSensorDenied = "Motion sensor permission denied."
	NoticeSensorHint   = "Click to activate motion sensors."
)

// PhaseNotice returns the notice a host raises for a step phase.
// Level changes are silent.
func PhaseNotice(p core.Phase) (string, bool) {
	switch p {
	case core.PhaseGameOver:
		return NoticeLost, true
	case core.PhaseWon:
		return NoticeWon, true
	default:
		return "", false
	}
}
