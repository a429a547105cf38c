package tui

import "github.com/charmbracelet/lipgloss"

var (
	noticeStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FF00FF")).
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(1, 4).
			Align(lipgloss.Center)

	noticeHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true)
)

// noticeQueue holds modal messages in the order they were raised.
// The game does not step while one is showing.
type noticeQueue []string

func (q noticeQueue) push(text string) noticeQueue {
	return append(q, text)
}

func (q noticeQueue) current() (string, bool) {
	if len(q) == 0 {
		return "", false
	}
	return q[0], true
}

func (q noticeQueue) dismiss() noticeQueue {
	if len(q) == 0 {
		return q
	}
	return q[1:]
}

// renderNotice draws the modal box centered in a width×height area.
func renderNotice(text string, width, height int) string {
	box := noticeStyle.Render(text + "\n\n" + noticeHintStyle.Render("press enter"))
	if width <= 0 || height <= 0 {
		return box
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
