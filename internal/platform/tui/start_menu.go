package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-dodge/internal/config"
)

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF"))

	menuCursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FFFF"))

	menuHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

// difficultyOptions are the presets offered by the start menu.
var difficultyOptions = []struct {
	preset config.DifficultyPreset
	label  string
}{
	{config.DifficultyEasy, "Easy (slower squares)"},
	{config.DifficultyNormal, "Normal"},
	{config.DifficultyHard, "Hard (faster squares)"},
	{config.DifficultyFixed, "Practice (no level progression)"},
}

// StartSelection holds the user's choice from the start menu.
type StartSelection struct {
	Preset config.DifficultyPreset
	Level  int // 1-based
}

// menuKeyMap defines the start menu bindings.
type menuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func defaultMenuKeyMap() menuKeyMap {
	return menuKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k", "w")),
		Down:   key.NewBinding(key.WithKeys("down", "j", "s")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Back:   key.NewBinding(key.WithKeys("esc", "b")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c")),
	}
}

// StartMenuModel lets users choose difficulty and then the starting level.
type StartMenuModel struct {
	cursor        int
	levelCursor   int
	inLevelSelect bool
	maxLevel      int
	width         int
	height        int
	keys          menuKeyMap
	selection     StartSelection
	choosing      bool
	quitting      bool
}

// NewStartMenuModel creates a start menu for a game with maxLevel levels.
func NewStartMenuModel(maxLevel, width, height int) StartMenuModel {
	return StartMenuModel{
		cursor:   1, // Normal
		maxLevel: max(maxLevel, 1),
		width:    width,
		height:   height,
		keys:     defaultMenuKeyMap(),
		choosing: true,
	}
}

// Init initializes the model.
func (m StartMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m StartMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m StartMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.inLevelSelect {
		return m.handleLevelSelectKey(msg)
	}
	return m.handleDifficultyKey(msg)
}

func (m StartMenuModel) handleDifficultyKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(difficultyOptions)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.inLevelSelect = true
		m.levelCursor = 0
	case key.Matches(msg, m.keys.Back):
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m StartMenuModel) handleLevelSelectKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.levelCursor < m.maxLevel-1 {
			m.levelCursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.choosing = false
		m.selection = StartSelection{
			Preset: difficultyOptions[m.cursor].preset,
			Level:  m.levelCursor + 1,
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.inLevelSelect = false
	}
	return m, nil
}

// View renders the current menu page.
func (m StartMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var items []string
	heading := "Select difficulty:"
	cursor := m.cursor
	if m.inLevelSelect {
		heading = "Select starting level:"
		cursor = m.levelCursor
		for i := range m.maxLevel {
			items = append(items, fmt.Sprintf("Level %d", i+1))
		}
	} else {
		for _, opt := range difficultyOptions {
			items = append(items, opt.label)
		}
	}

	var b strings.Builder
	b.WriteString(menuTitleStyle.Render("N E O N   D O D G E"))
	b.WriteString("\n\n")
	b.WriteString(heading)
	b.WriteString("\n\n")
	for i, item := range items {
		if i == cursor {
			b.WriteString(menuCursorStyle.Render("> " + item))
		} else {
			b.WriteString("  " + item)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(menuHelpStyle.Render("Enter: Select  |  Esc: Back  |  Q: Quit"))

	if m.width <= 0 || m.height <= 0 {
		return b.String()
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

// Selected returns the selection, or nil if still choosing.
func (m StartMenuModel) Selected() *StartSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m StartMenuModel) IsQuitting() bool {
	return m.quitting
}

// RunStartMenu shows the start menu and returns the selection, or nil when
// the user quits.
func RunStartMenu(maxLevel, width, height int) (*StartSelection, error) {
	model := NewStartMenuModel(maxLevel, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(StartMenuModel)
	if !ok || m.IsQuitting() {
		return nil, nil
	}
	return m.Selected(), nil
}
