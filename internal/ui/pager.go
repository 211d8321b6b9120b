package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ibstat/cli/internal/ui/style"
)

// footerHeight is the number of lines reserved below the viewport.
const footerHeight = 1

// pagerModel is a read-only scrollable view over pre-rendered content.
type pagerModel struct {
	content  string
	viewport viewport.Model
	ready    bool
}

func newPagerModel(content string) pagerModel {
	return pagerModel{content: content}
}

func (m pagerModel) Init() tea.Cmd {
	return nil
}

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		height := max(msg.Height-footerHeight, 1)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m pagerModel) View() string {
	if !m.ready {
		return ""
	}
	footer := style.Muted(fmt.Sprintf("q to quit  %3.0f%%", m.viewport.ScrollPercent()*100))
	return m.viewport.View() + "\n" + footer
}

// RunPager shows content in a full-screen viewport until the user quits.
func RunPager(content string, out *os.File) error {
	p := tea.NewProgram(
		newPagerModel(content),
		tea.WithAltScreen(),
		tea.WithOutput(out),
		tea.WithInput(os.Stdin),
	)
	_, err := p.Run()
	return err
}
