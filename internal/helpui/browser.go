// Package helpui is the interactive help browser behind "cdp help
// --interactive": a sidebar of commands and topics next to a scrollable
// content pane.
package helpui

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/nicoster/chrome-devtools-cli-sub002/internal/help"
	"github.com/nicoster/chrome-devtools-cli-sub002/internal/schema"
)

// Run starts the browser. It requires an interactive terminal on both ends.
func Run(gen *help.Generator, registry *schema.Registry) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("interactive help requires an interactive terminal")
	}

	m := newModel(gen, registry)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

type itemKind int

const (
	itemHeader itemKind = iota
	itemCommand
	itemTopic
)

type sidebarItem struct {
	kind  itemKind
	name  string
	label string
}

type keymap struct {
	Up   key.Binding
	Down key.Binding
	Tab  key.Binding
	Quit key.Binding
}

func defaultKeymap() keymap {
	return keymap{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "previous entry")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "next entry")),
		Tab:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch focus")),
		Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type model struct {
	gen          *help.Generator
	items        []sidebarItem
	cursor       int
	focusSidebar bool
	viewport     viewport.Model
	keys         keymap
	width        int
	height       int
	ready        bool
}

func newModel(gen *help.Generator, registry *schema.Registry) model {
	items := buildItems(gen, registry)

	cursor := 0
	for i, it := range items {
		if it.kind != itemHeader {
			cursor = i
			break
		}
	}

	return model{
		gen:          gen,
		items:        items,
		cursor:       cursor,
		focusSidebar: true,
		keys:         defaultKeymap(),
	}
}

// buildItems groups commands by category, then appends topics.
func buildItems(gen *help.Generator, registry *schema.Registry) []sidebarItem {
	grouped := make(map[help.CommandCategory][]string)
	for _, def := range registry.All() {
		cat := help.CategoryOf(def.Name)
		grouped[cat] = append(grouped[cat], def.Name)
	}

	var items []sidebarItem
	for _, cat := range help.CategoryOrder() {
		names := grouped[cat]
		if len(names) == 0 {
			continue
		}
		sort.Strings(names)
		items = append(items, sidebarItem{kind: itemHeader, label: cat.String()})
		for _, n := range names {
			items = append(items, sidebarItem{kind: itemCommand, name: n, label: n})
		}
	}

	items = append(items, sidebarItem{kind: itemHeader, label: "guides"})
	for _, t := range gen.Topics() {
		items = append(items, sidebarItem{kind: itemTopic, name: t.Name, label: t.Name})
	}
	return items
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentWidth := m.width - m.sidebarWidth() - 3
		if contentWidth < 10 {
			contentWidth = 10
		}
		if !m.ready {
			m.viewport = viewport.New(contentWidth, m.height-2)
			m.ready = true
		} else {
			m.viewport.Width = contentWidth
			m.viewport.Height = m.height - 2
		}
		m.refreshContent()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.focusSidebar = !m.focusSidebar
			return m, nil
		case key.Matches(msg, m.keys.Up):
			if m.focusSidebar {
				m.moveCursor(-1)
				return m, nil
			}
		case key.Matches(msg, m.keys.Down):
			if m.focusSidebar {
				m.moveCursor(1)
				return m, nil
			}
		}
	}

	if m.ready && !m.focusSidebar {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) moveCursor(delta int) {
	next := m.cursor
	for {
		next += delta
		if next < 0 || next >= len(m.items) {
			return
		}
		if m.items[next].kind != itemHeader {
			break
		}
	}
	m.cursor = next
	m.refreshContent()
}

func (m *model) refreshContent() {
	if !m.ready || m.cursor >= len(m.items) {
		return
	}
	item := m.items[m.cursor]
	switch item.kind {
	case itemCommand:
		m.viewport.SetContent(m.gen.CommandHelp(item.name))
	case itemTopic:
		m.viewport.SetContent(m.gen.TopicHelp(item.name))
	}
	m.viewport.GotoTop()
}

func (m model) sidebarWidth() int {
	w := 18
	for _, it := range m.items {
		if len(it.label)+4 > w {
			w = len(it.label) + 4
		}
	}
	return w
}

func (m model) View() string {
	if !m.ready {
		return "Loading..."
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75"))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	selectedStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114"))

	var sidebar []string
	for i, it := range m.items {
		switch {
		case it.kind == itemHeader:
			sidebar = append(sidebar, mutedStyle.Render(it.label))
		case i == m.cursor:
			sidebar = append(sidebar, selectedStyle.Render("> "+it.label))
		default:
			sidebar = append(sidebar, "  "+it.label)
		}
	}

	side := lipgloss.NewStyle().
		Width(m.sidebarWidth()).
		Height(m.height - 2).
		Render(strings.Join(sidebar, "\n"))

	body := lipgloss.JoinHorizontal(lipgloss.Top, side, " ", m.viewport.View())

	focus := "sidebar"
	if !m.focusSidebar {
		focus = "content"
	}
	footer := mutedStyle.Render(fmt.Sprintf(
		"up/down navigate - tab focus (%s) - q quit", focus))

	return lipgloss.JoinVertical(lipgloss.Left, headerStyle.Render("cdp help"), body, footer)
}
