// SPDX-License-Identifier: MPL-2.0

// Package tui renders the command tree as an interactive menu. It is a pure
// display layer: the synchronizer owns the tree, and the menu only keeps the
// name path of the group it is looking at, re-resolving it after every
// resynchronization so pruned groups fall back to the nearest surviving
// ancestor. Watcher notifications carry no payload; the menu reacts by
// running a synchronization pass on its own update loop, so tree reads and
// mutations never cross goroutines.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"scriptdeck/internal/menu"
)

type (
	// Deck wires the menu to its collaborators.
	Deck struct {
		// Sync owns the command tree.
		Sync *menu.Synchronizer
		// ScriptsDir is shown in the header.
		ScriptsDir string
		// Changes delivers one value per coalesced filesystem change burst.
		// The model runs the resynchronization pass itself when a value
		// arrives, inside Update, so the tree is never mutated off the
		// update loop. May be nil when watching is unavailable.
		Changes <-chan struct{}
		// OpenLocation opens the scripts directory in the OS file browser.
		OpenLocation func() error
	}

	// Model is the bubbletea model for the menu.
	Model struct {
		deck   Deck
		path   []string // name path of the group in view, root = empty
		cursor int
		status string
		keys   keyMap
		help   help.Model
	}

	treeChangedMsg struct{}

	scriptDoneMsg struct {
		name string
		err  error
	}

	keyMap struct {
		Up      key.Binding
		Down    key.Binding
		Enter   key.Binding
		Back    key.Binding
		Refresh key.Binding
		Open    key.Binding
		Quit    key.Binding
	}
)

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Back, k.Refresh, k.Open, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open/run")),
		Back:    key.NewBinding(key.WithKeys("esc", "backspace", "left"), key.WithHelp("esc", "back")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Open:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open location")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	groupStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6"))
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
)

// New creates the menu model.
func New(deck Deck) Model {
	return Model{
		deck: deck,
		keys: defaultKeyMap(),
		help: help.New(),
	}
}

// Init arms the change subscription.
func (m Model) Init() tea.Cmd {
	return waitForChange(m.deck.Changes)
}

func waitForChange(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return treeChangedMsg{}
	}
}

// current resolves the group in view from the root, dropping trailing path
// segments that no longer exist.
func (m *Model) current() *menu.Group {
	g := m.deck.Sync.Root()
	for i, name := range m.path {
		n := g.Child(name)
		sub, ok := n.(*menu.Group)
		if !ok {
			m.path = m.path[:i]
			return g
		}
		g = sub
	}
	return g
}

func (m *Model) clampCursor(n int) {
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Update handles key and collaboration messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case treeChangedMsg:
		// The pass runs here, on the update loop, never on the watcher's
		// goroutine: every tree mutation and every view read is serialized
		// through bubbletea's message handling.
		m.deck.Sync.Sync()
		m.current() // trims the path if a group was pruned
		m.clampCursor(m.current().Len())
		return m, waitForChange(m.deck.Changes)

	case scriptDoneMsg:
		if msg.err != nil {
			m.status = errStyle.Render(fmt.Sprintf("%s failed: %v", msg.name, msg.err))
		} else {
			m.status = statusStyle.Render(fmt.Sprintf("ran %s", msg.name))
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < m.current().Len()-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Back):
			if len(m.path) > 0 {
				m.path = m.path[:len(m.path)-1]
				m.cursor = 0
			}

		case key.Matches(msg, m.keys.Refresh):
			m.deck.Sync.Sync()
			m.clampCursor(m.current().Len())
			m.status = statusStyle.Render("refreshed")

		case key.Matches(msg, m.keys.Open):
			if m.deck.OpenLocation != nil {
				if err := m.deck.OpenLocation(); err != nil {
					m.status = errStyle.Render(err.Error())
				}
			}

		case key.Matches(msg, m.keys.Enter):
			children := m.current().Children()
			if m.cursor >= len(children) {
				break
			}
			switch n := children[m.cursor].(type) {
			case *menu.Group:
				m.path = append(m.path, n.Name())
				m.cursor = 0
			case *menu.Leaf:
				leaf := n
				m.status = statusStyle.Render(fmt.Sprintf("running %s...", leaf.Name()))
				return m, func() tea.Msg {
					return scriptDoneMsg{name: leaf.Name(), err: leaf.Invoke(context.Background())}
				}
			}
		}
	}
	return m, nil
}

// View renders the current group.
func (m Model) View() string {
	g := m.current()

	title := m.deck.ScriptsDir
	for _, seg := range m.path {
		title += "/" + seg
	}
	s := headerStyle.Render("scriptdeck") + "  " + statusStyle.Render(title) + "\n\n"

	children := g.Children()
	if len(children) == 0 {
		s += statusStyle.Render("  (no scripts)") + "\n"
	}
	for i, c := range children {
		label := c.Name()
		if _, ok := c.(*menu.Group); ok {
			label = groupStyle.Render(label + "/")
		}
		if i == m.cursor {
			s += cursorStyle.Render("> ") + label + "\n"
		} else {
			s += "  " + label + "\n"
		}
	}

	s += "\n" + m.help.View(m.keys)
	if m.status != "" {
		s += "\n" + m.status
	}
	return s
}
