package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/calebthorne/sociograph/pkg/social"
	"github.com/calebthorne/sociograph/pkg/thread"
)

// BrowserMode represents the current mode of the thread browser
type BrowserMode int

const (
	ModeLoading BrowserMode = iota
	ModeList
	ModeDetail
	ModeError
)

// BrowserModel is the Bubbletea model for the interactive thread browser
type BrowserModel struct {
	mode     BrowserMode
	list     list.Model
	store    social.Store
	postID   int64
	maxDepth int
	thread   *thread.Thread
	selected *thread.Node
	err      error
	width    int
	height   int
}

// NewBrowserModel creates a thread browser for a post
func NewBrowserModel(store social.Store, postID int64, maxDepth int) BrowserModel {
	l := list.New([]list.Item{}, CommentItemDelegate{}, 0, 0)
	l.Title = fmt.Sprintf("Thread for post %d", postID)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle

	return BrowserModel{
		mode:     ModeLoading,
		list:     l,
		store:    store,
		postID:   postID,
		maxDepth: maxDepth,
	}
}

// Init initializes the model
func (m BrowserModel) Init() tea.Cmd {
	return tea.Batch(
		loadThreadCmd(m.store, m.postID, m.maxDepth),
		tea.EnterAltScreen,
	)
}

// Messages
type threadLoadedMsg struct {
	thread *thread.Thread
}

type errorMsg struct {
	err error
}

// Commands
func loadThreadCmd(store social.Store, postID int64, maxDepth int) tea.Cmd {
	return func() tea.Msg {
		builder := thread.NewBuilder(store, thread.Config{MaxDepth: maxDepth})
		t, err := builder.Build(context.Background(), postID)
		if err != nil {
			return errorMsg{err: fmt.Errorf("failed to build thread: %w", err)}
		}
		return threadLoadedMsg{thread: t}
	}
}

// Update handles messages
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case threadLoadedMsg:
		m.thread = msg.thread
		items := make([]list.Item, len(msg.thread.Nodes))
		for i, node := range msg.thread.Nodes {
			items[i] = CommentItem{Node: node}
		}
		m.list.SetItems(items)
		m.mode = ModeList
		return m, nil

	case errorMsg:
		m.mode = ModeError
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case ModeList:
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "enter":
				if item, ok := m.list.SelectedItem().(CommentItem); ok {
					node := item.Node
					m.selected = &node
					m.mode = ModeDetail
				}
				return m, nil
			}

		case ModeDetail:
			switch msg.String() {
			case "ctrl+c", "q", "esc", "enter":
				m.mode = ModeList
				m.selected = nil
				return m, nil
			}

		case ModeError:
			switch msg.String() {
			case "ctrl+c", "q", "enter":
				return m, tea.Quit
			}
		}
	}

	if m.mode == ModeList {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the UI
func (m BrowserModel) View() string {
	switch m.mode {
	case ModeLoading:
		return infoStyle.Render("Loading thread…")

	case ModeList:
		help := helpStyle.Render(
			FormatKey("↑/↓", "navigate") + " • " +
				FormatKey("enter", "inspect") + " • " +
				FormatKey("q", "quit"),
		)
		view := lipgloss.JoinVertical(lipgloss.Left, m.list.View(), help)
		if m.thread != nil && m.thread.Truncated {
			view = lipgloss.JoinVertical(lipgloss.Left,
				view,
				warningStyle.Render(fmt.Sprintf("⚠ truncated at depth %d", m.maxDepth)),
			)
		}
		return view

	case ModeDetail:
		if m.selected == nil {
			return ""
		}
		c := m.selected.Comment
		detail := titleStyle.Render(fmt.Sprintf("Comment #%d", c.ID)) + "\n\n" +
			authorStyle.Render(fmt.Sprintf("user %d", c.AuthorID)) +
			mutedStyle.Render(" · "+c.CreatedAt.Format("2006-01-02 15:04:05")) +
			mutedStyle.Render(fmt.Sprintf(" · depth %d · path %v", m.selected.Depth, m.selected.Path)) +
			"\n\n" + c.Content + "\n\n" +
			helpStyle.Render(FormatKey("esc/enter", "back"))

		return lipgloss.Place(
			m.width,
			m.height,
			lipgloss.Center,
			lipgloss.Center,
			boxStyle.Render(detail),
		)

	case ModeError:
		msg := titleStyle.Render("Failed to load thread") + "\n\n" +
			dangerStyle.Render(m.err.Error()) + "\n\n" +
			helpStyle.Render(FormatKey("enter/q", "exit"))

		return lipgloss.Place(
			m.width,
			m.height,
			lipgloss.Center,
			lipgloss.Center,
			errorBoxStyle.Render(msg),
		)
	}

	return "Unknown mode"
}

// RunThreadBrowser starts the interactive thread browser
func RunThreadBrowser(store social.Store, postID int64, maxDepth int) error {
	p := tea.NewProgram(NewBrowserModel(store, postID, maxDepth))
	_, err := p.Run()
	return err
}
