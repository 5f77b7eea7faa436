package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/calebthorne/sociograph/pkg/thread"
)

// CommentItem is one thread node in the browser list.
type CommentItem struct {
	Node thread.Node
}

func (i CommentItem) FilterValue() string { return i.Node.Comment.Content }

func (i CommentItem) Title() string {
	indent := strings.Repeat("  ", i.Node.Depth)
	marker := "●"
	if i.Node.Depth > 0 {
		marker = "└"
	}
	return fmt.Sprintf("%s%s #%d %s",
		indent,
		mutedStyle.Render(marker),
		i.Node.Comment.ID,
		firstLine(i.Node.Comment.Content, 56),
	)
}

func (i CommentItem) Description() string {
	indent := strings.Repeat("  ", i.Node.Depth)
	return indent + mutedStyle.Render(fmt.Sprintf("  user %d · depth %d · %s",
		i.Node.Comment.AuthorID,
		i.Node.Depth,
		i.Node.Comment.CreatedAt.Format("2006-01-02 15:04"),
	))
}

// CommentItemDelegate renders CommentItems with their tree indentation.
type CommentItemDelegate struct{}

func (d CommentItemDelegate) Height() int                             { return 2 }
func (d CommentItemDelegate) Spacing() int                            { return 0 }
func (d CommentItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d CommentItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(CommentItem)
	if !ok {
		return
	}

	var s string
	if index == m.Index() {
		s = selectedItemStyle.Render("▸ "+i.Title()) + "\n" + selectedItemStyle.Render("  "+i.Description())
	} else {
		s = unselectedItemStyle.Render(i.Title()) + "\n" + unselectedItemStyle.Render(i.Description())
	}

	_, _ = fmt.Fprint(w, s)
}

// firstLine shortens content to a single display line.
func firstLine(content string, max int) string {
	if idx := strings.IndexByte(content, '\n'); idx >= 0 {
		content = content[:idx]
	}
	runes := []rune(content)
	if len(runes) > max {
		return string(runes[:max-1]) + "…"
	}
	return content
}
