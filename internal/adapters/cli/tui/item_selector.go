package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"yt2reader/internal/domain"
)

// ItemSelectorModel is the bubbletea model for curating the working list.
// Every item starts checked; unchecking drops it from the list.
type ItemSelectorModel struct {
	items     []domain.Item
	selected  map[string]bool // keyed by URL
	cursor    int
	cancelled bool
}

// NewItemSelectorModel creates a selector with all items kept by default.
func NewItemSelectorModel(items []domain.Item) ItemSelectorModel {
	selected := make(map[string]bool, len(items))
	for _, it := range items {
		selected[it.URL] = true
	}
	return ItemSelectorModel{
		items:    items,
		selected: selected,
	}
}

func (m ItemSelectorModel) Init() tea.Cmd {
	return nil
}

func (m ItemSelectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case " ", "x":
			url := m.items[m.cursor].URL
			m.selected[url] = !m.selected[url]
		case "a":
			for _, it := range m.items {
				m.selected[it.URL] = true
			}
		case "n":
			m.selected = make(map[string]bool)
		case "enter":
			return m, tea.Quit
		case "q", "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m ItemSelectorModel) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Select videos to keep:"))
	sb.WriteString("\n\n")

	for i, it := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		checkbox := "[ ]"
		style := uncheckedStyle
		if m.selected[it.URL] {
			checkbox = "[x]"
			style = checkedStyle
		}

		line := fmt.Sprintf("%s%s %s", cursor, checkbox, FormatItemLine(it, 40))
		sb.WriteString(style.Render(line))
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("\n%d of %d kept\n", m.countSelected(), len(m.items)))
	sb.WriteString("(space=toggle, a=all, n=none, enter=confirm, q=cancel)\n")

	return sb.String()
}

func (m ItemSelectorModel) countSelected() int {
	count := 0
	for _, sel := range m.selected {
		if sel {
			count++
		}
	}
	return count
}

// Cancelled returns true if the user backed out without confirming.
func (m ItemSelectorModel) Cancelled() bool {
	return m.cancelled
}

// KeptURLs returns the URLs still checked, in list order.
func (m ItemSelectorModel) KeptURLs() []string {
	var urls []string
	for _, it := range m.items {
		if m.selected[it.URL] {
			urls = append(urls, it.URL)
		}
	}
	return urls
}

// RunItemSelector displays the selector and returns the kept URLs, or
// (nil, nil) when the user cancelled.
func RunItemSelector(items []domain.Item) ([]string, error) {
	model := NewItemSelectorModel(items)
	p := tea.NewProgram(model)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	result := finalModel.(ItemSelectorModel)
	if result.Cancelled() {
		return nil, nil
	}
	return result.KeptURLs(), nil
}
