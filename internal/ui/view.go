package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/aretw0/notes/pkg/core"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Header.Render("Note Taking App"))
	b.WriteString("\n")

	if m.alert != "" {
		b.WriteString(m.styles.Alert.Render(m.alert))
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render("press any key to dismiss"))
		b.WriteString("\n")
	}

	b.WriteString(m.viewForm())
	b.WriteString(m.styles.Section.Render("Search"))
	b.WriteString("\n")
	b.WriteString(m.search.View())
	b.WriteString("\n")
	b.WriteString(m.viewTags())
	b.WriteString(m.viewNotes())
	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(m.currentHelp()))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewForm() string {
	rows := []string{
		m.styles.Section.Render("Add Note"),
		m.title.View(),
		m.body.View(),
		m.tags.View(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n"
}

func (m Model) viewTags() string {
	tags := m.store.UniqueTags()
	if len(tags) == 0 {
		return ""
	}
	active := m.search.Value()
	chips := make([]string, 0, len(tags))
	for _, t := range tags {
		style := m.styles.Tag
		if t == active {
			style = m.styles.ActiveTag
		}
		chips = append(chips, style.Render(t))
	}
	return m.styles.Section.Render("Search by Tags") + "\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, chips...) + "\n"
}

func (m Model) viewNotes() string {
	notes := m.visible()
	if len(notes) == 0 {
		return m.styles.Muted.Render("No notes.") + "\n"
	}

	editID, editing := m.session.EditingID()
	cards := make([]string, 0, len(notes))
	for i, n := range notes {
		if editing && n.ID == editID {
			cards = append(cards, m.viewEditCard())
			continue
		}
		cards = append(cards, m.viewCard(n, i == m.cursor && m.focus == focusList))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func (m Model) viewCard(n core.Note, selected bool) string {
	style := m.styles.Card
	switch {
	case m.store.IsPending(n.ID):
		style = m.styles.Fading
	case selected:
		style = m.styles.Selected
	}

	lines := []string{
		fmt.Sprintf("%s %s", m.styles.Label.Render("Title:"), n.Title),
		fmt.Sprintf("%s %s", m.styles.Label.Render("Desc:"), n.Body),
		fmt.Sprintf("%s %s", m.styles.Label.Render("Tags:"), strings.Join(n.Tags, ", ")),
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (m Model) viewEditCard() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Label.Render("Editing"),
		m.editTitle.View(),
		m.editBody.View(),
		m.editTags.View(),
	)
	return m.styles.Selected.Render(body)
}

func (m Model) currentHelp() []key.Binding {
	switch {
	case m.session.Active():
		return m.keys.editHelp()
	case m.focus == focusList:
		return m.keys.listHelp()
	default:
		return m.keys.formHelp()
	}
}
