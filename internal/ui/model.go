// Package ui is the interactive terminal view over a notes store: an add
// form, a search box, a row of tag quick filters and the note list with
// inline editing. Rendering is a pure function of the store and the model.
package ui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aretw0/notes/pkg/core"
)

type focus int

const (
	focusTitle focus = iota
	focusBody
	focusTags
	focusSearch
	focusList
	focusEditTitle
	focusEditBody
	focusEditTags
)

var (
	formOrder = []focus{focusTitle, focusBody, focusTags, focusSearch, focusList}
	editOrder = []focus{focusEditTitle, focusEditBody, focusEditTags}
)

// storeEventMsg carries a store change into the update loop.
type storeEventMsg core.Event

// slotChangedMsg reports that the persistent slot changed outside the store.
type slotChangedMsg core.Event

// Options configures a Model.
type Options struct {
	// Events receives store changes (see Notify). Optional.
	Events <-chan core.Event
	// SlotChanges receives external slot changes; each one reloads the store. Optional.
	SlotChanges <-chan core.Event
	Theme       Theme
}

// Model is the bubbletea model of the notes view.
type Model struct {
	ctx   context.Context
	store *core.Store
	opts  Options

	keys   keyMap
	help   help.Model
	styles Styles

	title  textinput.Model
	body   textarea.Model
	tags   textinput.Model
	search textinput.Model

	editTitle textinput.Model
	editBody  textarea.Model
	editTags  textinput.Model
	session   core.EditSession

	focus  focus
	cursor int
	alert  string
	width  int
}

// Notify adapts a channel into a core.Config observer. Events are dropped
// when the channel is full; the view re-reads the store on every message,
// so a dropped event only delays a repaint.
func Notify(ch chan<- core.Event) func(core.Event) {
	return func(e core.Event) {
		select {
		case ch <- e:
		default:
		}
	}
}

// New creates the view over store.
func New(ctx context.Context, store *core.Store, opts Options) Model {
	if opts.Theme.Name == "" {
		opts.Theme = DarkTheme
	}

	m := Model{
		ctx:       ctx,
		store:     store,
		opts:      opts,
		keys:      defaultKeyMap(),
		help:      help.New(),
		styles:    NewStyles(opts.Theme),
		title:     newInput("Title"),
		body:      newArea("Body"),
		tags:      newInput("Tags (comma separated)"),
		search:    newInput("Search notes..."),
		editTitle: newInput(""),
		editBody:  newArea(""),
		editTags:  newInput(""),
		width:     80,
	}
	m.setFocus(focusTitle)
	return m
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	ti.Width = 60
	ti.Prompt = "> "
	return ti
}

func newArea(placeholder string) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(60)
	ta.SetHeight(3)
	return ta
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitFor(m.opts.Events, false), waitFor(m.opts.SlotChanges, true))
}

// waitFor turns the next value of ch into a message.
func waitFor(ch <-chan core.Event, external bool) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		e, ok := <-ch
		if !ok {
			return nil
		}
		if external {
			return slotChangedMsg(e)
		}
		return storeEventMsg(e)
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.resize()
		return m, nil

	case storeEventMsg:
		m.clampCursor()
		return m, waitFor(m.opts.Events, false)

	case slotChangedMsg:
		m.store.Reload(m.ctx)
		m.clampCursor()
		return m, waitFor(m.opts.SlotChanges, true)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateFocused(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	// A pending alert blocks everything until dismissed.
	if m.alert != "" {
		m.alert = ""
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Next):
		return m, m.cycleFocus(1)
	case key.Matches(msg, m.keys.Prev):
		return m, m.cycleFocus(-1)
	case key.Matches(msg, m.keys.Submit):
		if m.session.Active() {
			return m, m.saveEdit()
		}
		return m, m.addNote()
	case key.Matches(msg, m.keys.Cancel):
		if m.session.Active() {
			m.discardEdit()
			return m, nil
		}
		return m, m.setFocus(focusList)
	}

	if m.focus == focusList {
		return m.handleListKey(msg)
	}
	return m.updateFocused(msg)
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Removals and edits can shrink the list under a stale cursor.
	m.clampCursor()
	visible := m.visible()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Edit):
		if m.cursor < len(visible) {
			return m, m.startEdit(visible[m.cursor])
		}
	case key.Matches(msg, m.keys.Delete):
		if m.cursor < len(visible) {
			if err := m.store.Remove(m.ctx, visible[m.cursor].ID); err != nil {
				m.alert = err.Error()
			}
		}
	case key.Matches(msg, m.keys.NextTag):
		m.selectNextTag()
	case key.Matches(msg, m.keys.ClearTag):
		m.search.SetValue("")
		m.clampCursor()
	case key.Matches(msg, m.keys.Search):
		return m, m.setFocus(focusSearch)
	}
	return m, nil
}

// updateFocused forwards msg to the focused input.
func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusTitle:
		m.title, cmd = m.title.Update(msg)
	case focusBody:
		m.body, cmd = m.body.Update(msg)
	case focusTags:
		m.tags, cmd = m.tags.Update(msg)
	case focusSearch:
		m.search, cmd = m.search.Update(msg)
		m.clampCursor()
	case focusEditTitle:
		m.editTitle, cmd = m.editTitle.Update(msg)
	case focusEditBody:
		m.editBody, cmd = m.editBody.Update(msg)
	case focusEditTags:
		m.editTags, cmd = m.editTags.Update(msg)
	}
	return m, cmd
}

func (m *Model) addNote() tea.Cmd {
	_, err := m.store.Add(m.ctx, m.title.Value(), m.body.Value(), m.tags.Value())
	if err != nil {
		m.alert = alertText(err)
		return nil
	}
	m.title.Reset()
	m.body.Reset()
	m.tags.Reset()
	m.clampCursor()
	return m.setFocus(focusTitle)
}

func (m *Model) startEdit(n core.Note) tea.Cmd {
	m.session.Start(n)
	m.editTitle.SetValue(m.session.Title)
	m.editBody.SetValue(m.session.Body)
	m.editTags.SetValue(m.session.Tags)
	return m.setFocus(focusEditTitle)
}

func (m *Model) saveEdit() tea.Cmd {
	m.session.Title = m.editTitle.Value()
	m.session.Body = m.editBody.Value()
	m.session.Tags = m.editTags.Value()

	if _, err := m.session.Save(m.ctx, m.store); err != nil {
		m.alert = alertText(err)
		return nil
	}
	m.clampCursor()
	return m.setFocus(focusList)
}

func (m *Model) discardEdit() {
	m.session.Discard()
	m.editTitle.Reset()
	m.editBody.Reset()
	m.editTags.Reset()
	m.clampCursor()
	m.setFocus(focusList)
}

func alertText(err error) string {
	if errors.Is(err, core.ErrValidation) {
		return "Title and Body are required"
	}
	return err.Error()
}

// selectNextTag sets the search term to the tag after the current one.
func (m *Model) selectNextTag() {
	tags := m.store.UniqueTags()
	if len(tags) == 0 {
		return
	}
	next := 0
	for i, t := range tags {
		if t == m.search.Value() {
			next = (i + 1) % len(tags)
			break
		}
	}
	m.search.SetValue(tags[next])
	m.clampCursor()
}

func (m *Model) cycleFocus(step int) tea.Cmd {
	order := formOrder
	if m.session.Active() {
		order = editOrder
	}
	i := 0
	for j, f := range order {
		if f == m.focus {
			i = j
			break
		}
	}
	i = (i + step + len(order)) % len(order)
	return m.setFocus(order[i])
}

func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f

	m.title.Blur()
	m.body.Blur()
	m.tags.Blur()
	m.search.Blur()
	m.editTitle.Blur()
	m.editBody.Blur()
	m.editTags.Blur()

	switch f {
	case focusTitle:
		return m.title.Focus()
	case focusBody:
		return m.body.Focus()
	case focusTags:
		return m.tags.Focus()
	case focusSearch:
		return m.search.Focus()
	case focusEditTitle:
		return m.editTitle.Focus()
	case focusEditBody:
		return m.editBody.Focus()
	case focusEditTags:
		return m.editTags.Focus()
	}
	return nil
}

func (m *Model) resize() {
	w := m.width - 6
	if w < 20 {
		w = 20
	}
	for _, ti := range []*textinput.Model{&m.title, &m.tags, &m.search, &m.editTitle, &m.editTags} {
		ti.Width = w
	}
	m.body.SetWidth(w)
	m.editBody.SetWidth(w)
	m.help.Width = m.width
}

// visible returns the notes matching the current search term.
func (m Model) visible() []core.Note {
	return m.store.Search(m.search.Value())
}

func (m *Model) clampCursor() {
	n := len(m.visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// SearchTerm returns the current search box content.
func (m Model) SearchTerm() string {
	return m.search.Value()
}

// Alert returns the blocking message on screen, if any.
func (m Model) Alert() string {
	return m.alert
}

// Editing reports the id of the note under inline edit.
func (m Model) Editing() (int64, bool) {
	return m.session.EditingID()
}
