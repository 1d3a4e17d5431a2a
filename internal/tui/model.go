// Package tui renders the event detail view in a terminal.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"eventroster/internal/domain"
)

// focus identifies which element receives key presses.
type focus int

const (
	focusRoster focus = iota
	focusSearch
)

// loadedMsg carries the result of a Load.
type loadedMsg struct {
	state domain.ViewState
	err   error
}

// cancelledMsg carries the result of a Cancel.
type cancelledMsg struct {
	state domain.ViewState
	err   error
}

// Model is the bubbletea model for one event detail view.
type Model struct {
	ctx         context.Context
	view        domain.DetailView
	takeNav     func() (string, bool)
	eventID     string
	state       domain.ViewState
	search      textinput.Model
	focused     focus
	cursor      int
	cancelling  bool
	notice      string
	navigatedTo string
	width       int
}

// New creates a model for eventID. takeNav reports navigation requested by the view; it may be
// nil when the view never navigates.
func New(ctx context.Context, view domain.DetailView, takeNav func() (string, bool), eventID string) Model {
	ti := textinput.New()
	ti.Placeholder = "Search participants..."
	ti.Prompt = "/ "
	ti.Width = 30
	ti.CharLimit = 200

	return Model{
		ctx:     ctx,
		view:    view,
		takeNav: takeNav,
		eventID: eventID,
		state:   domain.ViewState{Status: domain.StatusLoadingEvent, EventID: eventID, BackLink: domain.EventListPath},
		search:  ti,
	}
}

// NavigatedTo returns where the user asked to go when the program ended, if anywhere.
func (m Model) NavigatedTo() string {
	return m.navigatedTo
}

// State returns the last view state the model rendered.
func (m Model) State() domain.ViewState {
	return m.state
}

// Init starts loading the event.
func (m Model) Init() tea.Cmd {
	return m.load()
}

func (m Model) load() tea.Cmd {
	view, ctx, id := m.view, m.ctx, m.eventID
	return func() tea.Msg {
		state, err := view.Load(ctx, id)
		return loadedMsg{state: state, err: err}
	}
}

func (m Model) cancel(id domain.InscriptionID) tea.Cmd {
	view, ctx := m.view, m.ctx
	return func() tea.Msg {
		state, err := view.Cancel(ctx, id)
		return cancelledMsg{state: state, err: err}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case loadedMsg:
		if errors.Is(msg.err, domain.ErrStaleLoad) {
			return m, nil
		}
		m = m.setState(msg.state)
		return m, nil

	case cancelledMsg:
		m.cancelling = false
		m = m.setState(msg.state)
		switch {
		case msg.err == nil:
			m.notice = ""
		case errors.Is(msg.err, domain.ErrForbidden):
			m.notice = "You cannot cancel this inscription."
		case errors.Is(msg.err, domain.ErrNotInRoster):
			m.notice = "That inscription is no longer listed."
		case errors.Is(msg.err, domain.ErrInvalidInput):
			m.notice = "Cancellation is not possible right now."
		default:
			// The view banner explains upstream failures.
			m.notice = ""
		}
		if m.takeNav != nil {
			if to, ok := m.takeNav(); ok {
				m.navigatedTo = to
				return m, tea.Quit
			}
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.focused == focusSearch {
			return m.updateSearch(msg)
		}
		return m.updateRoster(msg)
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "tab":
		m.focused = focusRoster
		m.search.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.state.SearchTerm {
		m = m.setState(m.view.SetSearchTerm(m.search.Value()))
	}
	return m, cmd
}

func (m Model) updateRoster(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "b":
		m.navigatedTo = domain.EventListPath
		return m, tea.Quit
	case "r":
		if m.loading() {
			return m, nil
		}
		m.notice = ""
		m.state.Status = domain.StatusLoadingEvent
		return m, m.load()
	}

	if m.state.Status != domain.StatusLoaded {
		return m, nil
	}

	switch msg.String() {
	case "/", "tab":
		m.focused = focusSearch
		return m, m.search.Focus()
	case "esc":
		m.search.SetValue("")
		m = m.setState(m.view.ClearSearchTerm())
	case "j", "down":
		if m.cursor < len(m.state.Rows)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "c", "x":
		if m.cancelling || len(m.state.Rows) == 0 {
			return m, nil
		}
		row := m.state.Rows[m.cursor]
		if !row.CanCancel {
			m.notice = "You cannot cancel this inscription."
			return m, nil
		}
		m.cancelling = true
		m.notice = "Cancelling " + row.Inscription.Username + "..."
		return m, m.cancel(row.Inscription.ID)
	}
	return m, nil
}

func (m Model) setState(state domain.ViewState) Model {
	m.state = state
	if m.cursor >= len(state.Rows) {
		m.cursor = max(len(state.Rows)-1, 0)
	}
	return m
}

func (m Model) loading() bool {
	return m.state.Status == domain.StatusLoadingEvent || m.state.Status == domain.StatusLoadingRoster
}

// View renders the model.
func (m Model) View() string {
	switch m.state.Status {
	case domain.StatusError:
		return m.renderError()
	case domain.StatusLoaded:
		return m.renderLoaded()
	default:
		return metaStyle.Render("Loading event "+m.eventID+"...") + "\n"
	}
}

func (m Model) renderError() string {
	msg := "Failed to load event details."
	if m.state.Error != nil {
		msg = m.state.Error.Message
	}
	var b strings.Builder
	b.WriteString(errorStyle.Render(msg))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("[b] Back to Events  [r] retry  [ctrl+c] quit"))
	b.WriteString("\n")
	return boxStyle.Render(b.String()) + "\n"
}

func (m Model) renderLoaded() string {
	var b strings.Builder
	if ev := m.state.Event; ev != nil {
		b.WriteString(titleStyle.Render(ev.Name))
		b.WriteString("\n")
		b.WriteString(metaStyle.Render(fmt.Sprintf("%s - %s  |  %s", ev.StartDate, ev.EndDate, ev.Place)))
		b.WriteString("\n")
		if ev.Description != "" {
			desc := descriptionStyle
			if m.width > 4 {
				desc = desc.Width(m.width - 4)
			}
			b.WriteString(desc.Render(ev.Description))
			b.WriteString("\n")
		}
		b.WriteString(metaStyle.Render("Image: " + m.state.EventImage))
		b.WriteString("\n\n")
	}

	b.WriteString(m.search.View())
	b.WriteString("\n\n")
	b.WriteString("Participants ")
	b.WriteString(badgeStyle.Render(fmt.Sprintf("%d", m.state.ParticipantCount)))
	b.WriteString("\n")

	if m.state.Banner != nil {
		b.WriteString(bannerStyle.Render(m.state.Banner.Message))
		b.WriteString("\n")
	}

	switch {
	case !m.state.RosterAvailable:
	case len(m.state.Rows) == 0:
		b.WriteString(metaStyle.Render("No participants found"))
		b.WriteString("\n")
	default:
		for i, row := range m.state.Rows {
			b.WriteString(m.renderRow(i, row))
			b.WriteString("\n")
		}
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(bannerStyle.Render(m.notice))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("[/] search  [j/k] move  [c] cancel  [r] reload  [b] Back to Events"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderRow(i int, row domain.RosterRow) string {
	prefix := "  "
	name := row.Inscription.Username
	if row.IsViewer {
		name = viewerStyle.Render(name + " (you)")
	}
	line := fmt.Sprintf("%-24s %s", name, row.Inscription.RegisteredAt)
	if i == m.cursor && m.focused == focusRoster {
		prefix = "> "
		line = selectedStyle.Render(line)
	}
	if row.CanCancel {
		line += " " + cancelStyle.Render("Cancel")
	}
	return prefix + line
}
