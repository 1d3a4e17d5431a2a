package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventroster/internal/domain"
	"eventroster/internal/services"
)

type stubEvents map[string]domain.Event

func (s stubEvents) GetByID(_ context.Context, id string) (*domain.Event, error) {
	e, ok := s[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &e, nil
}

type stubInscriptions struct {
	all       []domain.Inscription
	listErr   error
	deleteErr error
	deleted   []domain.InscriptionID
}

func (s *stubInscriptions) ListAll(context.Context) ([]domain.Inscription, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return append([]domain.Inscription(nil), s.all...), nil
}

func (s *stubInscriptions) Delete(_ context.Context, id domain.InscriptionID) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, id)
	return nil
}

func newTestModel(t *testing.T, viewer domain.Viewer, eventID string, ins *stubInscriptions) Model {
	t.Helper()
	nav := &services.RecordingNavigator{}
	view := services.NewDetailView(services.DetailViewDeps{
		Events: stubEvents{"e1": {
			ID: "e1", Name: "Conf", StartDate: "2024-06-01", EndDate: "2024-06-02",
			Place: "Madrid", Description: "Yearly conference",
		}},
		Inscriptions: ins,
		Navigator:    nav,
		Viewer:       viewer,
	})
	return New(context.Background(), view, nav.Take, eventID)
}

func defaultInscriptions() *stubInscriptions {
	return &stubInscriptions{all: []domain.Inscription{
		{ID: "1", EventName: "Conf", Username: "alice", RegisteredAt: "2024-05-01"},
		{ID: "2", EventName: "Conf", Username: "bob", RegisteredAt: "2024-05-02"},
		{ID: "3", EventName: "Other", Username: "carol"},
	}}
}

// run executes cmd and feeds its message back into the model.
func run(t *testing.T, m Model, cmd tea.Cmd) (Model, tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	next, nextCmd := m.Update(cmd())
	return next.(Model), nextCmd
}

func press(m Model, key string) (Model, tea.Cmd) {
	var msg tea.KeyMsg
	switch key {
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+c":
		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModel_LoadAndRender(t *testing.T) {
	m := newTestModel(t, domain.Viewer{Username: "alice"}, "e1", defaultInscriptions())
	assert.Contains(t, m.View(), "Loading event e1")

	m, _ = run(t, m, m.Init())
	require.Equal(t, domain.StatusLoaded, m.State().Status)

	out := m.View()
	assert.Contains(t, out, "Conf")
	assert.Contains(t, out, "2024-06-01 - 2024-06-02")
	assert.Contains(t, out, "Madrid")
	assert.Contains(t, out, "Yearly conference")
	assert.Contains(t, out, domain.PlaceholderImage)
	assert.Contains(t, out, "alice (you)")
	assert.Contains(t, out, "bob")
	assert.NotContains(t, out, "carol")
	assert.Contains(t, out, "Participants")
	assert.Equal(t, 2, m.State().ParticipantCount)
}

func TestModel_UnknownEventShowsErrorScreen(t *testing.T) {
	m := newTestModel(t, domain.Viewer{Username: "alice"}, "nope", defaultInscriptions())
	m, _ = run(t, m, m.Init())

	out := m.View()
	assert.Contains(t, out, "Event not found.")
	assert.Contains(t, out, "Back to Events")

	m, cmd := press(m, "b")
	assert.True(t, isQuit(cmd))
	assert.Equal(t, domain.EventListPath, m.NavigatedTo())
}

func TestModel_Search(t *testing.T) {
	m := newTestModel(t, domain.Viewer{Username: "alice"}, "e1", defaultInscriptions())
	m, _ = run(t, m, m.Init())

	m, _ = press(m, "/")
	for _, r := range "BO" {
		m, _ = press(m, string(r))
	}
	assert.Equal(t, "BO", m.State().SearchTerm)
	assert.Equal(t, 1, m.State().ParticipantCount)

	m, _ = press(m, "enter")
	m, _ = press(m, "/")
	m, _ = press(m, "zz")
	assert.Contains(t, m.View(), "No participants found")

	m, _ = press(m, "esc")
	m, _ = press(m, "esc")
	assert.Equal(t, "", m.State().SearchTerm)
	assert.Equal(t, 2, m.State().ParticipantCount)
}

func TestModel_CancelOwnInscriptionNavigates(t *testing.T) {
	ins := defaultInscriptions()
	m := newTestModel(t, domain.Viewer{Username: "alice"}, "e1", ins)
	m, _ = run(t, m, m.Init())

	m, cmd := press(m, "c")
	require.NotNil(t, cmd)
	m, cmd = run(t, m, cmd)

	assert.Equal(t, []domain.InscriptionID{"1"}, ins.deleted)
	assert.True(t, isQuit(cmd))
	assert.Equal(t, domain.EventListPath, m.NavigatedTo())
	assert.Equal(t, 1, m.State().RosterSize)
}

func TestModel_CannotCancelOthers(t *testing.T) {
	ins := defaultInscriptions()
	m := newTestModel(t, domain.Viewer{Username: "alice"}, "e1", ins)
	m, _ = run(t, m, m.Init())

	m, _ = press(m, "j")
	m, cmd := press(m, "c")
	assert.Nil(t, cmd)
	assert.Empty(t, ins.deleted)
	assert.Contains(t, m.View(), "You cannot cancel this inscription.")
}

func TestModel_CancelFailureShowsBanner(t *testing.T) {
	ins := defaultInscriptions()
	ins.deleteErr = errors.New("connection reset")
	m := newTestModel(t, domain.Viewer{Username: "alice"}, "e1", ins)
	m, _ = run(t, m, m.Init())

	m, cmd := press(m, "c")
	m, cmd = run(t, m, cmd)

	assert.False(t, isQuit(cmd))
	assert.Empty(t, m.NavigatedTo())
	assert.Equal(t, 2, m.State().RosterSize, "roster is unchanged")
	require.NotNil(t, m.State().Banner)
	assert.Contains(t, m.View(), m.State().Banner.Message)
}

func TestModel_RosterUnavailable(t *testing.T) {
	ins := defaultInscriptions()
	ins.listErr = domain.ErrTransport
	m := newTestModel(t, domain.Viewer{Username: "alice"}, "e1", ins)
	m, _ = run(t, m, m.Init())

	require.Equal(t, domain.StatusLoaded, m.State().Status)
	assert.False(t, m.State().RosterAvailable)
	out := m.View()
	assert.NotContains(t, out, "No participants found")
	require.NotNil(t, m.State().Banner)
	assert.Contains(t, out, m.State().Banner.Message)
}

func TestModel_StaleLoadIgnored(t *testing.T) {
	m := newTestModel(t, domain.Viewer{Username: "alice"}, "e1", defaultInscriptions())
	m, _ = run(t, m, m.Init())

	next, _ := m.Update(loadedMsg{state: domain.ViewState{Status: domain.StatusError}, err: domain.ErrStaleLoad})
	assert.Equal(t, domain.StatusLoaded, next.(Model).State().Status)
}

func TestModel_CtrlCQuits(t *testing.T) {
	m := newTestModel(t, domain.Viewer{Username: "alice"}, "e1", defaultInscriptions())
	_, cmd := press(m, "ctrl+c")
	assert.True(t, isQuit(cmd))
}
