package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"task-list-manager/internal/board"
	"task-list-manager/internal/model"
	"task-list-manager/internal/task"
	"task-list-manager/pkg/log"
)

type mode int

const (
	modeList mode = iota
	modeForm
)

// notificationHiddenMsg is sent when the notification timer fires.
type notificationHiddenMsg struct{}

// Model is the bubbletea model over one board session.
type Model struct {
	ctx     context.Context
	l       log.Logger
	session *board.Session
	keys    keyMap

	view   board.View
	mode   mode
	cursor int
	inputs []textinput.Model
	focus  board.Field
	err    error
	width  int
}

// NewModel creates a Model and renders the initial view.
func NewModel(ctx context.Context, l log.Logger, session *board.Session) Model {
	m := Model{
		ctx:     ctx,
		l:       l,
		session: session,
		keys:    defaultKeyMap(),
		inputs:  newInputs(),
	}
	m.refresh()
	return m
}

func newInputs() []textinput.Model {
	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = 255

	desc := textinput.New()
	desc.Placeholder = "Description (optional)"
	desc.CharLimit = 2000

	due := textinput.New()
	due.Placeholder = "YYYY-MM-DD or tomorrow"
	due.CharLimit = 32

	return []textinput.Model{title, desc, due}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notificationHiddenMsg:
		m.refresh()
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		for i := range m.inputs {
			m.inputs[i].Width = max(msg.Width-20, 10)
		}
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.view.State.Confirming() {
			return m.updateConfirm(msg)
		}
		if m.mode == modeForm {
			return m.updateForm(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Yes):
		m.dispatch(board.ConfirmDelete{})
	case key.Matches(msg, m.keys.No):
		m.dispatch(board.DeclineDelete{})
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.view.List.Rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Add):
		return m, m.enterForm(board.Form{})
	case key.Matches(msg, m.keys.Edit):
		if t, ok := m.selected(); ok {
			m.dispatch(board.BeginEdit{ID: t.ID})
			if m.view.State.Edit.Editing() {
				return m, m.enterForm(m.view.State.Form)
			}
		}
	case key.Matches(msg, m.keys.Toggle):
		if t, ok := m.selected(); ok {
			m.dispatch(board.ToggleComplete{ID: t.ID})
		}
	case key.Matches(msg, m.keys.Delete):
		if t, ok := m.selected(); ok {
			m.dispatch(board.RequestDelete{ID: t.ID})
		}
	case key.Matches(msg, m.keys.All):
		m.dispatch(board.SetFilter{Filter: model.FilterAll})
	case key.Matches(msg, m.keys.Pending):
		m.dispatch(board.SetFilter{Filter: model.FilterPending})
	case key.Matches(msg, m.keys.Completed):
		m.dispatch(board.SetFilter{Filter: model.FilterCompleted})
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		if m.view.State.Edit.Editing() {
			m.dispatch(board.CancelEdit{})
		}
		m.leaveForm()
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		return m, m.focusField((m.focus + 1) % board.Field(len(m.inputs)))
	case key.Matches(msg, m.keys.Submit):
		err := m.dispatch(board.Submit{Form: m.form()})
		if task.IsValidationError(err) {
			return m, nil
		}
		m.leaveForm()
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// dispatch applies a to the session and re-renders from the new state.
func (m *Model) dispatch(a board.Action) error {
	err := m.session.Dispatch(m.ctx, a)
	if err != nil && !task.IsValidationError(err) {
		m.l.Errorf(m.ctx, "tui.dispatch %T: %v", a, err)
	}
	m.refresh()
	return err
}

func (m *Model) refresh() {
	v, err := m.session.View(m.ctx)
	if err != nil {
		m.l.Errorf(m.ctx, "tui.refresh: %v", err)
		m.err = err
		return
	}
	m.err = nil
	m.view = v
	if m.cursor >= len(v.List.Rows) {
		m.cursor = max(len(v.List.Rows)-1, 0)
	}
}

func (m *Model) enterForm(f board.Form) tea.Cmd {
	m.mode = modeForm
	m.inputs[board.FieldTitle].SetValue(f.Title)
	m.inputs[board.FieldDescription].SetValue(f.Description)
	m.inputs[board.FieldDueDate].SetValue(f.DueDate)
	return m.focusField(board.FieldTitle)
}

func (m *Model) leaveForm() {
	m.mode = modeList
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = board.FieldTitle
}

func (m *Model) focusField(f board.Field) tea.Cmd {
	m.focus = f
	var cmd tea.Cmd
	for i := range m.inputs {
		if board.Field(i) == f {
			cmd = m.inputs[i].Focus()
			continue
		}
		m.inputs[i].Blur()
	}
	return cmd
}

func (m Model) form() board.Form {
	return board.Form{
		Title:       m.inputs[board.FieldTitle].Value(),
		Description: m.inputs[board.FieldDescription].Value(),
		DueDate:     m.inputs[board.FieldDueDate].Value(),
	}
}

func (m Model) selected() (model.Task, bool) {
	rows := m.view.List.Rows
	if m.cursor < 0 || m.cursor >= len(rows) {
		return model.Task{}, false
	}
	return rows[m.cursor].Task, true
}
