package board

import (
	"context"
	"errors"
	"sync"

	"task-list-manager/internal/model"
	"task-list-manager/internal/task"
	"task-list-manager/pkg/notify"
)

// View is everything needed to render one full page or screen.
type View struct {
	State         State
	List          task.ListOutput
	PrimaryLabel  string
	CancelVisible bool
	Notification  *notify.Notification
	// Pending is the task awaiting delete confirmation.
	Pending *model.Task
}

// Session is one user's board state and notification area.
// It is safe for concurrent use.
type Session struct {
	mu       sync.Mutex
	board    *Board
	state    State
	notifier *notify.Notifier
}

// NewSession creates a Session in the initial state.
func (b *Board) NewSession(notifier *notify.Notifier) *Session {
	if notifier == nil {
		notifier = notify.New(notify.DefaultDuration)
	}
	return &Session{
		board:    b,
		state:    NewState(),
		notifier: notifier,
	}
}

// Dispatch applies a and shows any resulting notice.
func (s *Session) Dispatch(ctx context.Context, a Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.board.Dispatch(ctx, s.state, a)
	s.state = res.State
	if res.Dismiss {
		s.notifier.Hide()
	}
	if res.Notice != nil {
		s.notifier.Show(res.Notice.Message, res.Notice.Severity)
	}
	return err
}

// State returns a copy of the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// View renders the current state.
func (s *Session) View(ctx context.Context) (View, error) {
	s.mu.Lock()
	st := s.state
	s.mu.Unlock()

	list, err := s.board.uc.List(ctx, task.ListInput{Filter: st.Filter})
	if err != nil {
		return View{}, err
	}

	v := View{
		State:         st,
		List:          list,
		PrimaryLabel:  st.PrimaryLabel(),
		CancelVisible: st.CancelVisible(),
	}
	if n, ok := s.notifier.Current(); ok {
		v.Notification = &n
	}
	if st.Confirming() {
		t, err := s.board.uc.Detail(ctx, st.PendingDelete)
		switch {
		case err == nil:
			v.Pending = &t
		case !errors.Is(err, task.ErrTaskNotFound):
			return View{}, err
		}
	}
	return v, nil
}

// Close stops the notification timer.
func (s *Session) Close() {
	s.notifier.Close()
}
