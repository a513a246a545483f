package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"task-list-manager/internal/board"
	"task-list-manager/pkg/log"
	"task-list-manager/pkg/notify"
)

// Run starts the terminal UI and blocks until the user quits or ctx is done.
func Run(ctx context.Context, l log.Logger, b *board.Board, notificationDuration time.Duration) error {
	var program *tea.Program

	notifier := notify.New(notificationDuration, notify.WithOnHide(func(notify.Notification) {
		if program != nil {
			program.Send(notificationHiddenMsg{})
		}
	}))
	session := b.NewSession(notifier)
	defer session.Close()

	program = tea.NewProgram(NewModel(ctx, l, session), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		l.Errorf(ctx, "tui.Run: %v", err)
		return err
	}
	return nil
}
