package usecase

import (
	"context"
	"sort"
	"time"

	"task-list-manager/internal/model"
	"task-list-manager/internal/task"
)

// Detail returns the task with id or ErrTaskNotFound.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (model.Task, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if i := uc.indexOf(id); i >= 0 {
		return uc.tasks[i], nil
	}
	return model.Task{}, task.ErrTaskNotFound
}

func (uc *implUseCase) DetailRow(ctx context.Context, id int64) (task.Row, error) {
	t, err := uc.Detail(ctx, id)
	if err != nil {
		return task.Row{}, err
	}
	return uc.decorate(t, uc.now()), nil
}

// List renders the visible tasks for a filter: filtered, sorted by due date
// ascending (stable), and decorated relative to input.Now.
func (uc *implUseCase) List(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
	filter := input.Filter
	if filter == "" {
		filter = model.FilterAll
	}
	if !filter.IsValid() {
		return task.ListOutput{}, task.ErrInvalidFilter
	}
	now := input.Now
	if now.IsZero() {
		now = uc.now()
	}

	uc.mu.Lock()
	snapshot := make([]model.Task, len(uc.tasks))
	copy(snapshot, uc.tasks)
	uc.mu.Unlock()

	return uc.render(snapshot, filter, now), nil
}

func (uc *implUseCase) render(tasks []model.Task, filter model.Filter, now time.Time) task.ListOutput {
	counts := make(map[model.Filter]int, len(model.Filters))
	visible := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		for _, f := range model.Filters {
			if f.Match(t) {
				counts[f]++
			}
		}
		if filter.Match(t) {
			visible = append(visible, t)
		}
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].DueDate.Before(visible[j].DueDate)
	})

	rows := make([]task.Row, 0, len(visible))
	for _, t := range visible {
		rows = append(rows, uc.decorate(t, now))
	}

	return task.ListOutput{
		Filter: filter,
		Rows:   rows,
		Empty:  len(rows) == 0,
		Counts: counts,
	}
}

func (uc *implUseCase) decorate(t model.Task, now time.Time) task.Row {
	overdue := !t.DueDate.IsZero() && uc.dates.BeforeDay(t.DueDate, now)

	label := task.LabelMarkCompleted
	if t.Completed {
		label = task.LabelMarkPending
	}

	return task.Row{
		Task:        t,
		Overdue:     overdue,
		ShowOverdue: overdue && !t.Completed,
		ToggleLabel: label,
		DueDate:     uc.dates.Format(t.DueDate),
		DueLabel:    uc.dates.FormatLong(t.DueDate),
	}
}
